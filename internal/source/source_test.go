package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farxc/atlas-fiscal/internal/logger"
)

// An unconfigured source must answer every fetch with empty, non-nil data
// plus ErrUnavailable, so callers can keep rendering.
func TestSourceUnavailable(t *testing.T) {
	src := New(nil, &logger.Logger{MinLevel: logger.LevelError})
	ctx := context.Background()

	assert.False(t, src.Available())

	municipalities, err := src.Municipalities(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotNil(t, municipalities)
	assert.Empty(t, municipalities)

	documents, err := src.Documents(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotNil(t, documents)

	revenues, err := src.RevenueItems(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotNil(t, revenues)

	expenditures, err := src.ExpenditureItems(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotNil(t, expenditures)

	_, err = src.Document(ctx, "d1")
	assert.ErrorIs(t, err, ErrUnavailable)

	entries, err := src.BalanceSheet(ctx, "d1")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotNil(t, entries)

	programs, err := src.ProgramsForDocument(ctx, "d1")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotNil(t, programs)
}

package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectionFactor(t *testing.T) {
	cases := []struct {
		period string
		want   float64
	}{
		{"Q1", 4.0},
		{"1q", 4.0},
		{"1er trimestre", 4.0},
		{"PRIMER TRIMESTRE", 4.0},
		{"Q2", 2.0},
		{"segundo trimestre", 2.0},
		{"Q3", 1.5},
		{"Tercer Trimestre", 1.5},
		{"Q4", 1.0},
		{"cuarto trimestre", 1.0},
		{"Anual", 1.0},
		{"  q1  ", 4.0},
	}

	for _, tc := range cases {
		t.Run(tc.period, func(t *testing.T) {
			assert.Equal(t, tc.want, ProjectionFactor(tc.period))
		})
	}
}

func TestProjectionFactorUnknownPeriod(t *testing.T) {
	// Unknown labels leave values unprojected rather than failing the run
	assert.Equal(t, 1.0, ProjectionFactor("semestre 1"))
	assert.Equal(t, 1.0, ProjectionFactor(""))
	assert.Equal(t, 1.0, ProjectionFactor("quincena"))
}

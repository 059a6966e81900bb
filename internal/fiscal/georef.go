package fiscal

import "strings"

// GeorefLength is the canonical width of a geographic identifier.
const GeorefLength = 5

// NormalizeGeoref canonicalizes a geographic identifier to a digit-only,
// zero-padded 5-character string. The registry, the document table and the
// boundary file all use different native representations (numeric,
// zero-padded string, float-suffixed string), so every identifier passes
// through here before any cross-source join.
//
// The function is idempotent: NormalizeGeoref(NormalizeGeoref(x)) == NormalizeGeoref(x).
func NormalizeGeoref(raw string) string {
	s := strings.TrimSpace(raw)

	// Identifiers that passed through float-typed sources arrive as "6014.0"
	s = strings.TrimSuffix(s, ".0")

	var b strings.Builder
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	s = b.String()

	for len(s) < GeorefLength {
		s = "0" + s
	}
	return s
}

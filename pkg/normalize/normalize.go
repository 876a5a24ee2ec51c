// Package normalize provides the identifier normalization applied at every
// product lookup boundary: trim, case-fold, strip diacritics. Lookups that
// used to rely on loose ad-hoc matching all go through Fold so "  Cam Sành "
// and "cam sanh" resolve to the same product.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns the canonical form of an identifier or display name:
// whitespace-trimmed, lower-cased, combining marks removed. Đ/đ do not
// decompose under NFD, so they are mapped explicitly.
func Fold(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return strings.Map(func(r rune) rune {
		if r == 'đ' {
			return 'd'
		}
		return r
	}, s)
}

// Equal reports whether two identifiers are the same after folding.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Method says how a product reference was resolved.
type Method int

const (
	// Unresolved means neither the id nor the name matched the catalog; the
	// raw name is carried through as a best-effort product id.
	Unresolved Method = iota
	// ByID means the explicit id matched a catalog entry.
	ByID
	// ByName means the folded display name matched a catalog entry.
	ByName
)

// Candidate is one catalog entry a reference can resolve against.
type Candidate struct {
	ID   string
	Name string
}

// Resolution is the explicit outcome of resolving a product reference.
type Resolution struct {
	ProductID string
	Method    Method
}

// Resolve maps a cart line's (id, name) pair onto the catalog. Fallback
// order: explicit id match, then folded name match, then the raw name.
func Resolve(catalog []Candidate, id, name string) Resolution {
	if id != "" {
		for _, c := range catalog {
			if Equal(c.ID, id) {
				return Resolution{ProductID: c.ID, Method: ByID}
			}
		}
	}
	if name != "" {
		for _, c := range catalog {
			if Equal(c.Name, name) {
				return Resolution{ProductID: c.ID, Method: ByName}
			}
		}
	}
	fallback := id
	if fallback == "" {
		fallback = name
	}
	return Resolution{ProductID: fallback, Method: Unresolved}
}

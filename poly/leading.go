package poly

import "github.com/katalvlaran/groebner/order"

// LeadingTerm returns the term whose exponent vector is maximal under ord,
// plus true, or a zero Monomial plus false for the zero polynomial.
//
// The result is never ambiguous: exponent vectors are pairwise distinct
// within a polynomial, so a total ordering has a unique maximum. The
// returned Monomial is a copy; mutating it does not affect p.
//
// Complexity: O(terms · vars).
func (p Polynomial) LeadingTerm(ord order.Ordering) (Monomial, bool) {
	if p.IsZero() {
		return Monomial{}, false
	}
	best := 0
	for i := 1; i < len(p.terms); i++ {
		if ord.Compare(p.terms[i].Exp, p.terms[best].Exp) > 0 {
			best = i
		}
	}

	return p.terms[best].Clone(), true
}

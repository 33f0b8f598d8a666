package buchberger

import (
	"github.com/katalvlaran/groebner/order"
	"github.com/katalvlaran/groebner/poly"
)

// IsInIdeal reports whether f lies in the ideal spanned by basis: it divides
// f by basis under ord and checks for a zero remainder.
//
// The answer is sound and complete ONLY when basis is a genuine Gröbner
// basis for ord (e.g. the Basis of a StatusCompleted Compute result). For an
// arbitrary generating set a non-zero remainder proves nothing.
//
// The zero polynomial belongs to every ideal, including the one spanned by
// an empty basis.
//
// Errors: order.ErrUnknownOrdering, ErrBadDivisionMode, ErrVarCountMismatch.
func IsInIdeal(f poly.Polynomial, basis []poly.Polynomial, ord order.Ordering, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !ord.Valid() {
		return false, order.ErrUnknownOrdering
	}
	if !o.Mode.Valid() {
		return false, ErrBadDivisionMode
	}
	for _, g := range basis {
		if g.NumVars() != f.NumVars() {
			return false, ErrVarCountMismatch
		}
	}
	if f.IsZero() {
		return true, nil
	}

	_, rem := divide(f, basis, ord, o.Mode)

	return rem.IsZero(), nil
}

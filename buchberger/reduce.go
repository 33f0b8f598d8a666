package buchberger

import (
	"github.com/katalvlaran/groebner/order"
	"github.com/katalvlaran/groebner/poly"
)

// Minimize drops every basis member whose leading monomial (coefficient
// ignored) is divisible by another surviving member's leading monomial.
// This is a monomial-only criterion, independent of the exact-coefficient
// rule used by Divide. When two members share the same leading monomial the
// earlier one survives. Zero members carry no leading term and are dropped.
//
// Minimize is idempotent: minimizing an already-minimized basis returns an
// equal basis.
//
// Errors: order.ErrUnknownOrdering, ErrVarCountMismatch.
func Minimize(basis []poly.Polynomial, ord order.Ordering) ([]poly.Polynomial, error) {
	if !ord.Valid() {
		return nil, order.ErrUnknownOrdering
	}
	if err := checkVars(basis); err != nil {
		return nil, err
	}

	return minimize(basis, ord), nil
}

// minimize is the unvalidated core of Minimize.
func minimize(basis []poly.Polynomial, ord order.Ordering) []poly.Polynomial {
	leads := make([]poly.Monomial, len(basis))
	keep := make([]bool, len(basis))
	for i, p := range basis {
		leads[i], keep[i] = p.LeadingTerm(ord)
	}

	for i := range basis {
		if !keep[i] {
			continue
		}
		for j := range basis {
			if j == i || !keep[j] || !leads[j].Divides(leads[i]) {
				continue
			}
			// Equal leading monomials divide each other; only the earlier
			// member may evict the later one, so exactly one survives.
			if !leads[i].Divides(leads[j]) || j < i {
				keep[i] = false

				break
			}
		}
	}

	out := make([]poly.Polynomial, 0, len(basis))
	for i, p := range basis {
		if keep[i] {
			out = append(out, p)
		}
	}

	return out
}

// Reduce performs a single canonicalizing pass over a (typically minimized)
// basis: each member is primitivized, divided by the OTHER members of the
// input basis, and replaced by the primitive part of its remainder. Members
// reducing to zero are dropped — that is redundancy elimination, not an
// error. Finally each survivor is sign-normalized so its leading coefficient
// is positive.
//
// The pass runs exactly once; it is not iterated to a fixpoint.
//
// Errors: order.ErrUnknownOrdering, ErrBadDivisionMode, ErrVarCountMismatch.
func Reduce(basis []poly.Polynomial, ord order.Ordering, opts ...Option) ([]poly.Polynomial, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !ord.Valid() {
		return nil, order.ErrUnknownOrdering
	}
	if !o.Mode.Valid() {
		return nil, ErrBadDivisionMode
	}
	if err := checkVars(basis); err != nil {
		return nil, err
	}

	var stats Stats

	return reduceBasis(basis, ord, o.Mode, &stats), nil
}

// reduceBasis is the unvalidated core of Reduce, shared with Compute so the
// run's stats keep counting through post-processing.
func reduceBasis(basis []poly.Polynomial, ord order.Ordering, mode DivisionMode, stats *Stats) []poly.Polynomial {
	out := make([]poly.Polynomial, 0, len(basis))
	others := make([]poly.Polynomial, 0, len(basis))

	for i, p := range basis {
		pp := p.PrimitivePart()
		stats.PrimitivizationsPerformed++

		others = others[:0]
		others = append(others, basis[:i]...)
		others = append(others, basis[i+1:]...)

		_, rem := divide(pp, others, ord, mode)
		stats.ReductionsPerformed++

		if rem.IsZero() {
			continue
		}

		rem = rem.PrimitivePart()
		stats.PrimitivizationsPerformed++

		if lt, ok := rem.LeadingTerm(ord); ok && lt.Coeff.Sign() < 0 {
			rem = rem.Neg()
		}
		out = append(out, rem)
	}

	return out
}

// checkVars verifies that all basis members range over the same number of
// variables.
func checkVars(basis []poly.Polynomial) error {
	if len(basis) < 2 {
		return nil
	}
	n := basis[0].NumVars()
	for _, p := range basis[1:] {
		if p.NumVars() != n {
			return ErrVarCountMismatch
		}
	}

	return nil
}

package buchberger

import (
	"github.com/katalvlaran/groebner/order"
	"github.com/katalvlaran/groebner/poly"
)

// Divide reduces f against the ordered divisor list, returning per-divisor
// quotients and a remainder with f == Σ Quotients[i]·divisors[i] + Remainder.
//
// Each step scans divisors in list order for the FIRST one whose leading
// monomial divides the working leading monomial and whose leading
// coefficient divides the working leading coefficient exactly — integer
// divisibility, no rounding. After a successful step the scan restarts from
// the front of the list. Zero divisors are never eligible and receive a zero
// quotient.
//
// What happens when the working leading term has no eligible divisor is
// controlled by WithDivisionMode; the default halts and returns all of the
// working remainder (see DivisionMode).
//
// Errors: order.ErrUnknownOrdering, ErrBadDivisionMode, ErrVarCountMismatch.
//
// Complexity: O(steps · |divisors| · terms) with unbounded coefficient size;
// termination is guaranteed because each step strictly decreases the working
// leading term under a well-founded ordering.
func Divide(f poly.Polynomial, divisors []poly.Polynomial, ord order.Ordering, opts ...Option) (DivisionResult, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !ord.Valid() {
		return DivisionResult{}, order.ErrUnknownOrdering
	}
	if !o.Mode.Valid() {
		return DivisionResult{}, ErrBadDivisionMode
	}
	for _, g := range divisors {
		if g.NumVars() != f.NumVars() {
			return DivisionResult{}, ErrVarCountMismatch
		}
	}

	quots, rem := divide(f, divisors, ord, o.Mode)

	return DivisionResult{Quotients: quots, Remainder: rem}, nil
}

// divide is the unvalidated core of Divide, shared with the Buchberger loop
// and the reduction pass.
func divide(f poly.Polynomial, divisors []poly.Polynomial, ord order.Ordering, mode DivisionMode) ([]poly.Polynomial, poly.Polynomial) {
	n := f.NumVars()

	quots := make([]poly.Polynomial, len(divisors))
	for i := range quots {
		quots[i] = poly.Zero(n)
	}

	// Leading terms are fixed per divisor; compute them once.
	leads := make([]poly.Monomial, len(divisors))
	usable := make([]bool, len(divisors))
	for i, g := range divisors {
		leads[i], usable[i] = g.LeadingTerm(ord)
	}

	rem := poly.Zero(n)
	p := f

scan:
	for !p.IsZero() {
		lt, _ := p.LeadingTerm(ord)
		for i := range divisors {
			if !usable[i] || !leads[i].DividesExactly(lt) {
				continue
			}
			q := leads[i].Quotient(lt)
			p = p.Sub(divisors[i].MulMonomial(q))
			quots[i] = quots[i].Add(poly.New(n, q))

			continue scan
		}

		// No eligible divisor for the current leading term.
		if mode == HaltAtIrreducible {
			rem = rem.Add(p)

			break
		}
		head := poly.New(n, lt)
		rem = rem.Add(head)
		p = p.Sub(head)
	}

	return quots, rem
}

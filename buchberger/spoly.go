package buchberger

import (
	"math/big"

	"github.com/katalvlaran/groebner/order"
	"github.com/katalvlaran/groebner/poly"
)

// SPolynomial builds the S-polynomial of f and g under ord: the combination
// that cancels both leading terms.
//
// With leading terms (mf, cf) and (mg, cg):
//
//	mLCM = componentwise max of mf, mg
//	cLCM = lcm(|cf|, |cg|)
//	S    = (cLCM/cf)·(mLCM/mf)·f − (cLCM/cg)·(mLCM/mg)·g
//
// The integer lcm of the leading coefficients replaces the field case's
// monic scaling. The result is returned as its primitive part, which bounds
// coefficient growth across the Buchberger loop.
//
// Errors: ErrZeroPolynomial when either input is zero (no leading term),
// ErrVarCountMismatch, order.ErrUnknownOrdering.
func SPolynomial(f, g poly.Polynomial, ord order.Ordering) (poly.Polynomial, error) {
	if !ord.Valid() {
		return poly.Polynomial{}, order.ErrUnknownOrdering
	}
	if f.NumVars() != g.NumVars() {
		return poly.Polynomial{}, ErrVarCountMismatch
	}
	if f.IsZero() || g.IsZero() {
		return poly.Polynomial{}, ErrZeroPolynomial
	}

	return spoly(f, g, ord), nil
}

// spoly is the unvalidated core of SPolynomial. Contract: f, g non-zero with
// equal variable counts.
func spoly(f, g poly.Polynomial, ord order.Ordering) poly.Polynomial {
	lf, _ := f.LeadingTerm(ord)
	lg, _ := g.LeadingTerm(ord)

	mLCM := poly.ExpLCM(lf.Exp, lg.Exp)
	cLCM := coeffLCM(lf.Coeff, lg.Coeff)

	s := f.MulMonomial(cofactor(cLCM, mLCM, lf)).
		Sub(g.MulMonomial(cofactor(cLCM, mLCM, lg)))

	return s.PrimitivePart()
}

// cofactor returns the monomial multiplier (cLCM/c)·(mLCM/m) for a leading
// term (m, c). Division is exact by construction of the lcms; the sign of c
// flows into the multiplier so both scaled leading terms equal +cLCM·mLCM.
func cofactor(cLCM *big.Int, mLCM []int, lead poly.Monomial) poly.Monomial {
	e := make([]int, len(mLCM))
	for i := range e {
		e[i] = mLCM[i] - lead.Exp[i]
	}

	return poly.Monomial{Coeff: new(big.Int).Quo(cLCM, lead.Coeff), Exp: e}
}

// coeffLCM returns lcm(|a|, |b|) for non-zero a, b.
func coeffLCM(a, b *big.Int) *big.Int {
	aa := new(big.Int).Abs(a)
	bb := new(big.Int).Abs(b)
	g := new(big.Int).GCD(nil, nil, aa, bb)

	l := new(big.Int).Quo(aa, g)

	return l.Mul(l, bb)
}

package poly

import (
	"math/big"
	"sort"
	"strings"
)

// Polynomial is an immutable multivariate polynomial over Z: a finite set of
// monomials with pairwise-distinct exponent vectors and non-zero
// coefficients. The zero polynomial is the empty set.
//
// Terms are stored in descending lexicographic order of exponent vectors,
// which makes String and Equal deterministic regardless of construction
// order. The storage order is a canonical-form detail only; leading terms
// under a chosen monomial ordering are computed on demand (LeadingTerm).
//
// Every arithmetic operation returns a freshly normalized Polynomial and
// never mutates its receiver or arguments, so a Polynomial can be shared
// freely between a basis, a pair queue and a caller.
type Polynomial struct {
	nvars int
	terms []Monomial
}

// New builds a normalized Polynomial over nvars variables: exponent vectors
// are padded (or truncated) to nvars entries, like terms are combined,
// zero-coefficient terms are removed, and the result is canonically sorted.
// All inputs are copied.
func New(nvars int, terms ...Monomial) Polynomial {
	ts := make([]Monomial, 0, len(terms))
	for _, t := range terms {
		e := make([]int, nvars)
		copy(e, t.Exp)
		ts = append(ts, Monomial{Coeff: new(big.Int).Set(t.Coeff), Exp: e})
	}

	return Polynomial{nvars: nvars, terms: normalize(ts)}
}

// Zero returns the zero polynomial over nvars variables.
func Zero(nvars int) Polynomial {
	return Polynomial{nvars: nvars}
}

// normalize sorts terms in descending lex order, merges equal exponent
// vectors by summing coefficients, and drops zero terms. It owns ts and its
// contents (callers pass freshly copied monomials).
func normalize(ts []Monomial) []Monomial {
	sort.SliceStable(ts, func(i, j int) bool {
		return lexCompare(ts[i].Exp, ts[j].Exp) > 0
	})

	out := ts[:0]
	for _, t := range ts {
		if len(out) > 0 && lexCompare(out[len(out)-1].Exp, t.Exp) == 0 {
			out[len(out)-1].Coeff.Add(out[len(out)-1].Coeff, t.Coeff)

			continue
		}
		out = append(out, t)
	}

	kept := make([]Monomial, 0, len(out))
	for _, t := range out {
		if t.Coeff.Sign() != 0 {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	return kept
}

// lexCompare is the fixed storage comparator (pure lexicographic).
func lexCompare(a, b []int) int {
	for i := range a {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}

	return 0
}

// NumVars returns the number of variables the polynomial ranges over.
func (p Polynomial) NumVars() int { return p.nvars }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of (non-zero) terms.
func (p Polynomial) Len() int { return len(p.terms) }

// Terms returns a deep copy of the term set in canonical storage order.
// Mutating the returned slice never affects p.
func (p Polynomial) Terms() []Monomial {
	out := make([]Monomial, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Clone()
	}

	return out
}

// Equal reports structural equality: same variable count and identical
// normalized term sets.
func (p Polynomial) Equal(q Polynomial) bool {
	if p.nvars != q.nvars || len(p.terms) != len(q.terms) {
		return false
	}
	for i, t := range p.terms {
		if lexCompare(t.Exp, q.terms[i].Exp) != 0 || t.Coeff.Cmp(q.terms[i].Coeff) != 0 {
			return false
		}
	}

	return true
}

// Add returns p + q. Contract: p.NumVars() == q.NumVars().
func (p Polynomial) Add(q Polynomial) Polynomial {
	ts := make([]Monomial, 0, len(p.terms)+len(q.terms))
	for _, t := range p.terms {
		ts = append(ts, t.Clone())
	}
	for _, t := range q.terms {
		ts = append(ts, t.Clone())
	}

	return Polynomial{nvars: p.nvars, terms: normalize(ts)}
}

// Sub returns p − q. Contract: p.NumVars() == q.NumVars().
func (p Polynomial) Sub(q Polynomial) Polynomial {
	ts := make([]Monomial, 0, len(p.terms)+len(q.terms))
	for _, t := range p.terms {
		ts = append(ts, t.Clone())
	}
	for _, t := range q.terms {
		ts = append(ts, t.Neg())
	}

	return Polynomial{nvars: p.nvars, terms: normalize(ts)}
}

// Neg returns −p.
func (p Polynomial) Neg() Polynomial {
	ts := make([]Monomial, len(p.terms))
	for i, t := range p.terms {
		ts[i] = t.Neg()
	}

	return Polynomial{nvars: p.nvars, terms: ts}
}

// MulMonomial returns p·m. Multiplying by a single term cannot merge or
// cancel distinct exponent vectors, so the result stays normalized unless
// m is zero.
func (p Polynomial) MulMonomial(m Monomial) Polynomial {
	if m.IsZero() || p.IsZero() {
		return Zero(p.nvars)
	}
	ts := make([]Monomial, len(p.terms))
	for i, t := range p.terms {
		ts[i] = t.Mul(m)
	}

	return Polynomial{nvars: p.nvars, terms: ts}
}

// Mul returns the full product p·q. Contract: p.NumVars() == q.NumVars().
//
// Complexity: O(|p|·|q| · log(|p|·|q|)) term operations.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero(p.nvars)
	}
	ts := make([]Monomial, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			ts = append(ts, a.Mul(b))
		}
	}

	return Polynomial{nvars: p.nvars, terms: normalize(ts)}
}

// Content returns the gcd of the absolute values of all coefficients.
// The content of the zero polynomial is defined as 1 (definitional no-op,
// never an error).
func (p Polynomial) Content() *big.Int {
	if p.IsZero() {
		return big.NewInt(1)
	}
	// big.Int.GCD requires strictly positive operands; term coefficients are
	// non-zero by invariant, so seeding with the first |coefficient| is safe.
	g := new(big.Int).Abs(p.terms[0].Coeff)
	for _, t := range p.terms[1:] {
		if g.Cmp(bigOne) == 0 {
			break
		}
		g.GCD(nil, nil, g, new(big.Int).Abs(t.Coeff))
	}

	return g
}

// PrimitivePart returns p with every coefficient divided by the content.
// This is the integer-ring substitute for monic normalization: it bounds
// coefficient growth without ever leaving Z. The primitive part of zero is
// zero. The receiver is never modified.
func (p Polynomial) PrimitivePart() Polynomial {
	if p.IsZero() {
		return p
	}
	c := p.Content()
	ts := make([]Monomial, len(p.terms))
	for i, t := range p.terms {
		e := make([]int, len(t.Exp))
		copy(e, t.Exp)
		ts[i] = Monomial{Coeff: new(big.Int).Quo(t.Coeff, c), Exp: e}
	}

	return Polynomial{nvars: p.nvars, terms: ts}
}

// String renders the polynomial in canonical storage order, or "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.terms {
		writeTerm(&sb, t, i > 0)
	}

	return sb.String()
}

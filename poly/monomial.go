package poly

import (
	"math/big"
	"strconv"
	"strings"
)

// Monomial is a single term: an exponent vector paired with an integer
// coefficient. Exponent-vector equality (ignoring the coefficient) defines
// "same term" for normalization purposes.
//
// A Monomial is a value: constructors and arithmetic copy their inputs, and
// callers must treat Coeff and Exp as read-only. Use NewMonomial or Term to
// build one; the zero value (nil coefficient) is not a valid Monomial.
type Monomial struct {
	// Coeff is the integer coefficient. Never nil for a constructed Monomial.
	Coeff *big.Int

	// Exp is the exponent vector; Exp[i] is the power of variable x(i+1).
	// All entries are expected to be non-negative (supplied by the parsing
	// boundary; not validated here).
	Exp []int
}

// NewMonomial builds a Monomial from a coefficient and an exponent vector.
// Both arguments are copied, so later mutation of them does not affect the
// returned value.
func NewMonomial(coeff *big.Int, exp []int) Monomial {
	e := make([]int, len(exp))
	copy(e, exp)

	return Monomial{Coeff: new(big.Int).Set(coeff), Exp: e}
}

// Term is a convenience constructor for small coefficients:
// Term(-3, 1, 0, 2) is −3·x1·x3².
func Term(coeff int64, exp ...int) Monomial {
	return NewMonomial(big.NewInt(coeff), exp)
}

// NumVars returns the length of the exponent vector.
func (m Monomial) NumVars() int { return len(m.Exp) }

// Degree returns the total degree (sum of all exponents).
func (m Monomial) Degree() int {
	d := 0
	for _, e := range m.Exp {
		d += e
	}

	return d
}

// IsZero reports whether the coefficient is zero.
func (m Monomial) IsZero() bool { return m.Coeff.Sign() == 0 }

// Divides reports whether m's exponent vector divides n's, i.e. m.Exp is
// componentwise ≤ n.Exp. This is the monomial-only criterion; it says
// nothing about coefficients (see DividesExactly).
func (m Monomial) Divides(n Monomial) bool {
	for i, e := range m.Exp {
		if e > n.Exp[i] {
			return false
		}
	}

	return true
}

// DividesExactly reports whether m divides n as an integer term: the
// exponent vector must divide AND n's coefficient must be an exact integer
// multiple of m's. Over Z this is stricter than the field case and is the
// eligibility test used by the division engine.
func (m Monomial) DividesExactly(n Monomial) bool {
	if !m.Divides(n) {
		return false
	}
	r := new(big.Int)
	r.Rem(n.Coeff, m.Coeff)

	return r.Sign() == 0
}

// Quotient returns n / m as a Monomial. Contract: m.DividesExactly(n).
func (m Monomial) Quotient(n Monomial) Monomial {
	e := make([]int, len(m.Exp))
	for i := range e {
		e[i] = n.Exp[i] - m.Exp[i]
	}
	c := new(big.Int).Quo(n.Coeff, m.Coeff)

	return Monomial{Coeff: c, Exp: e}
}

// Mul returns the product m·n (coefficients multiplied, exponents added).
func (m Monomial) Mul(n Monomial) Monomial {
	e := make([]int, len(m.Exp))
	for i := range e {
		e[i] = m.Exp[i] + n.Exp[i]
	}
	c := new(big.Int).Mul(m.Coeff, n.Coeff)

	return Monomial{Coeff: c, Exp: e}
}

// Neg returns −m.
func (m Monomial) Neg() Monomial {
	e := make([]int, len(m.Exp))
	copy(e, m.Exp)

	return Monomial{Coeff: new(big.Int).Neg(m.Coeff), Exp: e}
}

// Clone returns a deep copy of m.
func (m Monomial) Clone() Monomial {
	return NewMonomial(m.Coeff, m.Exp)
}

// ExpLCM returns the componentwise maximum of two exponent vectors — the
// exponent vector of the least common multiple of the two monomials.
// Contract: len(a) == len(b).
func ExpLCM(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		if a[i] >= b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}

	return out
}

// String renders the monomial as a human-readable term, e.g. "-3*x1*x3^2".
func (m Monomial) String() string {
	var sb strings.Builder
	writeTerm(&sb, m, false)

	return sb.String()
}

// writeTerm appends one term to sb. When follower is true the term is
// rendered with an explicit " + " / " - " separator for its sign.
func writeTerm(sb *strings.Builder, m Monomial, follower bool) {
	abs := new(big.Int).Abs(m.Coeff)
	if follower {
		if m.Coeff.Sign() < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
	} else if m.Coeff.Sign() < 0 {
		sb.WriteString("-")
	}

	vars := make([]string, 0, len(m.Exp))
	for i, e := range m.Exp {
		if e == 0 {
			continue
		}
		v := "x" + strconv.Itoa(i+1)
		if e > 1 {
			v += "^" + strconv.Itoa(e)
		}
		vars = append(vars, v)
	}

	if len(vars) == 0 {
		sb.WriteString(abs.String())

		return
	}
	if abs.Cmp(bigOne) != 0 {
		sb.WriteString(abs.String())
		sb.WriteString("*")
	}
	sb.WriteString(strings.Join(vars, "*"))
}

var bigOne = big.NewInt(1)

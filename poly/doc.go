// Package poly provides exact multivariate polynomials over the integers.
//
// 🚀 What is poly?
//
//	The data model underneath the Gröbner-basis engine:
//	  • Monomial    — an exponent vector paired with a big.Int coefficient
//	  • Polynomial  — an immutable, normalized sum of monomials over Z
//
// ✨ Key properties:
//   - Exact arithmetic: coefficients are math/big integers, never rounded
//   - Value semantics: every operation returns a fresh, normalized
//     Polynomial; no operation mutates its receiver or its arguments
//   - Canonical storage: terms are kept with pairwise-distinct exponent
//     vectors and non-zero coefficients, sorted in descending lexicographic
//     order, so String and Equal are deterministic
//   - Integer-native normalization: Content (gcd of coefficients) and
//     PrimitivePart replace the monic normalization of field coefficients
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/groebner/poly"
//
//	// f = 2·x1·x2² − 3·x3 over three variables
//	f := poly.New(3,
//	  poly.Term(2, 1, 2, 0),
//	  poly.Term(-3, 0, 0, 1),
//	)
//	g := f.Mul(f).PrimitivePart()
//
// The zero polynomial is the empty term set; Content of zero is 1 and
// PrimitivePart of zero is zero (definitional no-ops, never errors).
//
// See example_test.go for runnable examples.
package poly

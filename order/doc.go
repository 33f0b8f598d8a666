// Package order provides monomial orderings for multivariate polynomials.
//
// A monomial ordering is a total, well-founded, multiplicative order on
// exponent vectors with the all-zero vector as its unique minimum. These
// three properties are exactly what Buchberger's algorithm needs to
// terminate: every reduction step strictly decreases the leading term, and
// no infinite descending chain exists.
//
// Three classical orderings are provided:
//
//   - Lex     — pure lexicographic: the first index where the exponents
//     differ decides.
//   - GrLex   — graded lex: total degree first, ties broken by Lex.
//   - GrevLex — graded reverse lex: total degree first, ties broken by
//     scanning from the LAST index with the comparison inverted.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/groebner/order"
//
//	ord, err := order.Parse("grevlex")
//	if err != nil { … }
//	if ord.Compare(a, b) > 0 { … } // a is the larger monomial
//
// All comparators are pure functions of their inputs: no state, no
// allocation, O(n) time in the vector length.
package order

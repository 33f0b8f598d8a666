// Package groebner is an exact, integer-only Gröbner-basis toolkit for
// multivariate polynomial ideals over Z.
//
// 🚀 What is groebner?
//
//	A deterministic, zero-dependency library that canonicalizes a finitely
//	generated polynomial ideal into a reduced basis and answers
//	ideal-membership queries:
//		• Polynomial core: immutable multivariate polynomials over Z
//		• Orderings: lex, graded lex, graded reverse lex
//		• Division: multivariate reduction with exact coefficient divisibility
//		• Buchberger: FIFO critical-pair fixpoint with an iteration cap
//		• Post-processing: basis minimization and single-pass reduction
//		• Membership: remainder-is-zero ideal tests
//
// ✨ Why choose groebner?
//
//   - Exact arithmetic – big.Int coefficients, no rounding, no field tricks
//   - Integer-native – content/primitive-part in place of monic normalization
//   - Deterministic – sequential pair processing, reproducible bases
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	poly/       — Monomial & Polynomial values, content and primitive part
//	order/      — pluggable monomial orderings (lex, grlex, grevlex)
//	buchberger/ — division, S-polynomials, fixpoint loop, minimize/reduce
//
// Quick example:
//
//	res, err := buchberger.Compute(gens, order.Lex)
//	if err != nil { … }
//	fmt.Println(res.Basis, res.Stats.Iterations)
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/groebner
package groebner

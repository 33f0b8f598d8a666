// Package buchberger computes Gröbner bases of polynomial ideals over Z
// using Buchberger's algorithm, adapted to integer coefficients.
//
// 🚀 What is buchberger?
//
//	The engine that canonicalizes a finitely generated ideal and answers
//	membership queries:
//	  • Divide       — multivariate reduction against an ordered divisor list
//	  • SPolynomial  — leading-term cancellation between two polynomials
//	  • Compute      — the critical-pair fixpoint loop with an iteration cap
//	  • Minimize     — drop members with redundant leading monomials
//	  • Reduce       — a single canonicalizing reduction pass
//	  • IsInIdeal    — remainder-is-zero membership test
//
// ✨ The integer adaptation:
//
//	Z is not a field, so no polynomial can be made monic. Instead the engine
//	  - requires EXACT integer divisibility of leading coefficients before a
//	    division step may fire (stricter than the field case),
//	  - uses the integer lcm of leading coefficients when building
//	    S-polynomials, and
//	  - bounds coefficient growth by taking primitive parts (dividing out the
//	    gcd of the coefficients) wherever a field implementation would
//	    normalize the leading coefficient to 1.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/groebner/buchberger"
//	  "github.com/katalvlaran/groebner/order"
//	)
//
//	res, err := buchberger.Compute(gens, order.Lex,
//	  buchberger.WithMaxIterations(5000),
//	)
//	if err != nil { … }
//	if res.Status == buchberger.StatusIterationLimitReached {
//	  // the returned basis is NOT guaranteed to be a Gröbner basis
//	}
//
// Determinism:
//
//	The loop is purely sequential: a FIFO pair queue with no selection
//	heuristic, divisor scans in list order, and an append-only basis with
//	stable indices. Two runs over the same input produce identical bases,
//	statistics and trace output. The only resource bound is the iteration
//	cap; basis size and coefficient magnitude are unbounded, so embedding
//	contexts must impose their own external limits.
//
// See example_test.go for runnable examples.
package buchberger

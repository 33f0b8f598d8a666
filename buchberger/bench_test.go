package buchberger_test

import (
	"testing"

	"github.com/katalvlaran/groebner/buchberger"
	"github.com/katalvlaran/groebner/order"
	"github.com/katalvlaran/groebner/poly"
)

// benchSystem is a small two-variable system whose run exercises every
// engine path: non-trivial S-polynomials, basis growth, minimization and
// reduction.
func benchSystem() []poly.Polynomial {
	return []poly.Polynomial{
		poly.New(2, poly.Term(1, 2, 0), poly.Term(-1, 0, 1)), // x1² − x2
		poly.New(2, poly.Term(1, 1, 1), poly.Term(-1)),       // x1x2 − 1
	}
}

func BenchmarkCompute_Lex(b *testing.B) {
	gens := benchSystem()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := buchberger.Compute(gens, order.Lex); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompute_GrevLex(b *testing.B) {
	gens := benchSystem()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := buchberger.Compute(gens, order.GrevLex); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDivide(b *testing.B) {
	f := poly.New(2,
		poly.Term(6, 3, 1), poly.Term(-4, 2, 2), poly.Term(9, 1, 0), poly.Term(-1),
	)
	divisors := benchSystem()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := buchberger.Divide(f, divisors, order.Lex); err != nil {
			b.Fatal(err)
		}
	}
}

package buchberger

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/groebner/order"
	"github.com/katalvlaran/groebner/poly"
)

// Compute grows the input generators into a Gröbner basis of the ideal they
// generate, under ord, using Buchberger's algorithm over Z.
//
// Algorithm outline:
//  1. Seed the basis G with the primitive parts of the non-zero generators
//     and enqueue every unordered index pair (FIFO, no selection heuristic).
//  2. Pop the front pair (i,j), build S = SPolynomial(G[i], G[j]) and reduce
//     S against the ENTIRE current G (list order, exact coefficient
//     divisibility — see Divide).
//  3. If the remainder is non-zero: take its primitive part, append it as a
//     new basis index k, and push every pair (m,k), m<k, to the back of the
//     queue. The basis is append-only; indices referenced by queued pairs
//     stay stable forever.
//  4. Stop when the queue drains (StatusCompleted) or when MaxIterations
//     pairs have been processed (StatusIterationLimitReached).
//
// On StatusCompleted the basis is post-processed with Minimize and a single
// Reduce pass, yielding a canonical reduced basis. On a capped run the raw
// grown basis is returned untouched: it is not guaranteed to be a Gröbner
// basis and must not be dressed up as one.
//
// The run is strictly sequential and deterministic; all state is private to
// the call. Reaching the cap is not an error (soft incompleteness — check
// Result.Status).
//
// Errors: ErrNoGenerators, ErrVarCountMismatch, ErrBadMaxIterations,
// ErrBadDivisionMode, order.ErrUnknownOrdering.
func Compute(generators []poly.Polynomial, ord order.Ordering, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !ord.Valid() {
		return Result{}, order.ErrUnknownOrdering
	}
	if !o.Mode.Valid() {
		return Result{}, ErrBadDivisionMode
	}
	if o.MaxIterations <= 0 {
		return Result{}, ErrBadMaxIterations
	}
	if len(generators) == 0 {
		return Result{}, ErrNoGenerators
	}
	nvars := generators[0].NumVars()
	for _, g := range generators[1:] {
		if g.NumVars() != nvars {
			return Result{}, ErrVarCountMismatch
		}
	}

	res := Result{Ordering: ord, Status: StatusCompleted}

	// Seed: primitive parts of the non-zero generators. Zero generators add
	// nothing to the ideal and have no leading term to pair on.
	basis := make([]poly.Polynomial, 0, len(generators))
	for _, g := range generators {
		if g.IsZero() {
			continue
		}
		basis = append(basis, g.PrimitivePart())
		res.Stats.PrimitivizationsPerformed++
	}
	if len(basis) == 0 {
		return Result{}, ErrNoGenerators
	}

	// All unordered index pairs over the initial basis, FIFO.
	queue := make([][2]int, 0, len(basis)*(len(basis)-1)/2)
	for j := 1; j < len(basis); j++ {
		for i := 0; i < j; i++ {
			queue = append(queue, [2]int{i, j})
		}
	}

	var trace io.Writer
	if o.Verbose {
		trace = o.Trace
		if trace == nil {
			trace = os.Stdout
		}
	}

	for len(queue) > 0 {
		if res.Stats.Iterations >= o.MaxIterations {
			res.Status = StatusIterationLimitReached

			break
		}
		res.Stats.Iterations++

		pair := queue[0]
		queue = queue[1:]

		s := spoly(basis[pair[0]], basis[pair[1]], ord)
		res.Stats.SPolynomialsComputed++
		res.Stats.PrimitivizationsPerformed++

		if s.IsZero() {
			if trace != nil {
				fmt.Fprintf(trace, "iter=%d pair=(%d,%d) spoly=0\n",
					res.Stats.Iterations, pair[0], pair[1])
			}

			continue
		}

		_, rem := divide(s, basis, ord, o.Mode)
		res.Stats.ReductionsPerformed++

		if trace != nil {
			fmt.Fprintf(trace, "iter=%d pair=(%d,%d) spoly=%s remainder=%s basis=%d queue=%d\n",
				res.Stats.Iterations, pair[0], pair[1], s, rem, len(basis), len(queue))
		}

		if rem.IsZero() {
			continue
		}

		rem = rem.PrimitivePart()
		res.Stats.PrimitivizationsPerformed++

		basis = append(basis, rem)
		k := len(basis) - 1
		for m := 0; m < k; m++ {
			queue = append(queue, [2]int{m, k})
		}
	}

	if res.Status == StatusCompleted {
		basis = minimize(basis, ord)
		basis = reduceBasis(basis, ord, o.Mode, &res.Stats)
	}
	res.Basis = basis

	return res, nil
}

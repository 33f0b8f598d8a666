// Package buchberger defines the options, results and sentinel errors of
// the integer Gröbner-basis engine.
package buchberger

import (
	"errors"
	"io"

	"github.com/katalvlaran/groebner/order"
	"github.com/katalvlaran/groebner/poly"
)

// Sentinel errors returned by the engine's entry points.
var (
	// ErrNoGenerators indicates that Compute received no generators, or only
	// zero polynomials (the zero ideal needs no basis computation).
	ErrNoGenerators = errors.New("buchberger: no non-zero generators provided")

	// ErrVarCountMismatch indicates that the supplied polynomials do not all
	// range over the same number of variables.
	ErrVarCountMismatch = errors.New("buchberger: polynomials have differing variable counts")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("buchberger: MaxIterations must be positive")

	// ErrBadDivisionMode indicates an undefined DivisionMode value.
	ErrBadDivisionMode = errors.New("buchberger: unknown division mode")

	// ErrZeroPolynomial indicates that an S-polynomial was requested for a
	// zero polynomial, which has no leading term.
	ErrZeroPolynomial = errors.New("buchberger: S-polynomial of a zero polynomial")
)

// DivisionMode selects what the division engine does when the working
// remainder's leading term has no eligible divisor (no divisor whose leading
// monomial divides it AND whose leading coefficient divides it exactly).
//
//   - HaltAtIrreducible — stop the whole reduction immediately and return
//     everything that remains, including lower-order terms that might still
//     be reducible. This is the default.
//
//   - SetAsideIrreducible — the textbook rule: move the irreducible leading
//     term into an accumulated remainder and keep reducing the rest.
//
// Both modes preserve the division identity
// f == Σ quotient[i]·divisor[i] + remainder.
type DivisionMode int

const (
	// HaltAtIrreducible stops reduction at the first irreducible leading term.
	HaltAtIrreducible DivisionMode = iota

	// SetAsideIrreducible sets irreducible leading terms aside and continues.
	SetAsideIrreducible
)

// Valid reports whether m is a defined DivisionMode.
func (m DivisionMode) Valid() bool {
	return m == HaltAtIrreducible || m == SetAsideIrreducible
}

// String returns a short human-readable mode name.
func (m DivisionMode) String() string {
	switch m {
	case HaltAtIrreducible:
		return "halt-at-irreducible"
	case SetAsideIrreducible:
		return "set-aside-irreducible"
	default:
		return "unknown"
	}
}

// Status reports how a Compute run ended. A capped run's basis must not be
// trusted as a Gröbner basis; the typed status exists so callers cannot
// silently ignore that.
type Status int

const (
	// StatusCompleted means the pair queue drained: every critical pair was
	// processed and the returned basis is a minimized, reduced Gröbner basis.
	StatusCompleted Status = iota

	// StatusIterationLimitReached means the iteration cap fired before the
	// queue drained. The returned basis is the raw grown basis — possibly
	// incomplete, and deliberately NOT minimized or reduced.
	StatusIterationLimitReached
)

// String returns a short human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusIterationLimitReached:
		return "iteration-limit-reached"
	default:
		return "unknown"
	}
}

// Stats counts the work a Compute run performed. Counters only ever
// increase; they are informational and impose no behavior.
type Stats struct {
	// Iterations is the number of critical pairs popped from the queue.
	Iterations int

	// SPolynomialsComputed counts S-polynomial constructions.
	SPolynomialsComputed int

	// ReductionsPerformed counts full division calls (one per S-polynomial
	// reduction, plus one per member during the final reduction pass).
	ReductionsPerformed int

	// PrimitivizationsPerformed counts primitive-part applications
	// (generator seeding, S-polynomial construction, remainder adoption and
	// the final reduction pass).
	PrimitivizationsPerformed int
}

// Result is the outcome of Compute.
type Result struct {
	// Basis is the computed basis. For StatusCompleted it is minimized and
	// reduced; for StatusIterationLimitReached it is the raw grown basis.
	Basis []poly.Polynomial

	// Stats holds the run's work counters.
	Stats Stats

	// Status distinguishes a drained queue from a capped run.
	Status Status

	// Ordering is the monomial ordering the basis was computed under.
	Ordering order.Ordering
}

// DivisionResult is the outcome of Divide: per-divisor quotients (aligned
// with the divisor list) and a remainder, satisfying
// f == Σ Quotients[i]·divisors[i] + Remainder.
type DivisionResult struct {
	Quotients []poly.Polynomial
	Remainder poly.Polynomial
}

// Options configures the engine.
//
// MaxIterations — cap on critical pairs processed by Compute. Reaching the
// cap is NOT an error; it is surfaced as StatusIterationLimitReached.
// Must be positive (ErrBadMaxIterations otherwise). Default 1000.
//
// Mode — division behavior at an irreducible leading term; see DivisionMode.
// Default HaltAtIrreducible.
//
// Verbose / Trace — when Verbose is true, Compute writes one line per
// iteration to Trace (os.Stdout when Trace is nil). The engine performs no
// other I/O.
type Options struct {
	MaxIterations int
	Mode          DivisionMode
	Verbose       bool
	Trace         io.Writer
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// WithMaxIterations sets the critical-pair cap. Non-positive values are
// rejected by Compute with ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithDivisionMode selects the division behavior at an irreducible leading
// term. The default is HaltAtIrreducible; SetAsideIrreducible is the
// textbook multivariate division rule.
func WithDivisionMode(m DivisionMode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithTrace enables verbose per-iteration tracing to w. A nil w falls back
// to os.Stdout.
func WithTrace(w io.Writer) Option {
	return func(o *Options) {
		o.Verbose = true
		o.Trace = w
	}
}

// DefaultOptions returns the engine defaults: MaxIterations=1000,
// HaltAtIrreducible division, tracing off.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 1000,
		Mode:          HaltAtIrreducible,
	}
}

package order

import "errors"

// ErrUnknownOrdering indicates that a name passed to Parse, or an Ordering
// value passed to an engine entry point, does not denote a known ordering.
var ErrUnknownOrdering = errors.New("order: unknown monomial ordering")

// Ordering selects one of the supported monomial orderings. The zero value
// is Lex, the engine-wide default.
type Ordering int

const (
	// Lex is pure lexicographic order: the first index where two exponent
	// vectors differ decides, higher exponent wins.
	Lex Ordering = iota

	// GrLex is graded lexicographic order: higher total degree wins, equal
	// degrees fall back to Lex.
	GrLex

	// GrevLex is graded reverse lexicographic order: higher total degree
	// wins; equal degrees are decided by the LAST index where the vectors
	// differ, and there the SMALLER exponent wins.
	GrevLex
)

// Valid reports whether o is one of the defined orderings.
func (o Ordering) Valid() bool {
	return o == Lex || o == GrLex || o == GrevLex
}

// String returns the canonical lowercase name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Lex:
		return "lex"
	case GrLex:
		return "grlex"
	case GrevLex:
		return "grevlex"
	default:
		return "unknown"
	}
}

// Parse maps a canonical name ("lex", "grlex", "grevlex") to an Ordering.
// Unknown names return ErrUnknownOrdering.
func Parse(name string) (Ordering, error) {
	switch name {
	case "lex":
		return Lex, nil
	case "grlex":
		return GrLex, nil
	case "grevlex":
		return GrevLex, nil
	default:
		return Lex, ErrUnknownOrdering
	}
}

// Compare compares two exponent vectors under o and returns −1, 0 or +1.
//
// Contracts:
//   - len(a) == len(b); entries are non-negative.
//   - o.Valid(); an invalid Ordering compares like Lex (callers validate
//     at their entry points).
//
// Complexity: O(n) time, zero allocations.
func (o Ordering) Compare(a, b []int) int {
	switch o {
	case GrLex:
		if d := sign(TotalDegree(a) - TotalDegree(b)); d != 0 {
			return d
		}

		return lex(a, b)
	case GrevLex:
		if d := sign(TotalDegree(a) - TotalDegree(b)); d != 0 {
			return d
		}
		// Reverse scan with inverted comparison: the vector that is SMALLER
		// at the last differing index is the LARGER monomial.
		for i := len(a) - 1; i >= 0; i-- {
			switch {
			case a[i] < b[i]:
				return 1
			case a[i] > b[i]:
				return -1
			}
		}

		return 0
	default:
		return lex(a, b)
	}
}

// TotalDegree returns the sum of all exponents in a.
func TotalDegree(a []int) int {
	d := 0
	for _, e := range a {
		d += e
	}

	return d
}

func lex(a, b []int) int {
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

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

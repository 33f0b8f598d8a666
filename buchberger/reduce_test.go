package buchberger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groebner/buchberger"
	"github.com/katalvlaran/groebner/order"
	"github.com/katalvlaran/groebner/poly"
)

// TestMinimize_DropsDivisibleLeadingMonomial: [x1, x1·x2] → [x1].
func TestMinimize_DropsDivisibleLeadingMonomial(t *testing.T) {
	basis := []poly.Polynomial{
		p2(poly.Term(1, 1, 0)),
		p2(poly.Term(1, 1, 1)),
	}

	min, err := buchberger.Minimize(basis, order.Lex)
	require.NoError(t, err)
	require.Len(t, min, 1)
	assert.True(t, min[0].Equal(basis[0]))
}

// TestMinimize_CoefficientIgnored: minimization is a monomial-only
// criterion — 5x1 evicts 3x1·x2 even though 5 ∤ 3.
func TestMinimize_CoefficientIgnored(t *testing.T) {
	basis := []poly.Polynomial{
		p2(poly.Term(5, 1, 0)),
		p2(poly.Term(3, 1, 1)),
	}

	min, err := buchberger.Minimize(basis, order.Lex)
	require.NoError(t, err)
	require.Len(t, min, 1)
	assert.True(t, min[0].Equal(basis[0]))
}

// TestMinimize_EqualLeadingMonomials: exactly one of two members with the
// same leading monomial survives — the earlier one.
func TestMinimize_EqualLeadingMonomials(t *testing.T) {
	basis := []poly.Polynomial{
		p2(poly.Term(2, 1, 0), poly.Term(1)),
		p2(poly.Term(3, 1, 0), poly.Term(-1)),
	}

	min, err := buchberger.Minimize(basis, order.Lex)
	require.NoError(t, err)
	require.Len(t, min, 1)
	assert.True(t, min[0].Equal(basis[0]))
}

// TestMinimize_Idempotent: minimizing an already-minimized basis is a no-op.
func TestMinimize_Idempotent(t *testing.T) {
	basis := []poly.Polynomial{
		p3(poly.Term(1, 2, 0, 0)),
		p3(poly.Term(1, 0, 3, 0)),
		p3(poly.Term(1, 1, 1, 1)),
		p3(poly.Term(1, 0, 0, 2)),
	}

	once, err := buchberger.Minimize(basis, order.Lex)
	require.NoError(t, err)
	twice, err := buchberger.Minimize(once, order.Lex)
	require.NoError(t, err)

	require.Equal(t, len(once), len(twice))
	for i := range once {
		assert.True(t, once[i].Equal(twice[i]))
	}
}

func TestMinimize_DropsZeroMembers(t *testing.T) {
	basis := []poly.Polynomial{
		poly.Zero(2),
		p2(poly.Term(1, 1, 0)),
	}

	min, err := buchberger.Minimize(basis, order.Lex)
	require.NoError(t, err)
	require.Len(t, min, 1)
	assert.True(t, min[0].Equal(basis[1]))
}

func TestMinimize_Validation(t *testing.T) {
	_, err := buchberger.Minimize(nil, order.Ordering(9))
	assert.ErrorIs(t, err, order.ErrUnknownOrdering)

	_, err = buchberger.Minimize(
		[]poly.Polynomial{poly.Zero(1), poly.Zero(2)}, order.Lex)
	assert.ErrorIs(t, err, buchberger.ErrVarCountMismatch)
}

// TestReduce_PrimitivizesAndSignNormalizes: a lone −6x − 9 reduces to the
// canonical 2x + 3.
func TestReduce_PrimitivizesAndSignNormalizes(t *testing.T) {
	basis := []poly.Polynomial{
		poly.New(1, poly.Term(-6, 1), poly.Term(-9)),
	}

	red, err := buchberger.Reduce(basis, order.Lex)
	require.NoError(t, err)
	require.Len(t, red, 1)
	assert.True(t, red[0].Equal(poly.New(1, poly.Term(2, 1), poly.Term(3))), "got %s", red[0])
}

// TestReduce_DropsMembersReducingToZero: a member generated by the others
// vanishes; that is redundancy elimination, not an error.
func TestReduce_DropsMembersReducingToZero(t *testing.T) {
	x := poly.New(1, poly.Term(1, 1))
	basis := []poly.Polynomial{
		x,
		poly.New(1, poly.Term(1, 2)), // x² = x·x
	}

	red, err := buchberger.Reduce(basis, order.Lex)
	require.NoError(t, err)
	require.Len(t, red, 1)
	assert.True(t, red[0].Equal(x))
}

// TestReduce_SinglePassOnly: the pass is not iterated to a fixpoint. With
// halt-at-irreducible division, x1 + x2 cannot be rewritten through x2 at
// all (its leading term x1 is irreducible), so one pass returns it intact —
// and a second pass would too.
func TestReduce_SinglePassOnly(t *testing.T) {
	basis := []poly.Polynomial{
		p2(poly.Term(1, 1, 0), poly.Term(1, 0, 1)),
		p2(poly.Term(1, 0, 1)),
	}

	red, err := buchberger.Reduce(basis, order.Lex)
	require.NoError(t, err)
	require.Len(t, red, 2)
	assert.True(t, red[0].Equal(basis[0]))
	assert.True(t, red[1].Equal(basis[1]))

	// Under the textbook mode the same pass rewrites the tail immediately.
	red, err = buchberger.Reduce(basis, order.Lex,
		buchberger.WithDivisionMode(buchberger.SetAsideIrreducible))
	require.NoError(t, err)
	require.Len(t, red, 2)
	assert.True(t, red[0].Equal(p2(poly.Term(1, 1, 0))), "got %s", red[0])
	assert.True(t, red[1].Equal(basis[1]))
}

func TestReduce_Validation(t *testing.T) {
	_, err := buchberger.Reduce(nil, order.Ordering(9))
	assert.ErrorIs(t, err, order.ErrUnknownOrdering)

	_, err = buchberger.Reduce(nil, order.Lex,
		buchberger.WithDivisionMode(buchberger.DivisionMode(9)))
	assert.ErrorIs(t, err, buchberger.ErrBadDivisionMode)

	_, err = buchberger.Reduce(
		[]poly.Polynomial{poly.Zero(1), poly.Zero(2)}, order.Lex)
	assert.ErrorIs(t, err, buchberger.ErrVarCountMismatch)
}

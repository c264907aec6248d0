package semantic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-semantic-collections/semantic"
)

func TestEqual(t *testing.T) {
	assert.True(t, semantic.Equal(semantic.Int(1), semantic.Float(1.0)))
	assert.False(t, semantic.Equal(semantic.Int(1), semantic.Bool(true)))
	assert.False(t, semantic.Equal(semantic.Int(0), semantic.Null()))
	assert.True(t, semantic.Equal(semantic.Null(), semantic.Null()))
	assert.False(t, semantic.Equal(semantic.Float(math.NaN()), semantic.Float(math.NaN())))

	a := semantic.MappingOf(semantic.E("x", 1), semantic.E("y", 2))
	b := semantic.MappingOf(semantic.E("y", 2.0), semantic.E("x", 1))
	assert.True(t, semantic.Equal(semantic.Map(a), semantic.Map(b)), "key order is not compared")

	assert.False(t, semantic.Equal(semantic.Seq(ints(1, 2)), semantic.Seq(ints(2, 1))))
}

func TestCompare(t *testing.T) {
	c, err := semantic.Compare(semantic.Int(1), semantic.Float(1.5))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = semantic.Compare(semantic.String("b"), semantic.String("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = semantic.Compare(semantic.Seq(ints(1, 2)), semantic.Seq(ints(1, 2, 0)))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	_, err = semantic.Compare(semantic.Int(1), semantic.String("1"))
	assert.ErrorIs(t, err, semantic.ErrIncomparable)

	_, err = semantic.Compare(semantic.Null(), semantic.Null())
	assert.ErrorIs(t, err, semantic.ErrIncomparable)
}

func TestCompareOp(t *testing.T) {
	ok, err := semantic.CompareOp(semantic.Int(3), semantic.OpGe, semantic.Float(3))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = semantic.CompareOp(semantic.String("a"), semantic.OpNe, semantic.Int(1))
	require.NoError(t, err)
	assert.True(t, ok, "equality never fails across kinds")

	ok, err = semantic.CompareOp(semantic.Float(math.NaN()), semantic.OpLt, semantic.Int(1))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = semantic.CompareOp(semantic.Int(1), semantic.OpGt, semantic.String("a"))
	assert.ErrorIs(t, err, semantic.ErrIncomparable)

	_, err = semantic.CompareOp(semantic.Int(1), semantic.Operator("=~"), semantic.Int(1))
	assert.ErrorIs(t, err, semantic.ErrUnsupportedOperator)
}

func TestParseOperator(t *testing.T) {
	for _, s := range []string{"==", "!=", ">", "<", ">=", "<="} {
		op, err := semantic.ParseOperator(s)
		require.NoError(t, err)
		assert.Equal(t, semantic.Operator(s), op)
	}
	_, err := semantic.ParseOperator("<>")
	assert.ErrorIs(t, err, semantic.ErrUnsupportedOperator)
}

func TestIntFloatCompareIsExact(t *testing.T) {
	big := semantic.Int(1<<53 + 1)
	near := semantic.Float(1 << 53)
	assert.False(t, semantic.Equal(big, near))
	assert.True(t, semantic.Equal(semantic.Int(1<<53), near))

	c, err := semantic.Compare(big, near)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = semantic.Compare(near, big)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = semantic.Compare(semantic.Int(math.MaxInt64), semantic.Float(math.Exp2(63)))
	require.NoError(t, err)
	assert.Equal(t, -1, c)
	assert.False(t, semantic.Equal(semantic.Int(math.MaxInt64), semantic.Float(math.Exp2(63))))

	c, err = semantic.Compare(semantic.Int(math.MinInt64), semantic.Float(-math.Exp2(63)))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = semantic.Compare(semantic.Int(-2), semantic.Float(-2.5))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = semantic.Compare(semantic.Int(3), semantic.Float(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	assert.False(t, semantic.Equal(semantic.Int(0), semantic.Float(math.NaN())))
}

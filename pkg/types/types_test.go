package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	doc := Document{
		"a": float64(1),
		"b": Document{
			"c": "nested",
		},
	}

	require.Equal(t, float64(1), Get(doc, "a"))
	require.Equal(t, "nested", Get(doc, "b.c"))
	require.Nil(t, Get(doc, "missing"))
	require.Nil(t, Get(doc, "a.b"))
	require.Nil(t, Get(doc, "b.c.d"))
}

func TestCompare(t *testing.T) {
	require.Equal(t, 0, Compare(nil, nil))
	require.Equal(t, 0, Compare(int64(2), float64(2)))
	require.Equal(t, -1, Compare(1, 2))
	require.Equal(t, 1, Compare("b", "a"))

	// Values of different types order by type rank.
	require.Equal(t, -1, Compare(nil, 5))
	require.Equal(t, -1, Compare(100, "1"))
	require.Equal(t, -1, Compare("z", Document{}))
	require.Equal(t, 1, Compare(true, []any{}))

	require.Equal(t, -1, Compare([]any{1, 2}, []any{1, 3}))
	require.Equal(t, -1, Compare([]any{1}, []any{1, 0}))
	require.Equal(t, 0, Compare(
		Document{"x": 1, "y": 2},
		Document{"y": 2, "x": 1},
	))
}

func TestKey(t *testing.T) {
	// Equal values produce equal keys regardless of field order or
	// numeric width.
	require.Equal(t,
		Key(Document{"a": float64(1), "b": "x"}),
		Key(Document{"b": "x", "a": int64(1)}),
	)
	require.NotEqual(t, Key(float64(1)), Key("1"))
	require.NotEqual(t, Key(nil), Key(false))
	require.NotEqual(t, Key([]any{"a", "b"}), Key([]any{"ab"}))
}

func TestNumeric(t *testing.T) {
	n := Numeric{}
	require.Equal(t, int64(0), n.Value())

	require.True(t, n.Add(2))
	require.True(t, n.Add(int64(3)))
	require.Equal(t, int64(5), n.Value())

	require.False(t, n.Add("not a number"))
	require.Equal(t, int64(5), n.Value())

	require.True(t, n.Add(0.5))
	require.Equal(t, 5.5, n.Value())
	require.Equal(t, 5.5, n.Float())
}

func TestAsInt64(t *testing.T) {
	v, ok := AsInt64(float64(7))
	require.True(t, ok)
	require.Equal(t, int64(7), v)

	_, ok = AsInt64(7.5)
	require.False(t, ok)

	_, ok = AsInt64("7")
	require.False(t, ok)
}

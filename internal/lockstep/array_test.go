package lockstep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayPushAndInsertOrder(t *testing.T) {
	a := New[int, string](4)
	ok, _ := a.Push(10, "ten")
	require.True(t, ok)
	ok, _ = a.Push(30, "thirty")
	require.True(t, ok)
	ok, _ = a.Insert(1, 20, "twenty")
	require.True(t, ok)

	require.Equal(t, []int{10, 20, 30}, a.Keys())
	require.Equal(t, []string{"ten", "twenty", "thirty"}, a.Values())
}

func TestArrayOverflow(t *testing.T) {
	a := New[int, int](2)
	ok, _ := a.Push(1, 1)
	require.True(t, ok)
	ok, _ = a.Push(2, 2)
	require.True(t, ok)

	ok, overflow := a.Push(3, 3)
	require.False(t, ok)
	require.Equal(t, 3, overflow.Key)
	require.Equal(t, 3, overflow.Value)
	require.Equal(t, 2, a.Len())
}

func TestArrayRemoveShiftsSuffix(t *testing.T) {
	a := New[int, string](4)
	a.Push(1, "a")
	a.Push(2, "b")
	a.Push(3, "c")

	key, value := a.Remove(1)
	require.Equal(t, 2, key)
	require.Equal(t, "b", value)
	require.Equal(t, []int{1, 3}, a.Keys())
	require.Equal(t, []string{"a", "c"}, a.Values())
}

func TestArrayPop(t *testing.T) {
	a := New[int, int](3)
	a.Push(1, 100)
	a.Push(2, 200)

	key, value := a.Pop()
	require.Equal(t, 2, key)
	require.Equal(t, 200, value)
	require.Equal(t, 1, a.Len())
}

func TestArrayValueAtMutatesInPlace(t *testing.T) {
	a := New[int, int](2)
	a.Push(1, 100)
	*a.ValueAt(0) = 999
	require.Equal(t, []int{999}, a.Values())
}

func TestArrayZeroesClearedSlotOnRemove(t *testing.T) {
	type box struct{ n *int }
	a := New[int, box](2)
	v := 42
	a.Push(1, box{n: &v})
	_, removed := a.Remove(0)
	require.Same(t, &v, removed.n)
	require.Equal(t, 0, a.Len())
	require.Nil(t, a.values[:1][0].n)
}

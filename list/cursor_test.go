package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorTraversal(t *testing.T) {
	list := listOf(1, 2, 3)
	c, err := list.Cursor(0)
	require.NoError(t, err)
	assert.False(t, c.HasPrevious())
	assert.Equal(t, -1, c.PreviousIndex())

	var got []int
	for c.HasNext() {
		v, err := c.Next()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 3, c.NextIndex())
	_, err = c.Next()
	assert.ErrorIs(t, err, ErrNoSuchElement)

	got = got[:0]
	for c.HasPrevious() {
		v, err := c.Previous()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
	assert.Equal(t, 0, c.NextIndex())
}

func TestCursorFromMiddle(t *testing.T) {
	list := listOf(1, 2, 3, 4, 5, 6)
	for i := 0; i <= list.Len(); i++ {
		c, err := list.Cursor(i)
		require.NoError(t, err)
		assert.Equal(t, i, c.NextIndex())
		if i < list.Len() {
			v, err := c.Next()
			require.NoError(t, err)
			assert.Equal(t, i+1, v)
		} else {
			v, err := c.Previous()
			require.NoError(t, err)
			assert.Equal(t, i, v)
		}
	}
}

func TestCursorRemoveAfterNext(t *testing.T) {
	list := listOf(1, 2, 3)
	c, err := list.Cursor(1)
	require.NoError(t, err)
	v, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	require.NoError(t, c.Remove())
	assert.Equal(t, []int{1, 3}, list.ToSlice())
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, 1, c.NextIndex())

	v, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.NoError(t, list.verify())
}

func TestCursorRemoveAfterPrevious(t *testing.T) {
	list := listOf(1, 2, 3)
	c, err := list.Cursor(2)
	require.NoError(t, err)
	v, err := c.Previous()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	require.NoError(t, c.Remove())
	assert.Equal(t, []int{1, 3}, list.ToSlice())
	assert.Equal(t, 1, c.NextIndex())

	v, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = c.Previous()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = c.Previous()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.NoError(t, list.verify())
}

func TestCursorPreviousAtStart(t *testing.T) {
	list := listOf(1, 2, 3)
	c, err := list.Cursor(0)
	require.NoError(t, err)
	_, err = c.Previous()
	assert.ErrorIs(t, err, ErrNoSuchElement)

	v, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = c.Previous()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, c.NextIndex())
}

func TestCursorStaleAfterListChange(t *testing.T) {
	list := listOf(1, 2)
	c, err := list.Cursor(0)
	require.NoError(t, err)
	v, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	list.AddLast(99)
	_, err = c.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification)
	_, err = c.Previous()
	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.ErrorIs(t, c.Remove(), ErrConcurrentModification)
	assert.ErrorIs(t, c.Set(0), ErrConcurrentModification)
	assert.ErrorIs(t, c.Add(0), ErrConcurrentModification)
	assert.Equal(t, []int{1, 2, 99}, list.ToSlice())
}

func TestCursorSurvivesListSet(t *testing.T) {
	list := listOf(1, 2)
	c, err := list.Cursor(0)
	require.NoError(t, err)
	_, err = list.Set(1, 20)
	require.NoError(t, err)
	_, err = c.Next()
	require.NoError(t, err)
	v, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, 20, v)
}

func TestCursorEditsInvalidateSiblings(t *testing.T) {
	list := listOf(1, 2, 3)
	a, err := list.Cursor(0)
	require.NoError(t, err)
	b, err := list.Cursor(0)
	require.NoError(t, err)

	_, err = a.Next()
	require.NoError(t, err)
	require.NoError(t, a.Remove())
	require.NoError(t, a.Add(10))
	v, err := a.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = b.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.Equal(t, []int{10, 2, 3}, list.ToSlice())
}

func TestCursorIllegalState(t *testing.T) {
	list := listOf(1, 2, 3)
	c, err := list.Cursor(0)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Remove(), ErrIllegalState)
	assert.ErrorIs(t, c.Set(5), ErrIllegalState)

	_, err = c.Next()
	require.NoError(t, err)
	require.NoError(t, c.Remove())
	assert.ErrorIs(t, c.Remove(), ErrIllegalState)
	assert.ErrorIs(t, c.Set(5), ErrIllegalState)

	_, err = c.Next()
	require.NoError(t, err)
	require.NoError(t, c.Add(7))
	assert.ErrorIs(t, c.Remove(), ErrIllegalState)
	assert.ErrorIs(t, c.Set(5), ErrIllegalState)
	assert.Equal(t, []int{2, 7, 3}, list.ToSlice())
}

func TestCursorSet(t *testing.T) {
	list := listOf(1, 2, 3)
	c, err := list.Cursor(3)
	require.NoError(t, err)
	modCount := list.modCount

	_, err = c.Previous()
	require.NoError(t, err)
	require.NoError(t, c.Set(30))
	require.NoError(t, c.Set(31))
	_, err = c.Previous()
	require.NoError(t, err)
	require.NoError(t, c.Set(20))
	assert.Equal(t, []int{1, 20, 31}, list.ToSlice())
	assert.Equal(t, modCount, list.modCount)
}

func TestCursorAdd(t *testing.T) {
	list := New[int]()
	c, err := list.Cursor(0)
	require.NoError(t, err)
	require.NoError(t, c.Add(1))
	require.NoError(t, c.Add(2))
	assert.Equal(t, 2, c.NextIndex())
	assert.False(t, c.HasNext())

	v, err := c.Previous()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	require.NoError(t, c.Add(3))
	assert.Equal(t, []int{1, 3, 2}, list.ToSlice())
	assert.Equal(t, 2, c.NextIndex())

	v, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.NoError(t, list.verify())
}

func TestCursorRemoveAll(t *testing.T) {
	list := listOf(1, 2, 3, 4, 5, 6)
	c, err := list.Cursor(0)
	require.NoError(t, err)
	for c.HasNext() {
		v, err := c.Next()
		require.NoError(t, err)
		if v%2 == 0 {
			require.NoError(t, c.Remove())
		}
	}
	assert.Equal(t, []int{1, 3, 5}, list.ToSlice())

	for c.HasPrevious() {
		_, err := c.Previous()
		require.NoError(t, err)
		require.NoError(t, c.Remove())
	}
	assert.True(t, list.IsEmpty())
	assert.NoError(t, list.verify())
}

func TestCursorTraversalMatchesGet(t *testing.T) {
	list := listOf(9, 8, 7)
	require.NoError(t, list.Insert(1, 6))
	_, err := list.RemoveAt(3)
	require.NoError(t, err)
	list.AddFirst(5)

	c, err := list.Cursor(0)
	require.NoError(t, err)
	for i := 0; i < list.Len(); i++ {
		byCursor, err := c.Next()
		require.NoError(t, err)
		byIndex, err := list.Get(i)
		require.NoError(t, err)
		assert.Equal(t, byIndex, byCursor)
	}
}

func TestListIsSequence(t *testing.T) {
	var seq Sequence[string] = New[string]()
	require.NoError(t, seq.Insert(0, "a"))
	c, err := seq.Cursor(seq.Len())
	require.NoError(t, err)
	v, err := c.Previous()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

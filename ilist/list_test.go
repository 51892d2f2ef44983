package ilist

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestListEmpty(t *testing.T) {
	l := New[int]()
	assert.That(t, l.Empty())
	_, ok := l.PopFront()
	assert.That(t, !ok)
	_, ok = l.PopBack()
	assert.That(t, !ok)
	_, ok = l.Find(func(int) bool { return true })
	assert.That(t, !ok)
}

func TestListPushFrontPushBackOrder(t *testing.T) {
	l := New[int]()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)

	var got []int
	for e, ok := l.PopFront(); ok; e, ok = l.PopFront() {
		got = append(got, e.Value)
	}
	assert.Equal(t, len(got), 3)
	for i, v := range []int{1, 2, 3} {
		assert.Equal(t, got[i], v)
	}
	assert.That(t, l.Empty())
}

func TestListRemoveByEntry(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	mid := l.PushBack(2)
	l.PushBack(3)

	l.Remove(mid)

	var got []int
	for e, ok := l.PopFront(); ok; e, ok = l.PopFront() {
		got = append(got, e.Value)
	}
	assert.Equal(t, len(got), 2)
	assert.Equal(t, got[0], 1)
	assert.Equal(t, got[1], 3)
}

func TestListRemoveIsIdempotent(t *testing.T) {
	l := New[int]()
	e := l.PushBack(1)
	l.Remove(e)
	// removing an already-removed entry, or a nil entry, must not panic.
	l.Remove(e)
	l.Remove(nil)
	assert.That(t, l.Empty())
}

func TestListFind(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}
	e, ok := l.Find(func(v int) bool { return v == 7 })
	assert.That(t, ok)
	assert.Equal(t, e.Value, 7)

	_, ok = l.Find(func(v int) bool { return v == 100 })
	assert.That(t, !ok)
}

func TestListPopFrontIfPopBackIf(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)

	_, ok := l.PopFrontIf(func(v int) bool { return v == 2 })
	assert.That(t, !ok)

	e, ok := l.PopFrontIf(func(v int) bool { return v == 1 })
	assert.That(t, ok)
	assert.Equal(t, e.Value, 1)

	e, ok = l.PopBackIf(func(v int) bool { return v == 2 })
	assert.That(t, ok)
	assert.Equal(t, e.Value, 2)
	assert.That(t, l.Empty())
}

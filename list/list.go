// Package list implements a doubly linked sequential list with indexed
// access and a bidirectional cursor that can edit the list in place.
//
// Nodes live in an arena owned by the list and refer to their neighbours by
// slot index. Slot 0 is a sentinel closing the nodes into a ring, so link and
// unlink never meet a missing neighbour.
//
// A List is not safe for concurrent use. Every insertion and removal bumps a
// modification counter; a Cursor remembers the counter it last saw and fails
// with ErrConcurrentModification once the list was changed through any other
// path. This only catches misuse, it does not synchronize anything.
package list

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
)

// Sequence is an indexable sequence that hands out bidirectional cursors.
type Sequence[E any] interface {
	Len() int
	Get(index int) (E, error)
	Set(index int, val E) (E, error)
	Insert(index int, val E) error
	RemoveAt(index int) (E, error)
	Cursor(index int) (*Cursor[E], error)
}

// Consumer receives index and value during traversal; return false to stop.
type Consumer[E any] func(i int, val E) bool

type ListType[E any] struct {
	// EqualFunc is used by RemoveValue, IndexOf and Contains. When nil,
	// values are compared with reflect.DeepEqual.
	EqualFunc func(a, b E) bool
}

// List is a doubly linked list. Use New or Create; the zero value is not
// ready for use.
type List[E any] struct {
	nodes    []elem[E] // nodes[0] is the sentinel
	free     []handle
	size     int
	modCount int
	ListType[E]
}

var _ Sequence[int] = (*List[int])(nil)

func Create[E any](listType ListType[E]) *List[E] {
	var list List[E]
	list.ListType = listType
	list.nodes = []elem[E]{{prev: sentinel, next: sentinel}}
	return &list
}

// New returns an empty list comparing values with ==. Interface values whose
// dynamic type cannot be compared (slices, maps, funcs) are compared with
// reflect.DeepEqual instead.
func New[E comparable]() *List[E] {
	return Create(ListType[E]{EqualFunc: func(a, b E) bool {
		if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
			return reflect.DeepEqual(a, b)
		}
		return a == b
	}})
}

// link hooks node, whose own links already point at prev and next, into the
// ring. It is the only place size grows.
func (list *List[E]) link(prev, node, next handle) {
	list.nodes[prev].next = node
	list.nodes[next].prev = node
	list.size++
	list.modCount++
}

// unlink splices node out of the ring and returns its value. It is the only
// place size shrinks. node must not be the sentinel.
func (list *List[E]) unlink(node handle) E {
	n := list.nodes[node]
	list.nodes[n.prev].next = n.next
	list.nodes[n.next].prev = n.prev
	list.release(node)
	list.size--
	list.modCount++
	return n.val
}

// node locates the node at index, walking from whichever end is closer.
// index == size yields the sentinel.
func (list *List[E]) node(index int) handle {
	if index < list.size>>1 {
		h := list.nodes[sentinel].next
		for ; index > 0; index-- {
			h = list.nodes[h].next
		}
		return h
	}
	h := sentinel
	for ; index < list.size; index++ {
		h = list.nodes[h].prev
	}
	return h
}

func (list *List[E]) insertBefore(next handle, val E) {
	prev := list.nodes[next].prev
	list.link(prev, list.alloc(prev, val, next), next)
}

func (list *List[E]) equal(a, b E) bool {
	if list.EqualFunc == nil {
		return reflect.DeepEqual(a, b)
	}
	return list.EqualFunc(a, b)
}

func (list *List[E]) checkElementIndex(index int) error {
	if index < 0 || index >= list.size {
		return outOfRange(index, list.size)
	}
	return nil
}

func (list *List[E]) checkPositionIndex(index int) error {
	if index < 0 || index > list.size {
		return outOfRange(index, list.size)
	}
	return nil
}

func (list *List[E]) AddFirst(val E) {
	list.insertBefore(list.nodes[sentinel].next, val)
}

func (list *List[E]) AddLast(val E) {
	list.insertBefore(sentinel, val)
}

// Add appends val. It always succeeds.
func (list *List[E]) Add(val E) bool {
	list.AddLast(val)
	return true
}

// Insert puts val at index, shifting the element there and everything after
// it one place right. index == Len() appends.
func (list *List[E]) Insert(index int, val E) error {
	if err := list.checkPositionIndex(index); err != nil {
		return err
	}
	list.insertBefore(list.node(index), val)
	return nil
}

func (list *List[E]) RemoveFirst() (E, error) {
	if list.size == 0 {
		var zero E
		return zero, ErrEmptyList
	}
	return list.unlink(list.nodes[sentinel].next), nil
}

func (list *List[E]) RemoveLast() (E, error) {
	if list.size == 0 {
		var zero E
		return zero, ErrEmptyList
	}
	return list.unlink(list.nodes[sentinel].prev), nil
}

// RemoveValue removes the first element equal to val and reports whether
// one was found.
func (list *List[E]) RemoveValue(val E) bool {
	for h := list.nodes[sentinel].next; h != sentinel; h = list.nodes[h].next {
		if list.equal(val, list.nodes[h].val) {
			list.unlink(h)
			return true
		}
	}
	return false
}

func (list *List[E]) RemoveAt(index int) (E, error) {
	if err := list.checkElementIndex(index); err != nil {
		var zero E
		return zero, err
	}
	return list.unlink(list.node(index)), nil
}

func (list *List[E]) Get(index int) (E, error) {
	if err := list.checkElementIndex(index); err != nil {
		var zero E
		return zero, err
	}
	return list.nodes[list.node(index)].val, nil
}

// Set replaces the value at index and returns the old one. Replacing a value
// is not a structural change; open cursors stay valid.
func (list *List[E]) Set(index int, val E) (E, error) {
	if err := list.checkElementIndex(index); err != nil {
		var zero E
		return zero, err
	}
	n := &list.nodes[list.node(index)]
	old := n.val
	n.val = val
	return old, nil
}

func (list *List[E]) First() (E, error) {
	if list.size == 0 {
		var zero E
		return zero, ErrEmptyList
	}
	return list.nodes[list.nodes[sentinel].next].val, nil
}

func (list *List[E]) Last() (E, error) {
	if list.size == 0 {
		var zero E
		return zero, ErrEmptyList
	}
	return list.nodes[list.nodes[sentinel].prev].val, nil
}

// IndexOf returns the index of the first element equal to val, or -1.
func (list *List[E]) IndexOf(val E) int {
	i := 0
	for h := list.nodes[sentinel].next; h != sentinel; h = list.nodes[h].next {
		if list.equal(val, list.nodes[h].val) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to val, or -1.
func (list *List[E]) LastIndexOf(val E) int {
	i := list.size - 1
	for h := list.nodes[sentinel].prev; h != sentinel; h = list.nodes[h].prev {
		if list.equal(val, list.nodes[h].val) {
			return i
		}
		i--
	}
	return -1
}

func (list *List[E]) Contains(val E) bool {
	return list.IndexOf(val) >= 0
}

func (list *List[E]) ForEach(consumer Consumer[E]) {
	i := 0
	for h := list.nodes[sentinel].next; h != sentinel; h = list.nodes[h].next {
		if !consumer(i, list.nodes[h].val) {
			return
		}
		i++
	}
}

func (list *List[E]) ToSlice() []E {
	s := make([]E, 0, list.size)
	list.ForEach(func(_ int, val E) bool {
		s = append(s, val)
		return true
	})
	return s
}

func (list *List[E]) String() string {
	return fmt.Sprint(list.ToSlice())
}

// Clear removes every element. Open cursors become stale.
func (list *List[E]) Clear() {
	h := list.nodes[sentinel].next
	for h != sentinel {
		next := list.nodes[h].next
		list.nodes[h] = elem[E]{}
		h = next
	}
	list.nodes = list.nodes[:1]
	list.nodes[sentinel] = elem[E]{prev: sentinel, next: sentinel}
	list.free = list.free[:0]
	list.size = 0
	list.modCount++
}

func (list *List[E]) Len() int {
	return list.size
}

func (list *List[E]) IsEmpty() bool {
	return list.size == 0
}

// Cursor returns a cursor positioned before the element at index. index ==
// Len() gives a cursor at the end of the list.
func (list *List[E]) Cursor(index int) (*Cursor[E], error) {
	if err := list.checkPositionIndex(index); err != nil {
		return nil, err
	}
	return &Cursor[E]{
		list:             list,
		next:             list.node(index),
		lastReturned:     nilHandle,
		nextIndex:        index,
		expectedModCount: list.modCount,
	}, nil
}

// verify walks the ring in both directions and checks the arena bookkeeping.
func (list *List[E]) verify() error {
	if len(list.nodes) != 1+list.size+len(list.free) {
		return errors.AssertionFailedf("arena has %d slots, want 1+%d live+%d free",
			len(list.nodes), list.size, len(list.free))
	}
	s := list.nodes[sentinel]
	if (list.size == 0) != (s.next == sentinel && s.prev == sentinel) {
		return errors.AssertionFailedf("size %d but sentinel links %d/%d", list.size, s.prev, s.next)
	}
	n := 0
	for h := sentinel; ; {
		next := list.nodes[h].next
		if next < 0 || int(next) >= len(list.nodes) {
			return errors.AssertionFailedf("node %d has next %d", h, next)
		}
		if list.nodes[next].prev != h {
			return errors.AssertionFailedf("node %d: next.prev is %d", h, list.nodes[next].prev)
		}
		if next == sentinel {
			break
		}
		if n++; n > list.size {
			return errors.AssertionFailedf("forward walk exceeds size %d", list.size)
		}
		h = next
	}
	if n != list.size {
		return errors.AssertionFailedf("forward walk counted %d, size %d", n, list.size)
	}
	for _, f := range list.free {
		if list.nodes[f].prev != nilHandle || list.nodes[f].next != nilHandle {
			return errors.AssertionFailedf("free slot %d still linked", f)
		}
	}
	return nil
}

package list

// handle addresses a slot in a list's node arena.
type handle int

const (
	// sentinel is the arena slot of the fake node closing the ring.
	sentinel handle = 0
	// nilHandle marks "no node": a free slot's links, or a cursor with
	// nothing to remove or set.
	nilHandle handle = -1
)

type elem[E any] struct {
	prev handle
	next handle
	val  E
}

// alloc returns a slot already wired to prev and next. The neighbours are
// not touched; link does that.
func (list *List[E]) alloc(prev handle, val E, next handle) handle {
	e := elem[E]{prev: prev, next: next, val: val}
	if n := len(list.free); n > 0 {
		h := list.free[n-1]
		list.free = list.free[:n-1]
		list.nodes[h] = e
		return h
	}
	list.nodes = append(list.nodes, e)
	return handle(len(list.nodes) - 1)
}

// release clears the slot so the arena holds no stale value, then makes it
// reusable.
func (list *List[E]) release(h handle) {
	list.nodes[h] = elem[E]{prev: nilHandle, next: nilHandle}
	list.free = append(list.free, h)
}

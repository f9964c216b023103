package list

// Cursor is a position between two elements of a List. Next and Previous
// move it; Remove, Set and Add edit the list at that position.
//
// A cursor's own edits keep it valid. Any other structural change to the
// list, including one made through a second cursor, makes it stale: every
// further Next, Previous, Remove, Set or Add returns
// ErrConcurrentModification.
type Cursor[E any] struct {
	list *List[E]
	// next is the node Next would return; the sentinel at the end.
	next handle
	// lastReturned is the node produced by the last Next or Previous, or
	// nilHandle after Remove, Add, or before any step.
	lastReturned     handle
	nextIndex        int
	expectedModCount int
}

func (c *Cursor[E]) checkModCount() error {
	if c.expectedModCount != c.list.modCount {
		return ErrConcurrentModification
	}
	return nil
}

func (c *Cursor[E]) HasNext() bool {
	return c.nextIndex < c.list.size
}

func (c *Cursor[E]) HasPrevious() bool {
	return c.nextIndex > 0
}

func (c *Cursor[E]) Next() (E, error) {
	var zero E
	if err := c.checkModCount(); err != nil {
		return zero, err
	}
	if !c.HasNext() {
		return zero, ErrNoSuchElement
	}
	n := c.list.nodes[c.next]
	c.lastReturned = c.next
	c.next = n.next
	c.nextIndex++
	return n.val, nil
}

func (c *Cursor[E]) Previous() (E, error) {
	var zero E
	if err := c.checkModCount(); err != nil {
		return zero, err
	}
	if !c.HasPrevious() {
		return zero, ErrNoSuchElement
	}
	prev := c.list.nodes[c.next].prev
	c.lastReturned = prev
	c.next = prev
	c.nextIndex--
	return c.list.nodes[prev].val, nil
}

// NextIndex is the index of the element Next would return, Len() at the end.
func (c *Cursor[E]) NextIndex() int {
	return c.nextIndex
}

// PreviousIndex is the index of the element Previous would return, -1 at
// the start.
func (c *Cursor[E]) PreviousIndex() int {
	return c.nextIndex - 1
}

// Remove deletes the element last returned by Next or Previous.
func (c *Cursor[E]) Remove() error {
	if err := c.checkModCount(); err != nil {
		return err
	}
	if c.lastReturned == nilHandle {
		return ErrIllegalState
	}
	if c.lastReturned == c.next {
		// last step was Previous
		c.next = c.list.nodes[c.next].next
		c.list.unlink(c.lastReturned)
	} else {
		c.list.unlink(c.lastReturned)
		c.nextIndex--
	}
	c.lastReturned = nilHandle
	c.expectedModCount = c.list.modCount
	return nil
}

// Set replaces the element last returned by Next or Previous.
func (c *Cursor[E]) Set(val E) error {
	if err := c.checkModCount(); err != nil {
		return err
	}
	if c.lastReturned == nilHandle {
		return ErrIllegalState
	}
	c.list.nodes[c.lastReturned].val = val
	return nil
}

// Add inserts val before the element Next would return. A following Next is
// unaffected; a following Previous returns val.
func (c *Cursor[E]) Add(val E) error {
	if err := c.checkModCount(); err != nil {
		return err
	}
	c.lastReturned = nilHandle
	c.list.insertBefore(c.next, val)
	c.nextIndex++
	c.expectedModCount = c.list.modCount
	return nil
}

package list

// Cursor allows iteration on an underlying List and behaves like it is the
// list though it is not. It only holds the current element reference "state".
// A cursor whose current element gets removed behind its back is simply
// stale: its accessors report InvalidPosition.
type Cursor[TV any] struct {
	list    *List[TV]
	current Position[TV]
}

// Cursor returns a new, unpositioned cursor over the list.
func (l *List[TV]) Cursor() *Cursor[TV] {
	return &Cursor[TV]{list: l}
}

// First positions the cursor at the head element.
func (c *Cursor[TV]) First() bool {
	if c.list.head == nil {
		c.current = Position[TV]{}
		return false
	}
	c.current = Position[TV]{node: c.list.head}
	return true
}

// Next advances the cursor forward. The cursor becomes unpositioned when it
// runs off the tail or its current element is no longer in the list.
func (c *Cursor[TV]) Next() bool {
	n, err := c.list.hold(c.current)
	if err != nil || n.next == nil {
		c.current = Position[TV]{}
		return false
	}
	c.current = Position[TV]{node: n.next}
	return true
}

// GetCurrentValue returns the current element's value.
func (c *Cursor[TV]) GetCurrentValue() (TV, error) {
	var zero TV
	n, err := c.list.hold(c.current)
	if err != nil {
		return zero, err
	}
	return n.value, nil
}

// UpdateCurrentValue overwrites the current element's value.
func (c *Cursor[TV]) UpdateCurrentValue(value TV) error {
	n, err := c.list.hold(c.current)
	if err != nil {
		return err
	}
	n.value = value
	return nil
}

// InsertAfter inserts value immediately after the current element. The cursor
// stays where it is.
func (c *Cursor[TV]) InsertAfter(value TV) error {
	_, err := c.list.InsertAfter(c.current, value)
	return err
}

// RemoveCurrentItem removes and returns the current element. Linear time on a
// singly linked list: the predecessor has to be found from the head. The
// cursor is unpositioned afterwards.
func (c *Cursor[TV]) RemoveCurrentItem() (TV, error) {
	var zero TV
	n, err := c.list.hold(c.current)
	if err != nil {
		return zero, err
	}
	// Nullify current position before unlinking.
	c.current = Position[TV]{}

	l := c.list
	if n == l.head {
		return l.PopFront()
	}
	p := l.head
	for p.next != n {
		p = p.next
	}
	p.next = n.next
	if n == l.tail {
		l.tail = p
	}
	value := n.value
	l.detach(n)
	return value, nil
}

// Position returns the cursor's current Position handle.
func (c *Cursor[TV]) Position() Position[TV] {
	return c.current
}

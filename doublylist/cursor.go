package doublylist

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

// Last positions the cursor at the tail element.
func (c *Cursor[TV]) Last() bool {
	if c.list.tail == nil {
		c.current = Position[TV]{}
		return false
	}
	c.current = Position[TV]{node: c.list.tail}
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

// Previous moves the cursor backward. The cursor becomes unpositioned when it
// runs off the head or its current element is no longer in the list.
func (c *Cursor[TV]) Previous() bool {
	n, err := c.list.hold(c.current)
	if err != nil || n.prev == nil {
		c.current = Position[TV]{}
		return false
	}
	c.current = Position[TV]{node: n.prev}
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

// InsertBefore inserts value immediately before the current element. The
// cursor stays where it is.
func (c *Cursor[TV]) InsertBefore(value TV) error {
	_, err := c.list.InsertBefore(c.current, value)
	return err
}

// RemoveCurrentItem removes and returns the current element. Constant time.
// The cursor is unpositioned afterwards.
func (c *Cursor[TV]) RemoveCurrentItem() (TV, error) {
	var zero TV
	n, err := c.list.hold(c.current)
	if err != nil {
		return zero, err
	}
	// Nullify current position before unlinking.
	c.current = Position[TV]{}
	return c.list.unlink(n), nil
}

// Position returns the cursor's current Position handle.
func (c *Cursor[TV]) Position() Position[TV] {
	return c.current
}

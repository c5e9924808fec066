package doublylist

import (
	"fmt"

	"github.com/sharedcode/lists"
)

// Position is an opaque handle to a specific element, usable for constant time
// insertion and removal at a known location. A Position goes stale once its
// element is removed or its list cleared; stale or foreign handles are
// rejected with an InvalidPosition error rather than dereferenced.
type Position[TV any] struct {
	node *node[TV]
}

// IsNil reports whether the Position refers to no element.
func (p Position[TV]) IsNil() bool {
	return p.node == nil
}

// InsertAfter inserts value immediately after pos and returns the new
// element's Position. Constant time.
func (l *List[TV]) InsertAfter(pos Position[TV], value TV) (Position[TV], error) {
	at, err := l.hold(pos)
	if err != nil {
		return Position[TV]{}, err
	}
	if at == l.tail {
		return l.PushBack(value), nil
	}
	n := &node[TV]{value: value, owner: l.id}
	// The new node is fully linked before its neighbors are re-pointed at it.
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
	l.count++
	return Position[TV]{node: n}, nil
}

// InsertBefore inserts value immediately before pos and returns the new
// element's Position. Constant time.
func (l *List[TV]) InsertBefore(pos Position[TV], value TV) (Position[TV], error) {
	at, err := l.hold(pos)
	if err != nil {
		return Position[TV]{}, err
	}
	if at == l.head {
		return l.PushFront(value), nil
	}
	n := &node[TV]{value: value, owner: l.id}
	n.next = at
	n.prev = at.prev
	at.prev.next = n
	at.prev = n
	l.count++
	return Position[TV]{node: n}, nil
}

// Remove removes and returns the element at pos. Constant time; head and tail
// are degenerate cases of the same relink.
func (l *List[TV]) Remove(pos Position[TV]) (TV, error) {
	var zero TV
	n, err := l.hold(pos)
	if err != nil {
		return zero, err
	}
	return l.unlink(n), nil
}

// RemoveAfter removes and returns the element immediately after pos.
// Constant time. Returns an IndexOutOfBounds error when pos is the tail:
// the handle is valid but there is no element after it.
func (l *List[TV]) RemoveAfter(pos Position[TV]) (TV, error) {
	var zero TV
	at, err := l.hold(pos)
	if err != nil {
		return zero, err
	}
	if at.next == nil {
		return zero, lists.Error{Code: lists.IndexOutOfBounds, Err: fmt.Errorf("remove after the tail")}
	}
	return l.unlink(at.next), nil
}

// RemoveBefore removes and returns the element immediately before pos.
// Constant time. Returns an IndexOutOfBounds error when pos is the head.
func (l *List[TV]) RemoveBefore(pos Position[TV]) (TV, error) {
	var zero TV
	at, err := l.hold(pos)
	if err != nil {
		return zero, err
	}
	if at.prev == nil {
		return zero, lists.Error{Code: lists.IndexOutOfBounds, Err: fmt.Errorf("remove before the head")}
	}
	return l.unlink(at.prev), nil
}

// MoveToFront relinks the element at pos to the head. Constant time. This is
// the recency maintenance primitive used by the MRU cache.
func (l *List[TV]) MoveToFront(pos Position[TV]) error {
	n, err := l.hold(pos)
	if err != nil {
		return err
	}
	if n == l.head {
		return nil
	}
	n.prev.next = n.next
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = l.head
	l.head.prev = n
	l.head = n
	return nil
}

// hold validates that pos refers to a live element of this list.
func (l *List[TV]) hold(pos Position[TV]) (*node[TV], error) {
	if pos.node == nil || pos.node.owner.IsNil() || pos.node.owner != l.id {
		return nil, lists.Error{Code: lists.InvalidPosition, Err: fmt.Errorf("position does not belong to this list")}
	}
	return pos.node, nil
}

package list

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
	n := &node[TV]{value: value, owner: l.id}
	// New node first points at the remainder, only then is the predecessor
	// re-pointed at it.
	n.next = at.next
	at.next = n
	if at == l.tail {
		l.tail = n
	}
	l.count++
	return Position[TV]{node: n}, nil
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
	n := at.next
	if n == nil {
		return zero, lists.Error{Code: lists.IndexOutOfBounds, Err: fmt.Errorf("remove after the tail")}
	}
	at.next = n.next
	if n == l.tail {
		l.tail = at
	}
	value := n.value
	l.detach(n)
	return value, nil
}

// hold validates that pos refers to a live element of this list.
func (l *List[TV]) hold(pos Position[TV]) (*node[TV], error) {
	if pos.node == nil || pos.node.owner.IsNil() || pos.node.owner != l.id {
		return nil, lists.Error{Code: lists.InvalidPosition, Err: fmt.Errorf("position does not belong to this list")}
	}
	return pos.node, nil
}

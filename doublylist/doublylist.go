// Package doublylist implements a doubly linked list over an arbitrary
// element type.
//
// Nodes hold a forward link and a backward link and the tail is cached, so
// pushes, pops and held-Position insertion/removal are constant time at both
// ends. Positional access is linear, walking from whichever end is closer.
// The zero value of List is not usable; construct with New or From.
// Lists are not safe for concurrent use.
package doublylist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/sharedcode/lists"
)

// node is an element of the list. The forward link is the traversal of
// record; prev exists for reverse traversal and constant time relinking.
// The owner stamp lets a stale Position be recognized instead of dereferenced.
type node[TV any] struct {
	value TV
	next  *node[TV]
	prev  *node[TV]
	owner lists.UUID
}

// List is a doubly linked list.
type List[TV any] struct {
	id    lists.UUID
	head  *node[TV]
	tail  *node[TV]
	count int
}

// New creates a new empty list.
func New[TV any]() *List[TV] {
	return &List[TV]{id: lists.NewUUID()}
}

// From creates a list containing items, in order.
func From[TV any](items ...TV) *List[TV] {
	l := New[TV]()
	for _, item := range items {
		l.PushBack(item)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[TV]) Len() int {
	return l.count
}

// IsEmpty reports whether the list has no elements.
func (l *List[TV]) IsEmpty() bool {
	return l.head == nil
}

// PushFront inserts value at the head of the list and returns its Position.
func (l *List[TV]) PushFront(value TV) Position[TV] {
	n := &node[TV]{value: value, next: l.head, owner: l.id}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.count++
	return Position[TV]{node: n}
}

// PushBack appends value at the tail of the list and returns its Position.
func (l *List[TV]) PushBack(value TV) Position[TV] {
	n := &node[TV]{value: value, prev: l.tail, owner: l.id}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count++
	return Position[TV]{node: n}
}

// PopFront removes and returns the head element. Returns an Empty error when
// the list has no elements.
func (l *List[TV]) PopFront() (TV, error) {
	var zero TV
	if l.head == nil {
		return zero, lists.Error{Code: lists.Empty, Err: fmt.Errorf("pop front on empty list")}
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	value := n.value
	l.detach(n)
	return value, nil
}

// PopBack removes and returns the tail element. Constant time.
func (l *List[TV]) PopBack() (TV, error) {
	var zero TV
	if l.tail == nil {
		return zero, lists.Error{Code: lists.Empty, Err: fmt.Errorf("pop back on empty list")}
	}
	n := l.tail
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	value := n.value
	l.detach(n)
	return value, nil
}

// Front returns the head element without removing it.
func (l *List[TV]) Front() (TV, error) {
	var zero TV
	if l.head == nil {
		return zero, lists.Error{Code: lists.Empty, Err: fmt.Errorf("peek front on empty list")}
	}
	return l.head.value, nil
}

// Back returns the tail element without removing it.
func (l *List[TV]) Back() (TV, error) {
	var zero TV
	if l.tail == nil {
		return zero, lists.Error{Code: lists.Empty, Err: fmt.Errorf("peek back on empty list")}
	}
	return l.tail.value, nil
}

// InsertAt inserts value so that it ends up at index. Valid indexes are
// 0..Len() inclusive. Linear time to the insertion point, then a constant
// time relink.
func (l *List[TV]) InsertAt(index int, value TV) (Position[TV], error) {
	if index < 0 || index > l.count {
		return Position[TV]{}, lists.Error{Code: lists.IndexOutOfBounds, Err: fmt.Errorf("insert at %d on a list of %d", index, l.count)}
	}
	if index == 0 {
		return l.PushFront(value), nil
	}
	if index == l.count {
		return l.PushBack(value), nil
	}
	return l.InsertBefore(Position[TV]{node: l.nodeAt(index)}, value)
}

// RemoveAt removes and returns the element at index. Valid indexes are
// 0..Len()-1.
func (l *List[TV]) RemoveAt(index int) (TV, error) {
	var zero TV
	if index < 0 || index >= l.count {
		return zero, lists.Error{Code: lists.IndexOutOfBounds, Err: fmt.Errorf("remove at %d on a list of %d", index, l.count)}
	}
	return l.unlink(l.nodeAt(index)), nil
}

// At returns the element at index without removing it. Linear time.
func (l *List[TV]) At(index int) (TV, error) {
	var zero TV
	if index < 0 || index >= l.count {
		return zero, lists.Error{Code: lists.IndexOutOfBounds, Err: fmt.Errorf("index %d on a list of %d", index, l.count)}
	}
	return l.nodeAt(index).value, nil
}

// Find returns the Position of the first element satisfying predicate.
func (l *List[TV]) Find(predicate func(TV) bool) (Position[TV], bool) {
	for n := l.head; n != nil; n = n.next {
		if predicate(n.value) {
			return Position[TV]{node: n}, true
		}
	}
	return Position[TV]{}, false
}

// IndexFunc returns the index of the first element satisfying predicate,
// or -1 if none does.
func (l *List[TV]) IndexFunc(predicate func(TV) bool) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if predicate(n.value) {
			return i
		}
		i++
	}
	return -1
}

// Values returns a forward iterator over the element values, head to tail.
// The sequence is lazy, finite and restartable. Mutating the list while
// iterating is undefined.
func (l *List[TV]) Values() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over the element values, tail to head.
func (l *List[TV]) Backward() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator: each step pops the head. Elements not
// consumed remain in the list.
func (l *List[TV]) Drain() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		for {
			v, err := l.PopFront()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a new list holding the same values in the same order.
func (l *List[TV]) Clone() *List[TV] {
	out := New[TV]()
	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.value)
	}
	return out
}

// String renders the values front to back, e.g. "[1 2 3]".
func (l *List[TV]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Clear removes every element. The chain is unlinked iteratively head to tail
// and every node's owner stamp voided so any outstanding Position goes stale.
func (l *List[TV]) Clear() {
	n := l.head
	l.head = nil
	l.tail = nil
	for n != nil {
		next := n.next
		l.detach(n)
		n = next
	}
}

// nodeAt walks to the node at index from whichever end is closer. The caller
// has bounds checked index already.
func (l *List[TV]) nodeAt(index int) *node[TV] {
	if index <= l.count/2 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.count - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// unlink unchains n from the list and returns its extracted value.
func (l *List[TV]) unlink(n *node[TV]) TV {
	if n == l.head {
		l.head = n.next
	}
	if n == l.tail {
		l.tail = n.prev
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	value := n.value
	l.detach(n)
	return value
}

// detach voids a removed node and decrements the length counter. The caller
// extracts the value before calling.
func (l *List[TV]) detach(n *node[TV]) {
	var zero TV
	n.value = zero
	n.next = nil
	n.prev = nil
	n.owner = lists.NilUUID
	l.count--
}

// validate walks the chain both ways and reports the first structural
// invariant violation. A non-nil result indicates a bug in the container
// itself, not caller misuse; tests treat it as fatal.
func (l *List[TV]) validate() error {
	if l.head == nil || l.tail == nil {
		if l.head != nil || l.tail != nil || l.count != 0 {
			return fmt.Errorf("empty list bookkeeping off: head=%p tail=%p count=%d", l.head, l.tail, l.count)
		}
		return nil
	}
	if l.head.prev != nil {
		return fmt.Errorf("head has a previous element")
	}
	if l.tail.next != nil {
		return fmt.Errorf("tail has a next element")
	}
	seen := 0
	for n := l.head; n != nil; n = n.next {
		seen++
		if seen > l.count {
			return fmt.Errorf("forward walk exceeds count %d, likely a cycle", l.count)
		}
		if n.owner != l.id {
			return fmt.Errorf("node %d carries a foreign owner stamp", seen-1)
		}
		if n.next != nil && n.next.prev != n {
			return fmt.Errorf("broken back link after node %d", seen-1)
		}
		if n.next == nil && n != l.tail {
			return fmt.Errorf("forward walk ended off the cached tail")
		}
	}
	if seen != l.count {
		return fmt.Errorf("count is %d but %d nodes are reachable", l.count, seen)
	}
	return nil
}

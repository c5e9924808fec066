// Package list implements a singly linked list over an arbitrary element type.
//
// Nodes own a single forward link. Insertion and removal at a held Position
// are constant time; positional access is linear. The tail is cached so
// PushBack is constant time too, but PopBack still has to walk the chain.
// The zero value of List is not usable; construct with New or From.
// Lists are not safe for concurrent use.
package list

import (
	"fmt"
	"iter"

	"github.com/sharedcode/lists"
)

// node is an element of the list. It carries the owning list's identity stamp
// so a stale Position is recognized instead of dereferenced.
type node[TV any] struct {
	value TV
	next  *node[TV]
	owner lists.UUID
}

// List is a singly linked list.
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
	}
	l.head = n
	l.count++
	return Position[TV]{node: n}
}

// PushBack appends value at the tail of the list and returns its Position.
// Constant time because the tail is cached.
func (l *List[TV]) PushBack(value TV) Position[TV] {
	n := &node[TV]{value: value, owner: l.id}
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
	}
	value := n.value
	l.detach(n)
	return value, nil
}

// PopBack removes and returns the tail element. Linear time: the predecessor
// of the tail is only reachable by walking from the head.
func (l *List[TV]) PopBack() (TV, error) {
	var zero TV
	if l.tail == nil {
		return zero, lists.Error{Code: lists.Empty, Err: fmt.Errorf("pop back on empty list")}
	}
	n := l.tail
	if l.head == n {
		l.head = nil
		l.tail = nil
	} else {
		p := l.head
		for p.next != n {
			p = p.next
		}
		p.next = nil
		l.tail = p
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
// 0..Len() inclusive. Linear time up to the predecessor, then a constant time
// relink.
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
	p := l.nodeAt(index - 1)
	n := &node[TV]{value: value, owner: l.id}
	// Link the new node before re-pointing its predecessor so the chain is
	// never observed pointing at a half-linked node.
	n.next = p.next
	p.next = n
	l.count++
	return Position[TV]{node: n}, nil
}

// RemoveAt removes and returns the element at index. Valid indexes are
// 0..Len()-1.
func (l *List[TV]) RemoveAt(index int) (TV, error) {
	var zero TV
	if index < 0 || index >= l.count {
		return zero, lists.Error{Code: lists.IndexOutOfBounds, Err: fmt.Errorf("remove at %d on a list of %d", index, l.count)}
	}
	if index == 0 {
		return l.PopFront()
	}
	p := l.nodeAt(index - 1)
	n := p.next
	p.next = n.next
	if n == l.tail {
		l.tail = p
	}
	value := n.value
	l.detach(n)
	return value, nil
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

// SplitAfter detaches everything after the first element satisfying predicate
// into a new list, leaving the matching element as this list's tail. Returns
// false, with the list unchanged, when nothing matches.
func (l *List[TV]) SplitAfter(predicate func(TV) bool) (*List[TV], bool) {
	n := l.head
	for n != nil && !predicate(n.value) {
		n = n.next
	}
	if n == nil {
		return nil, false
	}
	out := New[TV]()
	out.head = n.next
	n.next = nil
	if out.head != nil {
		out.tail = l.tail
	}
	l.tail = n
	// The moved chain changed owner; re-stamp and recount it.
	for m := out.head; m != nil; m = m.next {
		m.owner = out.id
		out.count++
	}
	l.count -= out.count
	return out, true
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

// nodeAt walks from the head to the node at index. The caller has bounds
// checked index already.
func (l *List[TV]) nodeAt(index int) *node[TV] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// detach voids a removed node and decrements the length counter. The caller
// extracts the value before calling.
func (l *List[TV]) detach(n *node[TV]) {
	var zero TV
	n.value = zero
	n.next = nil
	n.owner = lists.NilUUID
	l.count--
}

// validate walks the chain and reports the first structural invariant
// violation. A non-nil result indicates a bug in the container itself, not
// caller misuse; tests treat it as fatal.
func (l *List[TV]) validate() error {
	if l.head == nil {
		if l.tail != nil || l.count != 0 {
			return fmt.Errorf("empty list bookkeeping off: tail=%p count=%d", l.tail, l.count)
		}
		return nil
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
		if n.next == nil && n != l.tail {
			return fmt.Errorf("forward walk ended off the cached tail")
		}
	}
	if seen != l.count {
		return fmt.Errorf("count is %d but %d nodes are reachable", l.count, seen)
	}
	return nil
}

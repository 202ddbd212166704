package dlist

import (
	"fmt"
	"strings"
)

// List is a doubly-linked sequence of T supporting O(1) insertion at both
// ends and O(1) removal at any iterator position. A non-empty list keeps a
// single sentinel node after its tail; the sentinel marks the end position
// and stays in place across insertions, so end iterators keep denoting the
// end. An empty list holds no nodes at all.
//
// The zero value is an empty list ready for use. A List is not safe for
// concurrent use.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding the given values in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// FromRange returns a list holding a copy of the elements in [first, last).
// The range must be valid: both iterators into the same list, with last
// reachable from first by repeated Next. No bounds checking is performed.
func FromRange[T any](first, last Iterator[T]) *List[T] {
	l := New[T]()
	for it := first; it != last; it.Next() {
		l.PushBack(it.Value())
	}
	return l
}

// FromConstRange is FromRange for read-only iterators.
func FromConstRange[T any](first, last ConstIterator[T]) *List[T] {
	l := New[T]()
	for it := first; it != last; it.Next() {
		l.PushBack(it.Value())
	}
	return l
}

// Clone returns a deep copy of l: a freshly allocated chain holding the
// same elements in the same order. Mutating either list afterwards does
// not affect the other.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	for it := l.CBegin(); it != l.CEnd(); it.Next() {
		out.PushBack(it.Value())
	}
	return out
}

// Assign replaces l's contents with a deep copy of other's. The copy is
// built in full before being swapped in. Assigning a list to itself is a
// no-op.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	l.Swap(other.Clone())
}

// Move transfers other's chain into l and leaves other empty. Iterators
// into other keep denoting their elements, which now belong to l; l's
// previous elements are dropped. Moving a list into itself is a no-op.
func (l *List[T]) Move(other *List[T]) {
	if l == other {
		return
	}
	l.head, l.tail, l.size = other.head, other.tail, other.size
	other.head, other.tail, other.size = nil, nil, 0
}

// Swap exchanges the contents of l and other in O(1).
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.size, other.size = other.size, l.size
}

// bootstrap links n as the single element of an empty list and allocates
// the sentinel after it.
func (l *List[T]) bootstrap(n *node[T]) {
	l.head = n
	l.tail = n
	n.next = &node[T]{prev: n}
}

// PushBack appends v as the new last element in O(1). No existing iterator
// is invalidated, and iterators at the end position keep denoting the end.
func (l *List[T]) PushBack(v T) {
	if l.head == nil {
		l.bootstrap(&node[T]{value: v})
	} else {
		sentinel := l.tail.next
		n := &node[T]{value: v, next: sentinel, prev: l.tail}
		l.tail.next = n
		sentinel.prev = n
		l.tail = n
	}
	l.size++
}

// PushFront prepends v as the new first element in O(1).
func (l *List[T]) PushFront(v T) {
	if l.head == nil {
		l.bootstrap(&node[T]{value: v})
	} else {
		n := &node[T]{value: v, next: l.head}
		l.head.prev = n
		l.head = n
	}
	l.size++
}

// Erase removes the element at pos and returns an iterator to its
// successor, or to the end position if the last element was removed.
// pos must denote a real element of l; passing an end iterator or an
// iterator into another list is a contract violation and is not checked.
// Erasing the only element clears the list entirely, sentinel included.
// Only iterators at the erased position are invalidated.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	if l.size == 1 {
		l.Clear()
		return l.End()
	}
	n := pos.node
	next := n.next
	prev := n.prev
	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}
	next.prev = prev
	if n == l.tail {
		l.tail = prev
	}
	n.next = nil
	n.prev = nil
	l.size--
	return Iterator[T]{position[T]{next}}
}

// Front returns the first element. The list must be non-empty.
func (l *List[T]) Front() T { return l.head.value }

// Back returns the last element. The list must be non-empty.
func (l *List[T]) Back() T { return l.tail.value }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.head == nil }

// Len returns the number of elements in O(1).
func (l *List[T]) Len() int { return l.size }

// Clear unlinks every node, sentinel included, and resets l to the empty
// state. Clearing an already-empty list is a no-op.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n.prev = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Begin returns an iterator at the first element, or the end position if
// the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{position[T]{l.head}}
}

// End returns the iterator one past the last element.
func (l *List[T]) End() Iterator[T] {
	if l.tail == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{position[T]{l.tail.next}}
}

// CBegin returns a read-only iterator at the first element.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{position[T]{l.head}}
}

// CEnd returns the read-only iterator one past the last element.
func (l *List[T]) CEnd() ConstIterator[T] {
	if l.tail == nil {
		return ConstIterator[T]{}
	}
	return ConstIterator[T]{position[T]{l.tail.next}}
}

// RBegin returns a reverse iterator at the last element.
func (l *List[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{l.End()}
}

// REnd returns the reverse iterator one before the first element.
func (l *List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{l.Begin()}
}

// CRBegin returns a read-only reverse iterator at the last element.
func (l *List[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{l.CEnd()}
}

// CREnd returns the read-only reverse iterator one before the first element.
func (l *List[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{l.CBegin()}
}

// Values collects the elements in order into a new slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for it := l.CBegin(); it != l.CEnd(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// Each calls fn for every element from front to back.
func (l *List[T]) Each(fn func(T)) {
	for it := l.CBegin(); it != l.CEnd(); it.Next() {
		fn(it.Value())
	}
}

// EachReverse calls fn for every element from back to front.
func (l *List[T]) EachReverse(fn func(T)) {
	for it := l.CRBegin(); it != l.CREnd(); it.Next() {
		fn(it.Value())
	}
}

// String representation of the list, rendered as [e1 e2 ...].
func (l *List[T]) String() string {
	out := strings.Builder{}
	out.WriteString("[")
	first := true
	for it := l.CBegin(); it != l.CEnd(); it.Next() {
		if !first {
			out.WriteString(" ")
		}
		out.WriteString(fmt.Sprintf("%v", it.Value()))
		first = false
	}
	out.WriteString("]")
	return out.String()
}

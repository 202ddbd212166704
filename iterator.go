package dlist

// position holds the node an iterator currently denotes. It identifies a
// place in the chain and confers no ownership: the node stays alive only as
// long as its list keeps it linked.
type position[T any] struct {
	node *node[T]
}

// Next advances the position along the next link.
func (p *position[T]) Next() { p.node = p.node.next }

// Prev moves the position back along the prev link.
func (p *position[T]) Prev() { p.node = p.node.prev }

// Value returns the element at the position.
// Must not be called on the end position.
func (p position[T]) Value() T { return p.node.value }

// Iterator is a mutable bidirectional iterator over a List. Two iterators
// compare equal exactly when they denote the same node, so == works for
// loop termination. An iterator is invalidated when its element is erased
// or when the list is cleared or moved out of.
type Iterator[T any] struct {
	position[T]
}

// Ptr returns a pointer to the element, allowing in-place mutation.
func (it Iterator[T]) Ptr() *T { return &it.node.value }

// Set overwrites the element at the iterator's position.
func (it Iterator[T]) Set(v T) { it.node.value = v }

// Const returns a read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.position}
}

// ConstIterator is the read-only counterpart of Iterator: it can traverse
// and read elements but not modify them.
type ConstIterator[T any] struct {
	position[T]
}

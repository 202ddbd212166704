package dlist

// ReverseIterator walks a List from back to front. It adapts a forward
// Iterator rather than iterating on its own: the element it denotes is the
// one immediately before its base, so the reverse range [RBegin, REnd) is
// built from the forward range as [reverse(End), reverse(Begin)). Two
// reverse iterators compare equal exactly when their bases do.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Next advances toward the front of the list.
func (it *ReverseIterator[T]) Next() { it.base.Prev() }

// Prev moves back toward the end of the list.
func (it *ReverseIterator[T]) Prev() { it.base.Next() }

// Value returns the element at the iterator's position.
func (it ReverseIterator[T]) Value() T { return it.base.node.prev.value }

// Ptr returns a pointer to the element, allowing in-place mutation.
func (it ReverseIterator[T]) Ptr() *T { return &it.base.node.prev.value }

// Set overwrites the element at the iterator's position.
func (it ReverseIterator[T]) Set(v T) { it.base.node.prev.value = v }

// Base returns the underlying forward iterator.
func (it ReverseIterator[T]) Base() Iterator[T] { return it.base }

// ConstReverseIterator is the read-only counterpart of ReverseIterator.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

// Next advances toward the front of the list.
func (it *ConstReverseIterator[T]) Next() { it.base.Prev() }

// Prev moves back toward the end of the list.
func (it *ConstReverseIterator[T]) Prev() { it.base.Next() }

// Value returns the element at the iterator's position.
func (it ConstReverseIterator[T]) Value() T { return it.base.node.prev.value }

// Base returns the underlying forward iterator.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return it.base }

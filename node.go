package dlist

// node is the storage unit of a List. Real nodes form a chain from the
// list's head to its tail; one extra sentinel node sits after the tail and
// marks the end position. The sentinel holds the zero value and is never
// surfaced as an element.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

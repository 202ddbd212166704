package dlist

// Helper types and functions shared by the list and iterator tests

type pushOp struct {
	front bool
	value int
}

// apply runs a sequence of push operations on a fresh list
func apply(ops []pushOp) *List[int] {
	l := New[int]()
	for _, op := range ops {
		if op.front {
			l.PushFront(op.value)
		} else {
			l.PushBack(op.value)
		}
	}
	return l
}

// forward collects the elements seen when iterating from Begin to End
func forward(l *List[int]) []int {
	out := []int{}
	for it := l.Begin(); it != l.End(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// backward collects the elements seen when iterating from RBegin to REnd
func backward(l *List[int]) []int {
	out := []int{}
	for it := l.RBegin(); it != l.REnd(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// reversed returns a reversed copy of s
func reversed(s []int) []int {
	out := make([]int, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		out = append(out, s[i])
	}
	return out
}

// at returns an iterator advanced idx positions from Begin
func at(l *List[int], idx int) Iterator[int] {
	it := l.Begin()
	for i := 0; i < idx; i++ {
		it.Next()
	}
	return it
}

package bst

import (
	"cmp"
	"sync"

	"github.com/goose-lang/std"
)

// Locked is a set backed by a Tree that may be shared between goroutines. Every
// operation holds mu for its whole duration.
//
// Unlike a bare Tree, a Locked set can be empty.
type Locked[T cmp.Ordered] struct {
	mu   *sync.Mutex
	root *Tree[T]
	size uint64
}

func NewLocked[T cmp.Ordered]() *Locked[T] {
	return &Locked[T]{mu: new(sync.Mutex)}
}

// Insert adds v and reports whether it was not already present.
func (l *Locked[T]) Insert(v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.root == nil {
		l.root = New(v)
		l.size = 1
		return true
	}
	if l.root.Contains(v) {
		return false
	}
	l.root.Insert(v)
	l.size = std.SumAssumeNoOverflow(l.size, 1)
	return true
}

func (l *Locked[T]) Contains(v T) bool {
	l.mu.Lock()
	ok := l.root.Contains(v)
	l.mu.Unlock()
	return ok
}

// Remove deletes v and reports whether it was present.
func (l *Locked[T]) Remove(v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.root.Contains(v) {
		return false
	}
	l.root = l.root.Remove(v)
	l.size--
	return true
}

// Len returns the number of elements in the set.
func (l *Locked[T]) Len() uint64 {
	l.mu.Lock()
	n := l.size
	l.mu.Unlock()
	return n
}

// Snapshot returns the elements in increasing order.
func (l *Locked[T]) Snapshot() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	values := make([]T, 0, l.size)
	return appendInOrder(values, l.root)
}

func appendInOrder[T cmp.Ordered](values []T, t *Tree[T]) []T {
	if t == nil {
		return values
	}
	values = appendInOrder(values, t.left)
	values = append(values, t.value)
	return appendInOrder(values, t.right)
}

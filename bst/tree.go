// Package bst implements a chained, unbalanced binary search tree.
//
// A tree always holds at least one element; the empty tree is represented by a
// nil *Tree, which is what Remove returns once the last element is gone.
//
// Trees are not safe for concurrent use. See Locked for a mutex-guarded holder.
package bst

import (
	"cmp"

	"github.com/goose-lang/primitive"
)

// Tree is a node of a binary search tree together with the subtree rooted at
// it. Every value in left is strictly less than value, and every value in
// right is strictly greater.
type Tree[T cmp.Ordered] struct {
	value T
	left  *Tree[T]
	right *Tree[T]
}

// New creates a tree with value as its only element.
func New[T cmp.Ordered](value T) *Tree[T] {
	return &Tree[T]{value: value}
}

// Value returns the element stored at the root of t.
func (t *Tree[T]) Value() T {
	return t.value
}

func (t *Tree[T]) Left() *Tree[T] {
	return t.left
}

func (t *Tree[T]) Right() *Tree[T] {
	return t.right
}

// Insert adds v to the tree in place. It does nothing if v is already present.
//
// t must not be nil.
func (t *Tree[T]) Insert(v T) {
	switch cmp.Compare(v, t.value) {
	case -1:
		if t.left == nil {
			t.left = New(v)
		} else {
			t.left.Insert(v)
		}
	case 1:
		if t.right == nil {
			t.right = New(v)
		} else {
			t.right.Insert(v)
		}
	}
	// if v == t.value then v is already present
}

// Find returns the subtree whose root holds v, or nil if v is not in the tree.
func (t *Tree[T]) Find(v T) *Tree[T] {
	if t == nil {
		return nil
	}
	switch cmp.Compare(v, t.value) {
	case -1:
		return t.left.Find(v)
	case 1:
		return t.right.Find(v)
	}
	return t
}

func (t *Tree[T]) Contains(v T) bool {
	return t.Find(v) != nil
}

// Remove deletes v from the tree and returns the resulting tree. The receiver
// is consumed: callers must replace their reference with the return value,
// since the root itself may be removed. Remove returns nil if the tree is now
// empty.
//
// Removing a value that is not present returns the tree unchanged.
//
// A node with two children takes the value of its in-order predecessor (the
// largest value in its left subtree), which is then removed from the left
// subtree instead.
func (t *Tree[T]) Remove(v T) *Tree[T] {
	if t == nil {
		return nil
	}
	remove := func(child *Tree[T]) *Tree[T] { return child.Remove(v) }
	switch cmp.Compare(v, t.value) {
	case -1:
		t.left = replace(t.left, remove)
		return t
	case 1:
		t.right = replace(t.right, remove)
		return t
	}

	if t.left == nil {
		// covers the leaf case, where this is nil
		return t.right
	}
	if t.right == nil {
		return t.left
	}

	pred := t.left.biggest()
	// the predecessor has no right child, so removing it below will not recurse
	// back into the two-child case
	primitive.Assert(pred.right == nil)
	predValue := pred.value
	t.left = replace(t.left, func(child *Tree[T]) *Tree[T] {
		return child.Remove(predValue)
	})
	t.value = predValue
	return t
}

// biggest returns the right-most node of t.
func (t *Tree[T]) biggest() *Tree[T] {
	var n = t
	for n.right != nil {
		n = n.right
	}
	return n
}

// replace applies change to child and returns the new child, treating a
// missing child as nothing to change.
func replace[T cmp.Ordered](child *Tree[T], change func(*Tree[T]) *Tree[T]) *Tree[T] {
	if child == nil {
		return nil
	}
	return change(child)
}

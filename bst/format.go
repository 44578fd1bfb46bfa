package bst

import (
	"fmt"
	"strings"
)

// String renders t as nested (left value right) groups, with missing children
// written as "_". A nil tree renders as "<nil>".
//
// For example the tree built by inserting 20, 10, 30, 15 renders as
// "((_ 10 15) 20 30)". Leaves are printed without parentheses.
func (t *Tree[T]) String() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	t.writeTo(&b)
	return b.String()
}

func (t *Tree[T]) writeTo(b *strings.Builder) {
	if t == nil {
		b.WriteString("_")
		return
	}
	if t.left == nil && t.right == nil {
		fmt.Fprint(b, t.value)
		return
	}
	b.WriteString("(")
	t.left.writeTo(b)
	fmt.Fprintf(b, " %v ", t.value)
	t.right.writeTo(b)
	b.WriteString(")")
}

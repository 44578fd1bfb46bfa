// Package render draws trees and operation results for terminal output.
package render

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"

	"datastructures/bst"
)

var listStyles = map[string]list.Style{
	"default":   list.StyleDefault,
	"connected": list.StyleConnectedLight,
	"rounded":   list.StyleConnectedRounded,
}

// ListStyle looks up a list style by name, reporting whether it exists.
func ListStyle(name string) (list.Style, bool) {
	s, ok := listStyles[strings.ToLower(name)]
	return s, ok
}

// Tree renders t as an indented list with the root first. Each child is
// labelled L or R; missing children are omitted. An empty tree renders as
// "(empty)".
func Tree[T cmp.Ordered](t *bst.Tree[T], style list.Style) string {
	if t == nil {
		return "(empty)"
	}
	w := list.NewWriter()
	w.SetStyle(style)
	appendNode(w, "", t)
	return w.Render()
}

func appendNode[T cmp.Ordered](w list.Writer, label string, t *bst.Tree[T]) {
	w.AppendItem(label + fmt.Sprint(t.Value()))
	if t.Left() == nil && t.Right() == nil {
		return
	}
	w.Indent()
	if t.Left() != nil {
		appendNode(w, "L: ", t.Left())
	}
	if t.Right() != nil {
		appendNode(w, "R: ", t.Right())
	}
	w.UnIndent()
}

// Result is the outcome of one find or remove.
type Result struct {
	Op    string
	Value int
	Found bool
	Tree  string
}

// Results renders results as a table.
func Results(results []Result) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Op", "Value", "Found", "Tree"})
	for i, r := range results {
		t.AppendRow(table.Row{i + 1, r.Op, r.Value, r.Found, r.Tree})
	}
	return t.Render()
}

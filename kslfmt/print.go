// Package kslfmt is a diagnostic pretty-printer for ksl.Tree, kept
// outside the ksl package itself: spec.md scopes formatted/diagnostic
// printing out of the core container, and ksl.Tree.Walk exists
// specifically to let a separate package like this one render it.
// Style follows the teacher's BTree.PrettyPrint/printNode: a
// connector-drawn hierarchy written straight to an io.Writer.
package kslfmt

import (
	"fmt"
	"io"
	"strings"

	"ksl"
)

// frame tracks, for one ancestor block, how many of its children still
// need to be visited (to decide the "└── " vs "├── " connector) and the
// indent prefix its children should be printed under.
type frame struct {
	prefix    string
	remaining int
}

// Fprint writes a hierarchical rendering of tr to w: one line per
// block, indented and connected in the style of a directory tree, with
// ROOT/INTERNAL/LEAF labels and each block's keys in brackets.
func Fprint[K, V any](w io.Writer, tr *ksl.Tree[K, V]) {
	if tr.Len() == 0 {
		fmt.Fprintln(w, "(empty tree)")
		return
	}

	var stack []frame

	tr.Walk(func(v ksl.Visit[K]) {
		if v.Depth == 0 {
			fmt.Fprintf(w, "%s %s\n", label(v), formatKeys(v.Keys))
			stack = []frame{{prefix: "", remaining: v.NumKids}}
			return
		}

		for len(stack) > v.Depth {
			stack = stack[:len(stack)-1]
		}
		parent := &stack[len(stack)-1]

		isLast := parent.remaining <= 1
		parent.remaining--

		connector := "├── "
		if isLast {
			connector = "└── "
		}
		fmt.Fprintf(w, "%s%s%s %s\n", parent.prefix, connector, label(v), formatKeys(v.Keys))

		childPrefix := parent.prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
		stack = append(stack, frame{prefix: childPrefix, remaining: v.NumKids})
	})
}

func label[K any](v ksl.Visit[K]) string {
	switch {
	case v.IsRoot:
		return "ROOT"
	case v.Kind == ksl.KindLeaf:
		return "LEAF"
	default:
		return "INTERNAL"
	}
}

func formatKeys[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Sprint is Fprint rendered to a string, for tests and log lines.
func Sprint[K, V any](tr *ksl.Tree[K, V]) string {
	var b strings.Builder
	Fprint(&b, tr)
	return b.String()
}

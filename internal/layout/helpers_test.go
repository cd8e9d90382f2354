package layout

import (
	"math"
	"testing"
)

const epsilon = 1e-3

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func newTestTree(t *testing.T, opts ...TreeOption) *Tree {
	t.Helper()
	tree, err := NewTree(opts...)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	return tree
}

func mustLeaf(t *testing.T, tree *Tree, style Style) NodeID {
	t.Helper()
	id, err := tree.NewLeaf(style)
	if err != nil {
		t.Fatalf("NewLeaf: %v", err)
	}
	return id
}

func mustNode(t *testing.T, tree *Tree, style Style, children ...NodeID) NodeID {
	t.Helper()
	id, err := tree.NewWithChildren(style, children...)
	if err != nil {
		t.Fatalf("NewWithChildren: %v", err)
	}
	return id
}

func mustCompute(t *testing.T, tree *Tree, root NodeID, width, height float64) {
	t.Helper()
	if err := tree.ComputeLayout(root, DefiniteSize(width, height)); err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
}

func mustLayout(t *testing.T, tree *Tree, id NodeID) Layout {
	t.Helper()
	l, err := tree.Layout(id)
	if err != nil {
		t.Fatalf("Layout(%s): %v", id, err)
	}
	return l
}

// checkBox compares a node's final location and size.
func checkBox(t *testing.T, tree *Tree, name string, id NodeID, x, y, w, h float64) {
	t.Helper()
	l := mustLayout(t, tree, id)
	if !approx(l.Location.X, x) || !approx(l.Location.Y, y) || !approx(l.Size.Width, w) || !approx(l.Size.Height, h) {
		t.Errorf("%s = (%g, %g, %g, %g), want (%g, %g, %g, %g)", name,
			l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height, x, y, w, h)
	}
}

// sized returns a default style with a fixed size.
func sized(w, h float64) Style {
	s := DefaultStyle()
	s.Size = FixedSize(w, h)
	return s
}

package layout

import "testing"

func TestRoundSpan(t *testing.T) {
	type tc struct {
		start, length float64
		want          float64
	}

	tests := map[string]tc{
		"whole":            {start: 0, length: 10, want: 10},
		"fraction rounds":  {start: 0, length: 33.333, want: 33},
		"start shifts end": {start: 33.333, length: 33.333, want: 34},
		"half rounds away": {start: 0, length: 0.5, want: 1},
		"zero length":      {start: 12.7, length: 0, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := roundSpan(tt.start, tt.length); got != tt.want {
				t.Errorf("roundSpan(%g, %g) = %g, want %g", tt.start, tt.length, got, tt.want)
			}
		})
	}
}

func threeGrowing(t *testing.T, tree *Tree) (NodeID, []NodeID) {
	t.Helper()
	var ids []NodeID
	for range 3 {
		s := sized(0, 10)
		s.FlexGrow = 1
		ids = append(ids, mustLeaf(t, tree, s))
	}
	return mustNode(t, tree, row(100, 10), ids...), ids
}

func TestRounding_SiblingsTile(t *testing.T) {
	tree := newTestTree(t)
	root, ids := threeGrowing(t, tree)
	mustCompute(t, tree, root, 100, 10)

	wantX := []float64{0, 33, 67}
	wantW := []float64{33, 34, 33}
	for i, id := range ids {
		checkBox(t, tree, "child", id, wantX[i], 0, wantW[i], 10)
	}

	u, err := tree.UnroundedLayout(ids[1])
	if err != nil {
		t.Fatal(err)
	}
	if !approx(u.Location.X, 33.333) || !approx(u.Size.Width, 33.333) {
		t.Errorf("unrounded = %+v, want exact thirds", u)
	}
}

func TestRounding_Disabled(t *testing.T) {
	tree := newTestTree(t, WithRounding(false))
	root, ids := threeGrowing(t, tree)
	mustCompute(t, tree, root, 100, 10)
	checkBox(t, tree, "middle", ids[1], 33.333, 0, 33.333, 10)

	tree.EnableRounding()
	if !tree.Rounding() {
		t.Fatal("Rounding() = false after EnableRounding")
	}
	mustCompute(t, tree, root, 100, 10)
	checkBox(t, tree, "middle", ids[1], 33, 0, 34, 10)
}

func TestRounding_NestedUsesAbsolutePositions(t *testing.T) {
	tree := newTestTree(t)
	leafStyle := sized(10, 10)
	leafStyle.Margin.Left = Fixed(0.4)
	leaf := mustLeaf(t, tree, leafStyle)
	parentStyle := sized(50.4, 10)
	parentStyle.Margin.Left = Fixed(0.3)
	parent := mustNode(t, tree, parentStyle, leaf)
	root := mustNode(t, tree, row(100, 10), parent)
	mustCompute(t, tree, root, 100, 10)

	// Absolute edges: parent 0.3..50.7, leaf 0.7..10.7.
	checkBox(t, tree, "parent", parent, 0, 0, 51, 10)
	checkBox(t, tree, "leaf", leaf, 1, 0, 10, 10)
}

func TestRounding_EdgesFollowBox(t *testing.T) {
	tree := newTestTree(t)
	s := DefaultStyle()
	s.Padding = EdgeValuesAll(Fixed(1.5))
	s.Border = EdgeValuesAll(Fixed(0.5))
	s.FlexGrow = 1
	child := mustLeaf(t, tree, s)
	root := mustNode(t, tree, row(100, 10), child)
	mustCompute(t, tree, root, 100, 10)

	l := mustLayout(t, tree, child)
	// Border 0..0.5 rounds to 0..1; padding 0.5..2 rounds to 1..2.
	if l.Border.Left != 1 || l.Padding.Left != 1 {
		t.Errorf("Border.Left = %g, Padding.Left = %g, want 1 and 1", l.Border.Left, l.Padding.Left)
	}
	// The content box edge at 98 is whole on both sides.
	if got := l.Border.Right + l.Padding.Right; got != 2 {
		t.Errorf("Border.Right + Padding.Right = %g, want 2", got)
	}
}

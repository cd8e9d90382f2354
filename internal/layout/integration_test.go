package layout

import (
	"math"
	"testing"
)

func TestIntegration_Dashboard(t *testing.T) {
	tree := newTestTree(t)

	header := mustLeaf(t, tree, autoWidth(3))
	footer := mustLeaf(t, tree, autoWidth(1))

	sideStyle := DefaultStyle()
	sideStyle.Size.Width = Fixed(20)
	sidebar := mustLeaf(t, tree, sideStyle)

	var cells []NodeID
	for range 4 {
		cells = append(cells, mustLeaf(t, tree, DefaultStyle()))
	}
	mainStyle := DefaultStyle()
	mainStyle.Display = DisplayGrid
	mainStyle.FlexGrow = 1
	mainStyle.GridTemplateColumns = Tracks(FrTrack(1), FrTrack(1))
	mainStyle.GridTemplateRows = Tracks(FrTrack(1), FrTrack(1))
	main := mustNode(t, tree, mainStyle, cells...)

	bodyStyle := DefaultStyle()
	bodyStyle.FlexGrow = 1
	body := mustNode(t, tree, bodyStyle, sidebar, main)

	root := mustNode(t, tree, column(120, 40), header, body, footer)
	mustCompute(t, tree, root, 120, 40)

	checkBox(t, tree, "header", header, 0, 0, 120, 3)
	checkBox(t, tree, "body", body, 0, 3, 120, 36)
	checkBox(t, tree, "footer", footer, 0, 39, 120, 1)
	checkBox(t, tree, "sidebar", sidebar, 0, 0, 20, 36)
	checkBox(t, tree, "main", main, 20, 0, 100, 36)
	checkBox(t, tree, "cell 0", cells[0], 0, 0, 50, 18)
	checkBox(t, tree, "cell 3", cells[3], 50, 18, 50, 18)
}

func TestIntegration_WrappingText(t *testing.T) {
	// A paragraph 150 wide on one line with a longest word of 10.
	measure := func(_ NodeID, known Size, avail AvailableSize) Size {
		w := known.Width
		if !isDefined(w) {
			switch avail.Width.Kind {
			case SpaceMinContent:
				w = 10
			case SpaceMaxContent:
				w = 150
			default:
				w = min(150, avail.Width.Value)
			}
		}
		return Size{Width: w, Height: math.Ceil(150 / max(w, 1))}
	}
	tree := newTestTree(t, WithMeasureFunc(measure))

	iconStyle := sized(40, 2)
	iconStyle.FlexShrink = 0
	icon := mustLeaf(t, tree, iconStyle)
	text, err := tree.NewLeafWithMeasure(DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	style := row(100, 50)
	style.AlignItems = Ref(AlignStart)
	root := mustNode(t, tree, style, icon, text)
	mustCompute(t, tree, root, 100, 50)

	checkBox(t, tree, "icon", icon, 0, 0, 40, 2)
	checkBox(t, tree, "text", text, 40, 0, 60, 3)

	// Narrowing the container rewraps the text.
	style.Size.Width = Fixed(70)
	if err := tree.SetStyle(root, style); err != nil {
		t.Fatal(err)
	}
	mustCompute(t, tree, root, 70, 50)
	checkBox(t, tree, "text", text, 40, 0, 30, 5)
}

func TestIntegration_DeepNesting(t *testing.T) {
	const depth = 20
	tree := newTestTree(t)

	padded := DefaultStyle()
	padded.FlexDirection = Column
	padded.Padding = EdgeValuesAll(Fixed(1))

	ids := make([]NodeID, depth+1)
	ids[depth] = mustLeaf(t, tree, DefaultStyle())
	for d := depth - 1; d >= 1; d-- {
		ids[d] = mustNode(t, tree, padded, ids[d+1])
	}
	rootStyle := column(200, 200)
	rootStyle.Padding = EdgeValuesAll(Fixed(1))
	ids[0] = mustNode(t, tree, rootStyle, ids[1])
	mustCompute(t, tree, ids[0], 200, 200)

	checkBox(t, tree, "depth 1", ids[1], 1, 1, 198, 2*(depth-1))
	checkBox(t, tree, "leaf", ids[depth], 1, 1, 200-2*depth, 0)
}

func TestIntegration_LargeWrappedTree(t *testing.T) {
	tree := newTestTree(t, WithCapacity(1001))
	ids := make([]NodeID, 1000)
	for i := range ids {
		ids[i] = mustLeaf(t, tree, sized(10, 10))
	}
	style := row(1000, 1000)
	style.FlexWrap = Wrap
	style.AlignContent = Ref(ContentFlexStart)
	root := mustNode(t, tree, style, ids...)
	mustCompute(t, tree, root, 1000, 1000)

	checkBox(t, tree, "first", ids[0], 0, 0, 10, 10)
	checkBox(t, tree, "101st", ids[100], 0, 10, 10, 10)
	checkBox(t, tree, "last", ids[999], 990, 90, 10, 10)
}

func TestIntegration_StyleChangeMovesSiblings(t *testing.T) {
	tree := newTestTree(t)
	a := mustLeaf(t, tree, sized(20, 10))
	b := mustLeaf(t, tree, sized(20, 10))
	c := mustLeaf(t, tree, sized(20, 10))
	root := mustNode(t, tree, row(100, 10), a, b, c)
	mustCompute(t, tree, root, 100, 10)
	checkBox(t, tree, "c", c, 40, 0, 20, 10)

	if err := tree.SetStyle(b, sized(35, 10)); err != nil {
		t.Fatal(err)
	}
	if dirty, _ := tree.Dirty(root); !dirty {
		t.Error("root not dirty after child style change")
	}
	mustCompute(t, tree, root, 100, 10)
	checkBox(t, tree, "b", b, 20, 0, 35, 10)
	checkBox(t, tree, "c", c, 55, 0, 20, 10)
	if dirty, _ := tree.Dirty(root); dirty {
		t.Error("root still dirty after layout")
	}
}

func TestIntegration_ZeroSizeRoot(t *testing.T) {
	tree := newTestTree(t)
	a := mustLeaf(t, tree, sized(20, 10))
	growStyle := DefaultStyle()
	growStyle.FlexGrow = 1
	b := mustLeaf(t, tree, growStyle)
	root := mustNode(t, tree, DefaultStyle(), a, b)
	mustCompute(t, tree, root, 0, 0)

	checkBox(t, tree, "root", root, 0, 0, 0, 0)
	checkBox(t, tree, "b", b, 0, 0, 0, 0)
	l := mustLayout(t, tree, a)
	if l.Size.Width < 0 || l.Size.Height < 0 {
		t.Errorf("negative size %+v", l.Size)
	}
}

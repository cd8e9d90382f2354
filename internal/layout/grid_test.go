package layout

import "testing"

// gridStyle returns a fixed-size grid container with the given columns.
func gridStyle(w, h float64, cols ...TrackSizing) Style {
	s := sized(w, h)
	s.Display = DisplayGrid
	s.GridTemplateColumns = cols
	return s
}

func TestGrid_ColumnSizing(t *testing.T) {
	type tc struct {
		cols    []TrackSizing
		gap     float64
		justify *AlignContent
		items   []Style
		wantX   []float64
		wantW   []float64
	}

	auto := DefaultStyle()
	w30, w50, w80, w150 := DefaultStyle(), DefaultStyle(), DefaultStyle(), DefaultStyle()
	w30.Size.Width = Fixed(30)
	w50.Size.Width = Fixed(50)
	w80.Size.Width = Fixed(80)
	w150.Size.Width = Fixed(150)

	tests := map[string]tc{
		"equal fr": {
			cols:  Tracks(FrTrack(1), FrTrack(1)),
			items: []Style{auto, auto},
			wantX: []float64{0, 100},
			wantW: []float64{100, 100},
		},
		"weighted fr": {
			cols:  Tracks(FrTrack(1), FrTrack(2)),
			items: []Style{auto, auto},
			wantX: []float64{0, 66.667},
			wantW: []float64{66.667, 133.333},
		},
		"fixed and fr": {
			cols:  Tracks(FixedTrack(50), FrTrack(1)),
			items: []Style{auto, auto},
			wantX: []float64{0, 50},
			wantW: []float64{50, 150},
		},
		"percent": {
			cols:  Tracks(PercentTrack(25), FrTrack(1)),
			items: []Style{auto, auto},
			wantX: []float64{0, 50},
			wantW: []float64{50, 150},
		},
		"gap": {
			cols:  []TrackSizing{Repeat(3, FrTrack(1))},
			gap:   10,
			items: []Style{auto, auto, auto},
			wantX: []float64{0, 70, 140},
			wantW: []float64{60, 60, 60},
		},
		"auto tracks stretch": {
			cols:  Tracks(AutoTrack(), AutoTrack()),
			items: []Style{w30, w50},
			wantX: []float64{0, 90},
			wantW: []float64{30, 50},
		},
		"auto tracks packed at start": {
			cols:    Tracks(AutoTrack(), AutoTrack()),
			justify: Ref(ContentStart),
			items:   []Style{w30, w50},
			wantX:   []float64{0, 30},
			wantW:   []float64{30, 50},
		},
		"auto tracks centered": {
			cols:    Tracks(AutoTrack(), AutoTrack()),
			justify: Ref(ContentCenter),
			items:   []Style{w30, w50},
			wantX:   []float64{60, 90},
			wantW:   []float64{30, 50},
		},
		"auto tracks space-between": {
			cols:    Tracks(AutoTrack(), AutoTrack()),
			justify: Ref(ContentSpaceBetween),
			items:   []Style{w30, w50},
			wantX:   []float64{0, 150},
			wantW:   []float64{30, 50},
		},
		"fr share covers content": {
			cols:  Tracks(FrTrack(1), FrTrack(1)),
			items: []Style{w80, auto},
			wantX: []float64{0, 100},
			wantW: []float64{80, 100},
		},
		"fr respects content minimum": {
			cols:  Tracks(FrTrack(1), FrTrack(1)),
			items: []Style{w150, auto},
			wantX: []float64{0, 150},
			wantW: []float64{150, 50},
		},
		"minmax grows to its limit": {
			cols:  Tracks(MinMax(Fixed(30), Fixed(70)), FrTrack(1)),
			items: []Style{auto, auto},
			wantX: []float64{0, 70},
			wantW: []float64{70, 130},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree(t, WithRounding(false))
			var ids []NodeID
			for _, s := range tt.items {
				ids = append(ids, mustLeaf(t, tree, s))
			}
			style := gridStyle(200, 100, tt.cols...)
			style.Gap = FixedSize(tt.gap, 0)
			style.JustifyContent = tt.justify
			root := mustNode(t, tree, style, ids...)
			mustCompute(t, tree, root, 200, 100)
			for i, id := range ids {
				checkBox(t, tree, "item", id, tt.wantX[i], 0, tt.wantW[i], 100)
			}
		})
	}
}

func TestGrid_RoundedFractionsTile(t *testing.T) {
	tree := newTestTree(t)
	a := mustLeaf(t, tree, DefaultStyle())
	b := mustLeaf(t, tree, DefaultStyle())
	root := mustNode(t, tree, gridStyle(200, 100, Tracks(FrTrack(1), FrTrack(2))...), a, b)
	mustCompute(t, tree, root, 200, 100)

	checkBox(t, tree, "a", a, 0, 0, 67, 100)
	checkBox(t, tree, "b", b, 67, 0, 133, 100)
	la, lb := mustLayout(t, tree, a), mustLayout(t, tree, b)
	if sum := la.Size.Width + lb.Size.Width; sum != 200 {
		t.Errorf("widths sum to %g, want 200", sum)
	}
}

func TestGrid_LaterAreasUseOwnTrackSize(t *testing.T) {
	tree := newTestTree(t, WithRounding(false))
	var ids []NodeID
	for range 6 {
		ids = append(ids, mustLeaf(t, tree, DefaultStyle()))
	}
	style := gridStyle(300, 100, Repeat(3, FrTrack(1)))
	style.GridTemplateRows = Tracks(FixedTrack(40), FixedTrack(60))
	root := mustNode(t, tree, style, ids...)
	mustCompute(t, tree, root, 300, 100)

	for i, id := range ids {
		col, row := float64(i%3), i/3
		y, h := 0.0, 40.0
		if row == 1 {
			y, h = 40, 60
		}
		checkBox(t, tree, "item", id, col*100, y, 100, h)
	}
}

func TestGrid_SpanningItemGrowsTracks(t *testing.T) {
	tree := newTestTree(t)
	spanning := sized(100, 10)
	spanning.GridRow = Lines(1, 2)
	spanning.GridColumn = Span(2)
	narrow := sized(20, 10)
	narrow.GridRow = Lines(2, 3)
	narrow.GridColumn = Lines(1, 2)
	filler := DefaultStyle()
	filler.Size.Height = Fixed(10)
	filler.GridRow = Lines(2, 3)
	filler.GridColumn = Lines(2, 3)

	a := mustLeaf(t, tree, spanning)
	b := mustLeaf(t, tree, narrow)
	c := mustLeaf(t, tree, filler)
	style := gridStyle(200, 100, Tracks(AutoTrack(), AutoTrack())...)
	style.JustifyContent = Ref(ContentStart)
	style.AlignContent = Ref(ContentStart)
	root := mustNode(t, tree, style, a, b, c)
	mustCompute(t, tree, root, 200, 100)

	// The 80 missing from the span is shared equally: 20+40 and 0+40.
	checkBox(t, tree, "spanning", a, 0, 0, 100, 10)
	checkBox(t, tree, "narrow", b, 0, 10, 20, 10)
	checkBox(t, tree, "filler", c, 60, 10, 40, 10)
}

func TestGrid_AutoRepeat(t *testing.T) {
	type tc struct {
		repeat  TrackSizing
		gap     float64
		justify AlignContent
		wantX   [2]float64
	}

	tests := map[string]tc{
		"auto-fill keeps empty tracks": {
			repeat:  RepeatFill(FixedTrack(50)),
			justify: ContentCenter,
			wantX:   [2]float64{0, 50},
		},
		"auto-fit collapses empty tracks": {
			repeat:  RepeatFit(FixedTrack(50)),
			justify: ContentCenter,
			wantX:   [2]float64{50, 100},
		},
		"gaps reduce the count": {
			repeat:  RepeatFill(FixedTrack(50)),
			gap:     10,
			justify: ContentCenter,
			wantX:   [2]float64{15, 75},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree(t)
			a := mustLeaf(t, tree, DefaultStyle())
			b := mustLeaf(t, tree, DefaultStyle())
			style := gridStyle(200, 50, tt.repeat)
			style.Gap = FixedSize(tt.gap, 0)
			style.JustifyContent = Ref(tt.justify)
			root := mustNode(t, tree, style, a, b)
			mustCompute(t, tree, root, 200, 50)
			checkBox(t, tree, "a", a, tt.wantX[0], 0, 50, 50)
			checkBox(t, tree, "b", b, tt.wantX[1], 0, 50, 50)
		})
	}
}

func TestAutoRepeatCount(t *testing.T) {
	type tc struct {
		tmpl  []TrackSizing
		inner float64
		gap   float64
		want  int
	}

	tests := map[string]tc{
		"exact fit":        {tmpl: []TrackSizing{RepeatFill(FixedTrack(50))}, inner: 200, want: 4},
		"with gap":         {tmpl: []TrackSizing{RepeatFill(FixedTrack(50))}, inner: 200, gap: 10, want: 3},
		"fixed neighbours": {tmpl: []TrackSizing{Single(FixedTrack(40)), RepeatFit(FixedTrack(40))}, inner: 200, want: 4},
		"too small":        {tmpl: []TrackSizing{RepeatFill(FixedTrack(50))}, inner: 20, want: 1},
		"indefinite":       {tmpl: []TrackSizing{RepeatFill(FixedTrack(50))}, inner: undefined, want: 1},
		"no auto repeat":   {tmpl: Tracks(FixedTrack(50)), inner: 200, want: 1},
		"percent tracks":   {tmpl: []TrackSizing{RepeatFill(PercentTrack(20))}, inner: 200, want: 5},
		"minmax uses max":  {tmpl: []TrackSizing{RepeatFill(MinMax(Fixed(10), Fixed(60)))}, inner: 200, want: 3},
		"intrinsic repeat": {tmpl: []TrackSizing{RepeatFill(AutoTrack())}, inner: 200, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := autoRepeatCount(tt.tmpl, tt.inner, tt.gap); got != tt.want {
				t.Errorf("autoRepeatCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGrid_ImplicitTracks(t *testing.T) {
	tree := newTestTree(t)
	var ids []NodeID
	for range 5 {
		ids = append(ids, mustLeaf(t, tree, DefaultStyle()))
	}
	style := gridStyle(300, 200, Repeat(3, FrTrack(1)))
	style.GridAutoRows = []TrackSize{FixedTrack(30)}
	style.AlignContent = Ref(ContentStart)
	root := mustNode(t, tree, style, ids...)
	mustCompute(t, tree, root, 300, 200)

	checkBox(t, tree, "first", ids[0], 0, 0, 100, 30)
	checkBox(t, tree, "fourth", ids[3], 0, 30, 100, 30)
	checkBox(t, tree, "fifth", ids[4], 100, 30, 100, 30)
}

func TestGrid_NegativeImplicitColumns(t *testing.T) {
	tree := newTestTree(t)
	before := DefaultStyle()
	before.GridColumn = Lines(-5, -4)
	first := DefaultStyle()
	first.GridColumn = Lines(1, 2)
	a := mustLeaf(t, tree, before)
	b := mustLeaf(t, tree, first)

	style := gridStyle(300, 50, Repeat(3, FixedTrack(50)))
	style.GridAutoColumns = []TrackSize{FixedTrack(20)}
	style.JustifyContent = Ref(ContentStart)
	root := mustNode(t, tree, style, a, b)
	mustCompute(t, tree, root, 300, 50)

	checkBox(t, tree, "before", a, 0, 0, 20, 50)
	checkBox(t, tree, "first", b, 20, 0, 50, 50)
}

func TestGrid_ItemAlignment(t *testing.T) {
	type tc struct {
		justify *AlignItems
		align   *AlignItems
		margin  EdgeValues
		size    SizeValues
		wantX   float64
		wantY   float64
		wantW   float64
		wantH   float64
	}

	tests := map[string]tc{
		"stretch by default": {
			margin: ZeroEdges(), size: AutoSize(),
			wantW: 100, wantH: 100,
		},
		"stretch keeps margins": {
			margin: EdgeValuesAll(Fixed(10)), size: AutoSize(),
			wantX: 10, wantY: 10, wantW: 80, wantH: 80,
		},
		"center and end": {
			justify: Ref(AlignCenter), align: Ref(AlignEnd),
			margin: ZeroEdges(), size: FixedSize(20, 20),
			wantX: 40, wantY: 80, wantW: 20, wantH: 20,
		},
		"auto margins center": {
			margin: AutoEdges(), size: FixedSize(20, 20),
			wantX: 40, wantY: 40, wantW: 20, wantH: 20,
		},
		"start shrinks to content": {
			justify: Ref(AlignStart), align: Ref(AlignStart),
			margin: ZeroEdges(), size: AutoSize(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree(t)
			cs := DefaultStyle()
			cs.JustifySelf = tt.justify
			cs.AlignSelf = tt.align
			cs.Margin = tt.margin
			cs.Size = tt.size
			child := mustLeaf(t, tree, cs)
			style := gridStyle(100, 100, Tracks(FixedTrack(100))...)
			style.GridTemplateRows = Tracks(FixedTrack(100))
			root := mustNode(t, tree, style, child)
			mustCompute(t, tree, root, 100, 100)
			checkBox(t, tree, "child", child, tt.wantX, tt.wantY, tt.wantW, tt.wantH)
		})
	}
}

func TestGrid_ContainerItemDefaults(t *testing.T) {
	tree := newTestTree(t)
	child := mustLeaf(t, tree, sized(20, 20))
	style := gridStyle(100, 100, Tracks(FixedTrack(100))...)
	style.GridTemplateRows = Tracks(FixedTrack(100))
	style.JustifyItems = Ref(AlignEnd)
	style.AlignItems = Ref(AlignCenter)
	root := mustNode(t, tree, style, child)
	mustCompute(t, tree, root, 100, 100)

	checkBox(t, tree, "child", child, 80, 40, 20, 20)
}

func TestGrid_FitContentTrack(t *testing.T) {
	// Text that is 10 wide when wrapped as much as possible and 80 wide on
	// one line.
	measure := func(_ NodeID, known Size, avail AvailableSize) Size {
		w := known.Width
		if !isDefined(w) {
			switch avail.Width.Kind {
			case SpaceMinContent:
				w = 10
			case SpaceMaxContent:
				w = 80
			default:
				w = min(80, avail.Width.Value)
			}
		}
		return Size{Width: w, Height: 10}
	}
	tree := newTestTree(t, WithMeasureFunc(measure))
	text, err := tree.NewLeafWithMeasure(DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	style := gridStyle(200, 50, Tracks(FitContentTrack(Fixed(30)))...)
	style.JustifyContent = Ref(ContentStart)
	root := mustNode(t, tree, style, text)
	mustCompute(t, tree, root, 200, 50)

	checkBox(t, tree, "text", text, 0, 0, 30, 50)
}

func TestGrid_IntrinsicContainerSize(t *testing.T) {
	tree := newTestTree(t)
	a := mustLeaf(t, tree, sized(10, 10))
	b := mustLeaf(t, tree, sized(10, 10))
	style := DefaultStyle()
	style.Display = DisplayGrid
	style.GridTemplateColumns = Tracks(FixedTrack(40), FixedTrack(60))
	root := mustNode(t, tree, style, a, b)
	if err := tree.ComputeLayout(root, MaxContentSize()); err != nil {
		t.Fatal(err)
	}

	checkBox(t, tree, "root", root, 0, 0, 100, 10)
	checkBox(t, tree, "b", b, 40, 0, 10, 10)
}

func TestGrid_PaddingOffsetsTracks(t *testing.T) {
	tree := newTestTree(t)
	a := mustLeaf(t, tree, DefaultStyle())
	b := mustLeaf(t, tree, DefaultStyle())
	style := gridStyle(120, 50, Tracks(FrTrack(1), FrTrack(1))...)
	style.Padding = EdgeValuesAll(Fixed(5))
	style.Border = EdgeValuesAll(Fixed(5))
	root := mustNode(t, tree, style, a, b)
	mustCompute(t, tree, root, 120, 50)

	checkBox(t, tree, "a", a, 10, 10, 50, 30)
	checkBox(t, tree, "b", b, 60, 10, 50, 30)
}

func TestPlaceGridItems(t *testing.T) {
	type tc struct {
		explicit [2]int
		flow     GridAutoFlow
		items    []Line // column placements; rows are given by rowLines
		rowLines []Line
		want     [][2]int // column start, row start
	}

	auto := AutoLine()
	tests := map[string]tc{
		"auto items fill rows": {
			explicit: [2]int{3, 0},
			items:    []Line{auto, auto, auto, auto},
			want:     [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		},
		"sparse leaves holes": {
			explicit: [2]int{3, 0},
			items:    []Line{Span(2), Span(2), auto},
			want:     [][2]int{{0, 0}, {0, 1}, {2, 1}},
		},
		"dense fills holes": {
			explicit: [2]int{3, 0},
			flow:     FlowRowDense,
			items:    []Line{Span(2), Span(2), auto},
			want:     [][2]int{{0, 0}, {0, 1}, {2, 0}},
		},
		"definite items are placed first": {
			explicit: [2]int{3, 1},
			items:    []Line{auto, Lines(2, 3), auto},
			rowLines: []Line{auto, Lines(1, 2), auto},
			want:     [][2]int{{0, 0}, {1, 0}, {2, 0}},
		},
		"negative lines count from the end": {
			explicit: [2]int{3, 0},
			items:    []Line{Lines(-2, -1)},
			want:     [][2]int{{2, 0}},
		},
		"lines before the explicit grid": {
			explicit: [2]int{3, 0},
			items:    []Line{Lines(-5, -4)},
			want:     [][2]int{{-1, 0}},
		},
		"row locked item": {
			explicit: [2]int{3, 0},
			items:    []Line{auto, auto},
			rowLines: []Line{Lines(2, 3), auto},
			want:     [][2]int{{0, 1}, {0, 0}},
		},
		"column flow": {
			explicit: [2]int{0, 2},
			flow:     FlowColumn,
			items:    []Line{auto, auto, auto},
			want:     [][2]int{{0, 0}, {0, 1}, {1, 0}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			styles := make([]*Style, len(tt.items))
			for i, l := range tt.items {
				s := DefaultStyle()
				s.GridColumn = l
				if tt.rowLines != nil {
					s.GridRow = tt.rowLines[i]
				}
				styles[i] = &s
			}
			areas := placeGridItems(styles, tt.explicit, tt.flow)
			for i, a := range areas {
				got := [2]int{a[horizontal].start, a[vertical].start}
				if got != tt.want[i] {
					t.Errorf("item %d at (col %d, row %d), want (col %d, row %d)", i, got[0], got[1], tt.want[i][0], tt.want[i][1])
				}
			}
		})
	}
}

func TestAxisPlacement(t *testing.T) {
	type tc struct {
		line         Line
		wantSpan     lineSpan
		wantDefinite bool
		wantCount    int
	}

	tests := map[string]tc{
		"auto":             {line: AutoLine(), wantCount: 1},
		"auto span":        {line: Span(3), wantCount: 3},
		"start only":       {line: Line{Start: LinePlacement(2), End: AutoPlacement()}, wantSpan: lineSpan{1, 2}, wantDefinite: true, wantCount: 1},
		"start and span":   {line: Line{Start: LinePlacement(2), End: SpanPlacement(2)}, wantSpan: lineSpan{1, 3}, wantDefinite: true, wantCount: 2},
		"span to end line": {line: Line{Start: SpanPlacement(2), End: LinePlacement(4)}, wantSpan: lineSpan{1, 3}, wantDefinite: true, wantCount: 2},
		"swapped lines":    {line: Lines(3, 1), wantSpan: lineSpan{0, 2}, wantDefinite: true, wantCount: 2},
		"equal lines":      {line: Lines(2, 2), wantSpan: lineSpan{1, 2}, wantDefinite: true, wantCount: 1},
		"line zero is auto": {
			line:      Line{Start: LinePlacement(0), End: AutoPlacement()},
			wantCount: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, definite, count := axisPlacement(tt.line, 3)
			if definite != tt.wantDefinite || count != tt.wantCount {
				t.Fatalf("axisPlacement() definite=%v count=%d, want %v %d", definite, count, tt.wantDefinite, tt.wantCount)
			}
			if definite && s != tt.wantSpan {
				t.Errorf("axisPlacement() span = %+v, want %+v", s, tt.wantSpan)
			}
		})
	}
}

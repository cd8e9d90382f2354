package fixture

import (
	"math"
	"strings"
	"testing"

	"github.com/grindlemire/boxlayout/internal/layout"
)

func TestParseLength(t *testing.T) {
	type tc struct {
		in      any
		want    layout.Value
		wantErr bool
	}

	tests := map[string]tc{
		"nil keeps default":   {in: nil, want: layout.Auto()},
		"yaml int":            {in: 10, want: layout.Fixed(10)},
		"toml int":            {in: int64(7), want: layout.Fixed(7)},
		"float":               {in: 2.5, want: layout.Fixed(2.5)},
		"numeric string":      {in: "12", want: layout.Fixed(12)},
		"percent":             {in: "50%", want: layout.Percent(50)},
		"auto":                {in: "auto", want: layout.Auto()},
		"min-content":         {in: "min-content", want: layout.MinContent()},
		"max-content":         {in: " max-content ", want: layout.MaxContent()},
		"zero is not auto":    {in: 0, want: layout.Fixed(0)},
		"garbage":             {in: "wide", wantErr: true},
		"bad percent":         {in: "x%", wantErr: true},
		"wrong type":          {in: true, wantErr: true},
		"fr is not a length":  {in: "1fr", wantErr: true},
		"list is not a value": {in: []any{1}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseLength(tt.in, layout.Auto())
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLength(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseLength(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEdges(t *testing.T) {
	f := layout.Fixed

	type tc struct {
		in      any
		want    layout.EdgeValues
		wantErr bool
	}

	tests := map[string]tc{
		"single":      {in: 2, want: layout.EdgeValuesAll(f(2))},
		"one in list": {in: []any{3}, want: layout.EdgeValuesAll(f(3))},
		"two":         {in: []any{1, 2}, want: layout.EdgeValuesTRBL(f(1), f(2), f(1), f(2))},
		"three":       {in: []any{1, "10%", 3}, want: layout.EdgeValuesTRBL(f(1), layout.Percent(10), f(3), layout.Percent(10))},
		"four":        {in: []any{int64(1), 2, 3, "auto"}, want: layout.EdgeValuesTRBL(f(1), f(2), f(3), layout.Auto())},
		"five":        {in: []any{1, 2, 3, 4, 5}, wantErr: true},
		"bad item":    {in: []any{1, "nope"}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseEdges(tt.in, layout.ZeroEdges())
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseEdges(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseEdges(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAvailable(t *testing.T) {
	type tc struct {
		in      any
		want    layout.AvailableSpace
		wantErr bool
	}

	tests := map[string]tc{
		"omitted":     {in: nil, want: layout.MaxContentSpace()},
		"number":      {in: 80, want: layout.Definite(80)},
		"string":      {in: "24", want: layout.Definite(24)},
		"min-content": {in: "min-content", want: layout.MinContentSpace()},
		"max-content": {in: "max-content", want: layout.MaxContentSpace()},
		"percent":     {in: "50%", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseAvailable(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAvailable(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Kind != tt.want.Kind || (got.Kind == layout.SpaceDefinite && got.Value != tt.want.Value) {
				t.Errorf("parseAvailable(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTrack(t *testing.T) {
	type tc struct {
		in      string
		want    layout.TrackSize
		wantErr bool
	}

	tests := map[string]tc{
		"fixed":              {in: "10", want: layout.FixedTrack(10)},
		"percent":            {in: "25%", want: layout.PercentTrack(25)},
		"auto":               {in: "auto", want: layout.AutoTrack()},
		"fr":                 {in: "2fr", want: layout.FrTrack(2)},
		"min-content":        {in: "min-content", want: layout.MinContentTrack()},
		"max-content":        {in: "max-content", want: layout.MaxContentTrack()},
		"fit-content":        {in: "fit-content(20)", want: layout.FitContentTrack(layout.Fixed(20))},
		"fit-content %":      {in: "fit-content(50%)", want: layout.FitContentTrack(layout.Percent(50))},
		"minmax":             {in: "minmax(5, 1fr)", want: layout.MinMax(layout.Fixed(5), layout.Fr(1))},
		"minmax no space":    {in: "minmax(auto,max-content)", want: layout.MinMax(layout.Auto(), layout.MaxContent())},
		"fr minimum":         {in: "minmax(1fr, 10)", wantErr: true},
		"minmax arity":       {in: "minmax(1)", wantErr: true},
		"unknown function":   {in: "clamp(1, 2)", wantErr: true},
		"fit-content auto":   {in: "fit-content(auto)", wantErr: true},
		"negative fr":        {in: "-1fr", wantErr: true},
		"not a track at all": {in: "wide", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseTrack(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTrack(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseTrack(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTemplate(t *testing.T) {
	got, err := parseTemplate("10  repeat(2, 1fr minmax(2, auto)) repeat(auto-fill, 8)")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("parseTemplate() = %d entries, want 3", len(got))
	}
	if got[0].Repeat || got[0].Tracks[0] != layout.FixedTrack(10) {
		t.Errorf("entry 0 = %+v, want single 10", got[0])
	}
	if !got[1].Repeat || got[1].Mode != layout.RepeatCount || got[1].Count != 2 || len(got[1].Tracks) != 2 {
		t.Errorf("entry 1 = %+v, want repeat(2) of two tracks", got[1])
	}
	if got[1].Tracks[1] != layout.MinMax(layout.Fixed(2), layout.Auto()) {
		t.Errorf("entry 1 second track = %+v", got[1].Tracks[1])
	}
	if got[2].Mode != layout.RepeatAutoFill || got[2].Tracks[0] != layout.FixedTrack(8) {
		t.Errorf("entry 2 = %+v, want repeat(auto-fill, 8)", got[2])
	}

	fit, err := parseTemplate("repeat(auto-fit, 10)")
	if err != nil || fit[0].Mode != layout.RepeatAutoFit {
		t.Errorf("parseTemplate(auto-fit) = %+v, %v", fit, err)
	}

	errs := map[string]string{
		"two auto repeats": "repeat(auto-fill, 1) repeat(auto-fit, 1)",
		"zero count":       "repeat(0, 1)",
		"no tracks":        "repeat(2, )",
		"no comma":         "repeat(2)",
		"unbalanced":       "minmax(1, 2",
		"stray close":      "1)",
	}
	for name, in := range errs {
		t.Run(name, func(t *testing.T) {
			if _, err := parseTemplate(in); err == nil {
				t.Errorf("parseTemplate(%q) succeeded, want error", in)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	type tc struct {
		in      string
		want    layout.Line
		wantErr bool
	}

	tests := map[string]tc{
		"start only":    {in: "2", want: layout.Line{Start: layout.LinePlacement(2), End: layout.AutoPlacement()}},
		"start and end": {in: "1 / 3", want: layout.Lines(1, 3)},
		"span":          {in: "span 2", want: layout.Line{Start: layout.SpanPlacement(2), End: layout.AutoPlacement()}},
		"auto / span":   {in: "auto / span 3", want: layout.Span(3)},
		"negative":      {in: "-1", want: layout.Line{Start: layout.LinePlacement(-1), End: layout.AutoPlacement()}},
		"line zero":     {in: "0", wantErr: true},
		"bad span":      {in: "span x", wantErr: true},
		"span zero":     {in: "span 0", wantErr: true},
		"bad end":       {in: "1 / x", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseLine(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLine(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseLine(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToStyle(t *testing.T) {
	grow := 2.0
	spec := StyleSpec{
		Display:        "Grid",
		Overflow:       "hidden",
		OverflowY:      "scroll",
		Width:          40,
		MaxHeight:      "80%",
		Padding:        []any{1, 2},
		Gap:            3,
		RowGap:         1,
		AlignItems:     "center",
		JustifyContent: "space-between",
		FlexGrow:       &grow,
		GridColumn:     "1 / span 2",
		GridAutoFlow:   "row dense",
	}
	st, err := spec.ToStyle()
	if err != nil {
		t.Fatal(err)
	}
	if st.Display != layout.DisplayGrid {
		t.Errorf("Display = %v, want grid", st.Display)
	}
	if st.OverflowX != layout.OverflowHidden || st.OverflowY != layout.OverflowScroll {
		t.Errorf("Overflow = %v/%v, want hidden/scroll", st.OverflowX, st.OverflowY)
	}
	if st.Size.Width != layout.Fixed(40) || !st.Size.Height.IsAuto() || st.MaxSize.Height != layout.Percent(80) {
		t.Errorf("sizes = %+v / %+v", st.Size, st.MaxSize)
	}
	if st.Padding.Left != layout.Fixed(2) || st.Padding.Top != layout.Fixed(1) {
		t.Errorf("Padding = %+v", st.Padding)
	}
	if st.Gap.Width != layout.Fixed(3) || st.Gap.Height != layout.Fixed(1) {
		t.Errorf("Gap = %+v, want column 3 row 1", st.Gap)
	}
	if st.AlignItems == nil || *st.AlignItems != layout.AlignCenter || st.AlignContent != nil {
		t.Errorf("AlignItems = %v, AlignContent = %v", st.AlignItems, st.AlignContent)
	}
	if st.JustifyContent == nil || *st.JustifyContent != layout.ContentSpaceBetween {
		t.Errorf("JustifyContent = %v", st.JustifyContent)
	}
	if st.FlexGrow != 2 || st.FlexShrink != 1 {
		t.Errorf("FlexGrow/FlexShrink = %g/%g", st.FlexGrow, st.FlexShrink)
	}
	if st.GridColumn != (layout.Line{Start: layout.LinePlacement(1), End: layout.SpanPlacement(2)}) {
		t.Errorf("GridColumn = %+v", st.GridColumn)
	}
	if st.GridAutoFlow != layout.FlowRowDense {
		t.Errorf("GridAutoFlow = %v", st.GridAutoFlow)
	}
}

func TestToStyle_Errors(t *testing.T) {
	negative := -1.0

	tests := map[string]StyleSpec{
		"display":       {Display: "inline"},
		"direction":     {FlexDirection: "sideways"},
		"align self":    {AlignSelf: "middle"},
		"content":       {AlignContent: "spread"},
		"width":         {Width: "wide"},
		"margin":        {Margin: []any{1, 2, 3, 4, 5}},
		"template":      {GridTemplateColumns: "repeat(x, 1)"},
		"auto rows":     {GridAutoRows: "minmax(1fr, 1)"},
		"grid row":      {GridRow: "0"},
		"aspect ratio":  {AspectRatio: &negative},
		"overflow axis": {OverflowX: "auto"},
	}

	for name, spec := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := spec.ToStyle(); err == nil {
				t.Error("ToStyle() succeeded, want error")
			}
		})
	}

	_, err := StyleSpec{Display: "inline"}.ToStyle()
	if err == nil || !strings.Contains(err.Error(), "display") || !strings.Contains(err.Error(), "flex") {
		t.Errorf("error = %v, want the field and accepted values", err)
	}
}

func TestTextMeasure(t *testing.T) {
	para := newText("hello wide world")
	if para.minWidth != 5 || para.maxWidth != 16 {
		t.Fatalf("min/max = %g/%g, want 5/16", para.minWidth, para.maxWidth)
	}

	undef := layout.Size{Width: math.NaN(), Height: math.NaN()}

	type tc struct {
		content content
		known   layout.Size
		avail   layout.AvailableSize
		want    layout.Size
	}

	tests := map[string]tc{
		"max-content": {content: para, known: undef, avail: layout.MaxContentSize(), want: layout.Size{Width: 16, Height: 1}},
		"min-content": {
			content: para, known: undef,
			avail: layout.AvailableSize{Width: layout.MinContentSpace(), Height: layout.MaxContentSpace()},
			want:  layout.Size{Width: 5, Height: 3},
		},
		"wraps in definite space": {content: para, known: undef, avail: layout.DefiniteSize(12, 10), want: layout.Size{Width: 12, Height: 2}},
		"never below longest word": {content: para, known: undef, avail: layout.DefiniteSize(2, 10), want: layout.Size{Width: 5, Height: 3}},
		"known width":              {content: para, known: layout.Size{Width: 10, Height: math.NaN()}, avail: layout.MaxContentSize(), want: layout.Size{Width: 10, Height: 2}},
		"known height":             {content: para, known: layout.Size{Width: math.NaN(), Height: 7}, avail: layout.MaxContentSize(), want: layout.Size{Width: 16, Height: 7}},
		"blank lines count": {
			content: newText("a\n\nbb"), known: undef, avail: layout.MaxContentSize(),
			want: layout.Size{Width: 2, Height: 3},
		},
		"block natural": {content: newBlock(MeasureSpec{Width: 20, Height: 1, MinWidth: 5}), known: undef, avail: layout.DefiniteSize(30, 10), want: layout.Size{Width: 20, Height: 1}},
		"block squeezed": {content: newBlock(MeasureSpec{Width: 20, Height: 1, MinWidth: 5}), known: undef, avail: layout.DefiniteSize(10, 10), want: layout.Size{Width: 10, Height: 2}},
		"block known width": {content: newBlock(MeasureSpec{Width: 20, Height: 1, MinWidth: 5}), known: layout.Size{Width: 7, Height: math.NaN()}, avail: layout.MaxContentSize(), want: layout.Size{Width: 7, Height: 3}},
		"block rigid": {content: newBlock(MeasureSpec{Width: 8, Height: 2}), known: undef, avail: layout.DefiniteSize(4, 10), want: layout.Size{Width: 8, Height: 2}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.content.measure(tt.known, tt.avail); got != tt.want {
				t.Errorf("measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

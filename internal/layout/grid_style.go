package layout

// GridAutoFlow controls how auto-placed grid items flow into the grid.
type GridAutoFlow uint8

const (
	FlowRow         GridAutoFlow = iota // Fill rows first
	FlowColumn                          // Fill columns first
	FlowRowDense                        // Rows, back-filling holes
	FlowColumnDense                     // Columns, back-filling holes
)

func (f GridAutoFlow) isDense() bool {
	return f == FlowRowDense || f == FlowColumnDense
}

// primaryAxis is the axis along which the auto-placement cursor advances.
func (f GridAutoFlow) primaryAxis() axis {
	if f == FlowColumn || f == FlowColumnDense {
		return vertical
	}
	return horizontal
}

// TrackSize is a non-repeated track sizing function, minmax(Min, Max).
// Min accepts auto, fixed, percent, min-content and max-content.
// Max additionally accepts fit-content and fr.
type TrackSize struct {
	Min Value
	Max Value
}

// MinMax returns a minmax(min, max) track.
func MinMax(minV, maxV Value) TrackSize {
	return TrackSize{Min: minV, Max: maxV}
}

// FixedTrack returns a track of exactly n.
func FixedTrack(n float64) TrackSize {
	return TrackSize{Min: Fixed(n), Max: Fixed(n)}
}

// PercentTrack returns a track sized as a percentage of the container.
func PercentTrack(p float64) TrackSize {
	return TrackSize{Min: Percent(p), Max: Percent(p)}
}

// AutoTrack returns an auto track.
func AutoTrack() TrackSize {
	return TrackSize{Min: Auto(), Max: Auto()}
}

// FrTrack returns a flexible track, minmax(auto, n fr).
func FrTrack(n float64) TrackSize {
	return TrackSize{Min: Auto(), Max: Fr(n)}
}

// MinContentTrack returns a min-content track.
func MinContentTrack() TrackSize {
	return TrackSize{Min: MinContent(), Max: MinContent()}
}

// MaxContentTrack returns a max-content track.
func MaxContentTrack() TrackSize {
	return TrackSize{Min: MaxContent(), Max: MaxContent()}
}

// FitContentTrack returns fit-content(limit), where limit is Fixed or Percent.
func FitContentTrack(limit Value) TrackSize {
	maxV := FitContent(limit.Amount)
	if limit.Unit == UnitPercent {
		maxV = FitContentPercent(limit.Amount)
	}
	return TrackSize{Min: Auto(), Max: maxV}
}

func (t TrackSize) isFlexible() bool {
	return t.Max.Unit == UnitFr
}

// RepetitionMode distinguishes the three kinds of repeat().
type RepetitionMode uint8

const (
	RepeatCount    RepetitionMode = iota // repeat(n, ...)
	RepeatAutoFill                       // repeat(auto-fill, ...)
	RepeatAutoFit                        // repeat(auto-fit, ...), empty tracks collapse
)

// TrackSizing is one entry of a grid template: either a single track or a
// repeat() of one or more tracks.
type TrackSizing struct {
	Repeat bool
	Mode   RepetitionMode
	Count  int
	Tracks []TrackSize // exactly one entry when Repeat is false
}

// Single wraps a track as a template entry.
func Single(t TrackSize) TrackSizing {
	return TrackSizing{Tracks: []TrackSize{t}}
}

// Repeat returns repeat(count, tracks...).
func Repeat(count int, tracks ...TrackSize) TrackSizing {
	return TrackSizing{Repeat: true, Mode: RepeatCount, Count: count, Tracks: tracks}
}

// RepeatFill returns repeat(auto-fill, tracks...).
func RepeatFill(tracks ...TrackSize) TrackSizing {
	return TrackSizing{Repeat: true, Mode: RepeatAutoFill, Tracks: tracks}
}

// RepeatFit returns repeat(auto-fit, tracks...).
func RepeatFit(tracks ...TrackSize) TrackSizing {
	return TrackSizing{Repeat: true, Mode: RepeatAutoFit, Tracks: tracks}
}

// Tracks is a convenience for a template made only of single tracks.
func Tracks(tracks ...TrackSize) []TrackSizing {
	out := make([]TrackSizing, len(tracks))
	for i, t := range tracks {
		out[i] = Single(t)
	}
	return out
}

func (t TrackSizing) isAutoRepeat() bool {
	return t.Repeat && (t.Mode == RepeatAutoFill || t.Mode == RepeatAutoFit)
}

// PlacementKind tags a GridPlacement.
type PlacementKind uint8

const (
	PlaceAuto PlacementKind = iota
	PlaceLine                // 1-based line index, negative counts from the end
	PlaceSpan                // span n tracks
)

// GridPlacement is one end of an item's placement on an axis.
type GridPlacement struct {
	Kind  PlacementKind
	Value int
}

// AutoPlacement returns an auto placement.
func AutoPlacement() GridPlacement {
	return GridPlacement{Kind: PlaceAuto}
}

// LinePlacement returns a placement at the given grid line.
// Line 0 is invalid in CSS and is treated as auto.
func LinePlacement(line int) GridPlacement {
	if line == 0 {
		return AutoPlacement()
	}
	return GridPlacement{Kind: PlaceLine, Value: line}
}

// SpanPlacement returns a span of n tracks (minimum 1).
func SpanPlacement(n int) GridPlacement {
	return GridPlacement{Kind: PlaceSpan, Value: max(n, 1)}
}

// Line holds the start and end placements of an item on one axis.
type Line struct {
	Start, End GridPlacement
}

// AutoLine returns auto / auto.
func AutoLine() Line {
	return Line{Start: AutoPlacement(), End: AutoPlacement()}
}

// Lines returns start / end line placements.
func Lines(start, end int) Line {
	return Line{Start: LinePlacement(start), End: LinePlacement(end)}
}

// Span returns auto / span n.
func Span(n int) Line {
	return Line{Start: AutoPlacement(), End: SpanPlacement(n)}
}

func (s *Style) gridLine(ax axis) Line {
	if ax == horizontal {
		return s.GridColumn
	}
	return s.GridRow
}

func (s *Style) gridTemplate(ax axis) []TrackSizing {
	if ax == horizontal {
		return s.GridTemplateColumns
	}
	return s.GridTemplateRows
}

func (s *Style) gridAutoTracks(ax axis) []TrackSize {
	if ax == horizontal {
		return s.GridAutoColumns
	}
	return s.GridAutoRows
}

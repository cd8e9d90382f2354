// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxlayout

import "github.com/grindlemire/boxlayout/internal/layout"

// Tree owns every node and its computed layout.
type Tree = layout.Tree

// NodeID identifies a node within a Tree.
type NodeID = layout.NodeID

// NoNode is the zero NodeID, never valid.
const NoNode = layout.NoNode

// TreeOption configures a Tree at construction.
type TreeOption = layout.TreeOption

// MeasureFunc sizes the content of leaves with the measure flag set.
type MeasureFunc = layout.MeasureFunc

// CacheStats counts measurement cache hits and misses.
type CacheStats = layout.CacheStats

// TreeError describes a failed tree operation.
type TreeError = layout.TreeError

var (
	ErrInvalidNodeID     = layout.ErrInvalidNodeID
	ErrInvalidChildIndex = layout.ErrInvalidChildIndex
	ErrCapacityExceeded  = layout.ErrCapacityExceeded
	ErrChildNotFound     = layout.ErrChildNotFound
	ErrWouldCycle        = layout.ErrWouldCycle
)

const (
	DefaultCacheSize = layout.DefaultCacheSize
	MaxCacheSize     = layout.MaxCacheSize
)

// NewTree creates an empty tree.
func NewTree(opts ...TreeOption) (*Tree, error) {
	return layout.NewTree(opts...)
}

// WithCapacity limits the number of live nodes.
func WithCapacity(n int) TreeOption {
	return layout.WithCapacity(n)
}

// WithCacheSize sets the number of cached measurements per node.
func WithCacheSize(n int) TreeOption {
	return layout.WithCacheSize(n)
}

// WithRounding enables or disables snapping final layouts to whole units.
func WithRounding(enabled bool) TreeOption {
	return layout.WithRounding(enabled)
}

// WithMeasureFunc sets the default measure function for ComputeLayout.
func WithMeasureFunc(fn MeasureFunc) TreeOption {
	return layout.WithMeasureFunc(fn)
}

// Value represents a length (auto, fixed, percent, intrinsic or fr).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto              = layout.UnitAuto
	UnitFixed             = layout.UnitFixed
	UnitPercent           = layout.UnitPercent
	UnitMinContent        = layout.UnitMinContent
	UnitMaxContent        = layout.UnitMaxContent
	UnitFitContent        = layout.UnitFitContent
	UnitFitContentPercent = layout.UnitFitContentPercent
	UnitFr                = layout.UnitFr
)

// Auto creates a Value resolved by the layout algorithm.
func Auto() Value {
	return layout.Auto()
}

// Fixed creates an absolute length.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent creates a Value relative to the containing block (0-100).
func Percent(p float64) Value {
	return layout.Percent(p)
}

// MinContent creates a min-content Value.
func MinContent() Value {
	return layout.MinContent()
}

// MaxContent creates a max-content Value.
func MaxContent() Value {
	return layout.MaxContent()
}

// FitContent creates a fit-content(n) track limit.
func FitContent(n float64) Value {
	return layout.FitContent(n)
}

// FitContentPercent creates a fit-content(p%) track limit.
func FitContentPercent(p float64) Value {
	return layout.FitContentPercent(p)
}

// Fr creates a flexible grid track factor.
func Fr(n float64) Value {
	return layout.Fr(n)
}

// AvailableSpace is the space offered along one axis.
type AvailableSpace = layout.AvailableSpace

// AvailableSize is the space offered to a layout root.
type AvailableSize = layout.AvailableSize

// SpaceKind distinguishes definite from intrinsic available space.
type SpaceKind = layout.SpaceKind

const (
	SpaceDefinite   = layout.SpaceDefinite
	SpaceMinContent = layout.SpaceMinContent
	SpaceMaxContent = layout.SpaceMaxContent
)

// Definite creates a definite available space.
func Definite(v float64) AvailableSpace {
	return layout.Definite(v)
}

// MinContentSpace asks for the min-content size.
func MinContentSpace() AvailableSpace {
	return layout.MinContentSpace()
}

// MaxContentSpace asks for the max-content size.
func MaxContentSpace() AvailableSpace {
	return layout.MaxContentSpace()
}

// DefiniteSize creates a definite available size.
func DefiniteSize(width, height float64) AvailableSize {
	return layout.DefiniteSize(width, height)
}

// MaxContentSize offers unbounded space on both axes.
func MaxContentSize() AvailableSize {
	return layout.MaxContentSize()
}

// Style holds the layout properties for a node.
type Style = layout.Style

// SizeValues is a width/height pair of Values.
type SizeValues = layout.SizeValues

// EdgeValues holds a Value per side.
type EdgeValues = layout.EdgeValues

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// Ref returns a pointer to v, for optional Style fields.
func Ref[T any](v T) *T {
	return layout.Ref(v)
}

// AutoSize returns auto on both axes.
func AutoSize() SizeValues {
	return layout.AutoSize()
}

// FixedSize returns fixed lengths on both axes.
func FixedSize(width, height float64) SizeValues {
	return layout.FixedSize(width, height)
}

// EdgeValuesAll uses v on every side.
func EdgeValuesAll(v Value) EdgeValues {
	return layout.EdgeValuesAll(v)
}

// EdgeValuesTRBL follows CSS order: Top, Right, Bottom, Left.
func EdgeValuesTRBL(t, r, b, l Value) EdgeValues {
	return layout.EdgeValuesTRBL(t, r, b, l)
}

// ZeroEdges is Fixed(0) on every side.
func ZeroEdges() EdgeValues {
	return layout.ZeroEdges()
}

// AutoEdges is Auto on every side.
func AutoEdges() EdgeValues {
	return layout.AutoEdges()
}

// Display selects the algorithm used to lay out a node's children.
type Display = layout.Display

const (
	DisplayFlex  = layout.DisplayFlex
	DisplayGrid  = layout.DisplayGrid
	DisplayBlock = layout.DisplayBlock
	DisplayNone  = layout.DisplayNone
)

// BoxSizing selects which box the size styles describe.
type BoxSizing = layout.BoxSizing

const (
	BorderBox  = layout.BorderBox
	ContentBox = layout.ContentBox
)

// Overflow controls how overflowing content affects layout.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
	OverflowClip    = layout.OverflowClip
)

// Position selects whether a node takes part in flow layout.
type Position = layout.Position

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// FlexDirection specifies the main axis of a flex container.
type FlexDirection = layout.FlexDirection

const (
	Row           = layout.Row
	Column        = layout.Column
	RowReverse    = layout.RowReverse
	ColumnReverse = layout.ColumnReverse
)

// FlexWrap controls whether flex items wrap.
type FlexWrap = layout.FlexWrap

const (
	NoWrap      = layout.NoWrap
	Wrap        = layout.Wrap
	WrapReverse = layout.WrapReverse
)

// AlignItems aligns items within their line or grid area.
type AlignItems = layout.AlignItems

const (
	AlignStart     = layout.AlignStart
	AlignEnd       = layout.AlignEnd
	AlignFlexStart = layout.AlignFlexStart
	AlignFlexEnd   = layout.AlignFlexEnd
	AlignCenter    = layout.AlignCenter
	AlignBaseline  = layout.AlignBaseline
	AlignStretch   = layout.AlignStretch
)

// AlignContent distributes lines or tracks along an axis.
type AlignContent = layout.AlignContent

const (
	ContentStart        = layout.ContentStart
	ContentEnd          = layout.ContentEnd
	ContentFlexStart    = layout.ContentFlexStart
	ContentFlexEnd      = layout.ContentFlexEnd
	ContentCenter       = layout.ContentCenter
	ContentStretch      = layout.ContentStretch
	ContentSpaceBetween = layout.ContentSpaceBetween
	ContentSpaceEvenly  = layout.ContentSpaceEvenly
	ContentSpaceAround  = layout.ContentSpaceAround
)

// GridAutoFlow controls how auto-placed grid items flow.
type GridAutoFlow = layout.GridAutoFlow

const (
	FlowRow         = layout.FlowRow
	FlowColumn      = layout.FlowColumn
	FlowRowDense    = layout.FlowRowDense
	FlowColumnDense = layout.FlowColumnDense
)

// TrackSize is a minmax grid track sizing function.
type TrackSize = layout.TrackSize

// TrackSizing is a single track or a repeat() of tracks.
type TrackSizing = layout.TrackSizing

// RepetitionMode selects how a repeat() expands.
type RepetitionMode = layout.RepetitionMode

const (
	RepeatCount    = layout.RepeatCount
	RepeatAutoFill = layout.RepeatAutoFill
	RepeatAutoFit  = layout.RepeatAutoFit
)

// GridPlacement is one end of an item's grid line placement.
type GridPlacement = layout.GridPlacement

// PlacementKind distinguishes auto, line and span placements.
type PlacementKind = layout.PlacementKind

const (
	PlaceAuto = layout.PlaceAuto
	PlaceLine = layout.PlaceLine
	PlaceSpan = layout.PlaceSpan
)

// Line is the start and end placement on one grid axis.
type Line = layout.Line

// MinMax creates minmax(min, max).
func MinMax(minV, maxV Value) TrackSize {
	return layout.MinMax(minV, maxV)
}

// FixedTrack creates a fixed-size track.
func FixedTrack(n float64) TrackSize {
	return layout.FixedTrack(n)
}

// PercentTrack creates a percentage track.
func PercentTrack(p float64) TrackSize {
	return layout.PercentTrack(p)
}

// AutoTrack creates an auto track.
func AutoTrack() TrackSize {
	return layout.AutoTrack()
}

// FrTrack creates a flexible track.
func FrTrack(n float64) TrackSize {
	return layout.FrTrack(n)
}

// MinContentTrack creates a min-content track.
func MinContentTrack() TrackSize {
	return layout.MinContentTrack()
}

// MaxContentTrack creates a max-content track.
func MaxContentTrack() TrackSize {
	return layout.MaxContentTrack()
}

// FitContentTrack creates a fit-content(limit) track.
func FitContentTrack(limit Value) TrackSize {
	return layout.FitContentTrack(limit)
}

// Single wraps one track in a template entry.
func Single(t TrackSize) TrackSizing {
	return layout.Single(t)
}

// Repeat creates repeat(count, tracks...).
func Repeat(count int, tracks ...TrackSize) TrackSizing {
	return layout.Repeat(count, tracks...)
}

// RepeatFill creates repeat(auto-fill, tracks...).
func RepeatFill(tracks ...TrackSize) TrackSizing {
	return layout.RepeatFill(tracks...)
}

// RepeatFit creates repeat(auto-fit, tracks...).
func RepeatFit(tracks ...TrackSize) TrackSizing {
	return layout.RepeatFit(tracks...)
}

// Tracks wraps each track in a single template entry.
func Tracks(tracks ...TrackSize) []TrackSizing {
	return layout.Tracks(tracks...)
}

// AutoPlacement is an auto grid placement.
func AutoPlacement() GridPlacement {
	return layout.AutoPlacement()
}

// LinePlacement places at a 1-based grid line; negative counts from the end.
func LinePlacement(line int) GridPlacement {
	return layout.LinePlacement(line)
}

// SpanPlacement spans n tracks.
func SpanPlacement(n int) GridPlacement {
	return layout.SpanPlacement(n)
}

// AutoLine places both ends automatically.
func AutoLine() Line {
	return layout.AutoLine()
}

// Lines places between two grid lines.
func Lines(start, end int) Line {
	return layout.Lines(start, end)
}

// Span auto-places an item spanning n tracks.
func Span(n int) Line {
	return layout.Span(n)
}

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Layout holds the computed layout for a node.
type Layout = layout.Layout

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

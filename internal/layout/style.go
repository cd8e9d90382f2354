package layout

// Display selects the algorithm used to lay out a node's children.
type Display uint8

const (
	DisplayFlex  Display = iota // Flexbox (default)
	DisplayGrid                 // CSS grid
	DisplayBlock                // Block flow
	DisplayNone                 // Node and subtree are hidden
)

// BoxSizing selects which box the size styles describe.
type BoxSizing uint8

const (
	BorderBox  BoxSizing = iota // Sizes include padding and border
	ContentBox                  // Sizes exclude padding and border
)

// Overflow controls how content overflowing a node affects layout.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll // Reserves ScrollbarWidth for a scrollbar
	OverflowClip
)

// isScrollContainer reports whether the automatic minimum size of an item
// with this overflow is zero instead of content based.
func (o Overflow) isScrollContainer() bool {
	return o == OverflowHidden || o == OverflowScroll
}

// Position selects whether a node takes part in flow layout.
type Position uint8

const (
	PositionRelative Position = iota
	PositionAbsolute
)

// FlexDirection specifies the main axis of a flex container.
type FlexDirection uint8

const (
	Row           FlexDirection = iota // Children laid out left-to-right
	Column                             // Children laid out top-to-bottom
	RowReverse                         // Right-to-left
	ColumnReverse                      // Bottom-to-top
)

func (d FlexDirection) isRow() bool {
	return d == Row || d == RowReverse
}

func (d FlexDirection) isReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

func (d FlexDirection) mainAxis() axis {
	if d.isRow() {
		return horizontal
	}
	return vertical
}

// FlexWrap controls whether flex items wrap onto multiple lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// AlignItems positions items on an axis within their line or area.
// Used for align-items, justify-items, align-self and justify-self.
type AlignItems uint8

const (
	AlignStart AlignItems = iota
	AlignEnd
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignBaseline
	AlignStretch
)

// AlignContent distributes lines or tracks within a container.
// Used for align-content and justify-content.
type AlignContent uint8

const (
	ContentStart AlignContent = iota
	ContentEnd
	ContentFlexStart
	ContentFlexEnd
	ContentCenter
	ContentStretch
	ContentSpaceBetween
	ContentSpaceEvenly
	ContentSpaceAround
)

// Style contains all layout properties for a node. Pointer fields are
// optional: nil means "use the algorithm's default".
type Style struct {
	Display   Display
	BoxSizing BoxSizing

	OverflowX      Overflow
	OverflowY      Overflow
	ScrollbarWidth float64

	Position Position
	Inset    EdgeValues

	// Sizing
	Size        SizeValues
	MinSize     SizeValues
	MaxSize     SizeValues
	AspectRatio *float64 // width / height

	// Spacing
	Margin  EdgeValues
	Padding EdgeValues
	Border  EdgeValues
	Gap     SizeValues // Width is the column gap, Height the row gap

	// Alignment
	AlignItems     *AlignItems
	JustifyItems   *AlignItems
	AlignSelf      *AlignItems
	JustifySelf    *AlignItems
	AlignContent   *AlignContent
	JustifyContent *AlignContent

	// Flex container properties
	FlexDirection FlexDirection
	FlexWrap      FlexWrap

	// Flex item properties
	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Value

	// Grid container properties
	GridTemplateRows    []TrackSizing
	GridTemplateColumns []TrackSizing
	GridAutoRows        []TrackSize
	GridAutoColumns     []TrackSize
	GridAutoFlow        GridAutoFlow

	// Grid item properties
	GridRow    Line
	GridColumn Line
}

// DefaultStyle returns a Style with the CSS initial values.
func DefaultStyle() Style {
	return Style{
		Display:    DisplayFlex,
		Inset:      AutoEdges(),
		Size:       AutoSize(),
		MinSize:    AutoSize(),
		MaxSize:    AutoSize(),
		Margin:     ZeroEdges(),
		Padding:    ZeroEdges(),
		Border:     ZeroEdges(),
		Gap:        FixedSize(0, 0),
		FlexShrink: 1.0,
		FlexBasis:  Auto(),
		GridRow:    AutoLine(),
		GridColumn: AutoLine(),
	}
}

// Ref returns a pointer to v, for the optional style fields.
func Ref[T any](v T) *T {
	return &v
}

func (s *Style) overflow(ax axis) Overflow {
	if ax == horizontal {
		return s.OverflowX
	}
	return s.OverflowY
}

// scrollbarGutter returns the space reserved for scrollbars. A vertical
// scrollbar (overflow-y: scroll) takes width, a horizontal one height.
func (s *Style) scrollbarGutter() Size {
	var g Size
	if s.OverflowY == OverflowScroll {
		g.Width = s.ScrollbarWidth
	}
	if s.OverflowX == OverflowScroll {
		g.Height = s.ScrollbarWidth
	}
	return g
}

// boxModel holds the resolved spacing of a node.
type boxModel struct {
	margin  Edges
	padding Edges
	border  Edges
}

func (b boxModel) paddingBorder() Edges {
	return b.padding.Add(b.border)
}

// resolveBoxModel resolves spacing against the containing block width.
func (s *Style) resolveBoxModel(parentWidth float64) boxModel {
	return boxModel{
		margin:  s.Margin.ResolveOrZero(parentWidth),
		padding: s.Padding.ResolveOrZero(parentWidth),
		border:  s.Border.ResolveOrZero(parentWidth),
	}
}

// boxSizingAdjustment is what must be added to resolved size styles to
// turn them into border-box sizes.
func (s *Style) boxSizingAdjustment(pb Edges) Size {
	if s.BoxSizing == ContentBox {
		return pb.Sum()
	}
	return Size{}
}

// resolvedSizes resolves size, min and max styles to border-box lengths
// against the containing block, applying aspect ratio to size and the
// box-sizing adjustment to all three.
func (s *Style) resolvedSizes(parent Size, pb Edges) (size, minSize, maxSize Size) {
	adj := s.boxSizingAdjustment(pb)
	size = s.Size.Resolve(parent).applyAspectRatio(s.AspectRatio).maybeAdd(adj)
	minSize = s.MinSize.Resolve(parent).applyAspectRatio(s.AspectRatio).maybeAdd(adj)
	maxSize = s.MaxSize.Resolve(parent).applyAspectRatio(s.AspectRatio).maybeAdd(adj)
	return size, minSize, maxSize
}

func (s *Style) alignSelf(parent *Style, fallback AlignItems) AlignItems {
	if s.AlignSelf != nil {
		return *s.AlignSelf
	}
	if parent.AlignItems != nil {
		return *parent.AlignItems
	}
	return fallback
}

func (s *Style) justifySelf(parent *Style, fallback AlignItems) AlignItems {
	if s.JustifySelf != nil {
		return *s.JustifySelf
	}
	if parent.JustifyItems != nil {
		return *parent.JustifyItems
	}
	return fallback
}

func alignContentOr(v *AlignContent, fallback AlignContent) AlignContent {
	if v != nil {
		return *v
	}
	return fallback
}

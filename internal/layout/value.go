package layout

import "math"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto       Unit = iota // Size determined by content/algorithm
	UnitFixed                  // Absolute length
	UnitPercent                // Percentage of the containing block axis (0-100)
	UnitMinContent             // Smallest size without overflow
	UnitMaxContent             // Size with no wrapping constraint

	// Track-only units, valid as the max of a grid TrackSize.
	UnitFitContent        // fit-content(Amount)
	UnitFitContentPercent // fit-content(Amount%)
	UnitFr                // Share of leftover grid space
)

func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitFixed:
		return "fixed"
	case UnitPercent:
		return "percent"
	case UnitMinContent:
		return "min-content"
	case UnitMaxContent:
		return "max-content"
	case UnitFitContent:
		return "fit-content"
	case UnitFitContentPercent:
		return "fit-content-percent"
	case UnitFr:
		return "fr"
	default:
		return "unknown"
	}
}

// Value is a tagged length. Auto and Fixed(0) are never interchangeable.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that is computed by the layout algorithm.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns an absolute length.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a percentage of the containing block.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// MinContent returns the min-content keyword.
func MinContent() Value {
	return Value{Unit: UnitMinContent}
}

// MaxContent returns the max-content keyword.
func MaxContent() Value {
	return Value{Unit: UnitMaxContent}
}

// FitContent returns a fit-content(n) track limit.
func FitContent(n float64) Value {
	return Value{Amount: n, Unit: UnitFitContent}
}

// FitContentPercent returns a fit-content(p%) track limit.
func FitContentPercent(p float64) Value {
	return Value{Amount: p, Unit: UnitFitContentPercent}
}

// Fr returns a flexible grid track factor.
func Fr(n float64) Value {
	return Value{Amount: n, Unit: UnitFr}
}

// IsAuto returns true if this value should be computed by the algorithm.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsIntrinsic reports whether the value depends on content size.
func (v Value) IsIntrinsic() bool {
	switch v.Unit {
	case UnitAuto, UnitMinContent, UnitMaxContent, UnitFitContent, UnitFitContentPercent:
		return true
	}
	return false
}

// Resolve computes a concrete length given the containing block size.
// The result is undefined (NaN) for auto, intrinsic keywords, and for
// percentages against an undefined context.
func (v Value) Resolve(context float64) float64 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitPercent:
		if !isDefined(context) {
			return undefined
		}
		return context * v.Amount / 100.0
	default:
		return undefined
	}
}

// ResolveOrZero is Resolve with undefined results collapsed to zero.
// Used for margins, padding, borders and gaps.
func (v Value) ResolveOrZero(context float64) float64 {
	return orElse(v.Resolve(context), 0)
}

// definiteValue resolves a fixed length, or a percentage against a
// definite context. Track sizing uses it for fit-content arguments too.
func (v Value) definiteValue(context float64) float64 {
	switch v.Unit {
	case UnitFixed, UnitFitContent:
		return v.Amount
	case UnitPercent, UnitFitContentPercent:
		if !isDefined(context) {
			return undefined
		}
		return context * v.Amount / 100.0
	}
	return undefined
}

// SpaceKind distinguishes definite available space from intrinsic
// sizing requests.
type SpaceKind uint8

const (
	SpaceDefinite SpaceKind = iota
	SpaceMinContent
	SpaceMaxContent
)

// AvailableSpace is the per-axis constraint handed to a layout pass.
type AvailableSpace struct {
	Kind  SpaceKind
	Value float64
}

// Definite returns a definite available space.
func Definite(v float64) AvailableSpace {
	return AvailableSpace{Kind: SpaceDefinite, Value: v}
}

// MinContentSpace asks for the min-content size.
func MinContentSpace() AvailableSpace {
	return AvailableSpace{Kind: SpaceMinContent}
}

// MaxContentSpace asks for the max-content size.
func MaxContentSpace() AvailableSpace {
	return AvailableSpace{Kind: SpaceMaxContent}
}

// IsDefinite reports whether the space is a concrete number.
func (a AvailableSpace) IsDefinite() bool {
	return a.Kind == SpaceDefinite
}

// Definite returns the value when definite and NaN otherwise.
func (a AvailableSpace) Definite() float64 {
	if a.Kind == SpaceDefinite {
		return a.Value
	}
	return undefined
}

// Or returns the definite value or fallback.
func (a AvailableSpace) Or(fallback float64) float64 {
	if a.Kind == SpaceDefinite {
		return a.Value
	}
	return fallback
}

// Sub shrinks a definite space by v. Intrinsic spaces are unchanged.
func (a AvailableSpace) Sub(v float64) AvailableSpace {
	if a.Kind == SpaceDefinite && isDefined(v) {
		return Definite(a.Value - v)
	}
	return a
}

// Min caps a definite space at v.
func (a AvailableSpace) Min(v float64) AvailableSpace {
	if !isDefined(v) {
		return a
	}
	switch a.Kind {
	case SpaceDefinite:
		return Definite(math.Min(a.Value, v))
	case SpaceMaxContent:
		return Definite(v)
	}
	return a
}

// WithKnown replaces the space with a known size when one is available.
func (a AvailableSpace) WithKnown(known float64) AvailableSpace {
	if isDefined(known) {
		return Definite(known)
	}
	return a
}

// freeSpace returns the space left after used: infinite under
// max-content, nothing under min-content.
func (a AvailableSpace) freeSpace(used float64) float64 {
	switch a.Kind {
	case SpaceDefinite:
		return a.Value - used
	case SpaceMaxContent:
		return math.Inf(1)
	default:
		return 0
	}
}

func (a AvailableSpace) equal(b AvailableSpace) bool {
	if a.Kind != b.Kind {
		return false
	}
	return a.Kind != SpaceDefinite || a.Value == b.Value
}

// AvailableSize pairs the available space of both axes.
type AvailableSize struct {
	Width, Height AvailableSpace
}

// DefiniteSize returns an AvailableSize with both axes definite.
func DefiniteSize(width, height float64) AvailableSize {
	return AvailableSize{Width: Definite(width), Height: Definite(height)}
}

// MaxContentSize returns an unconstrained AvailableSize.
func MaxContentSize() AvailableSize {
	return AvailableSize{Width: MaxContentSpace(), Height: MaxContentSpace()}
}

func (a AvailableSize) axis(ax axis) AvailableSpace {
	if ax == horizontal {
		return a.Width
	}
	return a.Height
}

func (a *AvailableSize) setAxis(ax axis, v AvailableSpace) {
	if ax == horizontal {
		a.Width = v
	} else {
		a.Height = v
	}
}

// Definite returns a Size with NaN for non-definite axes.
func (a AvailableSize) Definite() Size {
	return Size{Width: a.Width.Definite(), Height: a.Height.Definite()}
}

func (a AvailableSize) sub(s Size) AvailableSize {
	return AvailableSize{Width: a.Width.Sub(s.Width), Height: a.Height.Sub(s.Height)}
}

func (a AvailableSize) withKnown(known Size) AvailableSize {
	return AvailableSize{Width: a.Width.WithKnown(known.Width), Height: a.Height.WithKnown(known.Height)}
}

// SizeValues holds a Value per axis.
type SizeValues struct {
	Width, Height Value
}

// AutoSize returns SizeValues with both axes auto.
func AutoSize() SizeValues {
	return SizeValues{Width: Auto(), Height: Auto()}
}

// FixedSize returns SizeValues with both axes fixed.
func FixedSize(width, height float64) SizeValues {
	return SizeValues{Width: Fixed(width), Height: Fixed(height)}
}

func (s SizeValues) axis(ax axis) Value {
	if ax == horizontal {
		return s.Width
	}
	return s.Height
}

// Resolve resolves each axis against the matching context axis.
func (s SizeValues) Resolve(context Size) Size {
	return Size{Width: s.Width.Resolve(context.Width), Height: s.Height.Resolve(context.Height)}
}

// ResolveOrZero is Resolve with undefined axes collapsed to zero.
func (s SizeValues) ResolveOrZero(context Size) Size {
	return Size{Width: s.Width.ResolveOrZero(context.Width), Height: s.Height.ResolveOrZero(context.Height)}
}

// EdgeValues holds a Value for each side of a box.
type EdgeValues struct {
	Top, Right, Bottom, Left Value
}

// EdgeValuesAll creates EdgeValues with the same value on all sides.
func EdgeValuesAll(v Value) EdgeValues {
	return EdgeValues{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeValuesTRBL creates EdgeValues following CSS order.
func EdgeValuesTRBL(t, r, b, l Value) EdgeValues {
	return EdgeValues{Top: t, Right: r, Bottom: b, Left: l}
}

// ZeroEdges returns EdgeValues of Fixed(0).
func ZeroEdges() EdgeValues {
	return EdgeValuesAll(Fixed(0))
}

// AutoEdges returns EdgeValues of Auto.
func AutoEdges() EdgeValues {
	return EdgeValuesAll(Auto())
}

// Resolve resolves every side against a single context length.
// Spacing percentages always refer to the containing block width.
func (e EdgeValues) Resolve(context float64) Edges {
	return Edges{
		Top:    e.Top.Resolve(context),
		Right:  e.Right.Resolve(context),
		Bottom: e.Bottom.Resolve(context),
		Left:   e.Left.Resolve(context),
	}
}

// ResolveOrZero resolves every side, collapsing undefined to zero.
func (e EdgeValues) ResolveOrZero(context float64) Edges {
	return Edges{
		Top:    e.Top.ResolveOrZero(context),
		Right:  e.Right.ResolveOrZero(context),
		Bottom: e.Bottom.ResolveOrZero(context),
		Left:   e.Left.ResolveOrZero(context),
	}
}

func (e EdgeValues) start(ax axis) Value {
	if ax == horizontal {
		return e.Left
	}
	return e.Top
}

func (e EdgeValues) end(ax axis) Value {
	if ax == horizontal {
		return e.Right
	}
	return e.Bottom
}

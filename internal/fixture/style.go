package fixture

import (
	"fmt"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// styleBuilder accumulates the first conversion error so ToStyle reads as
// a flat list of fields.
type styleBuilder struct {
	err error
}

func (b *styleBuilder) check(field string, err error) {
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("%s: %w", field, err)
	}
}

func (b *styleBuilder) length(field string, v any, def layout.Value) layout.Value {
	out, err := parseLength(v, def)
	b.check(field, err)
	return out
}

func (b *styleBuilder) edges(field string, v any, def layout.EdgeValues) layout.EdgeValues {
	out, err := parseEdges(v, def)
	b.check(field, err)
	return out
}

// ToStyle converts the textual style into a layout style.
func (s StyleSpec) ToStyle() (layout.Style, error) {
	st := layout.DefaultStyle()
	var b styleBuilder
	var err error

	st.Display, err = lookup(s.Display, displays, st.Display)
	b.check("display", err)
	st.BoxSizing, err = lookup(s.BoxSizing, boxSizings, st.BoxSizing)
	b.check("box_sizing", err)
	st.Position, err = lookup(s.Position, positions, st.Position)
	b.check("position", err)

	overflow, err := lookup(s.Overflow, overflows, layout.OverflowVisible)
	b.check("overflow", err)
	st.OverflowX, err = lookup(s.OverflowX, overflows, overflow)
	b.check("overflow_x", err)
	st.OverflowY, err = lookup(s.OverflowY, overflows, overflow)
	b.check("overflow_y", err)
	if s.ScrollbarWidth != nil {
		st.ScrollbarWidth = *s.ScrollbarWidth
	}

	st.Size.Width = b.length("width", s.Width, st.Size.Width)
	st.Size.Height = b.length("height", s.Height, st.Size.Height)
	st.MinSize.Width = b.length("min_width", s.MinWidth, st.MinSize.Width)
	st.MinSize.Height = b.length("min_height", s.MinHeight, st.MinSize.Height)
	st.MaxSize.Width = b.length("max_width", s.MaxWidth, st.MaxSize.Width)
	st.MaxSize.Height = b.length("max_height", s.MaxHeight, st.MaxSize.Height)
	if s.AspectRatio != nil {
		if *s.AspectRatio <= 0 {
			b.check("aspect_ratio", fmt.Errorf("must be positive, got %g", *s.AspectRatio))
		}
		st.AspectRatio = layout.Ref(*s.AspectRatio)
	}

	st.Inset = b.edges("inset", s.Inset, st.Inset)
	st.Margin = b.edges("margin", s.Margin, st.Margin)
	st.Padding = b.edges("padding", s.Padding, st.Padding)
	st.Border = b.edges("border", s.Border, st.Border)

	gap := b.length("gap", s.Gap, layout.Fixed(0))
	st.Gap.Width = b.length("column_gap", s.ColumnGap, gap)
	st.Gap.Height = b.length("row_gap", s.RowGap, gap)

	st.AlignItems, err = lookupRef(s.AlignItems, alignItems)
	b.check("align_items", err)
	st.JustifyItems, err = lookupRef(s.JustifyItems, alignItems)
	b.check("justify_items", err)
	st.AlignSelf, err = lookupRef(s.AlignSelf, alignItems)
	b.check("align_self", err)
	st.JustifySelf, err = lookupRef(s.JustifySelf, alignItems)
	b.check("justify_self", err)
	st.AlignContent, err = lookupRef(s.AlignContent, alignContents)
	b.check("align_content", err)
	st.JustifyContent, err = lookupRef(s.JustifyContent, alignContents)
	b.check("justify_content", err)

	st.FlexDirection, err = lookup(s.FlexDirection, directions, st.FlexDirection)
	b.check("flex_direction", err)
	st.FlexWrap, err = lookup(s.FlexWrap, wraps, st.FlexWrap)
	b.check("flex_wrap", err)
	if s.FlexGrow != nil {
		st.FlexGrow = *s.FlexGrow
	}
	if s.FlexShrink != nil {
		st.FlexShrink = *s.FlexShrink
	}
	st.FlexBasis = b.length("flex_basis", s.FlexBasis, st.FlexBasis)

	if s.GridTemplateRows != "" {
		st.GridTemplateRows, err = parseTemplate(s.GridTemplateRows)
		b.check("grid_template_rows", err)
	}
	if s.GridTemplateColumns != "" {
		st.GridTemplateColumns, err = parseTemplate(s.GridTemplateColumns)
		b.check("grid_template_columns", err)
	}
	if s.GridAutoRows != "" {
		st.GridAutoRows, err = parseTrackList(s.GridAutoRows)
		b.check("grid_auto_rows", err)
	}
	if s.GridAutoColumns != "" {
		st.GridAutoColumns, err = parseTrackList(s.GridAutoColumns)
		b.check("grid_auto_columns", err)
	}
	st.GridAutoFlow, err = lookup(s.GridAutoFlow, autoFlows, st.GridAutoFlow)
	b.check("grid_auto_flow", err)
	if s.GridRow != "" {
		st.GridRow, err = parseLine(s.GridRow)
		b.check("grid_row", err)
	}
	if s.GridColumn != "" {
		st.GridColumn, err = parseLine(s.GridColumn)
		b.check("grid_column", err)
	}

	if b.err != nil {
		return layout.Style{}, b.err
	}
	return st, nil
}

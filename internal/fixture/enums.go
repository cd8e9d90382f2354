package fixture

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/grindlemire/boxlayout/internal/layout"
)

var (
	displays = map[string]layout.Display{
		"flex":  layout.DisplayFlex,
		"grid":  layout.DisplayGrid,
		"block": layout.DisplayBlock,
		"none":  layout.DisplayNone,
	}
	boxSizings = map[string]layout.BoxSizing{
		"border-box":  layout.BorderBox,
		"content-box": layout.ContentBox,
	}
	positions = map[string]layout.Position{
		"relative": layout.PositionRelative,
		"absolute": layout.PositionAbsolute,
	}
	overflows = map[string]layout.Overflow{
		"visible": layout.OverflowVisible,
		"hidden":  layout.OverflowHidden,
		"scroll":  layout.OverflowScroll,
		"clip":    layout.OverflowClip,
	}
	directions = map[string]layout.FlexDirection{
		"row":            layout.Row,
		"column":         layout.Column,
		"row-reverse":    layout.RowReverse,
		"column-reverse": layout.ColumnReverse,
	}
	wraps = map[string]layout.FlexWrap{
		"nowrap":       layout.NoWrap,
		"wrap":         layout.Wrap,
		"wrap-reverse": layout.WrapReverse,
	}
	alignItems = map[string]layout.AlignItems{
		"start":      layout.AlignStart,
		"end":        layout.AlignEnd,
		"flex-start": layout.AlignFlexStart,
		"flex-end":   layout.AlignFlexEnd,
		"center":     layout.AlignCenter,
		"baseline":   layout.AlignBaseline,
		"stretch":    layout.AlignStretch,
	}
	alignContents = map[string]layout.AlignContent{
		"start":         layout.ContentStart,
		"end":           layout.ContentEnd,
		"flex-start":    layout.ContentFlexStart,
		"flex-end":      layout.ContentFlexEnd,
		"center":        layout.ContentCenter,
		"stretch":       layout.ContentStretch,
		"space-between": layout.ContentSpaceBetween,
		"space-evenly":  layout.ContentSpaceEvenly,
		"space-around":  layout.ContentSpaceAround,
	}
	autoFlows = map[string]layout.GridAutoFlow{
		"row":          layout.FlowRow,
		"column":       layout.FlowColumn,
		"row dense":    layout.FlowRowDense,
		"column dense": layout.FlowColumnDense,
	}
)

// lookup resolves an enum name. Empty input keeps def; unknown names fail
// with the accepted spellings listed.
func lookup[T any](name string, table map[string]T, def T) (T, error) {
	if name == "" {
		return def, nil
	}
	if v, ok := table[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v, nil
	}
	keys := slices.Sorted(maps.Keys(table))
	return def, fmt.Errorf("unknown value %q (want one of %s)", name, strings.Join(keys, ", "))
}

// lookupRef is lookup for the optional alignment fields, nil when empty.
func lookupRef[T any](name string, table map[string]T) (*T, error) {
	if name == "" {
		return nil, nil
	}
	var zero T
	v, err := lookup(name, table, zero)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

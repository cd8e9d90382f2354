package fixture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// number converts a decoded scalar to float64. YAML yields int and
// float64, TOML int64 and float64.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// parseLength parses a size or spacing length: a number, "N%", "auto",
// "min-content" or "max-content". A nil value yields def.
func parseLength(v any, def layout.Value) (layout.Value, error) {
	if v == nil {
		return def, nil
	}
	if n, ok := number(v); ok {
		return layout.Fixed(n), nil
	}
	s, ok := v.(string)
	if !ok {
		return layout.Value{}, fmt.Errorf("length must be a number or string, got %T", v)
	}
	return parseLengthString(s)
}

func parseLengthString(s string) (layout.Value, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "auto":
		return layout.Auto(), nil
	case "min-content":
		return layout.MinContent(), nil
	case "max-content":
		return layout.MaxContent(), nil
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return layout.Value{}, fmt.Errorf("invalid percentage %q", s)
		}
		return layout.Percent(f), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return layout.Value{}, fmt.Errorf("invalid length %q", s)
	}
	return layout.Fixed(f), nil
}

// parseEdges parses a CSS shorthand: a single length or a list of one to
// four lengths (top, right, bottom, left, with the usual omissions).
func parseEdges(v any, def layout.EdgeValues) (layout.EdgeValues, error) {
	if v == nil {
		return def, nil
	}
	list, ok := v.([]any)
	if !ok {
		single, err := parseLength(v, layout.Value{})
		if err != nil {
			return layout.EdgeValues{}, err
		}
		return layout.EdgeValuesAll(single), nil
	}

	vals := make([]layout.Value, len(list))
	for i, item := range list {
		val, err := parseLength(item, layout.Value{})
		if err != nil {
			return layout.EdgeValues{}, err
		}
		vals[i] = val
	}
	switch len(vals) {
	case 1:
		return layout.EdgeValuesAll(vals[0]), nil
	case 2:
		return layout.EdgeValuesTRBL(vals[0], vals[1], vals[0], vals[1]), nil
	case 3:
		return layout.EdgeValuesTRBL(vals[0], vals[1], vals[2], vals[1]), nil
	case 4:
		return layout.EdgeValuesTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return layout.EdgeValues{}, fmt.Errorf("edges take 1 to 4 values, got %d", len(vals))
	}
}

// parseAvailable parses one axis of a document's available space.
func parseAvailable(v any) (layout.AvailableSpace, error) {
	if v == nil {
		return layout.MaxContentSpace(), nil
	}
	if n, ok := number(v); ok {
		return layout.Definite(n), nil
	}
	switch v {
	case "min-content":
		return layout.MinContentSpace(), nil
	case "max-content":
		return layout.MaxContentSpace(), nil
	}
	if s, ok := v.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return layout.Definite(f), nil
		}
	}
	return layout.AvailableSpace{}, fmt.Errorf("invalid available space %v (want a number, min-content or max-content)", v)
}

// splitTop splits s on sep outside parentheses.
func splitTop(s string, sep func(rune) bool) ([]string, error) {
	var parts []string
	depth, start := 0, -1
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", s)
			}
		case depth == 0 && sep(r):
			if start >= 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", s)
	}
	if start >= 0 {
		parts = append(parts, strings.TrimSpace(s[start:]))
	}
	return parts, nil
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }
func isComma(r rune) bool { return r == ',' }

// call splits "name(args)" into its parts.
func call(s string) (name, args string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	return s[:open], s[open+1 : len(s)-1], true
}

// parseTrackBound parses one side of a minmax() pair, including fr.
func parseTrackBound(s string) (layout.Value, error) {
	if f, ok := strings.CutSuffix(s, "fr"); ok {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil || n < 0 {
			return layout.Value{}, fmt.Errorf("invalid flex factor %q", s)
		}
		return layout.Fr(n), nil
	}
	return parseLengthString(s)
}

// parseTrack parses a single track sizing function.
func parseTrack(s string) (layout.TrackSize, error) {
	name, args, ok := call(s)
	if !ok {
		v, err := parseTrackBound(s)
		if err != nil {
			return layout.TrackSize{}, err
		}
		switch v.Unit {
		case layout.UnitFr:
			return layout.FrTrack(v.Amount), nil
		case layout.UnitAuto:
			return layout.AutoTrack(), nil
		}
		return layout.MinMax(v, v), nil
	}

	switch name {
	case "fit-content":
		limit, err := parseLengthString(args)
		if err != nil || (limit.Unit != layout.UnitFixed && limit.Unit != layout.UnitPercent) {
			return layout.TrackSize{}, fmt.Errorf("invalid fit-content limit %q", args)
		}
		return layout.FitContentTrack(limit), nil
	case "minmax":
		parts, err := splitTop(args, isComma)
		if err != nil {
			return layout.TrackSize{}, err
		}
		if len(parts) != 2 {
			return layout.TrackSize{}, fmt.Errorf("minmax takes 2 arguments, got %d", len(parts))
		}
		lo, err := parseTrackBound(parts[0])
		if err != nil {
			return layout.TrackSize{}, err
		}
		if lo.Unit == layout.UnitFr {
			return layout.TrackSize{}, fmt.Errorf("minmax minimum cannot be flexible: %q", parts[0])
		}
		hi, err := parseTrackBound(parts[1])
		if err != nil {
			return layout.TrackSize{}, err
		}
		return layout.MinMax(lo, hi), nil
	}
	return layout.TrackSize{}, fmt.Errorf("unknown track function %q", name)
}

// parseTrackList parses a whitespace separated list of tracks, as used by
// grid-auto-rows and grid-auto-columns.
func parseTrackList(s string) ([]layout.TrackSize, error) {
	parts, err := splitTop(s, isSpace)
	if err != nil {
		return nil, err
	}
	tracks := make([]layout.TrackSize, 0, len(parts))
	for _, p := range parts {
		t, err := parseTrack(p)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// parseTemplate parses a grid template, which may contain repeat().
func parseTemplate(s string) ([]layout.TrackSizing, error) {
	parts, err := splitTop(s, isSpace)
	if err != nil {
		return nil, err
	}
	var out []layout.TrackSizing
	autoRepeats := 0
	for _, p := range parts {
		name, args, ok := call(p)
		if !ok || name != "repeat" {
			t, err := parseTrack(p)
			if err != nil {
				return nil, err
			}
			out = append(out, layout.Single(t))
			continue
		}

		countStr, rest, found := strings.Cut(args, ",")
		if !found {
			return nil, fmt.Errorf("repeat needs a count and tracks: %q", p)
		}
		tracks, err := parseTrackList(rest)
		if err != nil {
			return nil, err
		}
		if len(tracks) == 0 {
			return nil, fmt.Errorf("repeat without tracks: %q", p)
		}
		switch countStr = strings.TrimSpace(countStr); countStr {
		case "auto-fill":
			autoRepeats++
			out = append(out, layout.RepeatFill(tracks...))
		case "auto-fit":
			autoRepeats++
			out = append(out, layout.RepeatFit(tracks...))
		default:
			n, err := strconv.Atoi(countStr)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid repeat count %q", countStr)
			}
			out = append(out, layout.Repeat(n, tracks...))
		}
	}
	if autoRepeats > 1 {
		return nil, fmt.Errorf("at most one auto repeat per template, got %d", autoRepeats)
	}
	return out, nil
}

// parsePlacement parses one end of a grid line: "auto", a line number or
// "span N".
func parsePlacement(s string) (layout.GridPlacement, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "auto" {
		return layout.AutoPlacement(), nil
	}
	if n, ok := strings.CutPrefix(s, "span"); ok {
		count, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || count < 1 {
			return layout.GridPlacement{}, fmt.Errorf("invalid span %q", s)
		}
		return layout.SpanPlacement(count), nil
	}
	line, err := strconv.Atoi(s)
	if err != nil || line == 0 {
		return layout.GridPlacement{}, fmt.Errorf("invalid grid line %q", s)
	}
	return layout.LinePlacement(line), nil
}

// parseLine parses "start / end"; a lone start leaves the end auto.
func parseLine(s string) (layout.Line, error) {
	startStr, endStr, _ := strings.Cut(s, "/")
	start, err := parsePlacement(startStr)
	if err != nil {
		return layout.Line{}, err
	}
	end, err := parsePlacement(endStr)
	if err != nil {
		return layout.Line{}, err
	}
	return layout.Line{Start: start, End: end}, nil
}

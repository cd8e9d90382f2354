package layout

// Grid placement works in origin-zero line coordinates: line 0 is the first
// explicit grid line, negative lines belong to implicit tracks before the
// explicit grid.

// lineSpan is a half-open range of grid lines [start, end).
type lineSpan struct {
	start, end int
}

func (s lineSpan) span() int {
	return s.end - s.start
}

// gridArea holds an item's line spans, indexed by axis (horizontal =
// columns).
type gridArea [2]lineSpan

// resolveLine converts a 1-based CSS line number into an origin-zero line.
// Negative numbers count back from the end of the explicit grid.
func resolveLine(line, explicitTracks int) int {
	if line > 0 {
		return line - 1
	}
	return explicitTracks + 1 + line
}

// axisPlacement resolves one axis of an item's placement. definite is
// false when the position is left to auto-placement; span is then the
// requested track count.
func axisPlacement(l Line, explicitTracks int) (s lineSpan, definite bool, span int) {
	start, end := l.Start, l.End
	switch {
	case start.Kind == PlaceLine && end.Kind == PlaceLine:
		a, b := resolveLine(start.Value, explicitTracks), resolveLine(end.Value, explicitTracks)
		if a == b {
			b = a + 1
		} else if b < a {
			a, b = b, a
		}
		return lineSpan{a, b}, true, b - a
	case start.Kind == PlaceLine && end.Kind == PlaceSpan:
		a := resolveLine(start.Value, explicitTracks)
		return lineSpan{a, a + end.Value}, true, end.Value
	case start.Kind == PlaceLine:
		a := resolveLine(start.Value, explicitTracks)
		return lineSpan{a, a + 1}, true, 1
	case end.Kind == PlaceLine && start.Kind == PlaceSpan:
		b := resolveLine(end.Value, explicitTracks)
		return lineSpan{b - start.Value, b}, true, start.Value
	case end.Kind == PlaceLine:
		b := resolveLine(end.Value, explicitTracks)
		return lineSpan{b - 1, b}, true, 1
	}
	span = 1
	if start.Kind == PlaceSpan {
		span = start.Value
	} else if end.Kind == PlaceSpan {
		span = end.Value
	}
	return lineSpan{}, false, max(span, 1)
}

// cellGrid records which grid cells are occupied, keyed by
// [column, row] origin-zero track.
type cellGrid map[[2]int]struct{}

func (g cellGrid) isFree(a gridArea) bool {
	for col := a[horizontal].start; col < a[horizontal].end; col++ {
		for row := a[vertical].start; row < a[vertical].end; row++ {
			if _, taken := g[[2]int{col, row}]; taken {
				return false
			}
		}
	}
	return true
}

func (g cellGrid) mark(a gridArea) {
	for col := a[horizontal].start; col < a[horizontal].end; col++ {
		for row := a[vertical].start; row < a[vertical].end; row++ {
			g[[2]int{col, row}] = struct{}{}
		}
	}
}

// placeGridItems runs the CSS grid item placement algorithm and returns
// each item's area, in input order. explicit holds the explicit track
// count per axis.
func placeGridItems(styles []*Style, explicit [2]int, flow GridAutoFlow) []gridArea {
	primary := flow.primaryAxis()
	secondary := primary.other()
	dense := flow.isDense()

	n := len(styles)
	areas := make([]gridArea, n)
	definite := make([][2]bool, n)
	spans := make([][2]int, n)
	placed := make([]bool, n)
	grid := cellGrid{}

	primStart, primEnd := 0, explicit[primary]
	secStart := 0
	for i, s := range styles {
		for _, ax := range [2]axis{horizontal, vertical} {
			areas[i][ax], definite[i][ax], spans[i][ax] = axisPlacement(s.gridLine(ax), explicit[ax])
		}
		if definite[i][primary] {
			primStart = min(primStart, areas[i][primary].start)
			primEnd = max(primEnd, areas[i][primary].end)
		}
		if definite[i][secondary] {
			secStart = min(secStart, areas[i][secondary].start)
		}
	}
	for i := range styles {
		if !definite[i][primary] {
			primEnd = max(primEnd, primStart+spans[i][primary])
		}
	}

	// Items with a definite position on both axes.
	for i := range styles {
		if definite[i][primary] && definite[i][secondary] {
			grid.mark(areas[i])
			placed[i] = true
		}
	}

	// Items locked to a secondary-axis track.
	lineCursor := map[int]int{}
	for i := range styles {
		if placed[i] || !definite[i][secondary] {
			continue
		}
		sec := areas[i][secondary]
		p := primStart
		if !dense {
			if cur, ok := lineCursor[sec.start]; ok {
				p = cur
			}
		}
		for ; ; p++ {
			var a gridArea
			a[secondary] = sec
			a[primary] = lineSpan{p, p + spans[i][primary]}
			if grid.isFree(a) {
				areas[i] = a
				break
			}
		}
		grid.mark(areas[i])
		placed[i] = true
		lineCursor[sec.start] = areas[i][primary].end
		primEnd = max(primEnd, areas[i][primary].end)
	}

	// Everything else, in order, with the auto-placement cursor.
	curPrim, curSec := primStart, secStart
	for i := range styles {
		if placed[i] {
			continue
		}
		secSpan := spans[i][secondary]
		if definite[i][primary] {
			prim := areas[i][primary]
			if dense {
				curSec = secStart
			} else if prim.start < curPrim {
				curSec++
			}
			curPrim = prim.start
			for {
				var a gridArea
				a[primary] = prim
				a[secondary] = lineSpan{curSec, curSec + secSpan}
				if grid.isFree(a) {
					areas[i] = a
					break
				}
				curSec++
			}
		} else {
			primSpan := spans[i][primary]
			if dense {
				curPrim, curSec = primStart, secStart
			}
			for {
				var a gridArea
				a[primary] = lineSpan{curPrim, curPrim + primSpan}
				a[secondary] = lineSpan{curSec, curSec + secSpan}
				fits := a[primary].end <= primEnd || curPrim == primStart
				if fits && grid.isFree(a) {
					areas[i] = a
					break
				}
				if fits && a[primary].end < primEnd {
					curPrim++
					continue
				}
				curPrim = primStart
				curSec++
			}
			curPrim = areas[i][primary].end
		}
		grid.mark(areas[i])
		placed[i] = true
	}
	return areas
}

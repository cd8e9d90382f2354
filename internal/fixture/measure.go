package fixture

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// content sizes the inside of a measured leaf.
type content interface {
	measure(known layout.Size, available layout.AvailableSize) layout.Size
}

// inlineWidth picks the width content would take: the known width, or the
// available width clamped between the min- and max-content widths.
func inlineWidth(known float64, available layout.AvailableSpace, minW, maxW float64) float64 {
	if !math.IsNaN(known) {
		return known
	}
	switch available.Kind {
	case layout.SpaceMinContent:
		return minW
	case layout.SpaceMaxContent:
		return maxW
	}
	return max(min(available.Value, maxW), minW)
}

// text is monospace content where each rune takes one cell. Lines break
// at spaces and at explicit newlines.
type text struct {
	paragraphs [][]int // word widths per paragraph
	minWidth   float64
	maxWidth   float64
}

func newText(s string) *text {
	t := &text{}
	for _, para := range strings.Split(s, "\n") {
		var words []int
		lineWidth := 0
		for _, w := range strings.Fields(para) {
			n := utf8.RuneCountInString(w)
			words = append(words, n)
			t.minWidth = max(t.minWidth, float64(n))
			if lineWidth > 0 {
				lineWidth++
			}
			lineWidth += n
		}
		t.maxWidth = max(t.maxWidth, float64(lineWidth))
		t.paragraphs = append(t.paragraphs, words)
	}
	return t
}

// lines counts the lines after greedy wrapping at width.
func (t *text) lines(width float64) int {
	count := 0
	for _, words := range t.paragraphs {
		count++
		lineWidth := 0
		for _, n := range words {
			switch {
			case lineWidth == 0:
				lineWidth = n
			case float64(lineWidth+1+n) <= width:
				lineWidth += 1 + n
			default:
				count++
				lineWidth = n
			}
		}
	}
	return count
}

func (t *text) measure(known layout.Size, available layout.AvailableSize) layout.Size {
	width := inlineWidth(known.Width, available.Width, t.minWidth, t.maxWidth)
	height := known.Height
	if math.IsNaN(height) {
		height = float64(t.lines(width))
	}
	return layout.Size{Width: width, Height: height}
}

// block is content with a natural size that trades width for height when
// squeezed below it, down to minWidth.
type block struct {
	width, height, minWidth float64
}

func newBlock(m MeasureSpec) block {
	b := block{width: m.Width, height: m.Height, minWidth: m.MinWidth}
	if b.minWidth <= 0 || b.minWidth > b.width {
		b.minWidth = b.width
	}
	return b
}

func (b block) measure(known layout.Size, available layout.AvailableSize) layout.Size {
	width := inlineWidth(known.Width, available.Width, b.minWidth, b.width)
	height := known.Height
	if math.IsNaN(height) {
		height = b.height
		if width < b.width {
			height *= math.Ceil(b.width / max(width, 1))
		}
	}
	return layout.Size{Width: width, Height: height}
}

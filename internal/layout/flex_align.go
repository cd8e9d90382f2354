package layout

// distribute returns the leading offset and the extra space between
// consecutive boxes when free space is spread according to align over n
// boxes. Distribution values fall back when there is nothing to spread
// between: space-between to start, space-around and space-evenly to
// center.
func distribute(align AlignContent, free float64, n int) (leading, between float64) {
	if n <= 0 {
		return 0, 0
	}
	if free < 0 || n == 1 {
		switch align {
		case ContentSpaceBetween:
			align = ContentFlexStart
		case ContentSpaceAround, ContentSpaceEvenly:
			align = ContentCenter
		}
	}
	switch align {
	case ContentEnd, ContentFlexEnd:
		return free, 0
	case ContentCenter:
		return free / 2, 0
	case ContentSpaceBetween:
		return 0, free / float64(n-1)
	case ContentSpaceAround:
		per := free / float64(n)
		return per / 2, per
	case ContentSpaceEvenly:
		per := free / float64(n+1)
		return per, per
	default:
		return 0, 0
	}
}

// flowContent maps a content alignment onto flow order. In a reversed
// flow the physical start is the flow's end.
func flowContent(align AlignContent, reversed bool) AlignContent {
	if !reversed {
		switch align {
		case ContentStart:
			return ContentFlexStart
		case ContentEnd:
			return ContentFlexEnd
		}
		return align
	}
	switch align {
	case ContentStart:
		return ContentFlexEnd
	case ContentEnd:
		return ContentFlexStart
	}
	return align
}

// alignOffset positions a box within free space along the cross axis.
// wrapReverse swaps flex-start and flex-end.
func alignOffset(align AlignItems, free float64, wrapReverse bool) float64 {
	switch align {
	case AlignEnd:
		return free
	case AlignFlexEnd:
		if wrapReverse {
			return 0
		}
		return free
	case AlignFlexStart, AlignStretch, AlignBaseline:
		if wrapReverse {
			return free
		}
		return 0
	case AlignCenter:
		return free / 2
	default:
		return 0
	}
}

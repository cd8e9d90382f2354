package layout

import (
	"math"
	"slices"
)

// gridTrack is one row or column during track sizing.
type gridTrack struct {
	sizing    TrackSize
	collapsed bool // empty auto-fit track
	base      float64
	limit     float64 // growth limit, +Inf while unbounded
	offset    float64
}

func (t *gridTrack) flexFactor() float64 {
	if t.collapsed || !t.sizing.isFlexible() {
		return 0
	}
	return t.sizing.Max.Amount
}

// trackDef is an explicit track after repeat() expansion.
type trackDef struct {
	size    TrackSize
	autoFit bool
}

// repeatTrackSize returns the size used to count auto repetitions: the
// max sizing function when definite, else the min.
func repeatTrackSize(t TrackSize, inner float64) float64 {
	if v := t.Max.Resolve(inner); isDefined(v) {
		return v
	}
	return t.Min.Resolve(inner)
}

// autoRepeatCount returns how many times an auto-fill or auto-fit repeat
// fits into inner. It is 1 when inner is indefinite or the repeated
// tracks have no definite size.
func autoRepeatCount(tmpl []TrackSizing, inner, gap float64) int {
	idx := slices.IndexFunc(tmpl, TrackSizing.isAutoRepeat)
	if idx < 0 || !isDefined(inner) {
		return 1
	}
	var fixed float64
	outside := 0
	for i, ts := range tmpl {
		if i == idx {
			continue
		}
		count := 1
		if ts.Repeat {
			count = max(ts.Count, 1)
		}
		for range count {
			for _, t := range ts.Tracks {
				fixed += orElse(repeatTrackSize(t, inner), 0)
				outside++
			}
		}
	}
	var unit float64
	for _, t := range tmpl[idx].Tracks {
		v := repeatTrackSize(t, inner)
		if !isDefined(v) {
			return 1
		}
		unit += v
	}
	perRepeat := unit + gap*float64(len(tmpl[idx].Tracks))
	if perRepeat <= 0 {
		return 1
	}
	room := inner - fixed - gap*float64(outside) + gap
	return max(int(math.Floor(room/perRepeat)), 1)
}

// expandTemplate flattens a grid template into explicit tracks.
func expandTemplate(tmpl []TrackSizing, autoCount int) []trackDef {
	var out []trackDef
	for _, ts := range tmpl {
		if !ts.Repeat {
			for _, t := range ts.Tracks {
				out = append(out, trackDef{size: t})
			}
			continue
		}
		count := ts.Count
		if ts.isAutoRepeat() {
			count = autoCount
		}
		for range count {
			for _, t := range ts.Tracks {
				out = append(out, trackDef{size: t, autoFit: ts.Mode == RepeatAutoFit})
			}
		}
	}
	return out
}

// buildTracks lays out the full track list of one axis: before implicit
// tracks, the explicit tracks, then after implicit tracks. Implicit sizes
// cycle through autoTracks, backwards for tracks before the explicit grid.
func buildTracks(explicit []trackDef, autoTracks []TrackSize, before, after int) []gridTrack {
	if len(autoTracks) == 0 {
		autoTracks = []TrackSize{AutoTrack()}
	}
	k := len(autoTracks)
	tracks := make([]gridTrack, 0, before+len(explicit)+after)
	for i := range before {
		j := before - 1 - i
		tracks = append(tracks, gridTrack{sizing: autoTracks[k-1-j%k]})
	}
	for _, d := range explicit {
		tracks = append(tracks, gridTrack{sizing: d.size})
	}
	for i := range after {
		tracks = append(tracks, gridTrack{sizing: autoTracks[i%k]})
	}
	return tracks
}

// gridItem is the working state of one in-flow grid child.
type gridItem struct {
	id    NodeID
	order uint32
	style *Style
	area  gridArea // track indexes into the final track lists

	margin                 Edges
	pb                     Edges
	size, minSize, maxSize Size

	minC, maxC       [2]float64
	hasMinC, hasMaxC [2]bool
}

// trackSizer runs the grid track sizing algorithm on one axis.
type trackSizer struct {
	c      *computer
	ax     axis
	tracks []gridTrack
	items  []gridItem
	gap    float64
	inner  float64 // definite container inner size on this axis, or NaN
	space  AvailableSpace

	// Sized tracks of the other axis, nil while sizing columns.
	other    []gridTrack
	otherGap float64
}

// spanBase sums the base sizes and inner gaps of tracks in s.
func spanBase(tracks []gridTrack, s lineSpan, gap float64) float64 {
	var sum float64
	n := 0
	for i := s.start; i < s.end; i++ {
		if tracks[i].collapsed {
			continue
		}
		sum += tracks[i].base
		n++
	}
	return sum + gap*float64(max(n-1, 0))
}

// measure returns the item's outer contribution along the sizing axis
// under the given intrinsic constraint.
func (s *trackSizer) measure(it *gridItem, kind SpaceKind) float64 {
	ax := s.ax
	other := ax.other()
	known := UndefinedSize()
	parent := UndefinedSize()
	var avail AvailableSize
	if kind == SpaceMinContent {
		avail.setAxis(ax, MinContentSpace())
	} else {
		avail.setAxis(ax, MaxContentSpace())
	}
	avail.setAxis(other, MaxContentSpace())
	if s.other != nil {
		area := spanBase(s.other, it.area[other], s.otherGap)
		parent.setAxis(other, area)
		inner := max(area-it.margin.axisSum(other), 0)
		avail.setAxis(other, Definite(inner))
		if !isDefined(it.size.axis(other)) {
			known.setAxis(other, maybeClamp(inner, it.minSize.axis(other), it.maxSize.axis(other)))
		}
	}
	out := s.c.computeChild(it.id, layoutInput{mode: runComputeSize, known: known, parentSize: parent, available: avail})
	return out.size.axis(ax) + it.margin.axisSum(ax)
}

func (s *trackSizer) minContent(it *gridItem) float64 {
	if !it.hasMinC[s.ax] {
		it.minC[s.ax] = s.measure(it, SpaceMinContent)
		it.hasMinC[s.ax] = true
	}
	return it.minC[s.ax]
}

func (s *trackSizer) maxContent(it *gridItem) float64 {
	if !it.hasMaxC[s.ax] {
		it.maxC[s.ax] = s.measure(it, SpaceMaxContent)
		it.hasMaxC[s.ax] = true
	}
	return it.maxC[s.ax]
}

// minimumContribution is the smallest outer size the item accepts.
func (s *trackSizer) minimumContribution(it *gridItem) float64 {
	if s.space.Kind == SpaceMinContent {
		return s.minContent(it)
	}
	if v := it.minSize.axis(s.ax); isDefined(v) {
		return v + it.margin.axisSum(s.ax)
	}
	if it.style.overflow(s.ax).isScrollContainer() {
		return it.pb.axisSum(s.ax) + it.margin.axisSum(s.ax)
	}
	return s.minContent(it)
}

func (s *trackSizer) crossesFlexible(sp lineSpan) bool {
	for i := sp.start; i < sp.end; i++ {
		if s.tracks[i].flexFactor() > 0 {
			return true
		}
	}
	return false
}

// definiteSpace returns the space the tracks may fill, or NaN.
func (s *trackSizer) definiteSpace() float64 {
	if isDefined(s.inner) {
		return s.inner
	}
	return s.space.Definite()
}

func (s *trackSizer) gapTotal() float64 {
	n := 0
	for i := range s.tracks {
		if !s.tracks[i].collapsed {
			n++
		}
	}
	return s.gap * float64(max(n-1, 0))
}

func (s *trackSizer) baseTotal() float64 {
	var sum float64
	for i := range s.tracks {
		sum += s.tracks[i].base
	}
	return sum
}

// run sizes the tracks. stretch says whether auto tracks take up the
// leftover space at the end.
func (s *trackSizer) run(stretch bool) {
	s.initTracks()
	s.resolveIntrinsic()
	s.maximize()
	s.expandFlexible()
	if stretch {
		s.stretchAuto()
	}
}

func (s *trackSizer) initTracks() {
	for i := range s.tracks {
		t := &s.tracks[i]
		if t.collapsed {
			t.base, t.limit = 0, 0
			continue
		}
		t.base = orElse(t.sizing.Min.Resolve(s.inner), 0)
		t.limit = math.Inf(1)
		if v := t.sizing.Max.Resolve(s.inner); isDefined(v) {
			t.limit = max(v, t.base)
		}
	}
}

// growLimit raises an unbounded or smaller growth limit to v.
func growLimit(limit, v float64) float64 {
	if math.IsInf(limit, 1) {
		return v
	}
	return max(limit, v)
}

// resolveIntrinsic sizes tracks to fit the items in them: single-span
// items first, then larger spans in increasing order, then items that
// cross flexible tracks.
func (s *trackSizer) resolveIntrinsic() {
	var multi, flexible []*gridItem
	for i := range s.items {
		it := &s.items[i]
		sp := it.area[s.ax]
		switch {
		case s.crossesFlexible(sp):
			flexible = append(flexible, it)
		case sp.span() == 1:
			s.sizeSingleSpan(it)
		default:
			multi = append(multi, it)
		}
	}
	for i := range s.tracks {
		t := &s.tracks[i]
		if !math.IsInf(t.limit, 1) && t.limit < t.base {
			t.limit = t.base
		}
	}

	slices.SortStableFunc(multi, func(a, b *gridItem) int {
		return a.area[s.ax].span() - b.area[s.ax].span()
	})
	for _, it := range multi {
		sp := it.area[s.ax]
		s.distributeBase(sp, s.minimumContribution(it), func(t *gridTrack) bool {
			return t.sizing.Min.IsIntrinsic()
		})
		s.distributeLimit(sp, s.maxContent(it), func(t *gridTrack) bool {
			return t.sizing.Max.IsIntrinsic()
		})
	}

	for _, it := range flexible {
		s.distributeBase(it.area[s.ax], s.minimumContribution(it), func(t *gridTrack) bool {
			return t.flexFactor() > 0 && t.sizing.Min.IsIntrinsic()
		})
	}

	for i := range s.tracks {
		t := &s.tracks[i]
		if math.IsInf(t.limit, 1) {
			t.limit = t.base
		}
	}
}

func (s *trackSizer) sizeSingleSpan(it *gridItem) {
	t := &s.tracks[it.area[s.ax].start]
	if t.collapsed {
		return
	}
	switch t.sizing.Min.Unit {
	case UnitMinContent:
		t.base = max(t.base, s.minContent(it))
	case UnitMaxContent:
		t.base = max(t.base, s.maxContent(it))
	case UnitAuto:
		t.base = max(t.base, s.minimumContribution(it))
	}
	switch t.sizing.Max.Unit {
	case UnitMinContent:
		t.limit = growLimit(t.limit, s.minContent(it))
	case UnitMaxContent, UnitAuto:
		t.limit = growLimit(t.limit, s.maxContent(it))
	case UnitFitContent, UnitFitContentPercent:
		v := s.maxContent(it)
		if lim := t.sizing.Max.definiteValue(s.inner); isDefined(lim) {
			v = min(v, max(lim, s.minContent(it)))
		}
		t.limit = growLimit(t.limit, v)
	}
}

// distributeBase grows the base sizes of eligible tracks in sp equally
// until they fit size.
func (s *trackSizer) distributeBase(sp lineSpan, size float64, eligible func(*gridTrack) bool) {
	extra := size - spanBase(s.tracks, sp, s.gap)
	if extra <= 0 {
		return
	}
	var targets []*gridTrack
	for i := sp.start; i < sp.end; i++ {
		if t := &s.tracks[i]; !t.collapsed && eligible(t) {
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		return
	}
	share := extra / float64(len(targets))
	for _, t := range targets {
		t.base += share
		if !math.IsInf(t.limit, 1) && t.limit < t.base {
			t.limit = t.base
		}
	}
}

// distributeLimit grows the growth limits of eligible tracks in sp
// equally until they fit size.
func (s *trackSizer) distributeLimit(sp lineSpan, size float64, eligible func(*gridTrack) bool) {
	var spanned float64
	var targets []*gridTrack
	n := 0
	for i := sp.start; i < sp.end; i++ {
		t := &s.tracks[i]
		if t.collapsed {
			continue
		}
		n++
		if math.IsInf(t.limit, 1) {
			spanned += t.base
		} else {
			spanned += t.limit
		}
		if eligible(t) {
			targets = append(targets, t)
		}
	}
	extra := size - spanned - s.gap*float64(max(n-1, 0))
	if extra <= 0 || len(targets) == 0 {
		return
	}
	share := extra / float64(len(targets))
	for _, t := range targets {
		cur := t.limit
		if math.IsInf(cur, 1) {
			cur = t.base
		}
		t.limit = cur + share
	}
}

// maximize grows tracks toward their growth limits while free space
// remains. Under a max-content constraint every track reaches its limit.
func (s *trackSizer) maximize() {
	space := s.definiteSpace()
	if !isDefined(space) {
		if s.space.Kind == SpaceMaxContent {
			for i := range s.tracks {
				s.tracks[i].base = max(s.tracks[i].base, s.tracks[i].limit)
			}
		}
		return
	}
	free := space - s.baseTotal() - s.gapTotal()
	for free > 1e-9 {
		var growable []*gridTrack
		for i := range s.tracks {
			if t := &s.tracks[i]; t.limit > t.base {
				growable = append(growable, t)
			}
		}
		if len(growable) == 0 {
			return
		}
		share := free / float64(len(growable))
		var used float64
		for _, t := range growable {
			inc := min(share, t.limit-t.base)
			t.base += inc
			used += inc
		}
		if used <= 0 {
			return
		}
		free -= used
	}
}

// expandFlexible sizes fr tracks.
func (s *trackSizer) expandFlexible() {
	var flex []*gridTrack
	for i := range s.tracks {
		if s.tracks[i].flexFactor() > 0 {
			flex = append(flex, &s.tracks[i])
		}
	}
	if len(flex) == 0 {
		return
	}

	var fr float64
	if space := s.definiteSpace(); isDefined(space) {
		all := make([]*gridTrack, len(s.tracks))
		for i := range s.tracks {
			all[i] = &s.tracks[i]
		}
		fr = findFrSize(all, space-s.gapTotal())
	} else if s.space.Kind == SpaceMinContent {
		return
	} else {
		for _, t := range flex {
			f := t.flexFactor()
			if f > 1 {
				fr = max(fr, t.base/f)
			} else {
				fr = max(fr, t.base)
			}
		}
		for i := range s.items {
			it := &s.items[i]
			sp := it.area[s.ax]
			if !s.crossesFlexible(sp) {
				continue
			}
			var spanned []*gridTrack
			n := 0
			for j := sp.start; j < sp.end; j++ {
				if !s.tracks[j].collapsed {
					spanned = append(spanned, &s.tracks[j])
					n++
				}
			}
			fr = max(fr, findFrSize(spanned, s.maxContent(it)-s.gap*float64(max(n-1, 0))))
		}
	}

	for _, t := range flex {
		t.base = max(t.base, fr*t.flexFactor())
		t.limit = max(t.limit, t.base)
	}
}

// findFrSize returns the size of one fr such that the tracks fill space.
// Flexible tracks whose base size exceeds their share are treated as
// inflexible and the share is recomputed.
func findFrSize(tracks []*gridTrack, space float64) float64 {
	inflexible := make(map[*gridTrack]bool)
	for {
		leftover := space
		var sumFlex float64
		for _, t := range tracks {
			if f := t.flexFactor(); f > 0 && !inflexible[t] {
				sumFlex += f
			} else {
				leftover -= t.base
			}
		}
		if sumFlex <= 0 {
			return 0
		}
		fr := leftover / max(sumFlex, 1)
		changed := false
		for _, t := range tracks {
			if f := t.flexFactor(); f > 0 && !inflexible[t] && fr*f < t.base {
				inflexible[t] = true
				changed = true
			}
		}
		if !changed {
			return max(fr, 0)
		}
	}
}

// stretchAuto shares leftover definite space among auto-max tracks.
func (s *trackSizer) stretchAuto() {
	space := s.definiteSpace()
	if !isDefined(space) {
		return
	}
	free := space - s.baseTotal() - s.gapTotal()
	if free <= 0 {
		return
	}
	var autos []*gridTrack
	for i := range s.tracks {
		if t := &s.tracks[i]; !t.collapsed && t.sizing.Max.IsAuto() {
			autos = append(autos, t)
		}
	}
	if len(autos) == 0 {
		return
	}
	share := free / float64(len(autos))
	for _, t := range autos {
		t.base += share
	}
}

package layout

const (
	// DefaultCacheSize is the number of measurement entries kept per node.
	// The common cases are unconstrained, width-constrained and fully
	// constrained, each seen under a few available spaces.
	DefaultCacheSize = 7
	// MaxCacheSize bounds WithCacheSize.
	MaxCacheSize = 16
)

type runMode uint8

const (
	runPerformLayout runMode = iota // Size the node and position its children
	runComputeSize                  // Only compute the node's size
)

// cacheEntry memoizes one layout result. A zero used tick marks a free slot.
type cacheEntry struct {
	sizing    sizingMode
	known     Size
	available AvailableSize
	output    layoutOutput
	used      uint64
}

func (e *cacheEntry) matches(sizing sizingMode, known Size, available AvailableSize) bool {
	return e.sizing == sizing &&
		axisMatches(e.known.Width, known.Width, e.available.Width, available.Width) &&
		axisMatches(e.known.Height, known.Height, e.available.Height, available.Height)
}

// axisMatches compares one axis of a cache key. Available space is
// irrelevant once the size on that axis is known.
func axisMatches(cachedKnown, known float64, cachedAvail, avail AvailableSpace) bool {
	if !sameLength(cachedKnown, known) {
		return false
	}
	return isDefined(known) || cachedAvail.equal(avail)
}

// Cache holds a node's memoized layout results: one slot for the last
// full layout and a small LRU of size measurements.
type Cache struct {
	final   cacheEntry
	entries []cacheEntry
	size    int
	tick    uint64
}

func newCache(size int) Cache {
	return Cache{size: size}
}

// get looks up a result. Size computations may be served by the final
// layout slot; full layouts only by the final slot, since a measurement
// does not leave the children positioned.
func (c *Cache) get(in layoutInput) (layoutOutput, bool) {
	c.tick++
	if c.final.used != 0 && c.final.matches(in.sizing, in.known, in.available) {
		c.final.used = c.tick
		return c.final.output, true
	}
	if in.mode == runPerformLayout {
		return layoutOutput{}, false
	}
	for i := range c.entries {
		e := &c.entries[i]
		if e.used != 0 && e.matches(in.sizing, in.known, in.available) {
			e.used = c.tick
			return e.output, true
		}
	}
	return layoutOutput{}, false
}

// store records a result, evicting the least recently used measurement
// when all slots are taken.
func (c *Cache) store(in layoutInput, out layoutOutput) {
	c.tick++
	entry := cacheEntry{sizing: in.sizing, known: in.known, available: in.available, output: out, used: c.tick}
	if in.mode == runPerformLayout {
		c.final = entry
		return
	}
	if c.size <= 0 {
		return
	}
	if c.entries == nil {
		c.entries = make([]cacheEntry, c.size)
	}
	victim := 0
	for i := range c.entries {
		e := &c.entries[i]
		if e.used != 0 && e.matches(in.sizing, in.known, in.available) {
			victim = i
			break
		}
		if e.used < c.entries[victim].used {
			victim = i
		}
	}
	c.entries[victim] = entry
}

// clear drops every entry.
func (c *Cache) clear() {
	c.final = cacheEntry{}
	for i := range c.entries {
		c.entries[i] = cacheEntry{}
	}
}

// isEmpty reports whether nothing is cached.
func (c *Cache) isEmpty() bool {
	if c.final.used != 0 {
		return false
	}
	for i := range c.entries {
		if c.entries[i].used != 0 {
			return false
		}
	}
	return true
}

// len returns the number of occupied measurement slots.
func (c *Cache) len() int {
	n := 0
	for i := range c.entries {
		if c.entries[i].used != 0 {
			n++
		}
	}
	return n
}

// CacheStats counts cache lookups across a tree.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

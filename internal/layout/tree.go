package layout

import (
	"fmt"
	"sync/atomic"
)

// NodeID identifies a node within one Tree. It packs the owning tree's tag,
// a slot index and a generation counter, so ids of removed nodes stay
// invalid after their slot is reused and ids of other trees never resolve.
type NodeID uint64

// NoNode is the zero NodeID. It never refers to a live node.
const NoNode NodeID = 0

// treeTags hands out the tag of each new tree. Zero is never used.
var treeTags atomic.Uint32

func nextTreeTag() uint16 {
	for {
		if tag := uint16(treeTags.Add(1)); tag != 0 {
			return tag
		}
	}
}

func makeNodeID(tag uint16, index uint32, gen uint16) NodeID {
	return NodeID(uint64(tag)<<48 | uint64(gen)<<32 | uint64(index))
}

func (id NodeID) index() uint32 {
	return uint32(id)
}

func (id NodeID) generation() uint16 {
	return uint16(id >> 32)
}

func (id NodeID) tag() uint16 {
	return uint16(id >> 48)
}

func (id NodeID) String() string {
	if id == NoNode {
		return "none"
	}
	return fmt.Sprintf("%d@%d", id.index(), id.generation())
}

// node is the per-slot storage.
type node struct {
	style    Style
	children []NodeID
	parent   NodeID

	measure bool
	dirty   bool

	cache     Cache
	unrounded Layout
	final     Layout
}

type slot struct {
	gen   uint16
	alive bool
	node  node
}

// Tree is an arena of layout nodes. A Tree is not safe for concurrent
// use; callers that share one must synchronize access themselves.
type Tree struct {
	tag   uint16
	slots []slot
	free  []uint32
	live  int

	capacity  int // 0 means unlimited
	cacheSize int
	rounding  bool
	measure   MeasureFunc

	stats CacheStats
}

// NewTree creates an empty tree.
func NewTree(opts ...TreeOption) (*Tree, error) {
	t := &Tree{
		tag:       nextTreeTag(),
		cacheSize: DefaultCacheSize,
		rounding:  true,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	if t.capacity > 0 {
		t.slots = make([]slot, 0, t.capacity)
	}
	return t, nil
}

// get returns the live node for id.
func (t *Tree) get(id NodeID) (*node, bool) {
	idx := id.index()
	if id == NoNode || id.tag() != t.tag || int(idx) >= len(t.slots) {
		return nil, false
	}
	s := &t.slots[idx]
	if !s.alive || s.gen != id.generation() {
		return nil, false
	}
	return &s.node, true
}

// node returns the node for an id already known to be valid.
func (t *Tree) node(id NodeID) *node {
	return &t.slots[id.index()].node
}

// Contains reports whether id refers to a live node of this tree.
func (t *Tree) Contains(id NodeID) bool {
	_, ok := t.get(id)
	return ok
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.live
}

func (t *Tree) alloc(style Style) (NodeID, error) {
	if t.capacity > 0 && t.live >= t.capacity {
		return NoNode, ErrCapacityExceeded
	}
	n := node{
		style: style,
		dirty: true,
		cache: newCache(t.cacheSize),
	}
	var idx uint32
	if len(t.free) > 0 {
		idx = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot{gen: 1})
	}
	s := &t.slots[idx]
	s.alive = true
	s.node = n
	t.live++
	return makeNodeID(t.tag, idx, s.gen), nil
}

// release frees a single slot and bumps its generation.
func (t *Tree) release(id NodeID) {
	s := &t.slots[id.index()]
	s.alive = false
	s.node = node{}
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	t.free = append(t.free, id.index())
	t.live--
}

// NewLeaf creates a node without children.
func (t *Tree) NewLeaf(style Style) (NodeID, error) {
	id, err := t.alloc(style)
	if err != nil {
		return NoNode, nodeError("NewLeaf", NoNode, err)
	}
	return id, nil
}

// NewLeafWithMeasure creates a leaf whose size comes from the tree's
// measure function.
func (t *Tree) NewLeafWithMeasure(style Style) (NodeID, error) {
	id, err := t.alloc(style)
	if err != nil {
		return NoNode, nodeError("NewLeafWithMeasure", NoNode, err)
	}
	t.node(id).measure = true
	return id, nil
}

// NewWithChildren creates a node and attaches children in order.
// Children that already have a parent are moved. If any child id is
// invalid or repeated, nothing is created or changed.
func (t *Tree) NewWithChildren(style Style, children ...NodeID) (NodeID, error) {
	if err := t.validateChildList("NewWithChildren", NoNode, children); err != nil {
		return NoNode, err
	}
	id, err := t.alloc(style)
	if err != nil {
		return NoNode, nodeError("NewWithChildren", NoNode, err)
	}
	t.adoptAll(id, children)
	return id, nil
}

// validateChildList checks that every child is live, listed once, and
// would not create a cycle under parent (when parent is set).
func (t *Tree) validateChildList(op string, parent NodeID, children []NodeID) error {
	seen := make(map[NodeID]struct{}, len(children))
	for _, c := range children {
		if _, ok := t.get(c); !ok {
			return nodeError(op, c, ErrInvalidNodeID)
		}
		if _, dup := seen[c]; dup {
			return nodeError(op, c, fmt.Errorf("%w: listed more than once", ErrInvalidNodeID))
		}
		seen[c] = struct{}{}
		if parent != NoNode && t.isAncestorOrSelf(c, parent) {
			return nodeError(op, c, ErrWouldCycle)
		}
	}
	return nil
}

// adoptAll sets parent's child list, detaching each child from any
// previous parent.
func (t *Tree) adoptAll(parent NodeID, children []NodeID) {
	p := t.node(parent)
	for _, c := range children {
		if old := t.node(c).parent; old != NoNode && old != parent {
			t.unlink(old, c)
		}
		t.node(c).parent = parent
	}
	p.children = append([]NodeID(nil), children...)
	t.markDirty(parent)
}

// isAncestorOrSelf reports whether candidate is id or one of its ancestors.
func (t *Tree) isAncestorOrSelf(candidate, id NodeID) bool {
	for cur := id; cur != NoNode; cur = t.node(cur).parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

// Remove detaches node from its parent and frees it and its subtree.
func (t *Tree) Remove(id NodeID) error {
	n, ok := t.get(id)
	if !ok {
		return nodeError("Remove", id, ErrInvalidNodeID)
	}
	if n.parent != NoNode {
		t.unlink(n.parent, id)
	}
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, t.node(cur).children...)
		t.release(cur)
	}
	return nil
}

// Clear removes every node. All previously issued ids become invalid.
func (t *Tree) Clear() {
	t.free = t.free[:0]
	for i := range t.slots {
		s := &t.slots[i]
		if s.alive {
			s.alive = false
			s.node = node{}
			s.gen++
			if s.gen == 0 {
				s.gen = 1
			}
		}
		t.free = append(t.free, uint32(i))
	}
	t.live = 0
}

// Style returns a copy of the node's style.
func (t *Tree) Style(id NodeID) (Style, error) {
	n, ok := t.get(id)
	if !ok {
		return Style{}, nodeError("Style", id, ErrInvalidNodeID)
	}
	return n.style, nil
}

// SetStyle replaces the node's style and marks it and its ancestors dirty.
func (t *Tree) SetStyle(id NodeID, style Style) error {
	n, ok := t.get(id)
	if !ok {
		return nodeError("SetStyle", id, ErrInvalidNodeID)
	}
	n.style = style
	t.markDirty(id)
	return nil
}

// Dirty reports whether the node needs layout.
func (t *Tree) Dirty(id NodeID) (bool, error) {
	n, ok := t.get(id)
	if !ok {
		return false, nodeError("Dirty", id, ErrInvalidNodeID)
	}
	return n.dirty, nil
}

// MarkDirty invalidates the node's cache and marks it and all ancestors
// as needing layout.
func (t *Tree) MarkDirty(id NodeID) error {
	if _, ok := t.get(id); !ok {
		return nodeError("MarkDirty", id, ErrInvalidNodeID)
	}
	t.markDirty(id)
	return nil
}

// markDirty walks to the root. It does not stop at already-dirty nodes:
// measurement passes may have refilled an ancestor's cache since.
func (t *Tree) markDirty(id NodeID) {
	for cur := id; cur != NoNode; {
		n := t.node(cur)
		n.cache.clear()
		n.dirty = true
		cur = n.parent
	}
}

// SetMeasure sets whether the node's size comes from the measure function.
func (t *Tree) SetMeasure(id NodeID, measure bool) error {
	n, ok := t.get(id)
	if !ok {
		return nodeError("SetMeasure", id, ErrInvalidNodeID)
	}
	n.measure = measure
	t.markDirty(id)
	return nil
}

// NeedsMeasure reports whether the node uses the measure function.
func (t *Tree) NeedsMeasure(id NodeID) (bool, error) {
	n, ok := t.get(id)
	if !ok {
		return false, nodeError("NeedsMeasure", id, ErrInvalidNodeID)
	}
	return n.measure, nil
}

// EnableRounding turns on pixel rounding of computed layouts.
func (t *Tree) EnableRounding() {
	t.rounding = true
}

// DisableRounding keeps computed layouts floating-point exact.
func (t *Tree) DisableRounding() {
	t.rounding = false
}

// Rounding reports whether pixel rounding is enabled.
func (t *Tree) Rounding() bool {
	return t.rounding
}

// CacheStats returns cumulative cache hit and miss counts.
func (t *Tree) CacheStats() CacheStats {
	return t.stats
}

// ResetCacheStats zeroes the cache counters.
func (t *Tree) ResetCacheStats() {
	t.stats = CacheStats{}
}

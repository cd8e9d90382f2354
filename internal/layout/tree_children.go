package layout

import "slices"

// unlink removes child from parent's list and clears its parent link.
// Both ids must be valid and linked.
func (t *Tree) unlink(parent, child NodeID) {
	p := t.node(parent)
	if i := slices.Index(p.children, child); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	t.node(child).parent = NoNode
	t.markDirty(parent)
}

// checkAttach validates parent and child for an attach operation.
func (t *Tree) checkAttach(op string, parent, child NodeID) error {
	if _, ok := t.get(parent); !ok {
		return nodeError(op, parent, ErrInvalidNodeID)
	}
	if _, ok := t.get(child); !ok {
		return nodeError(op, child, ErrInvalidNodeID)
	}
	if t.isAncestorOrSelf(child, parent) {
		return nodeError(op, child, ErrWouldCycle)
	}
	return nil
}

// AddChild appends child to parent's children. A child that already has
// a parent is moved.
func (t *Tree) AddChild(parent, child NodeID) error {
	if err := t.checkAttach("AddChild", parent, child); err != nil {
		return err
	}
	if old := t.node(child).parent; old != NoNode {
		t.unlink(old, child)
	}
	p := t.node(parent)
	p.children = append(p.children, child)
	t.node(child).parent = parent
	t.markDirty(parent)
	return nil
}

// InsertChildAtIndex inserts child before the child currently at index.
// index may equal the child count to append.
func (t *Tree) InsertChildAtIndex(parent NodeID, index int, child NodeID) error {
	if err := t.checkAttach("InsertChildAtIndex", parent, child); err != nil {
		return err
	}
	p := t.node(parent)
	if index < 0 || index > len(p.children) {
		return indexError("InsertChildAtIndex", parent, index)
	}
	if old := t.node(child).parent; old != NoNode {
		if old == parent {
			if i := slices.Index(p.children, child); i >= 0 && i < index {
				index--
			}
		}
		t.unlink(old, child)
	}
	p.children = slices.Insert(p.children, index, child)
	t.node(child).parent = parent
	t.markDirty(parent)
	return nil
}

// SetChildren replaces parent's children. Previous children become roots.
func (t *Tree) SetChildren(parent NodeID, children ...NodeID) error {
	if _, ok := t.get(parent); !ok {
		return nodeError("SetChildren", parent, ErrInvalidNodeID)
	}
	if err := t.validateChildList("SetChildren", parent, children); err != nil {
		return err
	}
	for _, c := range t.node(parent).children {
		t.node(c).parent = NoNode
	}
	t.adoptAll(parent, children)
	return nil
}

// ReplaceChildAtIndex swaps the child at index for child and returns the
// replaced node, which becomes a root.
func (t *Tree) ReplaceChildAtIndex(parent NodeID, index int, child NodeID) (NodeID, error) {
	const op = "ReplaceChildAtIndex"
	if err := t.checkAttach(op, parent, child); err != nil {
		return NoNode, err
	}
	p := t.node(parent)
	if index < 0 || index >= len(p.children) {
		return NoNode, indexError(op, parent, index)
	}
	old := p.children[index]
	if old == child {
		t.markDirty(parent)
		return old, nil
	}
	if prev := t.node(child).parent; prev != NoNode {
		if prev == parent {
			if i := slices.Index(p.children, child); i >= 0 && i < index {
				index--
			}
		}
		t.unlink(prev, child)
	}
	p.children[index] = child
	t.node(child).parent = parent
	t.node(old).parent = NoNode
	t.markDirty(parent)
	return old, nil
}

// RemoveChild detaches child from parent. The child stays alive as a root.
func (t *Tree) RemoveChild(parent, child NodeID) (NodeID, error) {
	const op = "RemoveChild"
	if _, ok := t.get(parent); !ok {
		return NoNode, nodeError(op, parent, ErrInvalidNodeID)
	}
	c, ok := t.get(child)
	if !ok {
		return NoNode, nodeError(op, child, ErrInvalidNodeID)
	}
	if c.parent != parent {
		return NoNode, nodeError(op, child, ErrChildNotFound)
	}
	t.unlink(parent, child)
	return child, nil
}

// RemoveChildAtIndex detaches the child at index and returns it.
func (t *Tree) RemoveChildAtIndex(parent NodeID, index int) (NodeID, error) {
	const op = "RemoveChildAtIndex"
	p, ok := t.get(parent)
	if !ok {
		return NoNode, nodeError(op, parent, ErrInvalidNodeID)
	}
	if index < 0 || index >= len(p.children) {
		return NoNode, indexError(op, parent, index)
	}
	child := p.children[index]
	t.unlink(parent, child)
	return child, nil
}

// RemoveChildrenRange detaches the children in [start, end).
func (t *Tree) RemoveChildrenRange(parent NodeID, start, end int) error {
	const op = "RemoveChildrenRange"
	p, ok := t.get(parent)
	if !ok {
		return nodeError(op, parent, ErrInvalidNodeID)
	}
	if start < 0 || start > len(p.children) {
		return indexError(op, parent, start)
	}
	if end < start || end > len(p.children) {
		return indexError(op, parent, end)
	}
	for _, c := range p.children[start:end] {
		t.node(c).parent = NoNode
	}
	p.children = slices.Delete(p.children, start, end)
	t.markDirty(parent)
	return nil
}

// Children returns a copy of the node's child list.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	n, ok := t.get(id)
	if !ok {
		return nil, nodeError("Children", id, ErrInvalidNodeID)
	}
	return slices.Clone(n.children), nil
}

// ChildCount returns the number of children.
func (t *Tree) ChildCount(id NodeID) (int, error) {
	n, ok := t.get(id)
	if !ok {
		return 0, nodeError("ChildCount", id, ErrInvalidNodeID)
	}
	return len(n.children), nil
}

// ChildAt returns the child at index.
func (t *Tree) ChildAt(id NodeID, index int) (NodeID, error) {
	n, ok := t.get(id)
	if !ok {
		return NoNode, nodeError("ChildAt", id, ErrInvalidNodeID)
	}
	if index < 0 || index >= len(n.children) {
		return NoNode, indexError("ChildAt", id, index)
	}
	return n.children[index], nil
}

// Parent returns the node's parent, or NoNode for a root.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	n, ok := t.get(id)
	if !ok {
		return NoNode, nodeError("Parent", id, ErrInvalidNodeID)
	}
	return n.parent, nil
}

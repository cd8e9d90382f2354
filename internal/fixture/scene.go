package fixture

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// ErrDuplicateID is returned when two nodes of a document share an id.
var ErrDuplicateID = errors.New("duplicate node id")

// Scene is a document turned into a layout tree, ready to compute.
type Scene struct {
	Name      string
	Tree      *layout.Tree
	Root      layout.NodeID
	Available layout.AvailableSize

	nodes    []sceneNode
	byID     map[string]layout.NodeID
	contents map[layout.NodeID]content
}

type sceneNode struct {
	id    string
	depth int
	node  layout.NodeID
}

// NodeResult is the computed box of one document node. X and Y are
// relative to the parent's border box.
type NodeResult struct {
	ID            string  `yaml:"id"`
	Depth         int     `yaml:"depth"`
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ContentWidth  float64 `yaml:"content_width"`
	ContentHeight float64 `yaml:"content_height"`
}

// Build validates doc and creates its layout tree. Nodes without an id are
// named by their path from the root, e.g. "root.0.2".
func Build(doc *Document, opts ...layout.TreeOption) (*Scene, error) {
	width, err := parseAvailable(doc.Width)
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	height, err := parseAvailable(doc.Height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}

	tree, err := layout.NewTree(opts...)
	if err != nil {
		return nil, err
	}
	if doc.Rounding != nil {
		if *doc.Rounding {
			tree.EnableRounding()
		} else {
			tree.DisableRounding()
		}
	}

	s := &Scene{
		Name:      doc.Name,
		Tree:      tree,
		Available: layout.AvailableSize{Width: width, Height: height},
		byID:      make(map[string]layout.NodeID),
		contents:  make(map[layout.NodeID]content),
	}
	root, err := s.add(&doc.Root, "root", 0)
	if err != nil {
		return nil, err
	}
	s.Root = root
	return s, nil
}

// add creates spec's subtree. Children are created before their parent,
// so nodes are recorded in pre-order by reserving the parent's slot first.
func (s *Scene) add(spec *NodeSpec, path string, depth int) (layout.NodeID, error) {
	id := spec.ID
	if id == "" {
		id = path
	}
	if _, ok := s.byID[id]; ok {
		return layout.NoNode, fmt.Errorf("%s: %w", id, ErrDuplicateID)
	}
	s.byID[id] = layout.NoNode

	style, err := spec.Style.ToStyle()
	if err != nil {
		return layout.NoNode, fmt.Errorf("node %s: %w", id, err)
	}
	if len(spec.Children) > 0 && (spec.Text != "" || spec.Measure != nil) {
		return layout.NoNode, fmt.Errorf("node %s: only leaves may have text or measure", id)
	}
	if spec.Text != "" && spec.Measure != nil {
		return layout.NoNode, fmt.Errorf("node %s: text and measure are exclusive", id)
	}

	slot := len(s.nodes)
	s.nodes = append(s.nodes, sceneNode{id: id, depth: depth})

	children := make([]layout.NodeID, 0, len(spec.Children))
	for i := range spec.Children {
		child, err := s.add(&spec.Children[i], path+"."+strconv.Itoa(i), depth+1)
		if err != nil {
			return layout.NoNode, err
		}
		children = append(children, child)
	}

	var node layout.NodeID
	switch {
	case spec.Text != "":
		node, err = s.Tree.NewLeafWithMeasure(style)
		s.contents[node] = newText(spec.Text)
	case spec.Measure != nil:
		node, err = s.Tree.NewLeafWithMeasure(style)
		s.contents[node] = newBlock(*spec.Measure)
	default:
		node, err = s.Tree.NewWithChildren(style, children...)
	}
	if err != nil {
		return layout.NoNode, fmt.Errorf("node %s: %w", id, err)
	}
	s.nodes[slot].node = node
	s.byID[id] = node
	return node, nil
}

// Lookup returns the tree node for a document node id.
func (s *Scene) Lookup(id string) (layout.NodeID, bool) {
	n, ok := s.byID[id]
	return n, ok && n != layout.NoNode
}

// Len returns the number of nodes in the scene.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Measure sizes text and fixed content leaves.
func (s *Scene) Measure(node layout.NodeID, known layout.Size, available layout.AvailableSize) layout.Size {
	c, ok := s.contents[node]
	if !ok {
		return layout.Size{}
	}
	return c.measure(known, available)
}

// Compute lays out the scene within its available space.
func (s *Scene) Compute() error {
	return s.Tree.ComputeLayoutWithMeasure(s.Root, s.Available, s.Measure)
}

// Results returns the computed boxes in document order.
func (s *Scene) Results() ([]NodeResult, error) {
	out := make([]NodeResult, 0, len(s.nodes))
	for _, n := range s.nodes {
		l, err := s.Tree.Layout(n.node)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.id, err)
		}
		out = append(out, NodeResult{
			ID:            n.id,
			Depth:         n.depth,
			X:             l.Location.X,
			Y:             l.Location.Y,
			Width:         l.Size.Width,
			Height:        l.Size.Height,
			ContentWidth:  l.ContentSize.Width,
			ContentHeight: l.ContentSize.Height,
		})
	}
	return out, nil
}

package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNodeID reports a node that is not alive in this tree:
	// removed, from another tree, or never created.
	ErrInvalidNodeID = errors.New("invalid node id")
	// ErrInvalidChildIndex reports an index outside the child list.
	ErrInvalidChildIndex = errors.New("child index out of range")
	// ErrCapacityExceeded reports that a fixed-capacity tree is full.
	ErrCapacityExceeded = errors.New("node capacity exceeded")
	// ErrChildNotFound reports a parent/child pair that is not linked.
	ErrChildNotFound = errors.New("child not found")
	// ErrWouldCycle reports an attachment that would make a node its own ancestor.
	ErrWouldCycle = errors.New("child is an ancestor of parent")
)

// TreeError describes a failed tree operation.
type TreeError struct {
	// Op is the operation that failed (e.g., "AddChild").
	Op string
	// Node is the offending node id, if any.
	Node NodeID
	// Index is the offending child index for index-based operations, or -1.
	Index int
	// Err is the underlying sentinel error.
	Err error
}

func (e *TreeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s node=%s index=%d: %v", e.Op, e.Node, e.Index, e.Err)
	}
	return fmt.Sprintf("%s node=%s: %v", e.Op, e.Node, e.Err)
}

func (e *TreeError) Unwrap() error {
	return e.Err
}

func nodeError(op string, id NodeID, err error) error {
	return &TreeError{Op: op, Node: id, Index: -1, Err: err}
}

func indexError(op string, id NodeID, index int) error {
	return &TreeError{Op: op, Node: id, Index: index, Err: ErrInvalidChildIndex}
}

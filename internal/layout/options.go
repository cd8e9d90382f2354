package layout

import "fmt"

// TreeOption is a functional option for configuring a Tree.
type TreeOption func(*Tree) error

// WithCapacity limits the number of live nodes. NewLeaf and
// NewWithChildren fail with ErrCapacityExceeded once the limit is reached.
// Default is 0 (unlimited).
func WithCapacity(n int) TreeOption {
	return func(t *Tree) error {
		if n < 0 {
			return fmt.Errorf("capacity must not be negative")
		}
		t.capacity = n
		return nil
	}
}

// WithCacheSize sets the number of measurement cache entries per node.
// Default is DefaultCacheSize. Valid range is 1-MaxCacheSize.
func WithCacheSize(n int) TreeOption {
	return func(t *Tree) error {
		if n < 1 {
			return fmt.Errorf("cache size must be at least 1")
		}
		if n > MaxCacheSize {
			return fmt.Errorf("cache size cannot exceed %d", MaxCacheSize)
		}
		t.cacheSize = n
		return nil
	}
}

// WithRounding sets whether computed layouts are rounded to whole pixels.
// Default is true.
func WithRounding(enabled bool) TreeOption {
	return func(t *Tree) error {
		t.rounding = enabled
		return nil
	}
}

// WithMeasureFunc sets the function used to size leaves that have the
// measure flag set. ComputeLayoutWithMeasure overrides it per call.
func WithMeasureFunc(fn MeasureFunc) TreeOption {
	return func(t *Tree) error {
		t.measure = fn
		return nil
	}
}

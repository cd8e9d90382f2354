// Package fixture loads layout documents and turns them into layout trees.
//
// A document describes one tree of styled boxes in YAML or TOML, together
// with the space it is laid out in. Lengths are written the CSS way
// ("auto", 10, "50%", "min-content", "1fr", "fit-content(20)") and grid
// templates as track lists ("10 repeat(auto-fill, minmax(5, 1fr))").
// Leaves may carry text, measured as monospace cells with greedy word
// wrapping, or a fixed content size.
package fixture

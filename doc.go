// Package boxlayout computes the geometry of trees of styled boxes.
//
// Users import this single package for the complete public API: the node
// tree, style types, flexbox, grid and block layout, and computed results.
//
//	tree, _ := boxlayout.NewTree()
//	child, _ := tree.NewLeaf(boxlayout.DefaultStyle())
//	root, _ := tree.NewWithChildren(boxlayout.DefaultStyle(), child)
//	_ = tree.ComputeLayout(root, boxlayout.DefiniteSize(80, 24))
//	l, _ := tree.Layout(child)
package boxlayout

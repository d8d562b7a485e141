package Trees

// A node in the BST. Each child is owned by exactly one parent; a nil child is absent.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// frame is a node paired with its depth, used by explicit-stack walks.
type frame[T any] struct {
	n *node[T]
	d int
}

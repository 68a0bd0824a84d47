package searcher

// node is a position in the search tree, identified by the column played to
// reach it from its parent. The parent pointer is a non-owning back-reference
// used for backpropagation only; children hold the only owning references, so
// severing a new root's parent releases the discarded siblings.
type node struct {
	action   int
	parent   *node
	visits   int
	wins     int
	children map[int]*node
}

func newNode(action int, parent *node) *node {
	return &node{
		action:   action,
		parent:   parent,
		children: make(map[int]*node),
	}
}

// expand attaches one child per legal move, all at once.
func (n *node) expand(moves []int) {
	for _, col := range moves {
		n.children[col] = newNode(col, n)
	}
}

// depth returns the height of the subtree rooted at n, counting n itself.
// Diagnostic only; recursion is bounded by the move count of a full board.
func (n *node) depth() int {
	max := 0
	for _, child := range n.children {
		if d := child.depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

package tree

// Node holds a single key plus the cached subtree height the balancer works
// off of. left and right own their subtrees; parent is a back-reference only,
// used to walk toward the root after a structural change, and never owns
// anything.
type Node struct {
	key    interface{}
	left   *Node
	right  *Node
	parent *Node
	height int
}

// all nodes enter the tree as leaves
func newNode(key interface{}) *Node {
	return &Node{key: key, height: 1}
}

// Key returns the key stored at this node.
func (n *Node) Key() interface{} {
	return n.key
}

// Left returns the root of the left subtree, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the root of the right subtree, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// Parent returns the owning node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Height returns the cached height of the subtree rooted here.
// A nil subtree has height 0, a leaf has height 1.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// BalanceFactor is height(left) - height(right). Outside of an in-progress
// insert or delete it is always one of -1, 0, +1; the balancer treats -2/+2
// as the signal to rotate and external callers never observe those values.
func (n *Node) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// updateHeight refreshes the cached height from the children. This is the
// only place the cache is ever written.
func (n *Node) updateHeight() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
}

func (n *Node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// minimum walks to the leftmost node of the subtree rooted at n.
func (n *Node) minimum() *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maximum walks to the rightmost node of the subtree rooted at n.
func (n *Node) maximum() *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the node holding the next key in sorted order, or nil if
// n holds the largest key. Walks via parent pointers, no comparisons needed.
func (n *Node) successor() *Node {
	if n.right != nil {
		return n.right.minimum()
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// predecessor is the mirror of successor.
func (n *Node) predecessor() *Node {
	if n.left != nil {
		return n.left.maximum()
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

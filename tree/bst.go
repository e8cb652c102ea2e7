package tree

// Ordering-only skeleton: everything in this file descends by comparator and
// rewires links, and knows nothing about heights or rotations. Each mutation
// returns the lowest node the balancer must start its walk from.

// search descends iteratively from the root. No side effects.
func (t *Tree) search(key interface{}) *Node {
	n := t.root
	for n != nil {
		cmp := t.comparator(key, n.key)
		switch {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// insertRaw links key as a new leaf and returns it along with true. If the
// key is already present the existing node is returned with false and the
// tree is untouched (duplicates are rejected, not overwritten).
func (t *Tree) insertRaw(key interface{}) (*Node, bool) {
	if t.root == nil {
		t.root = newNode(key)
		return t.root, true
	}
	n := t.root
	for {
		cmp := t.comparator(key, n.key)
		switch {
		case cmp < 0:
			if n.left == nil {
				leaf := newNode(key)
				leaf.parent = n
				n.left = leaf
				return leaf, true
			}
			n = n.left
		case cmp > 0:
			if n.right == nil {
				leaf := newNode(key)
				leaf.parent = n
				n.right = leaf
				return leaf, true
			}
			n = n.right
		default:
			return n, false
		}
	}
}

// deleteRaw unlinks key from the tree and returns the node the rebalancing
// walk starts from (the unlinked node's former parent), plus whether a
// deletion happened.
//
// The two-children case copies the in-order successor's key into the target
// and unlinks the successor instead; the successor is the leftmost node of
// the right subtree and therefore never has a left child, so the unlink
// always reduces to the leaf or one-child case.
func (t *Tree) deleteRaw(key interface{}) (*Node, bool) {
	n := t.search(key)
	if n == nil {
		return nil, false
	}
	if n.left != nil && n.right != nil {
		succ := n.right.minimum()
		n.key = succ.key
		n = succ
	}
	// n has at most one child now
	child := n.left
	if child == nil {
		child = n.right
	}
	start := n.parent
	t.transplant(n, child)
	n.left, n.right, n.parent = nil, nil, nil
	return start, true
}

// transplant splices child into n's slot in its parent, or makes child the
// new root when n was the root.
func (t *Tree) transplant(n, child *Node) {
	if child != nil {
		child.parent = n.parent
	}
	switch {
	case n.parent == nil:
		t.root = child
	case n.parent.left == n:
		n.parent.left = child
	default:
		n.parent.right = child
	}
}

package tree

// BalancingStrategy restores the balance invariant after the ordering
// skeleton has mutated the tree. The walk always starts at the lowest node
// the mutation touched. AVL is the strategy shipped here; alternatives
// (red-black recoloring, splaying, treap priorities) plug in through this
// interface without touching the BST skeleton or the rotation primitives.
type BalancingStrategy interface {
	Name() string
	RebalanceInsert(t *Tree, from *Node)
	RebalanceDelete(t *Tree, from *Node)
}

type avlStrategy struct{}

func (avlStrategy) Name() string { return "avl" }

// rebalanceNode classifies the imbalance at n by the tall child's balance
// factor and fires the matching rotation. Returns the node now occupying n's
// old slot (n itself when no rotation was needed).
func (avlStrategy) rebalanceNode(t *Tree, n *Node) *Node {
	switch bf := n.BalanceFactor(); {
	case bf > 1:
		if n.left.BalanceFactor() >= 0 {
			return t.rotateRight(n) // LL
		}
		return t.rotateLeftRight(n) // LR
	case bf < -1:
		if n.right.BalanceFactor() <= 0 {
			return t.rotateLeft(n) // RR
		}
		return t.rotateRightLeft(n) // RL
	}
	return n
}

// RebalanceInsert walks from the new leaf to the root, refreshing heights.
// An insert can unbalance at most one ancestor, and the single rotation (or
// double, for the zig-zag shapes) restores the subtree to its pre-insert
// height, so the walk stops right after the first rotation fires.
func (s avlStrategy) RebalanceInsert(t *Tree, from *Node) {
	for n := from; n != nil; n = n.parent {
		n.updateHeight()
		if bf := n.BalanceFactor(); bf > 1 || bf < -1 {
			s.rebalanceNode(t, n)
			return
		}
	}
}

// RebalanceDelete walks from the unlinked node's former parent all the way
// to the root. Unlike insert, a rotation here can shrink the subtree and
// re-expose an imbalance further up, so the walk never stops early. That
// asymmetry with RebalanceInsert is deliberate.
func (s avlStrategy) RebalanceDelete(t *Tree, from *Node) {
	for n := from; n != nil; {
		n.updateHeight()
		next := n.parent
		if bf := n.BalanceFactor(); bf > 1 || bf < -1 {
			next = s.rebalanceNode(t, n).parent
		}
		n = next
	}
}

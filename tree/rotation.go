package tree

import "github.com/tferdous17/baobab/utils"

// The four O(1) restructuring primitives. Each preserves the in-order key
// sequence, rewires the parent back-pointers of every touched node, and
// refreshes cached heights child-before-parent. Calling one without the
// required child present is a bug in the balancer, not bad input, so it
// panics rather than returning an error the caller could swallow.

// rotateLeft lifts n's right child into n's place:
//
//	  n                p
//	 / \              / \
//	a   p     =>     n   c
//	   / \          / \
//	  b   c        a   b
func (t *Tree) rotateLeft(n *Node) *Node {
	if n == nil || n.right == nil {
		panic(utils.ErrRotationChildMissing)
	}
	pivot := n.right
	n.right = pivot.left
	if pivot.left != nil {
		pivot.left.parent = n
	}
	pivot.left = n
	pivot.parent = n.parent
	switch {
	case n.parent == nil:
		t.root = pivot
	case n.parent.left == n:
		n.parent.left = pivot
	default:
		n.parent.right = pivot
	}
	n.parent = pivot
	n.updateHeight()
	pivot.updateHeight()
	t.rotations++
	return pivot
}

// rotateRight is the mirror of rotateLeft and lifts n's left child.
func (t *Tree) rotateRight(n *Node) *Node {
	if n == nil || n.left == nil {
		panic(utils.ErrRotationChildMissing)
	}
	pivot := n.left
	n.left = pivot.right
	if pivot.right != nil {
		pivot.right.parent = n
	}
	pivot.right = n
	pivot.parent = n.parent
	switch {
	case n.parent == nil:
		t.root = pivot
	case n.parent.left == n:
		n.parent.left = pivot
	default:
		n.parent.right = pivot
	}
	n.parent = pivot
	n.updateHeight()
	pivot.updateHeight()
	t.rotations++
	return pivot
}

// rotateLeftRight handles the left-child-right-heavy shape: first a left
// rotation straightens n.left into the all-left shape, then a right rotation
// on n finishes the job.
func (t *Tree) rotateLeftRight(n *Node) *Node {
	if n == nil || n.left == nil {
		panic(utils.ErrRotationChildMissing)
	}
	t.rotateLeft(n.left)
	return t.rotateRight(n)
}

// rotateRightLeft is the mirror of rotateLeftRight.
func (t *Tree) rotateRightLeft(n *Node) *Node {
	if n == nil || n.right == nil {
		panic(utils.ErrRotationChildMissing)
	}
	t.rotateRight(n.right)
	return t.rotateLeft(n)
}

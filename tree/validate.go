package tree

import (
	"fmt"

	"github.com/tferdous17/baobab/utils"
)

// Validate walks the whole tree and reports the first broken invariant:
// BST ordering, parent back-pointers, height-cache consistency, AVL balance
// factors, and the size count. O(n); it is a diagnostic surface for tests
// and debugging, never part of the mutation path. A non-nil result means the
// engine itself has a bug, not that the caller passed bad input.
func (t *Tree) Validate() error {
	count := 0
	if err := t.validateSubtree(t.root, nil, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d does not match %d reachable nodes",
			utils.ErrTreeCorrupted, t.size, count)
	}
	return nil
}

// IsValid is Validate as a boolean, logging the failure when there is one.
func (t *Tree) IsValid() bool {
	if err := t.Validate(); err != nil {
		utils.LogRED("tree validation failed: %v", err)
		return false
	}
	return true
}

func (t *Tree) validateSubtree(n, parent *Node, min, max interface{}, count *int) error {
	if n == nil {
		return nil
	}
	*count++
	if n.parent != parent {
		return fmt.Errorf("%w: parent link of %v does not point at its owner",
			utils.ErrTreeCorrupted, n.key)
	}
	if min != nil && t.comparator(n.key, min) <= 0 {
		return fmt.Errorf("%w: key %v at or below the lower bound %v",
			utils.ErrTreeCorrupted, n.key, min)
	}
	if max != nil && t.comparator(n.key, max) >= 0 {
		return fmt.Errorf("%w: key %v at or above the upper bound %v",
			utils.ErrTreeCorrupted, n.key, max)
	}
	if want := 1 + max2(n.left.Height(), n.right.Height()); n.height != want {
		return fmt.Errorf("%w: node %v caches height %d, structure says %d",
			utils.ErrHeightMismatch, n.key, n.height, want)
	}
	if bf := n.BalanceFactor(); bf < -1 || bf > 1 {
		return fmt.Errorf("%w: node %v has balance factor %d",
			utils.ErrTreeCorrupted, n.key, bf)
	}
	if err := t.validateSubtree(n.left, n, min, n.key, count); err != nil {
		return err
	}
	return t.validateSubtree(n.right, n, n.key, max, count)
}

// HeightsValid checks the height cache alone over the whole tree.
func (t *Tree) HeightsValid() bool {
	return heightsValid(t.root)
}

func heightsValid(n *Node) bool {
	if n == nil {
		return true
	}
	if n.height != 1+max2(n.left.Height(), n.right.Height()) {
		return false
	}
	return heightsValid(n.left) && heightsValid(n.right)
}

// BalanceFactorsValid checks the AVL balance invariant alone over the whole
// tree.
func (t *Tree) BalanceFactorsValid() bool {
	return balanceFactorsValid(t.root)
}

func balanceFactorsValid(n *Node) bool {
	if n == nil {
		return true
	}
	if bf := n.BalanceFactor(); bf < -1 || bf > 1 {
		return false
	}
	return balanceFactorsValid(n.left) && balanceFactorsValid(n.right)
}

// max2 avoids the builtin max, which the min/max bound parameters above
// shadow.
func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

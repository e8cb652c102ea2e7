package tree

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

const fingerprintSeed = 0x9ab0ab

// Fingerprint returns a murmur3 digest of the tree's exact shape: the
// pre-order stream of keys and cached heights. Two trees with equal
// fingerprints hold the same keys in the same positions with the same
// metadata, so a no-op operation (e.g. a duplicate insert) must leave the
// fingerprint unchanged.
func (t *Tree) Fingerprint() uint64 {
	hasher := murmur3.New64WithSeed(fingerprintSeed)
	for it := t.Iterator(PreOrderTraversal); it.Next(); {
		n := it.Node()
		fmt.Fprintf(hasher, "%v|%d;", n.key, n.height)
	}
	return hasher.Sum64()
}

// BalanceStats is a per-node breakdown of balance factors across the tree.
type BalanceStats struct {
	TotalNodes        int
	PerfectlyBalanced int // balance factor 0
	LeftHeavy         int // balance factor +1
	RightHeavy        int // balance factor -1
}

// BalanceStats tallies balance factors over the whole tree. O(n).
func (t *Tree) BalanceStats() BalanceStats {
	var stats BalanceStats
	for it := t.Iterator(PreOrderTraversal); it.Next(); {
		stats.TotalNodes++
		switch it.Node().BalanceFactor() {
		case 0:
			stats.PerfectlyBalanced++
		case 1:
			stats.LeftHeavy++
		case -1:
			stats.RightHeavy++
		}
	}
	return stats
}

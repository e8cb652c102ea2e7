package tree

import (
	"math"
	"math/rand"
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/require"
)

// the seven-key insertion order that builds a perfect three-level tree
var balancedKeys = []int{50, 30, 70, 20, 40, 60, 80}

func buildIntTree(t *testing.T, keys ...int) *Tree {
	t.Helper()
	tr := NewWithIntComparator()
	for _, k := range keys {
		require.True(t, tr.Insert(k), "fresh key %d must insert", k)
	}
	return tr
}

func TestInsertBalancedSequence(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	require.Equal(t, []interface{}{20, 30, 40, 50, 60, 70, 80}, tr.InOrder())
	require.True(t, tr.IsValid())
	require.Equal(t, 3, tr.Height())
	require.Equal(t, 7, tr.Size())
	require.Zero(t, tr.RotationCount(), "balanced insertion order needs no rotations")
}

func TestInsertAscendingRebalances(t *testing.T) {
	tr := buildIntTree(t, 1, 2, 3, 4, 5)

	// a plain BST would degenerate to height 5 here
	require.Equal(t, 3, tr.Height())
	require.True(t, tr.IsValid())
	require.Positive(t, tr.RotationCount(), "monotonic insertion must fire rotations")
	require.Equal(t, []interface{}{1, 2, 3, 4, 5}, tr.InOrder())
}

func TestDeleteRootWithTwoChildren(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	require.True(t, tr.Delete(50))
	require.False(t, tr.Contains(50))
	require.True(t, tr.IsValid())
	require.Equal(t, []interface{}{20, 30, 40, 60, 70, 80}, tr.InOrder())
	// successor promotion: 60 moved into the root slot
	require.Equal(t, 60, tr.Root().Key())
}

func TestSearchEmptyTree(t *testing.T) {
	tr := NewWithIntComparator()

	require.Nil(t, tr.Search(42))
	require.False(t, tr.Contains(42))
	require.False(t, tr.Delete(42))
	_, ok := tr.Min()
	require.False(t, ok)
	_, ok = tr.Max()
	require.False(t, ok)
	require.True(t, tr.IsEmpty())
	require.Zero(t, tr.Height())
}

func TestDuplicateInsertIsIdempotent(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	before := tr.Fingerprint()
	rotations := tr.RotationCount()

	require.False(t, tr.Insert(40))

	require.Equal(t, before, tr.Fingerprint(), "duplicate insert must not change the shape")
	require.Equal(t, rotations, tr.RotationCount())
	require.Equal(t, 7, tr.Size())
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)
	keys := tr.InOrder()

	require.True(t, tr.Insert(55))
	require.True(t, tr.Delete(55))

	require.Equal(t, keys, tr.InOrder())
	require.True(t, tr.IsValid())
}

func TestMinMax(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	minKey, ok := tr.Min()
	require.True(t, ok)
	require.Equal(t, 20, minKey)

	maxKey, ok := tr.Max()
	require.True(t, ok)
	require.Equal(t, 80, maxKey)
}

func TestClear(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	tr.Clear()

	require.True(t, tr.IsEmpty())
	require.Zero(t, tr.Size())
	require.Zero(t, tr.Height())
	require.True(t, tr.Insert(1), "cleared tree must accept inserts again")
}

func TestSuccessorPredecessor(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	succ, ok := tr.Successor(40)
	require.True(t, ok)
	require.Equal(t, 50, succ)

	pred, ok := tr.Predecessor(60)
	require.True(t, ok)
	require.Equal(t, 50, pred)

	_, ok = tr.Successor(80)
	require.False(t, ok, "maximum has no successor")
	_, ok = tr.Predecessor(20)
	require.False(t, ok, "minimum has no predecessor")
	_, ok = tr.Successor(55)
	require.False(t, ok, "absent keys have no successor")
}

func TestFloorCeiling(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	floor, ok := tr.Floor(45)
	require.True(t, ok)
	require.Equal(t, 40, floor)

	ceil, ok := tr.Ceiling(45)
	require.True(t, ok)
	require.Equal(t, 50, ceil)

	floor, ok = tr.Floor(50)
	require.True(t, ok)
	require.Equal(t, 50, floor, "present key is its own floor")

	_, ok = tr.Floor(10)
	require.False(t, ok, "nothing at or below 10")
	_, ok = tr.Ceiling(90)
	require.False(t, ok, "nothing at or above 90")
}

func TestRangeQuery(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	require.Equal(t, []interface{}{30, 40, 50, 60}, tr.RangeQuery(25, 65))
	require.Equal(t, []interface{}{20, 30, 40, 50, 60, 70, 80}, tr.RangeQuery(20, 80))
	require.Empty(t, tr.RangeQuery(81, 99))
	require.Empty(t, tr.RangeQuery(65, 25), "inverted interval is empty")
	require.Equal(t, 4, tr.CountRange(25, 65))
	require.Zero(t, tr.CountRange(81, 99))
}

func TestKthSmallestLargest(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	k1, ok := tr.KthSmallest(1)
	require.True(t, ok)
	require.Equal(t, 20, k1)

	k4, ok := tr.KthSmallest(4)
	require.True(t, ok)
	require.Equal(t, 50, k4)

	l1, ok := tr.KthLargest(1)
	require.True(t, ok)
	require.Equal(t, 80, l1)

	_, ok = tr.KthSmallest(0)
	require.False(t, ok)
	_, ok = tr.KthSmallest(8)
	require.False(t, ok)
}

func TestHeightBoundAfterGrowAndShrink(t *testing.T) {
	tr := NewWithIntComparator()
	rng := rand.New(rand.NewSource(7))

	keys := rng.Perm(1024)
	for _, k := range keys {
		require.True(t, tr.Insert(k))
	}
	for _, k := range keys[:512] {
		require.True(t, tr.Delete(k))
	}

	require.True(t, tr.IsValid())
	n := float64(tr.Size())
	bound := 1.44 * math.Log2(n+2)
	require.LessOrEqual(t, float64(tr.Height()), bound)
}

func TestInvariantsHoldAfterEveryOperation(t *testing.T) {
	tr := NewWithIntComparator()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 400; i++ {
		key := rng.Intn(100)
		if rng.Intn(3) == 0 {
			tr.Delete(key)
		} else {
			tr.Insert(key)
		}
		require.NoError(t, tr.Validate(), "operation %d broke an invariant", i)
	}
}

func TestDeleteCascadeKeepsBalance(t *testing.T) {
	tr := NewWithIntComparator()
	for k := 1; k <= 64; k++ {
		require.True(t, tr.Insert(k))
	}
	// peeling the large half off forces rebalancing at multiple levels
	for k := 64; k > 32; k-- {
		require.True(t, tr.Delete(k))
		require.True(t, tr.IsValid(), "delete of %d broke an invariant", k)
	}
	require.Equal(t, 32, tr.Size())
}

func TestAgainstRedBlackOracle(t *testing.T) {
	tr := NewWithIntComparator()
	oracle := rbt.NewWithIntComparator()
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 2000; i++ {
		key := rng.Intn(500)
		if rng.Intn(4) == 0 {
			removed := tr.Delete(key)
			_, present := oracle.Get(key)
			require.Equal(t, present, removed, "delete disagreement on %d", key)
			oracle.Remove(key)
		} else {
			_, present := oracle.Get(key)
			require.Equal(t, !present, tr.Insert(key), "insert disagreement on %d", key)
			oracle.Put(key, nil)
		}
	}

	require.Equal(t, oracle.Size(), tr.Size())
	require.Equal(t, oracle.Keys(), tr.InOrder())
	require.True(t, tr.IsValid())
}

func TestInOrderStrictlyIncreasing(t *testing.T) {
	tr := NewWithStringComparator()
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		tr.Insert(randomKey(rng))
	}

	keys := tr.InOrder()
	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1].(string), keys[i].(string))
	}
	require.True(t, tr.IsValid())
}

func TestBalanceStats(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	stats := tr.BalanceStats()
	require.Equal(t, 7, stats.TotalNodes)
	require.Equal(t, 7, stats.PerfectlyBalanced, "a perfect tree has no heavy nodes")
	require.Zero(t, stats.LeftHeavy)
	require.Zero(t, stats.RightHeavy)
}

func TestCustomComparator(t *testing.T) {
	// reversed ordering flips the whole in-order sequence
	reversed := func(a, b interface{}) int { return b.(int) - a.(int) }
	tr := New(reversed)
	for _, k := range balancedKeys {
		require.True(t, tr.Insert(k))
	}

	require.Equal(t, []interface{}{80, 70, 60, 50, 40, 30, 20}, tr.InOrder())
	require.True(t, tr.IsValid())

	minKey, ok := tr.Min()
	require.True(t, ok)
	require.Equal(t, 80, minKey, "min is with respect to the comparator")
}

func randomKey(rng *rand.Rand) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 10)
	for i := range b {
		b[i] = chars[rng.Intn(len(chars))]
	}
	return string(b)
}

package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tferdous17/baobab/utils"
)

func TestValidateCleanTree(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	require.NoError(t, tr.Validate())
	require.True(t, tr.HeightsValid())
	require.True(t, tr.BalanceFactorsValid())
}

func TestValidateEmptyTree(t *testing.T) {
	tr := NewWithIntComparator()
	require.NoError(t, tr.Validate())
}

func TestValidateDetectsOrderingViolation(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	// swap two keys behind the engine's back
	tr.root.left.key, tr.root.right.key = tr.root.right.key, tr.root.left.key

	err := tr.Validate()
	require.ErrorIs(t, err, utils.ErrTreeCorrupted)
	require.False(t, tr.IsValid())
}

func TestValidateDetectsStaleHeightCache(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	tr.root.left.height = 9

	err := tr.Validate()
	require.ErrorIs(t, err, utils.ErrHeightMismatch)
	require.False(t, tr.HeightsValid())
}

func TestValidateDetectsBrokenParentLink(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	tr.root.left.parent = tr.root.right

	require.ErrorIs(t, tr.Validate(), utils.ErrTreeCorrupted)
}

func TestValidateDetectsSizeDrift(t *testing.T) {
	tr := buildIntTree(t, balancedKeys...)

	tr.size = 99

	require.ErrorIs(t, tr.Validate(), utils.ErrTreeCorrupted)
}

func TestValidateDetectsUnbalancedSubtree(t *testing.T) {
	// hand-build a bare BST spine the balancer never saw
	tr := NewWithIntComparator()
	a, b, c := newNode(1), newNode(2), newNode(3)
	a.right, b.right = b, c
	b.parent, c.parent = a, b
	c.height, b.height, a.height = 1, 2, 3
	tr.root, tr.size = a, 3

	require.ErrorIs(t, tr.Validate(), utils.ErrTreeCorrupted)
	require.False(t, tr.BalanceFactorsValid())
	require.True(t, tr.HeightsValid(), "the spine's height cache is honest, only balance is off")
}

func TestStringRendering(t *testing.T) {
	tr := NewWithIntComparator()
	require.Contains(t, tr.String(), "empty")

	tr.Insert(2)
	tr.Insert(1)
	tr.Insert(3)
	out := tr.String()
	require.Contains(t, out, "2 h=2 b=+0")
	require.Contains(t, out, "1 h=1 b=+0")
	require.Contains(t, out, "3 h=1 b=+0")
}

func TestFingerprintTracksShape(t *testing.T) {
	a := buildIntTree(t, balancedKeys...)
	b := buildIntTree(t, balancedKeys...)
	require.Equal(t, a.Fingerprint(), b.Fingerprint(), "identical build, identical shape")

	require.True(t, b.Delete(20))
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	require.True(t, b.Insert(20))
	require.Equal(t, a.Fingerprint(), b.Fingerprint(), "re-inserting the leaf restores the shape")
}

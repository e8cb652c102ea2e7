// Package tree implements an in-memory ordered-key container backed by an
// AVL-balanced binary search tree with parent pointers.
//
// A tree is not safe for concurrent use by multiple goroutines. If multiple
// goroutines access a tree concurrently, and at least one of them mutates it,
// access must be synchronized externally. Read-only traversals may run
// concurrently with each other.
package tree

import (
	"github.com/emirpasic/gods/utils"
)

// Tree is the ordered container. Keys are ordered by the configured
// comparator; duplicates are rejected. All operations run in O(height),
// which the balancing strategy keeps logarithmic.
type Tree struct {
	root       *Node
	size       int
	comparator utils.Comparator
	strategy   BalancingStrategy
	rotations  uint64
}

// New returns an empty tree ordered by the given comparator.
func New(comparator utils.Comparator) *Tree {
	return NewWithStrategy(comparator, avlStrategy{})
}

// NewWithIntComparator returns an empty tree holding int keys in their
// natural order.
func NewWithIntComparator() *Tree {
	return New(utils.IntComparator)
}

// NewWithStringComparator returns an empty tree holding string keys in their
// natural order.
func NewWithStringComparator() *Tree {
	return New(utils.StringComparator)
}

// NewWithStrategy returns an empty tree using a custom balancing strategy.
// The ordering skeleton and the rotation primitives are shared by every
// strategy; only the post-mutation fix-up differs.
func NewWithStrategy(comparator utils.Comparator, strategy BalancingStrategy) *Tree {
	return &Tree{comparator: comparator, strategy: strategy}
}

// Insert adds key to the tree. Returns false without touching the tree when
// the key is already present.
func (t *Tree) Insert(key interface{}) bool {
	n, added := t.insertRaw(key)
	if !added {
		return false
	}
	t.size++
	t.strategy.RebalanceInsert(t, n)
	return true
}

// Delete removes key from the tree. Returns false when the key is absent.
func (t *Tree) Delete(key interface{}) bool {
	start, removed := t.deleteRaw(key)
	if !removed {
		return false
	}
	t.size--
	t.strategy.RebalanceDelete(t, start)
	return true
}

// Search returns the node holding key, or nil. The returned node is a live
// handle into the tree and must be treated as read-only.
func (t *Tree) Search(key interface{}) *Node {
	return t.search(key)
}

// Contains reports whether key is present.
func (t *Tree) Contains(key interface{}) bool {
	return t.search(key) != nil
}

// Min returns the smallest key, or false when the tree is empty.
func (t *Tree) Min() (interface{}, bool) {
	if t.root == nil {
		return nil, false
	}
	return t.root.minimum().key, true
}

// Max returns the largest key, or false when the tree is empty.
func (t *Tree) Max() (interface{}, bool) {
	if t.root == nil {
		return nil, false
	}
	return t.root.maximum().key, true
}

// Height of the whole tree; 0 when empty, 1 for a single node.
func (t *Tree) Height() int {
	return t.root.Height()
}

// Size returns the number of keys.
func (t *Tree) Size() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Clear drops every key. The rotation counter is cumulative and survives.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
}

// Root exposes the root node for collaborators that consume the node
// contract directly (read-only).
func (t *Tree) Root() *Node {
	return t.root
}

// Comparator returns the ordering function the tree was built with.
func (t *Tree) Comparator() utils.Comparator {
	return t.comparator
}

// RotationCount returns the number of primitive rotations performed since
// the tree was created. A double rotation counts as two.
func (t *Tree) RotationCount() uint64 {
	return t.rotations
}

// Successor returns the smallest key greater than key. False when key is not
// in the tree or holds the maximum.
func (t *Tree) Successor(key interface{}) (interface{}, bool) {
	n := t.search(key)
	if n == nil {
		return nil, false
	}
	if s := n.successor(); s != nil {
		return s.key, true
	}
	return nil, false
}

// Predecessor returns the largest key smaller than key. False when key is
// not in the tree or holds the minimum.
func (t *Tree) Predecessor(key interface{}) (interface{}, bool) {
	n := t.search(key)
	if n == nil {
		return nil, false
	}
	if p := n.predecessor(); p != nil {
		return p.key, true
	}
	return nil, false
}

// Floor returns the largest key <= key, present or not. False when every key
// in the tree is greater than key.
func (t *Tree) Floor(key interface{}) (interface{}, bool) {
	var best *Node
	n := t.root
	for n != nil {
		cmp := t.comparator(key, n.key)
		switch {
		case cmp == 0:
			return n.key, true
		case cmp < 0:
			n = n.left
		default:
			best = n
			n = n.right
		}
	}
	if best == nil {
		return nil, false
	}
	return best.key, true
}

// Ceiling returns the smallest key >= key, present or not. False when every
// key in the tree is smaller than key.
func (t *Tree) Ceiling(key interface{}) (interface{}, bool) {
	var best *Node
	n := t.root
	for n != nil {
		cmp := t.comparator(key, n.key)
		switch {
		case cmp == 0:
			return n.key, true
		case cmp > 0:
			n = n.right
		default:
			best = n
			n = n.left
		}
	}
	if best == nil {
		return nil, false
	}
	return best.key, true
}

// RangeQuery returns, in sorted order, every key in the closed interval
// [min, max]. Subtrees wholly outside the interval are never descended into.
func (t *Tree) RangeQuery(min, max interface{}) []interface{} {
	keys := make([]interface{}, 0)
	if t.root == nil || t.comparator(min, max) > 0 {
		return keys
	}
	stack := make([]*Node, 0, t.root.Height())
	cur := t.root
	for cur != nil || len(stack) > 0 {
		if cur != nil {
			if t.comparator(cur.key, min) < 0 {
				cur = cur.right // whole left side is below min
			} else {
				stack = append(stack, cur)
				cur = cur.left
			}
			continue
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.comparator(n.key, max) > 0 {
			break // in-order walk, everything after is bigger too
		}
		keys = append(keys, n.key)
		cur = n.right
	}
	return keys
}

// CountRange returns the number of keys in the closed interval [min, max].
func (t *Tree) CountRange(min, max interface{}) int {
	return len(t.RangeQuery(min, max))
}

// KthSmallest returns the k-th smallest key, 1-based. False when k is out of
// range.
func (t *Tree) KthSmallest(k int) (interface{}, bool) {
	if k < 1 || k > t.size {
		return nil, false
	}
	it := t.Iterator(InOrderTraversal)
	for i := 0; i < k; i++ {
		if !it.Next() {
			return nil, false
		}
	}
	return it.Key(), true
}

// KthLargest returns the k-th largest key, 1-based. False when k is out of
// range.
func (t *Tree) KthLargest(k int) (interface{}, bool) {
	if k < 1 || k > t.size {
		return nil, false
	}
	return t.KthSmallest(t.size - k + 1)
}

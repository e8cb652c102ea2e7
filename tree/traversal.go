package tree

// Order selects the sequence an Iterator yields keys in.
type Order int

const (
	InOrderTraversal Order = iota
	PreOrderTraversal
	PostOrderTraversal
	LevelOrderTraversal
)

// Iterator is a lazy, restartable walk over the tree in a fixed order. It
// never mutates the tree; it must not be advanced concurrently with Insert
// or Delete. Depth-first orders run on an explicit stack, level order on a
// queue, so degenerate inputs can't blow the call stack.
type Iterator struct {
	tree  *Tree
	order Order
	stack []*Node
	queue []*Node
	cur   *Node // pending descent for in-order and post-order
	last  *Node // most recently emitted, for post-order backtracking
	node  *Node // node the iterator currently points at
}

// Iterator returns a fresh iterator positioned before the first key.
func (t *Tree) Iterator(order Order) *Iterator {
	it := &Iterator{tree: t, order: order}
	it.Rewind()
	return it
}

// Rewind repositions the iterator before the first key so the walk can be
// replayed.
func (it *Iterator) Rewind() {
	it.stack = it.stack[:0]
	it.queue = it.queue[:0]
	it.cur = nil
	it.last = nil
	it.node = nil
	root := it.tree.root
	if root == nil {
		return
	}
	switch it.order {
	case PreOrderTraversal:
		it.stack = append(it.stack, root)
	case LevelOrderTraversal:
		it.queue = append(it.queue, root)
	default:
		it.cur = root
	}
}

// Next advances to the next key, returning false once the walk is done.
func (it *Iterator) Next() bool {
	switch it.order {
	case PreOrderTraversal:
		return it.nextPreOrder()
	case PostOrderTraversal:
		return it.nextPostOrder()
	case LevelOrderTraversal:
		return it.nextLevelOrder()
	default:
		return it.nextInOrder()
	}
}

// Key returns the key at the iterator's position. Only valid after a Next
// call that returned true.
func (it *Iterator) Key() interface{} {
	return it.node.key
}

// Node returns the node at the iterator's position (read-only handle).
func (it *Iterator) Node() *Node {
	return it.node
}

func (it *Iterator) nextInOrder() bool {
	for it.cur != nil || len(it.stack) > 0 {
		if it.cur != nil {
			it.stack = append(it.stack, it.cur)
			it.cur = it.cur.left
			continue
		}
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		it.cur = n.right
		it.node = n
		return true
	}
	return false
}

func (it *Iterator) nextPreOrder() bool {
	if len(it.stack) == 0 {
		return false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	// right first so left pops first
	if n.right != nil {
		it.stack = append(it.stack, n.right)
	}
	if n.left != nil {
		it.stack = append(it.stack, n.left)
	}
	it.node = n
	return true
}

func (it *Iterator) nextPostOrder() bool {
	for it.cur != nil || len(it.stack) > 0 {
		if it.cur != nil {
			it.stack = append(it.stack, it.cur)
			it.cur = it.cur.left
			continue
		}
		peek := it.stack[len(it.stack)-1]
		if peek.right != nil && it.last != peek.right {
			it.cur = peek.right
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
		it.last = peek
		it.node = peek
		return true
	}
	return false
}

func (it *Iterator) nextLevelOrder() bool {
	if len(it.queue) == 0 {
		return false
	}
	n := it.queue[0]
	it.queue = it.queue[1:]
	if n.left != nil {
		it.queue = append(it.queue, n.left)
	}
	if n.right != nil {
		it.queue = append(it.queue, n.right)
	}
	it.node = n
	return true
}

// InOrder returns every key in ascending comparator order.
func (t *Tree) InOrder() []interface{} {
	return t.collect(InOrderTraversal)
}

// PreOrder returns every key in root-left-right order.
func (t *Tree) PreOrder() []interface{} {
	return t.collect(PreOrderTraversal)
}

// PostOrder returns every key in left-right-root order.
func (t *Tree) PostOrder() []interface{} {
	return t.collect(PostOrderTraversal)
}

// LevelOrder returns every key grouped by depth, top to bottom, left to
// right within a level.
func (t *Tree) LevelOrder() []interface{} {
	return t.collect(LevelOrderTraversal)
}

func (t *Tree) collect(order Order) []interface{} {
	keys := make([]interface{}, 0, t.size)
	for it := t.Iterator(order); it.Next(); {
		keys = append(keys, it.Key())
	}
	return keys
}

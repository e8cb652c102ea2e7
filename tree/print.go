package tree

import (
	"fmt"
	"strings"

	"github.com/tferdous17/baobab/utils"
)

// branch tracks which side of its parent a node hangs off, to pick the
// connector glyph
type branch int

const (
	atRoot branch = iota
	atLeft
	atRight
)

// String renders the tree shape as ASCII art, right subtree on top, each
// node annotated with its cached height and balance factor.
func (t *Tree) String() string {
	if t.root == nil {
		return fmt.Sprintf("tree(empty, strategy=%s)", t.strategy.Name())
	}
	var b strings.Builder
	renderTree(&b, t.root, "", atRoot)
	return b.String()
}

func renderTree(b *strings.Builder, n *Node, prefix string, br branch) {
	if n.right != nil {
		pad := "       "
		if br == atLeft {
			pad = "|      "
		}
		renderTree(b, n.right, prefix+pad, atRight)
	}
	switch br {
	case atRoot:
		fmt.Fprintf(b, "%s|------+ ", prefix)
	case atLeft:
		fmt.Fprintf(b, "%s\\------+ ", prefix)
	case atRight:
		fmt.Fprintf(b, "%s/------+ ", prefix)
	}
	fmt.Fprintf(b, "%v h=%d b=%+d\n", n.key, n.height, n.BalanceFactor())
	if n.left != nil {
		pad := "       "
		if br == atRight {
			pad = "|      "
		}
		renderTree(b, n.left, prefix+pad, atLeft)
	}
}

// Print writes the rendering to the process log, one line per row.
func (t *Tree) Print() {
	for _, line := range strings.Split(strings.TrimRight(t.String(), "\n"), "\n") {
		utils.LogCYAN("%s", line)
	}
}

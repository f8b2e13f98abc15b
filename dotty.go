package avl

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

type nodeids[K cmp.Ordered] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K cmp.Ordered]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(n *node[K]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K]) alloc(n *node[K]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with key, height and balance
// factor; absent children of inner nodes are drawn as small dots.
func Tree2Dot[K cmp.Ordered](tree *Tree[K], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K]()
	nilid := 0
	var walk func(n *node[K]) int
	walk = func(n *node[K]) int {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v\\nh=%d b=%d", n.key, n.height, balanceFactor(n))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(n))
		if n.left == nil && n.right == nil {
			return ID
		}
		for _, child := range [2]*node[K]{n.left, n.right} {
			if child == nil {
				nilid--
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, walk(child))
		}
		return ID
	}
	if !tree.IsEmpty() {
		walk(tree.root)
	}
	tracer().Debugf("tree DOT: %d nodes", ids.max-1)
	_, err := io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles[K cmp.Ordered](n *node[K]) string {
	s := ",style=filled,shape=circle"
	switch b := balanceFactor(n); {
	case b == 0:
		s += ",fillcolor=\"#a3d7e4\""
	case b == 1 || b == -1:
		s += ",fillcolor=\"#FFDDCC\""
	default:
		s += ",fillcolor=\"#ff6600\""
	}
	return s
}

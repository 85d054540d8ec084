package segtree

import (
	"fmt"
	"io"
	"strconv"
)

// Tree2Dot outputs the internal structure of a segment tree in Graphviz DOT
// format (for debugging purposes).
func Tree2Dot[V any](tree *Tree[V], w io.Writer) {
	nodelist, edgelist := "", ""
	tree.EachNode(func(n Node[V]) bool {
		label := fmt.Sprintf("%s\\n[%d,%d]", dotEscape(fmt.Sprint(n.Value)), n.Start, n.End)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", n.ID, label, nodeDotStyles(n.IsLeaf(), n.Depth))
		if !n.IsLeaf() {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", n.ID, 2*n.ID)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", n.ID, 2*n.ID+1)
		}
		return true
	})
	dot := "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n" + nodelist + edgelist + "}\n"
	if _, err := io.WriteString(w, dot); err != nil {
		T().Errorf("segtree: writing DOT output: %v", err)
	}
}

// dotEscape quotes s for use inside a DOT string literal.
func dotEscape(s string) string {
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth%len(hexcolors)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}

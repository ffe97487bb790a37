package data

import "fmt"

// Node is one row of the display tree shown in the Data view. Label is
// the member key, the sequence index, or a shape word for the root;
// Leaf holds the scalar rendering for primitive nodes.
type Node struct {
	Label    string
	Leaf     string
	Expanded bool
	Children []*Node
}

// IsLeaf reports whether the node renders as a single line.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Tree converts a decoded document into its display tree. Mappings
// become parents with one child per member (labeled by key), sequences
// become parents with index-labeled children, scalars become leaves.
// The root and its first-level children start expanded, everything
// below starts collapsed. The walk is unconditionally recursive; the
// input is acyclic by construction.
func Tree(root *Value) *Node {
	n := walk(rootLabel(root), root, 0)
	return n
}

func rootLabel(v *Value) string {
	switch v.Kind {
	case KindMapping:
		return "object"
	case KindSequence:
		return "array"
	default:
		return "value"
	}
}

func walk(label string, v *Value, depth int) *Node {
	n := &Node{Label: label, Expanded: depth <= 1}
	switch v.Kind {
	case KindMapping:
		for _, m := range v.Members {
			n.Children = append(n.Children, walk(m.Key, m.Value, depth+1))
		}
	case KindSequence:
		for i, item := range v.Items {
			n.Children = append(n.Children, walk(fmt.Sprintf("[%d]", i), item, depth+1))
		}
	default:
		n.Leaf = v.Scalar()
	}
	return n
}

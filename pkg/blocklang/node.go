package blocklang

// A Node is one element of a program tree: a literal, a variable reference,
// or a procedure call. What it is gets decided only when it is evaluated.
type Node struct {
	Identifier string
	Children   []*Node
	// Deferred nodes evaluate to a block value instead of running
	Deferred bool
}

// Leaf builds a node without children
func Leaf(identifier string) *Node {
	return &Node{Identifier: identifier}
}

// Call builds a node applying identifier to children
func Call(identifier string, children ...*Node) *Node {
	return &Node{Identifier: identifier, Children: children}
}

// Quote builds a deferred node
func Quote(identifier string, children ...*Node) *Node {
	return &Node{Identifier: identifier, Children: children, Deferred: true}
}

// Text builds a leaf holding a text literal
func Text(s string) *Node {
	return Leaf(textQuote + s + textQuote)
}

func (node *Node) IsLeaf() bool {
	return len(node.Children) == 0
}

// Equals compares two trees structurally
func (node *Node) Equals(other *Node) bool {
	if node == nil || other == nil {
		return node == other
	}
	if node.Identifier != other.Identifier ||
		node.Deferred != other.Deferred ||
		len(node.Children) != len(other.Children) {
		return false
	}
	for i := range node.Children {
		if !node.Children[i].Equals(other.Children[i]) {
			return false
		}
	}
	return true
}

const textQuote = `"`

// textLiteral reports whether identifier is a quoted text literal and
// returns its content
func textLiteral(identifier string) (string, bool) {
	if len(identifier) < 2 {
		return "", false
	}
	if identifier[:1] != textQuote || identifier[len(identifier)-1:] != textQuote {
		return "", false
	}
	return identifier[1 : len(identifier)-1], true
}

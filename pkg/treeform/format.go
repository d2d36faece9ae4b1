package treeform

import (
	"strings"

	"github.com/healeycodes/blocklang/pkg/blocklang"
)

// Format writes a tree back in call syntax. Parse(Format(node)) gives back
// an equal tree as long as every identifier is a single token
func Format(node *blocklang.Node) string {
	var b strings.Builder
	format(&b, node)
	return b.String()
}

func format(b *strings.Builder, node *blocklang.Node) {
	if node.Deferred {
		b.WriteString("'")
	}
	b.WriteString(node.Identifier)
	if len(node.Children) == 0 {
		return
	}
	b.WriteString("(")
	for i, child := range node.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		format(b, child)
	}
	b.WriteString(")")
}

package treeform

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/healeycodes/blocklang/pkg/blocklang"
)

// A tree document is either a scalar, which is a leaf identifier, or a
// mapping:
//
//	id: for
//	args:
//	  - "3"
//	  - '"i"'
//	  - id: print
//	    quote: true
//	    args: [i]
type treeDoc struct {
	ID    string     `yaml:"id"`
	Quote bool       `yaml:"quote,omitempty"`
	Args  []*treeDoc `yaml:"args,omitempty"`
}

var treeDocKeys = map[string]bool{"id": true, "quote": true, "args": true}

func (doc *treeDoc) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		doc.ID = value.Value
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			if !treeDocKeys[key.Value] {
				return fmt.Errorf("line %v: unknown field %q", key.Line, key.Value)
			}
		}
		type plain treeDoc
		if err := value.Decode((*plain)(doc)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %v: a node is a scalar or a mapping", value.Line)
	}
	if doc.ID == "" {
		return fmt.Errorf("line %v: node has an empty id", value.Line)
	}
	return nil
}

// Leaves that aren't quoted are written as scalars
func (doc *treeDoc) MarshalYAML() (interface{}, error) {
	if !doc.Quote && len(doc.Args) == 0 {
		return doc.ID, nil
	}
	type plain treeDoc
	return (*plain)(doc), nil
}

// Null nodes never reach UnmarshalYAML, so they are caught here
func (doc *treeDoc) node() (*blocklang.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("null node")
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("node has an empty id")
	}
	node := &blocklang.Node{Identifier: doc.ID, Deferred: doc.Quote}
	for i, arg := range doc.Args {
		child, err := arg.node()
		if err != nil {
			return nil, fmt.Errorf("%v arg %v: %w", doc.ID, i, err)
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func fromNode(node *blocklang.Node) *treeDoc {
	doc := &treeDoc{ID: node.Identifier, Quote: node.Deferred}
	for _, child := range node.Children {
		doc.Args = append(doc.Args, fromNode(child))
	}
	return doc
}

// DecodeYAML reads one tree document
func DecodeYAML(r io.Reader) (*blocklang.Node, error) {
	var doc treeDoc
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("tree: decode: %w", err)
	}
	node, err := doc.node()
	if err != nil {
		return nil, fmt.Errorf("tree: decode: %w", err)
	}
	return node, nil
}

func EncodeYAML(w io.Writer, node *blocklang.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromNode(node)); err != nil {
		return fmt.Errorf("tree: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("tree: encoder close: %w", err)
	}
	return nil
}

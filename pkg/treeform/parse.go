// Package treeform turns text and YAML documents into blocklang trees and
// back. It never evaluates anything.
package treeform

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/healeycodes/blocklang/pkg/blocklang"
)

type Program struct {
	Pos lexer.Position

	Exprs []*Expr `parser:"@@+"`
}

type Expr struct {
	Pos lexer.Position

	Quote bool    `parser:"@\"'\"?"`
	Str   *string `parser:"( @String"`
	Int   *string `parser:"| @Int"`
	Ident *string `parser:"| @Ident )"`
	Args  []*Expr `parser:"( \"(\" ( @@ ( \",\" @@ )* )? \")\" )?"`
}

var (
	lex = lexer.MustSimple([]lexer.Rule{
		{Name: "comment", Pattern: `//.*|/\*(?s:.*?)\*/`, Action: nil},
		{Name: "whitespace", Pattern: `\s+`, Action: nil},

		{Name: "Int", Pattern: `-?\d+`, Action: nil},
		{Name: "String", Pattern: `"[^"]*"`, Action: nil},
		{Name: "Ident", Pattern: `[A-Za-z_]\w*|[-+*/%=<]`, Action: nil},
		{Name: "Punct", Pattern: `[(),']`, Action: nil},
	})
	parser = participle.MustBuild(&Program{},
		participle.Lexer(lex),
		participle.Elide("comment", "whitespace"),
		participle.UseLookahead(2))
)

func Grammar() string {
	return parser.String()
}

// Parse reads a program written in call syntax:
//
//	seq(defset("out", ""), for(3, "i", 'print(i)), out)
//
// A leading ' quotes an expression. Several top-level expressions are
// wrapped in a seq call
func Parse(filename string, source string) (*blocklang.Node, error) {
	program := &Program{}
	err := parser.ParseString(filename, source, program)
	if err != nil {
		return nil, fmt.Errorf("while parsing %v: %w", filename, err)
	}
	if len(program.Exprs) == 1 {
		return program.Exprs[0].Node(), nil
	}
	root := blocklang.Call("seq")
	for _, expr := range program.Exprs {
		root.Children = append(root.Children, expr.Node())
	}
	return root, nil
}

// Node converts a parsed expression into a tree
func (expr *Expr) Node() *blocklang.Node {
	node := &blocklang.Node{Identifier: expr.identifier(), Deferred: expr.Quote}
	for _, arg := range expr.Args {
		node.Children = append(node.Children, arg.Node())
	}
	return node
}

// Text literals are recognised by their quotes, so they have to survive
// the lexer
func (expr *Expr) identifier() string {
	switch {
	case expr.Int != nil:
		return *expr.Int
	case expr.Ident != nil:
		return *expr.Ident
	}
	s := *expr.Str
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s
	}
	return `"` + s + `"`
}

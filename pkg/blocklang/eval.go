package blocklang

import (
	"fmt"
	"strconv"
	"strings"
)

// Eval evaluates node against the environment's current scope stack.
//
// A leaf is a text literal, then an integer literal. A deferred node turns
// into a block without touching its children. Anything naming a procedure
// is a call; children are evaluated left to right in a scope of their own
// and the procedure then runs in the caller's scope. A leaf naming no
// procedure is a variable reference
func (env *Environment) Eval(node *Node) (Value, error) {
	if node == nil {
		return nil, &MalformedNodeError{Reason: "nil node"}
	}
	identifier := node.Identifier
	if identifier == "" {
		return nil, &MalformedNodeError{Reason: "empty identifier"}
	}

	if node.IsLeaf() {
		if text, ok := textLiteral(identifier); ok {
			return StringValue{val: text}, nil
		}
		if n, err := strconv.ParseInt(identifier, 10, 64); err == nil {
			return IntValue{val: n}, nil
		}
	}

	if node.Deferred {
		body := *node
		body.Deferred = false
		return BlockValue{closure: Closure{scopes: env.Snapshot(), body: &body}}, nil
	}

	if proc, ok := env.procs[identifier]; ok {
		return env.call(proc, node.Children)
	}

	if node.IsLeaf() {
		return env.Lookup(identifier)
	}
	return nil, &UnknownProcedureError{Name: identifier}
}

func (env *Environment) call(proc Procedure, children []*Node) (Value, error) {
	args, err := env.evalArgs(children)
	if err != nil {
		return nil, traceError(proc.name, err)
	}

	env.traceCall(proc.name, args)
	env.depth++
	result, err := proc.Invoke(env, args)
	env.depth--
	if err != nil {
		return nil, traceError(proc.name, err)
	}
	return result, nil
}

// evalArgs stops at the first failing child
func (env *Environment) evalArgs(children []*Node) ([]Value, error) {
	env.PushScope()
	defer env.PopScope()

	args := make([]Value, 0, len(children))
	for _, child := range children {
		value, err := env.Eval(child)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}
	return args, nil
}

func (env *Environment) traceCall(name string, args []Value) {
	if env.Trace == nil {
		return
	}
	s := make([]string, len(args))
	for i, arg := range args {
		if strValue, okStr := arg.(StringValue); okStr {
			s[i] = strconv.Quote(strValue.val)
			continue
		}
		s[i] = arg.String()
	}
	fmt.Fprintf(env.Trace, "%v%v(%v)\n", strings.Repeat("  ", env.depth), name, strings.Join(s, ", "))
}

package blocklang

import (
	"fmt"
	"os"
)

const VERSION = 0.1

// NewEnvironment returns an environment with the builtin procedures and a
// single outermost scope. out receives the text of every print
func NewEnvironment(out func(string)) *Environment {
	if out == nil {
		out = stdout
	}
	env := &Environment{
		procs: make(map[string]Procedure),
		out:   out,
	}
	env.PushScope()
	InjectRuntime(env)
	return env
}

// Evaluate runs a tree in a fresh environment, printing to standard output
func Evaluate(root *Node) (Value, error) {
	return EvaluateWithOutput(root, stdout)
}

func EvaluateWithOutput(root *Node, out func(string)) (Value, error) {
	return NewEnvironment(out).Eval(root)
}

func stdout(s string) {
	fmt.Fprint(os.Stdout, s)
}

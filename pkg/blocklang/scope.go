package blocklang

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// A Scope holds one lexical block's bindings
type Scope map[string]Value

func (scope Scope) copy() Scope {
	dup := make(Scope, len(scope))
	for key, value := range scope {
		dup[key] = value
	}
	return dup
}

func (scope Scope) Equals(other Scope) bool {
	if len(scope) != len(other) {
		return false
	}
	for key, value := range scope {
		otherValue, ok := other[key]
		if !ok || !value.Equals(otherValue) {
			return false
		}
	}
	return true
}

func (scope Scope) String() string {
	keys := make([]string, 0, len(scope))
	for key := range scope {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	s := "{\n"
	for _, key := range keys {
		s += fmt.Sprintf("\t %v: %v\n", key, scope[key])
	}
	return s + "}"
}

// An Environment is the state of one run: the scope stack (innermost
// last), the procedure table, and the output sink.
//
// An Environment is not safe for concurrent use.
type Environment struct {
	scopes []Scope
	// frames holds the stack depth at which each active reactivation began
	frames []int
	procs  map[string]Procedure
	out    func(string)

	// Trace, when set, receives one line per procedure call
	Trace io.Writer
	depth int
}

func (env *Environment) PushScope() {
	env.scopes = append(env.scopes, make(Scope))
}

func (env *Environment) PopScope() {
	if len(env.scopes) == 0 {
		panic("blocklang: pop of an empty scope stack")
	}
	env.scopes[len(env.scopes)-1] = nil
	env.scopes = env.scopes[:len(env.scopes)-1]
}

// Depth reports how many scopes are live
func (env *Environment) Depth() int {
	return len(env.scopes)
}

func (env *Environment) innermost() Scope {
	return env.scopes[len(env.scopes)-1]
}

// Declare creates or overwrites a binding in the innermost scope
func (env *Environment) Declare(name string, value Value) {
	env.innermost()[name] = value
}

// Assign overwrites the nearest existing binding, looking through every
// scope from innermost to outermost
func (env *Environment) Assign(name string, value Value) error {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if _, ok := env.scopes[i][name]; ok {
			env.scopes[i][name] = value
			return nil
		}
	}
	return &UnboundError{Name: name}
}

// Lookup finds the nearest binding, innermost to outermost
func (env *Environment) Lookup(name string) (Value, error) {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if value, ok := env.scopes[i][name]; ok {
			return value, nil
		}
	}
	return nil, &UnboundError{Name: name}
}

// Export copies a binding of the innermost scope into the scope directly
// enclosing it. Outer bindings of the same name don't count
func (env *Environment) Export(name string) error {
	value, ok := env.innermost()[name]
	if !ok {
		return &UnboundError{Name: name}
	}
	if len(env.scopes) < 2 {
		return &NoEnclosingScopeError{Name: name}
	}
	env.scopes[len(env.scopes)-2][name] = value
	return nil
}

// Snapshot copies the scopes that a block quoted right now would capture:
// those opened since the innermost active reactivation began. At the top
// level nothing is captured
func (env *Environment) Snapshot() []Scope {
	if len(env.frames) == 0 {
		return nil
	}
	base := env.frames[len(env.frames)-1]
	if base >= len(env.scopes) {
		return nil
	}
	snapshot := make([]Scope, 0, len(env.scopes)-base)
	for _, scope := range env.scopes[base:] {
		snapshot = append(snapshot, scope.copy())
	}
	return snapshot
}

// enterSnapshot layers copies of captured scopes over the live stack.
// The returned func restores the exact prior stack and must be called once
func (env *Environment) enterSnapshot(captured []Scope) func() {
	prev := len(env.scopes)
	for _, scope := range captured {
		env.scopes = append(env.scopes, scope.copy())
	}
	return func() { env.exitSnapshot(prev) }
}

func (env *Environment) exitSnapshot(depth int) {
	for i := depth; i < len(env.scopes); i++ {
		env.scopes[i] = nil
	}
	env.scopes = env.scopes[:depth]
}

// reactivate runs a closure body in a fresh scope, over its captured
// scopes if it has any. The caller's stack is left exactly as it was
func (env *Environment) reactivate(closure Closure) (Value, error) {
	base := len(env.scopes)
	env.frames = append(env.frames, base)
	defer func() { env.frames = env.frames[:len(env.frames)-1] }()

	env.PushScope()
	defer env.PopScope()
	if len(closure.scopes) > 0 {
		restore := env.enterSnapshot(closure.scopes)
		defer restore()
	}
	return env.Eval(closure.body)
}

// RegisterProcedure binds name to a user-defined body for the rest of the run
func (env *Environment) RegisterProcedure(name string, body *Node) {
	env.procs[name] = Procedure{name: name, body: body}
}

// RegisterNative binds name to a Go function. Arguments are checked against
// sig before fn runs
func (env *Environment) RegisterNative(name string, sig Signature, fn NativeFunc) {
	env.procs[name] = Procedure{name: name, sig: sig, native: fn}
}

func (env *Environment) Procedure(name string) (Procedure, bool) {
	proc, ok := env.procs[name]
	return proc, ok
}

func (env *Environment) print(s string) {
	env.out(s)
}

func (env *Environment) String() string {
	s := make([]string, len(env.scopes))
	for i, scope := range env.scopes {
		s[i] = scope.String()
	}
	return strings.Join(s, "\n")
}

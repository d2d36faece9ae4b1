package blocklang

// NativeFunc implements a procedure in Go. It receives arguments that have
// already been checked against the procedure's Signature
type NativeFunc func(env *Environment, args []Value) (Value, error)

// A Signature fixes a native procedure's arity and the kind expected at
// each position. KindAny accepts everything. With Rest set, any number of
// further arguments of any kind is accepted
type Signature struct {
	Params []Kind
	Rest   bool
}

func Params(kinds ...Kind) Signature {
	return Signature{Params: kinds}
}

func (sig Signature) check(proc string, args []Value) error {
	if len(args) < len(sig.Params) || (!sig.Rest && len(args) != len(sig.Params)) {
		return &ArityError{Proc: proc, Want: len(sig.Params), Got: len(args)}
	}
	for i, want := range sig.Params {
		if got := args[i].Kind(); want != KindAny && got != want {
			return &TypeError{Proc: proc, Index: i, Want: want, Got: got}
		}
	}
	return nil
}

// A Procedure is an entry of the procedure table: either native, or a
// user-defined body registered by defproc
type Procedure struct {
	name   string
	sig    Signature
	native NativeFunc
	body   *Node
}

func (proc Procedure) Name() string {
	return proc.name
}

func (proc Procedure) IsNative() bool {
	return proc.native != nil
}

// Invoke runs the procedure with evaluated arguments. User-defined
// procedures take no parameters and ignore args
func (proc Procedure) Invoke(env *Environment, args []Value) (Value, error) {
	if proc.native == nil {
		return env.reactivate(Closure{body: proc.body})
	}
	if err := proc.sig.check(proc.name, args); err != nil {
		return nil, err
	}
	return proc.native(env, args)
}

package blocklang

// A note on function naming
// Use doFunction to avoid polluting the Go namespace with e.g.
// print, len, etc.

// Add the builtin procedures to an environment's procedure table
func InjectRuntime(env *Environment) {
	env.RegisterNative("+", Params(KindInt, KindInt), doAdd)
	env.RegisterNative("-", Params(KindInt, KindInt), doSub)
	env.RegisterNative("*", Params(KindInt, KindInt), doMul)
	env.RegisterNative("/", Params(KindInt, KindInt), doDiv)
	env.RegisterNative("%", Params(KindInt, KindInt), doMod)
	env.RegisterNative("<", Params(KindInt, KindInt), doLess)
	env.RegisterNative("=", Params(KindAny, KindAny), doEqual)
	env.RegisterNative("not", Params(KindInt), doNot)
	env.RegisterNative("strcat", Params(KindStr, KindStr), doStrcat)
	env.RegisterNative("to_str", Params(KindAny), doToStr)
	env.RegisterNative("get", Params(KindStr), doGet)
	env.RegisterNative("defset", Params(KindStr, KindAny), doDefset)
	env.RegisterNative("set", Params(KindStr, KindAny), doSet)
	env.RegisterNative("print", Params(KindAny), doPrint)
	env.RegisterNative("seq", Signature{Rest: true}, doSeq)
	env.RegisterNative("for", Params(KindInt, KindStr, KindBlock), doFor)
	env.RegisterNative("if0", Params(KindInt, KindAny, KindAny), doIf0)
	env.RegisterNative("ifn0", Params(KindInt, KindAny, KindAny), doIfn0)
	env.RegisterNative("defproc", Params(KindStr, KindBlock), doDefproc)
	env.RegisterNative("exec", Params(KindBlock), doExec)
	env.RegisterNative("export", Params(KindStr), doExport)
	env.RegisterNative("list", Signature{Rest: true}, doList)
	env.RegisterNative("len", Params(KindList), doLen)
	env.RegisterNative("nth", Params(KindList, KindInt), doNth)
	env.RegisterNative("true", Params(), doTrue)
	env.RegisterNative("false", Params(), doFalse)
}

func ints(args []Value) (int64, int64) {
	return args[0].(IntValue).val, args[1].(IntValue).val
}

func str(arg Value) string {
	return arg.(StringValue).val
}

func boolToInt(b bool) IntValue {
	if b {
		return IntValue{val: 1}
	}
	return IntValue{val: 0}
}

func doAdd(env *Environment, args []Value) (Value, error) {
	a, b := ints(args)
	return IntValue{val: a + b}, nil
}

func doSub(env *Environment, args []Value) (Value, error) {
	a, b := ints(args)
	return IntValue{val: a - b}, nil
}

func doMul(env *Environment, args []Value) (Value, error) {
	a, b := ints(args)
	return IntValue{val: a * b}, nil
}

func doDiv(env *Environment, args []Value) (Value, error) {
	a, b := ints(args)
	if b == 0 {
		return nil, &DivisionByZeroError{Proc: "/"}
	}
	return IntValue{val: a / b}, nil
}

func doMod(env *Environment, args []Value) (Value, error) {
	a, b := ints(args)
	if b == 0 {
		return nil, &DivisionByZeroError{Proc: "%"}
	}
	return IntValue{val: a % b}, nil
}

func doLess(env *Environment, args []Value) (Value, error) {
	a, b := ints(args)
	return boolToInt(a < b), nil
}

func doEqual(env *Environment, args []Value) (Value, error) {
	return boolToInt(args[0].Equals(args[1])), nil
}

func doNot(env *Environment, args []Value) (Value, error) {
	return boolToInt(args[0].(IntValue).val == 0), nil
}

func doStrcat(env *Environment, args []Value) (Value, error) {
	return StringValue{val: str(args[0]) + str(args[1])}, nil
}

func doToStr(env *Environment, args []Value) (Value, error) {
	return StringValue{val: args[0].String()}, nil
}

func doGet(env *Environment, args []Value) (Value, error) {
	return env.Lookup(str(args[0]))
}

func doDefset(env *Environment, args []Value) (Value, error) {
	env.Declare(str(args[0]), args[1])
	return UnitValue{}, nil
}

func doSet(env *Environment, args []Value) (Value, error) {
	if err := env.Assign(str(args[0]), args[1]); err != nil {
		return nil, err
	}
	return UnitValue{}, nil
}

func doPrint(env *Environment, args []Value) (Value, error) {
	env.print(args[0].String())
	return UnitValue{}, nil
}

func doSeq(env *Environment, args []Value) (Value, error) {
	if len(args) == 0 {
		return UnitValue{}, nil
	}
	return args[len(args)-1], nil
}

// The loop variable is declared in the caller's scope, so it is still
// bound once the loop ends
func doFor(env *Environment, args []Value) (Value, error) {
	times := args[0].(IntValue).val
	name := str(args[1])
	body := args[2].(BlockValue).closure
	for i := int64(0); i < times; i++ {
		env.Declare(name, IntValue{val: i})
		if _, err := env.reactivate(body); err != nil {
			return nil, err
		}
	}
	return UnitValue{}, nil
}

// Both branches have already been evaluated by the time if0 runs.
// Quote them and exec the result for lazy branches
func doIf0(env *Environment, args []Value) (Value, error) {
	if args[0].(IntValue).val == 0 {
		return args[1], nil
	}
	return args[2], nil
}

func doIfn0(env *Environment, args []Value) (Value, error) {
	if args[0].(IntValue).val == 0 {
		return args[2], nil
	}
	return args[1], nil
}

func doDefproc(env *Environment, args []Value) (Value, error) {
	env.RegisterProcedure(str(args[0]), args[1].(BlockValue).closure.body)
	return UnitValue{}, nil
}

func doExec(env *Environment, args []Value) (Value, error) {
	return env.reactivate(args[0].(BlockValue).closure)
}

func doExport(env *Environment, args []Value) (Value, error) {
	if err := env.Export(str(args[0])); err != nil {
		return nil, err
	}
	return UnitValue{}, nil
}

func doList(env *Environment, args []Value) (Value, error) {
	return ListVal(args...), nil
}

func doLen(env *Environment, args []Value) (Value, error) {
	return IntValue{val: int64(args[0].(ListValue).Len())}, nil
}

func doNth(env *Environment, args []Value) (Value, error) {
	list := args[0].(ListValue)
	index := args[1].(IntValue).val
	if index < 0 || index >= int64(list.Len()) {
		return nil, &IndexError{Proc: "nth", Index: index, Len: list.Len()}
	}
	return list.At(int(index)), nil
}

func doTrue(env *Environment, args []Value) (Value, error) {
	return BoolValue{val: true}, nil
}

func doFalse(env *Environment, args []Value) (Value, error) {
	return BoolValue{val: false}, nil
}

package blocklang

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func num(n int64) *Node {
	return Leaf(strconv.FormatInt(n, 10))
}

func TestArithmetic(t *testing.T) {
	pairs := [][2]int64{{0, 0}, {3, 4}, {-7, 2}, {7, -2}, {1 << 40, 1 << 30}, {math.MaxInt64, 1}, {math.MinInt64, -1}}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		testEval(t, Call("+", num(a), num(b)), IntVal(a+b))
		testEval(t, Call("-", num(a), num(b)), IntVal(a-b))
		testEval(t, Call("*", num(a), num(b)), IntVal(a*b))
		if b != 0 {
			testEval(t, Call("/", num(a), num(b)), IntVal(a/b))
			testEval(t, Call("%", num(a), num(b)), IntVal(a%b))
		}
	}
	testEval(t, Call("/", Leaf("-7"), Leaf("2")), IntVal(-3))
	testEval(t, Call("%", Leaf("-7"), Leaf("2")), IntVal(-1))
	testEval(t, Call("+", num(math.MaxInt64), Leaf("1")), IntVal(math.MinInt64))
}

func TestDivisionByZero(t *testing.T) {
	testEvalError(t, Call("/", Leaf("1"), Leaf("0")), ErrDivisionByZero)
	testEvalError(t, Call("%", Leaf("1"), Leaf("0")), ErrDivisionByZero)
}

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name   string
		root   *Node
		result Value
	}{
		{"equal ints", Call("=", Leaf("1"), Leaf("1")), IntVal(1)},
		{"equal across kinds", Call("=", Leaf("1"), Text("1")), IntVal(0)},
		{"equal lists", Call("=", Call("list", Leaf("1"), Text("a")), Call("list", Leaf("1"), Text("a"))), IntVal(1)},
		{"equal blocks", Call("=", Quote("+", Leaf("1")), Quote("+", Leaf("1"))), IntVal(1)},
		{"different blocks", Call("=", Quote("+", Leaf("1")), Quote("+", Leaf("2"))), IntVal(0)},
		{"less", Call("<", Leaf("1"), Leaf("2")), IntVal(1)},
		{"not less", Call("<", Leaf("2"), Leaf("2")), IntVal(0)},
		{"not zero", Call("not", Leaf("0")), IntVal(1)},
		{"not nonzero", Call("not", Leaf("5")), IntVal(0)},
		{"strcat", Call("strcat", Text("foo"), Text("bar")), StrVal("foobar")},
		{"to_str int", Call("to_str", Leaf("-5")), StrVal("-5")},
		{"to_str text", Call("to_str", Text("raw")), StrVal("raw")},
		{"to_str list", Call("to_str", Call("list", Leaf("1"), Text("a"), Leaf("true"))), StrVal(`[1, "a", true]`)},
		{"to_str unit", Call("to_str", Call("seq")), StrVal("<unit>")},
		{"to_str block", Call("to_str", Quote("exec")), StrVal("<block exec>")},
		{"get", Call("seq", Call("defset", Text("x"), Leaf("9")), Call("get", Text("x"))), IntVal(9)},
		{"defset returns unit", Call("defset", Text("x"), Leaf("9")), UnitValue{}},
		{"defset overwrites", Call("seq", Call("defset", Text("x"), Leaf("1")), Call("defset", Text("x"), Text("s")), Leaf("x")), StrVal("s")},
		{"set", Call("seq", Call("defset", Text("x"), Leaf("1")), Call("set", Text("x"), Leaf("2")), Leaf("x")), IntVal(2)},
		{"seq empty", Call("seq"), UnitValue{}},
		{"seq last", Call("seq", Leaf("1"), Leaf("2")), IntVal(2)},
		{"if0 zero", Call("if0", Leaf("0"), Text("a"), Text("b")), StrVal("a")},
		{"if0 nonzero", Call("if0", Leaf("3"), Text("a"), Text("b")), StrVal("b")},
		{"ifn0 zero", Call("ifn0", Leaf("0"), Text("a"), Text("b")), StrVal("b")},
		{"ifn0 nonzero", Call("ifn0", Leaf("-1"), Text("a"), Text("b")), StrVal("a")},
		{"exec", Call("exec", Quote("+", Leaf("1"), Leaf("2"))), IntVal(3)},
		{"for returns unit", Call("for", Leaf("2"), Text("i"), Quote("seq")), UnitValue{}},
		{"loop variable persists", Call("seq", Call("for", Leaf("3"), Text("i"), Quote("seq")), Leaf("i")), IntVal(2)},
		{"list", Call("list", Leaf("1"), Leaf("2")), ListVal(IntVal(1), IntVal(2))},
		{"len", Call("len", Call("list", Leaf("1"), Leaf("2"))), IntVal(2)},
		{"nth", Call("nth", Call("list", Text("a"), Text("b")), Leaf("1")), StrVal("b")},
		{"true", Leaf("true"), BoolVal(true)},
		{"false", Call("false"), BoolVal(false)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testEval(t, test.root, test.result)
		})
	}
}

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name string
		root *Node
		kind error
	}{
		{"strcat with int", Call("strcat", Text("a"), Leaf("1")), ErrTypeMismatch},
		{"to_str arity", Call("to_str"), ErrArityMismatch},
		{"get unbound", Call("get", Text("x")), ErrUnboundVariable},
		{"get with int", Call("get", Leaf("1")), ErrTypeMismatch},
		{"set unbound", Call("set", Text("x"), Leaf("1")), ErrUnboundVariable},
		{"for needs a block", Call("for", Leaf("1"), Text("i"), Leaf("1")), ErrTypeMismatch},
		{"if0 needs an int", Call("if0", Text("0"), Leaf("1"), Leaf("2")), ErrTypeMismatch},
		{"exec needs a block", Call("exec", Text("x")), ErrTypeMismatch},
		{"defproc needs a name", Call("defproc", Leaf("1"), Quote("seq")), ErrTypeMismatch},
		{"export unbound", Call("seq", Call("export", Text("x"))), ErrUnboundVariable},
		{"nth out of range", Call("nth", Call("list"), Leaf("0")), ErrIndexOutOfRange},
		{"nth negative", Call("nth", Call("list", Leaf("1")), Leaf("-1")), ErrIndexOutOfRange},
		{"len needs a list", Call("len", Text("abc")), ErrTypeMismatch},
		{"true takes nothing", Call("true", Leaf("1")), ErrArityMismatch},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testEvalError(t, test.root, test.kind)
		})
	}
}

func TestPrint(t *testing.T) {
	value, out, err := run(t, Call("seq",
		Call("print", Leaf("1")),
		Call("print", Text("two")),
		Call("print", Call("list", Text("3")))))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equals(UnitValue{}) {
		t.Fatalf("expected unit, got %v", value)
	}
	if diff := cmp.Diff([]string{"1", "two", `["3"]`}, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%v", diff)
	}
}

func TestForRunsBodyEachIteration(t *testing.T) {
	_, out, err := run(t, Call("for", Leaf("3"), Text("i"), Quote("print", Leaf("i"))))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"0", "1", "2"}, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%v", diff)
	}
	testEvalError(t, Call("seq", Call("for", Leaf("0"), Text("i"), Quote("seq")), Leaf("i")), ErrUnboundVariable)
}

func TestForStopsAtFirstFailure(t *testing.T) {
	_, out, err := run(t, Call("for", Leaf("5"), Text("i"),
		Quote("seq", Call("print", Leaf("i")), Call("/", Leaf("1"), Call("-", Leaf("1"), Leaf("i"))))))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected %v, got: %v", ErrDivisionByZero, err)
	}
	if diff := cmp.Diff([]string{"0", "1"}, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%v", diff)
	}
}

func TestBranchesAreEager(t *testing.T) {
	_, out, err := run(t, Call("if0", Leaf("0"), Call("print", Text("a")), Call("print", Text("b"))))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%v", diff)
	}

	_, out, err = run(t, Call("exec", Call("if0", Leaf("0"), Quote("print", Text("a")), Quote("print", Text("b")))))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a"}, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%v", diff)
	}
}

func TestRegisterNative(t *testing.T) {
	env := NewEnvironment(nil)
	env.RegisterNative("twice", Params(KindStr), func(env *Environment, args []Value) (Value, error) {
		s := args[0].String()
		return StrVal(s + s), nil
	})
	value, err := env.Eval(Call("twice", Text("ab")))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equals(StrVal("abab")) {
		t.Fatalf("expected abab, got %v", value)
	}
	proc, ok := env.Procedure("twice")
	if !ok || !proc.IsNative() || proc.Name() != "twice" {
		t.Fatalf("unexpected procedure entry: %+v", proc)
	}

	// later registration wins
	env.RegisterProcedure("twice", Call("+", Leaf("1"), Leaf("1")))
	value, err = env.Eval(Call("twice", Text("ab")))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equals(IntVal(2)) {
		t.Fatalf("expected 2, got %v", value)
	}
}

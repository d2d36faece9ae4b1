package blocklang

import (
	"strconv"
	"strings"
)

// Kind names the variant of a Value
type Kind int

const (
	KindAny Kind = iota
	KindInt
	KindStr
	KindBool
	KindBlock
	KindList
	KindUnit
)

func (kind Kind) String() string {
	switch kind {
	case KindInt:
		return "int"
	case KindStr:
		return "str"
	case KindBool:
		return "bool"
	case KindBlock:
		return "block"
	case KindList:
		return "list"
	case KindUnit:
		return "unit"
	}
	return "any"
}

// Language value
// ranging from integers and strings to blocks and lists.
// Values are immutable and never share state with each other
type Value interface {
	String() string
	Equals(Value) bool
	Kind() Kind
}

type IntValue struct {
	val int64
}

func IntVal(n int64) IntValue {
	return IntValue{val: n}
}

func (intValue IntValue) Int() int64 {
	return intValue.val
}

func (intValue IntValue) String() string {
	return strconv.FormatInt(intValue.val, 10)
}

func (intValue IntValue) Equals(other Value) bool {
	if otherInt, ok := other.(IntValue); ok {
		return intValue.val == otherInt.val
	}
	return false
}

func (intValue IntValue) Kind() Kind {
	return KindInt
}

type StringValue struct {
	val string
}

func StrVal(s string) StringValue {
	return StringValue{val: s}
}

func (stringValue StringValue) String() string {
	return stringValue.val
}

func (stringValue StringValue) Equals(other Value) bool {
	if otherStr, ok := other.(StringValue); ok {
		return stringValue.val == otherStr.val
	}
	return false
}

func (stringValue StringValue) Kind() Kind {
	return KindStr
}

type BoolValue struct {
	val bool
}

func BoolVal(b bool) BoolValue {
	return BoolValue{val: b}
}

func (boolValue BoolValue) String() string {
	if boolValue.val {
		return "true"
	}
	return "false"
}

func (boolValue BoolValue) Equals(other Value) bool {
	if otherBool, ok := other.(BoolValue); ok {
		return boolValue.val == otherBool.val
	}
	return false
}

func (boolValue BoolValue) Kind() Kind {
	return KindBool
}

// A Closure is a suspended computation plus the scopes that were
// capturable when it was quoted
type Closure struct {
	scopes []Scope
	body   *Node
}

func (closure Closure) Body() *Node {
	return closure.body
}

// Captured reports how many scopes the closure carries
func (closure Closure) Captured() int {
	return len(closure.scopes)
}

func (closure Closure) Equals(other Closure) bool {
	if !closure.body.Equals(other.body) || len(closure.scopes) != len(other.scopes) {
		return false
	}
	for i := range closure.scopes {
		if !closure.scopes[i].Equals(other.scopes[i]) {
			return false
		}
	}
	return true
}

type BlockValue struct {
	closure Closure
}

func (blockValue BlockValue) Closure() Closure {
	return blockValue.closure
}

func (blockValue BlockValue) String() string {
	return "<block " + blockValue.closure.body.Identifier + ">"
}

func (blockValue BlockValue) Equals(other Value) bool {
	if otherBlock, ok := other.(BlockValue); ok {
		return blockValue.closure.Equals(otherBlock.closure)
	}
	return false
}

func (blockValue BlockValue) Kind() Kind {
	return KindBlock
}

type ListValue struct {
	val []Value
}

func ListVal(items ...Value) ListValue {
	val := make([]Value, len(items))
	copy(val, items)
	return ListValue{val: val}
}

func (listValue ListValue) Len() int {
	return len(listValue.val)
}

func (listValue ListValue) At(index int) Value {
	return listValue.val[index]
}

func (listValue ListValue) String() string {
	items := make([]string, len(listValue.val))
	for i, item := range listValue.val {
		if strValue, okStr := item.(StringValue); okStr {
			items[i] = strconv.Quote(strValue.val)
			continue
		}
		items[i] = item.String()
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func (listValue ListValue) Equals(other Value) bool {
	otherList, ok := other.(ListValue)
	if !ok || len(listValue.val) != len(otherList.val) {
		return false
	}
	for i := range listValue.val {
		if !listValue.val[i].Equals(otherList.val[i]) {
			return false
		}
	}
	return true
}

func (listValue ListValue) Kind() Kind {
	return KindList
}

type UnitValue struct{}

func (unitValue UnitValue) String() string {
	return "<unit>"
}

func (unitValue UnitValue) Equals(other Value) bool {
	_, ok := other.(UnitValue)
	return ok
}

func (unitValue UnitValue) Kind() Kind {
	return KindUnit
}

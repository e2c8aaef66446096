package value

import (
	"github.com/goccy/sqlvalue/types"
)

var (
	integerType = IntegerType{baseType{kind: types.Integer}}
	floatType   = FloatType{baseType{kind: types.Float}}
	booleanType = BooleanType{baseType{kind: types.Boolean}}
	textType    = TextType{baseType{kind: types.Text}}
	dateType    = DateType{baseType{kind: types.Date}}
)

var registry = [...]DataType{
	types.Undefined: baseType{kind: types.Undefined},
	types.Integer:   integerType,
	types.Float:     floatType,
	types.Boolean:   booleanType,
	types.Text:      textType,
	types.Date:      dateType,
}

// Lookup returns the DataType for kind. It never returns nil: Undefined and
// unknown kinds get a type whose operations are all unsupported.
func Lookup(kind types.AttributeKind) DataType {
	if kind < 0 || int(kind) >= len(registry) {
		return registry[types.Undefined]
	}
	return registry[kind]
}

// Parse builds a Value of kind from its text form.
func Parse(kind types.AttributeKind, s string) (*Value, error) {
	return Lookup(kind).Parse(s)
}

// Cast converts v to kind.
func Cast(v *Value, kind types.AttributeKind) (*Value, error) {
	return Lookup(v.kind).Cast(v, kind)
}

// arithmeticType selects the DataType that implements an operator for the
// pair: a Date on either side wins, otherwise the left operand decides.
func arithmeticType(left, right *Value) DataType {
	if right.kind == types.Date {
		return Lookup(types.Date)
	}
	return Lookup(left.kind)
}

func Add(left, right *Value) (*Value, error) {
	return arithmeticType(left, right).Add(left, right)
}

func Sub(left, right *Value) (*Value, error) {
	return arithmeticType(left, right).Sub(left, right)
}

func Mul(left, right *Value) (*Value, error) {
	return arithmeticType(left, right).Mul(left, right)
}

func Div(left, right *Value) (*Value, error) {
	return arithmeticType(left, right).Div(left, right)
}

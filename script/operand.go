package script

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/aluflags/alu"
)

// Operand is the Starlark value of a normalized operand.
// str() gives the padded binary digits; .value the unsigned value and
// .width the bit width.
type Operand struct {
	alu.Operand
}

var (
	_ starlark.Value      = Operand{}
	_ starlark.HasAttrs   = Operand{}
	_ starlark.Comparable = Operand{}
)

func (op Operand) Type() string { return "operand" }

func (op Operand) Freeze() {}

func (op Operand) Truth() starlark.Bool {
	return op.Uint64() != 0
}

func (op Operand) Hash() (uint32, error) {
	value := op.Uint64()
	return uint32(value) ^ uint32(value>>32) ^ uint32(op.Width()), nil
}

func (op Operand) Attr(name string) (value starlark.Value, err error) {
	switch name {
	case "value":
		value = starlark.MakeUint64(op.Uint64())
	case "width":
		value = starlark.MakeUint(uint(op.Width()))
	case "bits":
		value = starlark.String(op.String())
	default:
		// A nil value makes Starlark report the missing attribute.
	}

	return
}

func (op Operand) AttrNames() []string {
	return []string{"bits", "value", "width"}
}

func (op Operand) CompareSameType(token syntax.Token, y starlark.Value, depth int) (ok bool, err error) {
	other := y.(Operand)
	switch token {
	case syntax.EQL:
		ok = op.Operand == other.Operand
	case syntax.NEQ:
		ok = op.Operand != other.Operand
	default:
		err = ErrOperandCompare
	}

	return
}

// Package script drives the adder from Starlark programs.
//
// The predeclared environment provides:
//
//	width            the adder bit width
//	binary(text)     normalize binary digits to an operand
//	decimal(text)    normalize a decimal numeral to an operand
//	add(a, b, signed=False)
//	                 add two operands, returning a result struct with
//	                 bits, flags, carry, zero, sign, overflow, unsigned
//	                 and signed (None unless signed) fields
package script

import (
	"fmt"
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/ezrec/aluflags/alu"
)

// Predeclared returns the Starlark environment bound to the adder.
func Predeclared(adder *alu.Alu) starlark.StringDict {
	normalize := func(rep alu.Representation) *starlark.Builtin {
		return starlark.NewBuiltin(rep.String(), func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var text string
			err := starlark.UnpackArgs(fn.Name(), args, kwargs, "text", &text)
			if err != nil {
				return nil, err
			}

			op, err := adder.Normalize(text, rep)
			if err != nil {
				return nil, err
			}

			return Operand{op}, nil
		})
	}

	add := starlark.NewBuiltin("add", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var a, b Operand
		var signed bool
		err := starlark.UnpackArgs(fn.Name(), args, kwargs, "a", &a, "b", &b, "signed?", &signed)
		if err != nil {
			return nil, err
		}

		mode := alu.MODE_UNSIGNED
		if signed {
			mode = alu.MODE_SIGNED
		}

		return resultValue(adder.Add(a.Operand, b.Operand, mode)), nil
	})

	return starlark.StringDict{
		"width":   starlark.MakeUint(uint(adder.Width())),
		"binary":  normalize(alu.REPRESENTATION_BINARY),
		"decimal": normalize(alu.REPRESENTATION_DECIMAL),
		"add":     add,
	}
}

func resultValue(res alu.Result) *starlarkstruct.Struct {
	var signed starlark.Value = starlark.None
	if value, ok := res.SignedValue(); ok {
		signed = starlark.MakeInt64(value)
	}

	return starlarkstruct.FromStringDict(starlark.String("result"), starlark.StringDict{
		"bits":     Operand{res.Bits},
		"flags":    starlark.String(res.Flags.String()),
		"carry":    starlark.Bool(res.Carry),
		"zero":     starlark.Bool(res.Zero),
		"sign":     starlark.Bool(res.Sign),
		"overflow": starlark.Bool(res.Overflow),
		"unsigned": starlark.MakeUint64(res.Unsigned),
		"signed":   signed,
	})
}

// Run executes a Starlark program against the adder. src is as for
// starlark.ExecFileOptions: nil to read filename, or a string, []byte or
// io.Reader. print() output goes to out.
func Run(adder *alu.Alu, filename string, src any, out io.Writer) (err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(out, msg)
		},
	}

	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, Predeclared(adder))
	if err != nil {
		err = &ErrScript{Filename: filename, Err: err}
	}

	return
}

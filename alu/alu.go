// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package alu

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Alu is an adder of a fixed bit width.
type Alu struct {
	Verbose bool           // Set to enable verbose logging.
	Logger  *logrus.Logger // Destination of verbose logging; nil for the standard logger.

	width Width
}

// NewAlu creates an adder for operands of the given width.
func NewAlu(width Width) (alu *Alu, err error) {
	err = width.Validate()
	if err != nil {
		return
	}

	alu = &Alu{
		width: width,
	}

	return
}

// Width returns the operand and result width of the adder.
func (alu *Alu) Width() Width {
	return alu.width
}

func (alu *Alu) logger() *logrus.Logger {
	if alu.Logger != nil {
		return alu.Logger
	}

	return logrus.StandardLogger()
}

// Normalize converts raw operand text to an Operand of the adder width.
func (alu *Alu) Normalize(raw string, rep Representation) (op Operand, err error) {
	op, err = Normalize(raw, rep, alu.width)
	if err != nil && alu.Verbose {
		alu.logger().WithFields(logrus.Fields{
			"text":           raw,
			"representation": rep,
		}).Warn(err)
	}

	return
}

// Add sums two operands of the adder width.
func (alu *Alu) Add(a, b Operand, mode Mode) (res Result) {
	if a.width != alu.width || b.width != alu.width {
		panic(fmt.Sprintf("alu: operand widths (%d, %d) are not %d", a.width, b.width, alu.width))
	}

	if !alu.Verbose {
		return add(a, b, mode, nil)
	}

	entry := alu.logger().WithFields(logrus.Fields{
		"width": alu.width,
		"mode":  mode,
		"a":     a,
		"b":     b,
	})

	res = add(a, b, mode, func(st stage) {
		entry.WithFields(logrus.Fields{
			"bit":       st.Bit,
			"a_bit":     st.A,
			"b_bit":     st.B,
			"carry_in":  st.CarryIn,
			"sum":       st.Sum,
			"carry_out": st.CarryOut,
		}).Debug("ripple")
	})

	entry.WithFields(logrus.Fields{
		"result": res.Bits,
		"flags":  res.Flags,
	}).Info("add")

	return
}

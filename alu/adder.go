package alu

import (
	"fmt"
	"strings"
)

// Mode selects how the Overflow flag and signed value are derived.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_UNSIGNED = Mode(0) // unsigned
	MODE_SIGNED   = Mode(1) // signed
)

// ParseMode converts a mode name to a Mode.
func ParseMode(name string) (mode Mode, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unsigned", "u":
		mode = MODE_UNSIGNED
	case "signed", "s":
		mode = MODE_SIGNED
	default:
		err = ErrMode
	}

	return
}

// Flags are the condition codes of an addition.
type Flags struct {
	Carry    bool // Carry out of the most significant bit.
	Zero     bool // All result bits are zero.
	Sign     bool // Most significant result bit.
	Overflow bool // Signed overflow; always false in unsigned mode.
}

// String returns the flags as 'C=1 Z=0 S=0 O=0'.
func (fl Flags) String() string {
	bit := func(set bool) int {
		if set {
			return 1
		}
		return 0
	}

	return fmt.Sprintf("C=%d Z=%d S=%d O=%d",
		bit(fl.Carry), bit(fl.Zero), bit(fl.Sign), bit(fl.Overflow))
}

// Result of an addition.
type Result struct {
	Mode     Mode    // Mode the result was computed in.
	Bits     Operand // Wrapped sum.
	Flags            // Condition codes.
	Unsigned uint64  // Unsigned value of Bits.
	Signed   int64   // Two's-complement value of Bits; only set in signed mode.
}

// String returns the result bits followed by the flags.
func (res Result) String() string {
	return res.Bits.String() + " " + res.Flags.String()
}

// SignedValue returns the signed value of the result, which is only
// present in signed mode.
func (res Result) SignedValue() (value int64, ok bool) {
	if res.Mode != MODE_SIGNED {
		return
	}

	return res.Signed, true
}

// stage is one full-adder step of the ripple.
type stage struct {
	Bit      uint
	A, B     bool
	CarryIn  bool
	Sum      bool
	CarryOut bool
}

// ripple adds a and b one bit at a time from the least significant bit,
// calling visit (when not nil) after each stage.
func ripple(a, b Operand, visit func(st stage)) (sum uint64, carryIn, carryOut bool) {
	msb := uint(a.width) - 1

	var carry bool
	for n := range uint(a.width) {
		abit, bbit := a.Bit(n), b.Bit(n)
		if n == msb {
			carryIn = carry
		}

		st := stage{Bit: n, A: abit, B: bbit, CarryIn: carry}
		st.Sum = (abit != bbit) != carry
		st.CarryOut = (abit && bbit) || (abit && carry) || (bbit && carry)

		if st.Sum {
			sum |= uint64(1) << n
		}
		carry = st.CarryOut

		if visit != nil {
			visit(st)
		}
	}

	// Carry beyond the most significant bit wraps away.
	carryOut = carry

	return
}

func add(a, b Operand, mode Mode, visit func(st stage)) (res Result) {
	if a.width != b.width {
		panic(fmt.Sprintf("alu: operand widths differ (%d, %d)", a.width, b.width))
	}

	sum, carryIn, carryOut := ripple(a, b, visit)

	width := a.width
	res.Mode = mode
	res.Bits = Operand{width: width, value: sum}
	res.Unsigned = sum
	res.Carry = carryOut
	res.Zero = sum == 0
	res.Sign = res.Bits.Bit(uint(width) - 1)

	if mode == MODE_SIGNED {
		res.Overflow = carryIn != carryOut
		if res.Sign {
			res.Signed = -int64((^sum & width.Mask()) + 1)
		} else {
			res.Signed = int64(sum)
		}
	}

	return
}

// Add sums two operands of the same width, returning the wrapped result
// and its condition codes.
//
// Carry is the carry out of the most significant bit in both modes.
// Overflow is the carry into the most significant bit XOR the carry out
// of it in MODE_SIGNED, and false in MODE_UNSIGNED.
func Add(a, b Operand, mode Mode) Result {
	return add(a, b, mode, nil)
}

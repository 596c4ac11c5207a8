package alu

import (
	"errors"
	"strconv"
	"strings"
)

// Width is the number of bits in operands and results.
type Width uint

const (
	DEFAULT_WIDTH = Width(8)  // Width of a classic 8-bit ALU.
	MAX_WIDTH     = Width(64) // Widest vector an Operand can hold.
)

// Validate checks that the width is in [1, MAX_WIDTH].
func (w Width) Validate() (err error) {
	if w == 0 || w > MAX_WIDTH {
		err = ErrWidth
	}

	return
}

// Mask returns the largest unsigned value representable in the width.
func (w Width) Mask() uint64 {
	if w >= MAX_WIDTH {
		return ^uint64(0)
	}

	return (uint64(1) << w) - 1
}

// Representation is the notation of a raw operand.
type Representation int

//go:generate go tool stringer -linecomment -type=Representation
const (
	REPRESENTATION_BINARY  = Representation(0) // binary
	REPRESENTATION_DECIMAL = Representation(1) // decimal
)

// ParseRepresentation converts a representation name to a Representation.
func ParseRepresentation(name string) (rep Representation, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "binary", "bin", "b":
		rep = REPRESENTATION_BINARY
	case "decimal", "dec", "d":
		rep = REPRESENTATION_DECIMAL
	default:
		err = ErrRepresentation
	}

	return
}

// Operand is a width-bit unsigned bit vector.
// Operands are only produced by Normalize.
type Operand struct {
	width Width
	value uint64
}

// Width of the operand.
func (op Operand) Width() Width {
	return op.width
}

// Uint64 returns the unsigned value of the operand.
func (op Operand) Uint64() uint64 {
	return op.value
}

// Bit returns bit n, counted from the least significant bit at 0.
func (op Operand) Bit(n uint) bool {
	return (op.value>>n)&1 == 1
}

// String returns the zero-padded binary digits, most significant first.
func (op Operand) String() string {
	digits := strconv.FormatUint(op.value, 2)
	if pad := int(op.width) - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	return digits
}

// Normalize converts raw operand text in the given representation to a
// width-bit Operand.
//
// Surrounding white space is ignored. Binary text must contain only '0'
// and '1', and at most width digits; shorter text is zero extended.
// Decimal text must contain only ASCII digits and fit in width bits.
func Normalize(raw string, rep Representation, width Width) (op Operand, err error) {
	err = width.Validate()
	if err != nil {
		return
	}

	text := strings.TrimSpace(raw)

	var value uint64
	switch rep {
	case REPRESENTATION_BINARY:
		value, err = parseBinary(text, width)
	case REPRESENTATION_DECIMAL:
		value, err = parseDecimal(text, width)
	default:
		err = ErrRepresentation
	}

	if err != nil {
		err = &ErrOperand{Text: raw, Representation: rep, Err: err}
		return
	}

	op = Operand{width: width, value: value}

	return
}

func parseBinary(text string, width Width) (value uint64, err error) {
	if len(text) == 0 {
		err = ErrEmptyOperand
		return
	}

	for _, ch := range text {
		if ch != '0' && ch != '1' {
			err = ErrInvalidNumeral
			return
		}
	}

	// Over-long input is rejected; dropping bits would change magnitude.
	if len(text) > int(width) {
		err = ErrTooLong
		return
	}

	for _, ch := range text {
		value = (value << 1) | uint64(ch-'0')
	}

	return
}

func parseDecimal(text string, width Width) (value uint64, err error) {
	if len(text) == 0 {
		err = ErrEmptyOperand
		return
	}

	for _, ch := range text {
		if ch < '0' || ch > '9' {
			err = ErrInvalidNumeral
			return
		}
	}

	value, err = strconv.ParseUint(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrOutOfRange
		} else {
			err = ErrInvalidNumeral
		}
		value = 0
		return
	}

	if value > width.Mask() {
		err = ErrOutOfRange
		value = 0
	}

	return
}

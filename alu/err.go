package alu

import (
	"errors"

	"github.com/ezrec/aluflags/translate"
)

var f = translate.From

var (
	// Normalization errors
	ErrEmptyOperand   = errors.New(f("empty operand"))
	ErrInvalidNumeral = errors.New(f("invalid numeral"))
	ErrOutOfRange     = errors.New(f("out of range"))
	ErrTooLong        = errors.New(f("too long"))

	// Configuration errors
	ErrWidth          = errors.New(f("width invalid"))
	ErrRepresentation = errors.New(f("representation invalid"))
	ErrMode           = errors.New(f("mode invalid"))
)

// ErrOperand reports the operand text that failed normalization.
type ErrOperand struct {
	Text           string
	Representation Representation
	Err            error
}

func (err *ErrOperand) Error() string {
	return f("%v operand '%v' %v", err.Representation, err.Text, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

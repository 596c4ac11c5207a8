package script

import (
	"errors"

	"github.com/ezrec/aluflags/translate"
)

var f = translate.From

var (
	// Operand value errors
	ErrOperandCompare = errors.New(f("operands only compare for equality"))
)

// ErrScript indicates the script that failed.
type ErrScript struct {
	Filename string
	Err      error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

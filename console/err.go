package console

import (
	"errors"

	"github.com/ezrec/aluflags/translate"
)

var f = translate.From

var (
	// Command errors
	ErrCommandUnknown   = errors.New(f("command unknown"))
	ErrCommandAmbiguous = errors.New(f("command ambiguous"))
	ErrArguments        = errors.New(f("wrong number of arguments"))
)

// ErrCommand indicates the command line that failed.
type ErrCommand struct {
	Line string
	Err  error
}

func (err *ErrCommand) Error() string {
	return f("'%v' %v", err.Line, err.Err)
}

func (err *ErrCommand) Unwrap() error {
	return err.Err
}

package console

import (
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// PROMPT is shown before each console line.
const PROMPT = "aluflags> "

// Run reads and executes commands from the terminal until 'quit',
// end of input, or Ctrl-C.
func (con *Console) Run() (err error) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(Complete)

	for {
		var command string
		command, err = line.Prompt(PROMPT)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			logrus.WithError(err).Error("console: error reading line")
			return
		}

		if strings.TrimSpace(command) != "" {
			line.AppendHistory(command)
		}

		quit, cerr := con.Execute(command)
		if cerr != nil {
			con.print(FormatError(cerr))
		}
		if quit {
			return
		}
	}
}

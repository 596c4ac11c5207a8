// Package console is the interactive front end of the adder.
package console

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/aluflags/alu"
)

type cmd struct {
	Name    string // Command name.
	Min     int    // Minimum abbreviation length.
	Args    string // Argument synopsis.
	Help    string // One line description.
	Process func(con *Console, args []string) (quit bool, err error)
}

var cmdList []cmd

func init() {
	cmdList = []cmd{
		{Name: "add", Min: 1, Args: "<a> <b> [signed|unsigned]", Help: "add two operands", Process: (*Console).cmdAdd},
		{Name: "mode", Min: 1, Args: "[signed|unsigned]", Help: "show or set the default mode", Process: (*Console).cmdMode},
		{Name: "width", Min: 1, Help: "show the operand width", Process: (*Console).cmdWidth},
		{Name: "help", Min: 1, Help: "show this help", Process: (*Console).cmdHelp},
		{Name: "quit", Min: 1, Help: "leave the console", Process: (*Console).cmdQuit},
		{Name: "exit", Min: 2, Help: "leave the console", Process: (*Console).cmdQuit},
	}
}

// Console executes adder commands, writing results to Output.
type Console struct {
	Alu    *alu.Alu  // Adder used by all commands.
	Output io.Writer // Destination of command output.
	Mode   alu.Mode  // Mode used when 'add' is given none.
}

// NewConsole creates a console for the adder, writing to output.
func NewConsole(adder *alu.Alu, output io.Writer) (con *Console) {
	con = &Console{
		Alu:    adder,
		Output: output,
		Mode:   alu.MODE_UNSIGNED,
	}

	return
}

func (con *Console) print(text string) {
	_, _ = io.WriteString(con.Output, text)
}

// matchList returns the commands that word abbreviates.
func matchList(word string) (match []cmd) {
	if word == "" {
		return
	}

	for _, c := range cmdList {
		if len(word) >= c.Min && strings.HasPrefix(c.Name, word) {
			match = append(match, c)
		}
	}

	return
}

// Execute runs one command line. Blank lines and '#' comments are ignored.
func (con *Console) Execute(line string) (quit bool, err error) {
	if n := strings.IndexByte(line, '#'); n >= 0 {
		line = line[:n]
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	defer func() {
		if err != nil {
			err = &ErrCommand{Line: strings.TrimSpace(line), Err: err}
		}
	}()

	match := matchList(strings.ToLower(words[0]))
	switch len(match) {
	case 0:
		err = ErrCommandUnknown
		return
	case 1:
	default:
		err = ErrCommandAmbiguous
		return
	}

	return match[0].Process(con, words[1:])
}

// Complete returns the command names that complete line.
func Complete(line string) (matches []string) {
	if strings.ContainsAny(line, " \t") {
		words := strings.Fields(line)
		if len(words) >= 1 && strings.HasPrefix("mode", strings.ToLower(words[0])) {
			return completeMode(line)
		}
		return
	}

	for _, c := range cmdList {
		if strings.HasPrefix(c.Name, strings.ToLower(line)) {
			matches = append(matches, c.Name)
		}
	}
	slices.Sort(matches)

	return
}

func completeMode(line string) (matches []string) {
	n := strings.LastIndexAny(line, " \t")
	leading, word := line[:n+1], strings.ToLower(line[n+1:])
	for _, mode := range []alu.Mode{alu.MODE_SIGNED, alu.MODE_UNSIGNED} {
		if strings.HasPrefix(mode.String(), word) {
			matches = append(matches, leading+mode.String())
		}
	}

	return
}

func (con *Console) cmdAdd(args []string) (quit bool, err error) {
	if len(args) < 2 || len(args) > 3 {
		err = ErrArguments
		return
	}

	mode := con.Mode
	if len(args) == 3 {
		mode, err = alu.ParseMode(args[2])
		if err != nil {
			return
		}
	}

	var ops [2]alu.Operand
	for n := range ops {
		raw, rep := ParseOperand(args[n])
		ops[n], err = con.Alu.Normalize(raw, rep)
		if err != nil {
			return
		}
	}

	con.print(Format(con.Alu.Add(ops[0], ops[1], mode)))

	return
}

func (con *Console) cmdMode(args []string) (quit bool, err error) {
	switch len(args) {
	case 0:
	case 1:
		var mode alu.Mode
		mode, err = alu.ParseMode(args[0])
		if err != nil {
			return
		}
		con.Mode = mode
	default:
		err = ErrArguments
		return
	}

	con.print(f("mode %v", con.Mode) + "\n")

	return
}

func (con *Console) cmdWidth(args []string) (quit bool, err error) {
	if len(args) != 0 {
		err = ErrArguments
		return
	}

	con.print(f("width %v", strconv.FormatUint(uint64(con.Alu.Width()), 10)) + "\n")

	return
}

func (con *Console) cmdHelp(args []string) (quit bool, err error) {
	for _, c := range cmdList {
		con.print(f("%-6v %-28v %v", c.Name, c.Args, f(c.Help)) + "\n")
	}
	con.print(f("operands: 0b0101 or b:0101 are binary, 42 or d:42 are decimal") + "\n")

	return
}

func (con *Console) cmdQuit(args []string) (quit bool, err error) {
	quit = true

	return
}

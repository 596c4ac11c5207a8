package console

import (
	"strconv"
	"strings"

	"github.com/ezrec/aluflags/alu"
)

// ParseOperand splits an operand token into its text and representation.
// Tokens written '0b0101' or 'b:0101' are binary, 'd:42' or plain digits
// are decimal.
func ParseOperand(token string) (raw string, rep alu.Representation) {
	lower := strings.ToLower(token)
	switch {
	case strings.HasPrefix(lower, "0b"):
		raw, rep = token[2:], alu.REPRESENTATION_BINARY
	case strings.HasPrefix(lower, "b:"):
		raw, rep = token[2:], alu.REPRESENTATION_BINARY
	case strings.HasPrefix(lower, "d:"):
		raw, rep = token[2:], alu.REPRESENTATION_DECIMAL
	default:
		raw, rep = token, alu.REPRESENTATION_DECIMAL
	}

	return
}

// Format renders a result, one item per line. The signed value is only
// shown for signed results.
func Format(res alu.Result) (text string) {
	// Numbers are formatted before translation so they are never
	// regrouped by the locale.
	text += f("result   %v", res.Bits.String()) + "\n"
	text += f("flags    %v", res.Flags.String()) + "\n"
	text += f("unsigned %v", strconv.FormatUint(res.Unsigned, 10)) + "\n"
	if signed, ok := res.SignedValue(); ok {
		text += f("signed   %v", strconv.FormatInt(signed, 10)) + "\n"
	}

	return
}

// FormatError renders an error for the user.
func FormatError(err error) string {
	return f("error: %v", err) + "\n"
}

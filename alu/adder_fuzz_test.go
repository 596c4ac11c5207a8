package alu

import (
	"math/bits"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzAdd(f *testing.F) {
	for _, width := range []uint8{1, 7, 8, 16, 32, 63, 64} {
		f.Add(width, uint64(0), uint64(0), false)
		f.Add(width, ^uint64(0), uint64(1), true)
		f.Add(width, uint64(0x7fffffffffffffff), uint64(1), true)
	}

	f.Fuzz(func(t *testing.T, width uint8, a uint64, b uint64, signed bool) {
		assert := assert.New(t)

		w := Width(width%64) + 1
		mask := w.Mask()

		opa, err := Normalize(strconv.FormatUint(a&mask, 10), REPRESENTATION_DECIMAL, w)
		assert.NoError(err)
		opb, err := Normalize(strconv.FormatUint(b&mask, 2), REPRESENTATION_BINARY, w)
		assert.NoError(err)

		mode := MODE_UNSIGNED
		if signed {
			mode = MODE_SIGNED
		}

		res := Add(opa, opb, mode)

		// Reference via the hardware adder.
		sum, carry := bits.Add64(a&mask, b&mask, 0)
		if w < 64 {
			carry = (sum >> w) & 1
			sum &= mask
		}

		msb := uint64(1) << (w - 1)
		overflow := signed && ((a&mask)&msb) == ((b&mask)&msb) && (sum&msb) != ((a&mask)&msb)

		assert.Equal(sum, res.Unsigned)
		assert.Equal(carry == 1, res.Carry)
		assert.Equal(sum == 0, res.Zero)
		assert.Equal(sum&msb != 0, res.Sign)
		assert.Equal(overflow, res.Overflow)

		if signed {
			shift := 64 - uint(w)
			assert.Equal(int64(sum<<shift)>>shift, res.Signed)
		} else {
			assert.Equal(int64(0), res.Signed)
		}
	})
}

func FuzzNormalize(f *testing.F) {
	f.Add("0", uint8(8), true)
	f.Add("256", uint8(8), false)
	f.Add("101010101", uint8(8), true)
	f.Add("", uint8(8), false)

	f.Fuzz(func(t *testing.T, raw string, width uint8, binary bool) {
		assert := assert.New(t)

		w := Width(width%64) + 1
		rep := REPRESENTATION_DECIMAL
		if binary {
			rep = REPRESENTATION_BINARY
		}

		op, err := Normalize(raw, rep, w)
		if err != nil {
			assert.Equal(Operand{}, op)
			return
		}

		assert.Equal(w, op.Width())
		assert.LessOrEqual(op.Uint64(), w.Mask())
		assert.Equal(int(w), len(op.String()))

		again, err := Normalize(op.String(), REPRESENTATION_BINARY, w)
		assert.NoError(err)
		assert.Equal(op, again)
	})
}

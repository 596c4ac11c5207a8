// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package alu

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewAlu(t *testing.T) {
	assert := assert.New(t)

	alu, err := NewAlu(DEFAULT_WIDTH)
	assert.NoError(err)
	assert.False(alu.Verbose)
	assert.Equal(Width(8), alu.Width())

	alu, err = NewAlu(0)
	assert.ErrorIs(err, ErrWidth)
	assert.Nil(alu)

	_, err = NewAlu(MAX_WIDTH + 1)
	assert.ErrorIs(err, ErrWidth)
}

func TestAlu_Add(t *testing.T) {
	assert := assert.New(t)

	alu, err := NewAlu(8)
	assert.NoError(err)

	a, err := alu.Normalize("100", REPRESENTATION_DECIMAL)
	assert.NoError(err)
	b, err := alu.Normalize("110010", REPRESENTATION_BINARY)
	assert.NoError(err)

	res := alu.Add(a, b, MODE_SIGNED)
	assert.Equal(Add(a, b, MODE_SIGNED), res)
	assert.Equal("10010110", res.Bits.String())
	assert.True(res.Overflow)

	narrow, err := Normalize("1", REPRESENTATION_BINARY, 4)
	assert.NoError(err)
	assert.Panics(func() { alu.Add(narrow, narrow, MODE_SIGNED) })
}

func TestAlu_Verbose(t *testing.T) {
	assert := assert.New(t)

	buffer := &bytes.Buffer{}
	logger := logrus.New()
	logger.Out = buffer
	logger.Level = logrus.DebugLevel
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true}

	alu, err := NewAlu(4)
	assert.NoError(err)
	alu.Verbose = true
	alu.Logger = logger

	a, err := alu.Normalize("0111", REPRESENTATION_BINARY)
	assert.NoError(err)
	b, err := alu.Normalize("1", REPRESENTATION_DECIMAL)
	assert.NoError(err)

	res := alu.Add(a, b, MODE_SIGNED)
	assert.Equal("1000", res.Bits.String())

	text := buffer.String()
	assert.Equal(4, bytes.Count(buffer.Bytes(), []byte("msg=ripple")))
	assert.Contains(text, "msg=add")
	assert.Contains(text, "result=1000")
	assert.Contains(text, "mode=signed")

	buffer.Reset()
	_, err = alu.Normalize("16", REPRESENTATION_DECIMAL)
	assert.ErrorIs(err, ErrOutOfRange)
	assert.Contains(buffer.String(), "level=warning")
}

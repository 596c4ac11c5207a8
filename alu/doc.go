// Package alu implements a fixed-width adder that reports processor
// condition codes.
//
// Operands are normalized from binary digit strings or decimal numerals
// into width-bit vectors, and added with a ripple-carry adder that derives
// the Carry, Zero, Sign and Overflow flags the way a two's-complement ALU
// does. The Overflow flag and the signed interpretation of the result
// depend on the Mode supplied to each addition; the bit width is fixed when
// the Alu is created.
package alu

/*
 * i8080cpm - Precomputed Sign/Zero/Parity flag table.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package flags holds the 8080 PSW bit layout and a precomputed
// Sign/Zero/Parity table indexed by result byte.
package flags

// Bit positions within the 8080 flag byte. Bit 1 is always set and bits
// 3 and 5 are always clear; Sign/Zero/Parity/Carry/Auxiliary are the
// only bits software can rely on.
const (
	Carry     uint8 = 0x01
	Reserved1 uint8 = 0x02 // always 1
	Parity    uint8 = 0x04
	Auxiliary uint8 = 0x10
	Zero      uint8 = 0x40
	Sign      uint8 = 0x80

	// FixedBits is ORed into every computed flag byte: bit 1 set, bits 3/5 clear.
	FixedBits = Reserved1
)

// SZP holds the combined Sign|Zero|Parity bits for each possible byte
// result. Auxiliary and Carry are never included here since they depend
// on the operands, not just the result.
var SZP [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		var f uint8
		if i&0x80 != 0 {
			f |= Sign
		}
		if i == 0 {
			f |= Zero
		}

		j, ones := uint8(i), 0
		for k := 0; k < 8; k++ {
			ones += int(j & 1)
			j >>= 1
		}
		if ones%2 == 0 {
			f |= Parity
		}

		SZP[i] = f
	}
}

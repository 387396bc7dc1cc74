/*
 * i8080cpm - Convert hex to strings.
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

// Package hexfmt formats bytes, 16-bit addresses, and small memory
// dumps for the machine's diagnostic trace output.
package hexfmt

import "strings"

var hexMap = "0123456789ABCDEF"

// FormatByte appends the two hex digits of data.
func FormatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[(data>>4)&0xf])
	str.WriteByte(hexMap[data&0xf])
}

// FormatDigit appends a single hex digit, the low nibble of data.
func FormatDigit(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[data&0xf])
}

// FormatAddr appends the four hex digits of a 16-bit guest address.
func FormatAddr(str *strings.Builder, addr uint16) {
	str.WriteByte(hexMap[(addr>>12)&0xf])
	str.WriteByte(hexMap[(addr>>8)&0xf])
	str.WriteByte(hexMap[(addr>>4)&0xf])
	str.WriteByte(hexMap[addr&0xf])
}

// FormatBytes appends each byte of data as two hex digits, optionally
// space-separated.
func FormatBytes(str *strings.Builder, space bool, data []byte) {
	for i, by := range data {
		if space && i > 0 {
			str.WriteByte(' ')
		}
		FormatByte(str, by)
	}
}

// FormatDecimal appends num in decimal, 0-255.
func FormatDecimal(str *strings.Builder, num byte) {
	if num >= 100 {
		str.WriteByte(hexMap[num/100])
		num %= 100
		str.WriteByte(hexMap[num/10])
		num %= 10
	}
	if num >= 10 {
		str.WriteByte(hexMap[num/10])
		num %= 10
	}
	str.WriteByte(hexMap[num])
}

// Dump renders a hex+ASCII memory dump of data, which is assumed to
// start at addr, 16 bytes per line.
func Dump(addr uint16, data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		line := data[off:end]

		FormatAddr(&b, addr+uint16(off))
		b.WriteString("  ")
		FormatBytes(&b, true, line)
		for pad := len(line); pad < 16; pad++ {
			b.WriteString("   ")
		}
		b.WriteString("  ")
		for _, by := range line {
			if by >= 0x20 && by < 0x7f {
				b.WriteByte(by)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

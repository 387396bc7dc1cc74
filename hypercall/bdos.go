/*
 * i8080cpm - BDOS hypercall table.
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

package hypercall

import (
	"github.com/rcornwell/i8080cpm/cpu"
	"github.com/rcornwell/i8080cpm/util/debug"
)

// BDOS services the function selected by register C, the BDOS table
// selected by an IN imm8 trap. Unlike BIOS, an unrecognised function
// is not fatal: it redirects the guest to the native BDOS entry point
// so the guest's own BDOS image handles it.
func (s *Shim) BDOS(c *cpu.CPU) error {
	debug.Tracef(debug.MaskHypercall, s.TraceMask, "BDOS fn=%d pc=%04x", c.C, c.PC())
	switch c.C {
	case 1: // C_READ
		b, err := s.Console.ReadBlocking()
		if err != nil {
			return err
		}
		if b == 0x7f {
			b = 0x08
		}
		c.SetA(b)
		c.SetHL((c.HL() &^ 0xff) | uint16(b))
		return s.Console.Write(b)
	case 2: // C_WRITE
		return s.Console.Write(c.E)
	case 6: // C_RAWIO
		if c.E == 0xff {
			if !s.Console.Poll() {
				c.SetA(0)
				c.SetHL(c.HL() &^ 0xff)
				return nil
			}
			b, err := s.Console.ReadBlocking()
			if err != nil {
				return err
			}
			c.SetA(b)
			c.SetHL((c.HL() &^ 0xff) | uint16(b))
			return nil
		}
		return s.Console.Write(c.E)
	case 9: // C_WRITESTR
		addr := uint16(c.D)<<8 | uint16(c.E)
		for {
			b := c.PeekByte(addr)
			if b == '$' {
				return nil
			}
			if err := s.Console.Write(b); err != nil {
				return err
			}
			addr++
		}
	default:
		c.SetPC(s.bdosEntry())
		return nil
	}
}

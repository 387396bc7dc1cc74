/*
 * i8080cpm - CPU: main instruction fetch and execute.
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

// Package cpu implements the Intel 8080 instruction set against a
// banked 64KiB address space, plus the two hypercall trap opcodes
// (OUT/IN) CP/M firmware uses to reach host BIOS/BDOS services.
package cpu

import (
	"fmt"

	"github.com/rcornwell/i8080cpm/flags"
	"github.com/rcornwell/i8080cpm/memory"
)

// Hypervisor is implemented by whatever owns the console and disk
// images; CPU calls into it when it decodes the OUT/IN trap opcodes.
// Defined here, rather than in package hypercall, so cpu never needs
// to import its own caller.
type Hypervisor interface {
	BIOS(fn uint8, c *CPU) error
	BDOS(c *CPU) error
}

// Fault reports a condition that ends execution: an undefined opcode or
// an out-of-range hypercall function, and also HLT (Reason "halted")
// and a Step on an already-halted CPU (Reason "cpu halted"). The first
// two are fatal per spec.md; this
// is the Go-native rendering of "fatal" as a returned error rather than
// a panic, so an embedder can decide what to do next.
type Fault struct {
	Opcode uint8
	PC     uint16
	Reason string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("cpu: %s (opcode %#02x at PC %#04x)", f.Reason, f.Opcode, f.PC)
}

// CPU holds the full 8080 register file, flag byte, and the banked
// memory and hypervisor it operates against.
type CPU struct {
	A, B, C, D, E, H, L uint8
	F                   uint8
	SPH, SPL            uint8
	PCH, PCL, PCHa      uint8

	Halted bool

	mem *memory.Memory
	hv  Hypervisor

	opcode, b2, b3 uint8
}

// New returns a CPU wired to the given memory and hypervisor, with all
// registers zeroed (F holds only its fixed bit 1), matching the state
// the BIOS WBOOT handler resets to between warm boots. The memory's
// bank selector is left as it is.
func New(mem *memory.Memory, hv Hypervisor) *CPU {
	return &CPU{mem: mem, hv: hv, F: flags.FixedBits}
}

// Reset zeroes every register and flag, the same clean slate BIOS
// function 1 (WBOOT) produces.
func (c *CPU) Reset() {
	*c = CPU{mem: c.mem, hv: c.hv, F: flags.FixedBits}
}

// Memory returns the CPU's banked address space, for collaborators
// (the hypercall shim) that need to move whole sectors or images.
func (c *CPU) Memory() *memory.Memory {
	return c.mem
}

// PeekByte and PokeByte give the hypercall shim bank-transparent access
// to guest memory without reaching into CPU internals.
func (c *CPU) PeekByte(addr uint16) uint8    { return c.mem.Read(addr) }
func (c *CPU) PokeByte(addr uint16, v uint8) { c.mem.Write(addr, v) }

// Register pair accessors.
func (c *CPU) BC() uint16 { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) DE() uint16 { return uint16(c.D)<<8 | uint16(c.E) }
func (c *CPU) HL() uint16 { return uint16(c.H)<<8 | uint16(c.L) }
func (c *CPU) SP() uint16 { return uint16(c.SPH)<<8 | uint16(c.SPL) }
func (c *CPU) PC() uint16 { return uint16(c.PCH)<<8 | uint16(c.PCL) }

func (c *CPU) SetBC(v uint16) { c.B, c.C = byte(v>>8), byte(v) }
func (c *CPU) SetDE(v uint16) { c.D, c.E = byte(v>>8), byte(v) }
func (c *CPU) SetHL(v uint16) { c.H, c.L = byte(v>>8), byte(v) }
func (c *CPU) SetSP(v uint16) { c.SPH, c.SPL = byte(v>>8), byte(v) }

// GetA returns the accumulator; SetA sets it. Exported for the hypercall
// shim, which reports BIOS/BDOS results through A the way real CP/M
// firmware does.
func (c *CPU) GetA() uint8  { return c.A }
func (c *CPU) SetA(v uint8) { c.A = v }

// SetPC jumps to an absolute guest address, recomputing the adjusted
// PC high byte and switching banks exactly as every jump/call/return
// instruction must.
func (c *CPU) SetPC(addr uint16) {
	c.PCH = byte(addr >> 8)
	c.PCL = byte(addr)
	c.PCHa = c.PCH & 0x3f
	c.mem.SetBank(c.PCH >> 6)
}

// advancePC increments PC by one byte, handling the bank-boundary
// crossing the same way instruction fetch in the firmware this was
// ported from does: only recompute curbank when the adjusted high byte
// wraps past its 6-bit range.
func (c *CPU) advancePC() {
	c.PCL++
	if c.PCL == 0 {
		c.PCH++
		c.PCHa++
		if c.PCHa == 0x40 {
			c.PCHa = 0
			c.mem.SetBank(c.PCH >> 6)
		}
	}
}

func (c *CPU) fetchNext() uint8 {
	b := c.mem.FetchByte(uint16(c.PCHa)<<8 | uint16(c.PCL))
	c.advancePC()
	return b
}

// getFlag/setFlag read and write individual PSW bits.
func (c *CPU) getFlag(mask uint8) bool { return c.F&mask != 0 }

func (c *CPU) setFlag(mask uint8, v bool) {
	if v {
		c.F |= mask
	} else {
		c.F &^= mask
	}
	c.F = (c.F &^ (0x08 | 0x20)) | flags.FixedBits
}

// setSZP applies the precomputed Sign/Zero/Parity bits for a result
// byte, leaving Auxiliary and Carry untouched.
func (c *CPU) setSZP(result uint8) {
	c.F = (c.F &^ (flags.Sign | flags.Zero | flags.Parity)) | flags.SZP[result]
	c.F = (c.F &^ (0x08 | 0x20)) | flags.FixedBits
}

// instrLen gives the total instruction length (opcode + operand bytes)
// for every opcode, grounded on the addressing-mode classification in
// the tablegen.c this firmware's opcode table was generated from.
var instrLen [256]uint8

func init() {
	for i := range instrLen {
		instrLen[i] = 1
	}
	// MVI r,d8 / ACI / ADI / SUI / SBI / ANI / XRI / ORI / CPI / OUT / IN
	twoByte := []uint8{
		0x06, 0x0e, 0x16, 0x1e, 0x26, 0x2e, 0x36, 0x3e,
		0xc6, 0xce, 0xd6, 0xde, 0xe6, 0xee, 0xf6, 0xfe,
		0xd3, 0xdb,
	}
	for _, op := range twoByte {
		instrLen[op] = 2
	}
	// LXI / SHLD / LHLD / STA / LDA / JMP / JCond / CALL / CCond
	threeByte := []uint8{
		0x01, 0x11, 0x21, 0x31,
		0x22, 0x2a, 0x32, 0x3a,
		0xc3, 0xc2, 0xca, 0xd2, 0xda, 0xe2, 0xea, 0xf2, 0xfa,
		0xcd, 0xc4, 0xcc, 0xd4, 0xdc, 0xe4, 0xec, 0xf4, 0xfc,
	}
	for _, op := range threeByte {
		instrLen[op] = 3
	}
}

// undefined is the set of opcodes this 8080 variant never assigned a
// meaning to; executing one is a fatal condition per spec.md.
var undefined = map[uint8]bool{
	0x08: true, 0x10: true, 0x18: true, 0x20: true, 0x28: true, 0x30: true, 0x38: true,
	0xcb: true, 0xd9: true, 0xdd: true, 0xed: true, 0xfd: true,
}

// Step fetches and executes a single instruction. It returns a non-nil
// error on HLT (after setting Halted), an undefined opcode, or a fault
// raised by the hypervisor.
func (c *CPU) Step() error {
	if c.Halted {
		return &Fault{PC: c.PC(), Reason: "cpu halted"}
	}

	startPC := c.PC()
	c.opcode = c.fetchNext()

	if undefined[c.opcode] {
		c.Halted = true
		return &Fault{Opcode: c.opcode, PC: startPC, Reason: "undefined opcode"}
	}

	switch instrLen[c.opcode] {
	case 3:
		c.b2 = c.fetchNext()
		c.b3 = c.fetchNext()
	case 2:
		c.b2 = c.fetchNext()
	}

	return opTable[c.opcode](c)
}

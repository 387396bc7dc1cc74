/*
 * i8080cpm - Low level banked memory
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

// Package memory implements the guest's 64KiB address space as four
// 16KiB banks, selected by the top two bits of the high address byte,
// matching the memory model of the Atari 8080 firmware this emulator
// descends from.
package memory

const (
	// BankCount is the number of 16KiB banks composing the 64KiB space.
	BankCount = 4
	// BankSize is the size in bytes of a single bank.
	BankSize = 16 * 1024
)

// Memory is the guest's banked address space plus the currently
// selected bank, mirroring the "curbank" global of the firmware this
// was ported from.
type Memory struct {
	banks [BankCount][BankSize]byte
	bank  uint8
}

// New returns a zeroed 64KiB banked memory with bank 0 selected.
func New() *Memory {
	return &Memory{}
}

// Bank returns the currently selected bank (0-3).
func (m *Memory) Bank() uint8 {
	return m.bank
}

// SetBank selects which of the four banks FetchByte reads from. Read
// and Write do not use it: they take the bank from the address.
func (m *Memory) SetBank(bank uint8) {
	m.bank = bank & 0x03
}

// Read returns the byte at the given 16-bit guest address. It selects
// the bank implied by the address's top two bits for the duration of
// the access and restores the previously selected bank afterward, so a
// data access never perturbs the bank the instruction fetcher expects.
func (m *Memory) Read(addr uint16) byte {
	saved := m.bank
	bank := uint8(addr >> 14)
	val := m.banks[bank][addr&0x3fff]
	m.bank = saved
	return val
}

// Write stores a byte at the given 16-bit guest address, preserving the
// current bank exactly as Read does.
func (m *Memory) Write(addr uint16, val byte) {
	saved := m.bank
	bank := uint8(addr >> 14)
	m.banks[bank][addr&0x3fff] = val
	m.bank = saved
}

// FetchByte returns the byte at the given 14-bit offset within the
// currently selected bank. Used only by the instruction fetcher, which
// maintains its own adjusted PC high byte and bank selector rather than
// recomputing them on every byte the way Read/Write do.
func (m *Memory) FetchByte(offset uint16) byte {
	return m.banks[m.bank][offset&0x3fff]
}

// LoadImage copies data into guest memory starting at addr, crossing
// bank boundaries as needed. Used to install the firmware, CCP and
// BDOS images at startup and on BIOS BOOT/WBOOT calls.
func (m *Memory) LoadImage(addr uint16, data []byte) {
	for i, b := range data {
		m.Write(addr+uint16(i), b)
	}
}

// ReadBlock copies n bytes starting at addr into a new slice, crossing
// bank boundaries as needed. Used by the hypercall shim to move whole
// 128-byte CP/M sectors to and from a disk image.
func (m *Memory) ReadBlock(addr uint16, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = m.Read(addr + uint16(i))
	}
	return out
}

// WriteBlock is the inverse of ReadBlock.
func (m *Memory) WriteBlock(addr uint16, data []byte) {
	for i, b := range data {
		m.Write(addr+uint16(i), b)
	}
}

/*
 * i8080cpm - BIOS hypercall table.
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
	"fmt"

	"github.com/rcornwell/i8080cpm/cpu"
	"github.com/rcornwell/i8080cpm/util/debug"
)

// BIOS services the function numbered fn, the BIOS table selected by
// an OUT imm8 trap.
func (s *Shim) BIOS(fn uint8, c *cpu.CPU) error {
	debug.Tracef(debug.MaskHypercall, s.TraceMask, "BIOS fn=%d pc=%04x", fn, c.PC())
	switch fn {
	case 0: // BOOT
		s.installImages(c)
		s.installVectors(c)
		fmt.Print("\r\n64k CP/M vers 2.2\r\n")
		s.warmBoot(c)
	case 1: // WBOOT
		s.warmBoot(c)
	case 2: // CONST
		if s.Console.Poll() {
			c.SetA(0xff)
		} else {
			c.SetA(0)
		}
	case 3: // CONIN
		b, err := s.Console.ReadBlocking()
		if err != nil {
			return err
		}
		if b == 0x7f {
			b = 0x08
		}
		c.SetA(b)
	case 4: // CONOUT
		return s.Console.Write(c.C)
	case 5: // LIST
	case 6: // PUNCH
	case 7: // READER
		c.SetA(0x1a)
	case 8: // HOME
		s.track = 0
		c.C = 0
	case 9: // SELDSK
		drive := int(c.C)
		if _, err := s.diskFor(drive); err != nil {
			c.SetHL(0)
			break
		}
		s.drive = drive
		c.SetHL(s.DPBase + 16*uint16(drive))
	case 10: // SETTRK
		s.track = uint16(c.B)<<8 | uint16(c.C)
	case 11: // SETSEC
		s.sector = c.C
	case 12: // SETDMA
		s.dma = uint16(c.B)<<8 | uint16(c.C)
		c.SetHL(s.dma)
	case 13: // READ
		return s.diskTransfer(c, false)
	case 14: // WRITE
		return s.diskTransfer(c, true)
	case 15: // LISTST
		c.SetA(0xff)
	case 16: // SECTRAN
		c.SetA(c.C)
		c.SetHL(c.BC())
	default:
		return &cpu.Fault{Opcode: fn, PC: c.PC(), Reason: "unrecognised BIOS function"}
	}
	return nil
}

// installImages loads the CCP and BDOS blobs at their configured
// addresses, done once at cold boot.
func (s *Shim) installImages(c *cpu.CPU) {
	c.Memory().LoadImage(s.CCPAddr, s.CCPImage)
	c.Memory().LoadImage(s.BDOSAddr, s.BDOSImage)
}

// installVectors writes the well-known jump vectors at guest 0x0000
// and 0x0005, plus the BDOS IN/RET trap at bdosEntry, all done once at
// cold boot -- a warm boot finds them already in place.
func (s *Shim) installVectors(c *cpu.CPU) {
	mem := c.Memory()

	mem.Write(0x0000, 0xc3) // JMP wbootEntry
	mem.Write(0x0001, byte(s.wbootEntry()))
	mem.Write(0x0002, byte(s.wbootEntry()>>8))

	mem.Write(0x0005, 0xc3) // JMP bdosEntry
	mem.Write(0x0006, byte(s.bdosEntry()))
	mem.Write(0x0007, byte(s.bdosEntry()>>8))

	mem.Write(s.bdosEntry(), 0xdb) // IN 0 -- BDOS trap
	mem.Write(s.bdosEntry()+1, 0x00)
	mem.Write(s.bdosEntry()+2, 0xc9) // RET
}

// warmBoot reloads the CCP image, zeroes the register file, and
// transfers control to the CCP with the previously selected drive
// number in C, exactly the state transition spec.md assigns to WBOOT.
func (s *Shim) warmBoot(c *cpu.CPU) {
	c.Memory().LoadImage(s.CCPAddr, s.CCPImage)
	drive := s.drive
	c.Reset()
	c.SetPC(s.CCPAddr)
	c.C = byte(drive)
}

// diskTransfer implements READ (write==false) and WRITE (write==true):
// seek to the selected track/sector and move exactly one 128-byte
// sector between the disk image and the guest's DMA buffer.
func (s *Shim) diskTransfer(c *cpu.CPU, write bool) error {
	d, err := s.diskFor(s.drive)
	if err != nil {
		return err
	}

	absSector := int64(s.track)*int64(s.SectorsPerTrack) + int64(s.sector)
	debug.Tracef(debug.MaskDisk, s.TraceMask, "drive=%d track=%d sector=%d write=%v",
		s.drive, s.track, s.sector, write)
	if err := d.Seek(absSector * 128); err != nil {
		c.SetA(1)
		return nil
	}

	if write {
		buf := c.Memory().ReadBlock(s.dma, 128)
		if err := d.WriteSector(buf); err != nil {
			return fmt.Errorf("hypercall: disk write failed: %w", err)
		}
	} else {
		buf := make([]byte, 128)
		if err := d.ReadSector(buf); err != nil {
			c.SetA(1)
			return nil
		}
		c.Memory().WriteBlock(s.dma, buf)
	}
	c.SetA(0)
	return nil
}

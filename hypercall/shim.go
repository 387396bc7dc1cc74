/*
 * i8080cpm - Hypercall shim: BIOS/BDOS trap handling.
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

// Package hypercall implements cpu.Hypervisor: the BIOS and BDOS
// function tables that CP/M firmware reaches through the OUT/IN trap
// opcodes. It owns no registers or memory of its own -- every guest
// state change goes through the *cpu.CPU passed into BIOS/BDOS -- but
// it does own the console and disk collaborators and the small amount
// of controller state (selected drive, track, sector, DMA address)
// those BIOS calls accumulate between each other.
package hypercall

import (
	"fmt"

	"github.com/rcornwell/i8080cpm/cpu"
	"github.com/rcornwell/i8080cpm/host"
)

// Shim implements cpu.Hypervisor over a console and a set of disk
// images, plus the guest images and addresses a CP/M boot needs.
type Shim struct {
	Console host.Console
	Disks   map[int]host.Disk

	CCPImage  []byte
	BDOSImage []byte

	DPBase          uint16
	FirmwareAddr    uint16
	CCPAddr         uint16
	BDOSAddr        uint16
	SectorsPerTrack int

	// TraceMask selects which debug.Mask categories this shim emits.
	TraceMask int

	drive  int
	track  uint16
	sector uint8
	dma    uint16
}

// New returns a Shim ready to service BIOS/BDOS calls once BIOS
// function 0 (BOOT) has installed the guest vectors.
func New(console host.Console, disks map[int]host.Disk, ccpImage, bdosImage []byte,
	dpbase, firmwareAddr, ccpAddr, bdosAddr uint16, sectorsPerTrack int,
) *Shim {
	return &Shim{
		Console:         console,
		Disks:           disks,
		CCPImage:        ccpImage,
		BDOSImage:       bdosImage,
		DPBase:          dpbase,
		FirmwareAddr:    firmwareAddr,
		CCPAddr:         ccpAddr,
		BDOSAddr:        bdosAddr,
		SectorsPerTrack: sectorsPerTrack,
	}
}

// bdosEntry is the real, natively-executable BDOS entry point inside
// the installed BDOS image: the first six bytes of that image are a
// jump table header, so the callable entry sits right after it.
func (s *Shim) bdosEntry() uint16 { return s.BDOSAddr + 6 }

// wbootEntry is where the firmware's warm-boot handler begins, three
// bytes past the cold-boot handler installed at FirmwareAddr.
func (s *Shim) wbootEntry() uint16 { return s.FirmwareAddr + 3 }

func (s *Shim) diskFor(drive int) (host.Disk, error) {
	d, ok := s.Disks[drive]
	if !ok {
		return nil, fmt.Errorf("hypercall: no disk image attached for drive %d", drive)
	}
	return d, nil
}

var _ cpu.Hypervisor = (*Shim)(nil)

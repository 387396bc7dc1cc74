/*
 * i8080cpm - Host collaborator interfaces.
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

// Package host declares the capabilities the hypercall shim needs from
// its environment: a console and a set of disk images. Terminal
// raw-mode handling and on-disk file storage are deliberately left to
// whoever implements these interfaces.
package host

// Console is a CP/M console device: a single character stream with
// non-blocking status polling, grounded on the BIOS CONST/CONIN/CONOUT
// functions.
type Console interface {
	// Poll reports whether a character is waiting without consuming it.
	Poll() bool
	// ReadBlocking waits for and returns the next character.
	ReadBlocking() (byte, error)
	// Write emits a single character.
	Write(b byte) error
}

// Disk is one CP/M disk image addressed in fixed 128-byte sectors.
type Disk interface {
	// Seek positions the next ReadSector/WriteSector at an absolute
	// byte offset into the image.
	Seek(offset int64) error
	// ReadSector fills buf, which must be exactly 128 bytes, from the
	// current position.
	ReadSector(buf []byte) error
	// WriteSector writes buf, which must be exactly 128 bytes, at the
	// current position.
	WriteSector(buf []byte) error
}

// SectorSize is the fixed CP/M logical sector size in bytes.
const SectorSize = 128

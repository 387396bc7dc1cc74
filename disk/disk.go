/*
 * i8080cpm - File-backed CP/M disk image.
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

// Package disk implements host.Disk over an ordinary seekable file
// holding one CP/M disk image, addressed in fixed 128-byte sectors.
package disk

import (
	"errors"
	"os"

	"github.com/rcornwell/i8080cpm/host"
)

var (
	// ErrNotAttached is returned by any operation on a File that has
	// not been given a backing *os.File.
	ErrNotAttached = errors.New("disk: not attached")
	// ErrShortSector is returned when a read or write does not move
	// exactly host.SectorSize bytes.
	ErrShortSector = errors.New("disk: short sector")
)

// File is a host.Disk backed by a single on-disk image file.
type File struct {
	file *os.File
}

// Attach opens an existing disk image for reading and writing.
func Attach(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	return &File{file: f}, nil
}

// Attached reports whether a backing file is open.
func (d *File) Attached() bool {
	return d.file != nil
}

// FileName returns the path of the attached image, or "" if detached.
func (d *File) FileName() string {
	if d.file == nil {
		return ""
	}
	return d.file.Name()
}

// Detach closes the backing file.
func (d *File) Detach() error {
	if d.file == nil {
		return ErrNotAttached
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// Seek positions the next ReadSector/WriteSector at an absolute byte
// offset into the image.
func (d *File) Seek(offset int64) error {
	if d.file == nil {
		return ErrNotAttached
	}
	if offset < 0 {
		return errors.New("disk: negative offset")
	}
	_, err := d.file.Seek(offset, os.SEEK_SET)
	return err
}

// ReadSector fills buf, which must be exactly host.SectorSize bytes,
// from the current position.
func (d *File) ReadSector(buf []byte) error {
	if d.file == nil {
		return ErrNotAttached
	}
	if len(buf) != host.SectorSize {
		return ErrShortSector
	}
	n, err := d.file.Read(buf)
	if err != nil {
		return err
	}
	if n != host.SectorSize {
		return ErrShortSector
	}
	return nil
}

// WriteSector writes buf, which must be exactly host.SectorSize bytes,
// at the current position.
func (d *File) WriteSector(buf []byte) error {
	if d.file == nil {
		return ErrNotAttached
	}
	if len(buf) != host.SectorSize {
		return ErrShortSector
	}
	n, err := d.file.Write(buf)
	if err != nil {
		return err
	}
	if n != host.SectorSize {
		return ErrShortSector
	}
	return nil
}

var _ host.Disk = (*File)(nil)

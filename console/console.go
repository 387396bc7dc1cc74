/*
 * i8080cpm - Console device.
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

// Package console implements host.Console over an arbitrary
// io.Reader/io.Writer pair. Raw terminal mode is the caller's concern;
// this package only buffers bytes so Poll never blocks.
package console

import (
	"io"
	"sync"
)

// Device is a host.Console backed by a reader goroutine that feeds a
// small buffered channel, so Poll can report readiness without
// blocking on the underlying stream.
type Device struct {
	out io.Writer

	mu     sync.Mutex
	ready  chan byte
	readErr error
}

// New starts reading from r in the background and writing to w
// synchronously. Close the returned Device's underlying reader (e.g.
// by closing r, if it supports it) to stop the background goroutine.
func New(r io.Reader, w io.Writer) *Device {
	d := &Device{
		out:   w,
		ready: make(chan byte, 256),
	}
	go d.pump(r)
	return d
}

func (d *Device) pump(r io.Reader) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			d.ready <- buf[0]
		}
		if err != nil {
			d.mu.Lock()
			d.readErr = err
			d.mu.Unlock()
			close(d.ready)
			return
		}
	}
}

// Poll reports whether a character is waiting without consuming it.
func (d *Device) Poll() bool {
	return len(d.ready) > 0
}

// ReadBlocking waits for and returns the next character.
func (d *Device) ReadBlocking() (byte, error) {
	b, ok := <-d.ready
	if !ok {
		d.mu.Lock()
		err := d.readErr
		d.mu.Unlock()
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	return b, nil
}

// Write emits a single character.
func (d *Device) Write(b byte) error {
	_, err := d.out.Write([]byte{b})
	return err
}

/*
 * i8080cpm - Masked debug tracing.
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

// Package debug provides mask/level-gated trace output, independent of
// the structured logger, for the kind of high-volume per-instruction
// or per-hypercall tracing that would otherwise flood it: set a mask
// once, then every call site decides for itself whether its bit is on.
package debug

import (
	"fmt"
	"os"
)

var logFile *os.File

// Mask bits a caller can OR together to select which trace categories
// are active.
const (
	MaskNone = 0
	// MaskOpcode traces every fetched instruction.
	MaskOpcode = 1 << 0
	// MaskHypercall traces BIOS/BDOS hypercall dispatch.
	MaskHypercall = 1 << 1
	// MaskDisk traces disk seek/read/write activity.
	MaskDisk = 1 << 2
)

// Open directs subsequent Tracef calls to path, truncating or creating
// it. Call with an empty path to disable tracing.
func Open(path string) error {
	if path == "" {
		logFile = nil
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("debug: opening trace file: %w", err)
	}
	logFile = f
	return nil
}

// Tracef writes a formatted line to the trace file if mask&level != 0
// and a trace file has been opened.
func Tracef(mask, level int, format string, a ...interface{}) {
	if logFile == nil || mask&level == 0 {
		return
	}
	fmt.Fprintf(logFile, format+"\n", a...)
}

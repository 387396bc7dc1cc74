/*
 * i8080cpm - Main process.
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

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rcornwell/i8080cpm/cpu"
)

func TestIsFatalFaultUndefinedOpcode(t *testing.T) {
	err := &cpu.Fault{Opcode: 0xdd, PC: 0x100, Reason: "undefined opcode"}
	if !isFatalFault(err) {
		t.Error("undefined opcode fault should be fatal")
	}
}

func TestIsFatalFaultUnrecognisedBIOSFunction(t *testing.T) {
	err := &cpu.Fault{Opcode: 99, PC: 0xfa00, Reason: "unrecognised BIOS function"}
	if !isFatalFault(err) {
		t.Error("unrecognised BIOS function fault should be fatal")
	}
}

func TestIsFatalFaultHaltedIsNotFatal(t *testing.T) {
	err := &cpu.Fault{Opcode: 0x76, PC: 0xfa00, Reason: "halted"}
	if isFatalFault(err) {
		t.Error("a HLT at cold entry should not be fatal")
	}
}

func TestIsFatalFaultCPUHaltedIsNotFatal(t *testing.T) {
	err := &cpu.Fault{PC: 0xfa00, Reason: "cpu halted"}
	if isFatalFault(err) {
		t.Error("re-stepping an already-halted cpu should not be fatal")
	}
}

func TestIsFatalFaultWrappedHostWriteFailureIsNotFatal(t *testing.T) {
	err := fmt.Errorf("hypercall: disk write failed: %w", errors.New("no space left on device"))
	if isFatalFault(err) {
		t.Error("a host write failure is not a *cpu.Fault and should not be fatal")
	}
}

/*
 * i8080cpm - Supervisory run loop.
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

// Package machine runs the CPU's fetch-decode-execute loop on its own
// goroutine so the caller (typically cmd/i8080cpm) is free to handle
// signals and terminal setup concurrently with guest execution.
package machine

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/rcornwell/i8080cpm/cpu"
	"github.com/rcornwell/i8080cpm/util/debug"
)

// Machine owns a *cpu.CPU and drives Step in a tight loop until it
// halts, faults, or is asked to Stop. There is no event or timer
// subsystem here: the core advances exactly one instruction per
// iteration, with no notion of elapsed cycles.
type Machine struct {
	CPU    *cpu.CPU
	Logger *slog.Logger

	// TraceMask selects which debug.Mask categories are active for
	// this machine's run loop. Zero (debug.MaskNone) disables tracing.
	TraceMask int

	wg      sync.WaitGroup
	done    chan struct{}
	stopped chan struct{}

	mu  sync.Mutex
	err error
}

// New returns a Machine ready to run c. A nil logger disables logging.
func New(c *cpu.CPU, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Machine{CPU: c, Logger: logger, done: make(chan struct{}), stopped: make(chan struct{})}
}

// Start runs the fetch-decode-execute loop on a new goroutine.
func (m *Machine) Start() {
	m.wg.Add(1)
	go m.run()
}

func (m *Machine) run() {
	defer m.wg.Done()
	defer close(m.stopped)
	for {
		select {
		case <-m.done:
			return
		default:
		}

		debug.Tracef(debug.MaskOpcode, m.TraceMask, "pc=%04x", m.CPU.PC())

		if err := m.CPU.Step(); err != nil {
			m.mu.Lock()
			m.err = err
			m.mu.Unlock()
			m.Logger.Error("core stopped", "reason", err)
			return
		}
	}
}

// Done is closed when the run loop exits, whether because the guest
// halted/faulted or because Stop was called.
func (m *Machine) Done() <-chan struct{} {
	return m.stopped
}

// Stop signals the run loop to exit and waits for it, up to one
// second, matching the teacher's shutdown timeout.
func (m *Machine) Stop() {
	select {
	case <-m.done:
		// already stopped
	default:
		close(m.done)
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		m.Logger.Warn("timed out waiting for core to stop")
	}
}

// Err returns the error that stopped the run loop, if any.
func (m *Machine) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rcornwell/i8080cpm/config"
	"github.com/rcornwell/i8080cpm/console"
	"github.com/rcornwell/i8080cpm/cpu"
	"github.com/rcornwell/i8080cpm/disk"
	"github.com/rcornwell/i8080cpm/host"
	"github.com/rcornwell/i8080cpm/hypercall"
	"github.com/rcornwell/i8080cpm/machine"
	"github.com/rcornwell/i8080cpm/memory"
	"github.com/rcornwell/i8080cpm/util/debug"
	"github.com/rcornwell/i8080cpm/util/logger"
)

func main() {
	var configPath string
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "i8080cpm",
		Short: "Intel 8080 / CP/M 2.2 emulator core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, debug)
		},
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "i8080cpm.cfg", "Configuration file")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Mirror debug-level log records to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, debugLog bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log, closer, err := logger.Open(cfg.LogFile, debugLog)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(log)

	log.Info("i8080cpm started", "config", configPath)

	if err := debug.Open(cfg.TraceFile); err != nil {
		return fmt.Errorf("opening trace file: %w", err)
	}

	firmware, err := os.ReadFile(cfg.Firmware)
	if err != nil {
		return fmt.Errorf("reading firmware image: %w", err)
	}
	ccpImage, err := os.ReadFile(cfg.CCP)
	if err != nil {
		return fmt.Errorf("reading CCP image: %w", err)
	}
	bdosImage, err := os.ReadFile(cfg.BDOS)
	if err != nil {
		return fmt.Errorf("reading BDOS image: %w", err)
	}

	disks := make(map[int]host.Disk, len(cfg.Disks))
	for _, d := range cfg.Disks {
		drive, err := disk.Attach(d.Path)
		if err != nil {
			return fmt.Errorf("attaching disk %d (%s): %w", d.Drive, d.Path, err)
		}
		defer drive.Detach()
		disks[d.Drive] = drive
	}

	restore, err := enterRawMode()
	if err != nil {
		log.Warn("could not enter raw terminal mode", "reason", err)
	} else {
		defer restore()
	}

	con := console.New(os.Stdin, os.Stdout)

	mem := memory.New()
	mem.LoadImage(cfg.FirmwareAddr, firmware)

	shim := hypercall.New(con, disks, ccpImage, bdosImage,
		cfg.DPBase, cfg.FirmwareAddr, cfg.CCPAddr, cfg.BDOSAddr, cfg.SectorsPerTrack)
	shim.TraceMask = cfg.TraceMask

	c := cpu.New(mem, shim)
	c.SetPC(cfg.FirmwareAddr)

	mach := machine.New(c, log)
	mach.TraceMask = cfg.TraceMask
	mach.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info("received shutdown signal")
	case <-mach.Done():
	}

	mach.Stop()

	if err := mach.Err(); err != nil {
		log.Info("core stopped", "reason", err)
		if isFatalFault(err) {
			return err
		}
	}

	log.Info("shutdown complete")
	return nil
}

// isFatalFault reports whether err should map to a nonzero exit
// status: an undefined opcode or an unrecognised BIOS function, per
// spec.md's exit-code table. A HLT at cold entry surfaces as a
// *cpu.Fault too ("halted"), but it is normal shutdown, not a fault;
// a host write failure is a plain wrapped error, never a *cpu.Fault,
// and likewise exits 0.
func isFatalFault(err error) bool {
	var fault *cpu.Fault
	if !errors.As(err, &fault) {
		return false
	}
	return fault.Reason != "halted" && fault.Reason != "cpu halted"
}

// enterRawMode puts stdin into raw mode, if it is a terminal, so the
// guest console can see every keystroke including control characters.
// It returns a restore function to be deferred by the caller.
func enterRawMode() (func(), error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, state) }, nil
}

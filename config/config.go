/*
 * i8080cpm - Configuration file parser
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

/* Configuration file format:
 *
 * '#' starts a comment, rest of line is ignored.
 * <line> := <directive> <whitespace> <args>
 * Blank lines are ignored.
 */

// Package config parses the emulator's startup directive file: one
// directive per line, dispatched through a single switch over a fixed,
// small directive set; there is no handler registry.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rcornwell/i8080cpm/util/debug"
)

// DefaultSectorsPerTrack is used when no SECPERTRACK directive appears.
const DefaultSectorsPerTrack = 26

// Default guest load addresses, matching the firmware this emulator
// was built to run.
const (
	DefaultFirmwareAddr uint16 = 0xfa00
	DefaultCCPAddr      uint16 = 0xe400
	DefaultBDOSAddr     uint16 = 0xec00
)

// Disk is one DISK <n> <path> directive.
type Disk struct {
	Drive int
	Path  string
}

// Config holds every directive parsed from a configuration file.
type Config struct {
	Firmware string
	CCP      string
	BDOS     string
	LogFile  string

	Disks []Disk

	DPBase          uint16
	SectorsPerTrack int
	FirmwareAddr    uint16
	CCPAddr         uint16
	BDOSAddr        uint16

	TraceFile string
	TraceMask int
}

var lineNumber int

// Load reads and parses a configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads directives from r until EOF.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{
		SectorsPerTrack: DefaultSectorsPerTrack,
		FirmwareAddr:    DefaultFirmwareAddr,
		CCPAddr:         DefaultCCPAddr,
		BDOSAddr:        DefaultBDOSAddr,
	}

	lineNumber = 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		directive := strings.ToUpper(fields[0])
		args := fields[1:]
		if err := cfg.apply(directive, args); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNumber, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) apply(directive string, args []string) error {
	switch directive {
	case "FIRMWARE":
		return cfg.setString(&cfg.Firmware, directive, args)
	case "CCP":
		return cfg.setString(&cfg.CCP, directive, args)
	case "BDOS":
		return cfg.setString(&cfg.BDOS, directive, args)
	case "LOGFILE":
		return cfg.setString(&cfg.LogFile, directive, args)
	case "DISK":
		return cfg.applyDisk(args)
	case "DPBASE":
		return cfg.setHex16(&cfg.DPBase, directive, args)
	case "FIRMWAREADDR":
		return cfg.setHex16(&cfg.FirmwareAddr, directive, args)
	case "CCPADDR":
		return cfg.setHex16(&cfg.CCPAddr, directive, args)
	case "BDOSADDR":
		return cfg.setHex16(&cfg.BDOSAddr, directive, args)
	case "SECPERTRACK":
		return cfg.applySectorsPerTrack(args)
	case "TRACEFILE":
		return cfg.setString(&cfg.TraceFile, directive, args)
	case "TRACE":
		return cfg.applyTrace(args)
	default:
		return fmt.Errorf("unknown directive %q", directive)
	}
}

func (cfg *Config) setString(dst *string, directive string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s requires exactly one argument", directive)
	}
	*dst = args[0]
	return nil
}

func (cfg *Config) setHex16(dst *uint16, directive string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s requires exactly one argument", directive)
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(args[0]), "0x"), 16, 16)
	if err != nil {
		return fmt.Errorf("%s: %w", directive, err)
	}
	*dst = uint16(v)
	return nil
}

func (cfg *Config) applySectorsPerTrack(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("SECPERTRACK requires exactly one argument")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("SECPERTRACK: %w", err)
	}
	if n <= 0 {
		return fmt.Errorf("SECPERTRACK must be positive, got %d", n)
	}
	cfg.SectorsPerTrack = n
	return nil
}

// applyTrace accepts one or more of opcode, hypercall, disk, or all,
// ORing together the corresponding debug.Mask bits.
func (cfg *Config) applyTrace(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("TRACE requires at least one category")
	}
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "opcode":
			cfg.TraceMask |= debug.MaskOpcode
		case "hypercall":
			cfg.TraceMask |= debug.MaskHypercall
		case "disk":
			cfg.TraceMask |= debug.MaskDisk
		case "all":
			cfg.TraceMask |= debug.MaskOpcode | debug.MaskHypercall | debug.MaskDisk
		default:
			return fmt.Errorf("TRACE: unknown category %q", arg)
		}
	}
	return nil
}

func (cfg *Config) applyDisk(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("DISK requires a drive number and a path")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("DISK drive number: %w", err)
	}
	cfg.Disks = append(cfg.Disks, Disk{Drive: n, Path: args[1]})
	return nil
}

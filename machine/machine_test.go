package machine

import (
	"testing"
	"time"

	"github.com/rcornwell/i8080cpm/cpu"
	"github.com/rcornwell/i8080cpm/memory"
)

type nullHypervisor struct{}

func (nullHypervisor) BIOS(fn uint8, c *cpu.CPU) error { return nil }
func (nullHypervisor) BDOS(c *cpu.CPU) error           { return nil }

func TestRunLoopStopsOnHLT(t *testing.T) {
	m := memory.New()
	m.Write(0, 0x76) // HLT
	c := cpu.New(m, nullHypervisor{})

	mach := New(c, nil)
	mach.Start()
	select {
	case <-mach.Done():
	case <-time.After(time.Second):
		t.Fatal("run loop did not stop on HLT")
	}
	mach.Stop()

	if mach.Err() == nil {
		t.Fatal("expected an error recorded after HLT")
	}
	if !c.Halted {
		t.Error("expected CPU to be halted")
	}
}

func TestRunLoopCanBeStoppedWhileRunning(t *testing.T) {
	m := memory.New()
	m.Write(0, 0x00) // NOP
	m.Write(1, 0xc3) // JMP 0x0000
	m.Write(2, 0x00)
	m.Write(3, 0x00)
	c := cpu.New(m, nullHypervisor{})

	mach := New(c, nil)
	mach.Start()
	time.Sleep(5 * time.Millisecond)
	mach.Stop()

	if mach.Err() != nil {
		t.Errorf("expected no error from a deliberately stopped loop, got %v", mach.Err())
	}
}

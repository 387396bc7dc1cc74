package cpu

import (
	"testing"

	"github.com/rcornwell/i8080cpm/memory"
)

type nullHypervisor struct {
	biosFn  uint8
	bdosHit bool
}

func (h *nullHypervisor) BIOS(fn uint8, c *CPU) error {
	h.biosFn = fn
	return nil
}

func (h *nullHypervisor) BDOS(c *CPU) error {
	h.bdosHit = true
	return nil
}

func newTestCPU() (*CPU, *memory.Memory) {
	m := memory.New()
	c := New(m, &nullHypervisor{})
	return c, m
}

func TestNOPAdvancesPC(t *testing.T) {
	c, m := newTestCPU()
	m.Write(0x0000, 0x00) // NOP
	if err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.PC() != 1 {
		t.Errorf("PC = %d, want 1", c.PC())
	}
}

func TestMVIAndMOV(t *testing.T) {
	c, m := newTestCPU()
	m.Write(0, 0x06) // MVI B,0x42
	m.Write(1, 0x42)
	m.Write(2, 0x78) // MOV A,B
	if err := c.Step(); err != nil {
		t.Fatalf("MVI: %v", err)
	}
	if c.B != 0x42 {
		t.Fatalf("B = %#02x, want 0x42", c.B)
	}
	if err := c.Step(); err != nil {
		t.Fatalf("MOV: %v", err)
	}
	if c.A != 0x42 {
		t.Errorf("A = %#02x, want 0x42", c.A)
	}
}

func TestADDSetsCarryAndZero(t *testing.T) {
	c, _ := newTestCPU()
	c.A = 0xff
	c.B = 0x01
	opADD(c)
	if c.A != 0x00 {
		t.Errorf("A = %#02x, want 0x00", c.A)
	}
	if !c.getFlag(zeroFlag) {
		t.Errorf("Zero flag should be set")
	}
	if !c.getFlag(carryFlag) {
		t.Errorf("Carry flag should be set")
	}
}

func TestSUBBorrow(t *testing.T) {
	c, _ := newTestCPU()
	c.A = 0x00
	c.B = 0x01
	opSUB(c)
	if c.A != 0xff {
		t.Errorf("A = %#02x, want 0xff", c.A)
	}
	if !c.getFlag(carryFlag) {
		t.Errorf("Carry (borrow) flag should be set")
	}
}

func TestDAAAfterBCDAdd(t *testing.T) {
	c, _ := newTestCPU()
	// 0x15 + 0x27 in BCD should read 42, but binary addition gives 0x3c.
	c.A = 0x15
	c.opcode = 0xc6
	c.b2 = 0x27
	opADI(c)
	if c.A != 0x3c {
		t.Fatalf("intermediate A = %#02x, want 0x3c", c.A)
	}
	opDAA(c)
	if c.A != 0x42 {
		t.Errorf("A after DAA = %#02x, want 0x42", c.A)
	}
}

func TestINXDoesNotTouchFlags(t *testing.T) {
	c, _ := newTestCPU()
	c.F = 0xff
	c.opcode = 0x03 // INX B
	opINX(c)
	if c.F != 0xff {
		t.Errorf("INX modified flags: F = %#02x", c.F)
	}
	if c.BC() != 1 {
		t.Errorf("BC = %d, want 1", c.BC())
	}
}

func TestDADCarryOnly(t *testing.T) {
	c, _ := newTestCPU()
	c.SetHL(0xffff)
	c.SetBC(0x0001)
	c.F = 0
	c.opcode = 0x09 // DAD B
	opDAD(c)
	if c.HL() != 0 {
		t.Errorf("HL = %#04x, want 0", c.HL())
	}
	if !c.getFlag(carryFlag) {
		t.Errorf("Carry should be set on 16-bit overflow")
	}
}

func TestPushPopPSWRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	c.SetSP(0x2000)
	c.A = 0x3c
	c.F = signFlag | zeroFlag | fixedBits
	c.opcode = 0xf5 // PUSH PSW
	opPUSH(c)

	c.A = 0
	c.F = 0
	c.opcode = 0xf1 // POP PSW
	opPOP(c)

	if c.A != 0x3c {
		t.Errorf("A after POP PSW = %#02x, want 0x3c", c.A)
	}
	if !c.getFlag(signFlag) || !c.getFlag(zeroFlag) {
		t.Errorf("expected Sign and Zero set after POP PSW, got F=%#02x", c.F)
	}
	if c.F&0x08 != 0 || c.F&0x20 != 0 {
		t.Errorf("POP PSW must not set the unused bits 3/5, got F=%#02x", c.F)
	}
}

func TestCALLandRET(t *testing.T) {
	c, m := newTestCPU()
	c.SetSP(0x2000)
	c.SetPC(0x0100)
	m.Write(0x0100, 0xcd) // CALL 0x0200
	m.Write(0x0101, 0x00)
	m.Write(0x0102, 0x02)
	m.Write(0x0200, 0xc9) // RET

	if err := c.Step(); err != nil {
		t.Fatalf("CALL: %v", err)
	}
	if c.PC() != 0x0200 {
		t.Fatalf("PC after CALL = %#04x, want 0x0200", c.PC())
	}
	if err := c.Step(); err != nil {
		t.Fatalf("RET: %v", err)
	}
	if c.PC() != 0x0103 {
		t.Errorf("PC after RET = %#04x, want 0x0103", c.PC())
	}
}

func TestBankSwitchOnPCOverflow(t *testing.T) {
	c, m := newTestCPU()
	c.SetPC(0x3fff)
	m.Write(0x3fff, 0x00) // NOP, bank 0
	m.Write(0x4000, 0x00) // NOP, bank 1
	if err := c.Step(); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if m.Bank() != 1 {
		t.Fatalf("bank after crossing 0x3fff->0x4000 = %d, want 1", m.Bank())
	}
	if err := c.Step(); err != nil {
		t.Fatalf("step 2: %v", err)
	}
}

func TestHLTHaltsAndReturnsFault(t *testing.T) {
	c, m := newTestCPU()
	m.Write(0, 0x76) // HLT
	err := c.Step()
	if err == nil {
		t.Fatal("expected an error from HLT")
	}
	if !c.Halted {
		t.Error("CPU should be halted after HLT")
	}
}

func TestUndefinedOpcodeIsFatal(t *testing.T) {
	c, m := newTestCPU()
	m.Write(0, 0xdd) // undefined
	err := c.Step()
	if err == nil {
		t.Fatal("expected an error from an undefined opcode")
	}
	var fault *Fault
	if !errorsAs(err, &fault) {
		t.Fatalf("expected *Fault, got %T", err)
	}
	if fault.Opcode != 0xdd {
		t.Errorf("fault opcode = %#02x, want 0xdd", fault.Opcode)
	}
}

func TestOUTTrapsToBIOS(t *testing.T) {
	c, m := newTestCPU()
	hv := &nullHypervisor{}
	c.hv = hv
	m.Write(0, 0xd3) // OUT 2 -- CONST
	m.Write(1, 0x02)
	if err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hv.biosFn != 2 {
		t.Errorf("BIOS function = %d, want 2", hv.biosFn)
	}
}

func TestINTrapsToBDOS(t *testing.T) {
	c, m := newTestCPU()
	hv := &nullHypervisor{}
	c.hv = hv
	m.Write(0, 0xdb) // IN 0
	m.Write(1, 0x00)
	if err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hv.bdosHit {
		t.Errorf("expected BDOS hypercall to run")
	}
}

// errorsAs avoids importing the "errors" package purely for As in this
// small test file.
func errorsAs(err error, target **Fault) bool {
	f, ok := err.(*Fault)
	if !ok {
		return false
	}
	*target = f
	return true
}

package flags

import "testing"

func TestSZPZero(t *testing.T) {
	f := SZP[0]
	if f&Zero == 0 {
		t.Errorf("zero result should set Zero flag, got %#02x", f)
	}
	if f&Sign != 0 {
		t.Errorf("zero result should not set Sign flag, got %#02x", f)
	}
	if f&Parity == 0 {
		t.Errorf("0x00 has even parity, Parity flag should be set")
	}
}

func TestSZPSign(t *testing.T) {
	f := SZP[0x80]
	if f&Sign == 0 {
		t.Errorf("0x80 should set Sign flag, got %#02x", f)
	}
	if f&Zero != 0 {
		t.Errorf("0x80 should not set Zero flag")
	}
}

func TestSZPParity(t *testing.T) {
	// 0x03 = 0b00000011, two set bits: even parity.
	if SZP[0x03]&Parity == 0 {
		t.Errorf("0x03 has even parity, Parity flag should be set")
	}
	// 0x01 = 0b00000001, one set bit: odd parity.
	if SZP[0x01]&Parity != 0 {
		t.Errorf("0x01 has odd parity, Parity flag should be clear")
	}
}

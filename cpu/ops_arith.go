package cpu

// aluAdd performs A = A + val + carryIn, setting Sign/Zero/Parity from
// the result and Carry/Auxiliary from the operand/result XOR trick
// used throughout the firmware this was ported from: a bit changed
// between the two inputs and the sum but not in either input alone
// means a carry propagated out of that bit position.
func (c *CPU) aluAdd(val uint8, carryIn uint8) {
	a := uint16(c.A)
	sum := a + uint16(val) + uint16(carryIn)
	changed := a ^ uint16(val) ^ sum
	c.A = uint8(sum)
	c.setSZP(c.A)
	c.setFlag(carryFlag, changed&0x100 != 0)
	c.setFlag(auxiliaryFlag, changed&0x10 != 0)
}

// aluSub performs A = A - val - borrowIn via two's complement, then
// flips the carry bit aluAdd produced into the conventional borrow
// sense (set when a borrow occurred).
func (c *CPU) aluSub(val uint8, borrowIn bool) {
	carryIn := uint8(1)
	if borrowIn {
		carryIn = 0
	}
	c.aluAdd(^val, carryIn)
	c.setFlag(carryFlag, !c.getFlag(carryFlag))
}

// aluCmp compares A against val without storing the result, the way
// CMP/CPI must leave A untouched.
func (c *CPU) aluCmp(val uint8) {
	a := uint16(c.A)
	diff := int16(a) - int16(val)
	changed := a ^ uint16(val) ^ uint16(uint8(diff))
	c.setSZP(uint8(diff))
	c.setFlag(carryFlag, diff < 0)
	c.setFlag(auxiliaryFlag, ^changed&0x10 != 0)
}

func opADD(c *CPU) error { c.aluAdd(c.getReg(c.opcode&0x07), 0); return nil }
func opADC(c *CPU) error {
	cy := uint8(0)
	if c.getFlag(carryFlag) {
		cy = 1
	}
	c.aluAdd(c.getReg(c.opcode&0x07), cy)
	return nil
}
func opSUB(c *CPU) error { c.aluSub(c.getReg(c.opcode&0x07), false); return nil }
func opSBB(c *CPU) error { c.aluSub(c.getReg(c.opcode&0x07), c.getFlag(carryFlag)); return nil }

func opADI(c *CPU) error { c.aluAdd(c.b2, 0); return nil }
func opACI(c *CPU) error {
	cy := uint8(0)
	if c.getFlag(carryFlag) {
		cy = 1
	}
	c.aluAdd(c.b2, cy)
	return nil
}
func opSUI(c *CPU) error { c.aluSub(c.b2, false); return nil }
func opSBI(c *CPU) error { c.aluSub(c.b2, c.getFlag(carryFlag)); return nil }

// opINR/opDCR affect Zero/Sign/Parity/Auxiliary but never Carry.
func opINR(c *CPU) error {
	r := (c.opcode >> 3) & 0x07
	v := c.getReg(r) + 1
	c.setReg(r, v)
	c.setFlag(auxiliaryFlag, v&0x0f == 0)
	c.setSZP(v)
	return nil
}

func opDCR(c *CPU) error {
	r := (c.opcode >> 3) & 0x07
	v := c.getReg(r) - 1
	c.setReg(r, v)
	c.setFlag(auxiliaryFlag, v&0x0f != 0x0f)
	c.setSZP(v)
	return nil
}

func opINX(c *CPU) error {
	rp := (c.opcode >> 4) & 0x03
	c.setRP(rp, c.getRP(rp)+1)
	return nil
}

func opDCX(c *CPU) error {
	rp := (c.opcode >> 4) & 0x03
	c.setRP(rp, c.getRP(rp)-1)
	return nil
}

// opDAD adds a register pair into HL, affecting only Carry.
func opDAD(c *CPU) error {
	rp := (c.opcode >> 4) & 0x03
	sum := uint32(c.HL()) + uint32(c.getRP(rp))
	c.SetHL(uint16(sum))
	c.setFlag(carryFlag, sum&0x10000 != 0)
	return nil
}

// opDAA is the decimal-adjust algorithm: compute the BCD correction,
// reuse aluAdd to apply it and recompute Sign/Zero/Parity/Auxiliary,
// then restore Carry to the value the correction step determined
// (aluAdd's own carry-out is not what DAA reports).
func opDAA(c *CPU) error {
	saveCF := c.getFlag(carryFlag)
	var adjust uint8
	if c.A&0x0f > 9 || c.getFlag(auxiliaryFlag) {
		adjust += 0x06
	}
	hi := c.A & 0xf0
	if hi > 0x90 || saveCF || (hi >= 0x90 && c.A&0x0f > 9) {
		adjust += 0x60
		saveCF = true
	}
	c.aluAdd(adjust, 0)
	c.setFlag(carryFlag, saveCF)
	return nil
}

package cpu

// opRLC rotates A left, bit 7 wrapping into bit 0 and into Carry.
func opRLC(c *CPU) error {
	bit7 := c.A >> 7
	c.A = c.A<<1 | bit7
	c.setFlag(carryFlag, bit7 != 0)
	return nil
}

// opRRC rotates A right, bit 0 wrapping into bit 7 and into Carry.
func opRRC(c *CPU) error {
	bit0 := c.A & 0x01
	c.A = c.A>>1 | bit0<<7
	c.setFlag(carryFlag, bit0 != 0)
	return nil
}

// opRAL rotates A left through Carry: bit 7 goes to Carry, the old
// Carry comes in at bit 0.
func opRAL(c *CPU) error {
	bit7 := c.A >> 7
	oldCarry := uint8(0)
	if c.getFlag(carryFlag) {
		oldCarry = 1
	}
	c.A = c.A<<1 | oldCarry
	c.setFlag(carryFlag, bit7 != 0)
	return nil
}

// opRAR rotates A right through Carry: bit 0 goes to Carry, the old
// Carry comes in at bit 7.
func opRAR(c *CPU) error {
	bit0 := c.A & 0x01
	oldCarry := uint8(0)
	if c.getFlag(carryFlag) {
		oldCarry = 0x80
	}
	c.A = c.A>>1 | oldCarry
	c.setFlag(carryFlag, bit0 != 0)
	return nil
}

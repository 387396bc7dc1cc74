package cpu

func opJMP(c *CPU) error {
	c.SetPC(uint16(c.b3)<<8 | uint16(c.b2))
	return nil
}

func opJMPcc(c *CPU) error {
	cc := (c.opcode >> 3) & 0x07
	if c.condTrue(cc) {
		c.SetPC(uint16(c.b3)<<8 | uint16(c.b2))
	}
	return nil
}

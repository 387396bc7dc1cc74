package cpu

// pushByte and popByte implement the SP-- / SP++ discipline with
// 8-bit rollover between SPL and SPH, exactly as every PUSH/CALL and
// POP/RET variant must.
func (c *CPU) pushByte(v uint8) {
	c.SPL--
	if c.SPL == 0xff {
		c.SPH--
	}
	c.mem.Write(c.SP(), v)
}

func (c *CPU) popByte() uint8 {
	v := c.mem.Read(c.SP())
	c.SPL++
	if c.SPL == 0 {
		c.SPH++
	}
	return v
}

// push16 pushes the high byte first so the low byte ends up on top of
// the stack, matching PUSH B/D/H's byte order.
func (c *CPU) push16(v uint16) {
	c.pushByte(byte(v >> 8))
	c.pushByte(byte(v))
}

func (c *CPU) pop16() uint16 {
	lo := c.popByte()
	hi := c.popByte()
	return uint16(hi)<<8 | uint16(lo)
}

// opPUSH/opPOP decode the register-pair-or-PSW field in bits 4-5: 0=BC
// 1=DE 2=HL 3=PSW (never SP -- PSW takes SP's slot in this encoding).
func opPUSH(c *CPU) error {
	switch (c.opcode >> 4) & 0x03 {
	case 0:
		c.push16(c.BC())
	case 1:
		c.push16(c.DE())
	case 2:
		c.push16(c.HL())
	default:
		c.pushByte(c.A)
		c.pushByte(c.F)
	}
	return nil
}

func opPOP(c *CPU) error {
	switch (c.opcode >> 4) & 0x03 {
	case 0:
		c.SetBC(c.pop16())
	case 1:
		c.SetDE(c.pop16())
	case 2:
		c.SetHL(c.pop16())
	default:
		psw := c.popByte()
		c.A = c.popByte()
		const settable = signFlag | zeroFlag | auxiliaryFlag | parityFlag | carryFlag
		c.F = (psw & settable) | fixedBits
	}
	return nil
}

func opRET(c *CPU) error {
	c.SetPC(c.pop16())
	return nil
}

func opRETcc(c *CPU) error {
	cc := (c.opcode >> 3) & 0x07
	if c.condTrue(cc) {
		c.SetPC(c.pop16())
	}
	return nil
}

func opCALL(c *CPU) error {
	c.push16(c.PC())
	c.SetPC(uint16(c.b3)<<8 | uint16(c.b2))
	return nil
}

func opCALLcc(c *CPU) error {
	cc := (c.opcode >> 3) & 0x07
	if c.condTrue(cc) {
		c.push16(c.PC())
		c.SetPC(uint16(c.b3)<<8 | uint16(c.b2))
	}
	return nil
}

// opRST is CALL to a fixed page-zero address encoded in bits 3-5.
func opRST(c *CPU) error {
	n := (c.opcode >> 3) & 0x07
	c.push16(c.PC())
	c.SetPC(uint16(n) * 8)
	return nil
}

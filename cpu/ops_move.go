package cpu

// opMOV covers every register-to-register/memory move in 0x40-0x7F
// except 0x76 (HLT, installed separately in the dispatch table).
func opMOV(c *CPU) error {
	dst := (c.opcode >> 3) & 0x07
	src := c.opcode & 0x07
	c.setReg(dst, c.getReg(src))
	return nil
}

// opMVI loads an immediate byte into the destination encoded in bits 3-5.
func opMVI(c *CPU) error {
	dst := (c.opcode >> 3) & 0x07
	c.setReg(dst, c.b2)
	return nil
}

// opLXI loads a 16-bit immediate into the register pair encoded in bits 4-5.
func opLXI(c *CPU) error {
	rp := (c.opcode >> 4) & 0x03
	c.setRP(rp, uint16(c.b3)<<8|uint16(c.b2))
	return nil
}

func opSTAX(c *CPU) error {
	if c.opcode&0x10 == 0 {
		c.mem.Write(c.BC(), c.A)
	} else {
		c.mem.Write(c.DE(), c.A)
	}
	return nil
}

func opLDAX(c *CPU) error {
	if c.opcode&0x10 == 0 {
		c.A = c.mem.Read(c.BC())
	} else {
		c.A = c.mem.Read(c.DE())
	}
	return nil
}

func opSHLD(c *CPU) error {
	addr := uint16(c.b3)<<8 | uint16(c.b2)
	c.mem.Write(addr, c.L)
	c.mem.Write(addr+1, c.H)
	return nil
}

func opLHLD(c *CPU) error {
	addr := uint16(c.b3)<<8 | uint16(c.b2)
	c.L = c.mem.Read(addr)
	c.H = c.mem.Read(addr + 1)
	return nil
}

func opSTA(c *CPU) error {
	c.mem.Write(uint16(c.b3)<<8|uint16(c.b2), c.A)
	return nil
}

func opLDA(c *CPU) error {
	c.A = c.mem.Read(uint16(c.b3)<<8 | uint16(c.b2))
	return nil
}

func opXCHG(c *CPU) error {
	c.H, c.D = c.D, c.H
	c.L, c.E = c.E, c.L
	return nil
}

func opXTHL(c *CPU) error {
	sp := c.SP()
	lo := c.mem.Read(sp)
	hi := c.mem.Read(sp + 1)
	c.mem.Write(sp, c.L)
	c.mem.Write(sp+1, c.H)
	c.L, c.H = lo, hi
	return nil
}

func opSPHL(c *CPU) error {
	c.SetSP(c.HL())
	return nil
}

func opPCHL(c *CPU) error {
	c.SetPC(c.HL())
	return nil
}

func opNOP(c *CPU) error { return nil }

func opHLT(c *CPU) error {
	c.Halted = true
	return &Fault{Opcode: c.opcode, PC: c.PC() - 1, Reason: "halted"}
}

func opDI(c *CPU) error { return nil }
func opEI(c *CPU) error { return nil }

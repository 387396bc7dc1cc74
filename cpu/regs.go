package cpu

// getReg/setReg decode the standard 8080 3-bit register field:
// 0=B 1=C 2=D 3=E 4=H 5=L 6=(HL) 7=A.
func (c *CPU) getReg(code uint8) uint8 {
	switch code {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.mem.Read(c.HL())
	default:
		return c.A
	}
}

func (c *CPU) setReg(code uint8, v uint8) {
	switch code {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.mem.Write(c.HL(), v)
	default:
		c.A = v
	}
}

// getRP/setRP decode the 2-bit register-pair field used by
// LXI/INX/DCX/DAD: 0=BC 1=DE 2=HL 3=SP.
func (c *CPU) getRP(rp uint8) uint16 {
	switch rp {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP()
	}
}

func (c *CPU) setRP(rp uint8, v uint16) {
	switch rp {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SetSP(v)
	}
}

// condTrue evaluates the branch condition encoded in a conditional
// jump/call/return opcode's bits 3-5: 0=NZ 1=Z 2=NC 3=C 4=PO 5=PE 6=P 7=M.
func (c *CPU) condTrue(cc uint8) bool {
	switch cc {
	case 0:
		return !c.getFlag(zeroFlag)
	case 1:
		return c.getFlag(zeroFlag)
	case 2:
		return !c.getFlag(carryFlag)
	case 3:
		return c.getFlag(carryFlag)
	case 4:
		return !c.getFlag(parityFlag)
	case 5:
		return c.getFlag(parityFlag)
	case 6:
		return !c.getFlag(signFlag)
	default:
		return c.getFlag(signFlag)
	}
}

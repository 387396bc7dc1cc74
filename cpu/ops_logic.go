package cpu

// opANA computes the Auxiliary flag from the OR of the two operands
// before the AND is applied -- real 8080 silicon derives it from the
// bitwise OR of A and the operand's bit 3, not from the AND result.
func (c *CPU) aluAna(val uint8) {
	aux := (c.A|val)&0x08 != 0
	c.A &= val
	c.setSZP(c.A)
	c.setFlag(carryFlag, false)
	c.setFlag(auxiliaryFlag, aux)
}

func (c *CPU) aluXra(val uint8) {
	c.A ^= val
	c.setSZP(c.A)
	c.setFlag(carryFlag, false)
	c.setFlag(auxiliaryFlag, false)
}

func (c *CPU) aluOra(val uint8) {
	c.A |= val
	c.setSZP(c.A)
	c.setFlag(carryFlag, false)
	c.setFlag(auxiliaryFlag, false)
}

func opANA(c *CPU) error { c.aluAna(c.getReg(c.opcode & 0x07)); return nil }
func opXRA(c *CPU) error { c.aluXra(c.getReg(c.opcode & 0x07)); return nil }
func opORA(c *CPU) error { c.aluOra(c.getReg(c.opcode & 0x07)); return nil }
func opCMPr(c *CPU) error { c.aluCmp(c.getReg(c.opcode & 0x07)); return nil }

func opANI(c *CPU) error { c.aluAna(c.b2); return nil }
func opXRI(c *CPU) error { c.aluXra(c.b2); return nil }
func opORI(c *CPU) error { c.aluOra(c.b2); return nil }
func opCPI(c *CPU) error { c.aluCmp(c.b2); return nil }

// opCMA complements A; no flags are affected.
func opCMA(c *CPU) error { c.A = ^c.A; return nil }

// opCMC complements Carry only.
func opCMC(c *CPU) error { c.setFlag(carryFlag, !c.getFlag(carryFlag)); return nil }

// opSTC sets Carry.
func opSTC(c *CPU) error { c.setFlag(carryFlag, true); return nil }

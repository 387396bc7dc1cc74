package cpu

// opOUT traps to the BIOS hypercall: the function number is the
// instruction's immediate byte.
func opOUT(c *CPU) error {
	if c.hv == nil {
		return nil
	}
	return c.hv.BIOS(c.b2, c)
}

// opIN traps to the BDOS hypercall. Unlike OUT, the function selector
// is not the immediate byte but register C, per spec.md's BDOS table.
func opIN(c *CPU) error {
	if c.hv == nil {
		return nil
	}
	return c.hv.BDOS(c)
}

// opTable is the 256-entry instruction dispatch table. The 8080's
// opcode map is regular enough (register and register-pair fields sit
// in fixed bit positions across wide ranges) that it is built with a
// few loops over those ranges rather than one giant literal, unlike
// the irregular mainframe opcode map this emulator's table-dispatch
// idiom was learned from.
var opTable [256]func(*CPU) error

func init() {
	for i := range opTable {
		opTable[i] = opUnimplemented
	}

	// 0x00-0x3F: register/immediate data movement and misc single-byte ops.
	for rp := uint8(0); rp < 4; rp++ {
		base := rp << 4
		opTable[base|0x01] = opLXI
		opTable[base|0x03] = opINX
		opTable[base|0x09] = opDAD
		opTable[base|0x0b] = opDCX
	}
	opTable[0x02] = opSTAX
	opTable[0x12] = opSTAX
	opTable[0x0a] = opLDAX
	opTable[0x1a] = opLDAX
	opTable[0x22] = opSHLD
	opTable[0x2a] = opLHLD
	opTable[0x32] = opSTA
	opTable[0x3a] = opLDA

	for r := uint8(0); r < 8; r++ {
		opTable[r<<3|0x04] = opINR
		opTable[r<<3|0x05] = opDCR
		opTable[r<<3|0x06] = opMVI
	}

	opTable[0x00] = opNOP
	opTable[0x07] = opRLC
	opTable[0x0f] = opRRC
	opTable[0x17] = opRAL
	opTable[0x1f] = opRAR
	opTable[0x27] = opDAA
	opTable[0x2f] = opCMA
	opTable[0x37] = opSTC
	opTable[0x3f] = opCMC

	// 0x40-0x7F: MOV r,r' (0x76 is HLT, not MOV M,M).
	for op := 0x40; op <= 0x7f; op++ {
		opTable[op] = opMOV
	}
	opTable[0x76] = opHLT

	// 0x80-0xBF: register-indexed ALU group.
	for r := uint8(0); r < 8; r++ {
		opTable[0x80|r] = opADD
		opTable[0x88|r] = opADC
		opTable[0x90|r] = opSUB
		opTable[0x98|r] = opSBB
		opTable[0xa0|r] = opANA
		opTable[0xa8|r] = opXRA
		opTable[0xb0|r] = opORA
		opTable[0xb8|r] = opCMPr
	}

	// 0xC0-0xFF: conditional control flow, stack, immediate ALU, I/O.
	for cc := uint8(0); cc < 8; cc++ {
		base := cc << 3
		opTable[0xc0|base] = opRETcc
		opTable[0xc2|base] = opJMPcc
		opTable[0xc4|base] = opCALLcc
		opTable[0xc7|base] = opRST
	}
	for rp := uint8(0); rp < 4; rp++ {
		base := rp << 4
		opTable[base|0xc1] = opPOP
		opTable[base|0xc5] = opPUSH
	}
	opTable[0xc3] = opJMP
	opTable[0xc9] = opRET
	opTable[0xcd] = opCALL

	opTable[0xc6] = opADI
	opTable[0xce] = opACI
	opTable[0xd6] = opSUI
	opTable[0xde] = opSBI
	opTable[0xe6] = opANI
	opTable[0xee] = opXRI
	opTable[0xf6] = opORI
	opTable[0xfe] = opCPI

	opTable[0xe3] = opXTHL
	opTable[0xeb] = opXCHG
	opTable[0xe9] = opPCHL
	opTable[0xf9] = opSPHL

	opTable[0xd3] = opOUT
	opTable[0xdb] = opIN
	opTable[0xf3] = opDI
	opTable[0xfb] = opEI
}

// opUnimplemented should be unreachable: every opcode not in the
// undefined set is installed above. It exists as a safety net rather
// than leaving a nil table entry that would panic.
func opUnimplemented(c *CPU) error {
	c.Halted = true
	return &Fault{Opcode: c.opcode, PC: c.PC(), Reason: "unimplemented opcode"}
}

package cpu

import "github.com/rcornwell/i8080cpm/flags"

// Local aliases for the flag package's bit constants, for readability
// in the opcode handlers below.
const (
	signFlag      = flags.Sign
	zeroFlag      = flags.Zero
	auxiliaryFlag = flags.Auxiliary
	parityFlag    = flags.Parity
	carryFlag     = flags.Carry
	fixedBits     = flags.FixedBits
)

// opcodes_transfer.go - data transfer instructions: MOV, MVI, LXI, LDA/STA,
// LHLD/SHLD, LDAX/STAX, XCHG.

package main

// installTransferOps wires MOV r,r' (the whole 0x40-0x7F block except the
// HLT slot at 0x76, handled separately), MVI r,d8, LXI rp,d16, LDA/STA/
// LHLD/SHLD a16, LDAX/STAX B|D, and XCHG.
func installTransferOps(table *[256]opcodeEntry) {
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dest := reg8((op >> 3) & 0x07)
		src := reg8(op & 0x07)
		cycles := 5
		if dest == regM || src == regM {
			cycles = 7
		}
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.writeReg8(dest, c.readReg8(src))
				return nil
			},
			cycles: cycles,
			size:   1,
		}
	}

	mviSlots := map[byte]reg8{
		0x06: regB, 0x0E: regC, 0x16: regD, 0x1E: regE,
		0x26: regH, 0x2E: regL, 0x36: regM, 0x3E: regA,
	}
	for op, dest := range mviSlots {
		dest := dest
		cycles := 7
		if dest == regM {
			cycles = 10
		}
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.writeReg8(dest, c.fetchByte(basePC))
				return nil
			},
			cycles: cycles,
			size:   2,
		}
	}

	lxiSlots := map[byte]regPair{0x01: pairBC, 0x11: pairDE, 0x21: pairHL, 0x31: pairSP}
	for op, pair := range lxiSlots {
		pair := pair
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.writeRegPair(pair, c.fetchWord(basePC))
				return nil
			},
			cycles: 10,
			size:   3,
		}
	}

	table[0x32] = opcodeEntry{handler: opSTA, cycles: 13, size: 3}
	table[0x3A] = opcodeEntry{handler: opLDA, cycles: 13, size: 3}
	table[0x22] = opcodeEntry{handler: opSHLD, cycles: 16, size: 3}
	table[0x2A] = opcodeEntry{handler: opLHLD, cycles: 16, size: 3}

	ldaxSlots := map[byte]regPair{0x0A: pairBC, 0x1A: pairDE}
	for op, pair := range ldaxSlots {
		pair := pair
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				return opLDAX(c, basePC, opcode, pair)
			},
			cycles: 7,
			size:   1,
		}
	}
	staxSlots := map[byte]regPair{0x02: pairBC, 0x12: pairDE}
	for op, pair := range staxSlots {
		pair := pair
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				return opSTAX(c, basePC, opcode, pair)
			},
			cycles: 7,
			size:   1,
		}
	}

	table[0xEB] = opcodeEntry{handler: opXCHG, cycles: 5, size: 1}
}

func opSTA(c *CPU, basePC uint16, opcode byte) error {
	c.mem.WriteByte(c.fetchWord(basePC), c.A)
	return nil
}

func opLDA(c *CPU, basePC uint16, opcode byte) error {
	c.A = c.mem.ReadByte(c.fetchWord(basePC))
	return nil
}

func opSHLD(c *CPU, basePC uint16, opcode byte) error {
	c.mem.WriteWord(c.fetchWord(basePC), c.HL())
	return nil
}

func opLHLD(c *CPU, basePC uint16, opcode byte) error {
	c.SetHL(c.mem.ReadWord(c.fetchWord(basePC)))
	return nil
}

// opLDAX loads A from the memory address held in pair, which must be BC or
// DE (LDAX has no encoding for HL or SP; a caller reaching those would be
// a malformed decoder, reported as an illegal operand).
func opLDAX(c *CPU, basePC uint16, opcode byte, pair regPair) error {
	if pair != pairBC && pair != pairDE {
		return IllegalOperandError(basePC, opcode, "LDAX requires pair B or D")
	}
	c.A = c.mem.ReadByte(c.readRegPair(pair))
	return nil
}

// opSTAX stores A at the memory address held in pair, which must be BC or
// DE, for the same reason as opLDAX.
func opSTAX(c *CPU, basePC uint16, opcode byte, pair regPair) error {
	if pair != pairBC && pair != pairDE {
		return IllegalOperandError(basePC, opcode, "STAX requires pair B or D")
	}
	c.mem.WriteByte(c.readRegPair(pair), c.A)
	return nil
}

func opXCHG(c *CPU, basePC uint16, opcode byte) error {
	c.D, c.H = c.H, c.D
	c.E, c.L = c.L, c.E
	return nil
}

// opcodes_control.go - unconditional and conditional branches, stack
// transfer instructions, RST, and the two I/O instructions.

package main

// installControlOps wires JMP/Jcond, CALL/Ccond, RET/Rcond, RST n, PCHL,
// SPHL, PUSH/POP, XTHL, and IN/OUT.
func installControlOps(table *[256]opcodeEntry) {
	table[0xC3] = opcodeEntry{handler: opJMP, cycles: 10, size: 3}

	jSlots := map[byte]condition{
		0xC2: condNZ, 0xCA: condZ, 0xD2: condNC, 0xDA: condC,
		0xE2: condPO, 0xEA: condPE, 0xF2: condP, 0xFA: condM,
	}
	for op, cond := range jSlots {
		cond := cond
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error { return opJcond(c, basePC, opcode, cond) },
			cycles:  10, size: 3,
		}
	}

	table[0xCD] = opcodeEntry{handler: opCALL, cycles: 17, size: 3}

	cSlots := map[byte]condition{
		0xC4: condNZ, 0xCC: condZ, 0xD4: condNC, 0xDC: condC,
		0xE4: condPO, 0xEC: condPE, 0xF4: condP, 0xFC: condM,
	}
	for op, cond := range cSlots {
		cond := cond
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error { return opCcond(c, basePC, opcode, cond) },
			cycles:  17, size: 3,
		}
	}

	table[0xC9] = opcodeEntry{handler: opRET, cycles: 10, size: 1}

	rSlots := map[byte]condition{
		0xC0: condNZ, 0xC8: condZ, 0xD0: condNC, 0xD8: condC,
		0xE0: condPO, 0xE8: condPE, 0xF0: condP, 0xF8: condM,
	}
	for op, cond := range rSlots {
		cond := cond
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error { return opRcond(c, basePC, opcode, cond) },
			cycles:  11, size: 1,
		}
	}

	for n := byte(0); n < 8; n++ {
		op := 0xC7 + n*8
		n := n
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.push(c.PC)
				c.PC = uint16(n) * 8
				return nil
			},
			cycles: 11, size: 1,
		}
	}

	table[0xE9] = opcodeEntry{handler: opPCHL, cycles: 5, size: 1}
	table[0xF9] = opcodeEntry{handler: opSPHL, cycles: 5, size: 1}

	pushSlots := map[byte]regPair{0xC5: pairBC, 0xD5: pairDE, 0xE5: pairHL, 0xF5: pairSP}
	for op, pair := range pushSlots {
		pair := pair
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.push(c.readRegPairPushPop(pair))
				return nil
			},
			cycles: 11, size: 1,
		}
	}
	popSlots := map[byte]regPair{0xC1: pairBC, 0xD1: pairDE, 0xE1: pairHL, 0xF1: pairSP}
	for op, pair := range popSlots {
		pair := pair
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.writeRegPairPushPop(pair, c.pop())
				return nil
			},
			cycles: 10, size: 1,
		}
	}

	table[0xE3] = opcodeEntry{handler: opXTHL, cycles: 18, size: 1}

	table[0xDB] = opcodeEntry{handler: opIN, cycles: 10, size: 2}
	table[0xD3] = opcodeEntry{handler: opOUT, cycles: 10, size: 2}
}

func opJMP(c *CPU, basePC uint16, opcode byte) error {
	c.PC = c.fetchWord(basePC)
	return nil
}

func opJcond(c *CPU, basePC uint16, opcode byte, cond condition) error {
	target := c.fetchWord(basePC)
	if c.satisfied(cond) {
		c.PC = target
	}
	return nil
}

func opCALL(c *CPU, basePC uint16, opcode byte) error {
	target := c.fetchWord(basePC)
	c.push(c.PC)
	c.PC = target
	return nil
}

func opCcond(c *CPU, basePC uint16, opcode byte, cond condition) error {
	target := c.fetchWord(basePC)
	if c.satisfied(cond) {
		c.push(c.PC)
		c.PC = target
	}
	return nil
}

func opRET(c *CPU, basePC uint16, opcode byte) error {
	c.PC = c.pop()
	return nil
}

func opRcond(c *CPU, basePC uint16, opcode byte, cond condition) error {
	if c.satisfied(cond) {
		c.PC = c.pop()
	}
	return nil
}

// opPCHL sets PC to HL (an indirect jump), the teacher's way of describing
// HL as a computed-goto target.
func opPCHL(c *CPU, basePC uint16, opcode byte) error {
	c.PC = c.HL()
	return nil
}

// opSPHL exchanges HL with the word at the top of the stack, keeping the
// source emulator's SPHL behavior (the same effect as XTHL). SP itself is
// not changed.
func opSPHL(c *CPU, basePC uint16, opcode byte) error {
	top := c.mem.ReadWord(c.SP)
	c.mem.WriteWord(c.SP, c.HL())
	c.SetHL(top)
	return nil
}

// opXTHL exchanges HL with the top word of the stack without moving SP.
func opXTHL(c *CPU, basePC uint16, opcode byte) error {
	top := c.mem.ReadWord(c.SP)
	c.mem.WriteWord(c.SP, c.HL())
	c.SetHL(top)
	return nil
}

func opIN(c *CPU, basePC uint16, opcode byte) error {
	port := c.fetchByte(basePC)
	c.A = c.In(port)
	return nil
}

func opOUT(c *CPU, basePC uint16, opcode byte) error {
	port := c.fetchByte(basePC)
	c.Out(port, c.A)
	return nil
}

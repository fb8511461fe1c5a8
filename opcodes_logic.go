// opcodes_logic.go - boolean ops on A, rotates, and the standalone flag ops.

package main

// installLogicOps wires ANA/ANI, XRA/XRI, ORA/ORI, CMP/CPI, RLC/RRC/RAL/RAR,
// and CMA/CMC/STC.
func installLogicOps(table *[256]opcodeEntry) {
	for op := 0xA0; op <= 0xA7; op++ {
		src := reg8(op & 0x07)
		table[op] = opcodeEntry{handler: regOp(src, func(c *CPU, v byte) { c.aluAna(v) }), cycles: regCycles(src, 4, 7), size: 1}
	}
	for op := 0xA8; op <= 0xAF; op++ {
		src := reg8(op & 0x07)
		table[op] = opcodeEntry{handler: regOp(src, func(c *CPU, v byte) { c.aluXra(v) }), cycles: regCycles(src, 4, 7), size: 1}
	}
	for op := 0xB0; op <= 0xB7; op++ {
		src := reg8(op & 0x07)
		table[op] = opcodeEntry{handler: regOp(src, func(c *CPU, v byte) { c.aluOra(v) }), cycles: regCycles(src, 4, 7), size: 1}
	}
	for op := 0xB8; op <= 0xBF; op++ {
		src := reg8(op & 0x07)
		table[op] = opcodeEntry{handler: regOp(src, func(c *CPU, v byte) { c.aluSub(v, false) }), cycles: regCycles(src, 4, 7), size: 1}
	}

	table[0xE6] = opcodeEntry{handler: immOp(func(c *CPU, v byte) { c.aluAna(v) }), cycles: 7, size: 2}
	table[0xEE] = opcodeEntry{handler: immOp(func(c *CPU, v byte) { c.aluXra(v) }), cycles: 7, size: 2}
	table[0xF6] = opcodeEntry{handler: immOp(func(c *CPU, v byte) { c.aluOra(v) }), cycles: 7, size: 2}
	table[0xFE] = opcodeEntry{handler: immOp(func(c *CPU, v byte) { c.aluSub(v, false) }), cycles: 7, size: 2}

	table[0x07] = opcodeEntry{handler: opRLC, cycles: 4, size: 1}
	table[0x0F] = opcodeEntry{handler: opRRC, cycles: 4, size: 1}
	table[0x17] = opcodeEntry{handler: opRAL, cycles: 4, size: 1}
	table[0x1F] = opcodeEntry{handler: opRAR, cycles: 4, size: 1}

	table[0x2F] = opcodeEntry{handler: opCMA, cycles: 4, size: 1}
	table[0x37] = opcodeEntry{handler: opSTC, cycles: 4, size: 1}
	table[0x3F] = opcodeEntry{handler: opCMC, cycles: 4, size: 1}
}

// aluAna performs A &= value. AC is set to the OR of bit 3 of the prior A
// and bit 3 of value, reproducing the 8080's documented AND quirk; CY is
// always cleared.
func (c *CPU) aluAna(value byte) {
	ac := (c.A&0x08 != 0) || (value&0x08 != 0)
	c.A &= value
	c.setFlags(uint32(c.A), flagS|flagZ|flagP)
	c.AC = ac
	c.CY = false
}

// aluXra performs A ^= value, clearing AC and CY.
func (c *CPU) aluXra(value byte) {
	c.A ^= value
	c.setFlags(uint32(c.A), flagS|flagZ|flagP)
	c.AC = false
	c.CY = false
}

// aluOra performs A |= value, clearing AC and CY.
func (c *CPU) aluOra(value byte) {
	c.A |= value
	c.setFlags(uint32(c.A), flagS|flagZ|flagP)
	c.AC = false
	c.CY = false
}

// opRLC rotates A left by one bit; the bit that leaves bit 7 re-enters at
// bit 0 and is copied into CY.
func opRLC(c *CPU, basePC uint16, opcode byte) error {
	carry := c.A >> 7
	c.A = (c.A << 1) | carry
	c.CY = carry != 0
	return nil
}

// opRRC rotates A right by one bit; the bit that leaves bit 0 re-enters at
// bit 7 and is copied into CY.
func opRRC(c *CPU, basePC uint16, opcode byte) error {
	carry := c.A & 0x01
	c.A = (c.A >> 1) | (carry << 7)
	c.CY = carry != 0
	return nil
}

// opRAL rotates A left through CY: the old CY enters at bit 0, bit 7
// becomes the new CY.
func opRAL(c *CPU, basePC uint16, opcode byte) error {
	var oldCY byte
	if c.CY {
		oldCY = 1
	}
	newCY := c.A >> 7
	c.A = (c.A << 1) | oldCY
	c.CY = newCY != 0
	return nil
}

// opRAR rotates A right through CY: the old CY enters at bit 7, bit 0
// becomes the new CY.
func opRAR(c *CPU, basePC uint16, opcode byte) error {
	var oldCY byte
	if c.CY {
		oldCY = 1
	}
	newCY := c.A & 0x01
	c.A = (c.A >> 1) | (oldCY << 7)
	c.CY = newCY != 0
	return nil
}

func opCMA(c *CPU, basePC uint16, opcode byte) error {
	c.A = ^c.A
	return nil
}

func opSTC(c *CPU, basePC uint16, opcode byte) error {
	c.CY = true
	return nil
}

func opCMC(c *CPU, basePC uint16, opcode byte) error {
	c.CY = !c.CY
	return nil
}

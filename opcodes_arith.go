// opcodes_arith.go - arithmetic on A, increment/decrement, and DAA.

package main

// installArithOps wires ADD/ADI/ADC/ACI/SUB/SUI/SBB/SBI, INR/DCR r, INX/DCX
// rp, DAD rp, and DAA.
func installArithOps(table *[256]opcodeEntry) {
	for op := 0x80; op <= 0x87; op++ {
		src := reg8(op & 0x07)
		table[op] = opcodeEntry{handler: regOp(src, func(c *CPU, v byte) { c.aluAdd(v, false) }), cycles: regCycles(src, 4, 7), size: 1}
	}
	for op := 0x88; op <= 0x8F; op++ {
		src := reg8(op & 0x07)
		table[op] = opcodeEntry{handler: regOp(src, func(c *CPU, v byte) { c.aluAdd(v, c.CY) }), cycles: regCycles(src, 4, 7), size: 1}
	}
	for op := 0x90; op <= 0x97; op++ {
		src := reg8(op & 0x07)
		table[op] = opcodeEntry{handler: regOp(src, func(c *CPU, v byte) { c.A = c.aluSub(v, false) }), cycles: regCycles(src, 4, 7), size: 1}
	}
	for op := 0x98; op <= 0x9F; op++ {
		src := reg8(op & 0x07)
		table[op] = opcodeEntry{handler: regOp(src, func(c *CPU, v byte) { c.A = c.aluSub(v, c.CY) }), cycles: regCycles(src, 4, 7), size: 1}
	}

	table[0xC6] = opcodeEntry{handler: immOp(func(c *CPU, v byte) { c.aluAdd(v, false) }), cycles: 7, size: 2}
	table[0xCE] = opcodeEntry{handler: immOp(func(c *CPU, v byte) { c.aluAdd(v, c.CY) }), cycles: 7, size: 2}
	table[0xD6] = opcodeEntry{handler: immOp(func(c *CPU, v byte) { c.A = c.aluSub(v, false) }), cycles: 7, size: 2}
	table[0xDE] = opcodeEntry{handler: immOp(func(c *CPU, v byte) { c.A = c.aluSub(v, c.CY) }), cycles: 7, size: 2}

	inrSlots := map[byte]reg8{0x04: regB, 0x0C: regC, 0x14: regD, 0x1C: regE, 0x24: regH, 0x2C: regL, 0x34: regM, 0x3C: regA}
	for op, reg := range inrSlots {
		reg := reg
		cycles := 5
		if reg == regM {
			cycles = 10
		}
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.incReg(reg, 1)
				return nil
			},
			cycles: cycles, size: 1,
		}
	}
	dcrSlots := map[byte]reg8{0x05: regB, 0x0D: regC, 0x15: regD, 0x1D: regE, 0x25: regH, 0x2D: regL, 0x35: regM, 0x3D: regA}
	for op, reg := range dcrSlots {
		reg := reg
		cycles := 5
		if reg == regM {
			cycles = 10
		}
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.incReg(reg, -1)
				return nil
			},
			cycles: cycles, size: 1,
		}
	}

	inxSlots := map[byte]regPair{0x03: pairBC, 0x13: pairDE, 0x23: pairHL, 0x33: pairSP}
	for op, pair := range inxSlots {
		pair := pair
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.writeRegPair(pair, c.readRegPair(pair)+1)
				return nil
			},
			cycles: 5, size: 1,
		}
	}
	dcxSlots := map[byte]regPair{0x0B: pairBC, 0x1B: pairDE, 0x2B: pairHL, 0x3B: pairSP}
	for op, pair := range dcxSlots {
		pair := pair
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.writeRegPair(pair, c.readRegPair(pair)-1)
				return nil
			},
			cycles: 5, size: 1,
		}
	}

	dadSlots := map[byte]regPair{0x09: pairBC, 0x19: pairDE, 0x29: pairHL, 0x39: pairSP}
	for op, pair := range dadSlots {
		pair := pair
		table[op] = opcodeEntry{
			handler: func(c *CPU, basePC uint16, opcode byte) error {
				c.dad(pair)
				return nil
			},
			cycles: 10, size: 1,
		}
	}

	table[0x27] = opcodeEntry{handler: opDAA, cycles: 4, size: 1}
}

// regOp adapts a unary ALU op taking the value of register src into a full
// opcode handler.
func regOp(src reg8, op func(c *CPU, v byte)) opcodeHandler {
	return func(c *CPU, basePC uint16, opcode byte) error {
		op(c, c.readReg8(src))
		return nil
	}
}

// immOp adapts a unary ALU op taking a fetched immediate byte into a full
// opcode handler.
func immOp(op func(c *CPU, v byte)) opcodeHandler {
	return func(c *CPU, basePC uint16, opcode byte) error {
		op(c, c.fetchByte(basePC))
		return nil
	}
}

func regCycles(src reg8, plain, viaM int) int {
	if src == regM {
		return viaM
	}
	return plain
}

// aluAdd performs A = A + value (+ carryIn), setting S, Z, P, CY, AC.
func (c *CPU) aluAdd(value byte, carryIn bool) {
	a := uint32(c.A)
	b := uint32(value)
	if carryIn {
		b++
	}
	result := a + b
	c.setFlags(result, flagS|flagZ|flagP|flagCY)
	c.AC = auxCarry(a, b, result)
	c.A = byte(result)
}

// aluSub computes A - value (- carryIn), returning the 8-bit result and
// setting S, Z, P, CY, AC. CY is the true borrow flag (a < subtrahend); AC
// follows the uniform two's-complement formula of spec.md §4.4, which is
// used here only to derive the half-carry/half-borrow bit, not CY.
func (c *CPU) aluSub(value byte, carryIn bool) byte {
	a := uint32(c.A)
	subtrahend := uint32(value)
	if carryIn {
		subtrahend++
	}
	cy := a < subtrahend
	result := (a - subtrahend) & 0xFF

	bTwos := uint32(byte(-int32(subtrahend)))
	wide := a + bTwos
	c.AC = auxCarry(a, bTwos, wide)
	c.setFlags(result, flagS|flagZ|flagP)
	c.CY = cy
	return byte(result)
}

// incReg adds delta (+1 for INR, -1 for DCR) to the selected register or M,
// setting S, Z, P, AC; CY is left unaffected, matching real 8080 behavior.
func (c *CPU) incReg(reg reg8, delta int32) {
	a := uint32(c.readReg8(reg))
	b := uint32(byte(delta))
	result := a + b
	c.AC = auxCarry(a, b, result)
	c.setFlags(result, flagS|flagZ|flagP)
	c.writeReg8(reg, byte(result))
}

// dad adds the selected pair to HL, affecting only CY.
func (c *CPU) dad(pair regPair) {
	result := uint32(c.HL()) + uint32(c.readRegPair(pair))
	c.CY = result > 0xFFFF
	c.SetHL(uint16(result))
}

// opDAA decimal-adjusts A for BCD arithmetic: if the low nibble exceeds 9
// or AC is set, add 6 (and set AC on a resulting nibble carry); then if the
// resulting high nibble exceeds 9 or CY is set, add 0x60 (and set CY on a
// resulting carry).
func opDAA(c *CPU, basePC uint16, opcode byte) error {
	a := c.A
	cy := c.CY

	if a&0x0F > 9 || c.AC {
		a += 6
		c.AC = true
	}
	if (a>>4) > 9 || cy {
		if uint32(a)+0x60 > 0xFF {
			cy = true
		}
		a += 0x60
	}
	c.CY = cy
	c.A = a
	c.setFlags(uint32(a), flagS|flagZ|flagP)
	return nil
}

// opcodes_table.go - dispatch table construction and the handlers with no
// natural home in one of the instruction-group files.

package main

import "github.com/rs/zerolog/log"

// initTable zero-fills every slot with the undefined-opcode sentinel, then
// lets each instruction-group installer overwrite the slots it owns. This
// mirrors the teacher repo's initBaseOps idiom: a full-table sentinel pass
// followed by targeted (and in places loop-generated, closure-capturing)
// overrides.
func (c *CPU) initTable() {
	for i := range c.table {
		c.table[i] = opcodeEntry{handler: opUndefined, cycles: 4, size: 1}
	}

	installNOPs(&c.table)
	installTransferOps(&c.table)
	installArithOps(&c.table)
	installLogicOps(&c.table)
	installControlOps(&c.table)

	c.table[0x76] = opcodeEntry{handler: opHLT, cycles: 7, size: 1}
	c.table[0xF3] = opcodeEntry{handler: opDI, cycles: 4, size: 1}
	c.table[0xFB] = opcodeEntry{handler: opEI, cycles: 4, size: 1}
}

// installNOPs fills 0x00 and the seven unused single-byte slots the target
// ROM never issues meaningfully (0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38).
func installNOPs(table *[256]opcodeEntry) {
	for _, op := range []byte{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		table[op] = opcodeEntry{handler: opNOP, cycles: 4, size: 1}
	}
}

// opUndefined is the sentinel for table slots with no assigned instruction.
// Per spec.md's error-handling design it reports a DecodeError and stops
// the execution loop rather than printing and calling exit(), as the C
// original's UNDEFINED_OP_WRAP does.
func opUndefined(c *CPU, basePC uint16, opcode byte) error {
	log.Error().Uint16("pc", basePC).Uint8("opcode", opcode).Msg("undefined opcode")
	return DecodeError(basePC, opcode)
}

func opNOP(c *CPU, basePC uint16, opcode byte) error {
	return nil
}

func opHLT(c *CPU, basePC uint16, opcode byte) error {
	c.Halted = true
	return nil
}

func opDI(c *CPU, basePC uint16, opcode byte) error {
	c.InterruptsEnabled = false
	return nil
}

func opEI(c *CPU, basePC uint16, opcode byte) error {
	c.InterruptsEnabled = true
	return nil
}

// disasm.go - opcode-to-mnemonic table for DisassembleStep, grounded on the
// original emulator's decompile_inst: a static string table indexed by
// opcode, with %02X/%04X placeholders filled from the bytes that follow.

package main

import "fmt"

// mnemonics holds one entry per opcode. "%02X" is replaced by a fetched
// immediate byte, "%04X" by a fetched immediate little-endian word. Slots
// with no defined instruction print as "???".
var mnemonics = [256]string{
	0x00: "NOP", 0x01: "LXI B,%04X", 0x02: "STAX B", 0x03: "INX B",
	0x04: "INR B", 0x05: "DCR B", 0x06: "MVI B,%02X", 0x07: "RLC",
	0x08: "NOP", 0x09: "DAD B", 0x0A: "LDAX B", 0x0B: "DCX B",
	0x0C: "INR C", 0x0D: "DCR C", 0x0E: "MVI C,%02X", 0x0F: "RRC",

	0x10: "NOP", 0x11: "LXI D,%04X", 0x12: "STAX D", 0x13: "INX D",
	0x14: "INR D", 0x15: "DCR D", 0x16: "MVI D,%02X", 0x17: "RAL",
	0x18: "NOP", 0x19: "DAD D", 0x1A: "LDAX D", 0x1B: "DCX D",
	0x1C: "INR E", 0x1D: "DCR E", 0x1E: "MVI E,%02X", 0x1F: "RAR",

	0x20: "NOP", 0x21: "LXI H,%04X", 0x22: "SHLD %04X", 0x23: "INX H",
	0x24: "INR H", 0x25: "DCR H", 0x26: "MVI H,%02X", 0x27: "DAA",
	0x28: "NOP", 0x29: "DAD H", 0x2A: "LHLD %04X", 0x2B: "DCX H",
	0x2C: "INR L", 0x2D: "DCR L", 0x2E: "MVI L,%02X", 0x2F: "CMA",

	0x30: "NOP", 0x31: "LXI SP,%04X", 0x32: "STA %04X", 0x33: "INX SP",
	0x34: "INR M", 0x35: "DCR M", 0x36: "MVI M,%02X", 0x37: "STC",
	0x38: "NOP", 0x39: "DAD SP", 0x3A: "LDA %04X", 0x3B: "DCX SP",
	0x3C: "INR A", 0x3D: "DCR A", 0x3E: "MVI A,%02X", 0x3F: "CMC",

	0x76: "HLT",

	0xC0: "RNZ", 0xC1: "POP B", 0xC2: "JNZ %04X", 0xC3: "JMP %04X",
	0xC4: "CNZ %04X", 0xC5: "PUSH B", 0xC6: "ADI %02X", 0xC7: "RST 0",
	0xC8: "RZ", 0xC9: "RET", 0xCA: "JZ %04X",
	0xCC: "CZ %04X", 0xCD: "CALL %04X", 0xCE: "ACI %02X", 0xCF: "RST 1",

	0xD0: "RNC", 0xD1: "POP D", 0xD2: "JNC %04X", 0xD3: "OUT %02X",
	0xD4: "CNC %04X", 0xD5: "PUSH D", 0xD6: "SUI %02X", 0xD7: "RST 2",
	0xD8: "RC", 0xDA: "JC %04X", 0xDB: "IN %02X",
	0xDC: "CC %04X", 0xDE: "SBI %02X", 0xDF: "RST 3",

	0xE0: "RPO", 0xE1: "POP H", 0xE2: "JPO %04X", 0xE3: "XTHL",
	0xE4: "CPO %04X", 0xE5: "PUSH H", 0xE6: "ANI %02X", 0xE7: "RST 4",
	0xE8: "RPE", 0xE9: "PCHL", 0xEA: "JPE %04X", 0xEB: "XCHG",
	0xEC: "CPE %04X", 0xEE: "XRI %02X", 0xEF: "RST 5",

	0xF0: "RP", 0xF1: "POP PSW", 0xF2: "JP %04X", 0xF3: "DI",
	0xF4: "CP %04X", 0xF5: "PUSH PSW", 0xF6: "ORI %02X", 0xF7: "RST 6",
	0xF8: "RM", 0xF9: "SPHL", 0xFA: "JM %04X", 0xFB: "EI",
	0xFC: "CM %04X", 0xFE: "CPI %02X", 0xFF: "RST 7",
}

var reg8Name = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

func init() {
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dest := reg8Name[(op>>3)&0x07]
		src := reg8Name[op&0x07]
		mnemonics[op] = "MOV " + dest + "," + src
	}
	aluGroups := []struct {
		base int
		name string
	}{
		{0x80, "ADD"}, {0x88, "ADC"}, {0x90, "SUB"}, {0x98, "SBB"},
		{0xA0, "ANA"}, {0xA8, "XRA"}, {0xB0, "ORA"}, {0xB8, "CMP"},
	}
	for _, g := range aluGroups {
		for i := 0; i < 8; i++ {
			mnemonics[g.base+i] = g.name + " " + reg8Name[i]
		}
	}
}

// disassemble formats the instruction at pc (whose first byte, opcode, has
// already been read) using mnemonics, fetching any trailing immediate bytes
// directly from mem.
func disassemble(mem *Memory, pc uint16, opcode byte) string {
	template := mnemonics[opcode]
	if template == "" {
		return fmt.Sprintf("%04X  %02X         ???", pc, opcode)
	}
	switch {
	case containsVerb(template, "%04X"):
		word := uint16(mem.ReadByte(pc+1)) | uint16(mem.ReadByte(pc+2))<<8
		return fmt.Sprintf("%04X  %02X %02X %02X    "+template, pc, opcode, mem.ReadByte(pc+1), mem.ReadByte(pc+2), word)
	case containsVerb(template, "%02X"):
		b := mem.ReadByte(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X       "+template, pc, opcode, b, b)
	default:
		return fmt.Sprintf("%04X  %02X          "+template, pc, opcode)
	}
}

func containsVerb(template, verb string) bool {
	for i := 0; i+len(verb) <= len(template); i++ {
		if template[i:i+len(verb)] == verb {
			return true
		}
	}
	return false
}

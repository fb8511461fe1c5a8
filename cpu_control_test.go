package main

import "testing"

func TestJMP(t *testing.T) {
	c := newTestCPU()
	c.mem.Load(0, []byte{0xC3, 0x34, 0x12}) // JMP 0x1234
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x1234 {
		t.Fatalf("PC = %#04x, want 0x1234", c.PC)
	}
}

func TestCallAndReturn(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xF000
	// CALL 0x0100 at address 0; at 0x0100, RET
	c.mem.Load(0, []byte{0xCD, 0x00, 0x01})
	c.mem.WriteByte(0x0100, 0xC9) // RET

	if err := c.Step(); err != nil { // CALL
		t.Fatalf("CALL step: %v", err)
	}
	if c.PC != 0x0100 {
		t.Fatalf("PC after CALL = %#04x, want 0x0100", c.PC)
	}
	if c.SP != 0xEFFE {
		t.Fatalf("SP after CALL = %#04x, want 0xeffe", c.SP)
	}
	if ret := c.mem.ReadWord(c.SP); ret != 0x0003 {
		t.Fatalf("pushed return address = %#04x, want 0x0003", ret)
	}

	if err := c.Step(); err != nil { // RET
		t.Fatalf("RET step: %v", err)
	}
	if c.PC != 0x0003 {
		t.Fatalf("PC after RET = %#04x, want 0x0003", c.PC)
	}
	if c.SP != 0xF000 {
		t.Fatalf("SP after RET = %#04x, want 0xf000", c.SP)
	}
}

func TestConditionalJumpNotTaken(t *testing.T) {
	c := newTestCPU()
	c.Z = false
	c.mem.Load(0, []byte{0xCA, 0x00, 0x20}) // JZ 0x2000, Z clear
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 3 {
		t.Fatalf("PC = %#04x, want 3 (fallthrough)", c.PC)
	}
}

func TestPushPopBC(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xF000
	c.SetBC(0xCAFE)
	c.mem.Load(0, []byte{0xC5, 0x01, 0x00, 0x00, 0xC1}) // PUSH B ; LXI B,0 ; POP B
	if err := c.Step(); err != nil {
		t.Fatalf("PUSH step: %v", err)
	}
	if c.BC() != 0xCAFE {
		t.Fatalf("PUSH should not modify BC")
	}
	if err := c.Step(); err != nil {
		t.Fatalf("LXI step: %v", err)
	}
	if c.BC() != 0x0000 {
		t.Fatalf("LXI B,0 should clear BC")
	}
	if err := c.Step(); err != nil {
		t.Fatalf("POP step: %v", err)
	}
	if c.BC() != 0xCAFE {
		t.Fatalf("BC after POP = %#04x, want 0xcafe", c.BC())
	}
}

func TestXTHL(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xF000
	c.mem.WriteWord(0xF000, 0x1234)
	c.SetHL(0x5678)
	opXTHL(c, 0, 0xE3)
	if c.HL() != 0x1234 {
		t.Fatalf("HL = %#04x, want 0x1234", c.HL())
	}
	if got := c.mem.ReadWord(0xF000); got != 0x5678 {
		t.Fatalf("stack top = %#04x, want 0x5678", got)
	}
}

func TestSPHLAndPCHL(t *testing.T) {
	c := newTestCPU()
	c.mem.WriteWord(0xF000, 0x1234)
	c.SetHL(0xBEEF)
	opSPHL(c, 0, 0xF9)
	if c.SP != 0xF000 || c.HL() != 0x1234 {
		t.Fatalf("after SPHL SP=%#04x HL=%#04x, want SP=0xf000 HL=0x1234", c.SP, c.HL())
	}
	if got := c.mem.ReadWord(0xF000); got != 0xBEEF {
		t.Fatalf("stack top after SPHL = %#04x, want 0xbeef", got)
	}
	opPCHL(c, 0, 0xE9)
	if c.PC != 0x1234 {
		t.Fatalf("PC after PCHL = %#04x, want 0x1234", c.PC)
	}
}

func TestInOut(t *testing.T) {
	c := newTestCPU()
	var lastPort, lastData byte
	c.SetIO(func(port byte) byte {
		return port + 1
	}, func(port byte, data byte) {
		lastPort, lastData = port, data
	})
	c.mem.Load(0, []byte{0xDB, 0x05}) // IN 5
	if err := c.Step(); err != nil {
		t.Fatalf("IN step: %v", err)
	}
	if c.A != 6 {
		t.Fatalf("A after IN 5 = %#02x, want 6", c.A)
	}

	c.A = 0x77
	c.PC = 0
	c.mem.Load(0, []byte{0xD3, 0x09}) // OUT 9
	if err := c.Step(); err != nil {
		t.Fatalf("OUT step: %v", err)
	}
	if lastPort != 9 || lastData != 0x77 {
		t.Fatalf("OUT callback got port=%d data=%#02x, want port=9 data=0x77", lastPort, lastData)
	}
}

func TestRSTPushesAndJumps(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xF000
	c.PC = 0x0050
	c.mem.WriteByte(0x0050, 0xCF) // RST 1
	if err := c.Step(); err != nil {
		t.Fatalf("RST step: %v", err)
	}
	if c.PC != 0x0008 {
		t.Fatalf("PC after RST 1 = %#04x, want 0x0008", c.PC)
	}
	if ret := c.mem.ReadWord(c.SP); ret != 0x0051 {
		t.Fatalf("pushed return = %#04x, want 0x0051", ret)
	}
}

func TestInterruptServicedBeforeFetch(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xF000
	c.PC = 0x2000
	c.InterruptsEnabled = true
	c.RaiseInterrupt(2)
	c.mem.WriteByte(0x2000, 0x00) // NOP, should not execute this step

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x10 {
		t.Fatalf("PC after servicing RST 2 = %#04x, want 0x0010", c.PC)
	}
	if c.InterruptsEnabled {
		t.Fatalf("servicing an interrupt must clear InterruptsEnabled")
	}
	if c.PendingInterrupts != 0 {
		t.Fatalf("PendingInterrupts should be cleared for the serviced bit")
	}
}

func TestUndefinedOpcodeReturnsDecodeError(t *testing.T) {
	c := newTestCPU()
	c.mem.WriteByte(0, 0xDD) // never assigned a handler
	err := c.Step()
	if err == nil {
		t.Fatalf("expected a decode error")
	}
}

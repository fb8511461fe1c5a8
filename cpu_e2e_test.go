package main

import "testing"

// TestCountdownLoop exercises DCR, conditional jump, and HLT together: a
// small program that counts C down from 5 to 0 and halts.
func TestCountdownLoop(t *testing.T) {
	c := newTestCPU()
	// 0000: MVI C,0x05
	// 0002: DCR C      <- loop
	// 0003: JNZ 0x0002
	// 0006: HLT
	c.mem.Load(0, []byte{
		0x0E, 0x05,
		0x0D,
		0xC2, 0x02, 0x00,
		0x76,
	})

	for steps := 0; steps < 100 && !c.Halted; steps++ {
		if err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", steps, err)
		}
	}
	if !c.Halted {
		t.Fatalf("program did not halt")
	}
	if c.C != 0 {
		t.Fatalf("C = %#02x, want 0x00", c.C)
	}
}

// TestSubroutineCallPreservesCaller exercises CALL/RET alongside register
// arithmetic done entirely inside the callee.
func TestSubroutineCallPreservesCaller(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xF000
	// 0000: MVI A,0x10
	// 0002: CALL 0x0100
	// 0005: HLT
	// 0100: INR A
	// 0101: RET
	c.mem.Load(0, []byte{0x3E, 0x10, 0xCD, 0x00, 0x01, 0x76})
	c.mem.Load(0x0100, []byte{0x3C, 0xC9})

	for steps := 0; steps < 10 && !c.Halted; steps++ {
		if err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", steps, err)
		}
	}
	if c.A != 0x11 {
		t.Fatalf("A = %#02x, want 0x11", c.A)
	}
	if c.SP != 0xF000 {
		t.Fatalf("SP = %#04x, want 0xf000 (balanced call/ret)", c.SP)
	}
}

// TestInterruptDuringHalt exercises the HLT + RaiseInterrupt + RST sequence
// the VBlank ticker relies on: a halted CPU resumes via interrupt service.
func TestInterruptDuringHalt(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xF000
	c.InterruptsEnabled = true
	c.mem.Load(0, []byte{0x76}) // HLT
	c.mem.WriteByte(0x10, 0x76) // RST 2 target also halts, to stop the test

	if err := c.Step(); err != nil {
		t.Fatalf("HLT step: %v", err)
	}
	if !c.Halted {
		t.Fatalf("CPU should be halted")
	}

	c.RaiseInterrupt(2)
	if err := c.Step(); err != nil {
		t.Fatalf("interrupt-service step: %v", err)
	}
	if c.Halted {
		t.Fatalf("servicing an interrupt should clear Halted")
	}
	if c.PC != 0x10 {
		t.Fatalf("PC = %#04x, want 0x0010", c.PC)
	}
}

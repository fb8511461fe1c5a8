package main

import "testing"

func newTestCPU() *CPU {
	c := NewCPU(0)
	c.AttachMemory(NewMemory())
	return c
}

func TestAluAddSetsCarryAndAux(t *testing.T) {
	c := newTestCPU()
	c.A = 0xFF
	c.aluAdd(0x01, false)
	if c.A != 0x00 {
		t.Fatalf("A = %#02x, want 0x00", c.A)
	}
	if !c.CY {
		t.Fatalf("CY should be set on 0xFF+0x01 overflow")
	}
	if !c.Z {
		t.Fatalf("Z should be set when result is zero")
	}
	if !c.AC {
		t.Fatalf("AC should be set on 0xFF+0x01 nibble carry")
	}
}

func TestAluAddNoCarry(t *testing.T) {
	c := newTestCPU()
	c.A = 0x14
	c.aluAdd(0x02, false)
	if c.A != 0x16 || c.CY {
		t.Fatalf("A=%#02x CY=%v, want A=0x16 CY=false", c.A, c.CY)
	}
}

func TestAluSubBorrow(t *testing.T) {
	c := newTestCPU()
	c.A = 0x02
	result := c.aluSub(0x05, false)
	if result != 0xFD {
		t.Fatalf("0x02-0x05 = %#02x, want 0xfd", result)
	}
	if !c.CY {
		t.Fatalf("CY (borrow) should be set when a < b")
	}
}

func TestAluSubNoBorrow(t *testing.T) {
	c := newTestCPU()
	c.A = 0x05
	result := c.aluSub(0x02, false)
	if result != 0x03 || c.CY {
		t.Fatalf("0x05-0x02 = %#02x CY=%v, want 0x03 CY=false", result, c.CY)
	}
}

func TestIncRegLeavesCarryAlone(t *testing.T) {
	c := newTestCPU()
	c.CY = true
	c.A = 0xFF
	c.incReg(regA, 1)
	if c.A != 0x00 {
		t.Fatalf("INR A on 0xff = %#02x, want 0x00", c.A)
	}
	if !c.CY {
		t.Fatalf("INR must not touch CY")
	}
	if !c.Z {
		t.Fatalf("Z should be set after wrapping to zero")
	}
}

func TestDAABoundaryFromSpec(t *testing.T) {
	c := newTestCPU()
	c.A = 0x9B
	c.CY, c.AC = false, false
	opDAA(c, 0, 0x27)
	if c.A != 0x01 {
		t.Fatalf("A = %#02x, want 0x01", c.A)
	}
	if !c.CY {
		t.Fatalf("CY should be set")
	}
}

func TestDAAAfterAddFromSpec(t *testing.T) {
	c := newTestCPU()
	c.A = 0x09
	c.aluAdd(0x07, false)
	opDAA(c, 0, 0x27)
	if c.A != 0x16 {
		t.Fatalf("A = %#02x, want 0x16", c.A)
	}
	if c.CY {
		t.Fatalf("CY should be clear")
	}
	if !c.AC {
		t.Fatalf("AC should be set")
	}
}

func TestDADSetsCarryOnly(t *testing.T) {
	c := newTestCPU()
	c.SetHL(0xFFFF)
	c.SetBC(0x0001)
	c.S = true // should be left alone by DAD
	c.dad(pairBC)
	if c.HL() != 0x0000 {
		t.Fatalf("HL = %#04x, want 0x0000", c.HL())
	}
	if !c.CY {
		t.Fatalf("CY should be set on 16-bit overflow")
	}
	if !c.S {
		t.Fatalf("DAD must not touch S")
	}
}

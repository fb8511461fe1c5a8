// registers.go - CPU register file and Program Status Word

package main

// PSW flag bit positions as packed for PUSH PSW / POP PSW. This is the
// source emulator's layout, not the canonical 8080 encoding (S=bit7,
// Z=bit6, AC=bit4, P=bit2, CY=bit0, bit1=1) — see DESIGN.md for the
// resolved Open Question. Frozen here for round-trip compatibility with
// existing save data.
const (
	pswBitS  = 0
	pswBitZ  = 1
	pswBitAC = 3
	pswBitP  = 5
	pswBitCY = 7
)

// CPU holds the full 8080 programming-model state: the general register
// file, the expanded PSW, the stack pointer and program counter, the
// interrupt-enable flag and pending-interrupt mask, and the halt flag.
//
// Register pairs (BC, DE, HL) are not stored independently; they are
// derived from the byte registers on every read and decomposed on every
// write, which keeps the pair = high<<8 | low invariant exact on a
// big-endian host as well as a little-endian one.
type CPU struct {
	B, C byte
	D, E byte
	H, L byte
	A    byte

	S, Z, AC, P, CY bool

	SP uint16
	PC uint16

	InterruptsEnabled bool
	// PendingInterrupts holds bit k set for a pending RST k request (k in
	// 0..3). It is written from RaiseInterrupt, which may be called from a
	// different goroutine than the one driving Step (the VBlank ticker),
	// so RaiseInterrupt, Step and clearPending access it through
	// sync/atomic rather than a mutex, per the "the CPU does not take
	// locks" rule. Reset clears it with a plain store.
	PendingInterrupts uint32
	Halted            bool

	mem *Memory

	In  InFunc
	Out OutFunc

	table [256]opcodeEntry
}

// InFunc reads from an input port. OutFunc writes to an output port. Both
// callbacks are invoked synchronously on the CPU's own goroutine and must
// not block.
type InFunc func(port byte) byte
type OutFunc func(port byte, data byte)

func noopIn(byte) byte   { return 0 }
func noopOut(byte, byte) {}

// NewCPU allocates a CPU with the given initial program counter, SP set to
// 0xF000, all other registers and flags zero, interrupts disabled, no
// pending interrupts, halt false, and no-op I/O callbacks. Memory is
// attached separately with AttachMemory; the CPU does not allocate it.
func NewCPU(initialPC uint16) *CPU {
	c := &CPU{
		PC:  initialPC,
		SP:  0xF000,
		In:  noopIn,
		Out: noopOut,
	}
	c.initTable()
	return c
}

// AttachMemory gives the CPU its backing 64 KiB store. The host owns the
// Memory and is responsible for freeing it; the CPU only ever references it.
func (c *CPU) AttachMemory(m *Memory) {
	c.mem = m
}

// SetIO installs the host's IN/OUT callbacks, replacing the no-op defaults.
func (c *CPU) SetIO(in InFunc, out OutFunc) {
	if in != nil {
		c.In = in
	}
	if out != nil {
		c.Out = out
	}
}

// BC returns the BC register pair as (B<<8)|C.
func (c *CPU) BC() uint16 { return uint16(c.B)<<8 | uint16(c.C) }

// DE returns the DE register pair as (D<<8)|E.
func (c *CPU) DE() uint16 { return uint16(c.D)<<8 | uint16(c.E) }

// HL returns the HL register pair as (H<<8)|L.
func (c *CPU) HL() uint16 { return uint16(c.H)<<8 | uint16(c.L) }

// SetBC decomposes value into B (high) and C (low).
func (c *CPU) SetBC(value uint16) {
	c.B = byte(value >> 8)
	c.C = byte(value)
}

// SetDE decomposes value into D (high) and E (low).
func (c *CPU) SetDE(value uint16) {
	c.D = byte(value >> 8)
	c.E = byte(value)
}

// SetHL decomposes value into H (high) and L (low).
func (c *CPU) SetHL(value uint16) {
	c.H = byte(value >> 8)
	c.L = byte(value)
}

// PackPSW serializes the five flags into a byte following the source
// emulator's bit layout (S=0, Z=1, AC=3, P=5, CY=7); all other bits are 0.
func (c *CPU) PackPSW() byte {
	var psw byte
	if c.S {
		psw |= 1 << pswBitS
	}
	if c.Z {
		psw |= 1 << pswBitZ
	}
	if c.AC {
		psw |= 1 << pswBitAC
	}
	if c.P {
		psw |= 1 << pswBitP
	}
	if c.CY {
		psw |= 1 << pswBitCY
	}
	return psw
}

// UnpackPSW restores the five flags from a byte in the source emulator's
// bit layout. Bits outside {0,1,3,5,7} are ignored.
func (c *CPU) UnpackPSW(psw byte) {
	c.S = psw&(1<<pswBitS) != 0
	c.Z = psw&(1<<pswBitZ) != 0
	c.AC = psw&(1<<pswBitAC) != 0
	c.P = psw&(1<<pswBitP) != 0
	c.CY = psw&(1<<pswBitCY) != 0
}

// Reset returns the CPU to its post-construction state at the given PC,
// as if freshly created (SP=0xF000, registers/flags zero, interrupts
// disabled, no pending interrupts, halt false). I/O callbacks are left
// untouched since the host owns them for the life of the process.
func (c *CPU) Reset(pc uint16) {
	c.B, c.C, c.D, c.E, c.H, c.L, c.A = 0, 0, 0, 0, 0, 0, 0
	c.S, c.Z, c.AC, c.P, c.CY = false, false, false, false, false
	c.SP = 0xF000
	c.PC = pc
	c.InterruptsEnabled = false
	c.PendingInterrupts = 0
	c.Halted = false
}

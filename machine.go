// machine.go - ties memory, CPU, and cabinet I/O into one runnable unit.
// Grounded on the teacher's SystemBus/MapIO wiring idiom, narrowed to the
// fixed single-ROM, single-port-block layout this cabinet uses.

package main

import (
	"fmt"
	"os"
)

const (
	// romSize is the full cartridge image size: four 2KB invader.h/g/f/e
	// ROMs concatenated, mapped starting at address 0.
	romSize = 0x2000

	// vramStart is the first address of the video RAM region the display
	// frontend reads every frame.
	vramStart = 0x2400
	vramEnd   = 0x4000
)

// Machine owns one CPU, its 64 KiB address space, and the cabinet's I/O
// ports, and is the unit LoadROM/Step/RaiseInterrupt operate on.
type Machine struct {
	Mem   *Memory
	CPU   *CPU
	Ports *Ports
}

// NewMachine builds a Machine with a fresh Memory, a CPU reset to PC=0, and
// cabinet ports at their power-on defaults, with CPU I/O wired to Ports.
func NewMachine() *Machine {
	m := &Machine{
		Mem:   NewMemory(),
		CPU:   NewCPU(0),
		Ports: NewPorts(),
	}
	m.CPU.AttachMemory(m.Mem)
	m.CPU.SetIO(m.Ports.Read, m.Ports.Write)
	return m
}

// LoadROM copies data into memory starting at address 0. It returns an
// error if data would overrun the cartridge's fixed 8 KiB window; a silent
// truncation here would corrupt a ROM image instead of refusing it.
func (m *Machine) LoadROM(data []byte) error {
	if len(data) > romSize {
		return fmt.Errorf("rom image too large: %d bytes, max %d", len(data), romSize)
	}
	m.Mem.Load(0, data)
	return nil
}

// LoadROMFile reads path and loads it via LoadROM.
func (m *Machine) LoadROMFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading rom file: %w", err)
	}
	return m.LoadROM(data)
}

// Step advances the CPU by one instruction (or one interrupt service, per
// CPU.Step's own rules).
func (m *Machine) Step() error {
	return m.CPU.Step()
}

// RaiseInterrupt forwards to the CPU; see CPU.RaiseInterrupt for the
// single-writer caveat.
func (m *Machine) RaiseInterrupt(n byte) {
	m.CPU.RaiseInterrupt(n)
}

// VRAM returns the live video RAM slice (0x2400-0x3FFF), 1 bit per pixel,
// 224 rows of 32 bytes, rotated 90 degrees counter-clockwise relative to
// the displayed image (the cabinet's monitor is physically rotated).
func (m *Machine) VRAM() []byte {
	return m.Mem.Ref(vramStart)[:vramEnd-vramStart]
}

// ports.go - the cabinet's I/O port map: three 8-bit input latches built from
// discrete buttons/DIP switches, the shift-register ports, and a
// watchdog/sound output latch. Grounded on the original emulator's
// space_IN/space_OUT switch statements in space.c.

package main

// Input bit positions for port 1, per the cabinet wiring the target ROM
// expects.
const (
	p1Coin       = 1 << 0
	p1P2Start    = 1 << 1
	p1P1Start    = 1 << 2
	p1Always1    = 1 << 3
	p1P1Shoot    = 1 << 4
	p1P1Left     = 1 << 5
	p1P1Right    = 1 << 6
)

// Input bit positions for port 2. The original reference firmware reads
// player-2 shoot/left/right from these bits; a widely copied but incorrect
// port-1-based wiring is not reproduced here.
const (
	p2Dip3    = 1 << 0
	p2Dip5    = 1 << 1
	p2Tilt    = 1 << 2
	p2Dip6    = 1 << 3
	p2P2Shoot = 1 << 4
	p2P2Left  = 1 << 5
	p2P2Right = 1 << 6
	p2Dip7    = 1 << 7
)

// Ports owns the three input latches, the shift register, and the sound/
// watchdog output latches, and implements InFunc/OutFunc against the wiring
// of the target ROM (ports 0, 1, 2, 3 for input; 2, 3, 4, 5, 6 for output).
type Ports struct {
	Port0 byte // unused by this ROM revision's read path; kept for parity
	Port1 byte
	Port2 byte

	Shift Shift8080

	Sound1 byte // last value written to port 3 (sound bits)
	Sound2 byte // last value written to port 5
	Watchdog byte // last value written to port 6
}

// NewPorts returns a Ports with the bit defaults a freshly booted cabinet
// presents: port 0 idle at 0x0E, port 1 idle at 0x09 (bit 3, the unused-
// always-1 line the ROM polls as a liveness check, held high), and port 2
// idle at 0x03 (both ship-count DIP bits set: 6 ships / bonus life at 1500).
func NewPorts() *Ports {
	return &Ports{
		Port0: 0x0E,
		Port1: 0x09,
		Port2: 0x03,
	}
}

// Read implements InFunc.
func (p *Ports) Read(port byte) byte {
	switch port {
	case 0:
		return p.Port0
	case 1:
		return p.Port1
	case 2:
		return p.Port2
	case 3:
		return p.Shift.Read3()
	default:
		return 0
	}
}

// Write implements OutFunc.
func (p *Ports) Write(port byte, data byte) {
	switch port {
	case 2:
		p.Shift.Write2(data)
	case 3:
		p.Sound1 = data
	case 4:
		p.Shift.Write4(data)
	case 5:
		p.Sound2 = data
	case 6:
		p.Watchdog = data
	}
}

// setBit sets or clears mask in *latch according to down.
func setBit(latch *byte, mask byte, down bool) {
	if down {
		*latch |= mask
	} else {
		*latch &^= mask
	}
}

// SetCoin, SetP1Start, ... translate a cabinet control's current state into
// the corresponding latch bit. down is true while the button/switch is
// active (pressed, coin inserted, etc).
func (p *Ports) SetCoin(down bool)    { setBit(&p.Port1, p1Coin, down) }
func (p *Ports) SetP1Start(down bool) { setBit(&p.Port1, p1P1Start, down) }
func (p *Ports) SetP2Start(down bool) { setBit(&p.Port1, p1P2Start, down) }
func (p *Ports) SetP1Shoot(down bool) { setBit(&p.Port1, p1P1Shoot, down) }
func (p *Ports) SetP1Left(down bool)  { setBit(&p.Port1, p1P1Left, down) }
func (p *Ports) SetP1Right(down bool) { setBit(&p.Port1, p1P1Right, down) }
func (p *Ports) SetP2Shoot(down bool) { setBit(&p.Port2, p2P2Shoot, down) }
func (p *Ports) SetP2Left(down bool)  { setBit(&p.Port2, p2P2Left, down) }
func (p *Ports) SetP2Right(down bool) { setBit(&p.Port2, p2P2Right, down) }
func (p *Ports) SetTilt(down bool)    { setBit(&p.Port2, p2Tilt, down) }

// Package bus implements the NES memory map the CPU addresses through:
// mirrored work RAM, a PPU/APU/controller stub, and mapper-backed
// cartridge ROM.
package bus

import "github.com/n-ulricksen/nes6502/mapper"

const (
	ramMinAddr uint16 = 0x0000
	ramMaxAddr uint16 = 0x1FFF
	ramMirror  uint16 = 0x07FF

	ioMinAddr uint16 = 0x2000
	ioMaxAddr uint16 = 0x7FFF

	cartMinAddr uint16 = 0x8000
	cartMaxAddr uint16 = 0xFFFF
)

// Bus routes CPU reads and writes across the address space. It satisfies
// cpu.Memory without importing the cpu package, keeping the dependency
// direction the same as the rest of this repository's boundary
// collaborators (memory map is consumed by the CPU, not the reverse).
type Bus struct {
	ram    [2 * 1024]byte
	mapper mapper.Mapper
}

// New constructs a Bus backed by m. A nil mapper is valid: cartridge
// reads simply return 0, matching the "unmapped regions read as 0"
// contract before a ROM is attached.
func New(m mapper.Mapper) *Bus {
	return &Bus{mapper: m}
}

// AttachMapper swaps in a mapper after construction, for a Bus built
// before its ROM was parsed.
func (b *Bus) AttachMapper(m mapper.Mapper) {
	b.mapper = m
}

// Read is total over the 16-bit address space.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr >= ramMinAddr && addr <= ramMaxAddr:
		return b.ram[addr&ramMirror]
	case addr >= ioMinAddr && addr <= ioMaxAddr:
		return 0
	case addr >= cartMinAddr && addr <= cartMaxAddr:
		if b.mapper == nil {
			return 0
		}
		return b.mapper.Read(addr)
	default:
		return 0
	}
}

// Write is total; writes outside RAM are silently dropped (the PPU/APU
// stub and mapper ROM are both read-only from the CPU's view here).
func (b *Bus) Write(addr uint16, v byte) {
	if addr >= ramMinAddr && addr <= ramMaxAddr {
		b.ram[addr&ramMirror] = v
	}
}

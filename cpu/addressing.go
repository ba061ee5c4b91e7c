package cpu

// AddressingMode identifies one of the resolver's operand-fetching
// strategies. The mode, not the mnemonic, determines how many operand
// bytes follow the opcode.
type AddressingMode byte

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// operandBytes is the number of bytes the resolver consumes after the
// opcode byte itself, per addressing mode.
var operandBytes = [...]byte{
	Implied:     0,
	Accumulator: 0,
	Immediate:   1,
	ZeroPage:    1,
	ZeroPageX:   1,
	ZeroPageY:   1,
	Absolute:    2,
	AbsoluteX:   2,
	AbsoluteY:   2,
	Indirect:    2,
	IndirectX:   1,
	IndirectY:   1,
	Relative:    1,
}

// targetKind distinguishes the three shapes a resolved operand can take.
type targetKind byte

const (
	targetImmediate targetKind = iota
	targetAccumulator
	targetMemory
)

// Target is the tagged value returned by the resolver: either an
// immediate operand, the accumulator, or a memory address. Instruction
// bodies dispatch on Kind rather than being handed a capability object,
// so composite undocumented opcodes can pass the same Target into two
// primitive bodies in turn.
type Target struct {
	Kind targetKind
	Imm  byte
	Addr uint16

	// pageCrossed records whether indexed addressing crossed a page
	// boundary, carried for callers that care about extra-cycle
	// accounting; the core itself does not consume it.
	pageCrossed bool
}

// Get reads the value a Target denotes.
func (c *CPU) Get(t Target) byte {
	switch t.Kind {
	case targetImmediate:
		return t.Imm
	case targetAccumulator:
		return c.A
	default:
		return c.mem.Read(t.Addr)
	}
}

// Set writes v to the location a Target denotes. Writing to an Immediate
// target is a programming error: it means the decode table handed a
// write-capable instruction an addressing mode that cannot hold one.
func (c *CPU) Set(t Target, v byte) {
	switch t.Kind {
	case targetAccumulator:
		c.A = v
	case targetMemory:
		c.mem.Write(t.Addr, v)
	default:
		panic("cpu: write to immediate target")
	}
}

// resolve consumes the operand bytes for mode, advances PC past them, and
// returns the Target the instruction body should operate on.
func (c *CPU) resolve(mode AddressingMode) Target {
	switch mode {
	case Implied:
		return Target{}

	case Accumulator:
		return Target{Kind: targetAccumulator}

	case Immediate:
		v := c.mem.Read(c.PC)
		c.PC++
		return Target{Kind: targetImmediate, Imm: v}

	case ZeroPage:
		addr := uint16(c.mem.Read(c.PC))
		c.PC++
		return Target{Kind: targetMemory, Addr: addr}

	case ZeroPageX:
		op := c.mem.Read(c.PC)
		c.PC++
		addr := uint16(op+c.X) & 0x00FF
		return Target{Kind: targetMemory, Addr: addr}

	case ZeroPageY:
		op := c.mem.Read(c.PC)
		c.PC++
		addr := uint16(op+c.Y) & 0x00FF
		return Target{Kind: targetMemory, Addr: addr}

	case Absolute:
		addr := ReadWord(c.mem, c.PC)
		c.PC += 2
		return Target{Kind: targetMemory, Addr: addr}

	case AbsoluteX:
		base := ReadWord(c.mem, c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		return Target{Kind: targetMemory, Addr: addr, pageCrossed: pageCrossed(base, addr)}

	case AbsoluteY:
		base := ReadWord(c.mem, c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		return Target{Kind: targetMemory, Addr: addr, pageCrossed: pageCrossed(base, addr)}

	case Indirect:
		ptr := ReadWord(c.mem, c.PC)
		c.PC += 2
		addr := c.readWordBug(ptr)
		return Target{Kind: targetMemory, Addr: addr}

	case IndirectX:
		op := c.mem.Read(c.PC)
		c.PC++
		zp := uint16(op+c.X) & 0x00FF
		addr := ReadWordZeroPage(c.mem, zp)
		return Target{Kind: targetMemory, Addr: addr}

	case IndirectY:
		op := c.mem.Read(c.PC)
		c.PC++
		base := ReadWordZeroPage(c.mem, uint16(op))
		addr := base + uint16(c.Y)
		return Target{Kind: targetMemory, Addr: addr, pageCrossed: pageCrossed(base, addr)}

	case Relative:
		op := c.mem.Read(c.PC)
		c.PC++
		offset := int8(op)
		addr := uint16(int32(c.PC) + int32(offset))
		return Target{Kind: targetMemory, Addr: addr}

	default:
		return Target{}
	}
}

// readWordBug resolves JMP (indirect)'s page-wrap bug: when the pointer's
// low byte is 0xFF, the high byte is fetched from the start of the same
// page rather than the next one.
func (c *CPU) readWordBug(ptr uint16) uint16 {
	lo := c.mem.Read(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := c.mem.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

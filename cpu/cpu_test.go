package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatMemory is a 64 KiB flat address space implementing Memory, used in
// place of the real bus for instruction-level tests that don't need
// mapper mirroring or the PPU/APU stub.
type flatMemory [65536]byte

func (m *flatMemory) Read(addr uint16) byte     { return m[addr] }
func (m *flatMemory) Write(addr uint16, v byte) { m[addr] = v }

func (m *flatMemory) load(addr uint16, program ...byte) {
	copy(m[addr:], program)
}

func newTestCPU(entry uint16, program ...byte) (*CPU, *flatMemory) {
	mem := &flatMemory{}
	mem.load(entry, program...)
	c := New(mem)
	c.ResetTo(entry)
	return c, mem
}

func TestResetPowerOnState(t *testing.T) {
	mem := &flatMemory{}
	mem.Write(0xFFFC, 0x00)
	mem.Write(0xFFFD, 0x80)

	c := New(mem)
	c.Reset()

	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)
	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.True(t, c.P.I)
	assert.False(t, c.P.C || c.P.Z || c.P.D || c.P.V || c.P.N)
}

func TestLoadStoreLoadNop(t *testing.T) {
	// LDA #$42; STA $10; LDA $10; NOP
	c, mem := newTestCPU(0x8000, 0xA9, 0x42, 0x85, 0x10, 0xA5, 0x10, 0xEA)

	c.Step()
	assert.Equal(t, byte(0x42), c.A)
	assert.False(t, c.P.Z)
	assert.False(t, c.P.N)

	c.Step()
	assert.Equal(t, byte(0x42), mem.Read(0x10))

	c.Step()
	assert.Equal(t, byte(0x42), c.A)

	before := *c
	c.Step()
	assert.Equal(t, before.A, c.A)
	assert.Equal(t, before.X, c.X)
	assert.Equal(t, before.Y, c.Y)
}

func TestAdcOverflow(t *testing.T) {
	// CLC; LDA #$FF; ADC #$01
	c, _ := newTestCPU(0x8000, 0x18, 0xA9, 0xFF, 0x69, 0x01)
	c.Step()
	c.Step()
	c.Step()

	require.Equal(t, byte(0x00), c.A)
	assert.True(t, c.P.C)
	assert.True(t, c.P.Z)
	assert.False(t, c.P.V)
	assert.False(t, c.P.N)
}

func TestSbcBorrow(t *testing.T) {
	// SEC; LDA #$00; SBC #$01
	c, _ := newTestCPU(0x8000, 0x38, 0xA9, 0x00, 0xE9, 0x01)
	c.Step()
	c.Step()
	c.Step()

	require.Equal(t, byte(0xFF), c.A)
	assert.False(t, c.P.C)
	assert.False(t, c.P.V)
	assert.True(t, c.P.N)
	assert.False(t, c.P.Z)
}

func TestTxsTsx(t *testing.T) {
	// LDX #$FF; TXS; TSX
	c, _ := newTestCPU(0x8000, 0xA2, 0xFF, 0x9A, 0xBA)
	c.Step()
	c.Step()
	c.Step()

	assert.Equal(t, byte(0xFF), c.X)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.False(t, c.P.Z)
	assert.True(t, c.P.N)
}

func TestJsrRts(t *testing.T) {
	// JSR $8006; 00 00 00; RTS
	c, mem := newTestCPU(0x8000, 0x20, 0x06, 0x80, 0x00, 0x00, 0x00, 0x60)
	c.Step() // JSR

	assert.Equal(t, uint16(0x8006), c.PC)
	assert.Equal(t, byte(0xFB), c.SP)
	assert.Equal(t, byte(0x80), mem.Read(0x0100|uint16(0xFD)))
	assert.Equal(t, byte(0x02), mem.Read(0x0100|uint16(0xFC)))

	c.Step() // RTS
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)
}

func TestBoundaryZeroPageXWraps(t *testing.T) {
	c, mem := newTestCPU(0x8000, 0xA2, 0x01, 0xB5, 0xFF) // LDX #1; LDA $FF,X
	mem.Write(0x0000, 0x99)
	c.Step()
	c.Step()
	assert.Equal(t, byte(0x99), c.A)
}

func TestBoundaryIndirectYZeroPageWrap(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0x8000, 0xB1, 0xFF) // LDA ($FF),Y
	mem.Write(0x00FF, 0x00)      // low byte of pointer
	mem.Write(0x0000, 0x90)      // high byte, wrapped from 0x0100 to 0x0000
	mem.Write(0x9000, 0x55)

	c := New(mem)
	c.ResetTo(0x8000)
	c.Y = 0
	c.Step()
	assert.Equal(t, byte(0x55), c.A)
}

func TestBoundaryJmpIndirectPageWrapBug(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0x8000, 0x6C, 0xFF, 0x10) // JMP ($10FF)
	mem.Write(0x10FF, 0x34)
	mem.Write(0x1000, 0x12) // high byte read from $1000, not $1100
	mem.Write(0x1100, 0xFF)

	c := New(mem)
	c.ResetTo(0x8000)
	c.Step()
	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestBoundaryBranchNegativeOffsetWraps(t *testing.T) {
	mem := &flatMemory{}
	mem.load(0x0010, 0xF0, 0x80) // BEQ -128
	c := New(mem)
	c.ResetTo(0x0010)
	c.P.Z = true
	c.Step()
	assert.Equal(t, uint16(0x10000+0x0010+2-128), c.PC) // 0x0012-128 wraps to 0xFF92
}

func TestFlagOpIdempotence(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0x38, 0x18) // SEC; CLC
	c.Step()
	assert.True(t, c.P.C)
	c.Step()
	assert.False(t, c.P.C)

	c2, _ := newTestCPU(0x8000, 0x38, 0x38) // SEC; SEC
	c2.Step()
	c2.Step()
	assert.True(t, c2.P.C)
}

func TestPhaPlaRoundTrip(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0xA9, 0x7F, 0x48, 0xA9, 0x00, 0x68) // LDA #$7F; PHA; LDA #$00; PLA
	c.Step()
	c.Step()
	c.Step()
	c.Step()
	assert.Equal(t, byte(0x7F), c.A)
	assert.False(t, c.P.Z)
	assert.False(t, c.P.N)
}

func TestPhpPlpRoundTrip(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0x08, 0x28) // PHP; PLP
	c.P.C = true
	c.P.N = true
	want := c.P
	c.Step()
	c.Step()
	assert.Equal(t, want, c.P)
}

func TestPByteInvariants(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0xEA)
	c.Step()
	p := c.Registers().P
	assert.NotZero(t, p&0x20)
	assert.Zero(t, p&0x10)
}

func TestSetZNContract(t *testing.T) {
	for _, v := range []byte{0x00, 0x01, 0x7F, 0x80, 0xFF} {
		var s Status
		got := s.setZN(v)
		assert.Equal(t, v, got)
		assert.Equal(t, v == 0, s.Z)
		assert.Equal(t, v&0x80 != 0, s.N)
	}
}

func TestUndocumentedLax(t *testing.T) {
	c, mem := newTestCPU(0x8000, 0xA7, 0x10) // LAX $10
	mem.Write(0x10, 0x80)
	c.Step()
	assert.Equal(t, byte(0x80), c.A)
	assert.Equal(t, byte(0x80), c.X)
	assert.True(t, c.P.N)
}

func TestUndocumentedSax(t *testing.T) {
	c, mem := newTestCPU(0x8000, 0x87, 0x10) // SAX $10
	c.A = 0xF0
	c.X = 0x0F
	c.Step()
	assert.Equal(t, byte(0x00), mem.Read(0x10))
}

func TestUndocumentedDcp(t *testing.T) {
	c, mem := newTestCPU(0x8000, 0xC7, 0x10) // DCP $10
	mem.Write(0x10, 0x05)
	c.A = 0x05
	c.Step()
	assert.Equal(t, byte(0x04), mem.Read(0x10))
	assert.True(t, c.P.C)
	assert.False(t, c.P.Z) // A (5) is compared with the decremented value (4)
}

func TestUnknownOpcodeAdvancesAndCounts(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0x02, 0xEA) // JAM-style reserved opcode, then NOP
	before := c.PC
	c.Step()
	assert.Equal(t, before+1, c.PC)
	assert.Equal(t, 1, c.UnknownOpcodeCount())
}

func TestInstructionLengthMatchesAddressingMode(t *testing.T) {
	for op, info := range opcodeTable {
		length := 1 + int(operandBytes[info.Mode])
		switch info.Mnemonic {
		case "JMP", "JSR", "RTS", "RTI", "BRK":
			continue
		}
		mem := &flatMemory{}
		mem.Write(0x8000, byte(op))
		c := New(mem)
		c.ResetTo(0x8000)
		before := c.PC
		c.Step()
		if got := int(c.PC - before); got != length {
			t.Errorf("opcode %#02x (%s): PC advanced %d, want %d", op, info.Mnemonic, got, length)
		}
	}
}

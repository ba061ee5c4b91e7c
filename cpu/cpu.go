package cpu

const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE

	stackBase uint16 = 0x0100
)

// CPU is the 2A03 instruction interpreter: six architectural registers
// plus a 256-entry opcode table dispatched against a host-supplied
// Memory. It owns no goroutines; Step executes exactly one instruction
// and returns.
type CPU struct {
	PC uint16
	SP byte
	A  byte
	X  byte
	Y  byte
	P  Status

	mem Memory

	// unknownOpcodes counts encounters with an opcode this target gives
	// no semantics to. Never consulted by execution, only reported.
	unknownOpcodes int

	nmiPending bool
	irqPending bool
}

// New constructs a CPU wired to mem. Registers read as their zero values
// until Reset or ResetTo is called; callers should call one of those
// before Step.
func New(mem Memory) *CPU {
	return &CPU{mem: mem}
}

// Reset initializes power-on register state and loads PC from the reset
// vector at 0xFFFC, per the documented 6502 power-on sequence.
func (c *CPU) Reset() {
	c.resetRegisters()
	c.PC = ReadWord(c.mem, vectorReset)
}

// ResetTo is Reset, except PC is forced to entry instead of read from the
// vector. Used by test-harness mode (nestest's fixed entry at 0xC000).
func (c *CPU) ResetTo(entry uint16) {
	c.resetRegisters()
	c.PC = entry
}

func (c *CPU) resetRegisters() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = Status{I: true}
	c.nmiPending = false
	c.irqPending = false
}

// Registers returns a read-only snapshot of the current architectural
// state, packing P with the break bit forced to 0 (it only exists inside
// a stack push).
func (c *CPU) Registers() Snapshot {
	return Snapshot{
		PC: c.PC,
		SP: c.SP,
		A:  c.A,
		X:  c.X,
		Y:  c.Y,
		P:  c.P.Pack(false),
	}
}

// UnknownOpcodeCount reports how many times Step has dispatched an
// opcode this target gives no semantics to.
func (c *CPU) UnknownOpcodeCount() int {
	return c.unknownOpcodes
}

// RequestNMI and RequestIRQ latch an interrupt line. The CPU services the
// latch the next time Step is called, never mid-instruction; IRQ is
// ignored while the interrupt-disable flag is set.
func (c *CPU) RequestNMI() {
	c.nmiPending = true
}

func (c *CPU) RequestIRQ() {
	c.irqPending = true
}

// Step executes exactly one instruction: it services a pending interrupt
// latch first, then runs the fetch-decode-execute sequence, returning the
// pre-execute snapshot and the opcode byte fetched so a host can render a
// trace line.
func (c *CPU) Step() (Snapshot, byte) {
	if c.nmiPending {
		c.nmiPending = false
		c.serviceInterrupt(vectorNMI, false)
	} else if c.irqPending && !c.P.I {
		c.irqPending = false
		c.serviceInterrupt(vectorIRQ, false)
	}

	snap := c.Registers()

	op := c.mem.Read(c.PC)
	c.PC++

	info := opcodeTable[op]
	target := c.resolve(info.Mode)
	c.execute(info.Mnemonic, target)

	return snap, op
}

// serviceInterrupt pushes PC and P (with B cleared) and jumps through
// vector, mirroring BRK's stack layout minus the B-set bit.
func (c *CPU) serviceInterrupt(vector uint16, brk bool) {
	c.push(byte(c.PC >> 8))
	c.push(byte(c.PC))
	c.push(c.P.Pack(brk))
	c.P.I = true
	c.PC = ReadWord(c.mem, vector)
}

func (c *CPU) push(v byte) {
	c.mem.Write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() byte {
	c.SP++
	return c.mem.Read(stackBase + uint16(c.SP))
}

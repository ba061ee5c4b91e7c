package cpu

// Snapshot is a read-only view of the architectural registers, taken
// before an instruction executes. The trace emitter and conformance
// tests consume this rather than reaching into CPU directly.
type Snapshot struct {
	PC uint16
	SP byte
	A  byte
	X  byte
	Y  byte
	P  byte
}

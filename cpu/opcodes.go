package cpu

// opcodeInfo is one entry of the 256-entry decode table: the mnemonic
// dispatched on by execute, and the addressing mode resolved before it
// runs. Mnemonic "???" marks an opcode this target does not give
// documented or undocumented semantics to; it still carries the correct
// addressing mode so PC advances by the real hardware length.
type opcodeInfo struct {
	Mnemonic string
	Mode     AddressingMode
}

// opcodeTable is keyed by opcode byte. Ground truth is the published
// 6502/2A03 instruction tables; undocumented entries are restricted to
// the set this target implements (LAX, SAX, DCP, ISC, SLO, RLA, SRE, RRA,
// the SBC alias at 0xEB, and the unofficial NOP family) — other unstable
// opcodes (ANC, ALR, ARR, LXA, SBX/AXS, SHX/SHY/TAS/AHX/LAS, and the JAM
// opcodes) fall through to "???" rather than guessing at behavior no
// conformance trace here exercises.
var opcodeTable = [256]opcodeInfo{
	0x00: {"BRK", Implied}, 0x01: {"ORA", IndirectX}, 0x02: {"???", Implied}, 0x03: {"SLO", IndirectX},
	0x04: {"DOP", ZeroPage}, 0x05: {"ORA", ZeroPage}, 0x06: {"ASL", ZeroPage}, 0x07: {"SLO", ZeroPage},
	0x08: {"PHP", Implied}, 0x09: {"ORA", Immediate}, 0x0A: {"ASL", Accumulator}, 0x0B: {"???", Immediate},
	0x0C: {"TOP", Absolute}, 0x0D: {"ORA", Absolute}, 0x0E: {"ASL", Absolute}, 0x0F: {"SLO", Absolute},

	0x10: {"BPL", Relative}, 0x11: {"ORA", IndirectY}, 0x12: {"???", Implied}, 0x13: {"SLO", IndirectY},
	0x14: {"DOP", ZeroPageX}, 0x15: {"ORA", ZeroPageX}, 0x16: {"ASL", ZeroPageX}, 0x17: {"SLO", ZeroPageX},
	0x18: {"CLC", Implied}, 0x19: {"ORA", AbsoluteY}, 0x1A: {"NOP", Implied}, 0x1B: {"SLO", AbsoluteY},
	0x1C: {"TOP", AbsoluteX}, 0x1D: {"ORA", AbsoluteX}, 0x1E: {"ASL", AbsoluteX}, 0x1F: {"SLO", AbsoluteX},

	0x20: {"JSR", Absolute}, 0x21: {"AND", IndirectX}, 0x22: {"???", Implied}, 0x23: {"RLA", IndirectX},
	0x24: {"BIT", ZeroPage}, 0x25: {"AND", ZeroPage}, 0x26: {"ROL", ZeroPage}, 0x27: {"RLA", ZeroPage},
	0x28: {"PLP", Implied}, 0x29: {"AND", Immediate}, 0x2A: {"ROL", Accumulator}, 0x2B: {"???", Immediate},
	0x2C: {"BIT", Absolute}, 0x2D: {"AND", Absolute}, 0x2E: {"ROL", Absolute}, 0x2F: {"RLA", Absolute},

	0x30: {"BMI", Relative}, 0x31: {"AND", IndirectY}, 0x32: {"???", Implied}, 0x33: {"RLA", IndirectY},
	0x34: {"DOP", ZeroPageX}, 0x35: {"AND", ZeroPageX}, 0x36: {"ROL", ZeroPageX}, 0x37: {"RLA", ZeroPageX},
	0x38: {"SEC", Implied}, 0x39: {"AND", AbsoluteY}, 0x3A: {"NOP", Implied}, 0x3B: {"RLA", AbsoluteY},
	0x3C: {"TOP", AbsoluteX}, 0x3D: {"AND", AbsoluteX}, 0x3E: {"ROL", AbsoluteX}, 0x3F: {"RLA", AbsoluteX},

	0x40: {"RTI", Implied}, 0x41: {"EOR", IndirectX}, 0x42: {"???", Implied}, 0x43: {"SRE", IndirectX},
	0x44: {"DOP", ZeroPage}, 0x45: {"EOR", ZeroPage}, 0x46: {"LSR", ZeroPage}, 0x47: {"SRE", ZeroPage},
	0x48: {"PHA", Implied}, 0x49: {"EOR", Immediate}, 0x4A: {"LSR", Accumulator}, 0x4B: {"???", Immediate},
	0x4C: {"JMP", Absolute}, 0x4D: {"EOR", Absolute}, 0x4E: {"LSR", Absolute}, 0x4F: {"SRE", Absolute},

	0x50: {"BVC", Relative}, 0x51: {"EOR", IndirectY}, 0x52: {"???", Implied}, 0x53: {"SRE", IndirectY},
	0x54: {"DOP", ZeroPageX}, 0x55: {"EOR", ZeroPageX}, 0x56: {"LSR", ZeroPageX}, 0x57: {"SRE", ZeroPageX},
	0x58: {"CLI", Implied}, 0x59: {"EOR", AbsoluteY}, 0x5A: {"NOP", Implied}, 0x5B: {"SRE", AbsoluteY},
	0x5C: {"TOP", AbsoluteX}, 0x5D: {"EOR", AbsoluteX}, 0x5E: {"LSR", AbsoluteX}, 0x5F: {"SRE", AbsoluteX},

	0x60: {"RTS", Implied}, 0x61: {"ADC", IndirectX}, 0x62: {"???", Implied}, 0x63: {"RRA", IndirectX},
	0x64: {"DOP", ZeroPage}, 0x65: {"ADC", ZeroPage}, 0x66: {"ROR", ZeroPage}, 0x67: {"RRA", ZeroPage},
	0x68: {"PLA", Implied}, 0x69: {"ADC", Immediate}, 0x6A: {"ROR", Accumulator}, 0x6B: {"???", Immediate},
	0x6C: {"JMP", Indirect}, 0x6D: {"ADC", Absolute}, 0x6E: {"ROR", Absolute}, 0x6F: {"RRA", Absolute},

	0x70: {"BVS", Relative}, 0x71: {"ADC", IndirectY}, 0x72: {"???", Implied}, 0x73: {"RRA", IndirectY},
	0x74: {"DOP", ZeroPageX}, 0x75: {"ADC", ZeroPageX}, 0x76: {"ROR", ZeroPageX}, 0x77: {"RRA", ZeroPageX},
	0x78: {"SEI", Implied}, 0x79: {"ADC", AbsoluteY}, 0x7A: {"NOP", Implied}, 0x7B: {"RRA", AbsoluteY},
	0x7C: {"TOP", AbsoluteX}, 0x7D: {"ADC", AbsoluteX}, 0x7E: {"ROR", AbsoluteX}, 0x7F: {"RRA", AbsoluteX},

	0x80: {"DOP", Immediate}, 0x81: {"STA", IndirectX}, 0x82: {"DOP", Immediate}, 0x83: {"SAX", IndirectX},
	0x84: {"STY", ZeroPage}, 0x85: {"STA", ZeroPage}, 0x86: {"STX", ZeroPage}, 0x87: {"SAX", ZeroPage},
	0x88: {"DEY", Implied}, 0x89: {"DOP", Immediate}, 0x8A: {"TXA", Implied}, 0x8B: {"???", Immediate},
	0x8C: {"STY", Absolute}, 0x8D: {"STA", Absolute}, 0x8E: {"STX", Absolute}, 0x8F: {"SAX", Absolute},

	0x90: {"BCC", Relative}, 0x91: {"STA", IndirectY}, 0x92: {"???", Implied}, 0x93: {"???", IndirectY},
	0x94: {"STY", ZeroPageX}, 0x95: {"STA", ZeroPageX}, 0x96: {"STX", ZeroPageY}, 0x97: {"SAX", ZeroPageY},
	0x98: {"TYA", Implied}, 0x99: {"STA", AbsoluteY}, 0x9A: {"TXS", Implied}, 0x9B: {"???", AbsoluteY},
	0x9C: {"???", AbsoluteX}, 0x9D: {"STA", AbsoluteX}, 0x9E: {"???", AbsoluteY}, 0x9F: {"???", AbsoluteY},

	0xA0: {"LDY", Immediate}, 0xA1: {"LDA", IndirectX}, 0xA2: {"LDX", Immediate}, 0xA3: {"LAX", IndirectX},
	0xA4: {"LDY", ZeroPage}, 0xA5: {"LDA", ZeroPage}, 0xA6: {"LDX", ZeroPage}, 0xA7: {"LAX", ZeroPage},
	0xA8: {"TAY", Implied}, 0xA9: {"LDA", Immediate}, 0xAA: {"TAX", Implied}, 0xAB: {"???", Immediate},
	0xAC: {"LDY", Absolute}, 0xAD: {"LDA", Absolute}, 0xAE: {"LDX", Absolute}, 0xAF: {"LAX", Absolute},

	0xB0: {"BCS", Relative}, 0xB1: {"LDA", IndirectY}, 0xB2: {"???", Implied}, 0xB3: {"LAX", IndirectY},
	0xB4: {"LDY", ZeroPageX}, 0xB5: {"LDA", ZeroPageX}, 0xB6: {"LDX", ZeroPageY}, 0xB7: {"LAX", ZeroPageY},
	0xB8: {"CLV", Implied}, 0xB9: {"LDA", AbsoluteY}, 0xBA: {"TSX", Implied}, 0xBB: {"???", AbsoluteY},
	0xBC: {"LDY", AbsoluteX}, 0xBD: {"LDA", AbsoluteX}, 0xBE: {"LDX", AbsoluteY}, 0xBF: {"LAX", AbsoluteY},

	0xC0: {"CPY", Immediate}, 0xC1: {"CMP", IndirectX}, 0xC2: {"DOP", Immediate}, 0xC3: {"DCP", IndirectX},
	0xC4: {"CPY", ZeroPage}, 0xC5: {"CMP", ZeroPage}, 0xC6: {"DEC", ZeroPage}, 0xC7: {"DCP", ZeroPage},
	0xC8: {"INY", Implied}, 0xC9: {"CMP", Immediate}, 0xCA: {"DEX", Implied}, 0xCB: {"???", Immediate},
	0xCC: {"CPY", Absolute}, 0xCD: {"CMP", Absolute}, 0xCE: {"DEC", Absolute}, 0xCF: {"DCP", Absolute},

	0xD0: {"BNE", Relative}, 0xD1: {"CMP", IndirectY}, 0xD2: {"???", Implied}, 0xD3: {"DCP", IndirectY},
	0xD4: {"DOP", ZeroPageX}, 0xD5: {"CMP", ZeroPageX}, 0xD6: {"DEC", ZeroPageX}, 0xD7: {"DCP", ZeroPageX},
	0xD8: {"CLD", Implied}, 0xD9: {"CMP", AbsoluteY}, 0xDA: {"NOP", Implied}, 0xDB: {"DCP", AbsoluteY},
	0xDC: {"TOP", AbsoluteX}, 0xDD: {"CMP", AbsoluteX}, 0xDE: {"DEC", AbsoluteX}, 0xDF: {"DCP", AbsoluteX},

	0xE0: {"CPX", Immediate}, 0xE1: {"SBC", IndirectX}, 0xE2: {"DOP", Immediate}, 0xE3: {"ISC", IndirectX},
	0xE4: {"CPX", ZeroPage}, 0xE5: {"SBC", ZeroPage}, 0xE6: {"INC", ZeroPage}, 0xE7: {"ISC", ZeroPage},
	0xE8: {"INX", Implied}, 0xE9: {"SBC", Immediate}, 0xEA: {"NOP", Implied}, 0xEB: {"SBC", Immediate},
	0xEC: {"CPX", Absolute}, 0xED: {"SBC", Absolute}, 0xEE: {"INC", Absolute}, 0xEF: {"ISC", Absolute},

	0xF0: {"BEQ", Relative}, 0xF1: {"SBC", IndirectY}, 0xF2: {"???", Implied}, 0xF3: {"ISC", IndirectY},
	0xF4: {"DOP", ZeroPageX}, 0xF5: {"SBC", ZeroPageX}, 0xF6: {"INC", ZeroPageX}, 0xF7: {"ISC", ZeroPageX},
	0xF8: {"SED", Implied}, 0xF9: {"SBC", AbsoluteY}, 0xFA: {"NOP", Implied}, 0xFB: {"ISC", AbsoluteY},
	0xFC: {"TOP", AbsoluteX}, 0xFD: {"SBC", AbsoluteX}, 0xFE: {"INC", AbsoluteX}, 0xFF: {"ISC", AbsoluteX},
}

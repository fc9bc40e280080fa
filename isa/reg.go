package isa

import (
	"fmt"
)

// Reg is an integer register number, 0 through 31.
type Reg uint8

// NumRegs is the number of integer registers.
const NumRegs = 32

var regNames = [NumRegs]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", // s0 is also fp
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
}

// String returns the ABI name of the register.
func (r Reg) String() string {
	if int(r) >= NumRegs {
		return fmt.Sprintf("x%d", r)
	}
	return regNames[r]
}

// ParseReg accepts either an ABI name ("a0") or an architectural name ("x10").
func ParseReg(s string) (Reg, bool) {
	for i, name := range regNames {
		if name == s {
			return Reg(i), true
		}
	}
	if s == "fp" {
		return 8, true
	}
	var n int
	if _, err := fmt.Sscanf(s, "x%d", &n); err == nil && n >= 0 && n < NumRegs && fmt.Sprintf("x%d", n) == s {
		return Reg(n), true
	}
	return 0, false
}

// RegisterFile is the integer register state of one execution context.
// Register zero always reads as zero and ignores writes.
type RegisterFile [NumRegs]uint32

func (rf *RegisterFile) Read(r Reg) uint32 {
	if r == 0 {
		return 0
	}
	return rf[r&(NumRegs-1)]
}

func (rf *RegisterFile) Write(r Reg, v uint32) {
	if r == 0 {
		return
	}
	rf[r&(NumRegs-1)] = v
}

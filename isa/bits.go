package isa

import (
	"fmt"
)

type bits32 uint32

func (v bits32) String() string {
	return fmt.Sprintf("0b%032b", v)
}

// signExtend treats the low width bits of v as a two's complement number.
func signExtend(v uint32, width int) int32 {
	if width >= 32 {
		return int32(v)
	}
	shift := uint(32 - width)
	return int32(v<<shift) >> shift
}

package expr

// The functions in this file give each operator of the body language its
// exact 32-bit meaning. Compiled expressions call them when evaluated, and
// emitted Go source calls them by name, so both paths behave the same.

// Div is unsigned division. Dividing by zero yields all ones.
func Div(a, b uint32) uint32 {
	if b == 0 {
		return 0xffffffff
	}
	return a / b
}

// Rem is the unsigned remainder. The remainder of dividing by zero is the
// dividend.
func Rem(a, b uint32) uint32 {
	if b == 0 {
		return a
	}
	return a % b
}

// Bool converts a comparison result to 1 or 0.
func Bool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Shl shifts left by the low five bits of b.
func Shl(a, b uint32) uint32 {
	return a << (b & 31)
}

// Shr is a logical right shift by the low five bits of b.
func Shr(a, b uint32) uint32 {
	return a >> (b & 31)
}

// Sra is an arithmetic right shift by the low five bits of b.
func Sra(a, b uint32) uint32 {
	return uint32(int32(a) >> (b & 31))
}

// Slt compares a and b as signed integers.
func Slt(a, b uint32) uint32 {
	return Bool(int32(a) < int32(b))
}

// Sltu compares a and b as unsigned integers.
func Sltu(a, b uint32) uint32 {
	return Bool(a < b)
}

// Sext sign-extends the low bits of v. A width of zero or of 32 or more
// leaves v unchanged.
func Sext(v, bits uint32) uint32 {
	if bits == 0 || bits >= 32 {
		return v
	}
	shift := 32 - bits
	return uint32(int32(v<<shift) >> shift)
}

// Sdiv is signed division. Dividing by zero yields all ones, and the one
// overflowing case, the most negative number divided by -1, yields the
// dividend.
func Sdiv(a, b uint32) uint32 {
	switch {
	case b == 0:
		return 0xffffffff
	case a == 0x80000000 && b == 0xffffffff:
		return a
	}
	return uint32(int32(a) / int32(b))
}

// Srem is the signed remainder, with the sign of the dividend. The
// remainder of dividing by zero is the dividend, and that of the
// overflowing division is zero.
func Srem(a, b uint32) uint32 {
	switch {
	case b == 0:
		return a
	case a == 0x80000000 && b == 0xffffffff:
		return 0
	}
	return uint32(int32(a) % int32(b))
}

// Mulh is the high word of the signed 64-bit product.
func Mulh(a, b uint32) uint32 {
	return uint32(uint64(int64(int32(a))*int64(int32(b))) >> 32)
}

// Mulhsu is the high word of the product of signed a and unsigned b.
func Mulhsu(a, b uint32) uint32 {
	return uint32(uint64(int64(int32(a))*int64(b)) >> 32)
}

// Mulhu is the high word of the unsigned 64-bit product.
func Mulhu(a, b uint32) uint32 {
	return uint32(uint64(a) * uint64(b) >> 32)
}

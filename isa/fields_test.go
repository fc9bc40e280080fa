package isa

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeStandardEncodings(t *testing.T) {
	tests := []struct {
		name   string
		word   uint32
		format Format
		want   Values
	}{
		{
			"add a0, a1, a2",
			0x00c58533,
			FormatR,
			Values{Opcode: 0x33, Rd: 10, Funct3: 0, Rs1: 11, Rs2: 12, Funct7: 0},
		},
		{
			"sub t0, t1, t2",
			0x407302b3,
			FormatR,
			Values{Opcode: 0x33, Rd: 5, Funct3: 0, Rs1: 6, Rs2: 7, Funct7: 0x20},
		},
		{
			"addi x5, x6, -1",
			0xfff30293,
			FormatI,
			Values{Opcode: 0x13, Rd: 5, Funct3: 0, Rs1: 6, Imm: -1},
		},
		{
			"sw t0, -4(sp)",
			0xfe512e23,
			FormatS,
			Values{Opcode: 0x23, Funct3: 2, Rs1: 2, Rs2: 5, Imm: -4},
		},
		{
			"bnez a0, -8",
			0xfe051ce3,
			FormatB,
			Values{Opcode: 0x63, Funct3: 1, Rs1: 10, Rs2: 0, Imm: -8},
		},
		{
			"lui a0, 0x12345",
			0x12345537,
			FormatU,
			Values{Opcode: 0x37, Rd: 10, Imm: 0x12345000},
		},
		{
			"jal ra, 2048",
			0x001000ef,
			FormatJ,
			Values{Opcode: 0x6f, Rd: 1, Imm: 2048},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Decode(test.word, test.format).Values()
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("wrong fields for %#08x (-want +got):\n%s", test.word, diff)
			}
		})
	}
}

func TestDecodeAbsentFields(t *testing.T) {
	tests := []struct {
		format Format
		absent []Field
	}{
		{FormatR, []Field{FieldImm}},
		{FormatI, []Field{FieldRs2, FieldFunct7}},
		{FormatS, []Field{FieldRd, FieldFunct7}},
		{FormatB, []Field{FieldRd, FieldFunct7}},
		{FormatU, []Field{FieldRs1, FieldRs2, FieldFunct3, FieldFunct7}},
		{FormatJ, []Field{FieldRs1, FieldRs2, FieldFunct3, FieldFunct7}},
	}

	for _, test := range tests {
		t.Run(test.format.String(), func(t *testing.T) {
			// All ones, so that a field wrongly reported as present would
			// be visibly non-zero.
			fs := Decode(0xffffffff, test.format)
			for _, f := range test.absent {
				if fs.Has(f) {
					t.Errorf("%s reported as present", f)
				}
			}
			if _, ok := fs.Opcode(); !ok {
				t.Errorf("opcode reported as absent")
			}
		})
	}

	fs := Decode(0xfff30293, FormatS)
	if _, ok := fs.Rd(); ok {
		t.Errorf("S-format rd reported as present")
	}
	if _, ok := fs.Operand(OperandRd); ok {
		t.Errorf("S-format rd operand reported as present")
	}
}

func TestDecodeInvalidFormat(t *testing.T) {
	fs := Decode(0xffffffff, FormatInvalid)
	for f := Field(0); f < numFields; f++ {
		if fs.Has(f) {
			t.Errorf("%s present for invalid format", f)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		format Format
		values Values
	}{
		{FormatR, Values{Opcode: 0x33, Rd: 31, Funct3: 7, Rs1: 17, Rs2: 1, Funct7: 0x7f}},
		{FormatI, Values{Opcode: 0x13, Rd: 3, Funct3: 5, Rs1: 30, Imm: -1234}},
		{FormatI, Values{Opcode: 0x67, Rd: 1, Rs1: 2, Imm: 2047}},
		{FormatS, Values{Opcode: 0x23, Funct3: 1, Rs1: 8, Rs2: 9, Imm: -2048}},
		{FormatS, Values{Opcode: 0x23, Funct3: 2, Rs1: 8, Rs2: 9, Imm: 1365}},
		{FormatB, Values{Opcode: 0x63, Funct3: 4, Rs1: 12, Rs2: 13, Imm: -2730}},
		{FormatB, Values{Opcode: 0x63, Funct3: 7, Rs1: 1, Rs2: 2, Imm: 4094}},
		{FormatU, Values{Opcode: 0x17, Rd: 7, Imm: -0x55555000}},
		{FormatJ, Values{Opcode: 0x6f, Rd: 1, Imm: -699050}},
		{FormatJ, Values{Opcode: 0x6f, Rd: 0, Imm: 0x5554}},
	}

	for _, test := range tests {
		t.Run(test.format.String(), func(t *testing.T) {
			word := Encode(test.format, test.values)
			got := Decode(word, test.format).Values()
			if diff := cmp.Diff(test.values, got); diff != "" {
				t.Errorf("round trip through %#08x changed fields (-want +got):\n%s", word, diff)
			}
			if again := Encode(test.format, got); again != word {
				t.Errorf("re-encoding gave %#08x, want %#08x", again, word)
			}
		})
	}
}

func TestWordRoundTrip(t *testing.T) {
	// Every format assigns each of the 32 bits to some field, so any word
	// must survive decode then encode.
	words := []uint32{0, 0xffffffff, 0x80000000, 0x00000001, 0xdeadbeef, 0x12345678, 0xa5a5a5a5}
	for _, f := range Formats {
		for _, w := range words {
			got := Encode(f, Decode(w, f).Values())
			if got != w {
				t.Errorf("%s: %#08x came back as %#08x\n%s", f, w, got, spew.Sdump(Decode(w, f)))
			}
		}
	}
}

func TestImmBoundaries(t *testing.T) {
	tests := []struct {
		format Format
		lo, hi int32
	}{
		{FormatI, -2048, 2047},
		{FormatS, -2048, 2047},
		{FormatB, -4096, 4094},
		{FormatJ, -1048576, 1048574},
		{FormatU, -1 << 31, 0x7ffff000},
	}

	for _, test := range tests {
		t.Run(test.format.String(), func(t *testing.T) {
			lo, hi := ImmRange(test.format)
			if lo != test.lo || hi != test.hi {
				t.Fatalf("ImmRange = %d, %d; want %d, %d", lo, hi, test.lo, test.hi)
			}
			for _, want := range []int32{test.lo, test.hi, 0} {
				word := Encode(test.format, Values{Opcode: 0x7f, Imm: want})
				got, ok := Decode(word, test.format).Imm()
				if !ok {
					t.Fatalf("immediate absent")
				}
				if got != want {
					t.Errorf("immediate %d decoded as %d (word %#08x)", want, got, word)
				}
			}
		})
	}
}

func TestImmSignBitOnly(t *testing.T) {
	// Only the top bit of the word set: that bit is the sign for every
	// immediate format, so each must decode to its most negative value.
	tests := []struct {
		format Format
		want   int32
	}{
		{FormatI, -2048},
		{FormatS, -2048},
		{FormatB, -4096},
		{FormatU, -1 << 31},
		{FormatJ, -1048576},
	}
	for _, test := range tests {
		got, _ := Decode(0x80000000, test.format).Imm()
		if got != test.want {
			t.Errorf("%s: got %d, want %d", test.format, got, test.want)
		}
	}
}

func TestImmLowBitClear(t *testing.T) {
	words := []uint32{0xffffffff, 0xfffff0ff, 0x00000f80, 0x7fffffff, 0x80100080}
	for _, f := range []Format{FormatB, FormatJ} {
		for _, w := range words {
			imm, _ := Decode(w, f).Imm()
			if imm&1 != 0 {
				t.Errorf("%s: immediate of %#08x is odd: %d", f, w, imm)
			}
		}
	}
	for _, w := range words {
		imm, _ := Decode(w, FormatU).Imm()
		if imm&0xfff != 0 {
			t.Errorf("U: immediate of %#08x has low bits set: %#x", w, imm)
		}
	}
}

func TestEncodeTruncatesUnrepresentableBits(t *testing.T) {
	word := Encode(FormatB, Values{Opcode: 0x63, Imm: 7})
	got, _ := Decode(word, FormatB).Imm()
	if got != 6 {
		t.Errorf("got %d, want 6", got)
	}
	word = Encode(FormatR, Values{Opcode: 0x33, Rd: 33})
	rd, _ := Decode(word, FormatR).Rd()
	if rd != 1 {
		t.Errorf("got rd %d, want 1", rd)
	}
}

func TestFieldsString(t *testing.T) {
	got := Decode(0xfff30293, FormatI).String()
	want := "I{opcode=0x13 rd=t0 funct3=0 rs1=t1 imm=-1}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

package rv32

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/apparentlymart/riscv-dispatch/defs"
	"github.com/apparentlymart/riscv-dispatch/dispatch"
	"github.com/apparentlymart/riscv-dispatch/isa"
)

func builtTable(t *testing.T) *dispatch.Table {
	t.Helper()
	table, err := dispatch.Build(defs.Base().Select(isa.RV32Any))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestTableEntries(t *testing.T) {
	want := builtTable(t).Entries()
	got := Table.Entries()
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(dispatch.Entry{}, "Handler")); diff != "" {
		t.Errorf("generated entries differ from the definitions (-want +got):\n%s", diff)
	}
}

// TestHandlersMatchSynthesized runs each generated handler and the handler
// dispatch.Build makes from the same definition on random words and
// register files, and requires the same result.
func TestHandlersMatchSynthesized(t *testing.T) {
	built := builtTable(t)
	rng := rand.New(rand.NewSource(1))

	for _, gen := range Table.Entries() {
		syn, ok := built.Entry(gen.Mnemonic)
		if !ok {
			t.Errorf("%s: not in the built table", gen.Mnemonic)
			continue
		}
		for i := 0; i < 500; i++ {
			word := rng.Uint32()&^gen.Encoding.Mask | gen.Encoding.Match
			pc := rng.Uint32() &^ 3

			var regs isa.RegisterFile
			for r := isa.Reg(1); r < isa.NumRegs; r++ {
				regs.Write(r, randomValue(rng))
			}
			want := regs
			got := regs

			syn.Execute(&want, pc, word)
			gen.Execute(&got, pc, word)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("%s: word %#08x at pc %#08x gave different registers (-synthesized +generated):\n%s", gen.Mnemonic, word, pc, diff)
			}
		}
	}
}

// randomValue favors the values where signed and unsigned arithmetic
// disagree.
func randomValue(rng *rand.Rand) uint32 {
	switch rng.Intn(4) {
	case 0:
		return []uint32{0, 1, 0xffffffff, 0x80000000, 0x7fffffff}[rng.Intn(5)]
	case 1:
		return uint32(rng.Intn(64))
	default:
		return rng.Uint32()
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		word uint32
		want string
	}{
		{0x00c58533, "add"},
		{0x40315093, "srai"},
		{0x02c5c533, "div"},
		{0x02c59533, "mulh"},
		{0x00100073, "ebreak"},
	}
	for _, test := range tests {
		e, ok := Table.Lookup(test.word)
		if !ok || e.Mnemonic != test.want {
			t.Errorf("%#08x: got %q, %v, want %s", test.word, e.Mnemonic, ok, test.want)
		}
	}
	if _, ok := Table.Lookup(0xffffffff); ok {
		t.Error("0xffffffff should be illegal")
	}
}

package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/apparentlymart/riscv-dispatch/hart"
	"github.com/apparentlymart/riscv-dispatch/isa"
	"github.com/apparentlymart/riscv-dispatch/rv32"
)

func writeImage(t *testing.T, words ...uint32) string {
	t.Helper()
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	filename := filepath.Join(t.TempDir(), "image.bin")
	if err := os.WriteFile(filename, buf, 0o644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func addi(rd, rs1 uint32, imm int32) uint32 {
	return isa.Encode(isa.FormatI, isa.Values{Opcode: 0x13, Rd: rd, Rs1: rs1, Imm: imm})
}

func TestRun(t *testing.T) {
	cfg := &Config{
		ImageFile: writeImage(t,
			addi(5, 0, 7),
			addi(6, 5, 1),
			isa.Encode(isa.FormatR, isa.Values{Opcode: 0x33, Rd: 7, Rs1: 5, Rs2: 6}), // add t2, t0, t1
		),
		Base:     0x80000000,
		Standard: isa.RV32Any,
	}
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	if err := run(cfg, &out, logger); err != nil {
		t.Fatal(err)
	}

	want := "pc       0x8000000c\n" +
		"x5  t0   0x00000007\n" +
		"x6  t1   0x00000008\n" +
		"x7  t2   0x0000000f\n"
	if got := out.String(); got != want {
		t.Errorf("wrong output\ngot:\n%s\nwant:\n%s", got, want)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Data["steps"] != 3 {
		t.Errorf("wrong summary log entry: %v", entry)
	}
}

func TestRunSignedDivide(t *testing.T) {
	div := isa.Encode(isa.FormatR, isa.Values{Opcode: 0x33, Funct3: 4, Funct7: 1, Rd: 12, Rs1: 10, Rs2: 11})
	for _, std := range []isa.Standard{isa.RV32Any, isa.RV32M} {
		t.Run(std.String(), func(t *testing.T) {
			cfg := &Config{
				ImageFile: writeImage(t, addi(10, 0, -9), addi(11, 0, 2), div),
				Base:      0x80000000,
				Standard:  std,
			}
			if std == isa.RV32M {
				// RV32M alone has no addi.
				cfg.ImageFile = writeImage(t, div)
			}
			logger, _ := test.NewNullLogger()
			var out bytes.Buffer
			if err := run(cfg, &out, logger); err != nil {
				t.Fatal(err)
			}
			if std == isa.RV32Any && !strings.Contains(out.String(), "x12 a2   0xfffffffc") {
				t.Errorf("wrong quotient:\n%s", out.String())
			}
		})
	}
}

func TestLoadTable(t *testing.T) {
	table, err := loadTable(isa.RV32Any)
	if err != nil {
		t.Fatal(err)
	}
	if table != rv32.Table {
		t.Error("the full RV32 set should use the generated table")
	}
	table, err = loadTable(isa.RV32I)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := table.Entry("div"); ok {
		t.Error("RV32I table has div")
	}
}

func TestRunLimit(t *testing.T) {
	cfg := &Config{
		ImageFile: writeImage(t, addi(5, 5, 1), addi(5, 5, 1), addi(5, 5, 1)),
		Limit:     2,
		Standard:  isa.RV32I,
	}
	logger, _ := test.NewNullLogger()
	var out bytes.Buffer
	if err := run(cfg, &out, logger); err != nil {
		t.Fatal(err)
	}
	want := "pc       0x00000008\nx5  t0   0x00000002\n"
	if got := out.String(); got != want {
		t.Errorf("wrong output\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunIllegalInstruction(t *testing.T) {
	cfg := &Config{
		ImageFile: writeImage(t, addi(10, 0, 1), 0xffffffff),
		Base:      0x1000,
		Standard:  isa.RV32I,
	}
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	err := run(cfg, &out, logger)
	if !errors.Is(err, hart.ErrIllegalInstruction) {
		t.Fatalf("got error %v, want an illegal instruction", err)
	}
	if !strings.Contains(err.Error(), "0x001004") {
		t.Errorf("error does not name the pc: %s", err)
	}
	// The registers are still printed.
	if !strings.Contains(out.String(), "x10 a0   0x00000001") {
		t.Errorf("missing a0 in output:\n%s", out.String())
	}

	var levels []log.Level
	for _, entry := range hook.AllEntries() {
		levels = append(levels, entry.Level)
	}
	if diff := cmp.Diff([]log.Level{log.ErrorLevel, log.InfoLevel}, levels); diff != "" {
		t.Errorf("wrong log levels (-want +got):\n%s", diff)
	}
}

func TestRunMissingImage(t *testing.T) {
	cfg := &Config{
		ImageFile: filepath.Join(t.TempDir(), "missing.bin"),
		Standard:  isa.RV32I,
	}
	logger, _ := test.NewNullLogger()
	if err := run(cfg, &bytes.Buffer{}, logger); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v, want a missing file", err)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"prog.bin"})
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		ImageFile: "prog.bin",
		Base:      0x80000000,
		Standard:  isa.RV32Any,
		LogLevel:  log.InfoLevel,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("wrong defaults (-want +got):\n%s", diff)
	}

	cfg, err = parseFlags([]string{"-base", "4096", "-limit", "10", "-std", "rv32m", "-dump", "prog.bin"})
	if err != nil {
		t.Fatal(err)
	}
	want = &Config{
		ImageFile: "prog.bin",
		Base:      0x1000,
		Limit:     10,
		Standard:  isa.RV32M,
		Dump:      true,
		LogLevel:  log.InfoLevel,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("wrong config (-want +got):\n%s", diff)
	}

	for _, args := range [][]string{
		{},
		{"a.bin", "b.bin"},
		{"-base", "0x1002", "prog.bin"},
		{"-base", "0x100000000", "prog.bin"},
		{"-limit", "-1", "prog.bin"},
		{"-std", "rv64i", "prog.bin"},
		{"-log-level", "shouty", "prog.bin"},
	} {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("%q: expected an error", args)
		}
	}
}

// Package rv32 is the dispatch table for every RV32 instruction in the
// built-in definitions, generated ahead of time so that programs using it
// neither parse nor validate definitions at startup.
package rv32

//go:generate go run ../wrangle -std rv32 -o table_gen.go

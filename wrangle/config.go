package main

import (
	"flag"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/apparentlymart/riscv-dispatch/isa"
)

// Config is built once from the command line and then only read.
type Config struct {
	// DefsFile is the definitions table to load. Empty means the built-in
	// RV32 table.
	DefsFile string

	// FullNamesFile optionally overrides the full names of the loaded
	// definitions.
	FullNamesFile string

	// OutputFile is where the generated source goes, with "-" meaning
	// standard output.
	OutputFile string

	Package  string
	Standard isa.Standard
	Dump     bool
	LogLevel log.Level
}

func parseFlags(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("wrangle", flag.ContinueOnError)
	fs.StringVar(&cfg.DefsFile, "defs", "", "definitions table to load (default: the built-in RV32 table)")
	fs.StringVar(&cfg.FullNamesFile, "fullnames", "", "table of full instruction names")
	fs.StringVar(&cfg.OutputFile, "o", "-", "file to write the generated source to, or - for standard output")
	fs.StringVar(&cfg.Package, "package", "", "package name of the generated file (default: derived from -std)")
	rawStd := fs.String("std", "rv32i", "standard whose instructions go into the table")
	fs.BoolVar(&cfg.Dump, "dump", false, "dump the selected definitions to standard error")
	rawLevel := fs.String("log-level", "info", "logging level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg.Standard = isa.ParseStandard(*rawStd)
	if cfg.Standard == isa.Invalid {
		return nil, fmt.Errorf("unknown standard %q", *rawStd)
	}
	if cfg.Package == "" {
		cfg.Package = makePackageName(*rawStd)
	}
	level, err := log.ParseLevel(*rawLevel)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level
	return cfg, nil
}

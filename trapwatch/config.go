package main

import (
	"flag"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/apparentlymart/riscv-dispatch/backtrace"
)

func parseFlags(args []string) (*backtrace.Config, log.Level, error) {
	cfg := backtrace.DefaultConfig()
	fs := flag.NewFlagSet("trapwatch", flag.ContinueOnError)
	fs.StringVar(&cfg.KernelFile, "kernel", cfg.KernelFile, "kernel ELF file the addresses belong to")
	fs.StringVar(&cfg.Addr2Line, "addr2line", cfg.Addr2Line, "addr2line program")
	fs.StringVar(&cfg.Demangler, "demangler", cfg.Demangler, "symbol demangling filter, or empty for none")
	fs.StringVar(&cfg.StartMarker, "start", cfg.StartMarker, "marker printed before a trap address list")
	rawEnds := fs.String("end", strings.Join(cfg.EndMarkers, ","), "comma-separated markers that end the run")
	fs.IntVar(&cfg.Concurrency, "j", cfg.Concurrency, "addr2line processes to run at once")
	rawLevel := fs.String("log-level", "info", "logging level")
	if err := fs.Parse(args); err != nil {
		return nil, 0, err
	}
	if fs.NArg() > 0 {
		return nil, 0, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if cfg.StartMarker == "" {
		return nil, 0, fmt.Errorf("the start marker must not be empty")
	}
	cfg.EndMarkers = nil
	for _, m := range strings.Split(*rawEnds, ",") {
		if m != "" {
			cfg.EndMarkers = append(cfg.EndMarkers, m)
		}
	}
	if len(cfg.EndMarkers) == 0 {
		return nil, 0, fmt.Errorf("at least one end marker is required")
	}

	level, err := log.ParseLevel(*rawLevel)
	if err != nil {
		return nil, 0, err
	}
	return &cfg, level, nil
}

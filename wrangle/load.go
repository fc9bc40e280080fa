package main

import (
	"fmt"

	"github.com/apparentlymart/riscv-dispatch/defs"
	"github.com/apparentlymart/riscv-dispatch/isa"
)

// loadDefinitions loads the definitions named by cfg and keeps the ones
// belonging to the selected standard.
func loadDefinitions(cfg *Config) (isa.Definitions, error) {
	all := defs.Base()
	if cfg.DefsFile != "" {
		var err error
		all, err = defs.LoadFile(cfg.DefsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load definitions: %w", err)
		}
	}
	if cfg.FullNamesFile != "" {
		names, err := defs.LoadFullNamesFile(cfg.FullNamesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load full names: %w", err)
		}
		all = defs.WithFullNames(all, names)
	}

	ret := all.Select(cfg.Standard)
	if len(ret) == 0 {
		return nil, fmt.Errorf("no definitions belong to %s", cfg.Standard)
	}
	return ret, nil
}

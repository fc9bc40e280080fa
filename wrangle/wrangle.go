// Command wrangle turns a table of instruction definitions into Go source
// for a static dispatch table.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"

	"github.com/apparentlymart/riscv-dispatch/dispatch"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	if err := run(cfg, os.Stdout, log.StandardLogger()); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *Config, stdout io.Writer, logger log.FieldLogger) error {
	defs, err := loadDefinitions(cfg)
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"standard":    cfg.Standard,
		"definitions": len(defs),
	}).Info("Loaded definitions")
	if cfg.Dump {
		spew.Fdump(os.Stderr, defs)
	}

	// Building the table runs every static check, so a failure here means
	// nothing gets written.
	if _, err := dispatch.Build(defs); err != nil {
		problems := dispatch.DefinitionErrors(err)
		for _, de := range problems {
			logger.WithFields(log.Fields{
				"index":    de.Index,
				"mnemonic": de.Mnemonic,
			}).Error(de.Err)
		}
		return fmt.Errorf("found %d problems in the definitions, refusing to generate a table", len(problems))
	}

	src, err := generateGo(cfg.Package, cfg.Standard, defs)
	if err != nil {
		return err
	}

	if cfg.OutputFile == "-" || cfg.OutputFile == "" {
		_, err = stdout.Write(src)
		return err
	}
	if err := os.WriteFile(cfg.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.OutputFile, err)
	}
	logger.WithField("file", cfg.OutputFile).Info("Wrote dispatch table")
	return nil
}

// Command trapwatch copies an emulator's console from standard input to
// standard output, replacing each trap address list the kernel prints with
// a symbolized backtrace.
//
//	qemu-system-riscv64 ... | trapwatch -kernel target/kernel
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"github.com/apparentlymart/riscv-dispatch/backtrace"
)

func main() {
	cfg, level, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, cfg, os.Stdin, os.Stdout, log.StandardLogger())
	if errors.Is(err, backtrace.ErrUnterminated) {
		log.Warn(err)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *backtrace.Config, in io.Reader, out io.Writer, logger log.FieldLogger) error {
	w := backtrace.NewWatcher(cfg, out, backtrace.NewAddr2Line(cfg), backtrace.NewDemangler(cfg), logger)
	return w.Watch(ctx, in)
}

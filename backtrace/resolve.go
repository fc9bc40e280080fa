package backtrace

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Location is where an address falls in the kernel image.
type Location struct {
	Function string
	File     string
}

// Resolver turns return addresses into locations. The result has one
// location per address, in the same order.
type Resolver interface {
	Resolve(ctx context.Context, addrs []uint64) ([]Location, error)
}

// Addr2Line resolves addresses by running a binutils addr2line program
// against the kernel ELF file, once per address.
type Addr2Line struct {
	Program string
	Kernel  string

	// Concurrency limits how many addr2line processes run at once. Zero or
	// less means one at a time.
	Concurrency int
}

// NewAddr2Line returns a resolver configured from cfg.
func NewAddr2Line(cfg *Config) *Addr2Line {
	return &Addr2Line{
		Program:     cfg.Addr2Line,
		Kernel:      cfg.KernelFile,
		Concurrency: cfg.Concurrency,
	}
}

func (a *Addr2Line) Resolve(ctx context.Context, addrs []uint64) ([]Location, error) {
	ret := make([]Location, len(addrs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.Concurrency, 1))
	for i, addr := range addrs {
		i, addr := i, addr
		g.Go(func() error {
			loc, err := a.resolveOne(ctx, addr)
			if err != nil {
				return err
			}
			ret[i] = loc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (a *Addr2Line) resolveOne(ctx context.Context, addr uint64) (Location, error) {
	cmd := exec.CommandContext(ctx, a.Program, "-e", a.Kernel, "-f", fmt.Sprintf("0x%x", addr))
	out, err := cmd.Output()
	if err != nil {
		return Location{}, fmt.Errorf("failed to resolve 0x%x: %w", addr, err)
	}
	// addr2line -f prints the function name on one line and file:line on
	// the next.
	lines := strings.Split(strings.TrimRight(string(out), "\r\n"), "\n")
	if len(lines) < 2 {
		return Location{}, fmt.Errorf("failed to resolve 0x%x: unexpected addr2line output %q", addr, out)
	}
	return Location{
		Function: strings.TrimSpace(lines[0]),
		File:     strings.TrimSpace(lines[1]),
	}, nil
}

// Demangler turns symbol names into readable ones. The result has one name
// per input name, in the same order.
type Demangler interface {
	Demangle(ctx context.Context, names []string) ([]string, error)
}

// NopDemangler returns names unchanged.
type NopDemangler struct{}

func (NopDemangler) Demangle(_ context.Context, names []string) ([]string, error) {
	return names, nil
}

// CommandDemangler runs a filter program such as rustfilt or c++filt,
// writing one name per line to its standard input and reading the same
// number of lines back.
type CommandDemangler struct {
	Program string
	Args    []string
}

func (d *CommandDemangler) Demangle(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	cmd := exec.CommandContext(ctx, d.Program, d.Args...)
	cmd.Stdin = strings.NewReader(strings.Join(names, "\n") + "\n")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", d.Program, err)
	}
	lines := strings.Split(string(bytes.TrimRight(out, "\r\n")), "\n")
	if len(lines) != len(names) {
		return nil, fmt.Errorf("%s returned %d names for %d inputs", d.Program, len(lines), len(names))
	}
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines, nil
}

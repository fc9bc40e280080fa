// Package backtrace watches a kernel's console output for trap backtraces
// and prints them with function names and source locations.
//
// The kernel reports a trap by printing a start marker followed by its
// return addresses in decimal, separated by commas and ended by a newline.
// A separate end marker means the test run is over.
package backtrace

// Config is everything the watcher and its resolvers need. It is built
// once, usually from command line flags, and not changed afterwards.
type Config struct {
	// KernelFile is the ELF image whose symbols the addresses refer to.
	KernelFile string

	// Addr2Line is the addr2line program to run.
	Addr2Line string

	// Demangler is a filter program for symbol names. Names are printed as
	// addr2line reports them when it is empty.
	Demangler string

	StartMarker string
	EndMarkers  []string

	// Concurrency is the number of addr2line processes to run at once.
	Concurrency int
}

// DefaultConfig returns the settings for a RISC-V kernel built with Rust.
func DefaultConfig() Config {
	return Config{
		KernelFile:  "kernel",
		Addr2Line:   "riscv64-unknown-elf-addr2line",
		Demangler:   "rustfilt",
		StartMarker: "ERR_FROM_ADDR:",
		EndMarkers:  []string{"FLAG_EO_TESTS", "QEMU: Terminated"},
		Concurrency: 4,
	}
}

// NewDemangler returns the demangler cfg asks for.
func NewDemangler(cfg *Config) Demangler {
	if cfg.Demangler == "" {
		return NopDemangler{}
	}
	return &CommandDemangler{Program: cfg.Demangler}
}

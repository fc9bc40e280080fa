package backtrace

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// ErrUnterminated is returned by Watch when the console stream ends before
// an end marker.
var ErrUnterminated = errors.New("console closed before the end of the test run")

type state int

const (
	// stateIdle passes console bytes through with no marker in progress.
	stateIdle state = iota

	// stateMarker passes bytes through while the tail of the stream is a
	// prefix of some marker.
	stateMarker

	// stateAddresses collects an address list up to its newline.
	stateAddresses

	// stateDone has seen an end marker.
	stateDone
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateMarker:
		return "marker"
	case stateAddresses:
		return "addresses"
	case stateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Watcher copies a console stream to its output, replacing each trap
// address list with a resolved backtrace.
type Watcher struct {
	resolver  Resolver
	demangler Demangler
	log       logrus.FieldLogger

	out *bufio.Writer

	// width is the terminal width when the output is a terminal, and zero
	// otherwise.
	width int

	state state
	start *matcher
	ends  []*matcher
	addrs []byte
}

// NewWatcher returns a watcher that writes to out. If out is a terminal,
// the end marker's line is erased once the run is over.
func NewWatcher(cfg *Config, out io.Writer, resolver Resolver, demangler Demangler, log logrus.FieldLogger) *Watcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	w := &Watcher{
		resolver:  resolver,
		demangler: demangler,
		log:       log,
		out:       bufio.NewWriter(out),
		start:     newMatcher(cfg.StartMarker),
	}
	for _, m := range cfg.EndMarkers {
		w.ends = append(w.ends, newMatcher(m))
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			w.width = width
		}
	}
	return w
}

// Watch reads r until an end marker, or until r is exhausted in which case
// it returns ErrUnterminated.
func (w *Watcher) Watch(ctx context.Context, r io.Reader) error {
	buf := make([]byte, 4096)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if perr := w.feed(ctx, b); perr != nil {
				return perr
			}
			if w.state == stateDone {
				w.eraseLine()
				return w.out.Flush()
			}
		}
		if ferr := w.out.Flush(); ferr != nil {
			return ferr
		}
		if err == io.EOF {
			if w.state == stateAddresses {
				w.log.WithField("addresses", string(w.addrs)).Warn("Console closed during an address list")
			}
			return ErrUnterminated
		}
		if err != nil {
			return err
		}
	}
}

func (w *Watcher) feed(ctx context.Context, b byte) error {
	if w.state == stateAddresses {
		if b != '\n' {
			w.addrs = append(w.addrs, b)
			return nil
		}
		w.setState(stateIdle)
		err := w.backtrace(ctx, string(w.addrs))
		w.addrs = w.addrs[:0]
		return err
	}

	if err := w.out.WriteByte(b); err != nil {
		return err
	}
	for _, m := range w.ends {
		if m.feed(b) {
			w.setState(stateDone)
			return nil
		}
	}
	if w.start.feed(b) {
		for _, m := range w.ends {
			m.reset()
		}
		w.setState(stateAddresses)
		return nil
	}

	partial := w.start.partial()
	for _, m := range w.ends {
		partial = partial || m.partial()
	}
	if partial {
		w.setState(stateMarker)
	} else {
		w.setState(stateIdle)
	}
	return nil
}

func (w *Watcher) setState(s state) {
	if s == w.state {
		return
	}
	w.log.WithFields(logrus.Fields{"from": w.state, "to": s}).Debug("Backtrace watcher state change")
	w.state = s
}

// backtrace resolves and prints one address list.
func (w *Watcher) backtrace(ctx context.Context, raw string) error {
	addrs := w.parseAddrs(raw)

	if _, err := w.out.WriteString("\n"); err != nil {
		return err
	}
	if len(addrs) == 0 {
		return nil
	}

	locs, err := w.resolver.Resolve(ctx, addrs)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.log.WithError(err).Warn("Failed to resolve backtrace")
		locs = make([]Location, len(addrs))
		for i, addr := range addrs {
			locs[i] = Location{Function: fmt.Sprintf("0x%x", addr), File: "??"}
		}
	} else {
		names := make([]string, len(locs))
		for i, loc := range locs {
			names[i] = loc.Function
		}
		demangled, err := w.demangler.Demangle(ctx, names)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.log.WithError(err).Warn("Failed to demangle backtrace")
		} else if len(demangled) != len(locs) {
			w.log.WithFields(logrus.Fields{
				"names":     len(locs),
				"demangled": len(demangled),
			}).Warn("Demangler returned the wrong number of names")
		} else {
			for i := range locs {
				locs[i].Function = demangled[i]
			}
		}
	}

	for i, loc := range locs {
		if _, err := fmt.Fprintf(w.out, "%d -> %s at %s\n", i, loc.Function, loc.File); err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) parseAddrs(raw string) []uint64 {
	var ret []uint64
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			w.log.WithField("address", field).Warn("Ignoring malformed backtrace address")
			continue
		}
		ret = append(ret, v)
	}
	return ret
}

// eraseLine blanks the current terminal line, which holds the end marker.
func (w *Watcher) eraseLine() {
	if w.width <= 0 {
		return
	}
	w.out.WriteString("\r" + strings.Repeat(" ", w.width) + "\r")
}

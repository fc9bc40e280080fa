package backtrace

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeResolver struct {
	calls [][]uint64
	err   error
}

func (r *fakeResolver) Resolve(_ context.Context, addrs []uint64) ([]Location, error) {
	r.calls = append(r.calls, append([]uint64(nil), addrs...))
	if r.err != nil {
		return nil, r.err
	}
	ret := make([]Location, len(addrs))
	for i, a := range addrs {
		ret[i] = Location{
			Function: fmt.Sprintf("_ZN4func%d", a),
			File:     fmt.Sprintf("src/lib.rs:%d", a%100),
		}
	}
	return ret, nil
}

type fakeDemangler struct {
	err error
}

func (d fakeDemangler) Demangle(_ context.Context, names []string) ([]string, error) {
	if d.err != nil {
		return nil, d.err
	}
	ret := make([]string, len(names))
	for i, n := range names {
		ret[i] = strings.TrimPrefix(n, "_ZN4")
	}
	return ret, nil
}

func testConfig() *Config {
	cfg := DefaultConfig()
	return &cfg
}

func watch(t *testing.T, input string, resolver Resolver, demangler Demangler) (string, *test.Hook, error) {
	t.Helper()
	log, hook := test.NewNullLogger()
	var out bytes.Buffer
	w := NewWatcher(testConfig(), &out, resolver, demangler, log)
	err := w.Watch(context.Background(), strings.NewReader(input))
	return out.String(), hook, err
}

func TestWatchBacktrace(t *testing.T) {
	resolver := &fakeResolver{}
	input := "booting\npanic! ERR_FROM_ADDR:2147483650,2147483904,12\nmore output\nFLAG_EO_TESTS trailing ignored"
	got, _, err := watch(t, input, resolver, fakeDemangler{})
	if err != nil {
		t.Fatal(err)
	}

	want := "booting\npanic! ERR_FROM_ADDR:\n" +
		"0 -> func2147483650 at src/lib.rs:50\n" +
		"1 -> func2147483904 at src/lib.rs:4\n" +
		"2 -> func12 at src/lib.rs:12\n" +
		"more output\nFLAG_EO_TESTS"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong output (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]uint64{{2147483650, 2147483904, 12}}, resolver.calls); diff != "" {
		t.Errorf("wrong resolver calls (-want +got):\n%s", diff)
	}
}

func TestWatchByteAtATime(t *testing.T) {
	input := "ERR_FROM_ADDR:1\nERR_FROM_ADDR:2,3\r\nQEMU: Terminated"
	var whole, split bytes.Buffer
	log, _ := test.NewNullLogger()
	w := NewWatcher(testConfig(), &whole, &fakeResolver{}, NopDemangler{}, log)
	if err := w.Watch(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	w = NewWatcher(testConfig(), &split, &fakeResolver{}, NopDemangler{}, log)
	if err := w.Watch(context.Background(), iotest.OneByteReader(strings.NewReader(input))); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(whole.String(), split.String()); diff != "" {
		t.Errorf("output depends on read sizes (-whole +split):\n%s", diff)
	}
	if !strings.Contains(whole.String(), "1 -> _ZN4func3 at src/lib.rs:3\n") {
		t.Errorf("missing second backtrace in %q", whole.String())
	}
}

func TestWatchOverlappingMarker(t *testing.T) {
	// A false start that shares a prefix with the marker must not hide the
	// real marker that follows it.
	resolver := &fakeResolver{}
	input := "ERR_FROM_ERR_FROM_ADDR:7\nERRERR_FROM_ADDR:8\nFLAG_EO_FLAG_EO_TESTS"
	_, _, err := watch(t, input, resolver, NopDemangler{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]uint64{{7}, {8}}, resolver.calls); diff != "" {
		t.Errorf("wrong resolver calls (-want +got):\n%s", diff)
	}
}

func TestWatchUnterminated(t *testing.T) {
	_, _, err := watch(t, "no markers here\n", &fakeResolver{}, NopDemangler{})
	if !errors.Is(err, ErrUnterminated) {
		t.Errorf("wrong error: %v", err)
	}

	_, hook, err := watch(t, "ERR_FROM_ADDR:1,2", &fakeResolver{}, NopDemangler{})
	if !errors.Is(err, ErrUnterminated) {
		t.Errorf("wrong error: %v", err)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.WarnLevel {
		t.Errorf("cut-off address list was not logged")
	}
}

func TestWatchMalformedAddresses(t *testing.T) {
	resolver := &fakeResolver{}
	got, hook, err := watch(t, "ERR_FROM_ADDR:5,bogus,,6,\nERR_FROM_ADDR:\nFLAG_EO_TESTS", resolver, NopDemangler{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]uint64{{5, 6}}, resolver.calls); diff != "" {
		t.Errorf("wrong resolver calls (-want +got):\n%s", diff)
	}
	if len(hook.AllEntries()) != 1 {
		t.Errorf("got %d log entries, want 1", len(hook.AllEntries()))
	}
	if !strings.Contains(got, "1 -> _ZN4func6 at src/lib.rs:6\n") {
		t.Errorf("wrong output %q", got)
	}
}

func TestWatchResolverFailure(t *testing.T) {
	got, hook, err := watch(t, "ERR_FROM_ADDR:16,32\nFLAG_EO_TESTS", &fakeResolver{err: errors.New("no addr2line")}, NopDemangler{})
	if err != nil {
		t.Fatal(err)
	}
	want := "ERR_FROM_ADDR:\n0 -> 0x10 at ??\n1 -> 0x20 at ??\nFLAG_EO_TESTS"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.WarnLevel {
		t.Errorf("failure was not logged")
	}
}

func TestWatchDemanglerFailure(t *testing.T) {
	got, _, err := watch(t, "ERR_FROM_ADDR:16\nFLAG_EO_TESTS", &fakeResolver{}, fakeDemangler{err: errors.New("no rustfilt")})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "0 -> _ZN4func16 at src/lib.rs:16\n") {
		t.Errorf("mangled names were not kept: %q", got)
	}
}

// shortDemangler loses the last name.
type shortDemangler struct{}

func (shortDemangler) Demangle(_ context.Context, names []string) ([]string, error) {
	return names[:len(names)-1], nil
}

func TestWatchDemanglerWrongCount(t *testing.T) {
	got, hook, err := watch(t, "ERR_FROM_ADDR:16,32\nFLAG_EO_TESTS", &fakeResolver{}, shortDemangler{})
	if err != nil {
		t.Fatal(err)
	}
	want := "ERR_FROM_ADDR:\n" +
		"0 -> _ZN4func16 at src/lib.rs:16\n" +
		"1 -> _ZN4func32 at src/lib.rs:32\n" +
		"FLAG_EO_TESTS"
	if got != want {
		t.Errorf("wrong output\ngot:  %q\nwant: %q", got, want)
	}
	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Data["demangled"] == 1 {
			warned = true
		}
	}
	if !warned {
		t.Error("short demangler output was not logged")
	}
}

func TestWatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	log, _ := test.NewNullLogger()
	w := NewWatcher(testConfig(), &bytes.Buffer{}, &fakeResolver{}, NopDemangler{}, log)
	if err := w.Watch(ctx, strings.NewReader("FLAG_EO_TESTS")); !errors.Is(err, context.Canceled) {
		t.Errorf("wrong error: %v", err)
	}
}

func TestMatcher(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    []int
	}{
		{"abab", "ababab", []int{3}},
		{"abab", "abababab", []int{3, 7}},
		{"aab", "aaab", []int{3}},
		{"ERR_FROM_ADDR:", "ERR_FROM_ERR_FROM_ADDR:", []int{22}},
		{"x", "axbx", []int{1, 3}},
		{"", "anything", nil},
	}
	for _, test := range tests {
		m := newMatcher(test.pattern)
		var got []int
		for i := 0; i < len(test.input); i++ {
			if m.feed(test.input[i]) {
				got = append(got, i)
			}
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q in %q (-want +got):\n%s", test.pattern, test.input, diff)
		}
	}
}

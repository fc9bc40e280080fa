package backtrace

// matcher finds a fixed marker in a byte stream fed to it one byte at a
// time, using the Knuth-Morris-Pratt failure function so that each byte is
// examined a bounded number of times no matter how long the stream is.
type matcher struct {
	pattern []byte
	fail    []int
	pos     int
}

func newMatcher(pattern string) *matcher {
	p := []byte(pattern)
	fail := make([]int, len(p))
	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = fail[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		fail[i] = k
	}
	return &matcher{
		pattern: p,
		fail:    fail,
	}
}

// feed advances the matcher by one byte and reports whether the marker
// ends at that byte. After a match the matcher starts over, so matches
// never overlap.
func (m *matcher) feed(b byte) bool {
	if len(m.pattern) == 0 {
		return false
	}
	for m.pos > 0 && b != m.pattern[m.pos] {
		m.pos = m.fail[m.pos-1]
	}
	if b == m.pattern[m.pos] {
		m.pos++
	}
	if m.pos == len(m.pattern) {
		m.pos = 0
		return true
	}
	return false
}

// partial reports whether a prefix of the marker has been seen.
func (m *matcher) partial() bool {
	return m.pos > 0
}

func (m *matcher) reset() {
	m.pos = 0
}

package main

import (
	"strings"
	"unicode"
)

// makePackageName turns a name like "rv32i" or "RV32-M" into a Go package
// name: lowercase letters and digits only.
func makePackageName(inp string) string {
	var b strings.Builder
	for i, r := range inp {
		switch {
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('p')
			}
			b.WriteRune(r)
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		}
	}
	if b.Len() == 0 {
		return "generated"
	}
	return b.String()
}

// makeIdentTitle turns a mnemonic like "fence.i" into the title-cased
// "FenceI", for use after a prefix such as "exec".
func makeIdentTitle(inp string) string {
	var b strings.Builder
	nextUpper := true
	for _, r := range inp {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
			nextUpper = true
		case unicode.IsLetter(r):
			if nextUpper {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			nextUpper = false
		default:
			nextUpper = true
		}
	}
	return b.String()
}

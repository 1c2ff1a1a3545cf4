package dertree

/*
common.go contains small aliases and helpers shared by the rest of this
package, following the same "official import aliases" pattern used
throughout the teacher library this package was adapted from: a short,
stable local name for a handful of stdlib entry points that are used
pervasively, so call sites stay terse and grep-able.
*/

import (
	"strconv"
	"strings"
)

var (
	itoa    func(int) string          = strconv.Itoa
	hasSfx  func(string, string) bool = strings.HasSuffix
	stridxb func(string, byte) int    = strings.IndexByte
)

// bool2str renders a Go bool the way ASN.1 textual debugging output does
// throughout this package (e.g. [Boolean.String]).
func bool2str(b bool) (s string) {
	if s = "false"; b {
		s = "true"
	}
	return
}

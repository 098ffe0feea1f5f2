package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// IsValidKeyName checks that a key pair name is non-blank, has no
// surrounding whitespace, and contains no control characters.
func IsValidKeyName(name string) bool {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(name) != name {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// NextFreeName returns the first "<prefix><n>" with n >= start for which
// taken reports false, along with that n.
func NextFreeName(prefix string, start int, taken func(string) bool) (string, int) {
	n := start
	name := prefix + strconv.Itoa(n)
	for taken(name) {
		n++
		name = prefix + strconv.Itoa(n)
	}
	return name, n
}

// Package stringutil provides string helpers beyond the standard strings
// package: option-driven splitting, comparisons with selectable case
// sensitivity, title and slug casing, trimming with a sensible default
// cutset, and a symmetric XOR obfuscation.
package stringutil

import (
	"strings"
	"unicode"
)

// DefaultCutset is the whitespace removed by the Trim functions when no
// cutset is given, and trimmed from split entries.
const DefaultCutset = " \t\n\r\f\v"

// CompareType selects how comparisons treat letter case.
type CompareType int

const (
	// Ordinal compares strings exactly.
	Ordinal CompareType = iota

	// OrdinalIgnoreCase compares strings under Unicode case folding.
	OrdinalIgnoreCase
)

// SplitOptions is a bit set controlling Split behavior.
type SplitOptions int

const (
	// SplitNone keeps every entry verbatim, including empty ones.
	SplitNone SplitOptions = 0

	// RemoveEmptyEntries drops entries that are empty before trimming.
	RemoveEmptyEntries SplitOptions = 1 << 0

	// TrimEntriesLeft trims leading whitespace from each entry.
	TrimEntriesLeft SplitOptions = 1 << 1

	// TrimEntriesRight trims trailing whitespace from each entry.
	TrimEntriesRight SplitOptions = 1 << 2

	// TrimEntries trims whitespace from both ends of each entry.
	TrimEntries = TrimEntriesLeft | TrimEntriesRight
)

// Has reports whether every bit of flag is set in o.
func (o SplitOptions) Has(flag SplitOptions) bool {
	return o&flag == flag
}

// Equals reports whether a and b are equal under the given comparison.
func Equals(a, b string, compare CompareType) bool {
	if compare == OrdinalIgnoreCase {
		return strings.EqualFold(a, b)
	}

	return a == b
}

// HasPrefix reports whether s begins with prefix under the given
// comparison.
func HasPrefix(s, prefix string, compare CompareType) bool {
	if compare == OrdinalIgnoreCase {
		return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
	}

	return strings.HasPrefix(s, prefix)
}

// HasSuffix reports whether s ends with suffix under the given comparison.
func HasSuffix(s, suffix string, compare CompareType) bool {
	if compare == OrdinalIgnoreCase {
		return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
	}

	return strings.HasSuffix(s, suffix)
}

// ToTitle upper-cases the first letter of every whitespace-separated word
// and lower-cases the rest.
func ToTitle(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	newWord := true

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			newWord = true

			b.WriteRune(r)
		case newWord:
			newWord = false

			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// ToSlug lowers s and collapses every run of non-alphanumeric characters
// into a single separator, with no leading or trailing separator.
func ToSlug(s string, separator rune) string {
	var b strings.Builder

	b.Grow(len(s))

	lastWasSep := true

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))

			lastWasSep = false
		} else if !lastWasSep {
			b.WriteRune(separator)

			lastWasSep = true
		}
	}

	return strings.TrimSuffix(b.String(), string(separator))
}

// Trim removes leading and trailing characters contained in cutset,
// defaulting to DefaultCutset whitespace when none is given.
func Trim(s string, cutset ...string) string {
	return strings.Trim(s, pickCutset(cutset))
}

// TrimLeft removes leading characters contained in cutset, defaulting to
// DefaultCutset whitespace when none is given.
func TrimLeft(s string, cutset ...string) string {
	return strings.TrimLeft(s, pickCutset(cutset))
}

// TrimRight removes trailing characters contained in cutset, defaulting to
// DefaultCutset whitespace when none is given.
func TrimRight(s string, cutset ...string) string {
	return strings.TrimRight(s, pickCutset(cutset))
}

// Split divides s at every occurrence of sep, honoring opts. An empty
// input yields nil. Emptiness is tested before trimming: an entry of pure
// whitespace survives RemoveEmptyEntries even when trimming reduces it to
// the empty string.
func Split(s string, sep rune, opts SplitOptions) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, string(sep))
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" && opts.Has(RemoveEmptyEntries) {
			continue
		}

		if opts.Has(TrimEntriesLeft) {
			part = strings.TrimLeft(part, DefaultCutset)
		}

		if opts.Has(TrimEntriesRight) {
			part = strings.TrimRight(part, DefaultCutset)
		}

		result = append(result, part)
	}

	return result
}

// Obfuscate XORs every byte of s with the key, wrapping around the key as
// needed. The cipher is symmetric: applying it twice with the same key
// returns the original string. An empty key returns s unchanged.
func Obfuscate(s, key string) string {
	if key == "" {
		return s
	}

	out := make([]byte, len(s))

	for i := 0; i < len(s); i++ {
		out[i] = s[i] ^ key[i%len(key)]
	}

	return string(out)
}

// Deobfuscate reverses Obfuscate. XOR is its own inverse, so it is the
// same operation.
func Deobfuscate(s, key string) string {
	return Obfuscate(s, key)
}

// pickCutset resolves the optional cutset argument of the Trim functions.
func pickCutset(cutset []string) string {
	if len(cutset) > 0 {
		return cutset[0]
	}

	return DefaultCutset
}

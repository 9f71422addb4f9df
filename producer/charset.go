package producer

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// Charset is an ordered alphabet of distinct runes. Words are generated by
// walking the alphabet in the order given here, so the order determines the
// order of the output.
type Charset []rune

// digits is the alphabet substituted for '%' in a template.
var digits = Charset("0123456789")

// DefaultCharsetName is used when neither a charset string nor a name is
// specified.
const DefaultCharsetName = "lalpha"

// namedCharsets contains the built-in charsets. The names follow the
// classic charset.lst conventions, so they line up with what wordlist
// tooling usually expects.
var namedCharsets = map[string]string{
	"numeric":                    "0123456789",
	"lalpha":                     "abcdefghijklmnopqrstuvwxyz",
	"ualpha":                     "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"mixalpha":                   "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"lalpha-numeric":             "abcdefghijklmnopqrstuvwxyz0123456789",
	"ualpha-numeric":             "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
	"mixalpha-numeric":           "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
	"hex-lower":                  "0123456789abcdef",
	"hex-upper":                  "0123456789ABCDEF",
	"symbols14":                  "!@#$%^&*()-_+=",
	"mixalpha-numeric-symbols14": "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()-_+=",
}

// ParseCharset converts s into a charset. Every rune must occur only once,
// otherwise counting words would silently go wrong.
func ParseCharset(s string) (Charset, error) {
	cs := Charset(s)
	if err := cs.validate(); err != nil {
		return nil, err
	}

	return cs, nil
}

// NamedCharset returns one of the built-in charsets.
func NamedCharset(name string) (Charset, error) {
	s, ok := namedCharsets[name]
	if !ok {
		return nil, fmt.Errorf("unknown charset name %q", name)
	}

	return ParseCharset(s)
}

// CharsetNames returns the names of all built-in charsets, sorted.
func CharsetNames() []string {
	names := make([]string, 0, len(namedCharsets))
	for name := range namedCharsets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (c Charset) String() string {
	return string(c)
}

func (c Charset) validate() error {
	if len(c) == 0 {
		return errors.New("charset is empty")
	}

	seen := make(map[rune]struct{}, len(c))
	for _, r := range c {
		if _, ok := seen[r]; ok {
			return fmt.Errorf("charset contains %q more than once", r)
		}
		seen[r] = struct{}{}
	}

	return nil
}

// classes returns the number of decimal digit runes and the number of all
// other runes in the charset.
func (c Charset) classes() (digitCount, otherCount int) {
	for _, r := range c {
		if isDigit(r) {
			digitCount++
		} else {
			otherCount++
		}
	}

	return digitCount, otherCount
}

// encodedLen returns the total UTF-8 encoded length of all runes in the
// charset, used for size estimates.
func (c Charset) encodedLen() int {
	var n int
	for _, r := range c {
		n += utf8.RuneLen(r)
	}

	return n
}

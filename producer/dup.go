package producer

// isDigit reports whether r is an ASCII decimal digit. Only '0' through '9'
// are exempt from duplicate suppression, not the full Unicode Nd category.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// forbiddenPair reports whether the rune b may not directly follow the rune
// a when duplicate suppression is active: both runes are equal and neither
// is a decimal digit. Equal runes share their digit-ness, so testing one of
// them is enough.
func forbiddenPair(a, b rune) bool {
	return a == b && !isDigit(a)
}

// HasConsecutiveDuplicates reports whether s contains two adjacent equal
// runes that are not decimal digits. Words like "aab" have consecutive
// duplicates, words like "1155" or "aba" do not.
func HasConsecutiveDuplicates(s string) bool {
	var prev rune
	first := true

	for _, r := range s {
		if !first && forbiddenPair(prev, r) {
			return true
		}
		prev = r
		first = false
	}

	return false
}

package reporter

// Bold returns s wrapped in the escape sequence for bold text.
func Bold(s string) string {
	return "\033[1m" + s + "\033[0m"
}

// Dim returns s wrapped in the escape sequence for dim text.
func Dim(s string) string {
	return "\033[2m" + s + "\033[0m"
}

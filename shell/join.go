package shell

import (
	"strconv"
	"strings"
)

func escapeParam(s string) string {
	if strings.ContainsAny(s, "$& ") {
		return strconv.Quote(s)
	}

	return s
}

// Join builds a shell command line from the given arguments, quoting
// everything the shell would otherwise take apart.
func Join(args []string) string {
	escaped := make([]string, 0, len(args))
	for _, arg := range args {
		escaped = append(escaped, escapeParam(arg))
	}

	return strings.Join(escaped, " ")
}

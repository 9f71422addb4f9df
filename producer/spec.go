package producer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// Spec describes which words to generate. It is filled from command-line
// flags and positional arguments and turned into a source with Source.
type Spec struct {
	MinLength int
	MaxLength int

	Charset     string
	CharsetName string

	Template     string
	NoDuplicates bool
}

// AddFlags adds flags for all options of a spec to fs.
func (s *Spec) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&s.Template, "template", "t", "", "generate words from `pattern`: '@' is replaced by a charset rune, '%' by a digit, all other runes are kept")
	fs.StringVarP(&s.CharsetName, "charset-name", "c", "", "use the built-in charset `name` (see the 'charsets' command)")
	fs.BoolVar(&s.NoDuplicates, "no-duplicates", false, "skip words in which a non-digit rune directly follows itself")
}

// ParseArgs fills the length range and the charset from the positional
// arguments. Without a template the arguments are MIN MAX [CHARSET]. With a
// template the word length is fixed by the pattern, so only [CHARSET]
// remains.
func (s *Spec) ParseArgs(args []string) error {
	if s.Template != "" {
		switch len(args) {
		case 0:
		case 1:
			s.Charset = args[0]
		default:
			return errors.New("with a template, the only allowed argument is the charset")
		}

		return nil
	}

	switch {
	case len(args) < 2:
		return errors.New("minimum and maximum word length are required")
	case len(args) > 3:
		return errors.New("more than three arguments specified")
	}

	min, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("wrong format for minimum length %q: %w", args[0], err)
	}

	max, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("wrong format for maximum length %q: %w", args[1], err)
	}

	s.MinLength = min
	s.MaxLength = max

	if len(args) == 3 {
		s.Charset = args[2]
	}

	return nil
}

// Source returns the word source the spec describes. Configuration errors
// like an empty charset or a length range in the wrong order are reported
// here, before any generation starts.
func (s *Spec) Source() (WordSource, error) {
	if s.Charset != "" && s.CharsetName != "" {
		return nil, errors.New("both a charset argument and --charset-name specified")
	}

	var (
		charset Charset
		err     error
	)

	switch {
	case s.Charset != "":
		charset, err = ParseCharset(s.Charset)
	case s.CharsetName != "":
		charset, err = NamedCharset(s.CharsetName)
	default:
		charset, err = NamedCharset(DefaultCharsetName)
	}
	if err != nil {
		return nil, err
	}

	if s.Template != "" {
		return NewTemplate(s.Template, charset, s.NoDuplicates)
	}

	return NewWords(charset, s.MinLength, s.MaxLength, s.NoDuplicates)
}

package producer

import (
	"context"
	"errors"
	"math"
	"unicode/utf8"
)

// Template is a source which yields all renderings of a pattern. Within the
// pattern, '@' marks a position substituted from the charset and '%' marks a
// position substituted from the digits 0-9, all other runes are kept as they
// are. A pattern without substitutable positions renders exactly once.
type Template struct {
	pattern   []rune
	charset   Charset
	noRepeats bool
}

// statically ensure that *Template implements WordSource
var _ WordSource = &Template{}

// NewTemplate initializes a source for all renderings of pattern over
// charset. With noRepeats, renderings with two adjacent equal non-digit
// runes are left out.
func NewTemplate(pattern string, charset Charset, noRepeats bool) (*Template, error) {
	err := charset.validate()
	if err != nil {
		return nil, err
	}

	if pattern == "" {
		return nil, errors.New("template is empty")
	}

	return &Template{
		pattern:   []rune(pattern),
		charset:   charset,
		noRepeats: noRepeats,
	}, nil
}

// render returns the word buffer with the literal positions filled in,
// together with the substitutable positions of the pattern.
func (t *Template) render() ([]rune, []slot) {
	word := make([]rune, len(t.pattern))
	var slots []slot

	for i, r := range t.pattern {
		switch r {
		case '@':
			slots = append(slots, slot{pos: i, alphabet: t.charset})
		case '%':
			slots = append(slots, slot{pos: i, alphabet: digits})
		default:
			word[i] = r
		}
	}

	return word, slots
}

// Count returns the number of renderings the source yields.
func (t *Template) Count() (uint64, error) {
	word, slots := t.render()

	if !t.noRepeats {
		total := uint64(1)
		for _, s := range slots {
			var err error
			total, err = mulCount(total, uint64(len(s.alphabet)))
			if err != nil {
				return 0, err
			}
		}

		return total, nil
	}

	alphabets := make([]Charset, len(word))
	for _, s := range slots {
		alphabets[s.pos] = s.alphabet
	}

	return countRendered(word, alphabets)
}

// Size estimates the number of bytes the renderings occupy when written as
// lines, including a newline after each rendering.
func (t *Template) Size() (uint64, error) {
	count, err := t.Count()
	if err != nil {
		return 0, err
	}

	word, slots := t.render()

	substituted := make([]bool, len(word))
	perWord := 1.0 // newline
	for _, s := range slots {
		substituted[s.pos] = true
		perWord += float64(s.alphabet.encodedLen()) / float64(len(s.alphabet))
	}
	for i, r := range word {
		if !substituted[i] {
			perWord += float64(utf8.RuneLen(r))
		}
	}

	size := float64(count) * perWord
	if size >= math.MaxUint64 {
		return math.MaxUint64, nil
	}

	return uint64(size), nil
}

// Yield sends all renderings to ch, and the number of renderings to the
// channel count.
func (t *Template) Yield(ctx context.Context, ch chan<- string, count chan<- uint64) error {
	defer close(ch)

	total, err := t.Count()
	if err != nil {
		return err
	}

	count <- total

	word, slots := t.render()
	o := newOdometer(word, slots, t.noRepeats)
	for o.next() {
		select {
		case ch <- string(word):
		case <-ctx.Done():
			return nil
		}
	}

	return nil
}

package producer

import (
	"context"
	"fmt"
	"math"
)

// Words is a source which yields all words between a minimum and a maximum
// length over a charset, shortest first.
type Words struct {
	charset   Charset
	minLength int
	maxLength int
	noRepeats bool
}

// statically ensure that *Words implements WordSource
var _ WordSource = &Words{}

// NewWords initializes a source for all words from minLength up to maxLength
// over charset. With noRepeats, words with two adjacent equal non-digit runes
// are left out.
func NewWords(charset Charset, minLength, maxLength int, noRepeats bool) (*Words, error) {
	err := charset.validate()
	if err != nil {
		return nil, err
	}

	if minLength < 1 {
		return nil, fmt.Errorf("minimum length must be at least 1, got %d", minLength)
	}

	if maxLength < minLength {
		return nil, fmt.Errorf("maximum length %d is smaller than minimum length %d", maxLength, minLength)
	}

	return &Words{
		charset:   charset,
		minLength: minLength,
		maxLength: maxLength,
		noRepeats: noRepeats,
	}, nil
}

func (w *Words) countAtLength(length int) (uint64, error) {
	if w.noRepeats {
		digitCount, otherCount := w.charset.classes()
		return countNoRepeats(digitCount, otherCount, length)
	}

	return countPlain(len(w.charset), length)
}

// Count returns the number of words the source yields.
func (w *Words) Count() (uint64, error) {
	var total uint64
	for length := w.minLength; length <= w.maxLength; length++ {
		n, err := w.countAtLength(length)
		if err != nil {
			return 0, err
		}

		total, err = addCount(total, n)
		if err != nil {
			return 0, err
		}
	}

	return total, nil
}

// Size estimates the number of bytes the words occupy when written as lines,
// including a newline after each word. The estimate assumes runes of average
// encoded size, it is exact for single-byte charsets.
func (w *Words) Size() (uint64, error) {
	avg := float64(w.charset.encodedLen()) / float64(len(w.charset))

	var size float64
	for length := w.minLength; length <= w.maxLength; length++ {
		n, err := w.countAtLength(length)
		if err != nil {
			return 0, err
		}

		size += float64(n) * (avg*float64(length) + 1)
	}

	if size >= math.MaxUint64 {
		return math.MaxUint64, nil
	}

	return uint64(size), nil
}

// Yield sends all words to ch, and the number of words to the channel count.
func (w *Words) Yield(ctx context.Context, ch chan<- string, count chan<- uint64) error {
	defer close(ch)

	total, err := w.Count()
	if err != nil {
		return err
	}

	count <- total

	for length := w.minLength; length <= w.maxLength; length++ {
		word := make([]rune, length)
		slots := make([]slot, length)
		for i := range slots {
			slots[i] = slot{pos: i, alphabet: w.charset}
		}

		o := newOdometer(word, slots, w.noRepeats)
		for o.next() {
			select {
			case ch <- string(word):
			case <-ctx.Done():
				return nil
			}
		}
	}

	return nil
}

package producer

import (
	"errors"
	"math"
)

// ErrCountOverflow is returned when the number of words for a configuration
// does not fit into an uint64. Such configurations are rejected before
// generation starts: a wrapped total would corrupt the progress display and
// the size estimate.
var ErrCountOverflow = errors.New("number of words exceeds uint64 range")

func addCount(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrCountOverflow
	}

	return a + b, nil
}

func mulCount(a, b uint64) (uint64, error) {
	if a != 0 && b > math.MaxUint64/a {
		return 0, ErrCountOverflow
	}

	return a * b, nil
}

func powCount(base uint64, exp int) (uint64, error) {
	result := uint64(1)
	for ; exp > 0; exp-- {
		var err error
		result, err = mulCount(result, base)
		if err != nil {
			return 0, err
		}
	}

	return result, nil
}

// countPlain returns the number of words of the given length over a charset
// of the given size: charsetLen^length.
func countPlain(charsetLen, length int) (uint64, error) {
	return powCount(uint64(charsetLen), length)
}

// countNoRepeats returns the number of words of the given length without
// two adjacent equal non-digit runes, over a charset containing digitCount
// digit runes and otherCount other runes.
//
// The recurrence tracks words by the class of their last rune: a digit may
// follow any rune, a non-digit rune may follow any digit and every non-digit
// rune except itself. For charsets without digits this reduces to
// otherCount * (otherCount-1)^(length-1).
func countNoRepeats(digitCount, otherCount, length int) (uint64, error) {
	if length == 0 {
		return 1, nil
	}

	d := uint64(digitCount)
	n := uint64(otherCount)

	endDigit, endOther := d, n
	for k := 1; k < length; k++ {
		sum, err := addCount(endDigit, endOther)
		if err != nil {
			return 0, err
		}

		nextDigit, err := mulCount(sum, d)
		if err != nil {
			return 0, err
		}

		var nextOther uint64
		if n > 0 {
			fromDigit, err := mulCount(endDigit, n)
			if err != nil {
				return 0, err
			}

			fromOther, err := mulCount(endOther, n-1)
			if err != nil {
				return 0, err
			}

			nextOther, err = addCount(fromDigit, fromOther)
			if err != nil {
				return 0, err
			}
		}

		endDigit, endOther = nextDigit, nextOther
	}

	return addCount(endDigit, endOther)
}

// countRendered returns the exact number of renderings of word that pass
// duplicate suppression. alphabets holds the alphabet per position, nil for
// literal positions whose rune is fixed in word. Literal positions take part
// in the adjacency rule, so a pattern whose literals collide counts zero.
func countRendered(word []rune, alphabets []Charset) (uint64, error) {
	if len(word) == 0 {
		return 1, nil
	}

	// weights holds the number of valid renderings of the positions so far,
	// per rune the rendering ends with
	weights := make(map[rune]uint64)

	if first := alphabets[0]; first == nil {
		weights[word[0]] = 1
	} else {
		for _, r := range first {
			weights[r] = 1
		}
	}

	for pos := 1; pos < len(word); pos++ {
		alphabet := alphabets[pos]
		if alphabet == nil {
			alphabet = Charset{word[pos]}
		}

		next := make(map[rune]uint64, len(alphabet))
		for prev, weight := range weights {
			for _, r := range alphabet {
				if forbiddenPair(prev, r) {
					continue
				}

				sum, err := addCount(next[r], weight)
				if err != nil {
					return 0, err
				}
				next[r] = sum
			}
		}
		weights = next
	}

	var total uint64
	for _, weight := range weights {
		var err error
		total, err = addCount(total, weight)
		if err != nil {
			return 0, err
		}
	}

	return total, nil
}

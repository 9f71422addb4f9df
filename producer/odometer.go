package producer

// slot is one substitutable position of a word pattern.
type slot struct {
	pos      int // index into the word buffer
	alphabet Charset
}

// odometer enumerates all renderings of a pattern in mixed-radix order: the
// last slot changes fastest, the first slot slowest, and each slot walks its
// alphabet in the given order. With noRepeats set, renderings containing two
// adjacent equal non-digit runes are skipped by pruning the offending slot
// values, so every rendering produced by next is valid.
type odometer struct {
	word    []rune // rendered word, literal positions are fixed
	slots   []slot // substitutable positions, ordered by pos
	current []int  // alphabet index per slot

	noRepeats bool
	started   bool
	done      bool
}

func newOdometer(word []rune, slots []slot, noRepeats bool) *odometer {
	o := &odometer{
		word:      word,
		slots:     slots,
		current:   make([]int, len(slots)),
		noRepeats: noRepeats,
	}

	if noRepeats && o.literalsCollide() {
		// the violation is part of every rendering, nothing can be produced
		o.done = true
	}

	return o
}

// literalsCollide reports whether two adjacent literal positions of the
// pattern hold equal non-digit runes.
func (o *odometer) literalsCollide() bool {
	fixed := make([]bool, len(o.word))
	for i := range fixed {
		fixed[i] = true
	}
	for _, s := range o.slots {
		fixed[s.pos] = false
	}

	for i := 1; i < len(o.word); i++ {
		if fixed[i-1] && fixed[i] && forbiddenPair(o.word[i-1], o.word[i]) {
			return true
		}
	}

	return false
}

// valid reports whether r may occupy slot i. Positions left of the slot are
// already rendered, so the predecessor can be consulted directly. A literal
// directly after the slot is fixed and is checked here as well, continuing
// past it could never produce a valid word.
func (o *odometer) valid(i int, r rune) bool {
	if !o.noRepeats {
		return true
	}

	pos := o.slots[i].pos
	if pos > 0 && forbiddenPair(o.word[pos-1], r) {
		return false
	}

	if next := pos + 1; next < len(o.word) && o.isLiteral(i, next) && forbiddenPair(r, o.word[next]) {
		return false
	}

	return true
}

// isLiteral reports whether the word position pos is a literal, given that
// pos lies directly behind slot i.
func (o *odometer) isLiteral(i, pos int) bool {
	return i == len(o.slots)-1 || o.slots[i+1].pos != pos
}

// next advances the odometer to the next valid rendering of the pattern.
// The first call produces the first rendering. It returns false once all
// renderings have been produced, the current rendering is o.word.
func (o *odometer) next() bool {
	if o.done {
		return false
	}

	i := len(o.slots) - 1

	if !o.started {
		o.started = true

		if len(o.slots) == 0 {
			// no substitutable positions, the pattern renders exactly once
			o.done = true
			return !o.noRepeats || !HasConsecutiveDuplicates(string(o.word))
		}

		i = 0
		o.current[0] = -1
	}

	for i >= 0 {
		s := o.slots[i]

		o.current[i]++
		if o.current[i] >= len(s.alphabet) {
			// slot overflowed, carry into the slot before it
			o.current[i] = -1
			i--
			continue
		}

		r := s.alphabet[o.current[i]]
		if !o.valid(i, r) {
			continue
		}
		o.word[s.pos] = r

		if i == len(o.slots)-1 {
			return true
		}

		// descend into the next slot
		i++
		o.current[i] = -1
	}

	o.done = true

	return false
}

// Package producer contains several methods to generate words.
package producer

import "context"

// Source produces a sequence of words.
type Source interface {
	// Yield sends all words to ch, and the number of words to the channel
	// count. Sending stops and ch is closed when an error occurs or the
	// context is cancelled. The channel count should be buffered with a
	// size of at least one, so sending the count does not block.
	Yield(ctx context.Context, ch chan<- string, count chan<- uint64) error
}

// WordSource is a Source whose exact output is known before generation
// starts: the number of words and an estimate of the bytes they occupy.
type WordSource interface {
	Source

	// Count returns the exact number of words Yield will send.
	Count() (uint64, error)

	// Size estimates the number of bytes the words occupy when written
	// one per line, including newlines.
	Size() (uint64, error)
}

package producer

import "context"

// Filter selects/rejects words received from a producer.
type Filter interface {
	// Count corrects the number of total words to generate
	Count(ctx context.Context, in <-chan uint64) <-chan uint64

	// Select filters the words
	Select(ctx context.Context, in <-chan string) <-chan string
}

// FilterSkip skips the first n words sent over the channel.
type FilterSkip struct {
	Skip uint64
}

// Count filters the number of words.
func (f *FilterSkip) Count(ctx context.Context, in <-chan uint64) <-chan uint64 {
	out := make(chan uint64, 1)

	go func() {
		defer close(out)
		var total uint64
		select {
		case total = <-in:
		case <-ctx.Done():
		}

		// calculate the correct total count
		if total < f.Skip {
			total = 0
		} else {
			total -= f.Skip
		}

		select {
		case out <- total:
		case <-ctx.Done():
		}
	}()

	return out
}

// Select filters words sent over ch.
func (f *FilterSkip) Select(ctx context.Context, in <-chan string) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)
		var cur uint64
		for {
			var v string
			var ok bool
			select {
			case <-ctx.Done():
				return
			case v, ok = <-in:
				// when the input channel is closed we're done
				if !ok {
					return
				}
			}

			if cur < f.Skip {
				cur++
				// drop value, receive next
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- v:
			}
		}
	}()

	return out
}

// FilterLimit passes through at most Max words.
type FilterLimit struct {
	Max uint64

	// CancelProducer is called when the limit is reached, so the producer
	// does not keep generating words nobody will receive.
	CancelProducer func()
}

// Count filters the number of words.
func (f *FilterLimit) Count(ctx context.Context, in <-chan uint64) <-chan uint64 {
	out := make(chan uint64, 1)

	go func() {
		defer close(out)
		var total uint64
		select {
		case total = <-in:
		case <-ctx.Done():
		}

		// calculate the correct total count
		if total > f.Max {
			total = f.Max
		}

		select {
		case out <- total:
		case <-ctx.Done():
		}
	}()

	return out
}

// Select filters words sent over ch.
func (f *FilterLimit) Select(ctx context.Context, in <-chan string) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)
		var cur uint64
		for {
			var v string
			var ok bool
			select {
			case <-ctx.Done():
				return
			case v, ok = <-in:
				// when the input channel is closed we're done
				if !ok {
					return
				}
			}

			if cur >= f.Max {
				if f.CancelProducer != nil {
					f.CancelProducer()
				}
				return
			}
			cur++

			select {
			case <-ctx.Done():
				return
			case out <- v:
			}
		}
	}()

	return out
}

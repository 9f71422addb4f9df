package producer

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

func TestFilterSkip(t *testing.T) {
	tests := []struct {
		Skip   uint64
		Values []string
		Count  uint64
	}{
		{
			Skip:   0,
			Values: []string{"a", "b", "aa", "ab", "ba", "bb"},
			Count:  6,
		},
		{
			Skip:   2,
			Values: []string{"aa", "ab", "ba", "bb"},
			Count:  4,
		},
		{
			Skip:   10,
			Values: nil,
			Count:  0,
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			src, err := NewWords(Charset("ab"), 1, 2, false)
			if err != nil {
				t.Fatal(err)
			}

			ctx := context.Background()
			vch := make(chan string)
			cch := make(chan uint64, 1)

			f := &FilterSkip{Skip: test.Skip}
			countCh := f.Count(ctx, cch)
			valueCh := f.Select(ctx, vch)

			var eg errgroup.Group
			eg.Go(func() error {
				return src.Yield(ctx, vch, cch)
			})

			var values []string
			eg.Go(func() error {
				for v := range valueCh {
					values = append(values, v)
				}

				return nil
			})

			err = eg.Wait()
			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(test.Values, values) {
				t.Fatal(cmp.Diff(test.Values, values))
			}

			count := <-countCh
			if count != test.Count {
				t.Fatalf("count is wrong, want %d, got %d", test.Count, count)
			}
		})
	}
}

func TestFilterLimit(t *testing.T) {
	src, err := NewWords(Charset("ab"), 1, 2, false)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	producerCtx, producerCancel := context.WithCancel(ctx)
	defer producerCancel()

	vch := make(chan string)
	cch := make(chan uint64, 1)

	f := &FilterLimit{Max: 3, CancelProducer: producerCancel}
	countCh := f.Count(ctx, cch)
	valueCh := f.Select(ctx, vch)

	var eg errgroup.Group
	eg.Go(func() error {
		return src.Yield(producerCtx, vch, cch)
	})

	var values []string
	eg.Go(func() error {
		for v := range valueCh {
			values = append(values, v)
		}

		return nil
	})

	err = eg.Wait()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a", "b", "aa"}
	if !cmp.Equal(want, values) {
		t.Fatal(cmp.Diff(want, values))
	}

	count := <-countCh
	if count != 3 {
		t.Fatalf("count is wrong, want 3, got %d", count)
	}
}

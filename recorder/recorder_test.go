package recorder

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/RedTeamPentesting/downpour/producer"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

func TestRecorder(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "run.json")

	spec := &producer.Spec{
		MinLength:    1,
		MaxLength:    2,
		Charset:      "ab",
		NoDuplicates: true,
	}

	rec := New(filename, spec)

	words := []string{"a", "b", "ab", "ba"}

	in := make(chan string)
	inCount := make(chan uint64, 1)
	inCount <- uint64(len(words))

	out := make(chan string)
	outCount := make(chan uint64)

	// feeding starts once the count has passed through, so the recorder
	// forwards it before the first word arrives
	start := make(chan struct{})

	var eg errgroup.Group
	eg.Go(func() error {
		<-start
		for _, w := range words {
			in <- w
		}
		close(in)

		return nil
	})

	eg.Go(func() error {
		return rec.Run(context.Background(), in, out, inCount, outCount)
	})

	var forwarded []string
	var count uint64
	eg.Go(func() error {
		count = <-outCount
		close(start)

		for v := range out {
			forwarded = append(forwarded, v)
		}

		return nil
	})

	err := eg.Wait()
	if err != nil {
		t.Fatal(err)
	}

	if !cmp.Equal(words, forwarded) {
		t.Fatal(cmp.Diff(words, forwarded))
	}

	if count != uint64(len(words)) {
		t.Fatalf("count is wrong, want %d, got %d", len(words), count)
	}

	buf, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}

	var data Data
	err = json.Unmarshal(buf, &data)
	if err != nil {
		t.Fatal(err)
	}

	if data.WrittenWords != 4 || data.TotalWords != 4 {
		t.Fatalf("wrong counters in data file: %+v", data)
	}

	// one byte per word plus the newline
	if data.WrittenBytes != 2*2+2*3 {
		t.Fatalf("wrong number of bytes in data file: %+v", data)
	}

	if data.Cancelled {
		t.Fatalf("run was not cancelled, data file says it was")
	}

	if data.Charset != "ab" || !data.NoDuplicates {
		t.Fatalf("spec not saved correctly: %+v", data)
	}

	runs, err := LoadRuns(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(runs) != 1 {
		t.Fatalf("want one run, got %d", len(runs))
	}

	if runs[0].WrittenWords != 4 {
		t.Fatalf("wrong run data: %+v", runs[0])
	}
}

// The order in which the words and the total are picked off their channels
// is up to the scheduler, a short stream can drain completely before the
// total was ever received. The total must be handed over regardless.
func TestRecorderCountAfterWords(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "run.json")

	for i := 0; i < 50; i++ {
		rec := New(filename, &producer.Spec{MinLength: 1, MaxLength: 1, Charset: "a"})

		in := make(chan string, 1)
		in <- "a"
		close(in)

		inCount := make(chan uint64, 1)
		inCount <- 1

		out := make(chan string)
		outCount := make(chan uint64, 1)

		var eg errgroup.Group
		eg.Go(func() error {
			return rec.Run(context.Background(), in, out, inCount, outCount)
		})

		for range out {
		}

		count, ok := <-outCount
		if !ok {
			t.Fatal("the total was never forwarded")
		}

		if count != 1 {
			t.Fatalf("wrong total forwarded, want 1, got %d", count)
		}

		err := eg.Wait()
		if err != nil {
			t.Fatal(err)
		}

		buf, err := os.ReadFile(filename)
		if err != nil {
			t.Fatal(err)
		}

		var data Data
		err = json.Unmarshal(buf, &data)
		if err != nil {
			t.Fatal(err)
		}

		if data.TotalWords != 1 {
			t.Fatalf("data file records %d total words, want 1", data.TotalWords)
		}
	}
}

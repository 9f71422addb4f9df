package reporter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// testTerm records everything printed to it.
type testTerm struct {
	lines []string
}

func (t *testTerm) Print(msg string) {
	t.lines = append(t.lines, strings.TrimSuffix(msg, "\n"))
}

func (t *testTerm) Printf(msg string, data ...interface{}) {
	t.Print(fmt.Sprintf(msg, data...))
}

func (t *testTerm) Error(msg string) {
	t.Print(msg)
}

func (t *testTerm) Errorf(msg string, data ...interface{}) {
	t.Printf(msg, data...)
}

func (t *testTerm) SetStatus(lines []string) {}

func (t *testTerm) Run(ctx context.Context) {}

// milestones extracts the percentages of all "N% done" lines.
func milestones(t *testing.T, lines []string) []int {
	t.Helper()

	var pcts []int
	for _, line := range lines {
		if !strings.HasSuffix(line, "% done") {
			continue
		}

		pct, err := strconv.Atoi(strings.TrimSuffix(line, "% done"))
		if err != nil {
			t.Fatalf("invalid progress line %q", line)
		}

		pcts = append(pcts, pct)
	}

	return pcts
}

func TestDisplay(t *testing.T) {
	words := []string{"a", "b", "aa", "ab", "ba", "bb"}

	ch := make(chan string, len(words))
	for _, w := range words {
		ch <- w
	}
	close(ch)

	count := make(chan uint64, 1)
	count <- uint64(len(words))

	term := &testTerm{}

	err := New(term).Display(ch, count)
	if err != nil {
		t.Fatal(err)
	}

	pcts := milestones(t, term.lines)
	if len(pcts) == 0 || pcts[0] != 0 {
		t.Fatalf("missing 0%% marker, lines: %q", term.lines)
	}

	if pcts[len(pcts)-1] != 100 {
		t.Fatalf("missing 100%% marker, lines: %q", term.lines)
	}

	for i := 1; i < len(pcts); i++ {
		if pcts[i] <= pcts[i-1] {
			t.Fatalf("progress went backwards: %v", pcts)
		}
	}

	var summary bool
	for _, line := range term.lines {
		if strings.Contains(line, "wrote 6 words (16 B)") {
			summary = true
		}
	}

	if !summary {
		t.Fatalf("summary line not found, lines: %q", term.lines)
	}
}

func TestDisplayNothingToDo(t *testing.T) {
	ch := make(chan string)
	close(ch)

	count := make(chan uint64, 1)
	count <- 0

	term := &testTerm{}

	err := New(term).Display(ch, count)
	if err != nil {
		t.Fatal(err)
	}

	// a run that has nothing to write still completes
	pcts := milestones(t, term.lines)
	if len(pcts) != 2 || pcts[0] != 0 || pcts[1] != 100 {
		t.Fatalf("want progress 0%% and 100%%, got %v, lines: %q", pcts, term.lines)
	}

	var summary bool
	for _, line := range term.lines {
		if strings.Contains(line, "wrote 0 words") {
			summary = true
		}
	}

	if !summary {
		t.Fatalf("summary line not found, lines: %q", term.lines)
	}
}

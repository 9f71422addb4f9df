package reporter

import (
	"fmt"
	"time"

	"github.com/RedTeamPentesting/downpour/cli"
	"github.com/dustin/go-humanize"
)

// Reporter prints the progress of a generation run to a terminal.
type Reporter struct {
	term cli.Terminal
}

// New returns a new reporter.
func New(term cli.Terminal) *Reporter {
	return &Reporter{term: term}
}

// Stats collects statistics about the words written so far.
type Stats struct {
	Start time.Time
	Words uint64 // words written
	Bytes uint64 // bytes written, including newlines
	Total uint64 // words the run will write altogether

	haveTotal bool   // Total has arrived, a zero is then a real zero
	milestone uint64 // next percentage to announce

	lastWPS time.Time
	wps     float64
}

func formatSeconds(secs float64) string {
	sec := int(secs)
	hours := sec / 3600
	sec -= hours * 3600
	min := sec / 60
	sec -= min * 60

	if hours > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", hours, min, sec)
	}

	return fmt.Sprintf("%dm%02ds", min, sec)
}

// Percent returns the progress in whole percent. It only returns 100 once
// all words have been written.
func (s *Stats) Percent() uint64 {
	if s.Total == 0 {
		return 100
	}

	pct := uint64(float64(s.Words) / float64(s.Total) * 100)
	if pct > 100 {
		pct = 100
	}

	return pct
}

// Report returns the status lines for the current state.
func (s *Stats) Report(last string) (res []string) {
	res = append(res, "")
	status := fmt.Sprintf("%v of %v words written (%d%%)", s.Words, s.Total, s.Percent())
	dur := time.Since(s.Start) / time.Second

	if dur > 0 && time.Since(s.lastWPS) > time.Second {
		s.wps = float64(s.Words) / float64(dur)
		s.lastWPS = time.Now()
	}

	if s.wps > 0 {
		status += fmt.Sprintf(", %.0f words/s", s.wps)
	}

	if s.Total > s.Words {
		todo := s.Total - s.Words

		if s.wps > 0 {
			rem := float64(todo) / s.wps
			status += fmt.Sprintf(", %s remaining", formatSeconds(rem))
		}
	}

	if last != "" {
		status += fmt.Sprintf(", last: %v", last)
	}

	res = append(res, status)

	return res
}

// announce prints the percentage once another five percent of the total has
// been written. The total may arrive while words are already flowing, so
// this is also called when it does, a total of zero then announces
// completion right away.
func (r *Reporter) announce(stats *Stats) {
	if !stats.haveTotal {
		return
	}

	pct := stats.Percent()
	if pct < stats.milestone {
		return
	}

	r.term.Printf("%d%% done\n", pct)
	stats.milestone = pct - pct%5 + 5
}

// Display shows the words flowing out of the sink until ch is closed,
// announcing progress milestones on the way and a summary at the end.
func (r *Reporter) Display(ch <-chan string, countChannel <-chan uint64) error {
	r.term.Print("0% done\n")

	stats := &Stats{
		Start:     time.Now(),
		milestone: 5,
	}

	// make sure we update the status at least once per second
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var last string

next_word:
	for {
		var (
			v  string
			ok bool
		)

		select {
		case v, ok = <-ch:
			if !ok {
				break next_word
			}
		case c := <-countChannel:
			stats.Total = c
			stats.haveTotal = true
			countChannel = nil
			r.announce(stats)
			continue next_word
		case <-ticker.C:
			r.term.SetStatus(stats.Report(last))
			continue next_word
		}

		stats.Words++
		stats.Bytes += uint64(len(v)) + 1
		last = v

		r.announce(stats)
	}

	// a short stream can end before the total was picked off the channel
	if countChannel != nil {
		if c, ok := <-countChannel; ok {
			stats.Total = c
			stats.haveTotal = true
			r.announce(stats)
		}
	}

	r.term.Print("\n")
	r.term.Printf("wrote %v words (%v) in %v\n",
		stats.Words, humanize.Bytes(stats.Bytes), formatSeconds(time.Since(stats.Start).Seconds()))

	for _, line := range stats.Report("")[1:] {
		r.term.Print(line)
	}

	return nil
}

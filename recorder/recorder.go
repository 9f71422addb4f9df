package recorder

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/RedTeamPentesting/downpour/producer"
)

// Recorder records information about a generation run in a JSON file.
type Recorder struct {
	filename string
	Data
}

// Data is the data structure written to the file by a Recorder.
type Data struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	TotalWords   uint64    `json:"total_words"`
	WrittenWords uint64    `json:"written_words"`
	WrittenBytes uint64    `json:"written_bytes"`
	Cancelled    bool      `json:"cancelled"`

	MinLength    int    `json:"min_length,omitempty"`
	MaxLength    int    `json:"max_length,omitempty"`
	Charset      string `json:"charset,omitempty"`
	CharsetName  string `json:"charset_name,omitempty"`
	Template     string `json:"template,omitempty"`
	NoDuplicates bool   `json:"no_duplicates,omitempty"`

	Skip       uint64 `json:"skip,omitempty"`
	Limit      uint64 `json:"limit,omitempty"`
	OutputFile string `json:"output_file,omitempty"`
}

// New creates a new recorder which saves the run described by spec to
// filename.
func New(filename string, spec *producer.Spec) *Recorder {
	return &Recorder{
		filename: filename,
		Data: Data{
			MinLength:    spec.MinLength,
			MaxLength:    spec.MaxLength,
			Charset:      spec.Charset,
			CharsetName:  spec.CharsetName,
			Template:     spec.Template,
			NoDuplicates: spec.NoDuplicates,
		},
	}
}

const statusInterval = time.Second

// Run reads words from in and forwards them to out, recording statistics on
// the way. When in is closed or the context is cancelled, the data file is
// written one last time, processing stops, and out is closed.
func (r *Recorder) Run(ctx context.Context, in <-chan string, out chan<- string, inCount <-chan uint64, outCount chan<- uint64) error {
	defer close(out)

	data := r.Data
	data.Start = time.Now()
	data.End = time.Now()

	// lengths are meaningless when a template fixes them
	if data.Template != "" {
		data.MinLength = 0
		data.MaxLength = 0
	}

	lastStatus := time.Now()

	var countCh chan<- uint64 // countCh is nil initially to disable sending

	// a received total that was not forwarded yet is handed over before out
	// is closed, the reporter drains the count channel after the last word
	defer func() {
		if countCh != nil {
			countCh <- data.TotalWords
		}
		close(outCount)
	}()

loop:
	for {
		var v string
		var ok bool

		select {
		case <-ctx.Done():
			data.Cancelled = true
			break loop

		case v, ok = <-in:
			if !ok {
				// we're done, exit
				break loop
			}

		case total := <-inCount:
			data.TotalWords = total
			// disable receiving on the in count channel
			inCount = nil
			// enable sending by setting countCh to outCount (which is not nil)
			countCh = outCount
			continue loop

		case countCh <- data.TotalWords:
			// disable sending again by setting countCh to nil
			countCh = nil
			continue loop
		}

		data.WrittenWords++
		data.WrittenBytes += uint64(len(v)) + 1
		data.End = time.Now()

		if time.Since(lastStatus) > statusInterval {
			lastStatus = time.Now()

			err := r.dump(data)
			if err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			data.Cancelled = true
			break loop
		case out <- v:
		}
	}

	// the word stream can end before the select ever picked up the total,
	// a pending one is drained here for the deferred hand-off
	if inCount != nil {
		select {
		case total := <-inCount:
			data.TotalWords = total
			countCh = outCount
		default:
		}
	}

	data.End = time.Now()
	return r.dump(data)
}

// dump writes the current status to the file.
func (r *Recorder) dump(data Data) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	buf = append(buf, '\n')

	return os.WriteFile(r.filename, buf, 0644)
}

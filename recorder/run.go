package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func findJSONFiles(dir string) (files []string, err error) {
	err = filepath.Walk(dir, func(name string, fi os.FileInfo, err error) error {
		if err != nil {
			// try to continue despite error
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return nil
		}

		if fi == nil {
			return nil
		}

		if !fi.Mode().IsRegular() {
			return nil
		}

		if filepath.Ext(name) == ".json" {
			files = append(files, name)
		}

		return nil
	})

	return files, err
}

// Run describes one recorded run of the 'generate' command.
type Run struct {
	Logfile  string
	JSONFile string
	Data
}

// Describe returns a short description of what the run generated.
func (d Data) Describe() string {
	var desc string
	switch {
	case d.Template != "":
		desc = fmt.Sprintf("template %q", d.Template)
	default:
		desc = fmt.Sprintf("length %d-%d", d.MinLength, d.MaxLength)
	}

	switch {
	case d.CharsetName != "":
		desc += ", charset " + d.CharsetName
	case d.Charset != "":
		desc += fmt.Sprintf(", charset %q", d.Charset)
	}

	if d.NoDuplicates {
		desc += ", no duplicates"
	}

	return desc
}

// LoadRuns parses all JSON files in dir and returns a list of runs.
func LoadRuns(dir string) (runs []Run, err error) {
	files, err := findJSONFiles(dir)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		buf, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to read file, skipping: %v\n", file)
			continue
		}

		run := Run{
			JSONFile: file,
			Logfile:  strings.TrimSuffix(file, filepath.Ext(file)) + ".log",
		}
		err = json.Unmarshal(buf, &run.Data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to read JSON data from file %v, skipping: %v\n", file, err)
			continue
		}

		runs = append(runs, run)
	}

	return runs, nil
}

// SortRuns sorts the list by start timestamp.
func SortRuns(list []Run) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Start.Before(list[j].Start)
	})
}

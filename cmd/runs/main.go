package runs

import (
	"errors"
	"fmt"
	"os"
	"text/template"
	"time"

	"github.com/RedTeamPentesting/downpour/recorder"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// RunsOptions collect options for the command.
type RunsOptions struct {
	Logdir string

	ShowIncomplete bool
	ShowLogfile    bool
}

var opts RunsOptions

// AddCommand adds the command to c.
func AddCommand(c *cobra.Command) {
	c.AddCommand(cmd)

	fs := cmd.Flags()
	fs.SortFlags = false

	fs.StringVar(&opts.Logdir, "logdir", os.Getenv("DOWNPOUR_LOG_DIR"), "load runs from files in `dir`")
	fs.BoolVar(&opts.ShowIncomplete, "incomplete", false, "also show cancelled runs")
	fs.BoolVar(&opts.ShowLogfile, "logfile", false, "show log file name")
}

func filterRuns(list []recorder.Run, opts RunsOptions) (res []recorder.Run) {
	for _, run := range list {
		if run.Cancelled && !opts.ShowIncomplete {
			continue
		}

		res = append(res, run)
	}

	return res
}

const runsTemplate = `{{ $opt := .RunsOptions -}}
{{ range .Runs }}{{ .Start.Format "2006-01-02 15:04:05" }}  {{ .Describe }}
    Duration: {{ duration .Start .End }}
    Words:    {{ .WrittenWords }} of {{ .TotalWords }} ({{ bytes .WrittenBytes }})
{{- if ne .OutputFile "" }}
    Output:   {{ .OutputFile }}
{{- end }}
{{- if $opt.ShowLogfile }}
    Log:      {{ .Logfile }}
{{- end }}
{{- if .Cancelled }}
    Cancelled: yes
{{- end }}

{{ end }}`

var funcMap = template.FuncMap{
	"duration": func(t1, t2 time.Time) (s string) {
		sec := uint64(t2.Sub(t1).Seconds())
		if sec > 3600 {
			s += fmt.Sprintf("%dh", sec/3600)
			sec = sec % 3600
		}

		if sec > 60 {
			s += fmt.Sprintf("%dm", sec/60)
			sec = sec % 60
		}
		s += fmt.Sprintf("%ds", sec)
		return s
	},
	"bytes": humanize.Bytes,
}

type listData struct {
	RunsOptions
	Runs []recorder.Run
}

var cmd = &cobra.Command{
	Use:                   "runs [options]",
	DisableFlagsInUseLine: true,

	Short:   helpShort,
	Long:    helpLong,
	Example: helpExamples,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runRuns(opts)
	},
}

func runRuns(opts RunsOptions) error {
	if opts.Logdir == "" {
		return errors.New("no log directory specified")
	}

	list, err := recorder.LoadRuns(opts.Logdir)
	if err != nil {
		return err
	}

	recorder.SortRuns(list)
	list = filterRuns(list, opts)

	if len(list) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	tmpl, err := template.New("").Funcs(funcMap).Parse(runsTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(os.Stdout, listData{RunsOptions: opts, Runs: list})
}

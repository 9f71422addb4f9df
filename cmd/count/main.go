package count

import (
	"fmt"

	"github.com/RedTeamPentesting/downpour/producer"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// Options collect options for the command.
type Options struct {
	Spec producer.Spec
}

var opts Options

// AddCommand adds the command to c.
func AddCommand(c *cobra.Command) {
	c.AddCommand(cmd)

	fs := cmd.Flags()
	fs.SortFlags = false

	opts.Spec.AddFlags(fs)
}

var cmd = &cobra.Command{
	Use:                   "count [options] MIN MAX [CHARSET]",
	DisableFlagsInUseLine: true,

	Short:   helpShort,
	Long:    helpLong,
	Example: helpExamples,

	RunE: func(cmd *cobra.Command, args []string) error {
		err := opts.Spec.ParseArgs(args)
		if err != nil {
			return err
		}

		source, err := opts.Spec.Source()
		if err != nil {
			return err
		}

		total, err := source.Count()
		if err != nil {
			return err
		}

		size, err := source.Size()
		if err != nil {
			return err
		}

		fmt.Printf("%v words, approx %v (%v bytes)\n", total, humanize.Bytes(size), size)

		return nil
	},
}

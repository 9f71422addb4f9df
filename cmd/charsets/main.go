package charsets

import (
	"fmt"
	"strings"

	"github.com/RedTeamPentesting/downpour/producer"
	"github.com/spf13/cobra"
)

// AddCommand adds the command to c.
func AddCommand(c *cobra.Command) {
	c.AddCommand(cmd)
}

var cmd = &cobra.Command{
	Use:                   "charsets",
	DisableFlagsInUseLine: true,

	Short: "List the built-in charsets",
	Long: strings.TrimSpace(`
The 'charsets' command lists the charsets that can be selected by name with
--charset-name, together with their sizes and the runes they contain in
generation order.
`),

	RunE: func(cmd *cobra.Command, args []string) error {
		names := producer.CharsetNames()

		var width int
		for _, name := range names {
			if len(name) > width {
				width = len(name)
			}
		}

		for _, name := range names {
			charset, err := producer.NamedCharset(name)
			if err != nil {
				return err
			}

			fmt.Printf("%-*s  %3d  %s\n", width, name, len(charset), charset)
		}

		return nil
	},
}

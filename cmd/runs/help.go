package runs

import "strings"

const helpShort = "List previous runs of 'generate'"

var helpLong = strings.TrimSpace(`
The 'runs' command displays previous runs of the 'generate' command for
which it can find data files in the log directory. Runs that were cancelled
before finishing are hidden unless --incomplete is given.
`)

const helpExamples = `
List all completed runs recorded in the log directory:

    downpour runs --logdir ~/downpour-logs

Include cancelled runs and the log file names:

    downpour runs --logdir ~/downpour-logs --incomplete --logfile
`

package count

import "strings"

const helpShort = "Show how many words a configuration generates"

var helpLong = strings.TrimSpace(`
The 'count' command takes the same arguments as 'generate' and prints the
exact number of words the configuration produces together with an estimate
of the space they occupy, without generating anything. Use it to check
whether a run fits on disk before starting it.
`)

const helpExamples = `
Count all words of length 1 to 8 over the lowercase alphabet:

    downpour count 1 8

Count the renderings of a template under duplicate suppression:

    downpour count --no-duplicates -t '@@@-%%' abc
`

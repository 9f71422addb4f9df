package generate

import "strings"

const helpShort = "Generate words and write them to a file or stdout"

var helpLong = strings.TrimSpace(`
The 'generate' command enumerates all words with lengths from MIN to MAX
over a charset, or all renderings of a template, and writes them to a file
or to stdout, one word per line. The charset is given as the third argument
or selected by name with --charset-name, the runes are used in the order
given. Before generation starts, the exact number of words and an estimate
of the resulting size are printed, progress is announced in steps of five
percent.

With --no-duplicates, words in which a non-digit rune directly follows
itself (like 'aab', but not '11') are left out. The announced count and
progress stay exact, suppressed words are never counted.
`)

const helpExamples = `
Write all words of length 1 to 4 over the lowercase alphabet to words.txt:

    downpour generate 1 4 -o words.txt

Generate six-rune words over the runes a, b and c, skipping words in which
a rune directly follows itself:

    downpour generate --no-duplicates 6 6 abc -o words.txt

Render a template instead of a length range, '%' marks a digit and '@' a
charset rune, and pipe the words into another tool:

    downpour generate -t 'admin-%%%%' | cracker --stdin

Use the built-in lowercase hex charset and only write the first 1000 words:

    downpour generate -c hex-lower --limit 1000 8 8

Skip the first 1000000 words and write the rest:

    downpour generate --skip 1000000 1 4 -o words-rest.txt
`

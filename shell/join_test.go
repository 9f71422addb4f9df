package shell

import (
	"testing"
)

func TestJoin(t *testing.T) {
	var tests = []struct {
		args []string
		res  string
	}{
		{
			args: []string{"downpour", "generate", "-t", "admin-%%%%"},
			res:  "downpour generate -t admin-%%%%",
		},
		{
			args: []string{"downpour", "generate", "-t", "admin %%", "-o", "words.txt"},
			res:  `downpour generate -t "admin %%" -o words.txt`,
		},
		{
			args: []string{"downpour", "generate", "-t", `admin "root" %%`},
			res:  `downpour generate -t "admin \"root\" %%"`,
		},
		{
			args: []string{"downpour", "generate", "1", "3", "ab$&"},
			res:  `downpour generate 1 3 "ab$&"`,
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			res := Join(test.args)
			if res != test.res {
				t.Fatalf("wrong result, want\n  %s\ngot:\n  %s", test.res, res)
			}
		})
	}
}

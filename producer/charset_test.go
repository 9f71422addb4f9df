package producer

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCharset(t *testing.T) {
	tests := []struct {
		Input  string
		Result Charset
	}{
		{
			"ab",
			Charset{'a', 'b'},
		},
		{
			"ba0",
			Charset{'b', 'a', '0'},
		},
		{
			"äöü",
			Charset{'ä', 'ö', 'ü'},
		},
	}

	for _, test := range tests {
		t.Run(test.Input, func(t *testing.T) {
			cs, err := ParseCharset(test.Input)
			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(test.Result, cs) {
				t.Fatal(cmp.Diff(test.Result, cs))
			}
		})
	}
}

func TestParseCharsetInvalid(t *testing.T) {
	tests := []string{
		"",
		"aa",
		"aba",
		"0120",
	}

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			_, err := ParseCharset(test)
			if err == nil {
				t.Fatalf("charset %q accepted, expected an error", test)
			}
		})
	}
}

func TestNamedCharset(t *testing.T) {
	cs, err := NamedCharset("numeric")
	if err != nil {
		t.Fatal(err)
	}

	if cs.String() != "0123456789" {
		t.Fatalf("wrong charset for name numeric: %q", cs)
	}

	_, err = NamedCharset("klingon")
	if err == nil {
		t.Fatal("unknown charset name accepted, expected an error")
	}
}

func TestCharsetNames(t *testing.T) {
	names := CharsetNames()
	if len(names) != len(namedCharsets) {
		t.Fatalf("want %d names, got %d", len(namedCharsets), len(names))
	}

	if !sort.StringsAreSorted(names) {
		t.Fatalf("names are not sorted: %v", names)
	}

	for _, name := range names {
		_, err := NamedCharset(name)
		if err != nil {
			t.Fatal(err)
		}
	}
}

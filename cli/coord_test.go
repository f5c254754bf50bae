package cli

import (
	"strings"
	"testing"

	"github.com/gothello/gothello/core"
	"github.com/gothello/gothello/internal/testutil"
)

func TestParseCoord_AllCells(t *testing.T) {
	for d := '1'; d <= '8'; d++ {
		for l := 'a'; l <= 'h'; l++ {
			want, err := core.NewCoord(int(d-'1'), int(l-'a'))
			testutil.AssertNoError(t, err)

			upper := strings.ToUpper(string(l))
			inputs := []string{
				string(l) + string(d),
				string(d) + string(l),
				upper + string(d),
				string(d) + upper,
				"  " + string(d) + " -> " + upper + "! ",
				"x" + string(l) + "y" + string(d) + "z",
			}
			for _, input := range inputs {
				got, ok := ParseCoord(input)
				if !ok {
					t.Errorf("ParseCoord(%q) rejected; want %s", input, want)
					continue
				}
				testutil.AssertEqualf(t, got, want, "ParseCoord(%q)", input)
			}
		}
	}
}

func TestParseCoord_C4Spellings(t *testing.T) {
	want := testutil.Coord("c4")
	for _, input := range []string{"c4", "C4", "4c", "4C"} {
		got, ok := ParseCoord(input)
		if !ok {
			t.Fatalf("ParseCoord(%q) rejected", input)
		}
		if got.Row() != 3 || got.Col() != 2 {
			t.Errorf("ParseCoord(%q) = (%d, %d); want (3, 2)", input, got.Row(), got.Col())
		}
		testutil.AssertEqual(t, got, want)
	}
}

func TestParseCoord_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"letter and digit out of range", "z9"},
		{"digits only", "44"},
		{"letters only", "cc"},
		{"empty", ""},
		{"zero row", "a0"},
		{"row nine", "b9"},
		{"letter past h", "i4"},
		{"whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := ParseCoord(tt.input); ok {
				t.Errorf("ParseCoord(%q) = %s; want rejection", tt.input, got)
			}
		})
	}
}

func TestParseCoord_LastMatchWins(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a14", "a4"},
		{"a41", "a1"},
		{"ab3", "b3"},
		{"3ba", "a3"},
		{"h1c8", "c8"},
		{"e5 f6", "f6"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCoord(tt.input)
			if !ok {
				t.Fatalf("ParseCoord(%q) rejected", tt.input)
			}
			testutil.AssertEqualf(t, got, testutil.Coord(tt.want), "ParseCoord(%q)", tt.input)
		})
	}
}

func TestLegal(t *testing.T) {
	g := testutil.StartingGame()

	if !Legal(g, testutil.Coord("d3")) {
		t.Error("Legal(d3) = false; want true")
	}
	if Legal(g, testutil.Coord("a1")) {
		t.Error("Legal(a1) = true; want false")
	}
	if g.Checks != 2 {
		t.Errorf("CheckMove called %d times; want 2", g.Checks)
	}
}

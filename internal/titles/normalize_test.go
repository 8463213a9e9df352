package titles

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want []string
	}{
		{
			name: "dedup quotes and casing",
			blob: `inception, The Dark Knight, "Tenet", inception`,
			want: []string{"Inception", "The Dark Knight", "Tenet"},
		},
		{
			name: "empty",
			blob: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			blob: "  \n\t ",
			want: []string{},
		},
		{
			name: "only commas",
			blob: " , ,, ",
			want: []string{},
		},
		{
			name: "single quotes stripped",
			blob: "'heat', 'ronin'",
			want: []string{"Heat", "Ronin"},
		},
		{
			name: "curly quotes stripped",
			blob: "“the thing”, ‘alien’",
			want: []string{"The Thing", "Alien"},
		},
		{
			name: "unmatched quote kept",
			blob: `"Memento, 'Tis the season`,
			want: []string{`"Memento`, "'Tis The Season"},
		},
		{
			name: "internal quotes kept",
			blob: `The "Burbs"`,
			want: []string{`The "Burbs"`},
		},
		{
			name: "rest of word unchanged",
			blob: "THE MATRIX, mcQueen's run",
			want: []string{"THE MATRIX", "McQueen's Run"},
		},
		{
			name: "case insensitive dedup keeps first spelling",
			blob: "the godfather, The Godfather, THE GODFATHER",
			want: []string{"The Godfather"},
		},
		{
			name: "quoted duplicate collapses",
			blob: `Heat, "heat"`,
			want: []string{"Heat"},
		},
		{
			name: "internal whitespace kept",
			blob: "The  Matrix, The Matrix",
			want: []string{"The  Matrix", "The Matrix"},
		},
		{
			name: "whitespace inside quotes trimmed",
			blob: `" heat ", Heat`,
			want: []string{"Heat"},
		},
		{
			name: "letters equal only after upper-casing",
			blob: "\u0131t, it, \u017fe7en, Se7en",
			want: []string{"It", "Se7en"},
		},
		{
			name: "nested quotes lose one layer",
			blob: `"'Tenet'"`,
			want: []string{"'Tenet'"},
		},
		{
			name: "lone quote dropped",
			blob: `Up, ", Coco`,
			want: []string{"Up", "Coco"},
		},
		{
			name: "newlines around items",
			blob: "\nparasite,\n  oldboy\n",
			want: []string{"Parasite", "Oldboy"},
		},
		{
			name: "unicode first letter",
			blob: "élite squad, amélie",
			want: []string{"Élite Squad", "Amélie"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.blob)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %q, want %q", tt.blob, got, tt.want)
			}
		})
	}
}

// Idempotence holds for titles wrapped in at most one quote pair; nested
// pairs lose one layer per pass.
func TestNormalize_Idempotent(t *testing.T) {
	blobs := []string{
		`inception, The Dark Knight, "Tenet", inception`,
		"THE MATRIX, the matrix reloaded,  'amélie' ",
		"a, b, c, A, B",
		"“the thing”,,, heat",
		"the  big lebowski, The Big Lebowski",
		"",
	}

	for _, blob := range blobs {
		once := Normalize(blob)
		twice := Normalize(Join(once))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("not idempotent for %q: %q then %q", blob, once, twice)
		}
	}
}

func TestNormalize_NoDuplicates(t *testing.T) {
	tests := []struct {
		blob    string
		wantLen int
	}{
		{"Heat, HEAT, heat , 'Heat', \"hEaT\"", 1},
		{"\u0131t, it, IT", 1},
		{"\u017fpeed, Speed, speed", 1},
	}

	for _, tt := range tests {
		got := Normalize(tt.blob)
		seen := make(map[string]bool)
		for _, title := range got {
			if seen[title] {
				t.Errorf("duplicate %q in %q", title, got)
			}
			seen[title] = true
		}
		if len(got) != tt.wantLen {
			t.Errorf("Normalize(%q): expected %d titles, got %q", tt.blob, tt.wantLen, got)
		}
	}
}

package prefix

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gennyble/rnprefix/model"
)

func TestCandidates(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "identical prefix series",
			names: []string{"PREFIX One", "PREFIX Two", "PREFIX Three"},
			want:  []string{"PREFIX ", "PREFIX", "PREFI", "PREF", "PRE", "PR", "P"},
		},
		{
			name:  "shortest basename bounds the candidates",
			names: []string{"abcX", "abcYZ", "abc"},
			want:  []string{"ab", "a"},
		},
		{
			name:  "no common prefix",
			names: []string{"alpha", "beta"},
			want:  nil,
		},
		{
			name:  "identical names never strip to empty",
			names: []string{"same", "same"},
			want:  []string{"sam", "sa", "s"},
		},
		{
			name:  "single rune names have nothing to offer",
			names: []string{"a", "a"},
			want:  nil,
		},
		{
			name:  "reference is the shortest name",
			names: []string{"ab", "abc", "abd"},
			want:  []string{"a"},
		},
		{
			name:  "multi-byte runes are stepped whole",
			names: []string{"日本語 1.txt", "日本語 2.txt"},
			want:  []string{"日本語 ", "日本語", "日本", "日"},
		},
		{
			name:  "single file",
			names: []string{"file"},
			want:  []string{"fil", "fi", "f"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Candidates(tt.names)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Candidates(%q) = %q, want %q", tt.names, got, tt.want)
			}
		})
	}
}

func TestCandidatesEmptyInput(t *testing.T) {
	if got := Candidates(nil); got != nil {
		t.Errorf("Candidates(nil) = %q, want nil", got)
	}
}

func TestNewPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected New to panic on an empty name list")
		}
	}()
	New(nil)
}

func TestNextIsIdempotentWhenExhausted(t *testing.T) {
	c := New([]string{"xy1", "xy2"})

	for _, want := range []string{"xy", "x"} {
		got, ok := c.Next()
		if !ok || got != want {
			t.Fatalf("Next() = %q, %v; want %q, true", got, ok, want)
		}
	}
	for i := 0; i < 3; i++ {
		if got, ok := c.Next(); ok || got != "" {
			t.Fatalf("Next() after exhaustion = %q, %v; want \"\", false", got, ok)
		}
	}
}

func TestAllResumesAfterBreak(t *testing.T) {
	c := New([]string{"PREFIX One", "PREFIX Two"})

	for candidate := range c.All() {
		if candidate == "PREFIX" {
			break
		}
	}

	got, ok := c.Next()
	if !ok || got != "PREFI" {
		t.Fatalf("Next() after break = %q, %v; want \"PREFI\", true", got, ok)
	}
}

func TestFromFileSetUsesFirstNameAsReference(t *testing.T) {
	set := model.FileSet{Files: []model.FileRecord{
		{Parent: "dir", Name: "zz-a"},
		{Name: "zz-b"},
	}}
	got, ok := FromFileSet(set).Next()
	if !ok || got != "zz-" {
		t.Fatalf("Next() = %q, %v; want \"zz-\", true", got, ok)
	}
}

// Every candidate must be a proper prefix of, and strictly shorter than,
// every name; lengths drop by exactly one rune; the first candidate is the
// longest such string.
func TestCandidateInvariants(t *testing.T) {
	sets := [][]string{
		{"PREFIX One", "PREFIX Two", "PREFIX Three"},
		{"abcX", "abcYZ", "abc"},
		{"track01.flac", "track02.flac", "track10.flac"},
		{"ééa", "ééb", "éé"},
		{"IMG_0001.jpg", "IMG_0001.jpg.bak"},
		{"x", "xyz"},
	}

	for _, names := range sets {
		got := Candidates(names)

		for i, candidate := range got {
			if candidate == "" || !utf8.ValidString(candidate) {
				t.Errorf("%q: candidate %d is %q", names, i, candidate)
			}
			for _, name := range names {
				if !strings.HasPrefix(name, candidate) {
					t.Errorf("%q: %q is not a prefix of %q", names, candidate, name)
				}
				if len(candidate) >= len(name) {
					t.Errorf("%q: %q is not shorter than %q", names, candidate, name)
				}
			}
			if i > 0 {
				prev := got[i-1]
				_, size := utf8.DecodeLastRuneInString(prev)
				if prev[:len(prev)-size] != candidate {
					t.Errorf("%q: %q does not follow %q by one rune", names, candidate, prev)
				}
			}
		}

		if len(got) > 0 {
			if n := utf8.RuneCountInString(got[len(got)-1]); n != 1 {
				t.Errorf("%q: last candidate %q has %d runes, want 1", names, got[len(got)-1], n)
			}
			if longest := longestValid(names); got[0] != longest {
				t.Errorf("%q: first candidate %q, want %q", names, got[0], longest)
			}
		} else if longestValid(names) != "" {
			t.Errorf("%q: no candidates, want %q first", names, longestValid(names))
		}
	}
}

// longestValid is the brute-force answer the cursor's first candidate must
// match.
func longestValid(names []string) string {
	ref := names[0]
	best := ""
	for i := range ref {
		candidate := ref[:i]
		ok := candidate != ""
		for _, name := range names {
			if len(candidate) >= len(name) || !strings.HasPrefix(name, candidate) {
				ok = false
			}
		}
		if ok && len(candidate) > len(best) {
			best = candidate
		}
	}
	return best
}

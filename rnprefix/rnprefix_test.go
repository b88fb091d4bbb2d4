package rnprefix_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/afero"

	"github.com/gennyble/rnprefix/rnprefix"
)

func TestPrefixes(t *testing.T) {
	got := rnprefix.Prefixes([]string{"PREFIX One", "PREFIX Two", "PREFIX Three"})
	want := []string{"PREFIX ", "PREFIX", "PREFI", "PREF", "PRE", "PR", "P"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Prefixes() = %q, want %q", got, want)
	}
}

func TestRenamer(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"Album - 01.flac", "Album - 02.flac"} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	r, err := rnprefix.New(paths)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(r.Files()) != 2 {
		t.Fatalf("Files() = %+v", r.Files())
	}

	var first string
	for p := range r.Prefixes() {
		first = p
		break
	}
	if first != "Album - 0" {
		t.Fatalf("first prefix = %q, want %q", first, "Album - 0")
	}

	summary, err := r.Rename("Album - ")
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if len(summary.Moved) != 2 || len(summary.Failed) != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	for _, name := range []string{"01.flac", "02.flac"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s missing after rename: %v", name, err)
		}
	}
}

func TestRenamerRejectsBadPrefix(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, p := range []string{"/d/abc", "/d/abd"} {
		if err := afero.WriteFile(fsys, p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	r, err := rnprefix.NewWithFs(fsys, []string{"/d/abc", "/d/abd"})
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{"", "abc", "x", "abcd"} {
		if _, err := r.Rename(p); err == nil {
			t.Errorf("Rename(%q) should fail", p)
		}
	}
	if ok, _ := afero.Exists(fsys, "/d/abc"); !ok {
		t.Error("a rejected prefix must not touch any file")
	}
}

func TestNewRejectsDirectories(t *testing.T) {
	if _, err := rnprefix.New([]string{t.TempDir(), t.TempDir()}); err == nil {
		t.Fatal("New() with directories should fail")
	}
}

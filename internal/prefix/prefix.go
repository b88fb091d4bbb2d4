// Package prefix generates the common-prefix candidates offered to the user.
//
// Candidates are sliced from a reference basename (the first file's) and
// come out longest first. Every candidate is a prefix of every basename and
// strictly shorter than all of them, so stripping it never leaves an empty
// name. Candidates shrink one rune at a time, which keeps each of them valid
// UTF-8.
package prefix

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/gennyble/rnprefix/model"
)

// Cursor walks the candidate prefixes of a set of basenames. It is not safe
// for concurrent use and cannot be restarted; build a new one instead.
type Cursor struct {
	names     []string
	reference string
	// offset is the byte length of the candidate Next will return, plus one
	// rune. It never grows once New returns.
	offset int
}

// New builds a cursor over names, positioned so the first call to Next
// returns the longest valid candidate. names must not be empty.
func New(names []string) *Cursor {
	if len(names) == 0 {
		panic("prefix: cursor needs at least one name")
	}

	c := &Cursor{
		names:     names,
		reference: names[0],
		offset:    len(names[0]),
	}
	c.skipInvalid()
	return c
}

// FromFileSet builds a cursor over the basenames of set.
func FromFileSet(set model.FileSet) *Cursor {
	return New(set.Names())
}

// skipInvalid steps past every candidate that is too long for, or not shared
// by, some basename, then rewinds one rune so the first valid candidate is
// the next one returned.
func (c *Cursor) skipInvalid() {
	for {
		candidate, ok := c.Next()
		if !ok {
			return
		}
		if c.fitsAll(candidate) {
			_, size := utf8.DecodeRuneInString(c.reference[c.offset:])
			c.offset += size
			return
		}
	}
}

func (c *Cursor) fitsAll(candidate string) bool {
	for _, name := range c.names[1:] {
		// Equal length is rejected too: stripping would leave an empty name.
		if len(candidate) >= len(name) {
			return false
		}
		if !strings.HasPrefix(name, candidate) {
			return false
		}
	}
	return true
}

// Next drops one trailing rune and returns the resulting candidate. It
// returns false once the candidate would be empty, and keeps doing so.
func (c *Cursor) Next() (string, bool) {
	if c.offset > 0 {
		_, size := utf8.DecodeLastRuneInString(c.reference[:c.offset])
		c.offset -= size
	}
	if c.offset == 0 {
		return "", false
	}
	return c.reference[:c.offset], true
}

// All adapts the cursor to a range-over-func sequence. Breaking out of the
// loop leaves the cursor where it stopped.
func (c *Cursor) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			candidate, ok := c.Next()
			if !ok || !yield(candidate) {
				return
			}
		}
	}
}

// Candidates returns every candidate for names, longest first. It returns
// nil for an empty input.
func Candidates(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	var out []string
	for candidate := range New(names).All() {
		out = append(out, candidate)
	}
	return out
}

package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/gennyble/rnprefix/model"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PrefixColor  = color.New(color.FgMagenta, color.Bold)
)

// DisableColor turns off every color in this package, e.g. for --no-color.
func DisableColor() {
	color.NoColor = true
}

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

// --- Rename preview ---

// WriteTable prints one "old => new" line per file, with the old names padded
// to the widest one so the arrows line up.
func WriteTable(w io.Writer, files []model.FileRecord, prefix string) {
	for _, line := range TableLines(files, prefix) {
		fmt.Fprintln(w, line)
	}
}

// TableLines renders the preview without writing it anywhere.
func TableLines(files []model.FileRecord, prefix string) []string {
	width := 0
	for _, f := range files {
		width = max(width, runewidth.StringWidth(f.Name))
	}

	lines := make([]string, len(files))
	for i, f := range files {
		lines[i] = fmt.Sprintf("%s => %s", runewidth.FillRight(f.Name, width), f.StrippedName(prefix))
	}
	return lines
}

// WritePrefix prints the line naming the candidate under review.
func WritePrefix(w io.Writer, prefix string) {
	fmt.Fprintf(w, "Prefix is '%s'\n", PrefixColor.Sprint(prefix))
}

// --- Rename report ---

func Moved(w io.Writer, r model.FileRename) {
	SuccessColor.Fprintf(w, "Moved %s to %s\n", r.OldPath, r.NewPath)
}

func Failed(w io.Writer, r model.FileRename) {
	ErrorColor.Fprintf(w, "Failed to move %s! Error: %v\n", r.OldPath, r.Err)
}

// PrintSummary reports the outcome of an undo or redo on stderr.
func PrintSummary(title string, summary model.Summary) {
	Header("\n--- %s ---", title)
	if summary.Message != "" {
		Info("%s", summary.Message)
	}
	if len(summary.Moved) > 0 {
		InfoColor.Fprintf(os.Stderr, "Moved %d file(s):\n", len(summary.Moved))
		for _, r := range summary.Moved {
			fmt.Fprintf(os.Stderr, "  - %s -> %s\n", r.OldPath, r.NewPath)
		}
	}
	if len(summary.Failed) > 0 {
		Error("Failed to move %d file(s):", len(summary.Failed))
		for _, r := range summary.Failed {
			fmt.Fprintf(os.Stderr, "  - %s: %v\n", r.OldPath, r.Err)
		}
	}
	if len(summary.Moved) == 0 && len(summary.Failed) == 0 && summary.Message == "" {
		Info("Nothing to do.")
	}
}

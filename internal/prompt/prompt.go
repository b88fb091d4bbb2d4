package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
)

const retryMessage = "Please answer with a single 'y' for yes, or 'n' for no"

// Prompter asks yes/no questions over a line-oriented stream.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	folder cases.Caser
}

// New creates a Prompter reading answers from r and writing questions to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(r),
		out:    w,
		folder: cases.Fold(),
	}
}

// Confirm prints question and reads lines until the answer is y or n,
// ignoring case and surrounding whitespace. Input that ends before an
// answer is given is reported as io.ErrUnexpectedEOF.
func (p *Prompter) Confirm(question string) (bool, error) {
	for {
		fmt.Fprint(p.out, question)

		line, err := p.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return false, io.ErrUnexpectedEOF
			}
			return false, fmt.Errorf("failed to read answer: %w", err)
		}

		switch p.folder.String(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		if err != nil {
			// Last line of input and still not an answer.
			return false, io.ErrUnexpectedEOF
		}
		fmt.Fprintln(p.out, retryMessage)
	}
}

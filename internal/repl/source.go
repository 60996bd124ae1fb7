// Package repl reads lines from a terminal or a stream and feeds them to a
// dispatchers.Shell until the user quits.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned by a Source when the user cancels the line
// being edited (Ctrl+C). The loop discards the line and prompts again.
var ErrInterrupted = errors.New("repl: interrupted")

// Source yields input lines. ReadLine returns io.EOF when input is exhausted.
type Source interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// ScannerSource reads newline-terminated lines from a stream.
// The prompt is written to Prompt when it is non-nil.
type ScannerSource struct {
	scanner *bufio.Scanner
	Prompt  io.Writer
}

// MaxLineSize is the longest line a ScannerSource accepts. Longer lines
// end the loop with bufio.ErrTooLong.
const MaxLineSize = 1 << 20

// NewScannerSource reads lines from r, echoing prompts to prompt (may be nil).
func NewScannerSource(r io.Reader, prompt io.Writer) *ScannerSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	return &ScannerSource{scanner: scanner, Prompt: prompt}
}

// ReadLine implements Source.
func (s *ScannerSource) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Prompt != nil {
		fmt.Fprint(s.Prompt, prompt)
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(s.scanner.Text(), "\r"), nil
}

// IsInteractive reports whether both in and out are terminals.
func IsInteractive(in, out *os.File) bool {
	return in != nil && out != nil &&
		term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

// NewSource picks a TeaSource for a terminal and a ScannerSource otherwise.
// Piped input gets no prompt echo unless echoPrompt is set.
func NewSource(in, out *os.File, complete CompleteFunc, echoPrompt bool) Source {
	if IsInteractive(in, out) {
		return NewTeaSource(in, out, complete)
	}
	var prompt io.Writer
	if echoPrompt {
		prompt = out
	}
	return NewScannerSource(in, prompt)
}

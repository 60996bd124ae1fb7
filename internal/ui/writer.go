// Package ui writes shell output, routing long text through a pager.
//
// The pager command comes from the caller (config or $PAGER) and is run
// as given. This matches git, less and man: only configure pagers you trust.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"golang.org/x/term"

	"github.com/footprint-tools/parsedcmd/internal/domain"
)

// DefaultPager is used when neither an override, the config nor $PAGER name one.
const DefaultPager = "less -FRSX"

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	heightFunc    func() int
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfigGetter sets where the "pager" key is looked up.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
	}
	w.heightFunc = w.terminalHeight
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager prints content, through a pager when the output is a terminal
// and content is taller than it.
//
// The pager command is the first of: override, config "pager", $PAGER,
// DefaultPager. "cat" or an empty command prints directly.
func (w *Writer) Pager(content string) {
	if w.pagerDisabled || !w.fitsPager(content) {
		fmt.Fprint(w.out, content)
		return
	}

	w.runPagerCmd(w.PagerCommand(), content)
}

// PagerCommand returns the pager that Pager would run.
func (w *Writer) PagerCommand() string {
	if w.pagerOverride != "" {
		return w.pagerOverride
	}
	if w.configGetter != nil {
		if cmd, ok := w.configGetter("pager"); ok && cmd != "" {
			return cmd
		}
	}
	if w.envGetter != nil {
		if cmd := w.envGetter("PAGER"); cmd != "" {
			return cmd
		}
	}
	return DefaultPager
}

// fitsPager reports whether content is worth paging on this output.
func (w *Writer) fitsPager(content string) bool {
	height := w.heightFunc()
	if height <= 0 {
		return false
	}
	return strings.Count(content, "\n") >= height
}

// terminalHeight returns the row count of out, or 0 when out is not a terminal.
func (w *Writer) terminalHeight() int {
	f, ok := w.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return height
}

func (w *Writer) runPagerCmd(pagerCmd string, content string) {
	args, err := shellwords.Parse(pagerCmd)
	if err != nil || len(args) == 0 || args[0] == "cat" {
		fmt.Fprint(w.out, content)
		return
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w.out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprint(w.out, content)
	}
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)

package repl

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

// CompleteFunc returns whole-line candidates for a partial line.
type CompleteFunc func(line string) []string

// TeaSource edits each line in a small bubbletea program with inline
// completion and in-memory history.
//
// Keys: Tab accepts the shown suggestion, Ctrl+N/Ctrl+P cycle suggestions,
// Up/Down walk history, Ctrl+D on an empty line ends input and Ctrl+C
// cancels the line.
type TeaSource struct {
	in       io.Reader
	out      io.Writer
	complete CompleteFunc
	history  []string
}

// NewTeaSource creates a TeaSource over in and out.
func NewTeaSource(in io.Reader, out io.Writer, complete CompleteFunc) *TeaSource {
	return &TeaSource{in: in, out: out, complete: complete}
}

// History returns the lines entered so far, oldest first.
func (s *TeaSource) History() []string {
	return s.history
}

// ReadLine implements Source.
func (s *TeaSource) ReadLine(ctx context.Context, prompt string) (string, error) {
	p := tea.NewProgram(
		newPromptModel(prompt, s.history, s.complete),
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", err
	}

	m := final.(promptModel)
	switch {
	case m.eof:
		return "", io.EOF
	case m.interrupted:
		return "", ErrInterrupted
	}

	if m.result != "" && (len(s.history) == 0 || s.history[len(s.history)-1] != m.result) {
		s.history = append(s.history, m.result)
	}
	return m.result, nil
}

type promptModel struct {
	input    textinput.Model
	complete CompleteFunc

	history []string
	histPos int // len(history) means the draft line
	draft   string

	result      string
	done        bool
	eof         bool
	interrupted bool
}

func newPromptModel(prompt string, history []string, complete CompleteFunc) promptModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = ""
	ti.ShowSuggestions = complete != nil
	ti.CompletionStyle = ti.PlaceholderStyle
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	ti.Focus()

	m := promptModel{
		input:    ti,
		complete: complete,
		history:  history,
		histPos:  len(history),
	}
	m.refreshSuggestions()
	return m
}

// Init implements tea.Model
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC:
			m.interrupted = true
			return m.finish()

		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.eof = true
				return m.finish()
			}

		case tea.KeyEnter:
			m.result = m.input.Value()
			return m.finish()

		case tea.KeyUp:
			m.walkHistory(-1)
			return m, nil

		case tea.KeyDown:
			m.walkHistory(1)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refreshSuggestions()
	}
	return m, cmd
}

func (m promptModel) finish() (tea.Model, tea.Cmd) {
	m.done = true
	m.input.Blur()
	return m, tea.Quit
}

func (m *promptModel) walkHistory(delta int) {
	next := m.histPos + delta
	if next < 0 || next > len(m.history) {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = m.input.Value()
	}
	m.histPos = next

	if next == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[next])
	}
	m.input.CursorEnd()
	m.refreshSuggestions()
}

func (m *promptModel) refreshSuggestions() {
	if m.complete == nil {
		return
	}
	m.input.SetSuggestions(m.complete(m.input.Value()))
}

// View implements tea.Model
func (m promptModel) View() string {
	if m.interrupted {
		return m.input.Prompt + m.input.Value() + style.Muted("^C") + "\n"
	}
	if m.done {
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View() + "\n"
}

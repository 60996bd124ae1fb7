package history

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/parsedcmd/internal/domain"
)

type Deps struct {
	List       func(domain.HistoryFilter) ([]domain.HistoryEntry, error)
	Prune      func(keep int) (int64, error)
	Session    domain.SessionID
	Now        func() time.Time
	IsTerminal func() bool
	RunProgram func(tea.Model) error
}

func DefaultDeps(store domain.HistoryStore, session domain.SessionID) Deps {
	return Deps{
		List:    store.List,
		Prune:   store.Prune,
		Session: session,
		Now:     time.Now,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		RunProgram: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// Package history holds the commands that read and trim the command
// history recorded by the shell.
package history

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/footprint-tools/parsedcmd/internal/casters"
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/format"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

const defaultLimit = 20

const (
	scopeAll     = "all"
	scopeCurrent = "current"
)

// Commands returns history, prune and browse bound to deps.
func Commands(deps Deps) []*dispatchers.Handler {
	return []*dispatchers.Handler{
		List(deps),
		Prune(deps),
		Browse(deps),
	}
}

// OutcomeCaster accepts the name of any dispatch outcome.
func OutcomeCaster() casters.Caster {
	outcomes := domain.Outcomes()
	values := make([]string, len(outcomes))
	for i, o := range outcomes {
		values[i] = o.String()
	}
	return casters.Choice(values...)
}

// List prints recorded lines, oldest first.
func List(deps Deps) *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:    "history",
		Summary: "Show the lines dispatched so far",
		Doc: `Show the lines dispatched so far, oldest first.
Only the newest -limit entries are shown (0 shows all).
-outcome keeps entries with that outcome, -session current keeps the
entries of this session and -since YYYY-MM-DD drops older ones.
An optional COMMAND keeps the lines of that command.`,
		Category: dispatchers.CategorySession,
		Signature: dispatchers.NewSignature().
			Optional("command", nil).
			Option("limit", defaultLimit).
			Option("outcome", nil).
			Option("session", scopeAll).
			Option("since", nil).
			Cast("limit", casters.Int).
			Cast("outcome", OutcomeCaster()).
			Cast("session", casters.Choice(scopeAll, scopeCurrent)).
			Cast("since", casters.Date),
		Action: func(sh *dispatchers.Shell, call *dispatchers.Call) error {
			return list(sh, call, deps)
		},
	})
}

func list(sh *dispatchers.Shell, call *dispatchers.Call, deps Deps) error {
	limit := call.Int("limit")
	if limit < 0 {
		return fmt.Errorf("history: -limit must not be negative, got %d", limit)
	}

	filter := domain.HistoryFilter{
		Command: call.String("command"),
		Outcome: domain.Outcome(call.String("outcome")),
		Since:   call.Date("since"),
		Limit:   limit,
	}
	if call.String("session") == scopeCurrent {
		filter.SessionID = deps.Session
	}

	entries, err := deps.List(filter)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	if len(entries) == 0 {
		_, _ = sh.Println(style.Muted("No history entries"))
		return nil
	}

	// The store lists newest first.
	slices.Reverse(entries)

	now := deps.Now()
	var out bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&out, "%5d  %s  %s  %s\n",
			e.ID,
			style.Muted(fmt.Sprintf("%-14s", format.Stamp(e.CreatedAt, now))),
			style.Outcome(e.Outcome, fmt.Sprintf("%-13s", e.Outcome)),
			displayLine(e.Line),
		)
		if e.Reason != "" && e.Outcome != domain.OutcomeOK {
			fmt.Fprintf(&out, "%5s  %s\n", "", style.Muted(e.Reason))
		}
	}
	sh.Pager(out.String())
	return nil
}

func displayLine(line string) string {
	if line == "" {
		return style.Muted("(empty)")
	}
	return line
}

// Prune deletes all but the newest entries.
func Prune(deps Deps) *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:      "prune",
		Summary:   "Delete old history entries",
		Doc:       "Delete all history entries except the newest KEEP (0 deletes everything).",
		Category:  dispatchers.CategorySession,
		Signature: dispatchers.NewSignature().Optional("keep", 0).Cast("keep", casters.Int),
		Action: func(sh *dispatchers.Shell, call *dispatchers.Call) error {
			keep := call.Int("keep")
			if keep < 0 {
				return fmt.Errorf("prune: keep must not be negative, got %d", keep)
			}

			deleted, err := deps.Prune(keep)
			if err != nil {
				return fmt.Errorf("prune: %w", err)
			}

			_, _ = sh.Printf("%s %d history entries\n", style.Success("deleted"), deleted)
			return nil
		},
	})
}

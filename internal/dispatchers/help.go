package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"print":    1,
	"double":   1,
	"multiply": 2,
	"history":  1,
	"help":     1,
	"shell":    2,
	"quit":     3,
}

// Usage synthesizes a one-line usage string for h.
//
// Named-only parameters come first as [-name N(=default)], followed by
// required positionals in upper case, defaulted positionals as
// [NAME(=default)] and the variadic collector as [NAME].
func Usage(h *Handler, prefix string) string {
	if prefix == "" {
		prefix = DefaultOptionPrefix
	}

	res, err := Resolve(h)
	if err != nil {
		return h.Name
	}
	if res.Raw {
		return h.Name + " LINE"
	}

	sig := res.Signature
	parts := []string{h.Name}

	for _, p := range sig.NamedOnly() {
		meta := strings.ToUpper(p.Name[:1])
		parts = append(parts, fmt.Sprintf("[%s%s %s%s]", prefix, p.Name, meta, formatDefault(p.Default)))
	}

	for _, p := range sig.Positional() {
		name := strings.ToUpper(p.Name)
		if p.HasDefault {
			parts = append(parts, fmt.Sprintf("[%s%s]", name, formatDefault(p.Default)))
		} else {
			parts = append(parts, name)
		}
	}

	if sig.Variadic != "" {
		parts = append(parts, "["+strings.ToUpper(sig.Variadic)+"]")
	}

	return strings.Join(parts, " ")
}

func formatDefault(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("(=%v)", v)
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmd, rest, found := strings.Cut(usage, " ")
	if !found {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

// HelpCommand returns the built-in help command.
func HelpCommand() *Handler {
	return Command(CommandSpec{
		Name:      "help",
		Summary:   "List available commands or show help for one",
		Doc:       "List available commands with \"help\" or detailed help with \"help cmd\".",
		Category:  CategoryBuiltin,
		Signature: NewSignature().Optional("topic", nil),
		Action:    helpAction,
	})
}

func helpAction(sh *Shell, call *Call) error {
	topic := call.String("topic")
	if topic == "" {
		sh.Pager(sh.overview())
		return nil
	}

	h, ok := sh.Registry.Lookup(topic)
	if !ok || !h.Documented() {
		sh.Println(style.Error(fmt.Sprintf("*** No help on %s", topic)))
		if !ok {
			if similar := FindSimilarCommands(topic, sh.Registry, 3); len(similar) > 0 {
				sh.Println(style.Muted("*** did you mean " + strings.Join(similar, ", ") + "?"))
			}
		}
		return nil
	}

	var out bytes.Buffer
	out.WriteString(commandHelp(h))
	if sh.Options.ShowUsage {
		out.WriteString("\n\t")
		out.WriteString(formatUsage(Usage(h, sh.Options.OptionPrefix)))
	}
	out.WriteString("\n")
	sh.Pager(out.String())
	return nil
}

func commandHelp(h *Handler) string {
	if h.Doc != "" {
		return strings.TrimRight(h.Doc, "\n")
	}
	return h.Summary
}

func (sh *Shell) overview() string {
	var out bytes.Buffer

	grouped := make(map[CommandCategory][]*Handler)
	var undocumented []string
	for _, h := range sh.Registry.Handlers() {
		if h.Name == "EOF" {
			continue
		}
		if !h.Documented() {
			undocumented = append(undocumented, h.Name)
			continue
		}
		grouped[h.Category] = append(grouped[h.Category], h)
	}

	out.WriteString(style.Header("Documented commands (type help <topic>):"))
	out.WriteString("\n\n")

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}

		out.WriteString(cat.String())
		out.WriteString("\n")

		// Sort by explicit order, then alphabetically
		sort.Slice(cmds, func(i, j int) bool {
			orderI, hasI := commandDisplayOrder[cmds[i].Name]
			orderJ, hasJ := commandDisplayOrder[cmds[j].Name]
			if hasI && hasJ && orderI != orderJ {
				return orderI < orderJ
			}
			if hasI != hasJ {
				return hasI
			}
			return cmds[i].Name < cmds[j].Name
		})

		for _, h := range cmds {
			summary := h.Summary
			if summary == "" {
				summary, _, _ = strings.Cut(h.Doc, "\n")
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", h.Name)), summary)
		}
		out.WriteString("\n")
	}

	if len(undocumented) > 0 {
		out.WriteString(style.Header("Undocumented commands:"))
		out.WriteString("\n   ")
		out.WriteString(strings.Join(undocumented, "  "))
		out.WriteString("\n\n")
	}

	out.WriteString(style.Muted("See 'help <command>' for detailed help on a specific command."))
	out.WriteString("\n")
	return out.String()
}

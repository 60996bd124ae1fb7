// Package completions offers command, option and option-value candidates
// for a partially typed shell line.
package completions

import (
	"sort"
	"strings"

	"github.com/footprint-tools/parsedcmd/internal/casters"
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
)

// CommandInfo describes a registered command for completion purposes.
type CommandInfo struct {
	Name    string
	Summary string
	Options []OptionInfo
	Raw     bool
}

// OptionInfo describes one named-only parameter.
type OptionInfo struct {
	Name    string
	Default any
	Values  []string // accepted values, when the caster enumerates them
}

// ExtractCommands describes every command in reg, sorted by name.
// Commands whose wrapper chain cannot be resolved are skipped.
func ExtractCommands(reg *dispatchers.Registry) []CommandInfo {
	var commands []CommandInfo
	for _, h := range reg.Handlers() {
		if info, ok := describe(h); ok {
			commands = append(commands, info)
		}
	}

	sort.Slice(commands, func(i, j int) bool { return commands[i].Name < commands[j].Name })
	return commands
}

func describe(h *dispatchers.Handler) (CommandInfo, bool) {
	res, err := dispatchers.Resolve(h)
	if err != nil {
		return CommandInfo{}, false
	}

	info := CommandInfo{Name: h.Name, Summary: h.Summary, Raw: res.Raw}
	if res.Raw {
		return info, true
	}
	for _, p := range res.Signature.NamedOnly() {
		opt := OptionInfo{Name: p.Name, Default: p.Default}
		if e, ok := res.Signature.Caster(p.Name).(casters.Enumerable); ok {
			opt.Values = e.Values()
		}
		info.Options = append(info.Options, opt)
	}
	return info, true
}

func lookup(reg *dispatchers.Registry, cmd string) *CommandInfo {
	h, ok := reg.Lookup(cmd)
	if !ok {
		return nil
	}
	info, ok := describe(h)
	if !ok {
		return nil
	}
	return &info
}

func (c *CommandInfo) option(name string) (OptionInfo, bool) {
	for _, opt := range c.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return OptionInfo{}, false
}

// FindCommand finds a command by name.
func FindCommand(commands []CommandInfo, name string) *CommandInfo {
	for i := range commands {
		if commands[i].Name == name {
			return &commands[i]
		}
	}
	return nil
}

// Complete returns the command names starting with prefix.
// EOF is never offered.
func Complete(reg *dispatchers.Registry, prefix string) []string {
	var out []string
	for _, name := range reg.Names() {
		if name == "EOF" {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// CompleteOptions returns the option tokens of cmd (optPrefix+name) that
// start with prefix.
func CompleteOptions(reg *dispatchers.Registry, cmd, optPrefix, prefix string) []string {
	info := lookup(reg, cmd)
	if info == nil {
		return nil
	}

	var out []string
	for _, opt := range info.Options {
		token := optPrefix + opt.Name
		if strings.HasPrefix(token, prefix) {
			out = append(out, token)
		}
	}
	return out
}

// CompleteValues returns the enumerated values of option name of cmd that
// start with prefix.
func CompleteValues(reg *dispatchers.Registry, cmd, name, prefix string) []string {
	info := lookup(reg, cmd)
	if info == nil {
		return nil
	}
	opt, ok := info.option(name)
	if !ok {
		return nil
	}

	var out []string
	for _, v := range opt.Values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}

// Line returns whole-line candidates for a partially typed line: the line
// with its last word replaced by each completion of that word. Only the
// leading option run of a command is completed; raw commands get nothing
// after their name.
func Line(reg *dispatchers.Registry, line, optPrefix string) []string {
	if optPrefix == "" {
		optPrefix = dispatchers.DefaultOptionPrefix
	}

	fields := strings.Fields(line)
	trailingSpace := line != "" && strings.HasSuffix(line, " ")

	// Still typing the command name
	if len(fields) == 0 || (len(fields) == 1 && !trailingSpace) {
		prefix := ""
		if len(fields) == 1 {
			prefix = fields[0]
		}
		return withBase("", Complete(reg, prefix), " ")
	}

	cmd := fields[0]
	info := lookup(reg, cmd)
	if info == nil || info.Raw {
		return nil
	}

	current := ""
	done := fields[1:]
	if !trailingSpace {
		current = fields[len(fields)-1]
		done = fields[1 : len(fields)-1]
	}
	base := line[:len(line)-len(current)]

	// Walk the option run to see whether current is a name or a value.
	pending := ""
	for _, tok := range done {
		if pending != "" {
			pending = ""
			continue
		}
		name := strings.TrimLeft(tok, optPrefix)
		if _, ok := info.option(name); !ok || !strings.HasPrefix(tok, optPrefix) {
			return nil
		}
		pending = name
	}

	if pending != "" {
		return withBase(base, CompleteValues(reg, cmd, pending, current), " ")
	}
	if current == "" || strings.ContainsRune(optPrefix, rune(current[0])) {
		return withBase(base, CompleteOptions(reg, cmd, optPrefix, current), " ")
	}
	return nil
}

func withBase(base string, candidates []string, suffix string) []string {
	if len(candidates) == 0 {
		return nil
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = base + c + suffix
	}
	return out
}

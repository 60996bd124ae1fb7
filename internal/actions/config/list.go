package config

import (
	"bytes"
	"fmt"

	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

func list(sh *dispatchers.Shell, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if deps.Path != nil {
		out.WriteString(style.Muted("# " + deps.Path()))
		out.WriteString("\n")
	}

	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		var lines []string
		for _, key := range bySection[section] {
			value := configMap[key.Name]
			if key.HideIfEmpty && value == "" {
				continue
			}
			line := fmt.Sprintf("%s=%s", key.Name, value)
			if value != key.Default {
				line = style.Info(line)
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}

		out.WriteString("\n")
		out.WriteString(style.Header(section))
		out.WriteString("\n")
		for _, line := range lines {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}

	sh.Pager(out.String())
	return nil
}

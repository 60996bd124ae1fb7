package logs

import (
	"os"

	"github.com/footprint-tools/parsedcmd/internal/paths"
)

type Deps struct {
	LogFilePath func() string
	ReadFile    func(string) ([]byte, error)
	WriteFile   func(string, []byte, os.FileMode) error
	Stat        func(string) (os.FileInfo, error)
}

func DefaultDeps() Deps {
	return Deps{
		LogFilePath: paths.LogFilePath,
		ReadFile:    os.ReadFile,
		WriteFile:   os.WriteFile,
		Stat:        os.Stat,
	}
}

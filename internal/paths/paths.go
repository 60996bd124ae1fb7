package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "parsedcmd"

// AppDataDir returns the application directory for config-adjacent files such as the log.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// The history database lives here.
//   - macOS: ~/Library/Application Support/parsedcmd
//   - Linux: $XDG_DATA_HOME/parsedcmd or ~/.local/share/parsedcmd
//   - Windows: %LOCALAPPDATA%\parsedcmd
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// HistoryDBPath returns the path of the command history database,
// creating its parent directory if needed.
func HistoryDBPath() string {
	dir := AppLocalDataDir()
	_ = os.MkdirAll(dir, 0700)
	return filepath.Join(dir, "history.db")
}

// ConfigFilePath returns ~/.pcmdrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".pcmdrc"), nil
}

// LogFilePath returns the path to the application log file:
//   - macOS: ~/Library/Application Support/parsedcmd/pcmd.log
//   - Linux: $XDG_CONFIG_HOME/parsedcmd/pcmd.log or ~/.config/parsedcmd/pcmd.log
//   - Windows: %AppData%\parsedcmd\pcmd.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "pcmd.log")
}

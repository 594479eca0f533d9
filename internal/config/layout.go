package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appDirName = "restcurl"

// Dir is the user configuration directory holding the settings file.
func Dir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, "."+appDirName)
}

// OutputDir is where the capture files land. Settings may override it; the
// default lives under the system temp directory.
func OutputDir(settings Settings) string {
	if dir := strings.TrimSpace(settings.OutputDir); dir != "" {
		return dir
	}
	return filepath.Join(os.TempDir(), appDirName)
}

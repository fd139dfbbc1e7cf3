package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "planpack"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for user configuration.
//
//	Linux:   $XDG_CONFIG_HOME/planpack or ~/.config/planpack
//	macOS:   ~/Library/Application Support/planpack
func Config() string {
	return filepath.Join(xdg.ConfigHome, toolName)
}

// Default path to the configuration file.
//
// The file holds JSON defaults for command-line flags (e.g. "builder") and is
// optional; a missing file is not an error.
func ConfigFile() string {
	return filepath.Join(Config(), "config.json")
}

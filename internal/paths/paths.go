package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory naming.
	toolName = "lotopack"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Directory for data that can be regenerated at any time.
//
//	Linux:   $XDG_CACHE_HOME/lotopack or ~/.cache/lotopack
//	macOS:   ~/Library/Caches/lotopack
//	Windows: %LOCALAPPDATA%\cache\lotopack
func Cache() string {
	return filepath.Join(xdg.CacheHome, toolName)
}

// Download cache shared by every environment the tool provisions, so
// reprovisioning a deleted environment does not hit the network again.
//
//	Linux:   ~/.cache/lotopack/pip
//	macOS:   ~/Library/Caches/lotopack/pip
func PipCache() string {
	return filepath.Join(Cache(), "pip")
}

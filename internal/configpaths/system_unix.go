//go:build !windows

package configpaths

import (
	"os"
	"path/filepath"
)

// SystemConfigDir returns the machine-wide configuration directory, or ""
// when none applies. On Unix, root services use /etc/dsuwire.
func SystemConfigDir() string {
	if os.Geteuid() == 0 {
		return filepath.Join(string(os.PathSeparator), "etc", "dsuwire")
	}
	return ""
}

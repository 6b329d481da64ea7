// Package configpaths resolves the locations where dsuwire looks for
// its configuration files.
package configpaths

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "dsuwire"), nil
}

// ConfigCandidatePaths returns the config file candidates per format, in
// priority order (later entries override earlier ones). An explicit user
// path, if given, is appended to the matching format list so it wins.
func ConfigCandidatePaths(user string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var dirs []string
	if d := SystemConfigDir(); d != "" {
		dirs = append(dirs, d)
	}
	if d, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, d)
	}

	for _, dir := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "config.json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "config.toml"))
	}

	if user != "" {
		switch filepath.Ext(user) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, user)
		case ".toml":
			tomlPaths = append(tomlPaths, user)
		default:
			jsonPaths = append(jsonPaths, user)
		}
	}
	return jsonPaths, yamlPaths, tomlPaths
}

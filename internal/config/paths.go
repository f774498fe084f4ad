// ABOUTME: Standard filesystem paths for particle-wait configuration
// ABOUTME: Resolves ~/.particle-wait/ for global and .particle-wait/ for project-local files

package config

import "path/filepath"

const (
	dirName  = ".particle-wait"
	fileName = "config.yaml"
)

// GlobalDir returns the user-global config directory under home.
func GlobalDir(home string) string {
	if home == "" {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile(home string) string {
	return filepath.Join(GlobalDir(home), fileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, dirName, fileName)
}

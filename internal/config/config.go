// ABOUTME: Settings loading with global + project YAML config merge
// ABOUTME: Unknown keys are rejected; project values override global ones

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration. Zero values mean "not set".
type Settings struct {
	AccessToken   string `yaml:"access_token,omitempty"`
	APIURL        string `yaml:"api_url,omitempty"`
	Device        string `yaml:"device,omitempty"`
	Event         string `yaml:"event,omitempty"`
	CancelSeconds int    `yaml:"cancel_seconds,omitempty"`
	Title         string `yaml:"title,omitempty"`
	CancelTitle   string `yaml:"cancel_title,omitempty"`
	Theme         string `yaml:"theme,omitempty"`
}

// Load reads and merges global and project-local settings from the
// user's home directory and projectRoot.
func Load(projectRoot string) (*Settings, error) {
	home, _ := os.UserHomeDir()
	return LoadWithHome(projectRoot, home)
}

// LoadWithHome is Load with an explicit home directory. Missing files are
// not an error. ${VAR} references are expanded after merging.
func LoadWithHome(projectRoot, home string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile(home))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)

	if merged.CancelSeconds < 0 {
		return nil, fmt.Errorf("cancel_seconds must not be negative, got %d", merged.CancelSeconds)
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. An empty file yields zero
// Settings.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero project values onto global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.AccessToken != "" {
		result.AccessToken = project.AccessToken
	}
	if project.APIURL != "" {
		result.APIURL = project.APIURL
	}
	if project.Device != "" {
		result.Device = project.Device
	}
	if project.Event != "" {
		result.Event = project.Event
	}
	if project.CancelSeconds != 0 {
		result.CancelSeconds = project.CancelSeconds
	}
	if project.Title != "" {
		result.Title = project.Title
	}
	if project.CancelTitle != "" {
		result.CancelTitle = project.CancelTitle
	}
	if project.Theme != "" {
		result.Theme = project.Theme
	}

	return &result
}

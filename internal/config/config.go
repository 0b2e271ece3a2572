package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	// BranchesDir is the subdirectory of the repository root that holds
	// per-branch journal folders.
	BranchesDir string `json:"branches_dir,omitempty"`

	// JournalFile is the markdown file name inside each journal folder.
	JournalFile string `json:"journal_file,omitempty"`

	// TemplatePath points at a journal template to use instead of the
	// built-in one. Relative paths are resolved against the directory the
	// config file was loaded from.
	TemplatePath string `json:"template_path,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BranchesDir: "branches",
		JournalFile: "git-journal.md",
	}
}

// Load finds the nearest .gitjournal/config.json by walking upward from
// startDir and merges it over the defaults. A missing config file yields
// the defaults.
func Load(startDir string) (*Config, error) {
	configPath := FindRepoConfig(startDir)
	overlay, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}

	// Relative template paths are anchored at the config file location,
	// not at whatever directory the tool happens to run from.
	if overlay.TemplatePath != "" && !filepath.IsAbs(overlay.TemplatePath) && configPath != "" {
		overlay.TemplatePath = filepath.Join(filepath.Dir(configPath), overlay.TemplatePath)
	}

	return Merge(DefaultConfig(), overlay), nil
}

// FindRepoConfig walks upward from startDir to find the nearest
// .gitjournal/config.json. Returns the path if found, or empty string.
func FindRepoConfig(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, ".gitjournal", "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root, not found
			return ""
		}
		dir = parent
	}
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the path is empty or the file doesn't exist.
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs. Overlay values win if non-empty.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.BranchesDir = overlay.BranchesDir
	if result.BranchesDir == "" {
		result.BranchesDir = base.BranchesDir
	}

	result.JournalFile = overlay.JournalFile
	if result.JournalFile == "" {
		result.JournalFile = base.JournalFile
	}

	result.TemplatePath = overlay.TemplatePath
	if result.TemplatePath == "" {
		result.TemplatePath = base.TemplatePath
	}

	return result
}

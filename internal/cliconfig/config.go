package cliconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Config carries the batch-scan settings of a cjslex.config.jsonc file. The
// file may use // comments; it is converted to plain JSON before decoding.
type Config struct {
	Path        string   `json:"path,omitempty"` // Decoded from the file; no command reads it
	Include     []string `json:"include"`        // Glob patterns for files to scan
	Exclude     []string `json:"exclude"`        // Glob patterns for files to skip (overrides include)
	ESMPolicy   string   `json:"esm_policy"`     // "error" (default) or "warn" for ESM detections
	MaxFileSize int64    `json:"max_file_size"`  // Skip files larger than this many bytes (0 = no limit)
	Engines     string   `json:"engines"`        // Semver constraint checked by `cjslex doctor`
}

const (
	// ESMPolicyError makes a detected ESM module a scan failure.
	ESMPolicyError = "error"
	// ESMPolicyWarn downgrades ESM detections to a stderr warning.
	ESMPolicyWarn = "warn"
)

var configFileName = "cjslex.config.jsonc"

// LoadConfig loads the cjslex configuration from the specified path.
// configPath can be a specific file path or a directory containing
// cjslex.config.jsonc. A missing file in a directory lookup is not an error;
// the default Config (esm_policy "error", no globs, no limits) is returned.
func LoadConfig(configPath string) (Config, error) {
	config := Config{ESMPolicy: ESMPolicyError}

	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return config, err
	}

	actualPath := configPath
	if fileInfo.IsDir() {
		actualPath = filepath.Join(configPath, configFileName)
		if _, err := os.Stat(actualPath); err != nil {
			return config, nil
		}
	}

	content, err := os.ReadFile(actualPath)
	if err != nil {
		return config, err
	}

	if err := json.Unmarshal(jsonc.ToJSON(content), &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.ESMPolicy == "" {
		config.ESMPolicy = ESMPolicyError
	}
	if config.ESMPolicy != ESMPolicyError && config.ESMPolicy != ESMPolicyWarn {
		return config, fmt.Errorf("esm_policy '%s' is not valid. Use '%s' or '%s'", config.ESMPolicy, ESMPolicyError, ESMPolicyWarn)
	}

	for i, pattern := range config.Include {
		if err := validatePattern(pattern); err != nil {
			return config, fmt.Errorf("include[%d]: %w", i, err)
		}
	}
	for i, pattern := range config.Exclude {
		if err := validatePattern(pattern); err != nil {
			return config, fmt.Errorf("exclude[%d]: %w", i, err)
		}
	}

	return config, nil
}

func validatePattern(pattern string) error {
	if len(pattern) >= 2 && pattern[0] == '.' && (pattern[1] == '/' || pattern[1] == '\\') {
		return fmt.Errorf("pattern '%s' starts with './' or '.\\', which is not allowed. Use paths that start with a file or directory name", pattern)
	}
	if len(pattern) >= 3 && pattern[0] == '.' && pattern[1] == '.' && (pattern[2] == '/' || pattern[2] == '\\') {
		return fmt.Errorf("pattern '%s' starts with '../' or '..\\', which is not allowed. Use paths that start with a file or directory name", pattern)
	}
	return nil
}

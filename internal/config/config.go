// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Data      string `json:"data,omitempty"`       // Path to resume data JSON file
	Target    string `json:"target,omitempty"`     // Path to target description text file
	TargetURL string `json:"target_url,omitempty"` // URL to fetch target description from
	Template  string `json:"template,omitempty"`   // Path to LaTeX template
	OutputDir string `json:"output_dir,omitempty"` // Directory for generated artifacts

	// Document
	DocumentName string `json:"document_name,omitempty"` // User-facing name for artifacts
	OnConflict   string `json:"on_conflict,omitempty"`   // fail, overwrite, or rename

	// Refinement
	MaxRounds   int  `json:"max_rounds,omitempty"`  // Convergence loop round budget
	Concurrency int  `json:"concurrency,omitempty"` // Parallel items in batch mode
	Refine      bool `json:"refine,omitempty"`      // Refine content through the loop
	Feedback    bool `json:"feedback,omitempty"`    // Run the quality gate after assembly

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Verbose bool   `json:"verbose,omitempty"` // Print detailed progress information
}

// Defaults applied where the file and flags provide nothing.
const (
	DefaultTemplate   = "templates/resume.tex"
	DefaultOutputDir  = "output"
	DefaultOnConflict = "rename"
)

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// ApplyDefaults fills unset fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Template == "" {
		c.Template = DefaultTemplate
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.OnConflict == "" {
		c.OnConflict = DefaultOnConflict
	}
	if c.DocumentName == "" {
		c.DocumentName = "resume"
	}
}

// ResolveAPIKey returns the first non-empty of the flag value, the config
// value, and the GEMINI_API_KEY environment variable.
func ResolveAPIKey(flagValue string, cfg *Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.APIKey != "" {
		return cfg.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

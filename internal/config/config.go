package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the precis configuration. Effective config is built
// once per run and passed into components; nothing reads it back from the
// environment afterwards.
type Config struct {
	Provider         string   `json:"provider"`
	Model            string   `json:"model"`
	BaseRef          string   `json:"baseRef"`
	ScanEnabled      bool     `json:"scanEnabled"`
	ContextLines     int      `json:"contextLines"`
	MaxDiffBytes     int      `json:"maxDiffBytes"`
	Exclude          []string `json:"exclude"`
	Format           string   `json:"format"`
	OutPath          string   `json:"outPath"`
	InstructionsFile string   `json:"instructionsFile,omitempty"`
	PackFile         string   `json:"packFile,omitempty"`
	RedactSecrets    bool     `json:"redactSecrets"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:      "placeholder",
		Model:         "claude-sonnet-4-20250514",
		BaseRef:       "origin/main",
		ScanEnabled:   true,
		ContextLines:  3,
		MaxDiffBytes:  500000,
		Exclude:       []string{"vendor/**", "**/*.lock", "**/node_modules/**", "**/*.min.js"},
		Format:        "markdown",
		OutPath:       "review-prompt.md",
		RedactSecrets: true,
	}
}

// ConfigDir returns the platform-appropriate config directory for precis.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "precis"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "precis"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "precis"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "precis"), nil
	default:
		return filepath.Join(home, ".config", "precis"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// fileConfig mirrors Config with pointer booleans so an absent field can be
// distinguished from an explicit false in the JSON file.
type fileConfig struct {
	Provider         string   `json:"provider"`
	Model            string   `json:"model"`
	BaseRef          string   `json:"baseRef"`
	ScanEnabled      *bool    `json:"scanEnabled"`
	ContextLines     int      `json:"contextLines"`
	MaxDiffBytes     int      `json:"maxDiffBytes"`
	Exclude          []string `json:"exclude"`
	Format           string   `json:"format"`
	OutPath          string   `json:"outPath"`
	InstructionsFile string   `json:"instructionsFile"`
	PackFile         string   `json:"packFile"`
	RedactSecrets    *bool    `json:"redactSecrets"`
}

// LoadFile loads config overrides from the config file. Returns a zero
// fileConfig and nil error if the file doesn't exist.
func LoadFile() (fileConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return fileConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config file: %w", err)
	}
	return fc, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadSaved returns defaults overlaid with the config file only. Used by
// `precis config set`, which must not bake environment values into the
// saved file.
func LoadSaved() (Config, error) {
	cfg := Default()
	fc, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fc)
	return cfg, nil
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fc, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fc)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src fileConfig) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.BaseRef != "" {
		dst.BaseRef = src.BaseRef
	}
	if src.ScanEnabled != nil {
		dst.ScanEnabled = *src.ScanEnabled
	}
	if src.ContextLines > 0 {
		dst.ContextLines = src.ContextLines
	}
	if src.MaxDiffBytes > 0 {
		dst.MaxDiffBytes = src.MaxDiffBytes
	}
	if len(src.Exclude) > 0 {
		dst.Exclude = src.Exclude
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.OutPath != "" {
		dst.OutPath = src.OutPath
	}
	if src.InstructionsFile != "" {
		dst.InstructionsFile = src.InstructionsFile
	}
	if src.PackFile != "" {
		dst.PackFile = src.PackFile
	}
	if src.RedactSecrets != nil {
		dst.RedactSecrets = *src.RedactSecrets
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("PRECIS_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("PRECIS_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PRECIS_BASE_REF"); v != "" {
		cfg.BaseRef = v
	}
	if v := os.Getenv("PRECIS_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("PRECIS_OUT"); v != "" {
		cfg.OutPath = v
	}
	if v := os.Getenv("PRECIS_SCAN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ScanEnabled = b
		}
	}
	if v := os.Getenv("PRECIS_CONTEXT_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ContextLines = n
		}
	}
	if v := os.Getenv("PRECIS_MAX_DIFF_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDiffBytes = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	for key, v := range overrides {
		if v == "" {
			continue
		}
		// SetField accepts the same keys as `precis config set`.
		_ = SetField(cfg, key, v)
	}
}

// SetField sets a single config field by key name. Returns error if key is
// unknown or the value cannot be parsed.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "baseRef":
		cfg.BaseRef = value
	case "format":
		cfg.Format = value
	case "outPath":
		cfg.OutPath = value
	case "instructionsFile":
		cfg.InstructionsFile = value
	case "packFile":
		cfg.PackFile = value
	case "scanEnabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("scanEnabled must be a boolean: %w", err)
		}
		cfg.ScanEnabled = b
	case "redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redactSecrets must be a boolean: %w", err)
		}
		cfg.RedactSecrets = b
	case "contextLines":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("contextLines must be an integer: %w", err)
		}
		cfg.ContextLines = n
	case "maxDiffBytes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxDiffBytes must be an integer: %w", err)
		}
		cfg.MaxDiffBytes = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

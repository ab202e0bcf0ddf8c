package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/user/promptpack/internal/errors"
)

// ConfigFileName is used for both the project file at the pack root and
// the global file in the user's home directory.
const ConfigFileName = ".promptpack.yaml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvPrefix("PROMPTPACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return &Loader{v: v}
}

// Load merges the file-based configuration sources and CLI overrides.
// Precedence: CLI > {root}/.promptpack.yaml > ~/.promptpack.yaml >
// Environment > Defaults
func (l *Loader) Load(root string, cliOverrides map[string]interface{}) (map[string]interface{}, error) {
	if err := l.loadGlobalConfig(); err != nil {
		return nil, err
	}
	if err := l.loadProjectConfig(root); err != nil {
		return nil, err
	}

	settings := l.v.AllSettings()
	for key, value := range cliOverrides {
		if value != nil {
			setNested(settings, key, value)
		}
	}
	return settings, nil
}

// loadGlobalConfig loads configuration from ~/.promptpack.yaml
func (l *Loader) loadGlobalConfig() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil // Not a fatal error
	}

	globalConfig := filepath.Join(homeDir, ConfigFileName)
	if _, err := os.Stat(globalConfig); err != nil {
		return nil // File doesn't exist, skip
	}

	l.v.SetConfigFile(globalConfig)
	if err := l.v.ReadInConfig(); err != nil {
		return errors.NewConfigFileError(globalConfig, err)
	}

	return nil
}

// loadProjectConfig loads configuration from {root}/.promptpack.yaml
func (l *Loader) loadProjectConfig(root string) error {
	if root == "" {
		root = "."
	}

	configPath := filepath.Join(root, ConfigFileName)
	if _, err := os.Stat(configPath); err != nil {
		return nil // File doesn't exist, skip
	}

	l.v.SetConfigFile(configPath)
	if err := l.v.MergeInConfig(); err != nil {
		return errors.NewConfigFileError(configPath, err)
	}

	return nil
}

// LoadPackConfig loads and validates the full pack configuration
func LoadPackConfig(root string, cliOverrides map[string]interface{}) (*PackConfig, error) {
	loader := NewLoader()
	configMap, err := loader.Load(root, cliOverrides)
	if err != nil {
		return nil, err
	}

	cfg := &PackConfig{}
	decoderConfig := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
		TagName:          "mapstructure",
		Squash:           true,
	}

	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}

	if err := decoder.Decode(configMap); err != nil {
		return nil, fmt.Errorf("failed to decode pack config: %w", err)
	}

	applyPackDefaults(cfg)
	applyPackEnvOverrides(cfg)

	if err := validatePackConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyPackDefaults(cfg *PackConfig) {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Selection.BinaryDetection == "" {
		cfg.Selection.BinaryDetection = "content"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "default"
	}
	if cfg.Logging.LogDir == "" {
		cfg.Logging.LogDir = ".promptpack/logs"
	}
	if cfg.Logging.FileLevel == "" {
		cfg.Logging.FileLevel = "info"
	}
	if cfg.Logging.ConsoleLevel == "" {
		cfg.Logging.ConsoleLevel = "debug"
	}
}

// applyPackEnvOverrides lets PROMPTPACK_* variables fill values the files
// left at their defaults. File configuration always wins over env.
func applyPackEnvOverrides(cfg *PackConfig) {
	if cfg.Output.Format == "default" {
		if env := os.Getenv("PROMPTPACK_FORMAT"); env != "" {
			cfg.Output.Format = env
		}
	}
	if cfg.Selection.BinaryDetection == "content" {
		if env := os.Getenv("PROMPTPACK_BINARY_DETECTION"); env != "" {
			cfg.Selection.BinaryDetection = env
		}
	}
	if cfg.Logging.LogDir == ".promptpack/logs" {
		if env := os.Getenv("PROMPTPACK_LOG_DIR"); env != "" {
			cfg.Logging.LogDir = env
		}
	}
}

// validatePackConfig validates enumerated options
func validatePackConfig(cfg *PackConfig) error {
	validDetection := map[string]bool{
		"content":   true,
		"extension": true,
	}
	if !validDetection[cfg.Selection.BinaryDetection] {
		return errors.NewInvalidOptionError("selection.binary_detection", cfg.Selection.BinaryDetection,
			"Must be one of: content, extension")
	}

	validFormats := map[string]bool{
		"default":  true,
		"cxml":     true,
		"markdown": true,
	}
	if !validFormats[cfg.Output.Format] {
		return errors.NewInvalidOptionError("output.format", cfg.Output.Format,
			"Must be one of: default, cxml, markdown")
	}

	return nil
}

func setNested(m map[string]interface{}, dottedKey string, value interface{}) {
	parts := strings.Split(dottedKey, ".")
	if len(parts) == 1 {
		m[dottedKey] = value
		return
	}

	current := m
	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if next, ok := current[part].(map[string]interface{}); ok {
			current = next
		} else {
			newMap := make(map[string]interface{})
			current[part] = newMap
			current = newMap
		}
	}
	current[parts[len(parts)-1]] = value
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EffectiveYAML renders the effective configuration as YAML, with the
// defaults filled in, for `config show`.
func (c *PackConfig) EffectiveYAML() ([]byte, error) {
	doc := map[string]interface{}{
		"root":  c.Root,
		"debug": c.Debug,
		"selection": map[string]interface{}{
			"include":          c.Selection.Include,
			"exclude":          c.Selection.Exclude,
			"no_gitignore":     c.Selection.NoGitignore,
			"include_binary":   c.Selection.IncludeBinary,
			"binary_detection": c.Selection.GetBinaryDetection(),
			"keep_vcs":         c.Selection.KeepVCS,
			"strict_decode":    c.Selection.StrictDecode,
		},
		"output": map[string]interface{}{
			"format": c.Output.GetFormat(),
			"file":   c.Output.File,
			"copy":   c.Output.Copy,
		},
		"logging": map[string]interface{}{
			"log_dir":       c.Logging.GetLogDir(),
			"file_level":    c.Logging.GetFileLevel(),
			"console_level": c.Logging.GetConsoleLevel(),
		},
	}
	return yaml.Marshal(doc)
}

// SaveGlobal writes settings to ~/.promptpack.yaml and returns the path.
// Used by `config init`; an existing file is replaced.
func SaveGlobal(settings map[string]interface{}) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("failed to render configuration: %w", err)
	}

	configPath := filepath.Join(homeDir, ConfigFileName)
	content := append([]byte("# promptpack global configuration\n"), data...)
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		return "", err
	}

	return configPath, nil
}

package config

// BaseConfig holds common configuration for all handlers
type BaseConfig struct {
	Root  string `mapstructure:"root"`
	Debug bool   `mapstructure:"debug"`
}

// SelectionConfig controls which files end up in the pack
type SelectionConfig struct {
	Include         []string `mapstructure:"include"`
	Exclude         []string `mapstructure:"exclude"`
	NoGitignore     bool     `mapstructure:"no_gitignore"`
	IncludeBinary   bool     `mapstructure:"include_binary"`
	BinaryDetection string   `mapstructure:"binary_detection"` // content, extension
	KeepVCS         bool     `mapstructure:"keep_vcs"`
	StrictDecode    bool     `mapstructure:"strict_decode"`
}

// OutputConfig controls the rendered document and where it goes
type OutputConfig struct {
	Format string `mapstructure:"format"` // default, cxml, markdown
	File   string `mapstructure:"file"`
	Copy   bool   `mapstructure:"copy"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	LogDir       string `mapstructure:"log_dir"`
	FileLevel    string `mapstructure:"file_level"`    // debug, info, warn, error
	ConsoleLevel string `mapstructure:"console_level"` // debug, info, warn, error
}

// PackConfig is the top-level configuration for the pack command
type PackConfig struct {
	BaseConfig
	Selection SelectionConfig `mapstructure:"selection"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// GetBinaryDetection returns the binary detection mode with a default
func (c *SelectionConfig) GetBinaryDetection() string {
	if c.BinaryDetection == "" {
		return "content"
	}
	return c.BinaryDetection
}

// GetFormat returns the output format with a default
func (c *OutputConfig) GetFormat() string {
	if c.Format == "" {
		return "default"
	}
	return c.Format
}

// GetLogDir returns the log directory with a default
func (c *LoggingConfig) GetLogDir() string {
	if c.LogDir == "" {
		return ".promptpack/logs"
	}
	return c.LogDir
}

// GetFileLevel returns the file log level with a default
func (c *LoggingConfig) GetFileLevel() string {
	if c.FileLevel == "" {
		return "info"
	}
	return c.FileLevel
}

// GetConsoleLevel returns the console log level with a default
func (c *LoggingConfig) GetConsoleLevel() string {
	if c.ConsoleLevel == "" {
		return "debug"
	}
	return c.ConsoleLevel
}

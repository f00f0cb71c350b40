// Package config provides configuration management for the silisk CLI.
//
// Values are layered with koanf: built-in defaults, then silisk.yaml, then
// SILISK_* environment variables, then explicitly set command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Output      string `koanf:"output"`
	MaxDepth    int    `koanf:"max_depth"`
	Color       string `koanf:"color"`
	LogLevel    string `koanf:"log_level"`
	Verbose     bool   `koanf:"verbose"`
	HistoryFile string `koanf:"history_file"`
	Workers     int    `koanf:"workers"`
}

// Output formats.
const (
	OutputTree = "tree"
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputSQL  = "sql"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default configuration values.
const (
	DefaultOutput      = OutputTree
	DefaultMaxDepth    = 200
	DefaultColor       = ColorAuto
	DefaultLogLevel    = "warn"
	DefaultHistoryFile = ".silisk_history" // relative to the home directory
	DefaultWorkers     = 4
)

// OutputFormats lists the accepted values of the output key.
func OutputFormats() []string {
	return []string{OutputTree, OutputJSON, OutputYAML, OutputSQL}
}

// ColorModes lists the accepted values of the color key.
func ColorModes() []string {
	return []string{ColorAuto, ColorAlways, ColorNever}
}

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		Output:      DefaultOutput,
		MaxDepth:    DefaultMaxDepth,
		Color:       DefaultColor,
		LogLevel:    DefaultLogLevel,
		HistoryFile: defaultHistoryPath(),
		Workers:     DefaultWorkers,
	}
}

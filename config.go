package webeater

// Default configuration values.
const (
	DefaultConfigFile   = "weat.json"
	DefaultHintsDir     = "hints"
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
)

// DefaultHintName is the mandatory hint source loaded first in every
// resolution. Its absence is a configuration error, not a skippable one.
const DefaultHintName = "default"

// Config holds the main application configuration. The zero value is not
// usable; construct with DefaultConfig and overlay loaded values.
type Config struct {
	WindowSizeW int      `json:"window_size_w" yaml:"window_size_w"`
	WindowSizeH int      `json:"window_size_h" yaml:"window_size_h"`
	HintFiles   []string `json:"hint_files" yaml:"hint_files"`
	Hints       *Hint    `json:"hints,omitempty" yaml:"hints,omitempty"`
	Debug       bool     `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() Config {
	return Config{
		WindowSizeW: DefaultWindowWidth,
		WindowSizeH: DefaultWindowHeight,
		HintFiles:   []string{DefaultHintName},
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.WindowSizeW <= 0 || c.WindowSizeH <= 0 {
		return Errorf(EINVALID, "window dimensions must be positive")
	}
	return nil
}

// AddHintFiles appends extra hint file names, preserving order and dropping
// names already listed.
func (c *Config) AddHintFiles(names ...string) {
	c.HintFiles = mergeUnique(c.HintFiles, names)
}

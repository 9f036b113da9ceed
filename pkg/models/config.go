package models

// SoundConfig controls the completion chime.
type SoundConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// CelebrationConfig controls the completion overlay.
type CelebrationConfig struct {
	// ReducedMotion disables the falling-particle animation; the completion
	// banner still shows.
	ReducedMotion bool `yaml:"reduced_motion" mapstructure:"reduced_motion"`
}

// ThemeConfig holds the two hex colors the renderer blends across the curve
// and uses for accents.
type ThemeConfig struct {
	Accent string `yaml:"accent" mapstructure:"accent"`
	Dim    string `yaml:"dim" mapstructure:"dim"`
}

// DebugConfig holds developer-facing settings.
type DebugConfig struct {
	// LogFile, when non-empty, receives debug logs. The TUI owns stdout so
	// logging never writes there.
	LogFile string `yaml:"log_file" mapstructure:"log_file"`
}

// GlobalConfig holds the optional settings read from .focusring.yaml via
// Viper. The duration preset set and the break recommendation table are fixed
// and intentionally absent here.
type GlobalConfig struct {
	// DefaultDurationMin is the session length selected at startup. It must
	// be a member of the fixed preset set.
	DefaultDurationMin int               `yaml:"default_duration" mapstructure:"default_duration"`
	Sound              SoundConfig       `yaml:"sound" mapstructure:"sound"`
	Celebration        CelebrationConfig `yaml:"celebration" mapstructure:"celebration"`
	Theme              ThemeConfig       `yaml:"theme" mapstructure:"theme"`
	Debug              DebugConfig       `yaml:"debug" mapstructure:"debug"`
}

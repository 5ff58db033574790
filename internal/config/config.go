package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration
type Config struct {
	Theme       ThemeConfig      `toml:"theme"`
	LogLevels   LogLevelConfig   `toml:"log_levels"`
	Keybindings KeybindingConfig `toml:"keybindings"`
	Viewer      ViewerConfig     `toml:"viewer"`
}

// ThemeConfig defines color schemes
type ThemeConfig struct {
	Timestamp     string         `toml:"timestamp"`
	StatusBar     string         `toml:"status_bar"`
	StatusBarText string         `toml:"status_bar_text"`
	SearchMatch   string         `toml:"search_match"`
	CursorLine    string         `toml:"cursor_line"`
	Levels        LogLevelColors `toml:"levels"`
}

// LogLevelColors defines colors for each log level
type LogLevelColors struct {
	Debug string `toml:"debug"`
	Info  string `toml:"info"`
	Warn  string `toml:"warn"`
	Error string `toml:"error"`
}

// LogLevelConfig defines log level detection patterns
type LogLevelConfig struct {
	DebugPatterns []string `toml:"debug_patterns"`
	InfoPatterns  []string `toml:"info_patterns"`
	WarnPatterns  []string `toml:"warn_patterns"`
	ErrorPatterns []string `toml:"error_patterns"`
}

// KeybindingConfig allows customizing keybindings
type KeybindingConfig struct {
	Quit         []string `toml:"quit"`
	ScrollUp     []string `toml:"scroll_up"`
	ScrollDown   []string `toml:"scroll_down"`
	PageUp       []string `toml:"page_up"`
	PageDown     []string `toml:"page_down"`
	Top          []string `toml:"top"`
	Bottom       []string `toml:"bottom"`
	FocusSearch  []string `toml:"focus_search"`
	TogglePin    []string `toml:"toggle_pin"`
	NextMarker   []string `toml:"next_marker"`
	PrevMarker   []string `toml:"prev_marker"`
	CycleLevel   []string `toml:"cycle_level"`
	CopyFiltered []string `toml:"copy_filtered"`
	WriteFile    []string `toml:"write_file"`
	ToggleStream []string `toml:"toggle_stream"`
	Detail       []string `toml:"detail"`
	RangeStart   []string `toml:"range_start"`
	RangeEnd     []string `toml:"range_end"`
	RangeReset   []string `toml:"range_reset"`
}

// ViewerConfig holds windowing and tailing tuning
type ViewerConfig struct {
	Overscan     int `toml:"overscan"`      // extra rows rendered past the viewport
	PinTolerance int `toml:"pin_tolerance"` // rows above the tail still counted as pinned
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Timestamp:     "240", // Dark gray
			StatusBar:     "236",
			StatusBarText: "252",
			SearchMatch:   "226", // Yellow
			CursorLine:    "63",  // Violet
			Levels: LogLevelColors{
				Debug: "244", // Medium gray
				Info:  "250", // Light gray
				Warn:  "214", // Orange
				Error: "167", // Soft red
			},
		},
		LogLevels: LogLevelConfig{
			DebugPatterns: []string{"[DBG]", "[DEBUG]", "DEBUG", "DBG"},
			InfoPatterns:  []string{"[INF]", "[INFO]", "INFO", "INF"},
			WarnPatterns:  []string{"[WRN]", "[WARN]", "[WARNING]", "WARN", "WRN", "WARNING"},
			ErrorPatterns: []string{"[ERR]", "[ERROR]", "ERROR", "ERR", "FATAL", "[FTL]"},
		},
		Keybindings: KeybindingConfig{
			Quit:         []string{"q", "ctrl+c"},
			ScrollUp:     []string{"k", "up"},
			ScrollDown:   []string{"j", "down"},
			PageUp:       []string{"b", "pgup", "ctrl+u"},
			PageDown:     []string{"pgdown", "ctrl+d", " "},
			Top:          []string{"g", "home"},
			Bottom:       []string{"G", "end"},
			FocusSearch:  []string{"f", "F"},
			TogglePin:    []string{"l", "L"},
			NextMarker:   []string{"]"},
			PrevMarker:   []string{"["},
			CycleLevel:   []string{"e"},
			CopyFiltered: []string{"c"},
			WriteFile:    []string{"w"},
			ToggleStream: []string{"s"},
			Detail:       []string{"enter"},
			RangeStart:   []string{"t"},
			RangeEnd:     []string{"T"},
			RangeReset:   []string{"r"},
		},
		Viewer: ViewerConfig{
			Overscan:     5,
			PinTolerance: 3,
		},
	}
}

// Load loads config from file, falling back to defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := getConfigPath()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves config to file
func Save(cfg *Config) error {
	configPath := getConfigPath()
	if configPath == "" {
		return nil
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "logview", "config.toml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "logview", "config.toml")
}

// GetConfigPath exports the config path for user reference
func GetConfigPath() string {
	return getConfigPath()
}

package logformat

import (
	"strings"

	"github.com/user/logview/internal/config"
	"github.com/user/logview/internal/source"
)

// LevelDetector detects log levels from raw line content
type LevelDetector struct {
	patterns map[source.Level][]string
}

// NewLevelDetector creates a detector from config
func NewLevelDetector(cfg *config.LogLevelConfig) *LevelDetector {
	return &LevelDetector{
		patterns: map[source.Level][]string{
			source.LevelDebug: cfg.DebugPatterns,
			source.LevelInfo:  cfg.InfoPatterns,
			source.LevelWarn:  cfg.WarnPatterns,
			source.LevelError: cfg.ErrorPatterns,
		},
	}
}

// Detect returns the log level for a line, defaulting to info when no
// pattern matches. Higher severities are checked first so a line like
// "ERROR while parsing INFO block" classifies as error
func (d *LevelDetector) Detect(line string) source.Level {
	order := []source.Level{source.LevelError, source.LevelWarn, source.LevelDebug, source.LevelInfo}
	for _, level := range order {
		for _, pattern := range d.patterns[level] {
			if strings.Contains(line, pattern) {
				return level
			}
		}
	}
	return source.LevelInfo
}

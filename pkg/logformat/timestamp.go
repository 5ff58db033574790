package logformat

import (
	"regexp"
	"strconv"
	"time"
)

// TimestampParser extracts timestamps from raw log lines and normalizes
// them to epoch milliseconds, which is what the filter pipeline's time
// range operates on
type TimestampParser struct {
	patterns []timestampPattern
}

type timestampPattern struct {
	regex  *regexp.Regexp
	layout string
}

// NewTimestampParser creates a parser with common timestamp formats
func NewTimestampParser() *TimestampParser {
	return &TimestampParser{
		patterns: []timestampPattern{
			// ISO 8601 / RFC 3339 variants
			// 2024-01-15T10:30:45.123Z, 2024-01-15T10:30:45+00:00
			{
				regex:  regexp.MustCompile(`(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})?)`),
				layout: time.RFC3339,
			},
			// 2024-01-15 10:30:45.123
			{
				regex:  regexp.MustCompile(`(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3})`),
				layout: "2006-01-02 15:04:05.000",
			},
			// 2024-01-15 10:30:45
			{
				regex:  regexp.MustCompile(`(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`),
				layout: "2006-01-02 15:04:05",
			},
			// Syslog: Jan 15 10:30:45
			{
				regex:  regexp.MustCompile(`([A-Z][a-z]{2} \d{1,2} \d{2}:\d{2}:\d{2})`),
				layout: "Jan 2 15:04:05",
			},
			// Unix milliseconds: 1705315845123
			{
				regex:  regexp.MustCompile(`^(\d{13})(?:\D|$)`),
				layout: "unix_ms",
			},
			// Unix seconds: 1705315845
			{
				regex:  regexp.MustCompile(`^(\d{10})(?:\D|$)`),
				layout: "unix",
			},
		},
	}
}

// Parse attempts to extract a timestamp from a log line, returning epoch
// milliseconds and whether anything matched
func (p *TimestampParser) Parse(line string) (int64, bool) {
	for _, pattern := range p.patterns {
		matches := pattern.regex.FindStringSubmatch(line)
		if len(matches) < 2 {
			continue
		}
		timeStr := matches[1]

		switch pattern.layout {
		case "unix":
			if n, err := strconv.ParseInt(timeStr, 10, 64); err == nil {
				return n * 1000, true
			}
			continue
		case "unix_ms":
			if n, err := strconv.ParseInt(timeStr, 10, 64); err == nil {
				return n, true
			}
			continue
		}

		layouts := []string{pattern.layout}
		if pattern.layout == time.RFC3339 {
			// Offset-less variants still match the regex
			layouts = append(layouts, "2006-01-02T15:04:05.000", "2006-01-02T15:04:05")
		}

		for _, layout := range layouts {
			t, err := time.Parse(layout, timeStr)
			if err != nil {
				continue
			}
			// Syslog lines carry no year
			if layout == "Jan 2 15:04:05" {
				t = time.Date(time.Now().Year(), t.Month(), t.Day(),
					t.Hour(), t.Minute(), t.Second(), 0, time.Local)
			}
			return t.UnixMilli(), true
		}
	}

	return 0, false
}

// FormatTime renders an epoch-ms timestamp for row display
func FormatTime(ms int64) string {
	return time.UnixMilli(ms).Format("15:04:05.000")
}

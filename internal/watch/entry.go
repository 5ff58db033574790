package watch

import (
	"fmt"
	"time"

	"github.com/user/logview/internal/source"
	"github.com/user/logview/pkg/logformat"
)

// Parser turns raw log lines into viewer entries. Ids are derived from
// the source path and a running line sequence, so a re-delivered line
// produces the same id and the store's de-duplication drops it
type Parser struct {
	detector *logformat.LevelDetector
	times    *logformat.TimestampParser
	path     string
	seq      int
}

// NewParser creates a parser for one source path
func NewParser(path string, detector *logformat.LevelDetector) *Parser {
	return &Parser{
		detector: detector,
		times:    logformat.NewTimestampParser(),
		path:     path,
	}
}

// Entry converts one raw line. Lines without a parseable timestamp get
// the arrival time, which preserves append-order range filtering
func (p *Parser) Entry(line string) source.Entry {
	ts, ok := p.times.Parse(line)
	if !ok {
		ts = time.Now().UnixMilli()
	}
	p.seq++
	return source.Entry{
		ID:        fmt.Sprintf("%s:%d", p.path, p.seq),
		Timestamp: ts,
		Level:     p.detector.Detect(line),
		Message:   line,
	}
}

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/user/logview/internal/source"
	"github.com/user/logview/internal/view"
)

// Writer dumps the currently filtered entry set to a file so a slice of
// interest can be kept or shared after the viewer exits
type Writer struct {
	outDir string
}

// NewWriter creates a writer targeting the temp directory
func NewWriter() *Writer {
	return &Writer{outDir: os.TempDir()}
}

// WriteFiltered writes entries in the export line format and returns the
// file path
func (w *Writer) WriteFiltered(entries []source.Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("nothing to export")
	}

	name := fmt.Sprintf("logview-export-%s.log", time.Now().Format("20060102-150405"))
	path := filepath.Join(w.outDir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer out.Close()

	for _, e := range entries {
		if _, err := out.WriteString(view.FormatEntry(e) + "\n"); err != nil {
			os.Remove(path)
			return "", fmt.Errorf("failed to write entry: %w", err)
		}
	}

	return path, nil
}

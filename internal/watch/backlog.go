package watch

import (
	"bytes"
	"fmt"
	"os"

	"github.com/user/logview/internal/source"
	"golang.org/x/exp/mmap"
)

// LoadBacklog reads the existing contents of path into entries via a
// memory-mapped chunked scan, and returns the byte size consumed so a
// follower can pick up exactly where the backlog ended
func LoadBacklog(path string, parser *Parser) ([]source.Entry, int64, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer reader.Close()

	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		return nil, 0, nil
	}

	// Estimate capacity assuming ~100 bytes per line
	entries := make([]source.Entry, 0, int(size/100)+1)

	const chunkSize = 64 * 1024
	buf := make([]byte, chunkSize)
	var pending []byte

	var pos int64
	consumed := int64(0)
	for pos < size {
		readSize := chunkSize
		if pos+int64(readSize) > size {
			readSize = int(size - pos)
		}

		n, err := reader.ReadAt(buf[:readSize], pos)
		if err != nil {
			return nil, 0, fmt.Errorf("read %s: %w", path, err)
		}

		chunk := buf[:n]
		offset := 0
		for {
			idx := bytes.IndexByte(chunk[offset:], '\n')
			if idx == -1 {
				break
			}
			line := append(pending, chunk[offset:offset+idx]...)
			pending = nil
			entries = append(entries, parser.Entry(string(bytes.TrimRight(line, "\r"))))
			offset += idx + 1
			consumed = pos + int64(offset)
		}
		pending = append(pending, chunk[offset:]...)

		pos += int64(n)
	}

	// A trailing partial line stays unconsumed; the follower re-reads it
	// once the producer finishes it with a newline
	return entries, consumed, nil
}

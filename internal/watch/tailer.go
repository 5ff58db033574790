package watch

import (
	"context"
	"fmt"
	"io"

	"github.com/nxadm/tail"
	"github.com/user/logview/internal/source"
)

// Follow streams entries appended to path, starting at byte offset.
// The channel closes when ctx is cancelled or the tail ends
func Follow(ctx context.Context, path string, offset int64, parser *Parser) (<-chan source.Entry, error) {
	cfg := tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
		Location:  &tail.SeekInfo{Offset: offset, Whence: io.SeekStart},
	}
	t, err := tail.TailFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("tail %s: %w", path, err)
	}

	out := make(chan source.Entry)
	go func() {
		defer close(out)
		defer t.Cleanup()
		for {
			select {
			case <-ctx.Done():
				t.Stop()
				return
			case line, ok := <-t.Lines:
				if !ok {
					return
				}
				if line.Err != nil {
					continue
				}
				select {
				case out <- parser.Entry(line.Text):
				case <-ctx.Done():
					t.Stop()
					return
				}
			}
		}
	}()

	return out, nil
}

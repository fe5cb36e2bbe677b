package connector

import (
	"bufio"
	"fmt"
	"os"

	"github.com/BaSui01/flownet/block"
)

// FileLines returns a source opener that emits one line of the file per
// invocation, as a string, and exhausts at end of file.
func FileLines(path string) block.SourceOpener {
	return func() (block.SourceFunc, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		scanner := bufio.NewScanner(f)
		return func() (any, error) {
			if !scanner.Scan() {
				closeErr := f.Close()
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("read %s: %w", path, err)
				}
				if closeErr != nil {
					return nil, fmt.Errorf("close %s: %w", path, closeErr)
				}
				return nil, nil
			}
			return scanner.Text(), nil
		}, nil
	}
}

// FileSink returns a sink opener that writes each message as one line,
// formatted with fmt, and closes the file when the stream ends.
func FileSink(path string) block.SinkOpener {
	return func() (block.SinkFunc, func() error, error) {
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, fmt.Errorf("create %s: %w", path, err)
		}
		w := bufio.NewWriter(f)
		sink := func(msg any) error {
			if _, err := fmt.Fprintln(w, msg); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			return nil
		}
		closeFn := func() error {
			if err := w.Flush(); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		}
		return sink, closeFn, nil
	}
}

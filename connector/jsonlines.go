package connector

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/BaSui01/flownet/block"
)

// JSONLinesSource returns a source opener that decodes one JSON value per
// line of the file and exhausts at end of file. Blank lines are skipped.
func JSONLinesSource(path string) block.SourceOpener {
	return func() (block.SourceFunc, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		scanner := bufio.NewScanner(f)
		return func() (any, error) {
			for scanner.Scan() {
				line := scanner.Bytes()
				if len(line) == 0 {
					continue
				}
				var v any
				if err := json.Unmarshal(line, &v); err != nil {
					_ = f.Close()
					return nil, fmt.Errorf("decode %s: %w", path, err)
				}
				return v, nil
			}
			closeErr := f.Close()
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			if closeErr != nil {
				return nil, fmt.Errorf("close %s: %w", path, closeErr)
			}
			return nil, nil
		}, nil
	}
}

// JSONLinesSink returns a sink opener that encodes each message as one JSON
// line.
func JSONLinesSink(path string) block.SinkOpener {
	return func() (block.SinkFunc, func() error, error) {
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, fmt.Errorf("create %s: %w", path, err)
		}
		w := bufio.NewWriter(f)
		enc := json.NewEncoder(w)
		sink := func(msg any) error {
			if err := enc.Encode(msg); err != nil {
				return fmt.Errorf("encode %s: %w", path, err)
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

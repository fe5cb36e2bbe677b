package connector

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BaSui01/flownet/block"
)

// CSVSource returns a source opener that emits one CSV record ([]string) per
// invocation and exhausts at end of file.
func CSVSource(path string) block.SourceOpener {
	return func() (block.SourceFunc, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		r := csv.NewReader(f)
		return func() (any, error) {
			record, err := r.Read()
			if errors.Is(err, io.EOF) {
				if err := f.Close(); err != nil {
					return nil, fmt.Errorf("close %s: %w", path, err)
				}
				return nil, nil
			}
			if err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			return record, nil
		}, nil
	}
}

package publish

import (
	"fmt"
	"os"

	"wasdex/report"
)

// JSONSink writes the record to a standalone JSON file.
type JSONSink struct {
	Path string
}

func (s *JSONSink) Publish(record report.Record) error {
	data, err := Encode(record)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write json output %s: %w", s.Path, err)
	}
	return nil
}

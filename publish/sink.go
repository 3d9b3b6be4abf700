// Package publish hands a finished record to a display artifact: either the
// dashboard HTML (in-place data-block substitution) or a plain JSON file.
package publish

import (
	"encoding/json"
	"fmt"
	"strings"

	"wasdex/report"
)

// Sink accepts one normalized record and embeds it into its artifact. A sink
// either publishes completely or fails the run; there is no partial publish.
type Sink interface {
	Publish(record report.Record) error
}

// SinkForFormat selects a sink. "html" updates the dashboard template in
// place, "json" writes the record to a standalone file.
func SinkForFormat(format, path string) (Sink, error) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "html":
		return &HTMLSink{TemplatePath: path}, nil
	case "json":
		return &JSONSink{Path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported publish format: %s", format)
	}
}

// Encode serializes a record the way every sink embeds it: indented JSON
// with sorted keys, so identical records encode identically.
func Encode(record report.Record) ([]byte, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report record: %w", err)
	}
	return data, nil
}

package publish

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"wasdex/report"
)

// ErrMarkerNotFound means the dashboard template no longer carries the data
// block the sink substitutes into.
var ErrMarkerNotFound = errors.New("dashboard data block not found in template")

// dataBlockPattern matches the embedded data constant up to its end marker.
// The substitution is exact text replacement rather than DOM rewriting so
// the hand-authored dashboard around the block stays untouched.
var dataBlockPattern = regexp.MustCompile(`(?s)const WASDE_DATA = \{.*?\};\s*\n// ========== END DATA ==========`)

// HTMLSink embeds the record into the dashboard HTML in place.
type HTMLSink struct {
	TemplatePath string
}

func (s *HTMLSink) Publish(record report.Record) error {
	html, err := os.ReadFile(s.TemplatePath)
	if err != nil {
		return fmt.Errorf("read dashboard template %s: %w", s.TemplatePath, err)
	}

	data, err := Encode(record)
	if err != nil {
		return err
	}
	replacement := []byte("const WASDE_DATA = " + string(data) + ";\n// ========== END DATA ==========")

	if !dataBlockPattern.Match(html) {
		return fmt.Errorf("%s: %w", s.TemplatePath, ErrMarkerNotFound)
	}
	updated := dataBlockPattern.ReplaceAllLiteral(html, replacement)

	if err := os.WriteFile(s.TemplatePath, updated, 0o644); err != nil {
		return fmt.Errorf("write dashboard %s: %w", s.TemplatePath, err)
	}
	return nil
}

package extract

import (
	"strings"

	"wasdex/report"
)

// CellText returns the trimmed text of one cell, or "" when the cell is
// missing or not text-like.
func CellText(row []any, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	switch v := row[col].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return ""
	}
}

// FindRow locates the first row in [start, end) whose first-column text
// starts with prefix. Matching is case-sensitive on the exact prefix; the
// schema tables carry the observed label spelling per section. The first
// match wins, so footnote repeats of the same label further down are never
// used. end <= 0 means "to the end of the sheet".
func FindRow(sheet report.Sheet, prefix string, start, end int) (int, bool) {
	return FindRowIn(sheet, 0, prefix, start, end)
}

// FindRowIn is FindRow with the label column made explicit; the wheat
// by-class table indents its labels into column 1.
func FindRowIn(sheet report.Sheet, labelCol int, prefix string, start, end int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if end <= 0 || end > len(sheet) {
		end = len(sheet)
	}
	for i := start; i < end; i++ {
		if strings.HasPrefix(CellText(sheet[i], labelCol), prefix) {
			return i, true
		}
	}
	return 0, false
}

// FindSection returns the start index of a named section, or 0 when the
// label is not present. Index 0 means "search the whole sheet": a missing
// section degrades to an unbounded search rather than an error, at the
// accepted risk of a cross-section label match.
func FindSection(sheet report.Sheet, label string) int {
	if idx, ok := FindRow(sheet, label, 0, len(sheet)); ok {
		return idx
	}
	return 0
}

package extract

import (
	"strings"

	"wasdex/report"
)

// Quality records which declared fields actually matched a row and which
// silently degraded to a zero series. The record itself gives no way to tell
// "value is truly zero" from "row not found"; this side channel does.
type Quality struct {
	Resolved  []string
	Defaulted []string
}

func (q *Quality) mark(path string, found bool) {
	if found {
		q.Resolved = append(q.Resolved, path)
	} else {
		q.Defaulted = append(q.Defaulted, path)
	}
}

// Merge appends another build's field paths.
func (q *Quality) Merge(other Quality) {
	q.Resolved = append(q.Resolved, other.Resolved...)
	q.Defaulted = append(q.Defaulted, other.Defaulted...)
}

// BuildCommodity runs the schema table against one decoded page and returns
// the raw (pre-normalization) attribute mapping. Extraction is total: every
// declared field is present in the result, zero-filled when its row was not
// found. anchorLabel is the marketing-year text that anchors a by-class
// block (e.g. "2025/26"); it is ignored when the schema has none.
func BuildCommodity(sheet report.Sheet, schema Schema, anchorLabel string) (report.Mapping, Quality) {
	var quality Quality
	mapping := report.Mapping{}

	start := 0
	if schema.Section != "" {
		start = FindSection(sheet, schema.Section)
	}
	end := len(sheet)
	if schema.Limit > 0 && schema.Limit < end {
		end = schema.Limit
	} else if len(schema.Blocks) > 0 {
		if first := FindSection(sheet, schema.Blocks[0].Section); first > 0 {
			end = first
		}
	}

	for _, metric := range schema.Metrics {
		cols := metric.Columns
		if cols == nil {
			cols = schema.Columns
		}
		mapping[metric.Field] = extractMetric(sheet, metric, cols, start, end, schema.Name, "", &quality)
	}

	for _, block := range schema.Blocks {
		blockStart := FindSection(sheet, block.Section)
		blockEnd := len(sheet)
		if block.Until != "" {
			if until := FindSection(sheet, block.Until); until > 0 {
				blockEnd = until
			}
		}

		sub := report.Mapping{}
		for _, metric := range block.Metrics {
			cols := metric.Columns
			if cols == nil {
				cols = block.Columns
			}
			sub[metric.Field] = extractMetric(sheet, metric, cols, blockStart, blockEnd, schema.Name, block.Field, &quality)
		}
		mapping[block.Field] = sub
	}

	if schema.Class != nil {
		mapping[schema.Class.Field] = buildClassBlock(sheet, *schema.Class, anchorLabel, schema.Name, &quality)
	}

	return mapping, quality
}

func extractMetric(sheet report.Sheet, metric Metric, cols []int, start, end int, commodity, block string, quality *Quality) report.Series {
	path := fieldPath(commodity, block, metric.Field)
	idx, found := FindRow(sheet, metric.Label, start, end)
	quality.mark(path, found)
	if !found {
		return report.Zero(len(cols))
	}
	return Columns(sheet[idx], cols)
}

// buildClassBlock extracts a metric broken out by sub-class rather than by
// period: each value column is one class, labeled by the block's Labels.
func buildClassBlock(sheet report.Sheet, class ClassBlock, anchorLabel, commodity string, quality *Quality) report.Mapping {
	start := FindSection(sheet, class.Section)

	// The class table repeats one row group per marketing year; the group for
	// the projected year is the one whose leading cell carries its label.
	anchor := 0
	for i := start; i < len(sheet); i++ {
		if strings.Contains(CellText(sheet[i], 0), anchorLabel) {
			anchor = i
			break
		}
	}

	end := len(sheet)
	if class.Window > 0 && anchor+class.Window < end {
		end = anchor + class.Window
	}

	labels := make([]string, len(class.Labels))
	copy(labels, class.Labels)
	sub := report.Mapping{"labels": labels}
	for _, metric := range class.Metrics {
		path := fieldPath(commodity, class.Field, metric.Field)
		idx, found := FindRowIn(sheet, class.LabelColumn, metric.Label, anchor, end)
		quality.mark(path, found)
		if !found {
			sub[metric.Field] = report.Zero(len(class.Columns))
			continue
		}
		sub[metric.Field] = Columns(sheet[idx], class.Columns)
	}
	return sub
}

func fieldPath(parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ".")
}

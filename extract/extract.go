// Package extract turns decoded report pages into the normalized dashboard
// record. It is pure computation over in-memory sheets: the report source
// decodes the workbook up front, and a run either returns a complete record
// or an error naming the page it could not work with. Individual metrics
// never fail — a missing row or unparseable cell degrades to zero, tracked
// in the run's Quality report.
package extract

import (
	"fmt"
	"regexp"

	"wasdex/internal/period"
	"wasdex/report"
)

// Input is one extraction request: the decoded pages plus the requested
// report year and month.
type Input struct {
	Year   int
	Month  int
	Sheets map[string]report.Sheet
}

// Result carries the assembled record together with the per-field
// resolved/defaulted report for the whole run.
type Result struct {
	Record  report.Record
	Quality Quality
}

// headlineField is the metric whose prior-month projection is retained per
// commodity for month-over-month comparison.
const headlineField = "endStocks"

var reportIDPattern = regexp.MustCompile(`WASDE[- ]+(\d+)`)

// Run executes the full pipeline: one schema build per commodity, series
// normalization, and final assembly. It fails only on an invalid request or
// a missing page; no partial record is ever returned.
func Run(in Input) (*Result, error) {
	if !period.Valid(in.Month) {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", in.Month)
	}
	for _, page := range Pages() {
		if _, ok := in.Sheets[page]; !ok {
			return nil, fmt.Errorf("report sheet %q missing from source", page)
		}
	}

	anchor := period.MarketingYear(in.Year)
	commodities := make(map[string]report.Mapping)
	var quality Quality
	for _, schema := range Schemas() {
		raw, buildQuality := BuildCommodity(in.Sheets[schema.Page], schema, anchor)
		quality.Merge(buildQuality)

		previous := PreviousProjection(raw, headlineField)
		normalized := Normalize(raw)
		normalized[headlineField+"Prev"] = previous
		commodities[schema.Name] = normalized
	}

	record := Assemble(in.Year, in.Month, ScanReportID(in.Sheets[TextPage]), commodities)
	return &Result{Record: record, Quality: quality}, nil
}

// ScanReportID looks for the report number (e.g. "WASDE-657") in the top-left
// corner of the text page. Falls back to the bare series name when the page
// layout changes.
func ScanReportID(sheet report.Sheet) string {
	for r := 0; r < len(sheet) && r < 10; r++ {
		for c := 0; c < 5; c++ {
			if m := reportIDPattern.FindStringSubmatch(CellText(sheet[r], c)); m != nil {
				return "WASDE-" + m[1]
			}
		}
	}
	return "WASDE"
}

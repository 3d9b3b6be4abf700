package extract

import (
	"wasdex/internal/period"
	"wasdex/report"
)

// Assemble combines the normalized per-commodity mappings with the report
// metadata into the final record. Period labels are computed from the
// requested year/month alone, never from the sheet data.
func Assemble(year, month int, reportID string, commodities map[string]report.Mapping) report.Record {
	record := report.Record{
		"reportId":   reportID,
		"reportDate": period.ReportDate(year, month),
		"years":      period.Labels(year),
		"prevMonth":  period.PrevMonthAbbrev(month),
		"curMonth":   period.MonthAbbrev(month),
	}
	for name, mapping := range commodities {
		record[name] = mapping
	}
	return record
}

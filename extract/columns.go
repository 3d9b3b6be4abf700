package extract

import "wasdex/report"

// Columns slices one located row into a Series, coercing the cell at each
// listed column index in list order. Column index lists are per-commodity,
// per-section constants: report layouts interleave blank spacer columns and
// genuinely differ between pages, so the layout is configuration, never
// inferred. Indices past the end of the row coerce to 0.
func Columns(row []any, cols []int) report.Series {
	values := make(report.Series, len(cols))
	for i, col := range cols {
		if col >= 0 && col < len(row) {
			values[i] = Num(row[col])
		}
	}
	return values
}

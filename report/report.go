package report

// Sheet is one decoded report page: rows of cells in document order. A cell
// is whatever the decoder produced for it (string, float64, int, or nil for
// blanks); coercion to numbers happens at extraction time.
type Sheet [][]any

// Series holds extracted numeric values in period order (or class order for
// by-class breakdowns). Raw period series always carry exactly four values:
// year N-2 final, year N-1 estimate, prior-month projection, current-month
// projection. Published series drop the prior-month projection.
type Series []float64

// Mapping is the nested attribute map built for one commodity: metric name
// to Series, with sub-maps for derived products (oil, meal, by-class).
type Mapping map[string]any

// Record is the final normalized report payload handed to publication sinks.
// It contains only plain nested maps, slices, strings, and numbers, so it
// marshals to JSON as-is; map keys marshal sorted, which makes the
// serialization of identical inputs byte-identical.
type Record map[string]any

// Zero returns an all-zero series of the given length. Metrics whose row was
// never found degrade to this rather than failing the run.
func Zero(n int) Series {
	return make(Series, n)
}

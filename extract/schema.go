package extract

// The schema tables below are the data-driven heart of the extractor: one
// declared (field, row-label, column-map) entry per published metric. Adding
// a commodity or metric is a table edit, not new control flow.

// Metric declares one output field: the label prefix that locates its row
// and, optionally, a column map overriding the enclosing block's default.
type Metric struct {
	Field   string
	Label   string
	Columns []int
}

// Block declares a sub-section of a commodity page (e.g. the oil and meal
// blocks on the soybean page). Row searches for its metrics are bounded to
// [section start, Until-section start) so that labels repeated across
// sub-sections resolve to the right block.
type Block struct {
	Field   string
	Section string
	Until   string // label of the following section; empty means end of sheet
	Columns []int
	Metrics []Metric
}

// ClassBlock declares a by-class breakdown (e.g. U.S. wheat by class), where
// the extracted axis is class rather than reporting period. Its rows are
// located under a marketing-year anchor row computed from the requested
// report year, within a fixed window; labels sit in LabelColumn rather than
// column 0.
type ClassBlock struct {
	Field       string
	Section     string
	LabelColumn int
	Window      int
	Columns     []int
	Labels      []string
	Metrics     []Metric
}

// Schema declares the full extraction table for one commodity page.
type Schema struct {
	Name    string // record key, e.g. "corn"
	Page    string // sheet name, e.g. "Page 12"
	Section string // primary section label; empty means top of sheet
	Limit   int    // optional absolute row bound for the primary block
	Columns []int  // default period column map
	Metrics []Metric
	Blocks  []Block
	Class   *ClassBlock
}

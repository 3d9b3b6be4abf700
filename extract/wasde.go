package extract

// Page names and schema tables for the WASDE report. Column index lists are
// hard-won layout knowledge read off the actual report pages: the corn and
// soybean pages put the four periods in columns 1-4, while the wheat summary
// interleaves blank spacer columns and spreads them over 4/6/9/11.

const (
	// TextPage carries the report number ("WASDE-657") in its header lines.
	TextPage = "WASDE Text"

	WheatPage   = "Page 11"
	CornPage    = "Page 12"
	SoybeanPage = "Page 15"
)

const (
	// The wheat supply/demand summary occupies the top of its page; bounding
	// the search keeps summary labels from matching the class table below.
	wheatSummaryLimit = 30
	wheatClassWindow  = 15
)

var (
	periodColumns     = []int{1, 2, 3, 4}
	wheatTopColumns   = []int{4, 6, 9, 11}
	wheatClassColumns = []int{3, 5, 7, 8, 10}
	wheatClassLabels  = []string{"HRW", "HRS", "SRW", "White", "Durum"}
)

// Schemas returns the extraction tables for the tracked commodities, in
// record-key order: corn, soybeans (with oil and meal blocks), wheat (with
// the by-class block).
func Schemas() []Schema {
	return []Schema{
		{
			Name:    "corn",
			Page:    CornPage,
			Section: "CORN",
			Columns: periodColumns,
			Metrics: []Metric{
				{Field: "price", Label: "Avg. Farm Price"},
				{Field: "planted", Label: "Area Planted"},
				{Field: "harvested", Label: "Area Harvested"},
				{Field: "yield", Label: "Yield per"},
				{Field: "begStocks", Label: "Beginning Stocks"},
				{Field: "production", Label: "Production"},
				{Field: "imports", Label: "Imports"},
				{Field: "supplyTotal", Label: "Supply, Total"},
				{Field: "feedResidual", Label: "Feed and Residual"},
				{Field: "fsi", Label: "Food, Seed & Industrial"},
				{Field: "ethanol", Label: "Ethanol"},
				{Field: "domesticTotal", Label: "Domestic, Total"},
				{Field: "exports", Label: "Exports"},
				{Field: "useTotal", Label: "Use, Total"},
				{Field: "endStocks", Label: "Ending Stocks"},
			},
		},
		{
			Name:    "soybeans",
			Page:    SoybeanPage,
			Section: "SOYBEANS",
			Columns: periodColumns,
			Metrics: []Metric{
				{Field: "price", Label: "Avg. Farm Price"},
				{Field: "planted", Label: "Area Planted"},
				{Field: "harvested", Label: "Area Harvested"},
				{Field: "yield", Label: "Yield per"},
				{Field: "begStocks", Label: "Beginning Stocks"},
				{Field: "production", Label: "Production"},
				{Field: "imports", Label: "Imports"},
				{Field: "supplyTotal", Label: "Supply, Total"},
				{Field: "crushings", Label: "Crushings"},
				{Field: "exports", Label: "Exports"},
				{Field: "seed", Label: "Seed"},
				{Field: "residual", Label: "Residual"},
				{Field: "useTotal", Label: "Use, Total"},
				{Field: "endStocks", Label: "Ending Stocks"},
			},
			Blocks: []Block{
				{
					Field:   "oil",
					Section: "SOYBEAN OIL",
					Until:   "SOYBEAN MEAL",
					Columns: periodColumns,
					Metrics: []Metric{
						{Field: "price", Label: "Avg. Price"},
						{Field: "production", Label: "Production"},
						{Field: "domesticUse", Label: "Domestic Disappearance"},
						{Field: "biofuel", Label: "Biofuel"},
						{Field: "exports", Label: "Exports"},
						// The oil block lower-cases "stocks"; matching is
						// case-sensitive, so the table carries the observed spelling.
						{Field: "endStocks", Label: "Ending stocks"},
					},
				},
				{
					Field:   "meal",
					Section: "SOYBEAN MEAL",
					Columns: periodColumns,
					Metrics: []Metric{
						{Field: "price", Label: "Avg. Price"},
						{Field: "production", Label: "Production"},
						{Field: "domesticUse", Label: "Domestic Disappearance"},
						{Field: "exports", Label: "Exports"},
						{Field: "endStocks", Label: "Ending Stocks"},
					},
				},
			},
		},
		{
			Name:    "wheat",
			Page:    WheatPage,
			Limit:   wheatSummaryLimit,
			Columns: wheatTopColumns,
			Metrics: []Metric{
				{Field: "price", Label: "Avg. Farm Price"},
				{Field: "planted", Label: "Area Planted"},
				{Field: "harvested", Label: "Area Harvested"},
				{Field: "yield", Label: "Yield per"},
				{Field: "begStocks", Label: "Beginning Stocks"},
				{Field: "production", Label: "Production"},
				{Field: "imports", Label: "Imports"},
				{Field: "supplyTotal", Label: "Supply, Total"},
				{Field: "food", Label: "Food"},
				{Field: "seed", Label: "Seed"},
				{Field: "feedResidual", Label: "Feed and Residual"},
				{Field: "domesticTotal", Label: "Domestic, Total"},
				{Field: "exports", Label: "Exports"},
				{Field: "useTotal", Label: "Use, Total"},
				{Field: "endStocks", Label: "Ending Stocks"},
			},
			Class: &ClassBlock{
				Field:       "byClass",
				Section:     "U.S. Wheat by Class",
				LabelColumn: 1,
				Window:      wheatClassWindow,
				Columns:     wheatClassColumns,
				Labels:      wheatClassLabels,
				Metrics: []Metric{
					{Field: "production", Label: "Production"},
					{Field: "exports", Label: "Exports"},
					{Field: "endStocks", Label: "Ending Stocks, Total"},
				},
			},
		},
	}
}

// Pages lists every sheet the engine needs from the report source.
func Pages() []string {
	pages := []string{TextPage}
	for _, schema := range Schemas() {
		pages = append(pages, schema.Page)
	}
	return pages
}

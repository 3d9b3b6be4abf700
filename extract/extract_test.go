package extract

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"wasdex/report"
)

// syntheticSheets builds a minimal but structurally faithful report for
// (year=2025, month=2): a text page with the report number and one page per
// tracked commodity.
func syntheticSheets() map[string]report.Sheet {
	text := report.Sheet{
		{"World Agricultural Supply and Demand Estimates"},
		{"WASDE - 657"},
		{"February 2025"},
	}
	corn := report.Sheet{
		{"FEED GRAINS (million metric tons)"},
		{"CORN (million bushels)"},
		{"Area Planted", 94.6, 90.6, 95.3, 95.3},
		{"Production", 15341.0, 14867.0, 16700.0, 16750.0},
		{"Ending Stocks", 1760.0, 1540.0, 1819.0, 1792.0},
		{"Avg. Farm Price", 4.20, 4.35, 4.00, 4.10},
	}
	soy := report.Sheet{
		{"SOYBEANS (million bushels)"},
		{"Production", 4162.0, 4366.0, 4300.0, 4310.0},
		{"Ending Stocks", 342.0, 316.0, 300.0, 290.0},
		{"Avg. Farm Price", 12.40, 9.95, 10.10, 10.25},
		{"SOYBEAN OIL (million pounds)"},
		{"Production", 27025.0, 28400.0, 29000.0, 29100.0},
		{"Ending stocks", 1620.0, 1500.0, 1450.0, 1440.0},
		{"SOYBEAN MEAL (thousand short tons)"},
		{"Production", 54200.0, 56800.0, 57500.0, 57600.0},
		{"Ending Stocks", 450.0, 400.0, 420.0, 410.0},
	}
	wheat := report.Sheet{
		{"WHEAT (million bushels)"},
		{"Production", 0, 0, 0, 1812.0, 0, 1971.0, 0, 0, 1930.0, 0, 1927.0},
		{"Ending Stocks", 0, 0, 0, 696.0, 0, 794.0, 0, 0, 820.0, 0, 815.0},
		{"Avg. Farm Price", 0, 0, 0, 6.96, 0, 5.52, 0, 0, 5.40, 0, 5.30},
		{"U.S. Wheat by Class 1/"},
		{"2025/26 Proj."},
		{"", "Production", 0, 750.0, 0, 480.0, 0, 335.0, 210.0, 0, 75.0},
		{"", "Exports", 0, 290.0, 0, 260.0, 0, 120.0, 175.0, 0, 20.0},
		{"", "Ending Stocks, Total", 0, 310.0, 0, 240.0, 0, 130.0, 95.0, 0, 40.0},
	}
	return map[string]report.Sheet{
		TextPage:    text,
		CornPage:    corn,
		SoybeanPage: soy,
		WheatPage:   wheat,
	}
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	result, err := Run(Input{Year: 2025, Month: 2, Sheets: syntheticSheets()})
	if err != nil {
		t.Fatalf("run extraction: %v", err)
	}
	record := result.Record

	if got := record["reportId"]; got != "WASDE-657" {
		t.Errorf("reportId = %v, want WASDE-657", got)
	}
	if got := record["reportDate"]; got != "February 2025" {
		t.Errorf("reportDate = %v, want February 2025", got)
	}
	if got := record["years"]; !reflect.DeepEqual(got, []string{"2023/24", "2024/25 Est.", "2025/26 Proj."}) {
		t.Errorf("years = %v", got)
	}
	if got := record["prevMonth"]; got != "Jan" {
		t.Errorf("prevMonth = %v, want Jan", got)
	}
	if got := record["curMonth"]; got != "Feb" {
		t.Errorf("curMonth = %v, want Feb", got)
	}

	corn := record["corn"].(report.Mapping)
	if got := corn["price"]; !reflect.DeepEqual(got, report.Series{4.20, 4.35, 4.10}) {
		t.Errorf("corn price = %v, want [4.2 4.35 4.1]", got)
	}
	if got := corn["endStocks"]; !reflect.DeepEqual(got, report.Series{1760, 1540, 1792}) {
		t.Errorf("corn endStocks = %v", got)
	}
	if got := corn["endStocksPrev"]; got != 1819.0 {
		t.Errorf("corn endStocksPrev = %v, want 1819", got)
	}

	soy := record["soybeans"].(report.Mapping)
	oil := soy["oil"].(report.Mapping)
	if got := oil["endStocks"]; !reflect.DeepEqual(got, report.Series{1620, 1500, 1440}) {
		t.Errorf("soybean oil endStocks = %v", got)
	}

	wheat := record["wheat"].(report.Mapping)
	byClass := wheat["byClass"].(report.Mapping)
	if got := byClass["production"]; !reflect.DeepEqual(got, report.Series{750, 480, 335, 210, 75}) {
		t.Errorf("wheat byClass production = %v", got)
	}
}

func TestRun_MissingRowsDegradeToZeroSeries(t *testing.T) {
	t.Parallel()

	result, err := Run(Input{Year: 2025, Month: 2, Sheets: syntheticSheets()})
	if err != nil {
		t.Fatalf("run extraction: %v", err)
	}

	// The synthetic corn page has no "Imports" row; after normalization the
	// field is still present as a three-value zero series.
	corn := result.Record["corn"].(report.Mapping)
	if got := corn["imports"]; !reflect.DeepEqual(got, report.Series{0, 0, 0}) {
		t.Fatalf("corn imports = %v, want [0 0 0]", got)
	}
	if len(result.Quality.Defaulted) == 0 {
		t.Fatalf("expected defaulted fields to be reported")
	}
}

func TestRun_MissingSheetIsFatal(t *testing.T) {
	t.Parallel()

	sheets := syntheticSheets()
	delete(sheets, CornPage)

	if _, err := Run(Input{Year: 2025, Month: 2, Sheets: sheets}); err == nil {
		t.Fatalf("expected an error for a missing report sheet")
	}
}

func TestRun_InvalidMonth(t *testing.T) {
	t.Parallel()

	if _, err := Run(Input{Year: 2025, Month: 13, Sheets: syntheticSheets()}); err == nil {
		t.Fatalf("expected an error for month 13")
	}
}

func TestRun_SerializationIsIdempotent(t *testing.T) {
	t.Parallel()

	first, err := Run(Input{Year: 2025, Month: 2, Sheets: syntheticSheets()})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Run(Input{Year: 2025, Month: 2, Sheets: syntheticSheets()})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	a, err := json.Marshal(first.Record)
	if err != nil {
		t.Fatalf("marshal first record: %v", err)
	}
	b, err := json.Marshal(second.Record)
	if err != nil {
		t.Fatalf("marshal second record: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("identical inputs must serialize identically")
	}
}

func TestScanReportID_Fallback(t *testing.T) {
	t.Parallel()

	sheet := report.Sheet{{"no report number here"}}
	if got := ScanReportID(sheet); got != "WASDE" {
		t.Fatalf("ScanReportID fallback = %q, want WASDE", got)
	}
}

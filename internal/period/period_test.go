package period

import "testing"

func TestLabels_February2025(t *testing.T) {
	t.Parallel()

	got := Labels(2025)
	want := []string{"2023/24", "2024/25 Est.", "2025/26 Proj."}
	if len(got) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMarketingYear_CenturyRollover(t *testing.T) {
	t.Parallel()

	if got := MarketingYear(2099); got != "2099/00" {
		t.Fatalf("MarketingYear(2099) = %q, want %q", got, "2099/00")
	}
}

func TestMonthAbbrevs(t *testing.T) {
	t.Parallel()

	if got := MonthAbbrev(2); got != "Feb" {
		t.Errorf("MonthAbbrev(2) = %q, want Feb", got)
	}
	if got := PrevMonthAbbrev(2); got != "Jan" {
		t.Errorf("PrevMonthAbbrev(2) = %q, want Jan", got)
	}
	if got := PrevMonthAbbrev(1); got != "Dec" {
		t.Errorf("PrevMonthAbbrev(1) = %q, want Dec (January wraps to December)", got)
	}
}

func TestReportDate(t *testing.T) {
	t.Parallel()

	if got := ReportDate(2026, 2); got != "February 2026" {
		t.Fatalf("ReportDate(2026, 2) = %q, want %q", got, "February 2026")
	}
}

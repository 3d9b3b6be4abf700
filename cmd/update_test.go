package cmd

import (
	"testing"
	"time"
)

func TestResolveReportMonth(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	if y, m := resolveReportMonth(0, 0, now); y != 2026 || m != 2 {
		t.Fatalf("defaults = %d-%d, want 2026-2", y, m)
	}
	if y, m := resolveReportMonth(2025, 0, now); y != 2025 || m != 2 {
		t.Fatalf("year override = %d-%d, want 2025-2", y, m)
	}
	if y, m := resolveReportMonth(0, 11, now); y != 2026 || m != 11 {
		t.Fatalf("month override = %d-%d, want 2026-11", y, m)
	}
	if y, m := resolveReportMonth(2025, 11, now); y != 2025 || m != 11 {
		t.Fatalf("full override = %d-%d, want 2025-11", y, m)
	}
}

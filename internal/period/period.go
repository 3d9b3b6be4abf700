package period

import "fmt"

var monthNames = []string{"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

var monthAbbrevs = []string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Valid reports whether month is a calendar month number.
func Valid(month int) bool {
	return month >= 1 && month <= 12
}

// MarketingYear formats the two-part marketing-year label for the crop year
// beginning in the given calendar year, e.g. 2025 -> "2025/26".
func MarketingYear(year int) string {
	return fmt.Sprintf("%d/%02d", year, (year+1)%100)
}

// Labels returns the three published period labels for a report requested for
// the given calendar year. The Est./Proj. suffixes are fixed to the middle
// and last slots; they are never derived from the data.
func Labels(year int) []string {
	return []string{
		MarketingYear(year - 2),
		MarketingYear(year-1) + " Est.",
		MarketingYear(year) + " Proj.",
	}
}

// MonthName returns the full month name, e.g. 2 -> "February".
func MonthName(month int) string {
	return monthNames[month]
}

// MonthAbbrev returns the short month name, e.g. 2 -> "Feb".
func MonthAbbrev(month int) string {
	return monthAbbrevs[month]
}

// PrevMonthAbbrev returns the short name of the month preceding the given
// one, wrapping January back to December.
func PrevMonthAbbrev(month int) string {
	if month == 1 {
		return monthAbbrevs[12]
	}
	return monthAbbrevs[month-1]
}

// ReportDate formats the human-readable report date, e.g. "February 2026".
func ReportDate(year, month int) string {
	return fmt.Sprintf("%s %d", MonthName(month), year)
}

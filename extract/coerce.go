package extract

import (
	"strconv"
	"strings"
)

// Num coerces a raw cell value to a number. Blank and unparseable cells
// coerce to 0; this never signals an error. Downstream code relies on that
// contract and never special-cases missing data.
func Num(cell any) float64 {
	switch v := cell.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		cleaned := strings.TrimSpace(v)
		if cleaned == "" {
			return 0
		}
		// Report cells use US thousands separators ("1,234.5").
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

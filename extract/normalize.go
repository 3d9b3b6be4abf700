package extract

import "wasdex/report"

// rawSeriesLen is the number of reporting periods in an extracted series:
// year N-2 final, year N-1 estimate, prior-month projection, current-month
// projection. Publication drops the prior-month projection.
const rawSeriesLen = 4

// Normalize converts every four-period raw series in a mapping to the
// published three-value form [s0, s1, s3], recursing through nested
// sub-mappings. Anything that is not a four-value series — class series of
// other lengths, label lists, scalars — passes through unchanged. The input
// mapping is not modified.
func Normalize(mapping report.Mapping) report.Mapping {
	result := make(report.Mapping, len(mapping))
	for key, value := range mapping {
		switch v := value.(type) {
		case report.Mapping:
			result[key] = Normalize(v)
		case report.Series:
			if len(v) == rawSeriesLen {
				result[key] = report.Series{v[0], v[1], v[3]}
			} else {
				result[key] = append(report.Series(nil), v...)
			}
		default:
			result[key] = value
		}
	}
	return result
}

// PreviousProjection returns the prior-month projection (index 2) of a raw
// four-period series, before normalization drops it. Used only for headline
// metrics (ending stocks) to support month-over-month comparison; missing or
// malformed fields yield 0.
func PreviousProjection(mapping report.Mapping, field string) float64 {
	series, ok := mapping[field].(report.Series)
	if !ok || len(series) != rawSeriesLen {
		return 0
	}
	return series[2]
}

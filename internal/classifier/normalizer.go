package classifier

import "fieldscope/internal/taxonomy"

// Normalize enforces the count and sum invariants on parsed pairs: truncate
// to n, redistribute equally when no percentages were reported, otherwise
// rescale so the total is exactly 100, and pad to n with zero-percent
// placeholder entries. Pure function; the post-pad sum stays 100.
func Normalize(fields []RawField, n int) []RawField {
	if n <= 0 || len(fields) == 0 {
		return fields
	}
	if len(fields) > n {
		fields = fields[:n]
	}

	out := make([]RawField, len(fields))
	copy(out, fields)

	var total float64
	for i := range out {
		if out[i].Percentage < 0 {
			out[i].Percentage = 0
		}
		total += out[i].Percentage
	}
	if total == 0 {
		equal := 100.0 / float64(len(out))
		for i := range out {
			out[i].Percentage = equal
		}
	} else {
		scale := 100.0 / total
		for i := range out {
			out[i].Percentage *= scale
		}
	}

	for len(out) < n {
		out = append(out, RawField{Label: taxonomy.PlaceholderCode, Percentage: 0})
	}
	return out
}

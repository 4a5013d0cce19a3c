package metrics

// Percent returns used/total*100, or 0 when total is 0.
func Percent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

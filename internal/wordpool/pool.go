package wordpool

const (
	// widenBelow is the pool size under which the previous level is added.
	widenBelow = 50
	// widenFurtherBelow is the pool size under which the level two steps down is added.
	widenFurtherBelow = 100
)

// Select returns the candidate entries for level l.
//
// The pool is every entry of level l. If it has fewer than 50 entries and l > 1,
// entries of level l-1 are added; if it is then still under 100 entries and l > 2,
// entries of level l-2 are added too. The input slice is not modified.
func Select(entries []WordEntry, l Level) []WordEntry {
	pool := filterLevel(entries, l)
	if len(pool) >= widenBelow || l <= MinLevel {
		return pool
	}

	pool = append(pool, filterLevel(entries, l-1)...)
	if len(pool) < widenFurtherBelow && l > MinLevel+1 {
		pool = append(pool, filterLevel(entries, l-2)...)
	}
	return pool
}

func filterLevel(entries []WordEntry, l Level) []WordEntry {
	var result []WordEntry
	for _, e := range entries {
		if e.Level == l {
			result = append(result, e)
		}
	}
	return result
}

// CountByLevel returns how many entries each level has.
func CountByLevel(entries []WordEntry) map[Level]int {
	counts := make(map[Level]int)
	for _, e := range entries {
		counts[e.Level]++
	}
	return counts
}

package matching

import (
	"fmt"
	"math"
	"time"

	"baxpro/internal/domain/entity"
)

// NoMatches is stored as the summary when recomputation finds nothing.
const NoMatches = "No matches"

const summaryMonth = 30 * 24 * time.Hour

// MonthsSince counts 30-day months between earliest and now, rounded up, at least 1.
func MonthsSince(earliest, now time.Time) int {
	elapsed := now.Sub(earliest)
	months := int(math.Ceil(float64(elapsed) / float64(summaryMonth)))

	return max(1, months)
}

// Summary renders the cached alert summary, e.g. "3 matches in the last 4 months".
func Summary(matched int, earliest, now time.Time) string {
	if matched <= 0 {
		return NoMatches
	}

	months := MonthsSince(earliest, now)
	s := fmt.Sprintf("%d %s in the last %d %s",
		matched, plural(matched, "match", "matches"),
		months, plural(months, "month", "months"))

	return Truncate(s)
}

// Truncate cuts s to the stored summary width.
func Truncate(s string) string {
	if len(s) <= entity.MaxSummaryLength {
		return s
	}

	return s[:entity.MaxSummaryLength]
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}

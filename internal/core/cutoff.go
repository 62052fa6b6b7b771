package core

import "time"

// ResolveCutoff computes the as-of date for a requested fiscal year.
// A year before the current one is closed: its final state is December 31.
// The current year — and, deliberately, any future year — is open and
// reports the running position as of today.
//
// The closed-year cutoff is midnight of December 31, which is inclusive
// because posting dates are calendar dates at midnight too (see
// Posting.Date); a December 31 posting always satisfies date ≤ cutoff.
func ResolveCutoff(year int, now time.Time) time.Time {
	if year < now.Year() {
		return time.Date(year, time.December, 31, 0, 0, 0, 0, now.Location())
	}
	return now
}

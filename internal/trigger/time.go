package trigger

import "time"

// timeUTC returns time.UTC; split out so the cron scheduler's location is
// explicit at the call site.
func timeUTC() *time.Location {
	return time.UTC
}

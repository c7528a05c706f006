package model

import "time"

// TimeBucket is a fixed calendar window (week or month) of activity
// records. Start and End are UTC midnights; for weekly buckets
// End = Start + 6 days, for monthly buckets End is the last day of the
// month. Buckets are always returned sorted ascending by Start.
type TimeBucket struct {
	Key     string
	Start   time.Time
	End     time.Time
	Records []RawRecord
	Count   int
}

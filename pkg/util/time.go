package util

import "time"

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
	MonthFormat    = "2006-01"
)

// MillisecondsToTime converts an epoch-milliseconds value to a UTC time.
func MillisecondsToTime(ms int64) time.Time {
	seconds := ms / 1000
	nanoseconds := (ms % 1000) * 1000000
	return time.Unix(seconds, nanoseconds).UTC()
}

// SecondsToTime converts an epoch-seconds value to a UTC time.
func SecondsToTime(s int64) time.Time {
	return time.Unix(s, 0).UTC()
}

// StrToDate parses a DateFormat string as UTC midnight.
func StrToDate(str string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, str, time.UTC)
}

// DateToStr formats a time as DateFormat in UTC.
func DateToStr(dt time.Time) string {
	return dt.UTC().Format(DateFormat)
}

// DateTimeToStr formats a time as DateTimeFormat in UTC.
func DateTimeToStr(dt time.Time) string {
	return dt.UTC().Format(DateTimeFormat)
}

// StartOfDay truncates a time to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

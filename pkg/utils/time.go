package utils

import "time"

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// NowMillis returns the current time in Unix milliseconds, the
// resolution used in message sort keys.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ParseRFC3339 parses a time string in RFC3339 format
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

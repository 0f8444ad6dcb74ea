package chrome

import (
	"strconv"
	"time"
)

// The store encodes timestamps as integer microseconds since 1601-01-01.
const epochOffsetMicros = 11644473600000000

// NowTimestamp returns the current moment in the store's 1601-epoch
// microsecond convention.
func NowTimestamp() string {
	return FormatTimestamp(time.Now())
}

// FormatTimestamp converts a time to the store's 1601-epoch convention.
func FormatTimestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli()*1000+epochOffsetMicros, 10)
}

// TimestampToUnix converts a store timestamp to Unix seconds. Empty, zero
// or unparseable values yield 0.
func TimestampToUnix(ts string) int64 {
	v, err := strconv.ParseInt(ts, 10, 64)
	if err != nil || v <= epochOffsetMicros {
		return 0
	}
	return (v - epochOffsetMicros) / 1e6
}

package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// LocalTZ fixes calendar dates to the partner organizations' locale.
var LocalTZ = time.FixedZone("UTC+7", 7*60*60)

func LocalNow() time.Time {
	return time.Now().In(LocalTZ)
}

// ParseDate reads a yyyy-MM-dd calendar date in the service timezone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, LocalTZ)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func MustParseDate(dateStr string) time.Time {
	t, _ := time.ParseInLocation(DateLayout, dateStr, LocalTZ)
	return t
}

package core

import (
	"fmt"
	"strconv"
	"strings"

	"attendo.app/attendo/model"
)

// ParsedTime is the result of reading a textual clock value.
type ParsedTime struct {
	Time *model.TimeOfDay
	// Inferred marks a low-confidence parse: the input carried no AM/PM
	// marker and the session hint decided the period. Callers should log
	// these for audit rather than silently trusting the hint.
	Inferred bool
}

// ParseClockTime normalizes a textual time value into a canonical 24-hour
// pair. The input may carry a case-insensitive AM/PM marker; when present it
// is authoritative (12 AM -> 0:00, 12 PM -> 12:00, 1-11 PM -> +12). Without a
// marker the afternoon hint shifts hours 1-11 by 12; hour 12 is left as noon.
//
// Empty or placeholder input ("--:--") yields a nil Time and no error, which
// callers must treat as "not set". Anything else that cannot be split into a
// valid hour (0-12) and minute (0-59) fails with ErrMalformedTime.
func ParseClockTime(raw string, afternoon bool) (ParsedTime, error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "--:--" {
		return ParsedTime{}, nil
	}

	upper := strings.ToUpper(s)
	marker := ""
	for _, m := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, m) {
			marker = m
			s = strings.TrimSpace(s[:len(s)-2])
			break
		}
	}

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return ParsedTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}

	hour, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	minute, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || hour < 0 || hour > 12 || minute < 0 || minute > 59 {
		return ParsedTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}

	inferred := false
	switch marker {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour >= 1 && hour <= 11 {
			hour += 12
		}
	default:
		// No marker: the session hint decides, except hour 12 which stays
		// noon because the intent is ambiguous.
		if afternoon {
			if hour >= 1 && hour <= 11 {
				hour += 12
			}
			inferred = true
		}
	}

	return ParsedTime{Time: &model.TimeOfDay{Hour: hour, Minute: minute}, Inferred: inferred}, nil
}

package core

import "attendo.app/attendo/model"

// Day window for timeline rendering, minutes of day.
const (
	DayWindowStart = 7 * 60  // 07:00
	DayWindowEnd   = 24 * 60 // midnight
)

// Interval is one rendered block of a day's timeline.
type Interval struct {
	StartMinute int           `json:"startMinute"`
	EndMinute   int           `json:"endMinute"`
	Session     model.Session `json:"session"`
}

// ProjectTimeline converts a record's completed sessions into zero, one or
// two non-overlapping intervals clamped to the day window. Pure function for
// display consumers; the record is never mutated.
func ProjectTimeline(rec *model.AttendanceRecord) []Interval {
	intervals := make([]Interval, 0, 2)

	if iv, ok := sessionInterval(rec.AMTimeIn, rec.AMTimeOut, model.SessionAM); ok {
		intervals = append(intervals, iv)
	}
	if iv, ok := sessionInterval(rec.PMTimeIn, rec.PMTimeOut, model.SessionPM); ok {
		// Trim any overlap in favour of the earlier session.
		if len(intervals) > 0 && iv.StartMinute < intervals[0].EndMinute {
			iv.StartMinute = intervals[0].EndMinute
		}
		if iv.StartMinute < iv.EndMinute {
			intervals = append(intervals, iv)
		}
	}

	return intervals
}

func sessionInterval(in, out *model.TimeOfDay, tag model.Session) (Interval, bool) {
	if in == nil || out == nil {
		return Interval{}, false
	}
	start, end := in.MinuteOfDay(), out.MinuteOfDay()
	if start < DayWindowStart {
		start = DayWindowStart
	}
	if end > DayWindowEnd {
		end = DayWindowEnd
	}
	if start >= end {
		return Interval{}, false
	}
	return Interval{StartMinute: start, EndMinute: end, Session: tag}, true
}

package core

import (
	"testing"

	"attendo.app/attendo/model"
	"github.com/stretchr/testify/assert"
)

func TestProjectTimelineFullDay(t *testing.T) {
	rec := newRecord()
	rec.AMTimeIn, rec.AMTimeOut = tod(8, 0), tod(12, 0)
	rec.PMTimeIn, rec.PMTimeOut = tod(13, 0), tod(17, 0)

	intervals := ProjectTimeline(rec)
	assert.Equal(t, []Interval{
		{StartMinute: 480, EndMinute: 720, Session: model.SessionAM},
		{StartMinute: 780, EndMinute: 1020, Session: model.SessionPM},
	}, intervals)
}

func TestProjectTimelineIncompleteSessionsDropped(t *testing.T) {
	rec := newRecord()
	rec.AMTimeIn = tod(8, 0) // no clock-out yet

	assert.Empty(t, ProjectTimeline(rec))
}

func TestProjectTimelineClampsToWindow(t *testing.T) {
	rec := newRecord()
	rec.AMTimeIn, rec.AMTimeOut = tod(6, 0), tod(11, 0)

	intervals := ProjectTimeline(rec)
	assert.Len(t, intervals, 1)
	assert.Equal(t, DayWindowStart, intervals[0].StartMinute)
	assert.Equal(t, 660, intervals[0].EndMinute)
}

func TestProjectTimelineOverlapTrimmed(t *testing.T) {
	rec := newRecord()
	rec.AMTimeIn, rec.AMTimeOut = tod(8, 0), tod(13, 30)
	rec.PMTimeIn, rec.PMTimeOut = tod(13, 0), tod(17, 0)

	intervals := ProjectTimeline(rec)
	assert.Len(t, intervals, 2)
	assert.Equal(t, intervals[0].EndMinute, intervals[1].StartMinute)
}

func TestProjectTimelineIsIdempotent(t *testing.T) {
	rec := newRecord()
	rec.AMTimeIn, rec.AMTimeOut = tod(8, 0), tod(12, 0)

	first := ProjectTimeline(rec)
	second := ProjectTimeline(rec)
	assert.Equal(t, first, second)
	assert.Equal(t, tod(8, 0), rec.AMTimeIn)
}

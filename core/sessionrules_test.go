package core

import (
	"testing"

	"attendo.app/attendo/model"
	"attendo.app/attendo/utils"
	"github.com/stretchr/testify/assert"
)

func tod(h, m int) *model.TimeOfDay {
	return &model.TimeOfDay{Hour: h, Minute: m}
}

func statusPtr(s model.SessionStatus) *model.SessionStatus {
	return &s
}

func newRecord() *model.AttendanceRecord {
	return &model.AttendanceRecord{
		ID:                 "rec-1",
		SubjectID:          7,
		OrganizationID:     3,
		Date:               "2026-03-02",
		AMStatus:           model.StatusNotMarked,
		PMStatus:           model.StatusNotMarked,
		OverallStatus:      model.StatusNotMarked,
		VerificationStatus: model.VerificationPending,
	}
}

func TestApplySessionUpdateMorningOnly(t *testing.T) {
	rec := newRecord()

	changed, err := ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionAM,
		TimeIn:  tod(8, 0),
		TimeOut: tod(12, 0),
	})
	assert.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, model.StatusPresent, rec.AMStatus)
	assert.Equal(t, model.StatusNotMarked, rec.PMStatus)
	assert.Equal(t, model.StatusPresent, rec.OverallStatus)
	assert.Equal(t, 4.0, rec.TotalHours)
}

func TestApplySessionUpdateFullDay(t *testing.T) {
	rec := newRecord()

	_, err := ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionAM,
		TimeIn:  tod(8, 0),
		TimeOut: tod(12, 0),
	})
	assert.NoError(t, err)

	_, err = ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionPM,
		TimeIn:  tod(13, 0),
		TimeOut: tod(17, 0),
	})
	assert.NoError(t, err)

	assert.Equal(t, 8.0, rec.TotalHours)
	assert.Equal(t, model.StatusPresent, rec.OverallStatus)
	// AM fields survive the PM write untouched.
	assert.Equal(t, tod(8, 0), rec.AMTimeIn)
	assert.Equal(t, tod(12, 0), rec.AMTimeOut)
}

func TestApplySessionUpdateTerminalStatusRejectsTimes(t *testing.T) {
	rec := newRecord()

	changed, err := ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionPM,
		Status:  statusPtr(model.StatusAbsent),
	})
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.StatusAbsent, rec.PMStatus)

	_, err = ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionPM,
		TimeIn:  tod(13, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidSessionTransition)
	// Original record unchanged by the rejected write.
	assert.Nil(t, rec.PMTimeIn)
	assert.Equal(t, model.StatusAbsent, rec.PMStatus)
}

func TestApplySessionUpdateLatePreserved(t *testing.T) {
	rec := newRecord()

	_, err := ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionAM,
		Status:  statusPtr(model.StatusLate),
	})
	assert.NoError(t, err)

	_, err = ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionAM,
		TimeIn:  tod(8, 30),
		TimeOut: tod(12, 0),
	})
	assert.NoError(t, err)

	assert.Equal(t, model.StatusLate, rec.AMStatus)
	assert.Equal(t, model.StatusLate, rec.OverallStatus)
}

func TestApplySessionUpdateNoOpIsNotAChange(t *testing.T) {
	rec := newRecord()

	changed, err := ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionAM,
		TimeIn:  tod(8, 0),
	})
	assert.NoError(t, err)
	assert.True(t, changed)

	// Same value again: not a material change.
	changed, err = ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionAM,
		TimeIn:  tod(8, 0),
	})
	assert.NoError(t, err)
	assert.False(t, changed)
}

func TestMaterialChangeVoidsVerification(t *testing.T) {
	rec := newRecord()
	_, err := ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionAM,
		TimeIn:  tod(8, 0),
		TimeOut: tod(12, 0),
	})
	assert.NoError(t, err)

	verifier := int64(42)
	now := utils.LocalNow()
	rec.VerificationStatus = model.VerificationAccepted
	rec.VerifiedBy = &verifier
	rec.VerifiedAt = &now

	changed, err := ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionAM,
		TimeOut: tod(11, 30),
	})
	assert.NoError(t, err)
	assert.True(t, changed)

	ResetVerification(rec)
	assert.Equal(t, model.VerificationPending, rec.VerificationStatus)
	assert.Nil(t, rec.VerifiedBy)
	assert.Nil(t, rec.VerifiedAt)
	assert.Equal(t, 3.5, rec.TotalHours)
}

func TestSessionHours(t *testing.T) {
	tests := []struct {
		name    string
		in, out *model.TimeOfDay
		hours   float64
		ok      bool
	}{
		{
			name:  "Regular morning",
			in:    tod(8, 0),
			out:   tod(12, 0),
			hours: 4.0,
			ok:    true,
		},
		{
			name:  "Half hour",
			in:    tod(13, 15),
			out:   tod(13, 45),
			hours: 0.5,
			ok:    true,
		},
		{
			name:  "Out before in clamps to zero",
			in:    tod(12, 0),
			out:   tod(8, 0),
			hours: 0,
			ok:    true,
		},
		{
			name: "Missing out",
			in:   tod(8, 0),
		},
		{
			name: "Missing both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := SessionHours(tt.in, tt.out)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.hours, h)
		})
	}
}

func TestTotalHoursAlwaysRecomputed(t *testing.T) {
	rec := newRecord()
	rec.TotalHours = 99 // caller-supplied values are never trusted

	_, err := ApplySessionUpdate(rec, SessionUpdate{
		Session: model.SessionAM,
		TimeIn:  tod(9, 0),
		TimeOut: tod(11, 30),
	})
	assert.NoError(t, err)
	assert.Equal(t, 2.5, rec.TotalHours)
}

func TestResolveOverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		am, pm   model.SessionStatus
		expected model.SessionStatus
	}{
		{
			name:     "Both absent",
			am:       model.StatusAbsent,
			pm:       model.StatusAbsent,
			expected: model.StatusAbsent,
		},
		{
			name:     "Present and not marked",
			am:       model.StatusPresent,
			pm:       model.StatusNotMarked,
			expected: model.StatusPresent,
		},
		{
			name:     "Both present",
			am:       model.StatusPresent,
			pm:       model.StatusPresent,
			expected: model.StatusPresent,
		},
		{
			name:     "Late wins over present",
			am:       model.StatusPresent,
			pm:       model.StatusLate,
			expected: model.StatusLate,
		},
		{
			name:     "Leave with counterpart not marked",
			am:       model.StatusLeave,
			pm:       model.StatusNotMarked,
			expected: model.StatusLeave,
		},
		{
			name:     "Sick afternoon",
			am:       model.StatusNotMarked,
			pm:       model.StatusSick,
			expected: model.StatusSick,
		},
		{
			name:     "Leave paired with absent falls through",
			am:       model.StatusLeave,
			pm:       model.StatusAbsent,
			expected: model.StatusNotMarked,
		},
		{
			name:     "Present paired with absent falls through",
			am:       model.StatusPresent,
			pm:       model.StatusAbsent,
			expected: model.StatusNotMarked,
		},
		{
			name:     "Nothing marked",
			am:       model.StatusNotMarked,
			pm:       model.StatusNotMarked,
			expected: model.StatusNotMarked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveOverallStatus(tt.am, tt.pm))
		})
	}
}

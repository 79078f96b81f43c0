package core

import (
	"fmt"
	"math"

	"attendo.app/attendo/model"
)

// SessionUpdate is one session-scoped mutation of a day's record. Nil fields
// are left untouched; non-nil fields replace the stored value.
type SessionUpdate struct {
	Session model.Session
	TimeIn  *model.TimeOfDay
	TimeOut *model.TimeOfDay
	// Status is an explicit assertion (late, absent, leave, sick). Presence
	// statuses are otherwise derived from the time endpoints, never asserted.
	Status *model.SessionStatus
	Notes  *string
}

// ApplySessionUpdate mutates only the named session's fields, re-derives the
// per-session and overall statuses and the hour total, and reports whether
// the update changed any underlying session fact (which obliges the caller to
// reset verification). The other session's fields are never written.
func ApplySessionUpdate(rec *model.AttendanceRecord, upd SessionUpdate) (changed bool, err error) {
	if !upd.Session.Valid() {
		return false, fmt.Errorf("unknown session %q", upd.Session)
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return false, fmt.Errorf("unknown session status %q", *upd.Status)
	}

	current := rec.SessionStatusOf(upd.Session)
	if current.Terminal() && (upd.TimeIn != nil || upd.TimeOut != nil) {
		// Clearing a terminal status is an administrative override outside
		// this engine; until then the session accepts no time entries.
		return false, fmt.Errorf("%w: session %s is %s", ErrInvalidSessionTransition, upd.Session, current)
	}

	in, out := rec.SessionTimes(upd.Session)
	if upd.TimeIn != nil && !equalTime(in, upd.TimeIn) {
		in = upd.TimeIn
		changed = true
	}
	if upd.TimeOut != nil && !equalTime(out, upd.TimeOut) {
		out = upd.TimeOut
		changed = true
	}

	status := deriveSessionStatus(in, out, current)
	if upd.Status != nil && *upd.Status != current {
		status = *upd.Status
		changed = true
	}

	if upd.Session == model.SessionAM {
		rec.AMTimeIn, rec.AMTimeOut, rec.AMStatus = in, out, status
	} else {
		rec.PMTimeIn, rec.PMTimeOut, rec.PMStatus = in, out, status
	}
	if upd.Notes != nil {
		rec.Notes = *upd.Notes
	}

	rec.OverallStatus = ResolveOverallStatus(rec.AMStatus, rec.PMStatus)
	rec.TotalHours = TotalHours(rec)
	return changed, nil
}

// deriveSessionStatus keeps explicit assertions (terminal statuses and late)
// and otherwise derives presence from the recorded endpoints. "Late" is an
// upstream assertion, not a clock-threshold computation.
func deriveSessionStatus(in, out *model.TimeOfDay, current model.SessionStatus) model.SessionStatus {
	if current.Terminal() {
		return current
	}
	if in == nil && out == nil {
		return current
	}
	if current == model.StatusLate {
		return model.StatusLate
	}
	return model.StatusPresent
}

// SessionHours returns the session duration in hours, clamped to zero, and
// false when either endpoint is missing.
func SessionHours(in, out *model.TimeOfDay) (float64, bool) {
	if in == nil || out == nil {
		return 0, false
	}
	minutes := out.MinuteOfDay() - in.MinuteOfDay()
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) / 60, true
}

// TotalHours sums the defined session durations, rounded to the nearest
// minute. The stored value is always recomputed from the four endpoints.
func TotalHours(rec *model.AttendanceRecord) float64 {
	total := 0.0
	if h, ok := SessionHours(rec.AMTimeIn, rec.AMTimeOut); ok {
		total += h
	}
	if h, ok := SessionHours(rec.PMTimeIn, rec.PMTimeOut); ok {
		total += h
	}
	return math.Round(total*60) / 60
}

// ResolveOverallStatus folds the two session statuses into the day summary.
// Resolution order, first match wins:
//  1. both sessions absent -> absent
//  2. a present/late session paired with not_marked or present/late ->
//     late if either is late, else present
//  3. a leave or sick session whose counterpart is not absent -> that status
//  4. not_marked
func ResolveOverallStatus(am, pm model.SessionStatus) model.SessionStatus {
	if am == model.StatusAbsent && pm == model.StatusAbsent {
		return model.StatusAbsent
	}

	attended := func(s model.SessionStatus) bool {
		return s == model.StatusPresent || s == model.StatusLate
	}
	if (attended(am) && (pm == model.StatusNotMarked || attended(pm))) ||
		(attended(pm) && (am == model.StatusNotMarked || attended(am))) {
		if am == model.StatusLate || pm == model.StatusLate {
			return model.StatusLate
		}
		return model.StatusPresent
	}

	if (am == model.StatusLeave || am == model.StatusSick) && pm != model.StatusAbsent {
		return am
	}
	if (pm == model.StatusLeave || pm == model.StatusSick) && am != model.StatusAbsent {
		return pm
	}

	return model.StatusNotMarked
}

// ResetVerification returns a record to pending after a material change: the
// verified facts changed underneath the verifier, so the decision is void.
func ResetVerification(rec *model.AttendanceRecord) {
	rec.VerificationStatus = model.VerificationPending
	rec.VerifiedBy = nil
	rec.VerifiedAt = nil
}

func equalTime(a, b *model.TimeOfDay) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

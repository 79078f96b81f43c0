package model

type SessionStatus string

const (
	StatusNotMarked SessionStatus = "not_marked"
	StatusPresent   SessionStatus = "present"
	StatusAbsent    SessionStatus = "absent"
	StatusLate      SessionStatus = "late"
	StatusLeave     SessionStatus = "leave"
	StatusSick      SessionStatus = "sick"
)

// Terminal statuses are asserted, no times expected. Writing a time into a
// session holding one of these is rejected until the status is cleared.
func (s SessionStatus) Terminal() bool {
	return s == StatusAbsent || s == StatusLeave || s == StatusSick
}

func (s SessionStatus) Valid() bool {
	switch s {
	case StatusNotMarked, StatusPresent, StatusAbsent, StatusLate, StatusLeave, StatusSick:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationAccepted VerificationStatus = "accepted"
	VerificationDenied   VerificationStatus = "denied"
)

type Session string

const (
	SessionAM Session = "am"
	SessionPM Session = "pm"
)

func (s Session) Valid() bool {
	return s == SessionAM || s == SessionPM
}

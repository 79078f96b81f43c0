package model

import "time"

// AttendanceRecord is the single per-intern-per-date attendance entity. Both
// daily sessions live on the one row so a PM update can never erase AM data
// as long as writers touch only their own session's columns.
type AttendanceRecord struct {
	ID             string `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	SubjectID      int64  `gorm:"column:subject_id;not null;uniqueIndex:idx_subject_org_date,priority:1" json:"subjectId"`
	OrganizationID int64  `gorm:"column:organization_id;not null;uniqueIndex:idx_subject_org_date,priority:2" json:"organizationId"`
	Date           string `gorm:"column:date;type:date;not null;uniqueIndex:idx_subject_org_date,priority:3" json:"date"`

	AMTimeIn  *TimeOfDay `gorm:"column:am_time_in;type:varchar(5)" json:"amTimeIn"`
	AMTimeOut *TimeOfDay `gorm:"column:am_time_out;type:varchar(5)" json:"amTimeOut"`
	PMTimeIn  *TimeOfDay `gorm:"column:pm_time_in;type:varchar(5)" json:"pmTimeIn"`
	PMTimeOut *TimeOfDay `gorm:"column:pm_time_out;type:varchar(5)" json:"pmTimeOut"`

	AMStatus      SessionStatus `gorm:"column:am_status;type:varchar(20);not null;default:'not_marked'" json:"amStatus"`
	PMStatus      SessionStatus `gorm:"column:pm_status;type:varchar(20);not null;default:'not_marked'" json:"pmStatus"`
	OverallStatus SessionStatus `gorm:"column:overall_status;type:varchar(20);not null;default:'not_marked'" json:"overallStatus"`

	TotalHours float64 `gorm:"column:total_hours;type:decimal(10,2)" json:"totalHours"`
	Notes      string  `gorm:"column:notes;type:text" json:"notes"`

	VerificationStatus  VerificationStatus `gorm:"column:verification_status;type:varchar(20);not null;default:'pending'" json:"verificationStatus"`
	VerifiedBy          *int64             `gorm:"column:verified_by" json:"verifiedBy"`
	VerifiedAt          *time.Time         `gorm:"column:verified_at" json:"verifiedAt"`
	VerificationRemarks *string            `gorm:"column:verification_remarks;type:text" json:"verificationRemarks"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// SessionTimes returns the in/out pair for the named session.
func (r *AttendanceRecord) SessionTimes(s Session) (in, out *TimeOfDay) {
	if s == SessionAM {
		return r.AMTimeIn, r.AMTimeOut
	}
	return r.PMTimeIn, r.PMTimeOut
}

// SessionStatusOf returns the stored status for the named session.
func (r *AttendanceRecord) SessionStatusOf(s Session) SessionStatus {
	if s == SessionAM {
		return r.AMStatus
	}
	return r.PMStatus
}

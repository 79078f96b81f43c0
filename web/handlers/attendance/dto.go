package attendance

import (
	"time"

	"attendo.app/attendo/model"
	web "attendo.app/attendo/web/common"
)

// SessionUpsertDTO is one clock-in/clock-out/status assertion for a single
// session. Times arrive as text ("08:00 AM", or "08:00" plus the session
// hint); absent fields leave the stored values untouched.
type SessionUpsertDTO struct {
	OrganizationID int64   `json:"organizationId" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	Session        string  `json:"session" binding:"required,oneof=am pm"`
	TimeIn         *string `json:"timeIn"`
	TimeOut        *string `json:"timeOut"`
	Status         *string `json:"status" binding:"omitempty,oneof=late absent leave sick"`
	Notes          *string `json:"notes"`
}

type VerifyDTO struct {
	Decision string  `json:"decision" binding:"required,oneof=accepted denied"`
	Remarks  *string `json:"remarks"`
}

type AnnotateDTO struct {
	Remarks *string `json:"remarks"`
}

type SearchParams struct {
	SubjectID      int64         `json:"subjectId" binding:"required"`
	OrganizationID int64         `json:"organizationId" binding:"required"`
	StartDate      *web.DateOnly `json:"startDate" binding:"required"`
	EndDate        *web.DateOnly `json:"endDate" binding:"required"`
}

type RecordDTO struct {
	ID             string `json:"id"`
	SubjectID      int64  `json:"subjectId"`
	OrganizationID int64  `json:"organizationId"`
	Date           string `json:"date"`

	AMTimeIn  *model.TimeOfDay `json:"amTimeIn"`
	AMTimeOut *model.TimeOfDay `json:"amTimeOut"`
	PMTimeIn  *model.TimeOfDay `json:"pmTimeIn"`
	PMTimeOut *model.TimeOfDay `json:"pmTimeOut"`

	AMStatus      model.SessionStatus `json:"amStatus"`
	PMStatus      model.SessionStatus `json:"pmStatus"`
	OverallStatus model.SessionStatus `json:"overallStatus"`

	TotalHours float64 `json:"totalHours"`
	Notes      string  `json:"notes"`

	VerificationStatus  model.VerificationStatus `json:"verificationStatus"`
	VerifiedBy          *int64                   `json:"verifiedBy"`
	VerifiedAt          *time.Time               `json:"verifiedAt"`
	VerificationRemarks *string                  `json:"verificationRemarks"`
}

func toRecordDTO(r model.AttendanceRecord) RecordDTO {
	return RecordDTO{
		ID:                  r.ID,
		SubjectID:           r.SubjectID,
		OrganizationID:      r.OrganizationID,
		Date:                r.Date,
		AMTimeIn:            r.AMTimeIn,
		AMTimeOut:           r.AMTimeOut,
		PMTimeIn:            r.PMTimeIn,
		PMTimeOut:           r.PMTimeOut,
		AMStatus:            r.AMStatus,
		PMStatus:            r.PMStatus,
		OverallStatus:       r.OverallStatus,
		TotalHours:          r.TotalHours,
		Notes:               r.Notes,
		VerificationStatus:  r.VerificationStatus,
		VerifiedBy:          r.VerifiedBy,
		VerifiedAt:          r.VerifiedAt,
		VerificationRemarks: r.VerificationRemarks,
	}
}

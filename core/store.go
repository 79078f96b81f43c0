package core

import (
	"errors"
	"fmt"

	"attendo.app/attendo/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertSessionParams identifies the day being written and carries the
// session-scoped mutation.
type UpsertSessionParams struct {
	SubjectID      int64
	OrganizationID int64
	Date           string // 2006-01-02
	Update         SessionUpdate
}

// UpsertSession creates the day's record on first write and applies a
// session-scoped update otherwise. The row is locked for the duration of the
// transaction, so concurrent writes to the same session serialize to the last
// applied one, while AM and PM writers can never clobber each other because
// each touches only its own columns.
//
// Any material change to session facts resets the verification back to
// pending and clears the verifier identity.
func UpsertSession(db *gorm.DB, p UpsertSessionParams) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureRecord(tx, p.SubjectID, p.OrganizationID, p.Date); err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("subject_id = ? AND organization_id = ? AND date = ?", p.SubjectID, p.OrganizationID, p.Date).
			Take(&rec).Error; err != nil {
			return fmt.Errorf("failed to load attendance record: %w", err)
		}

		changed, err := ApplySessionUpdate(&rec, p.Update)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"overall_status": rec.OverallStatus,
			"total_hours":    rec.TotalHours,
			"notes":          rec.Notes,
		}
		if p.Update.Session == model.SessionAM {
			updates["am_time_in"] = rec.AMTimeIn
			updates["am_time_out"] = rec.AMTimeOut
			updates["am_status"] = rec.AMStatus
		} else {
			updates["pm_time_in"] = rec.PMTimeIn
			updates["pm_time_out"] = rec.PMTimeOut
			updates["pm_status"] = rec.PMStatus
		}
		if changed {
			ResetVerification(&rec)
			updates["verification_status"] = rec.VerificationStatus
			updates["verified_by"] = nil
			updates["verified_at"] = nil
		}

		if err := tx.Model(&model.AttendanceRecord{}).Where("id = ?", rec.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// ensureRecord makes the creation moment explicit: first write of a day
// inserts the keyed row with defaults, concurrent creators fall through to
// the locked read.
func ensureRecord(tx *gorm.DB, subjectID, organizationID int64, date string) error {
	rec := model.AttendanceRecord{
		ID:                 uuid.NewString(),
		SubjectID:          subjectID,
		OrganizationID:     organizationID,
		Date:               date,
		AMStatus:           model.StatusNotMarked,
		PMStatus:           model.StatusNotMarked,
		OverallStatus:      model.StatusNotMarked,
		VerificationStatus: model.VerificationPending,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subject_id"}, {Name: "organization_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to ensure attendance record: %w", err)
	}
	return nil
}

// GetRecord loads one record by id.
func GetRecord(db *gorm.DB, id string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	if err := db.Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
		}
		return nil, err
	}
	return &rec, nil
}

// GetBySubjectAndRange returns a subject's records within the inclusive date
// range, newest first. Used by history views.
func GetBySubjectAndRange(db *gorm.DB, subjectID, organizationID int64, dateFrom, dateTo string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	if err := db.
		Where("subject_id = ? AND organization_id = ? AND date BETWEEN ? AND ?", subjectID, organizationID, dateFrom, dateTo).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}
	return records, nil
}

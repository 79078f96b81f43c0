package core

import (
	"errors"
	"fmt"
	"time"

	"attendo.app/attendo/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Verify records a verifier's decision on a day's record. Re-verification is
// allowed from any state: a verifier may change their mind without any time
// facts having changed. Remarks are overwritten, not appended; passing nil
// clears any prior remarks.
func Verify(db *gorm.DB, recordID string, verifierID int64, decision model.VerificationStatus, remarks *string, now time.Time) (*model.AttendanceRecord, error) {
	if decision != model.VerificationAccepted && decision != model.VerificationDenied {
		return nil, fmt.Errorf("invalid verification decision %q", decision)
	}

	var rec model.AttendanceRecord
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockRecord(tx, recordID, &rec); err != nil {
			return err
		}

		rec.VerificationStatus = decision
		rec.VerifiedBy = &verifierID
		rec.VerifiedAt = &now
		rec.VerificationRemarks = remarks

		return tx.Model(&model.AttendanceRecord{}).Where("id = ?", rec.ID).Updates(map[string]interface{}{
			"verification_status":  rec.VerificationStatus,
			"verified_by":          rec.VerifiedBy,
			"verified_at":          rec.VerifiedAt,
			"verification_remarks": rec.VerificationRemarks,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Annotate replaces the verification remarks without touching the decision.
func Annotate(db *gorm.DB, recordID string, remarks *string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockRecord(tx, recordID, &rec); err != nil {
			return err
		}

		rec.VerificationRemarks = remarks
		return tx.Model(&model.AttendanceRecord{}).Where("id = ?", rec.ID).
			Update("verification_remarks", rec.VerificationRemarks).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func lockRecord(tx *gorm.DB, recordID string, rec *model.AttendanceRecord) error {
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", recordID).Take(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
		}
		return err
	}
	return nil
}

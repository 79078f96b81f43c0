package report

import (
	"fmt"

	"attendo.app/attendo/model"
	"attendo.app/attendo/utils"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

var headers = []string{
	"Date", "AM In", "AM Out", "PM In", "PM Out",
	"AM Status", "PM Status", "Overall", "Hours",
	"Verification", "Verified By", "Remarks",
}

// BuildAttendanceSheet renders one subject's records (newest first, as the
// store returns them) into a workbook for supervisors to file.
func BuildAttendanceSheet(records []model.AttendanceRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for row, rec := range records {
		values := []interface{}{
			rec.Date,
			utils.Format(rec.AMTimeIn),
			utils.Format(rec.AMTimeOut),
			utils.Format(rec.PMTimeIn),
			utils.Format(rec.PMTimeOut),
			string(rec.AMStatus),
			string(rec.PMStatus),
			string(rec.OverallStatus),
			rec.TotalHours,
			string(rec.VerificationStatus),
			utils.Format(rec.VerifiedBy),
			utils.Format(rec.VerificationRemarks),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "L", 14); err != nil {
		return nil, err
	}

	return f, nil
}

// Filename names the exported workbook for one subject and range.
func Filename(subjectID int64, dateFrom, dateTo string) string {
	return fmt.Sprintf("attendance-%d-%s-%s.xlsx", subjectID, dateFrom, dateTo)
}

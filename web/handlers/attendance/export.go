package attendance

import (
	"fmt"
	"net/http"
	"strconv"

	"attendo.app/attendo/core"
	"attendo.app/attendo/report"
	"attendo.app/attendo/utils"
	web "attendo.app/attendo/web/common"
	"github.com/gin-gonic/gin"
)

// Export streams one subject's attendance for a date range as a workbook.
func (ep *Endpoint) Export(c *gin.Context) {
	subjectID, err := strconv.ParseInt(c.Param("subjectId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid subject id"))
		return
	}
	organizationID, err := strconv.ParseInt(c.Query("organizationId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid organization id"))
		return
	}

	dateFrom, dateTo := c.Query("from"), c.Query("to")
	if _, err := utils.ParseDate(dateFrom); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	if _, err := utils.ParseDate(dateTo); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	records, err := core.GetBySubjectAndRange(db, subjectID, organizationID, dateFrom, dateTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	f, err := report.BuildAttendanceSheet(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(subjectID, dateFrom, dateTo)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
	}
}

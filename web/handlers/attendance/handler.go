package attendance

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"attendo.app/attendo/core"
	"attendo.app/attendo/model"
	"attendo.app/attendo/utils"
	web "attendo.app/attendo/web/common"
	"attendo.app/attendo/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Endpoint struct {
	base web.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}}
	r.POST("/subjects/:subjectId/records", endpoint.UpsertSession)
	r.GET("/subjects/:subjectId/export", endpoint.Export)
	r.POST("/records/search", endpoint.Search)
	r.POST("/records/:recordId/verify", endpoint.Verify)
	r.POST("/records/:recordId/remarks", endpoint.Annotate)
	r.GET("/records/:recordId/timeline", endpoint.Timeline)
}

// UpsertSession is the clock-in/clock-out endpoint. It normalizes the raw
// time values, creates the day's record on first write, and applies a
// session-scoped update otherwise.
func (ep *Endpoint) UpsertSession(c *gin.Context) {
	subjectID, err := strconv.ParseInt(c.Param("subjectId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid subject id"))
		return
	}

	var dto SessionUpsertDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	if _, err := utils.ParseDate(dto.Date); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	session := model.Session(dto.Session)
	upd := core.SessionUpdate{Session: session, Notes: dto.Notes}

	afternoon := session == model.SessionPM
	if upd.TimeIn, err = parseTime(dto.TimeIn, afternoon, subjectID, dto.Date); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	if upd.TimeOut, err = parseTime(dto.TimeOut, afternoon, subjectID, dto.Date); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	if dto.Status != nil {
		status := model.SessionStatus(*dto.Status)
		upd.Status = &status
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	rec, err := core.UpsertSession(db, core.UpsertSessionParams{
		SubjectID:      subjectID,
		OrganizationID: dto.OrganizationID,
		Date:           dto.Date,
		Update:         upd,
	})
	if err != nil {
		if errors.Is(err, core.ErrInvalidSessionTransition) {
			c.JSON(http.StatusConflict, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toRecordDTO(*rec)))
}

// parseTime normalizes one optional textual time field. A nil or placeholder
// value means "leave the stored field untouched".
func parseTime(raw *string, afternoon bool, subjectID int64, date string) (*model.TimeOfDay, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := core.ParseClockTime(*raw, afternoon)
	if err != nil {
		return nil, err
	}
	if parsed.Inferred {
		// Keep an audit trail of hint-based parses; a wrong hint is a
		// latent source of misclassification.
		log.Printf("low-confidence time parse %q (subject=%d date=%s afternoon=%t)", *raw, subjectID, date, afternoon)
	}
	return parsed.Time, nil
}

func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	records, err := core.GetBySubjectAndRange(db,
		params.SubjectID, params.OrganizationID,
		params.StartDate.Format(utils.DateLayout), params.EndDate.Format(utils.DateLayout))
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	var counts web.VerificationCounts
	for _, r := range records {
		switch r.VerificationStatus {
		case model.VerificationAccepted:
			counts.Accepted++
		case model.VerificationDenied:
			counts.Denied++
		default:
			counts.Pending++
		}
	}

	dtos := utils.Map(records, toRecordDTO)
	c.JSON(http.StatusOK, web.NewSearchResponse(dtos, int64(len(records)), counts))
}

func (ep *Endpoint) Verify(c *gin.Context) {
	recordID := c.Param("recordId")

	verifierID, ok := middlewares.IdentityID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, web.NewErrorResponse("token carries no verifier identity"))
		return
	}

	var dto VerifyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	rec, err := core.Verify(db, recordID, verifierID, model.VerificationStatus(dto.Decision), dto.Remarks, utils.LocalNow())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toRecordDTO(*rec)))
}

func (ep *Endpoint) Annotate(c *gin.Context) {
	recordID := c.Param("recordId")

	var dto AnnotateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	rec, err := core.Annotate(db, recordID, dto.Remarks)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toRecordDTO(*rec)))
}

// Timeline serves the display layer's non-overlapping interval projection.
func (ep *Endpoint) Timeline(c *gin.Context) {
	recordID := c.Param("recordId")

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	rec, err := core.GetRecord(db, recordID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"recordId":  rec.ID,
		"date":      rec.Date,
		"intervals": core.ProjectTimeline(rec),
	}))
}

func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrRecordNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, web.NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
	}
}

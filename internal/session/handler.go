package session

import (
	"net/http"
	"strconv"

	"fitclub/internal/api"
	"fitclub/internal/apperr"
	"fitclub/internal/availability"
	"fitclub/internal/booking"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, notifier Notifier) *Handler {
	avail := availability.NewService(availability.NewRepository(db))
	return &Handler{
		service: NewService(NewRepository(db), avail, booking.NewRepository(db), notifier),
	}
}

// Schedule godoc
// @Summary      Schedule PT session
// @Description  Books a personal training session after checking the
// @Description  trainer's availability windows and existing commitments.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session  body      ScheduleRequest  true  "Session"
// @Success      201      {object}  api.IDResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ErrorResponse
// @Router       /sessions [post]
func (h *Handler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.Schedule(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, api.IDResponse{ID: id})
}

// Reschedule godoc
// @Summary      Reschedule PT session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      int                true  "Session ID"
// @Param        slot       body      RescheduleRequest  true  "New slot"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Failure      422        {object}  api.ErrorResponse
// @Router       /sessions/{sessionID}/reschedule [put]
func (h *Handler) Reschedule(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid session ID"})
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.Reschedule(c.Request.Context(), sessionID, req.Date, req.Time); err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "session rescheduled"})
}

// GetSession godoc
// @Summary      Get PT session
// @Tags         sessions
// @Produce      json
// @Param        sessionID  path      int  true  "Session ID"
// @Success      200        {object}  Session
// @Failure      404        {object}  api.ErrorResponse
// @Router       /sessions/{sessionID} [get]
func (h *Handler) GetSession(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid session ID"})
		return
	}

	sess, err := h.service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, sess)
}

package member

import (
	"net/http"
	"strconv"

	"fitclub/internal/api"
	"fitclub/internal/apperr"
	"fitclub/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, notifier Notifier) *Handler {
	return &Handler{service: NewService(NewRepository(db), session.NewRepository(db), notifier)}
}

// Register godoc
// @Summary      Register member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        member  body      RegisterRequest  true  "Member"
// @Success      201     {object}  api.IDResponse
// @Failure      400     {object}  api.ErrorResponse
// @Failure      409     {object}  api.ErrorResponse
// @Router       /members [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, api.IDResponse{ID: id})
}

// GetMember godoc
// @Summary      Get member
// @Tags         members
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  Member
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID} [get]
func (h *Handler) GetMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member ID"})
		return
	}

	m, err := h.service.GetMember(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

// UpdateProfile godoc
// @Summary      Update member profile
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                   true  "Member ID"
// @Param        profile   body      UpdateProfileRequest  true  "Fields to change"
// @Success      200       {object}  api.MessageResponse
// @Failure      400       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member ID"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), memberID, req); err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "profile updated"})
}

// AddGoal godoc
// @Summary      Add fitness goal
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        memberID  path      int             true  "Member ID"
// @Param        goal      body      AddGoalRequest  true  "Goal"
// @Success      201       {object}  api.IDResponse
// @Failure      400       {object}  api.ErrorResponse
// @Router       /members/{memberID}/goals [post]
func (h *Handler) AddGoal(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member ID"})
		return
	}

	var req AddGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.AddGoal(c.Request.Context(), memberID, req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, api.IDResponse{ID: id})
}

// ListGoals godoc
// @Summary      List active fitness goals
// @Tags         members
// @Produce      json
// @Param        memberID  path     int  true  "Member ID"
// @Success      200       {array}  FitnessGoal
// @Router       /members/{memberID}/goals [get]
func (h *Handler) ListGoals(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member ID"})
		return
	}

	goals, err := h.service.ListActiveGoals(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list goals"})
		return
	}

	c.JSON(http.StatusOK, goals)
}

// LogMetric godoc
// @Summary      Log health metric
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        memberID  path      int               true  "Member ID"
// @Param        metric    body      LogMetricRequest  true  "Metric"
// @Success      201       {object}  api.IDResponse
// @Failure      400       {object}  api.ErrorResponse
// @Router       /members/{memberID}/metrics [post]
func (h *Handler) LogMetric(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member ID"})
		return
	}

	var req LogMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.LogMetric(c.Request.Context(), memberID, req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, api.IDResponse{ID: id})
}

// Dashboard godoc
// @Summary      Member dashboard
// @Tags         members
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  Dashboard
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid member ID"})
		return
	}

	dash, err := h.service.Dashboard(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dash)
}

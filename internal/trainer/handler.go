package trainer

import (
	"net/http"
	"strconv"

	"fitclub/internal/api"
	"fitclub/internal/apperr"
	"fitclub/internal/class"
	"fitclub/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), session.NewRepository(db), class.NewRepository(db)),
	}
}

// GetTrainer godoc
// @Summary      Get trainer
// @Tags         trainers
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {object}  Trainer
// @Failure      404        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID} [get]
func (h *Handler) GetTrainer(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid trainer ID"})
		return
	}

	t, err := h.service.GetTrainer(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, t)
}

// ListTrainers godoc
// @Summary      List trainers
// @Tags         trainers
// @Produce      json
// @Success      200  {array}  Trainer
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	trainers, err := h.service.ListTrainers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// Schedule godoc
// @Summary      Trainer schedule
// @Description  Upcoming PT sessions and group classes for a trainer.
// @Tags         trainers
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {object}  ScheduleView
// @Failure      404        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/schedule [get]
func (h *Handler) Schedule(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid trainer ID"})
		return
	}

	view, err := h.service.Schedule(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// LookupMembers godoc
// @Summary      Search members by name
// @Tags         trainers
// @Produce      json
// @Param        name  query    string  true  "Name or partial name"
// @Success      200   {array}  MemberMatch
// @Failure      400   {object}  api.ErrorResponse
// @Router       /trainers/members [get]
func (h *Handler) LookupMembers(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name parameter is required"})
		return
	}

	matches, err := h.service.LookupMembers(c.Request.Context(), name)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}

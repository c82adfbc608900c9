package availability

import (
	"net/http"
	"strconv"

	"fitclub/internal/api"
	"fitclub/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(NewRepository(db))}
}

// AddWindow godoc
// @Summary      Add availability window
// @Description  Adds a recurring weekly availability window for a trainer.
// @Tags         availability
// @Accept       json
// @Produce      json
// @Param        trainerID  path      int               true  "Trainer ID"
// @Param        window     body      AddWindowRequest  true  "Window"
// @Success      201        {object}  api.IDResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [post]
func (h *Handler) AddWindow(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid trainer ID"})
		return
	}

	var req AddWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.AddWindow(c.Request.Context(), trainerID, *req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, api.IDResponse{ID: id})
}

// UpdateWindow godoc
// @Summary      Update availability window
// @Tags         availability
// @Accept       json
// @Produce      json
// @Param        windowID  path      int                  true  "Availability ID"
// @Param        window    body      UpdateWindowRequest  true  "Fields to change"
// @Success      200       {object}  api.MessageResponse
// @Failure      400       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Failure      409       {object}  api.ErrorResponse
// @Router       /availability/{windowID} [put]
func (h *Handler) UpdateWindow(c *gin.Context) {
	windowID, err := strconv.Atoi(c.Param("windowID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid availability ID"})
		return
	}

	var req UpdateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.UpdateWindow(c.Request.Context(), windowID, req.StartTime, req.EndTime); err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "availability updated"})
}

// ListWindows godoc
// @Summary      List availability windows
// @Tags         availability
// @Produce      json
// @Param        trainerID  path     int  true  "Trainer ID"
// @Success      200        {array}  Window
// @Router       /trainers/{trainerID}/availability [get]
func (h *Handler) ListWindows(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid trainer ID"})
		return
	}

	windows, err := h.service.ListWindows(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list availability"})
		return
	}

	c.JSON(http.StatusOK, windows)
}

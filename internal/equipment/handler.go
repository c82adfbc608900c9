package equipment

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

// GetEquipment godoc
// @Summary      Get equipment
// @Tags         equipment
// @Produce      json
// @Param        equipmentID  path      int  true  "Equipment ID"
// @Success      200          {object}  Equipment
// @Failure      404          {object}  api.ErrorResponse
// @Router       /admin/equipment/{equipmentID} [get]
func (h *Handler) GetEquipment(c *gin.Context) {
	equipmentID, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid equipment ID"})
		return
	}

	e, err := h.service.GetEquipment(c.Request.Context(), equipmentID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, e)
}

// LogIssue godoc
// @Summary      Log equipment issue
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        equipmentID  path      int              true  "Equipment ID"
// @Param        issue        body      LogIssueRequest  true  "Issue"
// @Success      200          {object}  api.MessageResponse
// @Failure      400          {object}  api.ErrorResponse
// @Failure      404          {object}  api.ErrorResponse
// @Router       /admin/equipment/{equipmentID}/issues [post]
func (h *Handler) LogIssue(c *gin.Context) {
	equipmentID, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid equipment ID"})
		return
	}

	var req LogIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.LogIssue(c.Request.Context(), equipmentID, req.Description, req.Status); err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "equipment issue logged"})
}

// UpdateMaintenance godoc
// @Summary      Update maintenance record
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        equipmentID  path      int                       true  "Equipment ID"
// @Param        record       body      UpdateMaintenanceRequest  true  "Maintenance record"
// @Success      200          {object}  api.MessageResponse
// @Failure      400          {object}  api.ErrorResponse
// @Failure      404          {object}  api.ErrorResponse
// @Router       /admin/equipment/{equipmentID}/maintenance [put]
func (h *Handler) UpdateMaintenance(c *gin.Context) {
	equipmentID, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid equipment ID"})
		return
	}

	var req UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.UpdateMaintenance(c.Request.Context(), equipmentID, req); err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "maintenance record updated"})
}

// ListStatus godoc
// @Summary      List equipment status
// @Tags         equipment
// @Produce      json
// @Param        room_id  query    int     false  "Room filter"
// @Param        status   query    string  false  "Status filter"
// @Success      200      {array}  Equipment
// @Router       /admin/equipment [get]
func (h *Handler) ListStatus(c *gin.Context) {
	var roomID *int
	if v := c.Query("room_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid room_id"})
			return
		}
		roomID = &id
	}

	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}

	items, err := h.service.ListStatus(c.Request.Context(), roomID, status)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListNeedingAttention godoc
// @Summary      List equipment needing attention
// @Tags         equipment
// @Produce      json
// @Success      200  {array}  Equipment
// @Router       /admin/equipment/attention [get]
func (h *Handler) ListNeedingAttention(c *gin.Context) {
	items, err := h.service.ListNeedingAttention(c.Request.Context())
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

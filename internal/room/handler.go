package room

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

// CreateRoom godoc
// @Summary      Create room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        room  body      CreateRoomRequest  true  "Room"
// @Success      201   {object}  Room
// @Failure      400   {object}  api.ErrorResponse
// @Router       /admin/rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRoom godoc
// @Summary      Get room
// @Tags         rooms
// @Produce      json
// @Param        roomID  path      int  true  "Room ID"
// @Success      200     {object}  Room
// @Failure      404     {object}  api.ErrorResponse
// @Router       /rooms/{roomID} [get]
func (h *Handler) GetRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid room ID"})
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, room)
}

// ListRooms godoc
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {array}  Room
// @Router       /rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list rooms"})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// SetStatus godoc
// @Summary      Set room status
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        roomID  path      int               true  "Room ID"
// @Param        status  body      SetStatusRequest  true  "New status"
// @Success      200     {object}  api.MessageResponse
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /admin/rooms/{roomID}/status [put]
func (h *Handler) SetStatus(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid room ID"})
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), roomID, req.Status); err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "room status updated"})
}

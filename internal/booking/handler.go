package booking

import (
	"net/http"
	"strconv"

	"fitclub/internal/api"
	"fitclub/internal/apperr"
	"fitclub/internal/class"
	"fitclub/internal/room"
	"fitclub/internal/timeutil"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), room.NewRepository(db), class.NewRepository(db)),
	}
}

// BookForSession godoc
// @Summary      Book room for PT session
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      BookRoomRequest  true  "Booking"
// @Success      201      {object}  api.IDResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ErrorResponse
// @Router       /admin/bookings/session [post]
func (h *Handler) BookForSession(c *gin.Context) {
	var req BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.BookRoomForSession(c.Request.Context(), req.RoomID, req.ReferenceID, req.Date, req.Time)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, api.IDResponse{ID: id})
}

// BookForClass godoc
// @Summary      Book room for group class
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      BookRoomRequest  true  "Booking"
// @Success      201      {object}  api.IDResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ErrorResponse
// @Router       /admin/bookings/class [post]
func (h *Handler) BookForClass(c *gin.Context) {
	var req BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.BookRoomForClass(c.Request.Context(), req.RoomID, req.ReferenceID, req.Date, req.Time)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, api.IDResponse{ID: id})
}

// ListBookings godoc
// @Summary      List room bookings
// @Tags         bookings
// @Produce      json
// @Param        room_id  query    int     false  "Room filter"
// @Param        date     query    string  false  "Date filter (YYYY-MM-DD)"
// @Success      200      {array}  BookingWithRoom
// @Router       /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	var roomID *int
	if v := c.Query("room_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid room_id"})
			return
		}
		roomID = &id
	}

	var date *string
	if v := c.Query("date"); v != "" {
		if _, err := timeutil.ParseDate(v); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		date = &v
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), roomID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListAvailableRooms godoc
// @Summary      List rooms free at an instant
// @Tags         bookings
// @Produce      json
// @Param        date          query    string  true   "Date (YYYY-MM-DD)"
// @Param        time          query    string  true   "Time (HH:MM)"
// @Param        min_capacity  query    int     false  "Minimum capacity"
// @Success      200           {array}  room.Room
// @Failure      400           {object}  api.ErrorResponse
// @Router       /rooms/available [get]
func (h *Handler) ListAvailableRooms(c *gin.Context) {
	date := c.Query("date")
	clock := c.Query("time")
	if date == "" || clock == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date and time parameters are required"})
		return
	}

	var minCapacity *int
	if v := c.Query("min_capacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid min_capacity"})
			return
		}
		minCapacity = &n
	}

	rooms, err := h.service.ListAvailableRooms(c.Request.Context(), date, clock, minCapacity)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

package server

import (
	"context"
	"net/http"

	"fitclub/internal/availability"
	"fitclub/internal/booking"
	"fitclub/internal/config"
	"fitclub/internal/email"
	"fitclub/internal/equipment"
	"fitclub/internal/member"
	"fitclub/internal/room"
	"fitclub/internal/session"
	"fitclub/internal/trainer"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
	srv    *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	memberHandler := member.NewHandler(db, emailService)
	trainerHandler := trainer.NewHandler(db)
	availabilityHandler := availability.NewHandler(db)
	sessionHandler := session.NewHandler(db, emailService)
	roomHandler := room.NewHandler(db)
	bookingHandler := booking.NewHandler(db)
	equipmentHandler := equipment.NewHandler(db)

	members := router.Group("/members")
	{
		members.POST("", memberHandler.Register)
		members.GET("/:memberID", memberHandler.GetMember)
		members.PUT("/:memberID", memberHandler.UpdateProfile)
		members.POST("/:memberID/goals", memberHandler.AddGoal)
		members.GET("/:memberID/goals", memberHandler.ListGoals)
		members.POST("/:memberID/metrics", memberHandler.LogMetric)
		members.GET("/:memberID/dashboard", memberHandler.Dashboard)
	}

	trainers := router.Group("/trainers")
	{
		trainers.GET("", trainerHandler.ListTrainers)
		trainers.GET("/members", trainerHandler.LookupMembers)
		trainers.GET("/:trainerID", trainerHandler.GetTrainer)
		trainers.GET("/:trainerID/schedule", trainerHandler.Schedule)
		trainers.POST("/:trainerID/availability", availabilityHandler.AddWindow)
		trainers.GET("/:trainerID/availability", availabilityHandler.ListWindows)
	}
	router.PUT("/availability/:windowID", availabilityHandler.UpdateWindow)

	sessions := router.Group("/sessions")
	{
		sessions.POST("", sessionHandler.Schedule)
		sessions.GET("/:sessionID", sessionHandler.GetSession)
		sessions.PUT("/:sessionID/reschedule", sessionHandler.Reschedule)
	}

	router.GET("/rooms", roomHandler.ListRooms)
	router.GET("/rooms/available", bookingHandler.ListAvailableRooms)
	router.GET("/rooms/:roomID", roomHandler.GetRoom)

	admin := router.Group("/admin")
	{
		admin.POST("/rooms", roomHandler.CreateRoom)
		admin.PUT("/rooms/:roomID/status", roomHandler.SetStatus)
		admin.POST("/bookings/session", bookingHandler.BookForSession)
		admin.POST("/bookings/class", bookingHandler.BookForClass)
		admin.GET("/bookings", bookingHandler.ListBookings)
		admin.GET("/equipment", equipmentHandler.ListStatus)
		admin.GET("/equipment/attention", equipmentHandler.ListNeedingAttention)
		admin.GET("/equipment/:equipmentID", equipmentHandler.GetEquipment)
		admin.POST("/equipment/:equipmentID/issues", equipmentHandler.LogIssue)
		admin.PUT("/equipment/:equipmentID/maintenance", equipmentHandler.UpdateMaintenance)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

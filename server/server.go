package server

import (
	"bms-server/confs"
	"bms-server/db"
	"bms-server/handlers"
	httpHandler "bms-server/handlers/http"
	"bms-server/middleware"
	"bms-server/repositories"
	"bms-server/services"
	"bms-server/usecases"
	"bms-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app   *gin.Engine
	db    db.Database
	wired bool
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	s.setup()
	if err := s.app.Run(confs.ServerAddr()); err != nil {
		panic(err)
	}
}

// Engine exposes the configured router, mainly for handler tests.
func (s *Server) Engine() *gin.Engine {
	s.setup()
	return s.app
}

func (s *Server) setup() {
	if s.wired {
		return
	}
	s.wired = true

	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	apartmentRepo := repositories.NewApartmentPgRepository(s.db)
	noticeRepo := repositories.NewNoticePgRepository(s.db)
	privateNoticeRepo := repositories.NewPrivateNoticePgRepository(s.db)
	complaintRepo := repositories.NewComplaintPgRepository(s.db)
	chatRepo := repositories.NewChatMessagePgRepository(s.db)

	// Initialize use cases
	accountUseCase := usecases.NewAccountUseCase(userRepo, apartmentRepo)
	occupancyUseCase := usecases.NewOccupancyUseCase(s.db, apartmentRepo, userRepo)
	noticeUseCase := usecases.NewNoticeUseCase(noticeRepo, privateNoticeRepo)
	complaintUseCase := usecases.NewComplaintUseCase(complaintRepo)
	chatUseCase := usecases.NewChatUseCase(chatRepo)
	statsUseCase := usecases.NewStatsUseCase(apartmentRepo, userRepo, noticeRepo, complaintRepo)

	// Token service and auth middleware
	tokenService := services.NewTokenService(confs.JWTSecret())
	requireAuth := middleware.RequireAuth(tokenService, userRepo)
	requireAdmin := middleware.RequireAdmin()

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(accountUseCase, tokenService)
	apartmentHandler := httpHandler.NewApartmentHandler(occupancyUseCase)
	noticeHandler := httpHandler.NewNoticeHandler(noticeUseCase)
	complaintHandler := httpHandler.NewComplaintHandler(complaintUseCase)
	statsHandler := httpHandler.NewStatsHandler(statsUseCase)

	// Chat hub and handler
	hub := ws.NewHub()
	chatHandler := handlers.NewChatHandler(hub, chatUseCase, tokenService, userRepo)

	s.app.POST("/login", authHandler.Login)
	s.app.GET("/ws", chatHandler.HandleChatWS)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Public routes
		api.GET("/stats", statsHandler.Get)
		api.GET("/notices", noticeHandler.List)
		api.GET("/apartments/vacant", apartmentHandler.ListVacant)

		// Authenticated routes
		authed := api.Group("", requireAuth)
		{
			authed.GET("/me", authHandler.Me)
			authed.POST("/me/password", authHandler.ChangePassword)
			authed.GET("/private-notices", noticeHandler.ListPrivate)
			authed.POST("/complaints", complaintHandler.Submit)
			authed.GET("/chat/recent", chatHandler.FetchRecent)
		}

		// Admin routes
		admin := api.Group("", requireAuth, requireAdmin)
		{
			admin.POST("/notices", noticeHandler.Post)
			admin.DELETE("/notices/:id", noticeHandler.Delete)
			admin.POST("/private-notices", noticeHandler.SendPrivate)
			admin.GET("/complaints", complaintHandler.List)
			admin.PUT("/complaints/:id/status", complaintHandler.UpdateStatus)
			admin.GET("/residents", apartmentHandler.ListResidents)
			admin.POST("/residents", apartmentHandler.AssignResident)
			admin.DELETE("/residents/:id", apartmentHandler.ReleaseResident)
			admin.GET("/chat/sessions", chatHandler.ConnectedSessions)
		}
	}
}

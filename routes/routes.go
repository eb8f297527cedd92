package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	pickupRepo := repository.NewPickupRepository(db)
	guideRepo := repository.NewGuideRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	pickupSvc := services.NewPickupService(pickupRepo, cfg.RequireOwnership, cfg.UploadDir)
	guideSvc := services.NewGuideService(guideRepo)
	chatbotSvc := services.NewChatbotService(cfg.GeminiAPIKey, cfg.GeminiModel)

	// Live feed สำหรับ dashboard
	hub := ws.NewDashboardHub()
	go hub.Run()
	pickupSvc.Events = hub

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	pickupCtrl := controllers.NewPickupController(pickupSvc)
	collectorCtrl := controllers.NewCollectorController(pickupSvc)
	guideCtrl := controllers.NewGuideController(guideSvc)
	homeCtrl := controllers.NewHomeController(pickupSvc)
	chatbotCtrl := controllers.NewChatbotController(chatbotSvc)

	optionalAuth := middlewares.OptionalAuthMiddleware(cfg.JWTSecret)

	// Public (identity ใส่ให้ถ้ามี token)
	r.GET("/", optionalAuth, homeCtrl.Home)
	r.GET("/helper", optionalAuth, guideCtrl.Search)
	r.POST("/requests", optionalAuth, pickupCtrl.Create)

	// Resident auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// My requests (ต้อง login; collector โดน redirect ใน service)
	r.GET("/requests", middlewares.AuthMiddleware(cfg.JWTSecret), pickupCtrl.ListMine)

	// Collector (ช่อง login แยก แต่เช็คเดียวกัน)
	col := r.Group("/collector")
	{
		col.POST("/login", authCtrl.CollectorLogin)
		col.POST("/logout", authCtrl.Logout)
	}
	colAuth := col.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCollector))
	{
		colAuth.GET("/dashboard", collectorCtrl.Dashboard)
		colAuth.PATCH("/requests/:id/status", collectorCtrl.UpdateStatus)
	}

	// WebSocket feed (token ผ่าน query)
	r.GET("/ws/dashboard",
		middlewares.WSAuthMiddleware(cfg.JWTSecret, entity.RoleCollector),
		hub.HandleWebSocket)

	// Chatbot bridge
	r.POST("/api/chatbot/message", chatbotCtrl.Message)
}

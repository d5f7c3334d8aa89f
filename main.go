package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"deals-room-service/internal/db"
	"deals-room-service/internal/handlers"
	"deals-room-service/internal/middleware"
	"deals-room-service/internal/observability"
	"deals-room-service/internal/rabbitmq"
	"deals-room-service/internal/repositories"
	"deals-room-service/internal/telemetry"
	"deals-room-service/internal/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}

	shutdownTracing := telemetry.SetupTracing(context.Background(), "deals-room-service", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	defer shutdownTracing(context.Background())

	amqpURL := os.Getenv("AMQP_URL")
	exchange := getEnv("AMQP_EXCHANGE", "deals.events")
	if amqpURL != "" {
		eventsPub, err := observability.NewAMQPPublisher(amqpURL, exchange)
		if err != nil {
			log.Printf("amqp events publisher disabled: %v", err)
		} else {
			observability.SetPublisher(eventsPub)
			defer eventsPub.Close()
		}
	}

	publisher := rabbitmq.NewPublisher(amqpURL, exchange)
	audit := telemetry.NewAuditEmitter(publisher,
		getEnv("AUDIT_ROUTING_KEY", "audit.deals"),
		"deals-room-service",
		getEnv("ENVIRONMENT", "development"))

	userRepo := repositories.NewUserRepo(database)
	sessionRepo := repositories.NewSessionRepo(database)
	dealRepo := repositories.NewDealRepo(database)
	dmRepo := repositories.NewDMRepo(database)
	notifRepo := repositories.NewNotificationRepo(database)
	catalogRepo := repositories.NewCatalogRepo(database)

	hub := ws.NewHub()

	authHandler := handlers.NewAuthHandler(userRepo, sessionRepo, audit)
	dealHandler := handlers.NewDealHandler(dealRepo, userRepo, hub, audit)
	dmHandler := handlers.NewDMHandler(dmRepo, notifRepo, userRepo, hub, audit)
	notifHandler := handlers.NewNotificationHandler(notifRepo, hub, audit)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)

	feedWS := ws.NewFeedHandler(hub, sessionRepo, dmRepo, notifRepo)

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("deals-room-service"))
	router.Use(observability.HTTPMetricsMiddleware())

	authMiddleware := middleware.AuthMiddleware(sessionRepo)
	sendLimit := middleware.SendRateLimit(1, 5)

	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/logout", authHandler.Logout)
	router.GET("/auth/session", authHandler.Session)

	router.GET("/deals", authMiddleware, dealHandler.ListDeals)
	router.POST("/deals", authMiddleware, sendLimit, dealHandler.PostDeal)

	router.GET("/dms/conversations", authMiddleware, dmHandler.ListConversations)
	router.GET("/dms/with/:partner_id", authMiddleware, dmHandler.GetConversation)
	router.POST("/dms", authMiddleware, sendLimit, dmHandler.SendDM)
	router.POST("/dms/request", authMiddleware, dmHandler.RequestDM)

	router.GET("/notifications", authMiddleware, notifHandler.ListNotifications)
	router.GET("/notifications/unread_count", authMiddleware, notifHandler.UnreadCount)
	router.POST("/notifications/:id/read", authMiddleware, notifHandler.MarkRead)
	router.POST("/notifications/read_all", authMiddleware, notifHandler.MarkAllRead)

	router.GET("/catalog/announcements", authMiddleware, catalogHandler.ListAnnouncements)
	router.POST("/catalog/announcements", authMiddleware, catalogHandler.CreateAnnouncement)
	router.GET("/catalog/products", authMiddleware, catalogHandler.ListProducts)
	router.POST("/catalog/products", authMiddleware, catalogHandler.CreateProduct)
	router.GET("/catalog/tenders", authMiddleware, catalogHandler.ListTenders)
	router.POST("/catalog/tenders", authMiddleware, catalogHandler.CreateTender)
	router.GET("/catalog/land", authMiddleware, catalogHandler.ListLandListings)
	router.POST("/catalog/land", authMiddleware, catalogHandler.CreateLandListing)
	router.GET("/catalog/machines", authMiddleware, catalogHandler.ListMachines)
	router.POST("/catalog/machines", authMiddleware, catalogHandler.CreateMachine)
	router.GET("/catalog/materials", authMiddleware, catalogHandler.ListMaterials)
	router.POST("/catalog/materials", authMiddleware, catalogHandler.CreateMaterial)
	router.GET("/catalog/jobs", authMiddleware, catalogHandler.ListJobs)
	router.POST("/catalog/jobs", authMiddleware, catalogHandler.CreateJob)

	router.GET("/ws/deals", feedWS.HandleDeals)
	router.GET("/ws/dms", feedWS.HandleDMs)
	router.GET("/ws/notifications", feedWS.HandleNotifications)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	port := getEnv("PORT", "8083")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

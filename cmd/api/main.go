package main

import (
	"log"
	"os"
	"time"

	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/analytics"
	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/db"
	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/establishment"
	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/middleware"
	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/search"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	logger := log.New(os.Stdout, "[search] ", log.LstdFlags)

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── CATALOG CACHE (optional) ─────────────────────────
	var catalogCache *establishment.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		catalogCache = establishment.NewCache(
			redis.NewClient(&redis.Options{Addr: addr}),
			5*time.Minute,
		)
		log.Println("✅ Catalog cache enabled at", addr)
	} else {
		log.Println("Catalog cache disabled (REDIS_ADDR not set)")
	}

	// ───────────────────────── ANALYTICS (optional) ─────────────────────────
	var events analytics.Publisher = analytics.NopPublisher{}
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		topic := os.Getenv("KAFKA_TOPIC")
		if topic == "" {
			topic = "search-events"
		}
		writer := &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		events = analytics.NewKafkaPublisher(writer)
		log.Println("✅ Search analytics enabled, topic:", topic)
	}

	// ───────────────────────── CORE WIRING ─────────────────────────
	catalogRepo := establishment.NewPostgresRepository(pgDB)
	catalogService := establishment.NewService(catalogRepo, catalogCache, logger)

	searchService := search.NewService(catalogService, logger)
	searchHandler := search.NewHandler(searchService, search.NewNormalizer(logger), events, logger)

	adminHandler := establishment.NewAdminHandler(catalogService)

	// ───────────────────────── PUBLIC ROUTES ─────────────────────────
	establishments := r.Group("/establishments")
	{
		establishments.GET("/search", searchHandler.Search)
		establishments.GET("/within", searchHandler.Within)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.PATCH("/establishments/:id/boost", adminHandler.SetBoost)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}

package main

import (
	"context"
	"net/http"
	"time"

	"fittrack/auth"
	"fittrack/config"
	"fittrack/db"
	"fittrack/middleware"
	"fittrack/services"
	"fittrack/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Auth endpoints share one per-IP budget: 100 requests per 15 minutes.
const (
	authRateLimit  = 100
	authRateWindow = 15 * time.Minute
)

func main() {
	cfg := config.Load()
	auth.JwtSecret = []byte(cfg.JWTSecret)

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logrus.WithError(err).Fatal("MongoDB connection failed")
	}
	defer client.Disconnect(ctx)

	database := client.Database(cfg.MongoDB)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		logrus.WithError(err).Fatal("index creation failed")
	}
	logrus.Info("Connected to MongoDB")

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("redis unreachable, rate limiting disabled")
			rdb = nil
		}
	}

	st := store.New(database)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRoutes := r.Group("/auth")
	authRoutes.Use(middleware.RateLimit(rdb, authRateLimit, authRateWindow))
	authRoutes.POST("/register", auth.Register(st, cfg.BcryptCost))
	authRoutes.POST("/login", auth.Login(st))
	authRoutes.GET("/profile", auth.AuthMiddleware(), auth.Profile(st))

	if cfg.GoogleEnabled() {
		auth.GoogleOauthConfig = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
				"openid",
			},
			Endpoint: google.Endpoint,
		}
		auth.FrontendURL = cfg.FrontendURL
		authRoutes.GET("/google/login", auth.GoogleLogin)
		authRoutes.GET("/google/callback", auth.GoogleCallback(st))
	}

	protected := r.Group("/", auth.AuthMiddleware())

	protected.GET("/activities", services.ListActivities(st))
	protected.POST("/activities", services.CreateActivity(st))
	protected.PUT("/activities/:id", services.UpdateActivity(st))
	protected.DELETE("/activities/:id", services.DeleteActivity(st))

	protected.GET("/goals", services.ListGoals(st))
	protected.POST("/goals", services.CreateGoal(st))
	protected.PUT("/goals/:id", services.UpdateGoal(st))
	protected.DELETE("/goals/:id", services.DeleteGoal(st))

	protected.GET("/nutrition", services.ListNutrition(st))
	protected.POST("/nutrition", services.CreateNutrition(st))
	protected.PUT("/nutrition/:id", services.UpdateNutrition(st))
	protected.DELETE("/nutrition/:id", services.DeleteNutrition(st))

	protected.GET("/progress", services.ListProgress(st))
	protected.POST("/progress", services.CreateProgress(st))
	protected.PUT("/progress/:id", services.UpdateProgress(st))
	protected.DELETE("/progress/:id", services.DeleteProgress(st))

	protected.POST("/chat", services.Chat())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	logrus.WithField("port", cfg.Port).Info("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Server failed to start")
	}
}

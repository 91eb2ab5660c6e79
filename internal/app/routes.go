package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"github.com/mmyatt91/message.ly/internal/auth"
	"github.com/mmyatt91/message.ly/internal/cache"
	"github.com/mmyatt91/message.ly/internal/config"
	"github.com/mmyatt91/message.ly/internal/handlers"
	"github.com/mmyatt91/message.ly/internal/repo"
	"github.com/mmyatt91/message.ly/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	secret := []byte(cfg.Auth.SecretKey)

	userRepo := repo.NewPGUserRepo(db)
	userCache := cache.NewUserCache(rdb, cfg.Redis.DefaultTTL.Duration())
	userSvc := service.NewUserService(userRepo, userCache)

	messageRepo := repo.NewPGMessageRepo(db)
	messageSvc := service.NewMessageService(messageRepo)

	authHandler := handlers.NewAuthHandler(userSvc, secret, cfg.Auth.TokenTTL.Duration())
	userHandler := handlers.NewUserHandler(userSvc)
	messageHandler := handlers.NewMessageHandler(messageSvc)

	r.POST("/login", authHandler.Login)
	r.POST("/register", authHandler.Register)

	// The directory is public; everything under /users/:username belongs to
	// that user alone.
	r.GET("/users", userHandler.List)
	owned := r.Group("/users", auth.RequireAuth(secret), auth.RequireSameUser("username"))
	owned.GET("/:username", userHandler.Get)
	owned.GET("/:username/to", userHandler.MessagesTo)
	owned.GET("/:username/from", userHandler.MessagesFrom)

	messages := r.Group("/messages", auth.RequireAuth(secret))
	messages.POST("", messageHandler.Send)
	messages.GET("/:id", messageHandler.Get)
	messages.POST("/:id/read", messageHandler.MarkRead)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Messagely API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

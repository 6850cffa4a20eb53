package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkpost/inkpost/config"
	"github.com/inkpost/inkpost/controllers"
	"github.com/inkpost/inkpost/middleware"
	"github.com/inkpost/inkpost/repository"
	"github.com/inkpost/inkpost/services"
	"github.com/inkpost/inkpost/utils"
)

// SetupRouter wires repositories, services, controllers and middleware.
func SetupRouter(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.RequestLogger())
	r.Use(utils.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Static("/static", "./static")

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	tokens := utils.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	authService := services.NewAuthService(userRepo, tokens, cfg.BcryptCost, utils.Sugar)
	postService := services.NewPostService(postRepo, utils.Sugar)

	authController := controllers.NewAuthController(authService, tokens)
	postController := controllers.NewPostController(postService)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(tokens), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(tokens), authController.Me)

	api.GET("/posts", postController.ListPosts)
	api.GET("/posts/:publicId", postController.GetPost)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(tokens))
	protected.POST("/posts", postController.CreatePost)
	protected.DELETE("/posts/:publicId", postController.DeletePost)
	protected.GET("/users/me/posts", postController.ListMyPosts)
	protected.POST("/upload", postController.UploadImage)

	return r
}

package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blogts/blogapi/config"
	"github.com/blogts/blogapi/controllers"
	"github.com/blogts/blogapi/middleware"
	"github.com/blogts/blogapi/models"
	"github.com/blogts/blogapi/store"
	"github.com/blogts/blogapi/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

	categoryStore := store.NewCategoryStore(db)
	postStore := store.NewPostStore(db, categoryStore, cfg.StrictCategoryRefs)
	imageStore := store.NewImageStore(db)
	userStore := store.NewUserStore(db)

	authController := controllers.NewAuthController(userStore)
	postController := controllers.NewPostController(postStore)
	categoryController := controllers.NewCategoryController(categoryStore)
	imageController := controllers.NewImageController(imageStore)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/register", authController.Register)

	api.GET("/posts", postController.ListPosts)
	api.GET("/posts/:id", postController.GetPost)
	api.GET("/posts/handle/:urlHandle", postController.GetPostByURLHandle)
	api.GET("/categories", categoryController.ListCategories)
	api.GET("/categories/:id", categoryController.GetCategory)
	api.GET("/images", imageController.ListImages)

	// Content mutation requires the Writer role.
	writer := api.Group("")
	writer.Use(middleware.AuthRequired(), middleware.RequireRole(models.RoleWriter))
	writer.POST("/posts", postController.CreatePost)
	writer.PUT("/posts/:id", postController.UpdatePost)
	writer.DELETE("/posts/:id", postController.DeletePost)
	writer.POST("/categories", categoryController.CreateCategory)
	writer.PUT("/categories/:id", categoryController.UpdateCategory)
	writer.DELETE("/categories/:id", categoryController.DeleteCategory)
	writer.POST("/images", imageController.UploadImage)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}

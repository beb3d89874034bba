package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/twtrd/twtrd/config"
	"github.com/twtrd/twtrd/controllers"
	"github.com/twtrd/twtrd/middleware"
	"github.com/twtrd/twtrd/repositories"
	"github.com/twtrd/twtrd/utils"
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
	if utils.Logger != nil {
		r.Use(utils.Ginzap(utils.Logger, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(utils.Logger, false))
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
	r.GET("/", func(ctx *gin.Context) {
		ctx.File("./static/index.html")
	})

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)

	userController := controllers.NewUserController(userRepo)
	tweetController := controllers.NewTweetController(userRepo, postRepo)

	r.GET("/tweet/:id", tweetController.ShowPage)

	api := r.Group("/api")

	users := api.Group("/users")
	users.GET("/current", middleware.RestoreUser(userRepo), userController.Current)
	users.POST("/register", userController.Register)
	users.POST("/login", userController.Login)

	tweets := api.Group("/tweets")
	tweets.GET("", tweetController.List)
	tweets.GET("/user/:userId", tweetController.ListByUser)
	tweets.GET("/:id", tweetController.Get)
	tweets.POST("", middleware.RequireUser(userRepo), tweetController.Create)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.RespondError(ctx, &utils.APIError{Status: http.StatusNotFound, Message: "api route not found"})
			return
		}
		ctx.Status(http.StatusOK)
		ctx.File("./static/index.html")
	})

	return r
}

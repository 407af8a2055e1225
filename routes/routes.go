package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ICE-TOOLS/icefit/controllers"
	"github.com/ICE-TOOLS/icefit/middlewares"
	"github.com/ICE-TOOLS/icefit/services"
)

// Deps carries everything the router needs; nothing is read from globals.
type Deps struct {
	DB        *gorm.DB
	Log       *zap.Logger
	JWTSecret []byte
	Users     *services.UserService
	Auth      *services.AuthService
	Plans     *services.MealPlanService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(d.Log))
	r.Use(cors.Default())

	authCtl := controllers.NewAuthController(d.Users, d.Auth)
	userCtl := controllers.NewUserController(d.Users)
	planCtl := controllers.NewMealPlanController(d.Plans)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "ICEFIT API is running"})
	})

	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/refresh", authCtl.Refresh)
		auth.POST("/logout", authCtl.Logout)
	}

	protected := v1.Group("")
	protected.Use(middlewares.AuthMiddleware(d.JWTSecret, d.DB))
	{
		protected.GET("/auth/profile", userCtl.GetProfile)
		protected.PUT("/auth/profile", userCtl.UpdateProfile)
		protected.DELETE("/auth/profile", userCtl.Deactivate)

		plans := protected.Group("/mealplans")
		{
			plans.POST("/generate", planCtl.Generate)
			plans.GET("/current", planCtl.Current)
			plans.POST("/:id/days/:date/complete", planCtl.CompleteMeal)
			plans.GET("/:id/progress", planCtl.Progress)
		}
	}

	return r
}

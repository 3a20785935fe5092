package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)
	r.POST("/forgot-password", controllers.ForgotPassword)
	r.POST("/reset-password", controllers.ResetPassword)
	r.GET("/food-search", controllers.SearchFood)

	// Everything else requires a bearer token
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/change-password", controllers.ChangePassword)
		auth.GET("/users", controllers.GetAccount)

		auth.GET("/current-progress", controllers.GetCurrentProgress)
		auth.POST("/reset-current-progress", controllers.ResetCurrentProgress)

		auth.GET("/settings", controllers.GetSettings)
		auth.POST("/settings", controllers.UpdateSettings)
		auth.POST("/settings/compute-goals", controllers.ComputeGoals)

		auth.POST("/sleep", controllers.AddSleep)
		auth.GET("/sleep", controllers.ListSleep)
		auth.DELETE("/sleep/:id", controllers.DeleteSleep)

		auth.POST("/workouts", controllers.AddWorkout)
		auth.GET("/workouts", controllers.ListWorkouts)
		auth.DELETE("/workouts/:id", controllers.DeleteWorkout)

		auth.POST("/meals", controllers.AddMeal)
		auth.GET("/meals", controllers.ListMeals)
		auth.DELETE("/meals/:id", controllers.DeleteMeal)

		auth.GET("/recommendations", controllers.GetRecommendations)

		rc := controllers.NewRealtimeController(rt)
		auth.GET("/ws/progress", rc.ProgressWS)
	}

	return r
}

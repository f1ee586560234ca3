package routes

import (
    "github.com/PoojaSancheti/Low-PocEat/controllers"
    "github.com/PoojaSancheti/Low-PocEat/middlewares"
    "github.com/PoojaSancheti/Low-PocEat/services"
    "github.com/PoojaSancheti/Low-PocEat/utils"

    "github.com/gin-gonic/gin"
)

func SetupRouter(mailer utils.Mailer, images utils.ImageStore) *gin.Engine {
    r := gin.Default()

    r.GET("/health", controllers.HealthCheck)

    feedback := controllers.NewFeedbackController(services.NewFeedbackService(mailer))
    r.POST("/feedback", feedback.SubmitFeedback)
    r.POST("/contact", feedback.ContactUs)

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/signup", controllers.Signup)
        auth.POST("/login", controllers.Login)
        auth.POST("/password-reset", controllers.ResetPassword)
        auth.POST("/logout", middlewares.AuthMiddleware(), controllers.Logout)
    }

    // Protected user routes
    profile := controllers.NewProfileController(images)
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/profile", profile.GetProfile)
        user.PUT("/profile", profile.UpdateProfile)
    }

    // Protected meal catalog
    meals := r.Group("/meals")
    meals.Use(middlewares.AuthMiddleware())
    {
        meals.GET("", controllers.ListMeals)
        meals.GET("/:id", controllers.GetMeal)
    }

    return r
}

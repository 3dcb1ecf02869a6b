package routes

import (
	auth_handlers "github.com/RafaelRibeiro2605/bigodariodashboard/handlers/auth"
	"github.com/RafaelRibeiro2605/bigodariodashboard/middlewares"
	"github.com/RafaelRibeiro2605/bigodariodashboard/services"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, authService services.IAuthService) {
	authHandler := auth_handlers.NewAuthHandler(authService)
	authGroup := app.Group("/auth")

	guestRoutes := authGroup.Group("")
	guestRoutes.Use(middlewares.GuestMiddleware)
	guestRoutes.Get("/login", authHandler.ShowLogin)
	guestRoutes.Post("/login", authHandler.Login)

	userRoutes := authGroup.Group("")
	userRoutes.Use(middlewares.AuthMiddleware)
	userRoutes.Get("/logout", authHandler.Logout)
	userRoutes.Post("/logout", authHandler.Logout)
}

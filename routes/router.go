package routes

import (
	"github.com/RafaelRibeiro2605/bigodariodashboard/configs/configssession"
	"github.com/RafaelRibeiro2605/bigodariodashboard/services"
	"github.com/RafaelRibeiro2605/bigodariodashboard/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes registra todas as rotas e os middlewares gerais.
func SetupRoutes(app *fiber.App, authService services.IAuthService, reportService services.IReportService) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals())

	registerAuthRoutes(app, authService)
	registerDashboardRoutes(app, reportService)

	app.Get("/", rootRedirector)

	// Captura tudo que não casou com rota nenhuma.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals disponibiliza o store de sessão e o usuário
// autenticado (quando houver) nos locals de cada requisição.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configssession.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if username := utils.GetUsernameFromSession(sess); username != "" {
			c.Locals("username", username)
		}
		return c.Next()
	}
}

// rootRedirector manda sessões autenticadas para a visão geral e as demais
// para o login.
func rootRedirector(c *fiber.Ctx) error {
	if username, ok := c.Locals("username").(string); ok && username != "" {
		return c.Redirect("/dashboard/overview", fiber.StatusFound)
	}
	return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	if accepts == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Página não encontrada"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404",
		fiber.Map{"Title": "Página não encontrada"}, "layouts/error_layout")
}

package routes

import (
	handlers "github.com/RafaelRibeiro2605/bigodariodashboard/handlers/dashboard"
	"github.com/RafaelRibeiro2605/bigodariodashboard/middlewares"
	"github.com/RafaelRibeiro2605/bigodariodashboard/services"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes define as três páginas do painel. Todas exigem
// sessão autenticada: nenhuma consulta da tabela é servida antes do login.
func registerDashboardRoutes(app *fiber.App, reportService services.IReportService) {
	overviewHandler := handlers.NewOverviewHandler(reportService)
	monthlyHandler := handlers.NewMonthlyHandler(reportService)
	clientHandler := handlers.NewClientHandler(reportService)

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(middlewares.AuthMiddleware)

	dashboardGroup.Get("/overview", overviewHandler.OverviewPage) // Visão Geral
	dashboardGroup.Get("/monthly", monthlyHandler.MonthlyPage)    // Relatórios Mensais
	dashboardGroup.Get("/clients", clientHandler.ClientHistoryPage)
}

package main

import (
	"context"

	"github.com/RafaelRibeiro2605/bigodariodashboard/configs"
	"github.com/RafaelRibeiro2605/bigodariodashboard/configs/configslog"
	"github.com/RafaelRibeiro2605/bigodariodashboard/repositories"
	"github.com/RafaelRibeiro2605/bigodariodashboard/routes"
	"github.com/RafaelRibeiro2605/bigodariodashboard/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.LoadConfig()
	if err != nil {
		configslog.Log.Fatal("Configuração inválida", zap.Error(err))
	}

	// A tabela canônica é carregada uma única vez e fica imutável pelo
	// resto do processo; falha de formato impede qualquer página de subir.
	repo := repositories.NewCSVAppointmentRepository(cfg.CSVPath, cfg.Columns)
	reportService, err := services.NewReportService(context.Background(), repo)
	if err != nil {
		configslog.Log.Fatal("Dados de agendamentos não puderam ser carregados", zap.Error(err))
	}

	verifier, err := services.NewStaticCredentialVerifier(cfg.Users)
	if err != nil {
		configslog.Log.Fatal("Verificador de credenciais não pôde ser criado", zap.Error(err))
	}
	authService := services.NewAuthService(verifier)

	engine := html.New(cfg.ViewsDir, ".html")
	app := fiber.New(fiber.Config{
		AppName: "Bigodario Dashboard",
		Views:   engine,
	})

	routes.SetupRoutes(app, authService, reportService)

	configslog.SLog.Infof("Servidor ouvindo em %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		configslog.Log.Fatal("Servidor HTTP encerrou com erro", zap.Error(err))
	}
}

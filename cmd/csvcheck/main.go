package main

import (
	"context"
	"flag"
	"os"

	"github.com/RafaelRibeiro2605/bigodariodashboard/configs"
	"github.com/RafaelRibeiro2605/bigodariodashboard/configs/configslog"
	"github.com/RafaelRibeiro2605/bigodariodashboard/repositories"
	"github.com/RafaelRibeiro2605/bigodariodashboard/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// csvcheck valida o arquivo de agendamentos sem subir o servidor: carrega a
// tabela, reporta contagens e qualidade das células e sai com código != 0
// em erro fatal de formato.
func main() {
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	pathFlag := flag.String("csv", "", "caminho do CSV (padrão: CSV_PATH do ambiente)")
	rollupFlag := flag.Bool("rollup", false, "imprime também o consolidado mensal")
	flag.Parse()

	cfg, err := configs.LoadConfig()
	if err != nil {
		configslog.Log.Fatal("Configuração inválida", zap.Error(err))
	}
	path := cfg.CSVPath
	if *pathFlag != "" {
		path = *pathFlag
	}

	repo := repositories.NewCSVAppointmentRepository(path, cfg.Columns)
	table, err := repo.LoadTable(context.Background())
	if err != nil {
		configslog.Log.Error("Arquivo reprovado na validação", zap.String("csv", path), zap.Error(err))
		configslog.SyncLogger()
		os.Exit(1)
	}

	quality := table.Quality()
	configslog.SLog.Infof("Arquivo válido: %d linhas (datas ilegíveis: %d, horários: %d, valores: %d)",
		table.Len(), quality.BadDates, quality.BadTimes, quality.BadAmounts)

	if min, max, ok := table.DateSpan(); ok {
		configslog.SLog.Infof("Período coberto: %s a %s",
			min.Format("2006-01-02"), max.Format("2006-01-02"))
	} else {
		configslog.SLog.Warn("Nenhuma linha com data válida no arquivo.")
	}

	if *rollupFlag {
		reportService := services.NewReportServiceFromTable(table)
		for _, r := range reportService.MonthlyRollup(table) {
			configslog.SLog.Infof("%s  faturamento=R$ %s  clientes=%d  atendimentos=%d",
				r.Month, r.Faturamento.StringFixed(2), r.ClientesUnicos, r.Atendimentos)
		}
	}
}

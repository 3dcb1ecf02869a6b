package handlers

import (
	"github.com/RafaelRibeiro2605/bigodariodashboard/pkg/flashmessages"
	"github.com/RafaelRibeiro2605/bigodariodashboard/pkg/renderer"
	"github.com/RafaelRibeiro2605/bigodariodashboard/services"

	"github.com/gofiber/fiber/v2"
)

// rollupRowView linha do relatório mensal já formatada para exibição.
type rollupRowView struct {
	Month          string
	Faturamento    string
	ClientesUnicos int
	Atendimentos   int
}

// MonthlyHandler página "Relatórios Mensais".
type MonthlyHandler struct {
	service services.IReportService
}

// NewMonthlyHandler cria o handler dos relatórios mensais.
func NewMonthlyHandler(service services.IReportService) *MonthlyHandler {
	return &MonthlyHandler{service: service}
}

// MonthlyPage renderiza o consolidado mês a mês da tabela inteira.
func (h *MonthlyHandler) MonthlyPage(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	rollup := h.service.MonthlyRollup(h.service.Table())
	rows := make([]rollupRowView, 0, len(rollup))
	for _, r := range rollup {
		rows = append(rows, rollupRowView{
			Month:          r.Month,
			Faturamento:    "R$ " + r.Faturamento.StringFixed(2),
			ClientesUnicos: r.ClientesUnicos,
			Atendimentos:   r.Atendimentos,
		})
	}

	renderData := fiber.Map{
		"Title":  "Relatórios Mensais",
		"Rollup": rows,
		"Empty":  len(rows) == 0,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/monthly", "layouts/dashboard_layout", renderData)
}

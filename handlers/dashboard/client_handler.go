package handlers

import (
	"github.com/RafaelRibeiro2605/bigodariodashboard/models"
	"github.com/RafaelRibeiro2605/bigodariodashboard/pkg/flashmessages"
	"github.com/RafaelRibeiro2605/bigodariodashboard/pkg/renderer"
	"github.com/RafaelRibeiro2605/bigodariodashboard/services"

	"github.com/gofiber/fiber/v2"
)

// historyRowView atendimento do histórico já formatado para exibição.
type historyRowView struct {
	Date    string
	Time    string
	Product string
	Amount  string
}

// ClientHandler página "Histórico de Clientes".
type ClientHandler struct {
	service services.IReportService
}

// NewClientHandler cria o handler do histórico de clientes.
func NewClientHandler(service services.IReportService) *ClientHandler {
	return &ClientHandler{service: service}
}

// ClientHistoryPage renderiza o seletor de clientes e o histórico do
// cliente escolhido, em data decrescente.
func (h *ClientHandler) ClientHistoryPage(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	table := h.service.Table()

	clients := h.service.Clients(table)
	selected := c.Query("cliente")
	if selected == "" && len(clients) > 0 {
		selected = clients[0]
	}

	var rows []historyRowView
	if selected != "" {
		for _, r := range h.service.ClientHistory(table, selected) {
			rows = append(rows, historyRowView{
				Date:    formatDate(r),
				Time:    formatHour(r),
				Product: r.Product,
				Amount:  formatAmount(r),
			})
		}
	}

	renderData := fiber.Map{
		"Title":    "Histórico de Clientes",
		"Clients":  clients,
		"Selected": selected,
		"History":  rows,
		"Empty":    len(rows) == 0,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/clients", "layouts/dashboard_layout", renderData)
}

func formatDate(r models.AppointmentRecord) string {
	if !r.HasDate() {
		return "—"
	}
	return r.Date.Format("02/01/2006")
}

func formatHour(r models.AppointmentRecord) string {
	if r.Time == "" {
		return "—"
	}
	return r.Time
}

func formatAmount(r models.AppointmentRecord) string {
	if !r.Amount.Valid {
		return "—"
	}
	return "R$ " + r.Amount.Decimal.StringFixed(2)
}

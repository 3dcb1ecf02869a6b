package handlers

import (
	"time"

	"github.com/RafaelRibeiro2605/bigodariodashboard/models"
	"github.com/RafaelRibeiro2605/bigodariodashboard/pkg/flashmessages"
	"github.com/RafaelRibeiro2605/bigodariodashboard/pkg/renderer"
	"github.com/RafaelRibeiro2605/bigodariodashboard/services"

	"github.com/gofiber/fiber/v2"
)

const queryDateLayout = "2006-01-02"

// sumRowView linha de agregação já formatada para exibição.
type sumRowView struct {
	Label string
	Total string
}

// weekdayOption opção do seletor de dia da semana, na ordem canônica
// (domingo primeiro) com o nome localizado.
type weekdayOption struct {
	Name     string
	Selected bool
}

// OverviewHandler página "Visão Geral": métricas e agregações sobre o
// período filtrado.
type OverviewHandler struct {
	service services.IReportService
}

// NewOverviewHandler cria o handler da visão geral.
func NewOverviewHandler(service services.IReportService) *OverviewHandler {
	return &OverviewHandler{service: service}
}

// OverviewPage renderiza as métricas e os consolidados do período.
func (h *OverviewHandler) OverviewPage(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	table := h.service.Table()

	// Período padrão: da menor à maior data presente na tabela.
	minDate, maxDate, hasDates := table.DateSpan()
	start, end := minDate, maxDate
	if s, err := time.Parse(queryDateLayout, c.Query("inicio")); err == nil {
		start = s
	}
	if e, err := time.Parse(queryDateLayout, c.Query("fim")); err == nil {
		end = e
	}

	view := table
	if hasDates {
		view = h.service.FilterByDateRange(table, start, end)
	}

	metrics := h.service.Overview(view)
	ticketMedio := "N/A" // indefinido sobre zero linhas, nunca "0,00"
	if metrics.TicketMedio != nil {
		ticketMedio = "R$ " + metrics.TicketMedio.StringFixed(2)
	}

	// Faturamento por produto: a ordenação decrescente é decisão de
	// exibição, tomada aqui e não no agregador.
	byProduct := h.service.AggregateSum(view, services.GroupByProduct, services.SumAmount)
	services.SortRowsByTotalDesc(byProduct)

	// Dia da semana escolhido para o recorte horário (padrão: domingo,
	// primeiro da ordem canônica).
	selectedDay := models.WeekdayOrder[0]
	if d, ok := models.WeekdayFromNamePT(c.Query("dia")); ok {
		selectedDay = d
	}
	dayView := h.service.FilterByWeekday(view, selectedDay)

	weekdays := make([]weekdayOption, 0, len(models.WeekdayOrder))
	for _, d := range models.WeekdayOrder {
		weekdays = append(weekdays, weekdayOption{
			Name:     models.WeekdayNamePT(d),
			Selected: d == selectedDay,
		})
	}

	renderData := fiber.Map{
		"Title":            "Visão Geral",
		"Start":            start.Format(queryDateLayout),
		"End":              end.Format(queryDateLayout),
		"Clientes":         metrics.Clientes,
		"FaturamentoBruto": "R$ " + metrics.FaturamentoBruto.StringFixed(2),
		"Agendamentos":     metrics.Agendamentos,
		"TicketMedio":      ticketMedio,
		"PorDia":           toViews(h.service.AggregateSum(view, services.GroupByDate, services.SumAmount)),
		"PorMes":           toViews(h.service.AggregateSum(view, services.GroupByMonth, services.SumAmount)),
		"PorProduto":       toViews(byProduct),
		"PorHora":          toViews(h.service.AggregateSum(view, services.GroupByHour, services.SumAmount)),
		"PorHoraDia":       toViews(h.service.AggregateSum(dayView, services.GroupByHour, services.SumAmount)),
		"DiaEscolhido":     models.WeekdayNamePT(selectedDay),
		"Weekdays":         weekdays,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/overview", "layouts/dashboard_layout", renderData)
}

func toViews(rows []services.SumRow) []sumRowView {
	views := make([]sumRowView, 0, len(rows))
	for _, r := range rows {
		views = append(views, sumRowView{Label: r.Key, Total: "R$ " + r.Total.StringFixed(2)})
	}
	return views
}

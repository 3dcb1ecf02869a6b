package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/RafaelRibeiro2605/bigodariodashboard/configs/configslog"
	"github.com/RafaelRibeiro2605/bigodariodashboard/models"
	"github.com/RafaelRibeiro2605/bigodariodashboard/repositories"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GroupKey dimensão de agrupamento aceita por AggregateSum.
type GroupKey int

const (
	GroupByDate GroupKey = iota
	GroupByMonth
	GroupByProduct
	GroupByHour
	GroupByWeekday
)

// ValueField valor agregado por AggregateSum.
type ValueField int

const (
	// SumAmount soma o valor monetário; linhas sem valor válido são
	// excluídas (nunca tratadas como zero).
	SumAmount ValueField = iota
	// CountRows conta atendimentos (uma unidade por linha com chave válida).
	CountRows
)

// Field campo consultável por CountDistinct.
type Field int

const (
	FieldClient Field = iota
	FieldProduct
)

// SumRow uma linha do resultado de AggregateSum: chave distinta + total.
type SumRow struct {
	Key   string
	Total decimal.Decimal
}

// MonthlyRollupRow consolidado de um mês para o relatório mensal.
type MonthlyRollupRow struct {
	Month          string
	Faturamento    decimal.Decimal
	ClientesUnicos int
	Atendimentos   int
}

// OverviewMetrics métricas dos cartões da visão geral, sobre uma visão
// (possivelmente filtrada) da tabela.
type OverviewMetrics struct {
	Clientes         int
	FaturamentoBruto decimal.Decimal
	Agendamentos     int
	// TicketMedio é nil quando não há linha com valor válido no recorte;
	// a camada de apresentação exibe "N/A", nunca zero.
	TicketMedio *decimal.Decimal
}

// IReportService consultas de agregação sobre a tabela canônica. Todas são
// leituras puras: nenhuma modifica a tabela nem as visões recebidas.
type IReportService interface {
	Table() *models.AppointmentTable
	FilterByDateRange(t *models.AppointmentTable, start, end time.Time) *models.AppointmentTable
	FilterByWeekday(t *models.AppointmentTable, d time.Weekday) *models.AppointmentTable
	AggregateSum(t *models.AppointmentTable, group GroupKey, value ValueField) []SumRow
	CountDistinct(t *models.AppointmentTable, field Field) int
	ClientHistory(t *models.AppointmentTable, client string) []models.AppointmentRecord
	MonthlyRollup(t *models.AppointmentTable) []MonthlyRollupRow
	Overview(t *models.AppointmentTable) OverviewMetrics
	Clients(t *models.AppointmentTable) []string
}

// ReportService implementa IReportService sobre a tabela carregada uma
// única vez na construção.
type ReportService struct {
	table *models.AppointmentTable
}

// NewReportService carrega a tabela canônica pelo repositório e devolve o
// serviço de relatórios. Falha de formato da fonte é fatal: nenhuma visão
// é servida com dados parciais.
func NewReportService(ctx context.Context, repo repositories.IAppointmentRepository) (IReportService, error) {
	table, err := repo.LoadTable(ctx)
	if err != nil {
		configslog.Log.Error("Carga da tabela de agendamentos falhou", zap.Error(err))
		return nil, err
	}
	return &ReportService{table: table}, nil
}

// NewReportServiceFromTable constrói o serviço sobre uma tabela já
// materializada (testes e ferramentas).
func NewReportServiceFromTable(table *models.AppointmentTable) IReportService {
	return &ReportService{table: table}
}

// Table devolve a tabela canônica completa.
func (s *ReportService) Table() *models.AppointmentTable { return s.table }

// FilterByDateRange devolve uma nova visão com as linhas cuja data cai em
// [start, end], inclusivo nas duas pontas. Linhas sem data válida ficam fora
// de qualquer visão limitada por data. Contrato explícito: start > end
// devolve visão vazia, nunca erro.
func (s *ReportService) FilterByDateRange(t *models.AppointmentTable, start, end time.Time) *models.AppointmentTable {
	start = truncateDay(start)
	end = truncateDay(end)

	var rows []models.AppointmentRecord
	if !start.After(end) {
		for _, r := range t.Rows() {
			if !r.HasDate() {
				continue
			}
			d := truncateDay(*r.Date)
			if d.Before(start) || d.After(end) {
				continue
			}
			rows = append(rows, r)
		}
	}
	return models.NewAppointmentTable(rows, t.Quality())
}

// FilterByWeekday devolve uma nova visão com as linhas do dia da semana
// pedido. O filtro compara a enumeração canônica, nunca o nome exibido.
func (s *ReportService) FilterByWeekday(t *models.AppointmentTable, d time.Weekday) *models.AppointmentTable {
	var rows []models.AppointmentRecord
	for _, r := range t.Rows() {
		if r.Weekday != nil && *r.Weekday == d {
			rows = append(rows, r)
		}
	}
	return models.NewAppointmentTable(rows, t.Quality())
}

// AggregateSum agrupa por uma dimensão e soma o campo de valor, produzindo
// uma linha por chave distinta não nula presente na visão.
//
// Linhas com chave nula (data ilegível, horário ilegível, produto vazio)
// são excluídas do resultado; nunca viram um balde espúrio "desconhecido".
// Com SumAmount, linhas sem valor válido também são excluídas. Zero linhas
// correspondentes => slice vazio, nunca uma linha zerada.
//
// Ordenação: Date e Month saem em ordem cronológica crescente (as chaves
// ISO ordenam lexicograficamente). As demais dimensões saem na ordem de
// primeira ocorrência; ordenar para exibição é responsabilidade explícita
// do chamador (ver SortRowsByTotalDesc).
func (s *ReportService) AggregateSum(t *models.AppointmentTable, group GroupKey, value ValueField) []SumRow {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, r := range t.Rows() {
		key, ok := groupValue(r, group)
		if !ok {
			continue
		}
		var inc decimal.Decimal
		switch value {
		case SumAmount:
			if !r.Amount.Valid {
				continue
			}
			inc = r.Amount.Decimal
		case CountRows:
			inc = decimal.NewFromInt(1)
		}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(inc)
	}

	if group == GroupByDate || group == GroupByMonth {
		sort.Strings(order)
	}

	rows := make([]SumRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, SumRow{Key: key, Total: totals[key]})
	}
	return rows
}

// CountDistinct conta os valores distintos não nulos de um campo. Valores
// vazios nunca contam como um valor distinto.
func (s *ReportService) CountDistinct(t *models.AppointmentTable, field Field) int {
	seen := make(map[string]struct{})
	for _, r := range t.Rows() {
		var v string
		switch field {
		case FieldClient:
			v = r.Client
		case FieldProduct:
			v = r.Product
		}
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// ClientHistory devolve os atendimentos de um cliente (comparação exata,
// sensível a maiúsculas), em data decrescente; empates preservam a ordem
// original das linhas. Linhas do cliente sem data válida ficam por último.
func (s *ReportService) ClientHistory(t *models.AppointmentTable, client string) []models.AppointmentRecord {
	var history []models.AppointmentRecord
	for _, r := range t.Rows() {
		if r.Client == client {
			history = append(history, r)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		a, b := history[i].Date, history[j].Date
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return history
}

// MonthlyRollup consolida faturamento, clientes únicos e atendimentos por
// mês, em ordem cronológica crescente. Linhas sem data válida não têm mês e
// ficam fora do consolidado.
func (s *ReportService) MonthlyRollup(t *models.AppointmentTable) []MonthlyRollupRow {
	type acc struct {
		revenue decimal.Decimal
		clients map[string]struct{}
		count   int
	}
	byMonth := make(map[string]*acc)
	var months []string

	for _, r := range t.Rows() {
		if r.Month == "" {
			continue
		}
		a, ok := byMonth[r.Month]
		if !ok {
			a = &acc{clients: make(map[string]struct{})}
			byMonth[r.Month] = a
			months = append(months, r.Month)
		}
		a.count++
		if r.Client != "" {
			a.clients[r.Client] = struct{}{}
		}
		if r.Amount.Valid {
			a.revenue = a.revenue.Add(r.Amount.Decimal)
		}
	}
	sort.Strings(months)

	rows := make([]MonthlyRollupRow, 0, len(months))
	for _, m := range months {
		a := byMonth[m]
		rows = append(rows, MonthlyRollupRow{
			Month:          m,
			Faturamento:    a.revenue,
			ClientesUnicos: len(a.clients),
			Atendimentos:   a.count,
		})
	}
	return rows
}

// Overview calcula as métricas dos cartões sobre a visão recebida.
// O ticket médio divide o faturamento pelo número de linhas com valor
// válido; sobre zero linhas ele é indefinido (nil), nunca zero.
func (s *ReportService) Overview(t *models.AppointmentTable) OverviewMetrics {
	m := OverviewMetrics{
		Clientes:     s.CountDistinct(t, FieldClient),
		Agendamentos: t.Len(),
	}
	priced := 0
	for _, r := range t.Rows() {
		if r.Amount.Valid {
			m.FaturamentoBruto = m.FaturamentoBruto.Add(r.Amount.Decimal)
			priced++
		}
	}
	if priced > 0 {
		avg := m.FaturamentoBruto.DivRound(decimal.NewFromInt(int64(priced)), 2)
		m.TicketMedio = &avg
	}
	return m
}

// Clients lista os clientes distintos não vazios, em ordem alfabética,
// para o seletor do histórico.
func (s *ReportService) Clients(t *models.AppointmentTable) []string {
	seen := make(map[string]struct{})
	var clients []string
	for _, r := range t.Rows() {
		if r.Client == "" {
			continue
		}
		if _, ok := seen[r.Client]; !ok {
			seen[r.Client] = struct{}{}
			clients = append(clients, r.Client)
		}
	}
	sort.Strings(clients)
	return clients
}

// SortRowsByTotalDesc ordena (de forma estável) um resultado de agregação
// por total decrescente. Ordenar para exibição é sempre uma escolha
// explícita do chamador, nunca do agregador.
func SortRowsByTotalDesc(rows []SumRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
}

// groupValue extrai a chave de agrupamento de uma linha. ok=false quando a
// linha não tem valor para a dimensão pedida.
func groupValue(r models.AppointmentRecord, group GroupKey) (string, bool) {
	switch group {
	case GroupByDate:
		if !r.HasDate() {
			return "", false
		}
		return r.Date.Format("2006-01-02"), true
	case GroupByMonth:
		return r.Month, r.Month != ""
	case GroupByProduct:
		return r.Product, r.Product != ""
	case GroupByHour:
		if r.Hour == nil {
			return "", false
		}
		return fmt.Sprintf("%02d", *r.Hour), true
	case GroupByWeekday:
		if r.Weekday == nil {
			return "", false
		}
		return r.Weekday.String(), true
	}
	return "", false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var _ IReportService = (*ReportService)(nil)

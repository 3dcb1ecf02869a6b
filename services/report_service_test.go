package services

import (
	"strings"
	"testing"
	"time"

	"github.com/RafaelRibeiro2605/bigodariodashboard/configs"
	"github.com/RafaelRibeiro2605/bigodariodashboard/models"
	"github.com/RafaelRibeiro2605/bigodariodashboard/repositories"

	"github.com/shopspring/decimal"
)

var testCols = configs.ColumnMapping{
	Date:    "Data",
	Time:    "Horário",
	Client:  "Cliente",
	Product: "Produto",
	Amount:  "Valor (R$)",
}

// loadTable carrega uma tabela a partir de um CSV literal, pelo mesmo
// caminho de carga da aplicação.
func loadTable(t *testing.T, csv string) *models.AppointmentTable {
	t.Helper()
	table, err := repositories.ReadTable(strings.NewReader(csv), testCols)
	if err != nil {
		t.Fatalf("carga falhou: %v", err)
	}
	return table
}

// Cenário de ponta a ponta da suíte: duas linhas em março, uma em abril
// com horário ilegível.
const sampleCSV = "Data,Horário,Cliente,Produto,Valor (R$)\n" +
	"2024-03-01,10:00,Ana,Corte,50.00\n" +
	"2024-03-01,11:00,Bob,Barba,30.00\n" +
	"2024-04-05,invalid,Ana,Corte,60.00\n"

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("data de teste inválida %q: %v", s, err)
	}
	return d
}

func TestMonthlyRollupEndToEnd(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	rollup := svc.MonthlyRollup(table)
	if len(rollup) != 2 {
		t.Fatalf("esperava 2 meses, obtive %d", len(rollup))
	}

	march := rollup[0]
	if march.Month != "2024-03" {
		t.Fatalf("meses fora de ordem cronológica: %q primeiro", march.Month)
	}
	if march.Faturamento.StringFixed(2) != "80.00" || march.ClientesUnicos != 2 || march.Atendimentos != 2 {
		t.Fatalf("março = %+v, esperava (80.00, 2, 2)", march)
	}

	april := rollup[1]
	if april.Month != "2024-04" {
		t.Fatalf("segundo mês = %q, esperava 2024-04", april.Month)
	}
	if april.Faturamento.StringFixed(2) != "60.00" || april.ClientesUnicos != 1 || april.Atendimentos != 1 {
		t.Fatalf("abril = %+v, esperava (60.00, 1, 1)", april)
	}
}

func TestAggregateSumByHourExcludesNullHour(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	// A linha de abril tem horário ilegível: fica fora do agrupamento por
	// hora, mas continua contada no consolidado mensal (teste acima).
	byHour := svc.AggregateSum(table, GroupByHour, SumAmount)
	if len(byHour) != 2 {
		t.Fatalf("esperava 2 horas distintas, obtive %d", len(byHour))
	}
	total := decimal.Zero
	for _, r := range byHour {
		total = total.Add(r.Total)
	}
	if total.StringFixed(2) != "80.00" {
		t.Fatalf("soma por hora = %s, a linha sem horário não deveria entrar", total.StringFixed(2))
	}
}

func TestAggregateSumMonthConsistentWithBruteForce(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	byMonth := svc.AggregateSum(table, GroupByMonth, SumAmount)
	for _, row := range byMonth {
		// Força bruta: filtra as linhas do mês e soma diretamente.
		brute := decimal.Zero
		for _, r := range table.Rows() {
			if r.Month == row.Key && r.Amount.Valid {
				brute = brute.Add(r.Amount.Decimal)
			}
		}
		if !row.Total.Equal(brute) {
			t.Fatalf("mês %s: agregado %s != força bruta %s", row.Key, row.Total, brute)
		}
	}
}

func TestAggregateSumChronologicalByDate(t *testing.T) {
	// Fonte propositalmente fora de ordem.
	csv := "Data,Horário,Cliente,Produto,Valor (R$)\n" +
		"2024-03-10,10:00,Ana,Corte,10.00\n" +
		"2024-03-01,10:00,Bob,Corte,20.00\n" +
		"2024-03-05,10:00,Caio,Corte,30.00\n"
	table := loadTable(t, csv)
	svc := NewReportServiceFromTable(table)

	rows := svc.AggregateSum(table, GroupByDate, SumAmount)
	want := []string{"2024-03-01", "2024-03-05", "2024-03-10"}
	if len(rows) != len(want) {
		t.Fatalf("esperava %d datas, obtive %d", len(want), len(rows))
	}
	for i, w := range want {
		if rows[i].Key != w {
			t.Fatalf("posição %d: %q, esperava %q", i, rows[i].Key, w)
		}
	}
}

func TestAggregateSumExcludesNullKeys(t *testing.T) {
	csv := "Data,Horário,Cliente,Produto,Valor (R$)\n" +
		"2024-03-01,10:00,Ana,Corte,50.00\n" +
		"2024-03-02,10:00,Bob,,30.00\n"
	table := loadTable(t, csv)
	svc := NewReportServiceFromTable(table)

	rows := svc.AggregateSum(table, GroupByProduct, SumAmount)
	if len(rows) != 1 || rows[0].Key != "Corte" {
		t.Fatalf("produto vazio nunca vira balde 'desconhecido': %+v", rows)
	}
}

func TestAggregateSumCountRows(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	rows := svc.AggregateSum(table, GroupByMonth, CountRows)
	if len(rows) != 2 {
		t.Fatalf("esperava 2 meses, obtive %d", len(rows))
	}
	if rows[0].Key != "2024-03" || !rows[0].Total.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("março = %+v, esperava contagem 2", rows[0])
	}
	if rows[1].Key != "2024-04" || !rows[1].Total.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("abril = %+v, esperava contagem 1", rows[1])
	}
}

func TestAggregateSumZeroRowsIsEmpty(t *testing.T) {
	table := loadTable(t, "Data,Horário,Cliente,Produto,Valor (R$)\n")
	svc := NewReportServiceFromTable(table)

	rows := svc.AggregateSum(table, GroupByMonth, SumAmount)
	if len(rows) != 0 {
		t.Fatalf("zero linhas deve produzir sequência vazia, nunca linha zerada: %+v", rows)
	}
}

func TestFilterByDateRangeInclusiveAndPure(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	view := svc.FilterByDateRange(table, day(t, "2024-03-01"), day(t, "2024-03-01"))
	if view.Len() != 2 {
		t.Fatalf("bordas são inclusivas: esperava 2 linhas, obtive %d", view.Len())
	}
	if table.Len() != 3 {
		t.Fatal("o filtro não pode modificar a tabela de origem")
	}
}

func TestFilterByDateRangeIdempotent(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	start, end := day(t, "2024-03-01"), day(t, "2024-03-31")
	once := svc.FilterByDateRange(table, start, end)
	twice := svc.FilterByDateRange(once, start, end)
	wider := svc.FilterByDateRange(once, day(t, "2024-01-01"), day(t, "2024-12-31"))

	if once.Len() != twice.Len() || once.Len() != wider.Len() {
		t.Fatalf("filtrar de novo (igual ou mais largo) deve devolver o mesmo conjunto: %d/%d/%d",
			once.Len(), twice.Len(), wider.Len())
	}
	for i := range once.Rows() {
		if once.Rows()[i].Client != twice.Rows()[i].Client {
			t.Fatal("conjuntos divergentes entre filtragens repetidas")
		}
	}
}

func TestFilterByDateRangeStartAfterEnd(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	// Contrato explícito: intervalo invertido devolve visão vazia.
	view := svc.FilterByDateRange(table, day(t, "2024-04-01"), day(t, "2024-03-01"))
	if view.Len() != 0 {
		t.Fatalf("start > end deve devolver visão vazia, obtive %d linhas", view.Len())
	}
}

func TestFilterByDateRangeExcludesNullDates(t *testing.T) {
	csv := "Data,Horário,Cliente,Produto,Valor (R$)\n" +
		"2024-03-01,10:00,Ana,Corte,50.00\n" +
		"sem-data,10:00,Bob,Barba,30.00\n"
	table := loadTable(t, csv)
	svc := NewReportServiceFromTable(table)

	view := svc.FilterByDateRange(table, day(t, "2020-01-01"), day(t, "2030-01-01"))
	if view.Len() != 1 || view.Rows()[0].Client != "Ana" {
		t.Fatalf("linha sem data não pode entrar em visão limitada por data: %+v", view.Rows())
	}
}

func TestFilterByWeekday(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	// 2024-03-01 foi sexta; 2024-04-05 também.
	fri := svc.FilterByWeekday(table, time.Friday)
	if fri.Len() != 3 {
		t.Fatalf("esperava 3 linhas de sexta, obtive %d", fri.Len())
	}
	sun := svc.FilterByWeekday(table, time.Sunday)
	if sun.Len() != 0 {
		t.Fatalf("esperava 0 linhas de domingo, obtive %d", sun.Len())
	}
}

func TestCountDistinctIgnoresEmpty(t *testing.T) {
	csv := "Data,Horário,Cliente,Produto,Valor (R$)\n" +
		"2024-03-01,10:00,A,Corte,10.00\n" +
		"2024-03-02,10:00,A,Corte,10.00\n" +
		"2024-03-03,10:00,B,Corte,10.00\n" +
		"2024-03-04,10:00,,Corte,10.00\n" +
		"2024-03-05,10:00,,Corte,10.00\n"
	table := loadTable(t, csv)
	svc := NewReportServiceFromTable(table)

	if got := svc.CountDistinct(table, FieldClient); got != 2 {
		t.Fatalf("CountDistinct = %d, esperava 2 (vazio nunca conta)", got)
	}
}

func TestOverviewTicketMedio(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	m := svc.Overview(table)
	if m.Clientes != 2 || m.Agendamentos != 3 {
		t.Fatalf("métricas = %+v", m)
	}
	if m.FaturamentoBruto.StringFixed(2) != "140.00" {
		t.Fatalf("faturamento = %s, esperava 140.00", m.FaturamentoBruto.StringFixed(2))
	}
	if m.TicketMedio == nil {
		t.Fatal("ticket médio deveria estar definido")
	}
	if got := m.TicketMedio.StringFixed(2); got != "46.67" {
		t.Fatalf("ticket médio = %s, esperava 46.67", got)
	}
}

func TestOverviewTicketMedioUndefinedOverZeroRows(t *testing.T) {
	svc := NewReportServiceFromTable(models.NewAppointmentTable(nil, models.LoadQuality{}))

	m := svc.Overview(svc.Table())
	if m.TicketMedio != nil {
		t.Fatalf("média sobre zero linhas é indefinida (nil), nunca zero: %v", m.TicketMedio)
	}
	if !m.FaturamentoBruto.Equal(decimal.Zero) {
		t.Fatalf("soma sobre zero linhas é zero, obtive %s", m.FaturamentoBruto)
	}
}

func TestClientHistoryDescendingStable(t *testing.T) {
	// Duas linhas de Ana no mesmo dia para exercitar o desempate estável.
	csv := "Data,Horário,Cliente,Produto,Valor (R$)\n" +
		"2024-03-01,10:00,Ana,Corte,50.00\n" +
		"2024-03-01,11:00,Bob,Barba,30.00\n" +
		"2024-04-05,09:00,Ana,Corte,60.00\n" +
		"2024-04-05,14:00,Ana,Barba,25.00\n"
	table := loadTable(t, csv)
	svc := NewReportServiceFromTable(table)

	history := svc.ClientHistory(table, "Ana")
	if len(history) != 3 {
		t.Fatalf("esperava 3 atendimentos da Ana, obtive %d", len(history))
	}
	if history[0].Month != "2024-04" || history[2].Month != "2024-03" {
		t.Fatal("histórico deve vir em data decrescente")
	}
	// Empate em 2024-04-05: ordem original preservada (09:00 antes de 14:00).
	if history[0].Time != "09:00" || history[1].Time != "14:00" {
		t.Fatalf("desempate instável: %q depois %q", history[0].Time, history[1].Time)
	}
}

func TestClientHistoryCaseSensitive(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	if got := svc.ClientHistory(table, "ana"); len(got) != 0 {
		t.Fatalf("comparação é exata e sensível a maiúsculas, obtive %d linhas", len(got))
	}
}

func TestClientsSortedDistinct(t *testing.T) {
	table := loadTable(t, sampleCSV)
	svc := NewReportServiceFromTable(table)

	clients := svc.Clients(table)
	if len(clients) != 2 || clients[0] != "Ana" || clients[1] != "Bob" {
		t.Fatalf("clientes = %v, esperava [Ana Bob]", clients)
	}
}

func TestSortRowsByTotalDesc(t *testing.T) {
	rows := []SumRow{
		{Key: "Barba", Total: decimal.NewFromInt(30)},
		{Key: "Corte", Total: decimal.NewFromInt(110)},
		{Key: "Sobrancelha", Total: decimal.NewFromInt(15)},
	}
	SortRowsByTotalDesc(rows)
	want := []string{"Corte", "Barba", "Sobrancelha"}
	for i, w := range want {
		if rows[i].Key != w {
			t.Fatalf("posição %d: %q, esperava %q", i, rows[i].Key, w)
		}
	}
}

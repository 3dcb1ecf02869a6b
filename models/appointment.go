package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentRecord é uma linha da tabela canônica de agendamentos.
// Os campos derivados (Month, Weekday, Hour) são calculados uma única vez
// na carga e nunca mudam depois; cada um é função pura da própria linha.
type AppointmentRecord struct {
	// Campos brutos da fonte.
	Date    *time.Time // nil quando a célula de data não pôde ser interpretada
	Time    string     // "HH:MM" como veio na fonte; pode ser vazio/ilegível
	Client  string
	Product string
	Amount  decimal.NullDecimal // inválido quando ausente/ilegível

	// Campos derivados.
	Hour    *int          // 0-23, nil quando o horário é ausente/ilegível
	Month   string        // "AAAA-MM", vazio quando Date é nil
	Weekday *time.Weekday // nil quando Date é nil
}

// HasDate informa se a linha tem data válida. Linhas sem data são mantidas
// na tabela, mas excluídas de qualquer consulta baseada em data.
func (r AppointmentRecord) HasDate() bool { return r.Date != nil }

// MonthKey deriva o rótulo ano-mês usado como chave de agrupamento.
// O formato ISO garante que ordenação lexicográfica = ordenação cronológica.
func MonthKey(t time.Time) string { return t.Format("2006-01") }

// WeekdayOrder é a ordenação canônica fixa dos dias da semana, começando no
// domingo. Os seletores da interface dependem exatamente desta ordem; ela é
// uma constante do domínio, nunca derivada dos dados nem dos nomes exibidos.
var WeekdayOrder = [7]time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// weekdayNamesPT mapeia a enumeração canônica para os nomes exibidos.
// A ordenação é sempre feita sobre a enumeração, nunca sobre estes nomes.
var weekdayNamesPT = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda",
	time.Tuesday:   "Terça",
	time.Wednesday: "Quarta",
	time.Thursday:  "Quinta",
	time.Friday:    "Sexta",
	time.Saturday:  "Sábado",
}

// WeekdayNamePT devolve o nome localizado de um dia da semana.
func WeekdayNamePT(d time.Weekday) string { return weekdayNamesPT[d] }

// WeekdayFromNamePT resolve um nome localizado de volta para a enumeração
// canônica (usado pelos seletores da interface). O segundo retorno indica
// se o nome era conhecido.
func WeekdayFromNamePT(name string) (time.Weekday, bool) {
	for d, n := range weekdayNamesPT {
		if n == name {
			return d, true
		}
	}
	return 0, false
}

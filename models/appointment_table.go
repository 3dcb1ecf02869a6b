package models

import "time"

// LoadQuality contadores de células descartadas durante a carga, para
// visibilidade de qualidade dos dados. Nenhum deles aborta a carga.
type LoadQuality struct {
	BadDates   int
	BadTimes   int
	BadAmounts int
}

// AppointmentTable é a tabela canônica, imutável depois da carga.
// Todas as consultas são leituras puras sobre ela (ou sobre uma visão
// filtrada por data); não há API de escrita nem persistência.
type AppointmentTable struct {
	rows    []AppointmentRecord
	quality LoadQuality
}

// NewAppointmentTable constrói a tabela a partir das linhas na ordem
// original da fonte. A ordem é preservada para exibição estável.
func NewAppointmentTable(rows []AppointmentRecord, quality LoadQuality) *AppointmentTable {
	return &AppointmentTable{rows: rows, quality: quality}
}

// Rows expõe as linhas para leitura. O slice devolvido não deve ser
// modificado; a tabela é compartilhada entre todas as sessões.
func (t *AppointmentTable) Rows() []AppointmentRecord { return t.rows }

// Len devolve o número de linhas (atendimentos) da tabela.
func (t *AppointmentTable) Len() int { return len(t.rows) }

// Quality devolve os contadores de qualidade registrados na carga.
func (t *AppointmentTable) Quality() LoadQuality { return t.quality }

// DateSpan devolve a menor e a maior data válidas da tabela, usadas como
// padrão do filtro de período. ok=false quando nenhuma linha tem data.
func (t *AppointmentTable) DateSpan() (min, max time.Time, ok bool) {
	for _, r := range t.rows {
		if !r.HasDate() {
			continue
		}
		d := *r.Date
		if !ok {
			min, max, ok = d, d, true
			continue
		}
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max, ok
}

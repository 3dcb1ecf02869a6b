package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/RafaelRibeiro2605/bigodariodashboard/configs"
	"github.com/RafaelRibeiro2605/bigodariodashboard/configs/configslog"
	"github.com/RafaelRibeiro2605/bigodariodashboard/models"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DataFormatError erro fatal de formato da fonte: a carga inteira falha e
// nenhum dado parcial é exposto.
type DataFormatError string

func (e DataFormatError) Error() string { return string(e) }

// Erros de formato da fonte.
const (
	ErrSourceUnreadable  DataFormatError = "fonte de agendamentos ilegível"
	ErrMissingHeader     DataFormatError = "fonte de agendamentos sem linha de cabeçalho"
	ErrMissingDateColumn DataFormatError = "coluna de data obrigatória ausente"
)

// Layouts de data aceitos nas células. O primeiro é o formato do export
// padrão; o segundo aparece em planilhas editadas à mão.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// IAppointmentRepository carrega a tabela canônica a partir da fonte externa.
type IAppointmentRepository interface {
	LoadTable(ctx context.Context) (*models.AppointmentTable, error)
}

// CSVAppointmentRepository implementa IAppointmentRepository sobre um
// arquivo CSV com cabeçalho. A fonte é lida uma única vez por carga.
type CSVAppointmentRepository struct {
	path string
	cols configs.ColumnMapping
}

// NewCSVAppointmentRepository cria o repositório para o arquivo informado.
func NewCSVAppointmentRepository(path string, cols configs.ColumnMapping) IAppointmentRepository {
	return &CSVAppointmentRepository{path: path, cols: cols}
}

// LoadTable abre o arquivo e materializa a tabela canônica.
func (r *CSVAppointmentRepository) LoadTable(ctx context.Context) (*models.AppointmentTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(r.path)
	if err != nil {
		configslog.Log.Error("Arquivo de agendamentos não pôde ser aberto",
			zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer f.Close()

	return ReadTable(f, r.cols)
}

// ReadTable interpreta a fonte tabular e deriva os campos de calendário.
//
// Política de células inválidas (documentada e testada): célula de data
// ilegível => linha mantida com data nula, excluída de qualquer consulta
// baseada em data; horário ilegível => Hour nulo; valor ilegível/ausente =>
// Amount nulo, excluído das somas de faturamento mas contado como
// atendimento. Nenhum desses casos aborta a carga; a ausência da coluna de
// data aborta.
func ReadTable(src io.Reader, cols configs.ColumnMapping) (*models.AppointmentTable, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1 // linhas irregulares são tratadas célula a célula
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	idx := headerIndex(header)
	dateIdx, ok := idx[cols.Date]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingDateColumn, cols.Date)
	}
	timeIdx, hasTime := idx[cols.Time]
	clientIdx, hasClient := idx[cols.Client]
	productIdx, hasProduct := idx[cols.Product]
	amountIdx, hasAmount := idx[cols.Amount]
	if !hasTime || !hasClient || !hasProduct || !hasAmount {
		configslog.SLog.Warnf("Colunas opcionais ausentes no CSV (horário=%v cliente=%v produto=%v valor=%v); células serão tratadas como vazias",
			hasTime, hasClient, hasProduct, hasAmount)
	}

	var (
		rows     []models.AppointmentRecord
		quality  models.LoadQuality
		warnings error
	)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: linha %d: %v", ErrSourceUnreadable, line, err)
		}

		row := models.AppointmentRecord{
			Client:  cell(record, clientIdx, hasClient),
			Product: cell(record, productIdx, hasProduct),
		}

		// Data e campos de calendário derivados (funções puras da linha).
		rawDate := cell(record, dateIdx, true)
		if d, ok := parseDate(rawDate); ok {
			day := d
			wd := d.Weekday()
			row.Date = &day
			row.Month = models.MonthKey(d)
			row.Weekday = &wd
		} else {
			quality.BadDates++
			warnings = multierr.Append(warnings, fmt.Errorf("linha %d: data ilegível %q", line, rawDate))
		}

		// Horário "HH:MM"; ilegível ou ausente vira Hour nulo, nunca erro.
		rawTime := cell(record, timeIdx, hasTime)
		row.Time = rawTime
		if h, ok := parseHour(rawTime); ok {
			row.Hour = &h
		} else if rawTime != "" {
			quality.BadTimes++
			warnings = multierr.Append(warnings, fmt.Errorf("linha %d: horário ilegível %q", line, rawTime))
		}

		// Valor monetário; ausente/ilegível fica nulo (excluído das somas).
		rawAmount := cell(record, amountIdx, hasAmount)
		if amt, ok := parseAmount(rawAmount); ok {
			row.Amount = decimal.NewNullDecimal(amt)
		} else if rawAmount != "" {
			quality.BadAmounts++
			warnings = multierr.Append(warnings, fmt.Errorf("linha %d: valor ilegível %q", line, rawAmount))
		}

		rows = append(rows, row)
	}

	if warnings != nil {
		configslog.Log.Warn("Células inválidas ignoradas durante a carga",
			zap.Int("datas", quality.BadDates),
			zap.Int("horarios", quality.BadTimes),
			zap.Int("valores", quality.BadAmounts),
			zap.Errors("detalhes", multierr.Errors(warnings)))
	}
	configslog.SLog.Infof("Tabela de agendamentos carregada: %d linhas", len(rows))

	return models.NewAppointmentTable(rows, quality), nil
}

// headerIndex indexa os nomes de coluna do cabeçalho, sem espaços laterais.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

// cell devolve a célula da posição pedida, ou vazio quando a coluna não
// existe ou a linha é curta demais.
func cell(record []string, i int, has bool) string {
	if !has || i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func parseHour(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

// parseAmount aceita tanto "50.00" quanto o formato brasileiro "1.250,50".
func parseAmount(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Decimal{}, false
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	amt, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amt, true
}

var _ IAppointmentRepository = (*CSVAppointmentRepository)(nil)

package configs

import (
	"fmt"
	"os"
	"strings"

	"github.com/RafaelRibeiro2605/bigodariodashboard/configs/configslog"
)

// ColumnMapping nomes das colunas lógicas no arquivo CSV de agendamentos.
// Os padrões correspondem ao export da barbearia; podem ser sobrescritos
// por variáveis de ambiente quando o arquivo vier com outro cabeçalho.
type ColumnMapping struct {
	Date    string
	Time    string
	Client  string
	Product string
	Amount  string
}

// Config centraliza toda a configuração de ambiente da aplicação.
type Config struct {
	ListenAddr string
	CSVPath    string
	ViewsDir   string

	// Usuários autorizados (usuário -> senha em texto, vinda do ambiente).
	// O hash bcrypt é feito na construção do verificador, nunca aqui.
	Users map[string]string

	Columns ColumnMapping
}

// LoadConfig monta a Config a partir do ambiente. Falha apenas quando a
// lista de usuários está malformada; todo o resto tem padrão.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ListenAddr: getEnvOrDefault("APP_ADDR", ":3000"),
		CSVPath:    getEnvOrDefault("CSV_PATH", "Agendamentos_Barbearia_Final.csv"),
		ViewsDir:   getEnvOrDefault("VIEWS_DIR", "./views"),
		Columns: ColumnMapping{
			Date:    getEnvOrDefault("CSV_COL_DATE", "Data"),
			Time:    getEnvOrDefault("CSV_COL_TIME", "Horário"),
			Client:  getEnvOrDefault("CSV_COL_CLIENT", "Cliente"),
			Product: getEnvOrDefault("CSV_COL_PRODUCT", "Produto"),
			Amount:  getEnvOrDefault("CSV_COL_AMOUNT", "Valor (R$)"),
		},
	}

	users, err := parseUsers(getEnvOrDefault("DASH_USERS", "admin:Flamengo,marcos:Bigodario"))
	if err != nil {
		return nil, err
	}
	cfg.Users = users

	configslog.SLog.Infof("Configuração carregada: addr=%s csv=%s usuários=%d",
		cfg.ListenAddr, cfg.CSVPath, len(cfg.Users))
	return cfg, nil
}

// parseUsers interpreta "usuario:senha,usuario:senha".
func parseUsers(raw string) (map[string]string, error) {
	users := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, pass, ok := strings.Cut(pair, ":")
		if !ok || name == "" || pass == "" {
			return nil, fmt.Errorf("DASH_USERS malformado: entrada %q", pair)
		}
		users[name] = pass
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("DASH_USERS não define nenhum usuário")
	}
	return users, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

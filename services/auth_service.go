package services

import (
	"github.com/RafaelRibeiro2605/bigodariodashboard/configs/configslog"
	"github.com/RafaelRibeiro2605/bigodariodashboard/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError erros do serviço de autenticação.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	// ErrCredentialMismatch cobre usuário inexistente e senha errada com a
	// mesma mensagem: a resposta nunca revela qual parte falhou.
	ErrCredentialMismatch AuthServiceError = "usuário ou senha incorretos"
	ErrVerifierSetup      AuthServiceError = "verificador de credenciais não pôde ser construído"
)

// CredentialVerifier capacidade injetável de verificação de credenciais.
// O mapeamento estático pode ser trocado por um provedor de identidade real
// sem tocar no restante da aplicação.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentialVerifier verifica contra um mapeamento fixo carregado na
// construção. As senhas recebidas em texto são imediatamente convertidas em
// hash bcrypt; o texto puro não é retido.
type StaticCredentialVerifier struct {
	users map[string]models.User
}

// NewStaticCredentialVerifier constrói o verificador a partir do mapeamento
// usuário -> senha vindo da configuração.
func NewStaticCredentialVerifier(users map[string]string) (*StaticCredentialVerifier, error) {
	v := &StaticCredentialVerifier{users: make(map[string]models.User, len(users))}
	for name, pass := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			configslog.Log.Error("Hash de senha falhou na construção do verificador",
				zap.String("username", name), zap.Error(err))
			return nil, ErrVerifierSetup
		}
		v.users[name] = models.User{Username: name, PasswordHash: hash}
	}
	return v, nil
}

// Verify informa se o par usuário/senha confere com o mapeamento.
func (v *StaticCredentialVerifier) Verify(username, password string) bool {
	u, ok := v.users[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) == nil
}

// IAuthService porta de entrada do painel: nenhuma consulta é alcançável
// antes de um Login bem-sucedido.
type IAuthService interface {
	Login(username, password string) (*models.User, error)
}

// AuthService implementa IAuthService sobre um CredentialVerifier.
type AuthService struct {
	verifier CredentialVerifier
}

// NewAuthService cria o serviço de autenticação.
func NewAuthService(verifier CredentialVerifier) IAuthService {
	return &AuthService{verifier: verifier}
}

// Login valida as credenciais e devolve o usuário autenticado. Usuário
// desconhecido e senha errada produzem exatamente o mesmo erro.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	if !s.verifier.Verify(username, password) {
		configslog.SLog.Warnf("Tentativa de login recusada para %q", username)
		return nil, ErrCredentialMismatch
	}
	configslog.SLog.Infof("Login bem-sucedido: %s", username)
	return &models.User{Username: username}, nil
}

var _ CredentialVerifier = (*StaticCredentialVerifier)(nil)
var _ IAuthService = (*AuthService)(nil)

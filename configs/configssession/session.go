package configssession

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

var store *session.Store

// SetupSession cria (uma única vez) o armazenamento de sessão em memória.
// Cada sessão autenticada pertence a um único usuário; nada é compartilhado
// entre sessões além do dataset somente-leitura.
func SetupSession() *session.Store {
	if store != nil {
		return store
	}
	store = session.New(session.Config{
		Expiration:     8 * time.Hour,
		KeyLookup:      "cookie:bigodario_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return store
}

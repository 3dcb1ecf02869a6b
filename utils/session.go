package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionUsernameKey = "username"

// ErrSessionStoreMissing indica que o middleware de sessão não rodou antes
// do handler.
var ErrSessionStoreMissing = errors.New("armazenamento de sessão indisponível no contexto")

// SessionStart obtém (ou cria) a sessão da requisição a partir do store
// colocado nos locals pelo middleware.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// SetUserSession marca a sessão como autenticada para o usuário informado.
// Ciclo de vida: não autenticada -> autenticada -> destruída no logout.
func SetUserSession(sess *session.Session, username string) error {
	sess.Set(sessionUsernameKey, username)
	return sess.Save()
}

// GetUsernameFromSession devolve o usuário autenticado da sessão, ou vazio
// quando a sessão ainda não passou pelo login.
func GetUsernameFromSession(sess *session.Session) string {
	if v, ok := sess.Get(sessionUsernameKey).(string); ok {
		return v
	}
	return ""
}

// DestroySession encerra a sessão (logout).
func DestroySession(sess *session.Session) error {
	return sess.Destroy()
}

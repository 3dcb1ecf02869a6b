package handlers

import (
	"errors"

	"github.com/RafaelRibeiro2605/bigodariodashboard/configs/configslog"
	"github.com/RafaelRibeiro2605/bigodariodashboard/pkg/flashmessages"
	"github.com/RafaelRibeiro2605/bigodariodashboard/pkg/renderer"
	"github.com/RafaelRibeiro2605/bigodariodashboard/services"
	"github.com/RafaelRibeiro2605/bigodariodashboard/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler telas e ações de login/logout.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler cria o handler de autenticação.
func NewAuthHandler(service services.IAuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// ShowLogin exibe o formulário de login.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{"Title": "Login - Dashboard Barbearia"}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "auth/login", "layouts/auth_layout", renderData)
}

// Login valida as credenciais e inicia a sessão autenticada.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("usuario")
	password := c.FormValue("senha")

	user, err := h.service.Login(username, password)
	if err != nil {
		// A mesma mensagem para usuário inexistente e senha errada.
		msg := services.ErrCredentialMismatch.Error()
		if !errors.Is(err, services.ErrCredentialMismatch) {
			configslog.Log.Error("Login falhou por erro interno", zap.Error(err))
			msg = "Não foi possível efetuar o login."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Sessão indisponível após login", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	if err := utils.SetUserSession(sess, user.Username); err != nil {
		configslog.Log.Error("Sessão não pôde ser gravada", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	return c.Redirect("/dashboard/overview", fiber.StatusFound)
}

// Logout encerra a sessão e volta ao login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if err := utils.DestroySession(sess); err != nil {
			configslog.Log.Warn("Sessão não pôde ser destruída no logout", zap.Error(err))
		}
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}

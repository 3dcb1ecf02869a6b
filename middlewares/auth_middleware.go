package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware bloqueia qualquer rota do painel para sessões não
// autenticadas. Nenhuma consulta da tabela é alcançável sem passar aqui.
func AuthMiddleware(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok || username == "" {
		return c.Redirect("/auth/login", fiber.StatusFound)
	}
	return c.Next()
}

// GuestMiddleware impede que uma sessão já autenticada reveja o login.
func GuestMiddleware(c *fiber.Ctx) error {
	if username, ok := c.Locals("username").(string); ok && username != "" {
		return c.Redirect("/dashboard/overview", fiber.StatusFound)
	}
	return c.Next()
}

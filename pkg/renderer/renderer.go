package renderer

import (
	"net/http"

	"github.com/RafaelRibeiro2605/bigodariodashboard/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// Chaves usadas pelas views para exibir mensagens de feedback.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages injeta as mensagens pendentes nos dados da view.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render renderiza uma view dentro do layout informado. O status é
// opcional; o padrão é 200.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if username := c.Locals("username"); username != nil {
		data["Username"] = username
	}
	return c.Status(code).Render(view, data, layout)
}

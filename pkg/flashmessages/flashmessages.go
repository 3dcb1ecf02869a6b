package flashmessages

import (
	"github.com/RafaelRibeiro2605/bigodariodashboard/utils"

	"github.com/gofiber/fiber/v2"
)

// Chaves de flash message gravadas na sessão e consumidas na renderização
// seguinte.
const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// FlashData mensagens pendentes recuperadas da sessão.
type FlashData struct {
	Success string
	Error   string
}

// SetFlashMessage grava uma mensagem de uso único na sessão.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages lê e remove as mensagens pendentes da sessão.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return FlashData{}, err
	}
	data := FlashData{}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = v
		sess.Delete(FlashErrorKey)
	}
	if data.Success != "" || data.Error != "" {
		if err := sess.Save(); err != nil {
			return data, err
		}
	}
	return data, nil
}

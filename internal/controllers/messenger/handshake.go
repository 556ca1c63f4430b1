package messenger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const modeSubscribe = "subscribe"

// VerifyHandshake godoc
// @Summary      Webhook verification handshake
// @Description  Answers the vendor's GET challenge. Echoes hub.challenge when hub.mode is "subscribe" and hub.verify_token matches the configured secret.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "Must be subscribe"
// @Param        hub.verify_token  query  string  true  "Configured verify secret"
// @Param        hub.challenge     query  string  true  "Challenge to echo back"
// @Success      200  {string}  string  "The challenge value"
// @Failure      400  "hub.mode or hub.verify_token missing"
// @Failure      403  "Token mismatch"
// @Router       /webhook [get]
func (d *WebhookController) VerifyHandshake(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	// The vendor contract wants bare statuses with empty bodies here, so the
	// handler answers directly instead of going through the error handler.
	if mode == "" || token == "" {
		return c.Status(fiber.StatusBadRequest).SendString("")
	}
	if mode != modeSubscribe || token != d.verifyToken {
		zerolog.Ctx(c.UserContext()).Warn().Str("mode", mode).Msg("Webhook verification failed")
		return c.Status(fiber.StatusForbidden).SendString("")
	}

	zerolog.Ctx(c.UserContext()).Info().Msg("Webhook verified")
	return c.SendString(challenge)
}

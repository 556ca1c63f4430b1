package messenger

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
)

// SignatureHeader carries the vendor's HMAC-SHA256 signature of the POST body.
const SignatureHeader = "X-Hub-Signature-256"

// SignatureMiddleware validates the webhook body signature when an app
// secret is configured. With an empty secret the check is skipped entirely.
func SignatureMiddleware(appSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if appSecret == "" {
			return c.Next()
		}

		header := c.Get(SignatureHeader)
		got, ok := strings.CutPrefix(header, "sha256=")
		if !ok {
			return richerrors.Error{
				ExternalMsg: "Missing webhook signature",
				Code:        fiber.StatusForbidden,
			}
		}

		mac := hmac.New(sha256.New, []byte(appSecret))
		mac.Write(c.Body())
		want := hex.EncodeToString(mac.Sum(nil))
		if !hmac.Equal([]byte(want), []byte(got)) {
			return richerrors.Error{
				ExternalMsg: "Invalid webhook signature",
				Code:        fiber.StatusForbidden,
			}
		}
		return c.Next()
	}
}

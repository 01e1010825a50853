package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys shared with the controllers.
const (
	PlayerIDKey   = "playerID"
	WSPlayerIDKey = "wsPlayerID"
	WSGameIDKey   = "wsGameID"
)

const maxPlayerIDLen = 64

// EnsurePlayerID stores the caller's player id under PlayerIDKey. The id
// comes from the X-Player-ID header or, for websocket handshakes, the
// playerId query parameter.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(PlayerIDKey) != nil {
			return c.Next()
		}

		playerID := strings.TrimSpace(c.Get("X-Player-ID"))
		if playerID == "" {
			playerID = strings.TrimSpace(c.Query("playerId"))
		}

		switch {
		case playerID == "":
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player id is required",
			})
		case len(playerID) > maxPlayerIDLen:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "player id is too long",
			})
		}

		c.Locals(PlayerIDKey, playerID)
		return c.Next()
	}
}

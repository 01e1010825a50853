package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade lets only genuine upgrade requests for a known game
// through. The ids are copied to WSGameIDKey and WSPlayerIDKey because the
// websocket handler runs outside the request context.
func WebSocketUpgrade(gameExists func(gameID string) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game id is required",
			})
		}
		playerID, ok := c.Locals(PlayerIDKey).(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player id is required",
			})
		}
		if gameExists != nil && !gameExists(gameID) {
			log.Debugw("upgrade for unknown game", "game", gameID, "player", playerID)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "game not found",
			})
		}

		c.Locals(WSGameIDKey, gameID)
		c.Locals(WSPlayerIDKey, playerID)
		return c.Next()
	}
}

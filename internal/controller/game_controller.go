package controller

import (
	"errors"

	"github.com/benbeisheim/checkers-backend/internal/middleware"
	"github.com/benbeisheim/checkers-backend/internal/service"
	"github.com/benbeisheim/checkers-backend/internal/ws"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	playerID := c.Locals(middleware.PlayerIDKey).(string)

	gameID, err := gc.gameService.CreateGame(playerID)
	if err != nil {
		log.Errorw("create game failed", "player", playerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(gameState)
}

func (gc *GameController) Select(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals(middleware.PlayerIDKey).(string)

	var body ws.SelectPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body must be {\"row\": int, \"col\": int}",
		})
	}
	row, col, err := body.Cell()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	gameState, err := gc.gameService.Select(gameID, playerID, row, col)
	if err != nil {
		resp := fiber.Map{"error": err.Error()}
		// Rejected clicks still report the position the client should show.
		if gameState.Turn != 0 {
			resp["state"] = gameState
		}
		return c.Status(statusFor(err)).JSON(resp)
	}
	return c.JSON(gameState)
}

func (gc *GameController) Reset(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals(middleware.PlayerIDKey).(string)

	gameState, err := gc.gameService.Reset(gameID, playerID)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(gameState)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrOutOfBounds):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrGameOver),
		errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrIllegalAction):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

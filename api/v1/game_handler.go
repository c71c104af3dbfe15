package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hangman/internal/game"
	"hangman/internal/stats"
)

var GameService *game.GameService
var StatsService *stats.Service

func RegisterGameRoutes(g *echo.Group) {
	g.POST("", CreateGameHandler)
	g.GET("/average_attempts", GetAverageAttemptsHandler)
	g.GET("/:key", GetGameHandler)
	g.PUT("/:key", MakeMoveHandler)
	g.DELETE("/:key", CancelGameHandler)
	g.GET("/:key/history", GetGameHistoryHandler)
}

func CreateGameHandler(c echo.Context) error {
	var req game.NewGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	resp, err := GameService.CreateGame(&req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

func GetGameHandler(c echo.Context) error {
	resp, err := GameService.GetGame(c.Param("key"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func MakeMoveHandler(c echo.Context) error {
	var req game.MakeMoveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	resp, err := GameService.MakeMove(c.Param("key"), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func CancelGameHandler(c echo.Context) error {
	msg, err := GameService.CancelGame(c.Param("key"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, msg)
}

func GetGameHistoryHandler(c echo.Context) error {
	items, err := GameService.GetHistory(c.Param("key"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
	})
}

func GetAverageAttemptsHandler(c echo.Context) error {
	message, err := StatsService.AverageAttempts()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": message,
	})
}

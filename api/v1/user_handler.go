package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hangman/internal/user"
)

const INVALID_REQUEST = "invalid request"

var UserService *user.UserService

func RegisterUserRoutes(g *echo.Group) {
	g.POST("", CreateUserHandler)
	g.GET("/:name/games", GetUserGamesHandler)
	g.GET("/:name/scores", GetHighScoreHandler)
}

func CreateUserHandler(c echo.Context) error {
	var req user.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	msg, err := UserService.CreateUser(&req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, msg)
}

func GetUserGamesHandler(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	games, err := GameService.GetUserGames(name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": games,
	})
}

func GetHighScoreHandler(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	limit := 0
	if raw := c.QueryParam("number_of_results"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
		}
		limit = parsed
	}

	scores, err := ScoreService.GetHighScores(name, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": scores,
	})
}

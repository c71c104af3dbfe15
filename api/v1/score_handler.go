package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hangman/internal/score"
)

var ScoreService *score.ScoreService

func RegisterScoreRoutes(g *echo.Group) {
	g.GET("", GetScoresHandler)
}

// GetScoresHandler dumps every recorded score, the global leaderboard.
func GetScoresHandler(c echo.Context) error {
	items, err := ScoreService.GetAllScores()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
	})
}

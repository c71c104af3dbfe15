package stats

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"hangman/internal/apperrors"
	"hangman/internal/game"
)

const movesRemainingKey = "MOVES_REMAINING"

var ctx = context.Background()

// Service maintains the cached average-attempts-remaining statistic over
// unfinished games. The game state machine never reads it; it is derived
// state refreshed out-of-band and served straight from the cache.
type Service struct {
	rdb   *redis.Client
	games game.GameRepository
}

func NewService(rdb *redis.Client, games game.GameRepository) *Service {
	return &Service{rdb: rdb, games: games}
}

// RefreshAverageAttempts recomputes the cached value. Failures are logged,
// never propagated; the trigger is fire-and-forget.
func (s *Service) RefreshAverageAttempts() {
	games, err := s.games.GetActiveGames()
	if err != nil {
		log.Println("error fetching active games for stats refresh:", err)
		return
	}

	value, ok := averageMessage(games)
	if !ok {
		return
	}

	if err := s.rdb.Set(ctx, movesRemainingKey, value, 0).Err(); err != nil {
		log.Println("error caching average attempts:", err)
	}
}

func averageMessage(games []game.Game) (string, bool) {
	if len(games) == 0 {
		return "", false
	}

	total := 0
	for _, g := range games {
		total += g.AttemptsRemaining
	}
	average := float64(total) / float64(len(games))

	return fmt.Sprintf("The average moves remaining is %.2f", average), true
}

// AverageAttempts returns the cached value, or "" when nothing is cached yet.
func (s *Service) AverageAttempts() (string, error) {
	val, err := s.rdb.Get(ctx, movesRemainingKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", apperrors.NewAppError(500, "error reading cached average", err)
	}

	return val, nil
}

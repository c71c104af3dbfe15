package score

import (
	"time"

	"hangman/internal/apperrors"
	"hangman/internal/user"
)

type ScoreService struct {
	repo  ScoreRepository
	users user.UserRepository
}

func NewScoreService(repo ScoreRepository, users user.UserRepository) *ScoreService {
	return &ScoreService{repo: repo, users: users}
}

// RecordScore appends the single outcome entry for a finished game.
func (s *ScoreService) RecordScore(userID uint, won bool, guesses int) error {
	entry := Score{
		UserID:  userID,
		Won:     won,
		Guesses: guesses,
		Date:    time.Now(),
	}

	if err := s.repo.CreateScore(&entry); err != nil {
		return apperrors.NewAppError(500, "error recording score", err)
	}

	return nil
}

// GetHighScores returns the user's leaderboard entries. Limit 0 means all.
func (s *ScoreService) GetHighScores(userName string, limit int) ([]ScoreResponse, error) {
	owner, err := s.users.GetUserByName(userName)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error looking up user", err)
	}
	if owner == nil {
		return nil, apperrors.NewAppError(404, "A user with that name does not exist", nil)
	}

	scores, err := s.repo.GetUserScores(owner.ID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error querying scores", err)
	}
	if len(scores) == 0 {
		return nil, apperrors.NewAppError(404, "No games finished till now for user", nil)
	}

	items := make([]ScoreResponse, 0, len(scores))
	for _, entry := range scores {
		items = append(items, *entry.ToResponse(owner.Name))
	}

	return items, nil
}

// GetAllScores dumps every recorded score in insertion order.
func (s *ScoreService) GetAllScores() ([]ScoreResponse, error) {
	scores, err := s.repo.GetScores()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error querying scores", err)
	}

	items := make([]ScoreResponse, 0, len(scores))
	for _, entry := range scores {
		items = append(items, *entry.ToResponse(entry.User.Name))
	}

	return items, nil
}

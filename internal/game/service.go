package game

import (
	"strings"

	"hangman/internal/apperrors"
	"hangman/internal/score"
	"hangman/internal/user"
)

// AttemptsCache refreshes the derived average-attempts statistic. The state
// machine triggers it fire-and-forget and never reads it back.
type AttemptsCache interface {
	RefreshAverageAttempts()
}

// ReminderScheduler runs the reminder-email pass. Triggered fire-and-forget
// on game creation, in addition to its regular schedule.
type ReminderScheduler interface {
	Run()
}

type GameService struct {
	repo      GameRepository
	users     user.UserRepository
	scores    *score.ScoreService
	stats     AttemptsCache
	reminders ReminderScheduler
}

func NewGameService(repo GameRepository, users user.UserRepository, scores *score.ScoreService, stats AttemptsCache, reminders ReminderScheduler) *GameService {
	return &GameService{
		repo:      repo,
		users:     users,
		scores:    scores,
		stats:     stats,
		reminders: reminders,
	}
}

// CreateGame starts a new game for the named user with a random secret word.
func (g *GameService) CreateGame(request *NewGameRequest) (*GameResponse, error) {
	owner, err := g.users.GetUserByName(request.UserName)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error looking up user", err)
	}
	if owner == nil {
		return nil, apperrors.NewAppError(404, "A user with that name does not exist", nil)
	}

	secret := RandomWord()
	newGame := Game{
		UserID:            owner.ID,
		SecretWord:        secret,
		Revealed:          strings.Repeat("_", len(secret)),
		AttemptsAllowed:   DefaultAttempts,
		AttemptsRemaining: DefaultAttempts,
	}

	if err := g.repo.CreateGame(&newGame); err != nil {
		return nil, apperrors.NewAppError(500, "error creating game", err)
	}

	key, err := EncodeGameKey(newGame.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error encoding game key", err)
	}

	// Out of sequence on purpose, the response never waits on either task.
	if g.stats != nil {
		go g.stats.RefreshAverageAttempts()
	}
	if g.reminders != nil {
		go g.reminders.Run()
	}

	return newGame.ToResponse(key, "Good luck playing Hangman!"), nil
}

// GetGame returns the current state of a game.
func (g *GameService) GetGame(key string) (*GameResponse, error) {
	current, err := g.findGame(key)
	if err != nil {
		return nil, err
	}

	return current.ToResponse(key, "Time to make a move!"), nil
}

// MakeMove validates and applies one guess. Game-logic outcomes (finished,
// malformed or repeated guesses) come back as the response message, never
// as an error.
func (g *GameService) MakeMove(key string, request *MakeMoveRequest) (*GameResponse, error) {
	current, err := g.findGame(key)
	if err != nil {
		return nil, err
	}

	if current.GameOver {
		return current.ToResponse(key, "Game already finished!"), nil
	}

	if !isAlpha(request.Guess) {
		return current.ToResponse(key, "Only alphabetic character is allowed!"), nil
	}

	letter := strings.ToUpper(request.Guess)
	if len(letter) != 1 {
		return current.ToResponse(key, "Only one character allowed"), nil
	}

	used, err := g.repo.CountMoves(current.ID, letter)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error checking move history", err)
	}
	if used != 0 {
		return current.ToResponse(key, "Character already used "+letter), nil
	}

	found := false
	msg := ""
	revealed := []byte(current.Revealed)
	for i := 0; i < len(current.SecretWord); i++ {
		if current.SecretWord[i] != letter[0] {
			continue
		}
		revealed[i] = letter[0]
		found = true
		msg = "Key found " + letter
		if err := g.appendMove(current.ID, letter, true, i, "Found"); err != nil {
			return nil, err
		}
	}
	current.Revealed = string(revealed)

	if !found {
		if err := g.appendMove(current.ID, letter, false, -1, "Not found"); err != nil {
			return nil, err
		}
		current.AttemptsRemaining -= 1
		msg = "Character not found in word: " + request.Guess
	}

	if current.Revealed == current.SecretWord {
		if err := g.endGame(current, true); err != nil {
			return nil, err
		}
		return current.ToResponse(key, "You win"), nil
	}

	if current.AttemptsRemaining < 1 {
		if err := g.endGame(current, false); err != nil {
			return nil, err
		}
		if err := g.appendMove(current.ID, letter, found, -1, "Not attempts remaining you lose"); err != nil {
			return nil, err
		}
		return current.ToResponse(key, msg+" Game over!"), nil
	}

	if err := g.repo.SaveGame(current); err != nil {
		return nil, apperrors.NewAppError(500, "error saving game", err)
	}

	return current.ToResponse(key, msg), nil
}

// CancelGame ends an in-progress game as a loss. Finished or already
// canceled games cannot be canceled again.
func (g *GameService) CancelGame(key string) (*user.StringMessage, error) {
	current, err := g.findGame(key)
	if err != nil {
		return nil, err
	}

	if current.GameOver || current.Canceled {
		return nil, apperrors.NewAppError(404, "Game not found!", nil)
	}

	current.Canceled = true
	if err := g.endGame(current, false); err != nil {
		return nil, err
	}

	return &user.StringMessage{Message: "Game canceled"}, nil
}

// GetHistory returns the game's moves in replay order, oldest first.
func (g *GameService) GetHistory(key string) ([]MoveResponse, error) {
	current, err := g.findGame(key)
	if err != nil {
		return nil, err
	}

	moves, err := g.repo.GetMoves(current.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error querying game history", err)
	}

	items := make([]MoveResponse, 0, len(moves))
	for _, move := range moves {
		items = append(items, *move.ToResponse())
	}

	return items, nil
}

// GetUserGames returns the user's games that are neither over nor canceled.
func (g *GameService) GetUserGames(userName string) ([]GameResponse, error) {
	owner, err := g.users.GetUserByName(userName)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error looking up user", err)
	}
	if owner == nil {
		return nil, apperrors.NewAppError(404, "User not found", nil)
	}

	games, err := g.repo.GetActiveUserGames(owner.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error querying user games", err)
	}

	items := make([]GameResponse, 0, len(games))
	for i := range games {
		key, err := EncodeGameKey(games[i].ID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "error encoding game key", err)
		}
		items = append(items, *games[i].ToResponse(key, "Game online"))
	}

	return items, nil
}

func (g *GameService) findGame(key string) (*Game, error) {
	id, err := DecodeGameKey(key)
	if err != nil {
		return nil, apperrors.NewAppError(404, "Game not found!", err)
	}

	current, err := g.repo.GetGame(id)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error getting game", err)
	}
	if current == nil {
		return nil, apperrors.NewAppError(404, "Game not found!", nil)
	}

	return current, nil
}

func (g *GameService) appendMove(gameID uint, guess string, found bool, index int, message string) error {
	move := Move{
		GameID:    gameID,
		Guess:     guess,
		Found:     found,
		WordIndex: index,
		Message:   message,
	}

	if err := g.repo.CreateMove(&move); err != nil {
		return apperrors.NewAppError(500, "error recording move", err)
	}

	return nil
}

// endGame marks the game terminal and writes its single score entry.
func (g *GameService) endGame(current *Game, won bool) error {
	current.GameOver = true
	if err := g.repo.SaveGame(current); err != nil {
		return apperrors.NewAppError(500, "error saving game", err)
	}

	guesses := current.AttemptsAllowed - current.AttemptsRemaining
	return g.scores.RecordScore(current.UserID, won, guesses)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

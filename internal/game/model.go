package game

import (
	"strings"
	"time"
)

const DefaultAttempts = 10

// Game is a single hangman session owned by one user. Revealed always has
// the same length as SecretWord; '_' marks a position not yet guessed.
// Canceled implies GameOver.
type Game struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	SecretWord        string    `gorm:"not null" json:"-"`
	Revealed          string    `gorm:"not null" json:"revealed"`
	AttemptsAllowed   int       `gorm:"not null;default:10" json:"attempts_allowed"`
	AttemptsRemaining int       `gorm:"not null" json:"attempts_remaining"`
	GameOver          bool      `gorm:"not null;default:false" json:"game_over"`
	Canceled          bool      `gorm:"not null;default:false" json:"canceled"`
	CreatedAt         time.Time `json:"created_at"`
}

// Move is one recorded guess attempt against a game. Append-only;
// WordIndex is -1 when the letter was not in the word.
type Move struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GameID    uint      `gorm:"index;not null" json:"game_id"`
	Guess     string    `gorm:"size:1;not null" json:"guess"`
	Found     bool      `gorm:"not null" json:"found"`
	WordIndex int       `gorm:"column:word_index;not null" json:"index"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type NewGameRequest struct {
	UserName string `json:"user_name"`
}

type MakeMoveRequest struct {
	Guess string `json:"guess"`
}

type GameResponse struct {
	Key               string `json:"urlsafe_key"`
	WordInProgress    string `json:"word_in_progress"`
	GameOver          bool   `json:"game_over"`
	Canceled          bool   `json:"canceled"`
	AttemptsAllowed   int    `json:"attempts_allowed"`
	AttemptsRemaining int    `json:"attempts_remaining"`
	Message           string `json:"message"`
}

type MoveResponse struct {
	Guess   string `json:"guess"`
	Found   bool   `json:"found"`
	Index   int    `json:"index"`
	Message string `json:"message"`
}

func (g *Game) ToResponse(key, message string) *GameResponse {
	return &GameResponse{
		Key:               key,
		WordInProgress:    spacedPattern(g.Revealed),
		GameOver:          g.GameOver,
		Canceled:          g.Canceled,
		AttemptsAllowed:   g.AttemptsAllowed,
		AttemptsRemaining: g.AttemptsRemaining,
		Message:           message,
	}
}

func (m *Move) ToResponse() *MoveResponse {
	return &MoveResponse{
		Guess:   m.Guess,
		Found:   m.Found,
		Index:   m.WordIndex,
		Message: m.Message,
	}
}

// spacedPattern renders "Z_O" as "Z _ O" for display.
func spacedPattern(revealed string) string {
	if revealed == "" {
		return ""
	}
	return strings.Join(strings.Split(revealed, ""), " ")
}

package score

import (
	"time"

	"hangman/internal/user"
)

// Score is the immutable outcome record of one finished game. Exactly one
// row exists per game once it is over; canceled games count as losses.
type Score struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"index;not null" json:"user_id"`
	User    user.User `gorm:"foreignKey:UserID" json:"-"`
	Won     bool      `gorm:"not null" json:"won"`
	Guesses int       `gorm:"not null" json:"guesses"`
	Date    time.Time `gorm:"not null" json:"date"`
}

type ScoreResponse struct {
	UserName string `json:"user_name"`
	Date     string `json:"date"`
	Won      bool   `json:"won"`
	Guesses  int    `json:"guesses"`
}

func (s *Score) ToResponse(userName string) *ScoreResponse {
	return &ScoreResponse{
		UserName: userName,
		Date:     s.Date.Format("2006-01-02"),
		Won:      s.Won,
		Guesses:  s.Guesses,
	}
}

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hangman/internal/game"
)

func TestAverageMessage(t *testing.T) {
	games := []game.Game{
		{AttemptsRemaining: 10},
		{AttemptsRemaining: 5},
		{AttemptsRemaining: 3},
	}

	msg, ok := averageMessage(games)
	assert.True(t, ok)
	assert.Equal(t, "The average moves remaining is 6.00", msg)
}

func TestAverageMessage_NoActiveGames(t *testing.T) {
	_, ok := averageMessage(nil)
	assert.False(t, ok)
}

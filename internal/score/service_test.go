package score

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hangman/internal/apperrors"
	"hangman/internal/user"
)

func TestScoreService_RecordScore(t *testing.T) {
	mockRepo := &ScoreRepositoryMock{}
	mockUsers := &user.MockUserRepository{}
	service := NewScoreService(mockRepo, mockUsers)

	mockRepo.On("CreateScore", mock.MatchedBy(func(s *Score) bool {
		return s.UserID == 5 && s.Won && s.Guesses == 3 && !s.Date.IsZero()
	})).Return(nil).Once()

	err := service.RecordScore(5, true, 3)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestScoreService_GetHighScores(t *testing.T) {
	mockRepo := &ScoreRepositoryMock{}
	mockUsers := &user.MockUserRepository{}
	service := NewScoreService(mockRepo, mockUsers)

	owner := &user.User{ID: 1, Name: "alice"}
	mockUsers.On("GetUserByName", "alice").Return(owner, nil)
	scores := []Score{
		{UserID: 1, Won: false, Guesses: 4, Date: time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: 1, Won: true, Guesses: 0, Date: time.Date(2016, 3, 2, 0, 0, 0, 0, time.UTC)},
	}
	mockRepo.On("GetUserScores", uint(1), 5).Return(scores, nil)

	items, err := service.GetHighScores("alice", 5)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "alice", items[0].UserName)
	assert.False(t, items[0].Won)
	assert.Equal(t, 4, items[0].Guesses)
	assert.Equal(t, "2016-03-01", items[0].Date)
	assert.True(t, items[1].Won)
	mockRepo.AssertExpectations(t)
}

func TestScoreService_GetHighScores_NoFinishedGames(t *testing.T) {
	mockRepo := &ScoreRepositoryMock{}
	mockUsers := &user.MockUserRepository{}
	service := NewScoreService(mockRepo, mockUsers)

	owner := &user.User{ID: 1, Name: "alice"}
	mockUsers.On("GetUserByName", "alice").Return(owner, nil)
	mockRepo.On("GetUserScores", uint(1), 0).Return([]Score{}, nil)

	_, err := service.GetHighScores("alice", 0)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}

func TestScoreService_GetHighScores_UnknownUser(t *testing.T) {
	mockRepo := &ScoreRepositoryMock{}
	mockUsers := &user.MockUserRepository{}
	service := NewScoreService(mockRepo, mockUsers)

	mockUsers.On("GetUserByName", "ghost").Return(nil, nil)

	_, err := service.GetHighScores("ghost", 0)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
	mockRepo.AssertNotCalled(t, "GetUserScores")
}

func TestScoreService_GetAllScores(t *testing.T) {
	mockRepo := &ScoreRepositoryMock{}
	mockUsers := &user.MockUserRepository{}
	service := NewScoreService(mockRepo, mockUsers)

	scores := []Score{
		{UserID: 1, User: user.User{ID: 1, Name: "alice"}, Won: true, Guesses: 2,
			Date: time.Date(2016, 3, 2, 0, 0, 0, 0, time.UTC)},
		{UserID: 2, User: user.User{ID: 2, Name: "bob"}, Won: false, Guesses: 10,
			Date: time.Date(2016, 3, 3, 0, 0, 0, 0, time.UTC)},
	}
	mockRepo.On("GetScores").Return(scores, nil)

	items, err := service.GetAllScores()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "alice", items[0].UserName)
	assert.Equal(t, "bob", items[1].UserName)
	mockRepo.AssertExpectations(t)
}

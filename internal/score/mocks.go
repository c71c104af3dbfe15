package score

import (
	"github.com/stretchr/testify/mock"
)

type ScoreRepositoryMock struct {
	mock.Mock
}

func (m *ScoreRepositoryMock) CreateScore(score *Score) error {
	args := m.Called(score)
	return args.Error(0)
}

func (m *ScoreRepositoryMock) GetUserScores(userID uint, limit int) ([]Score, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Score), args.Error(1)
}

func (m *ScoreRepositoryMock) GetScores() ([]Score, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Score), args.Error(1)
}

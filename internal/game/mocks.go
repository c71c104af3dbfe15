package game

import (
	"github.com/stretchr/testify/mock"
)

type GameRepositoryMock struct {
	mock.Mock
}

func (m *GameRepositoryMock) CreateGame(game *Game) error {
	args := m.Called(game)
	return args.Error(0)
}

func (m *GameRepositoryMock) GetGame(id uint) (*Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *GameRepositoryMock) SaveGame(game *Game) error {
	args := m.Called(game)
	return args.Error(0)
}

func (m *GameRepositoryMock) GetActiveUserGames(userID uint) ([]Game, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
}

func (m *GameRepositoryMock) GetActiveGames() ([]Game, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
}

func (m *GameRepositoryMock) CreateMove(move *Move) error {
	args := m.Called(move)
	return args.Error(0)
}

func (m *GameRepositoryMock) GetMoves(gameID uint) ([]Move, error) {
	args := m.Called(gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Move), args.Error(1)
}

func (m *GameRepositoryMock) CountMoves(gameID uint, guess string) (int64, error) {
	args := m.Called(gameID, guess)
	return args.Get(0).(int64), args.Error(1)
}

type AttemptsCacheMock struct {
	mock.Mock
}

func (m *AttemptsCacheMock) RefreshAverageAttempts() {
	m.Called()
}

type ReminderSchedulerMock struct {
	mock.Mock
}

func (m *ReminderSchedulerMock) Run() {
	m.Called()
}

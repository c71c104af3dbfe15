package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"hangman/internal/game"
	"hangman/internal/user"
)

type ReminderSenderMock struct {
	mock.Mock
}

func (m *ReminderSenderMock) SendReminder(ctx context.Context, toEmail, toName string) error {
	args := m.Called(ctx, toEmail, toName)
	return args.Error(0)
}

func (m *ReminderSenderMock) IsEnabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func TestReminderJob_EmailsUsersWithActiveGames(t *testing.T) {
	users := &user.MockUserRepository{}
	games := &game.GameRepositoryMock{}
	sender := &ReminderSenderMock{}
	job := NewReminderJob(users, games, sender, nil)

	sender.On("IsEnabled").Return(true)
	users.On("GetUsersWithEmail").Return([]user.User{
		{ID: 1, Name: "alice", Email: "alice@example.com"},
		{ID: 2, Name: "bob", Email: "bob@example.com"},
	}, nil)
	games.On("GetActiveUserGames", uint(1)).Return([]game.Game{{ID: 10, UserID: 1}}, nil)
	games.On("GetActiveUserGames", uint(2)).Return([]game.Game{}, nil)
	sender.On("SendReminder", mock.Anything, "alice@example.com", "alice").Return(nil).Once()

	job.Run()

	sender.AssertExpectations(t)
	sender.AssertNotCalled(t, "SendReminder", mock.Anything, "bob@example.com", "bob")
}

type RunLockMock struct {
	mock.Mock
}

func (m *RunLockMock) TryAcquire(name string, ttl time.Duration) bool {
	args := m.Called(name, ttl)
	return args.Bool(0)
}

func TestReminderJob_SkipsWhenLockNotAcquired(t *testing.T) {
	users := &user.MockUserRepository{}
	games := &game.GameRepositoryMock{}
	sender := &ReminderSenderMock{}
	lock := &RunLockMock{}
	job := NewReminderJob(users, games, sender, lock)

	sender.On("IsEnabled").Return(true)
	lock.On("TryAcquire", "send_reminder", mock.Anything).Return(false)

	job.Run()

	users.AssertNotCalled(t, "GetUsersWithEmail")
	lock.AssertExpectations(t)
}

func TestReminderJob_DisabledSenderSkipsEverything(t *testing.T) {
	users := &user.MockUserRepository{}
	games := &game.GameRepositoryMock{}
	sender := &ReminderSenderMock{}
	job := NewReminderJob(users, games, sender, nil)

	sender.On("IsEnabled").Return(false)

	job.Run()

	users.AssertNotCalled(t, "GetUsersWithEmail")
}

func TestReminderJob_SendFailureContinues(t *testing.T) {
	users := &user.MockUserRepository{}
	games := &game.GameRepositoryMock{}
	sender := &ReminderSenderMock{}
	job := NewReminderJob(users, games, sender, nil)

	sender.On("IsEnabled").Return(true)
	users.On("GetUsersWithEmail").Return([]user.User{
		{ID: 1, Name: "alice", Email: "alice@example.com"},
		{ID: 2, Name: "bob", Email: "bob@example.com"},
	}, nil)
	games.On("GetActiveUserGames", uint(1)).Return([]game.Game{{ID: 10, UserID: 1}}, nil)
	games.On("GetActiveUserGames", uint(2)).Return([]game.Game{{ID: 11, UserID: 2}}, nil)
	sender.On("SendReminder", mock.Anything, "alice@example.com", "alice").
		Return(errors.New("ses throttled")).Once()
	sender.On("SendReminder", mock.Anything, "bob@example.com", "bob").Return(nil).Once()

	job.Run()

	sender.AssertExpectations(t)
}

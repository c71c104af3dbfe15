package notify

import (
	"context"
	"log"
	"time"

	"hangman/internal/game"
	"hangman/internal/user"
)

// ReminderSender is the slice of EmailService the job needs.
type ReminderSender interface {
	SendReminder(ctx context.Context, toEmail, toName string) error
	IsEnabled() bool
}

// ReminderJob emails every user that has an email address and at least one
// active game. Scheduled hourly; a single failed send never stops the run.
type ReminderJob struct {
	users  user.UserRepository
	games  game.GameRepository
	sender ReminderSender
	lock   RunLock
}

func NewReminderJob(users user.UserRepository, games game.GameRepository, sender ReminderSender, lock RunLock) *ReminderJob {
	return &ReminderJob{
		users:  users,
		games:  games,
		sender: sender,
		lock:   lock,
	}
}

func (j *ReminderJob) Run() {
	if !j.sender.IsEnabled() {
		return
	}

	if j.lock != nil && !j.lock.TryAcquire("send_reminder", 30*time.Minute) {
		return
	}

	users, err := j.users.GetUsersWithEmail()
	if err != nil {
		log.Println("reminder job: error fetching users:", err)
		return
	}

	ctx := context.Background()
	for _, u := range users {
		games, err := j.games.GetActiveUserGames(u.ID)
		if err != nil {
			log.Println("reminder job: error fetching games for", u.Name, ":", err)
			continue
		}
		if len(games) == 0 {
			continue
		}

		if err := j.sender.SendReminder(ctx, u.Email, u.Name); err != nil {
			log.Println("reminder job: error sending email to", u.Email, ":", err)
		}
	}
}

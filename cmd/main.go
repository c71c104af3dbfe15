package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"

	v1 "hangman/api/v1"
	"hangman/internal/apperrors"
	"hangman/internal/game"
	"hangman/internal/notify"
	"hangman/internal/score"
	"hangman/internal/stats"
	"hangman/internal/user"
	"hangman/pkg/db"
)

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(&user.User{}, &game.Game{}, &game.Move{}, &score.Score{})

	userRepo := user.NewGormUserRepository(db.DB)
	gameRepo := game.NewGormGameRepository(db.DB)
	scoreRepo := score.NewGormScoreRepository(db.DB)

	emailService, err := notify.NewEmailService(
		getEnv("AWS_REGION", "us-east-1"),
		os.Getenv("SES_FROM_EMAIL"),
		getEnv("SES_FROM_NAME", "Hangman"),
	)
	if err != nil {
		log.Fatalf("error initializing email service: %v", err)
	}
	reminderJob := notify.NewReminderJob(userRepo, gameRepo, emailService, notify.NewRedisRunLock(db.Rdb))

	scoreService := score.NewScoreService(scoreRepo, userRepo)
	statsService := stats.NewService(db.Rdb, gameRepo)
	gameService := game.NewGameService(gameRepo, userRepo, scoreService, statsService, reminderJob)
	userService := user.NewUserService(userRepo)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", reminderJob.Run); err != nil {
		log.Fatalf("error scheduling reminder job: %v", err)
	}
	scheduler.Start()

	v1.UserService = userService
	v1.GameService = gameService
	v1.ScoreService = scoreService
	v1.StatsService = statsService

	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(e)

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"))
	v1.RegisterGameRoutes(api.Group("/games"))
	v1.RegisterScoreRoutes(api.Group("/scores"))

	e.Logger.Fatal(e.Start(":" + getEnv("PORT", "8080")))
}

package game

import (
	"errors"

	"gorm.io/gorm"
)

type GameRepository interface {
	CreateGame(game *Game) error
	GetGame(id uint) (*Game, error)
	SaveGame(game *Game) error
	GetActiveUserGames(userID uint) ([]Game, error)
	GetActiveGames() ([]Game, error)
	CreateMove(move *Move) error
	GetMoves(gameID uint) ([]Move, error)
	CountMoves(gameID uint, guess string) (int64, error)
}

type GormGameRepository struct {
	db *gorm.DB
}

func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

func (r *GormGameRepository) CreateGame(game *Game) error {
	return r.db.Create(game).Error
}

// GetGame returns (nil, nil) when the game does not exist.
func (r *GormGameRepository) GetGame(id uint) (*Game, error) {
	var g Game
	result := r.db.First(&g, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &g, nil
}

func (r *GormGameRepository) SaveGame(game *Game) error {
	return r.db.Save(game).Error
}

func (r *GormGameRepository) GetActiveUserGames(userID uint) ([]Game, error) {
	var games []Game
	err := r.db.
		Where("user_id = ? AND game_over = ? AND canceled = ?", userID, false, false).
		Find(&games).Error
	if err != nil {
		return nil, err
	}

	return games, nil
}

func (r *GormGameRepository) GetActiveGames() ([]Game, error) {
	var games []Game
	if err := r.db.Where("game_over = ?", false).Find(&games).Error; err != nil {
		return nil, err
	}

	return games, nil
}

func (r *GormGameRepository) CreateMove(move *Move) error {
	return r.db.Create(move).Error
}

// GetMoves returns the moves of a game in replay order, oldest first.
func (r *GormGameRepository) GetMoves(gameID uint) ([]Move, error) {
	var moves []Move
	err := r.db.
		Where("game_id = ?", gameID).
		Order("created_at").
		Order("id").
		Find(&moves).Error
	if err != nil {
		return nil, err
	}

	return moves, nil
}

func (r *GormGameRepository) CountMoves(gameID uint, guess string) (int64, error) {
	var count int64
	err := r.db.Model(&Move{}).
		Where("game_id = ? AND guess = ?", gameID, guess).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

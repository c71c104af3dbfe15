package score

import (
	"gorm.io/gorm"
)

type ScoreRepository interface {
	CreateScore(score *Score) error
	GetUserScores(userID uint, limit int) ([]Score, error)
	GetScores() ([]Score, error)
}

type GormScoreRepository struct {
	db *gorm.DB
}

func NewGormScoreRepository(db *gorm.DB) *GormScoreRepository {
	return &GormScoreRepository{db: db}
}

func (r *GormScoreRepository) CreateScore(score *Score) error {
	return r.db.Create(score).Error
}

// GetUserScores keeps the source ordering: lost games first, then by guess
// count ascending. Limit 0 means unlimited.
func (r *GormScoreRepository) GetUserScores(userID uint, limit int) ([]Score, error) {
	query := r.db.
		Where("user_id = ?", userID).
		Order("won").
		Order("guesses")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var scores []Score
	if err := query.Find(&scores).Error; err != nil {
		return nil, err
	}

	return scores, nil
}

func (r *GormScoreRepository) GetScores() ([]Score, error) {
	var scores []Score
	if err := r.db.Preload("User").Find(&scores).Error; err != nil {
		return nil, err
	}

	return scores, nil
}

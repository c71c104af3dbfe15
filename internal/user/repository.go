package user

import (
	"errors"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(name, email string) (*User, error)
	GetUserByName(name string) (*User, error)
	GetUsersWithEmail() ([]User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(name, email string) (*User, error) {
	newUser := User{
		Name:  name,
		Email: email,
	}

	if err := r.db.Create(&newUser).Error; err != nil {
		return nil, err
	}

	return &newUser, nil
}

// GetUserByName returns (nil, nil) when no user carries that name.
func (r *GormUserRepository) GetUserByName(name string) (*User, error) {
	var u User
	result := r.db.Where("name = ?", name).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &u, nil
}

func (r *GormUserRepository) GetUsersWithEmail() ([]User, error) {
	var users []User
	if err := r.db.Where("email <> ''").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

package user

import (
	"fmt"

	"hangman/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser registers a new user keyed by its unique name.
func (u *UserService) CreateUser(request *CreateUserRequest) (*StringMessage, error) {
	if request.UserName == "" {
		return nil, apperrors.NewAppError(400, "Name of the user not given", nil)
	}

	existing, err := u.repo.GetUserByName(request.UserName)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error looking up user", err)
	}
	if existing != nil {
		return nil, apperrors.NewAppError(409, "A User with that name already exists", nil)
	}

	created, err := u.repo.CreateUser(request.UserName, request.Email)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error creating user", err)
	}

	return &StringMessage{Message: fmt.Sprintf("User %s created!", created.Name)}, nil
}

// GetUser resolves a user by name, 404 when unknown.
func (u *UserService) GetUser(name string) (*User, error) {
	found, err := u.repo.GetUserByName(name)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error looking up user", err)
	}
	if found == nil {
		return nil, apperrors.NewAppError(404, "A user with that name does not exist", nil)
	}

	return found, nil
}

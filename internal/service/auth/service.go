package auth

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/util"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

var (
	ErrMissingFields = errors.New("Username and password are required.")
	ErrUsernameTaken = errors.New("Username already exists.")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the response never reveals which one failed.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

type Service struct {
	users     *repository.UserRepository
	jwtSecret string
}

func NewService(users *repository.UserRepository, jwtSecret string) *Service {
	return &Service{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

// Register creates a new user with a hashed password.
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := model.User{Username: username, PasswordHash: hash}

	err = s.users.Mutate(ctx, func(users []model.User) ([]model.User, error) {
		for i := range users {
			if users[i].Username == username {
				return nil, ErrUsernameTaken
			}
		}
		return append(users, u), nil
	})
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Login checks user credentials and returns a signed token embedding the
// username.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if !util.CheckPassword(password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(u.Username, s.jwtSecret, TokenTTL)
	if err != nil {
		return "", err
	}

	return token, nil
}

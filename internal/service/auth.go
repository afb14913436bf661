package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/stridehq/stride/internal/model"
	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong password.
	// Callers must not be able to tell which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

type AuthService struct {
	userRepository repository.UserRepository
	bcryptCost     int
}

func NewAuthService(userRepository repository.UserRepository, bcryptCost int) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		bcryptCost:     bcryptCost,
	}
}

func (s *AuthService) Register(username, password string) (*model.User, error) {
	err := validation.ValidateUsername(username)
	if err != nil {
		return nil, invalid(err)
	}

	err = validation.ValidatePassword(password)
	if err != nil {
		return nil, invalid(err)
	}

	// Fast-path check only. Two concurrent registrations can both pass it;
	// the UNIQUE constraint on insert is what actually guarantees uniqueness.
	_, err = s.userRepository.ByUsername(username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	err = s.userRepository.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(username, password string) (*model.User, error) {
	if username == "" {
		return nil, invalid(errors.New("username cannot be empty"))
	}
	if password == "" {
		return nil, invalid(errors.New("password is required"))
	}

	user, err := s.userRepository.ByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = s.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) ByUsername(username string) (*model.User, error) {
	return s.userRepository.ByUsername(username)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

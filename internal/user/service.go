package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/grove-games/armory/internal/auth"
	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/logger"
	"github.com/grove-games/armory/internal/repository"
)

// loginIDPattern: lowercase letter first, then lowercase letters and digits.
var loginIDPattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// Service defines the interface for account registration and sign-in
type Service interface {
	SignUp(ctx context.Context, loginID, password, confirmPassword, name string) (*domain.User, error)
	SignIn(ctx context.Context, loginID, password string) (string, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	repo   repository.User
	tokens *auth.TokenManager
}

// NewService creates a new user service
func NewService(repo repository.User, tokens *auth.TokenManager) Service {
	return &service{
		repo:   repo,
		tokens: tokens,
	}
}

// SignUp validates credentials, hashes the password, and creates the account.
// LoginID collisions surface as ErrDuplicateLoginID from the unique
// constraint, so racing sign-ups cannot both win.
func (s *service) SignUp(ctx context.Context, loginID, password, confirmPassword, name string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(loginID, password, confirmPassword, name); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgHashFailed, err)
	}

	user := &domain.User{
		LoginID:      loginID,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
	}

	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateUserFailed, err)
	}
	user.ID = id

	log.Info(LogMsgUserRegistered, "userID", id, "loginID", loginID)
	return user, nil
}

// SignIn verifies the credentials and returns a signed access token. A
// missing account and a wrong password both map to ErrInvalidCredentials so
// the response does not leak which half failed.
func (s *service) SignIn(ctx context.Context, loginID, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := s.repo.GetUserByLoginID(ctx, loginID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetUserFailed, err)
	}
	if user == nil {
		log.Info(LogMsgSignInRejected, "loginID", loginID)
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Info(LogMsgSignInRejected, "loginID", loginID)
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf(ErrMsgGetUserFailed, err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgIssueTokenFailed, err)
	}

	log.Info(LogMsgUserSignedIn, "userID", user.ID)
	return token, nil
}

// GetUserByID returns the account for a user UUID.
func (s *service) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func validateCredentials(loginID, password, confirmPassword, name string) error {
	if len(loginID) < MinLoginIDLength || len(loginID) > MaxLoginIDLength || !loginIDPattern.MatchString(loginID) {
		return fmt.Errorf(ErrMsgInvalidLoginIDFmt, loginID, domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf(ErrMsgPasswordTooShortFmt, MinPasswordLength, domain.ErrInvalidInput)
	}
	if password != confirmPassword {
		return fmt.Errorf(ErrMsgPasswordMismatch, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf(ErrMsgInvalidUserNameFmt, name, domain.ErrInvalidInput)
	}
	return nil
}

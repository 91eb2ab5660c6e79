package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"

	"github.com/mmyatt91/message.ly/internal/apperr"
	"github.com/mmyatt91/message.ly/internal/cache"
	dom "github.com/mmyatt91/message.ly/internal/domain"
	"github.com/mmyatt91/message.ly/internal/repo"
	"github.com/mmyatt91/message.ly/internal/utils"
)

// UserService handles registration, credential checks and profile reads.
type UserService struct {
	repo  repo.UserRepo
	cache *cache.UserCache
	sf    singleflight.Group
}

// NewUserService creates a UserService. If c is nil, caching is disabled.
func NewUserService(r repo.UserRepo, c *cache.UserCache) *UserService {
	return &UserService{repo: r, cache: c}
}

// Authenticate verifies username and password and returns the user. Unknown
// username and wrong password both return apperr.ErrInvalidCredentials, so
// callers cannot tell which one failed.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, apperr.ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, apperr.ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, apperr.ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new user with a freshly hashed password.
func (s *UserService) Register(ctx context.Context, username, password, firstName, lastName, phone string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, apperr.Validation("username and password required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, dom.User{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, apperr.ErrDuplicateUsername
		}
		return dom.User{}, err
	}
	s.invalidateDirectory(ctx)
	return u, nil
}

// TouchLastLogin records a successful login. Called after every successful
// authentication, including the implicit one on registration.
func (s *UserService) TouchLastLogin(ctx context.Context, username string) error {
	return s.repo.TouchLastLogin(ctx, username)
}

// Get returns the full profile for username.
func (s *UserService) Get(ctx context.Context, username string) (dom.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, apperr.ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// All returns public profiles for every user, served from cache when warm.
func (s *UserService) All(ctx context.Context) ([]dom.UserSummary, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do(keyUserDirectory, func() (interface{}, error) {
			if list, err := s.cache.GetDirectory(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetDirectory(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.UserSummary), nil
	}
	return s.repo.List(ctx)
}

// MessagesTo returns the messages received by username with sender profiles.
func (s *UserService) MessagesTo(ctx context.Context, username string) ([]dom.InboxMessage, error) {
	return s.repo.MessagesTo(ctx, username)
}

// MessagesFrom returns the messages sent by username with recipient profiles.
func (s *UserService) MessagesFrom(ctx context.Context, username string) ([]dom.OutboxMessage, error) {
	return s.repo.MessagesFrom(ctx, username)
}

const keyUserDirectory = "directory"

func (s *UserService) invalidateDirectory(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

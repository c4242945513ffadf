package user

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// Service defines all user-related business operations.
// Users are shared records and are never deleted.
type Service interface {
	// Read operations
	GetUser(ctx context.Context, id types.UserID) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Write operations
	RegisterUser(ctx context.Context, req RegisterUserRequest) (types.UserID, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) error
}

// RegisterUserRequest encapsulates data for registering a user
type RegisterUserRequest struct {
	Name   string
	Email  string
	Avatar string
}

// UpdateUserRequest encapsulates data for updating a user
type UpdateUserRequest struct {
	ID     types.UserID
	Name   *string
	Email  *string
	Avatar *string
}

// service implements Service interface
type service struct {
	store  *store.Store
	logger *slog.Logger
}

// NewService creates a new user service
func NewService(s *store.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{store: s, logger: logger}
}

// GetUser retrieves a user by ID
func (s *service) GetUser(ctx context.Context, id types.UserID) (models.User, error) {
	u, ok := s.store.Snapshot().User(id)
	if !ok {
		return models.User{}, store.NotFound("user", id)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email, case-insensitively
func (s *service) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	u, ok := s.store.Snapshot().UserByEmail(strings.TrimSpace(email))
	if !ok {
		return models.User{}, store.NotFound("user", email)
	}
	return u, nil
}

// ListUsers retrieves every user sorted by name
func (s *service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.Snapshot().Users(), nil
}

// RegisterUser creates a new user with validation
func (s *service) RegisterUser(ctx context.Context, req RegisterUserRequest) (types.UserID, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return "", err
	}
	email, err := validateEmail(req.Email)
	if err != nil {
		return "", err
	}

	id := types.NewUserID()
	err = s.store.Update(ctx, "user.register", func(tx *store.Tx) error {
		if emailTaken(tx, email, id) {
			return ErrEmailTaken
		}
		tx.Users.Put(id, models.User{
			ID:     id,
			Name:   name,
			Email:  email,
			Avatar: strings.TrimSpace(req.Avatar),
		})
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("registered user", "user_id", id, "email", email)
	return id, nil
}

// UpdateUser updates an existing user
func (s *service) UpdateUser(ctx context.Context, req UpdateUserRequest) error {
	var name, email string
	var err error
	if req.Name != nil {
		if name, err = validateName(*req.Name); err != nil {
			return err
		}
	}
	if req.Email != nil {
		if email, err = validateEmail(*req.Email); err != nil {
			return err
		}
	}

	err = s.store.Update(ctx, "user.update", func(tx *store.Tx) error {
		u, err := tx.User(req.ID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			u.Name = name
		}
		if req.Email != nil {
			if emailTaken(tx, email, u.ID) {
				return ErrEmailTaken
			}
			u.Email = email
		}
		if req.Avatar != nil {
			u.Avatar = strings.TrimSpace(*req.Avatar)
		}
		tx.Users.Put(u.ID, u)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("updated user", "user_id", req.ID)
	return nil
}

// emailTaken reports whether another user already has email, ignoring case
func emailTaken(tx *store.Tx, email string, self types.UserID) bool {
	for id, u := range tx.Users.All() {
		if id != self && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if store.TooLong(name, store.MaxTitleLength) {
		return "", ErrNameTooLong
	}
	return name, nil
}

func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	return email, nil
}

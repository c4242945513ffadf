package workspace

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/boardstore/internal/cascade"
	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/relations"
	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/types"
	"github.com/thenoetrevino/boardstore/internal/user"
)

// Service defines all workspace-related business operations
type Service interface {
	// Read operations
	GetWorkspace(ctx context.Context, id types.WorkspaceID) (models.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]models.Workspace, error)

	// Write operations
	CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (types.WorkspaceID, error)
	UpdateWorkspace(ctx context.Context, req UpdateWorkspaceRequest) error
	DeleteWorkspace(ctx context.Context, id types.WorkspaceID) (cascade.Plan, error)

	// Membership
	AddMember(ctx context.Context, id types.WorkspaceID, userID types.UserID) error
	RemoveMember(ctx context.Context, id types.WorkspaceID, userID types.UserID) error
}

// CreateWorkspaceRequest encapsulates data for creating a workspace
type CreateWorkspaceRequest struct {
	Name        string
	Description string
}

// UpdateWorkspaceRequest encapsulates data for updating a workspace
type UpdateWorkspaceRequest struct {
	ID          types.WorkspaceID
	Name        *string
	Description *string
}

// service implements Service interface
type service struct {
	store   *store.Store
	current user.CurrentUserProvider
	logger  *slog.Logger
}

// NewService creates a new workspace service.
// current may be nil, in which case new workspaces start without members.
func NewService(s *store.Store, current user.CurrentUserProvider, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{store: s, current: current, logger: logger}
}

// GetWorkspace retrieves a workspace by ID
func (s *service) GetWorkspace(ctx context.Context, id types.WorkspaceID) (models.Workspace, error) {
	w, ok := s.store.Snapshot().Workspace(id)
	if !ok {
		return models.Workspace{}, store.NotFound("workspace", id)
	}
	return w, nil
}

// ListWorkspaces retrieves every workspace, oldest first
func (s *service) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	return s.store.Snapshot().Workspaces(), nil
}

// CreateWorkspace creates a new workspace; the current user becomes its first member
func (s *service) CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (types.WorkspaceID, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return "", err
	}
	description := strings.TrimSpace(req.Description)
	if store.TooLong(description, store.MaxDescriptionLength) {
		return "", ErrDescriptionTooLong
	}

	id := types.NewWorkspaceID()
	err = s.store.Update(ctx, "workspace.create", func(tx *store.Tx) error {
		w := models.Workspace{
			ID:          id,
			Name:        name,
			Description: description,
			CreatedAt:   tx.Now(),
		}
		if creator, ok := s.creator(tx); ok {
			w.Members = []types.UserID{creator}
		}
		tx.Workspaces.Put(id, w)
		tx.Touch(id)
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("created workspace", "workspace_id", id)
	return id, nil
}

// creator returns the current user if one is signed in and registered
func (s *service) creator(tx *store.Tx) (types.UserID, bool) {
	if s.current == nil {
		return "", false
	}
	id, ok := s.current.CurrentUserID()
	if !ok || !tx.Users.Has(id) {
		return "", false
	}
	return id, true
}

// UpdateWorkspace updates an existing workspace
func (s *service) UpdateWorkspace(ctx context.Context, req UpdateWorkspaceRequest) error {
	var name, description string
	var err error
	if req.Name != nil {
		if name, err = validateName(*req.Name); err != nil {
			return err
		}
	}
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
		if store.TooLong(description, store.MaxDescriptionLength) {
			return ErrDescriptionTooLong
		}
	}

	err = s.store.Update(ctx, "workspace.update", func(tx *store.Tx) error {
		w, err := tx.Workspace(req.ID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			w.Name = name
		}
		if req.Description != nil {
			w.Description = description
		}
		tx.Workspaces.Put(w.ID, w)
		tx.Touch(w.ID)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("updated workspace", "workspace_id", req.ID)
	return nil
}

// DeleteWorkspace deletes a workspace and everything it owns
func (s *service) DeleteWorkspace(ctx context.Context, id types.WorkspaceID) (cascade.Plan, error) {
	var plan cascade.Plan
	err := s.store.Update(ctx, "workspace.delete", func(tx *store.Tx) error {
		if _, err := tx.Workspace(id); err != nil {
			return err
		}
		p, err := cascade.PlanCascade(tx.State, cascade.KindWorkspace, string(id))
		if err != nil {
			return err
		}
		if err := cascade.Execute(tx.State, p); err != nil {
			return err
		}
		tx.Touch(id)
		plan = p
		return nil
	})
	if err != nil {
		return cascade.Plan{}, err
	}

	s.logger.Debug("deleted workspace",
		"workspace_id", id,
		"boards", len(plan.Boards),
		"lists", len(plan.Lists),
		"cards", len(plan.Cards))
	return plan, nil
}

// AddMember adds a user to the workspace; adding an existing member is a no-op
func (s *service) AddMember(ctx context.Context, id types.WorkspaceID, userID types.UserID) error {
	return s.store.Update(ctx, "workspace.add_member", func(tx *store.Tx) error {
		w, err := tx.Workspace(id)
		if err != nil {
			return err
		}
		if _, err := tx.User(userID); err != nil {
			return err
		}
		members, changed := relations.Add(w.Members, userID)
		if !changed {
			return nil
		}
		w.Members = members
		tx.Workspaces.Put(id, w)
		tx.Touch(id)
		return nil
	})
}

// RemoveMember removes a user reference; the user record itself is kept
func (s *service) RemoveMember(ctx context.Context, id types.WorkspaceID, userID types.UserID) error {
	return s.store.Update(ctx, "workspace.remove_member", func(tx *store.Tx) error {
		w, err := tx.Workspace(id)
		if err != nil {
			return err
		}
		if _, err := tx.User(userID); err != nil {
			return err
		}
		members, changed := relations.Remove(w.Members, userID)
		if !changed {
			return nil
		}
		w.Members = members
		tx.Workspaces.Put(id, w)
		tx.Touch(id)
		return nil
	})
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

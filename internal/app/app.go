package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/boardstore/internal/events"
	boardservice "github.com/thenoetrevino/boardstore/internal/services/board"
	cardservice "github.com/thenoetrevino/boardstore/internal/services/card"
	commentservice "github.com/thenoetrevino/boardstore/internal/services/comment"
	listservice "github.com/thenoetrevino/boardstore/internal/services/list"
	moveservice "github.com/thenoetrevino/boardstore/internal/services/move"
	tagservice "github.com/thenoetrevino/boardstore/internal/services/tag"
	todoservice "github.com/thenoetrevino/boardstore/internal/services/todo"
	userservice "github.com/thenoetrevino/boardstore/internal/services/user"
	workspaceservice "github.com/thenoetrevino/boardstore/internal/services/workspace"
	"github.com/thenoetrevino/boardstore/internal/snapshot"
	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/types"
	"github.com/thenoetrevino/boardstore/internal/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	store *store.Store

	// Event system for live updates
	eventClient events.EventPublisher
	ownsEvents  bool

	session *user.Static
	logger  *slog.Logger

	// Service layer (business logic)
	WorkspaceService workspaceservice.Service
	BoardService     boardservice.Service
	ListService      listservice.Service
	CardService      cardservice.Service
	TagService       tagservice.Service
	TodoService      todoservice.Service
	CommentService   commentservice.Service
	UserService      userservice.Service
	MoveService      moveservice.Service
}

// New creates a new App with all services initialized over an empty store.
func New(opts ...Option) *App {
	cfg := &appConfig{eventBuffer: events.DefaultBuffer}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	a := &App{
		eventClient: cfg.eventClient,
		session:     user.NewStatic(""),
		logger:      cfg.logger,
	}
	if a.eventClient == nil {
		a.eventClient = events.NewBus(cfg.eventBuffer, cfg.logger)
		a.ownsEvents = true
	}

	storeOpts := []store.Option{
		store.WithPublisher(a.eventClient),
		store.WithLogger(cfg.logger),
		store.WithIntegrityCheck(cfg.verifyIntegrity),
	}
	if cfg.clock != nil {
		storeOpts = append(storeOpts, store.WithClock(cfg.clock))
	}
	a.store = store.New(storeOpts...)

	current := user.Chain{a.session, cfg.fallbackUser}

	a.WorkspaceService = workspaceservice.NewService(a.store, current, cfg.logger)
	a.BoardService = boardservice.NewService(a.store, current, cfg.logger)
	a.ListService = listservice.NewService(a.store, cfg.logger)
	a.CardService = cardservice.NewService(a.store, cfg.logger)
	a.TagService = tagservice.NewService(a.store, cfg.logger)
	a.TodoService = todoservice.NewService(a.store, cfg.logger)
	a.CommentService = commentservice.NewService(a.store, current, cfg.logger)
	a.UserService = userservice.NewService(a.store, cfg.logger)
	a.MoveService = moveservice.NewService(a.ListService, a.CardService, cfg.logger)
	return a
}

// Snapshot returns the latest committed read view
func (a *App) Snapshot() *snapshot.Snapshot {
	return a.store.Snapshot()
}

// Subscribe returns committed changes for one workspace ("" = all) until ctx is done
func (a *App) Subscribe(ctx context.Context, workspaceID types.WorkspaceID) (<-chan events.Event, error) {
	return a.eventClient.Listen(ctx, workspaceID)
}

// EventMetrics reports the event counters when the publisher keeps them
func (a *App) EventMetrics() (events.MetricsSnapshot, bool) {
	p, ok := a.eventClient.(interface{ Metrics() *events.Metrics })
	if !ok || p.Metrics() == nil {
		return events.MetricsSnapshot{}, false
	}
	return p.Metrics().GetSnapshot(), true
}

// SignIn makes id the acting user for later mutations
func (a *App) SignIn(ctx context.Context, id types.UserID) error {
	if _, err := a.UserService.GetUser(ctx, id); err != nil {
		return err
	}
	a.session.Set(id)
	a.logger.Debug("signed in", "user_id", id)
	return nil
}

// SignInByEmail resolves a registered email and signs that user in
func (a *App) SignInByEmail(ctx context.Context, email string) error {
	u, err := a.UserService.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	return a.SignIn(ctx, u.ID)
}

// SignOut clears the acting user
func (a *App) SignOut() {
	a.session.Set("")
}

// CurrentUserID reports the user signed in through the app
func (a *App) CurrentUserID() (types.UserID, bool) {
	return a.session.CurrentUserID()
}

// Close releases the event bus if the app created it.
func (a *App) Close() error {
	if a.ownsEvents {
		return a.eventClient.Close()
	}
	return nil
}

// Package cli holds the shared plumbing for boardctl commands: the
// application context, output formatting, exit codes and tree rendering.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/boardstore/internal/app"
	"github.com/thenoetrevino/boardstore/internal/config"
	"github.com/thenoetrevino/boardstore/internal/logging"
	"github.com/thenoetrevino/boardstore/internal/seed"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	Refs   *seed.Refs // Fixture keys of the loaded seed
	Logger *slog.Logger

	logCloser io.Closer
}

type cliKey struct{}

// ErrNoCLI is returned when a command runs without the root pre-run
var ErrNoCLI = errors.New("cli not initialized")

// NewCLI installs the process logger and builds the application from cfg.
// The store starts empty; call Seed to load data.
func NewCLI(cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	closer, err := logging.Init(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger := logging.Logger

	application := app.New(
		app.WithLogger(logger),
		app.WithEventBuffer(cfg.Events.Buffer),
		app.WithIntegrityCheck(cfg.Store.VerifyIntegrity),
	)

	return &CLI{
		App:       application,
		Config:    cfg,
		Refs:      seed.NewRefs(),
		Logger:    logger,
		logCloser: closer,
	}, nil
}

// Seed loads the fixture at path, falling back to the configured seed file
// and then to the demo data when the config asks for it. With nothing to
// load the store stays empty.
func (c *CLI) Seed(ctx context.Context, path string) error {
	if path == "" {
		path = c.Config.Seed.File
	}

	var fixture *seed.Fixture
	switch {
	case path != "":
		f, err := seed.Load(path)
		if err != nil {
			return err
		}
		fixture = f
	case c.Config.Seed.Demo:
		fixture = seed.Demo()
	default:
		return nil
	}
	return c.apply(ctx, fixture)
}

// SeedDemo loads the built-in demo data
func (c *CLI) SeedDemo(ctx context.Context) error {
	return c.apply(ctx, seed.Demo())
}

func (c *CLI) apply(ctx context.Context, fixture *seed.Fixture) error {
	refs, err := seed.Apply(ctx, c.App, fixture)
	if err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}
	c.Refs = refs

	if c.Config.CurrentUser != "" {
		if err := c.App.SignInByEmail(ctx, c.Config.CurrentUser); err != nil {
			return fmt.Errorf("failed to sign in %s: %w", c.Config.CurrentUser, err)
		}
	}
	c.Logger.Debug("store seeded", "sequence", c.App.Snapshot().Sequence())
	return nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	err := c.App.Close()
	if c.logCloser != nil {
		err = errors.Join(err, c.logCloser.Close())
	}
	return err
}

// WithCLI stores c in ctx
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored by the root pre-run
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}

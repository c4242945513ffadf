package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/boardstore/internal/cli/styles"
	"github.com/thenoetrevino/boardstore/internal/config"
)

func newTestCLI(t *testing.T, mutate func(*config.Config)) *CLI {
	t.Helper()
	cfg := config.Default()
	cfg.Store.VerifyIntegrity = true
	if mutate != nil {
		mutate(cfg)
	}
	c, err := NewCLI(cfg)
	if err != nil {
		t.Fatalf("NewCLI failed: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCLI_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing configured leaves the store empty", func(t *testing.T) {
		c := newTestCLI(t, nil)
		if err := c.Seed(ctx, ""); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		if n := len(c.App.Snapshot().Workspaces()); n != 0 {
			t.Errorf("Expected no workspaces, got %d", n)
		}
	})

	t.Run("demo from config", func(t *testing.T) {
		c := newTestCLI(t, func(cfg *config.Config) { cfg.Seed.Demo = true })
		if err := c.Seed(ctx, ""); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		if _, ok := c.Refs.Boards["alpha"]; !ok {
			t.Error("Expected the demo board alpha to be bound")
		}
	})

	t.Run("file from config beats demo", func(t *testing.T) {
		c := newTestCLI(t, func(cfg *config.Config) {
			cfg.Seed.Demo = true
			cfg.Seed.File = "../seed/testdata/small.yaml"
		})
		if err := c.Seed(ctx, ""); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		if _, ok := c.Refs.Boards["engine"]; !ok {
			t.Error("Expected the fixture board engine to be bound")
		}
	})

	t.Run("current user from config", func(t *testing.T) {
		c := newTestCLI(t, func(cfg *config.Config) { cfg.CurrentUser = "JANE@example.com" })
		if err := c.SeedDemo(ctx); err != nil {
			t.Fatalf("SeedDemo failed: %v", err)
		}
		id, ok := c.App.CurrentUserID()
		if !ok || id != c.Refs.Users["jane"] {
			t.Errorf("Expected jane to be signed in, got %v %v", id, ok)
		}
	})

	t.Run("unknown current user", func(t *testing.T) {
		c := newTestCLI(t, func(cfg *config.Config) { cfg.CurrentUser = "nobody@example.com" })
		err := c.SeedDemo(ctx)
		if err == nil || !strings.Contains(err.Error(), "nobody@example.com") {
			t.Errorf("Expected sign-in failure, got %v", err)
		}
	})
}

func TestCLI_Context(t *testing.T) {
	if _, err := GetCLIFromContext(context.Background()); !errors.Is(err, ErrNoCLI) {
		t.Errorf("Expected ErrNoCLI, got %v", err)
	}

	c := newTestCLI(t, nil)
	got, err := GetCLIFromContext(WithCLI(context.Background(), c))
	if err != nil || got != c {
		t.Errorf("Expected the stored CLI, got %v %v", got, err)
	}
}

func TestRenderTree(t *testing.T) {
	c := newTestCLI(t, nil)
	if err := c.SeedDemo(context.Background()); err != nil {
		t.Fatalf("SeedDemo failed: %v", err)
	}
	st := styles.New(config.MonochromeTheme())

	views := BuildView(c.App.Snapshot(), c.Refs)
	out := RenderTree(views, st)

	// Lists appear in board order and cards in list order
	todo := strings.Index(out, "To Do")
	doing := strings.Index(out, "In Progress")
	done := strings.Index(out, "Done")
	if todo < 0 || doing < todo || done < doing {
		t.Errorf("Lists out of order\n%s", out)
	}
	setup := strings.Index(out, "Setup project repository")
	design := strings.Index(out, "Design system components")
	if setup < 0 || design < setup {
		t.Errorf("Cards out of order\n%s", out)
	}
	if !strings.Contains(out, "(company, 3 members)") {
		t.Errorf("Expected workspace summary\n%s", out)
	}

	if got := RenderTree(nil, st); !strings.Contains(got, "No workspaces") {
		t.Errorf("Expected placeholder, got %q", got)
	}
}

func TestBuildView_WithoutRefs(t *testing.T) {
	c := newTestCLI(t, nil)
	if err := c.SeedDemo(context.Background()); err != nil {
		t.Fatalf("SeedDemo failed: %v", err)
	}
	views := BuildView(c.App.Snapshot(), nil)
	if len(views) != 2 {
		t.Fatalf("Expected 2 workspaces, got %d", len(views))
	}
	for _, ws := range views {
		if ws.Key != "" {
			t.Errorf("Expected no keys without refs, got %q", ws.Key)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	if got := RenderMarkdown("", 40); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
	got := RenderMarkdown("Some **bold** text", 40)
	if !strings.Contains(got, "bold") {
		t.Errorf("Expected rendered text to keep its words, got %q", got)
	}
}

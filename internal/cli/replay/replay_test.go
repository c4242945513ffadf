package replay

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardstore/internal/cli"
	"github.com/thenoetrevino/boardstore/internal/testutil"
)

func newRoot(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	root := cli.NewRootCmd(ReplayCmd(), OpsCmd())
	args = append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	testutil.SetupCobraCommand(root, args)
	return root
}

func TestReplay_JSON(t *testing.T) {
	output, err := testutil.ExecuteCommand(t, newRoot(t, "replay", "testdata/moves.yaml", "--json", "--tree"))
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	data := testutil.SuccessData(t, output)
	steps := data["steps"].([]any)
	if len(steps) != 3 {
		t.Fatalf("Expected 3 steps, got %d", len(steps))
	}

	// The seed file is resolved relative to the script
	boards := data["workspaces"].([]any)[0].(map[string]any)["boards"].([]any)
	lists := boards[0].(map[string]any)["lists"].([]any)
	done := lists[1].(map[string]any)
	if done["title"] != "Done" {
		t.Fatalf("Expected the second list to be Done, got %v", done["title"])
	}
	cards := done["cards"].([]any)
	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards in Done, got %d", len(cards))
	}
	if cards[0].(map[string]any)["title"] != "Prove it halts" || cards[1].(map[string]any)["key"] != "notes" {
		t.Errorf("Unexpected order in Done: %v", cards)
	}
}

func TestReplay_Human(t *testing.T) {
	output, err := testutil.ExecuteCommand(t, newRoot(t, "replay", "testdata/moves.yaml"))
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !strings.Contains(output, "move things around: 3 steps") {
		t.Errorf("Expected a summary line, got %q", output)
	}
	if !strings.Contains(output, "drag") || !strings.Contains(output, "card to index 0") {
		t.Errorf("Expected the drag step, got %q", output)
	}
}

func TestReplay_StaleDragStops(t *testing.T) {
	output, err := testutil.ExecuteCommand(t, newRoot(t, "replay", "testdata/stale.yaml", "--json"))
	if err == nil {
		t.Fatal("Expected the stale drag to fail")
	}
	if got := cli.ExitCode(err); got != cli.ExitInvalidTarget {
		t.Errorf("Expected exit code %d, got %d", cli.ExitInvalidTarget, got)
	}
	result := testutil.ParseJSON(t, output)
	errData := result["error"].(map[string]any)
	if errData["code"] != "INVALID_TARGET" || !strings.Contains(errData["message"].(string), "step 1 (drag)") {
		t.Errorf("Unexpected error payload %v", errData)
	}
}

func TestReplay_SeedFlagOverridesScript(t *testing.T) {
	_, err := testutil.ExecuteCommand(t, newRoot(t, "replay", "testdata/moves.yaml", "--seed", filepath.Join(t.TempDir(), "none.yaml")))
	if err == nil {
		t.Fatal("Expected the missing --seed file to win over the script's seed")
	}
}

func TestReplay_MissingArg(t *testing.T) {
	_, err := testutil.ExecuteCommand(t, newRoot(t, "replay"))
	if cli.ExitCode(err) != cli.ExitUsage {
		t.Errorf("Expected usage exit code, got %d (%v)", cli.ExitCode(err), err)
	}
}

func TestOps(t *testing.T) {
	output, err := testutil.ExecuteCommand(t, newRoot(t, "ops"))
	if err != nil {
		t.Fatalf("ops failed: %v", err)
	}
	for _, op := range []string{"create_card", "move_card", "delete_board", "drag"} {
		if !strings.Contains(output, op) {
			t.Errorf("Expected %s in ops list", op)
		}
	}
}

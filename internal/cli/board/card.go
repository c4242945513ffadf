package board

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardstore/internal/cli"
	"github.com/thenoetrevino/boardstore/internal/cli/styles"
	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/seed"
	"github.com/thenoetrevino/boardstore/internal/snapshot"
)

// cardDetail is the JSON payload of card
type cardDetail struct {
	Card      models.Card     `json:"card"`
	Board     string          `json:"board"`
	List      string          `json:"list"`
	Assignees []string        `json:"assignees"`
	Tags      []models.Tag    `json:"tags"`
	Todos     []models.Todo   `json:"todos"`
	Comments  []commentDetail `json:"comments"`
}

type commentDetail struct {
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the card id for quiet output
func (d cardDetail) GetID() string { return string(d.Card.ID) }

// CardCmd returns the card subcommand
func CardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "card <key>",
		Short: "Show one card of the seeded store",
		Long: `Show a card by its fixture key with its tags, assignees, todos and
comments. The description is rendered as markdown.`,
		Args: cli.UsageArgs(cobra.ExactArgs(1)),
		RunE: runCard,
	}
}

func runCard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if path := cli.SeedPath(cmd); path != "" || cliInstance.Config.Seed.File != "" {
		err = cliInstance.Seed(ctx, path)
	} else {
		err = cliInstance.SeedDemo(ctx)
	}
	if err != nil {
		return formatter.Fail(err)
	}

	id, err := seed.Lookup(cliInstance.Refs.Cards, "card", args[0])
	if err != nil {
		return formatter.Fail(cli.Usage(err))
	}
	card, err := cliInstance.App.CardService.GetCard(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	detail := describeCard(cliInstance.App.Snapshot(), card)
	st := styles.New(cliInstance.Config.Theme)
	return formatter.Success(detail, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, st.RenderCard(renderCard(detail, st)))
		return err
	})
}

func describeCard(snap *snapshot.Snapshot, card models.Card) cardDetail {
	d := cardDetail{
		Card:     card,
		Tags:     []models.Tag{},
		Todos:    snap.Todos(card.ID),
		Comments: []commentDetail{},
	}
	if list, ok := snap.List(card.ListID); ok {
		d.List = list.Title
		if board, ok := snap.Board(list.BoardID); ok {
			d.Board = board.Title
		}
	}
	for _, uid := range card.AssignedUsers {
		if u, ok := snap.User(uid); ok {
			d.Assignees = append(d.Assignees, u.Name)
		}
	}
	for _, tid := range card.TagIDs {
		if tag, ok := snap.Tag(tid); ok {
			d.Tags = append(d.Tags, tag)
		}
	}
	for _, c := range snap.Comments(card.ID) {
		author := string(c.UserID)
		if u, ok := snap.User(c.UserID); ok {
			author = u.Name
		}
		d.Comments = append(d.Comments, commentDetail{Author: author, Content: c.Content, CreatedAt: c.CreatedAt})
	}
	return d
}

func renderCard(d cardDetail, st *styles.Styles) string {
	var content strings.Builder

	content.WriteString(st.Title.Render(d.Card.Title))
	content.WriteString("\n")
	content.WriteString(st.Subtle.Render(fmt.Sprintf("%s › %s › #%d", d.Board, d.List, d.Card.Order+1)))
	content.WriteString("\n")

	if len(d.Tags) > 0 {
		chips := make([]string, 0, len(d.Tags))
		for _, tag := range d.Tags {
			chips = append(chips, st.TagChip(tag))
		}
		content.WriteString("\n" + strings.Join(chips, " ") + "\n")
	}

	if len(d.Assignees) > 0 {
		content.WriteString(fmt.Sprintf("\n%s %s\n", st.Label.Render("Assigned:"), strings.Join(d.Assignees, ", ")))
	}

	if d.Card.Description != "" {
		content.WriteString(st.Section.Render("Description"))
		content.WriteString("\n")
		content.WriteString(cli.RenderMarkdown(d.Card.Description, styles.CardWidth-6))
		content.WriteString("\n")
	}

	if len(d.Todos) > 0 {
		content.WriteString(st.Section.Render("Todos"))
		content.WriteString("\n")
		for _, todo := range d.Todos {
			content.WriteString("  " + st.Checkbox(todo.Completed) + " " + todo.Text + "\n")
		}
	}

	if len(d.Comments) > 0 {
		content.WriteString(st.Section.Render("Comments"))
		content.WriteString("\n")
		for _, c := range d.Comments {
			content.WriteString(fmt.Sprintf("  %s %s\n  %s\n",
				st.Label.Render(c.Author),
				st.Subtle.Render(c.CreatedAt.Format("2006-01-02 15:04")),
				c.Content))
		}
	}

	return strings.TrimRight(content.String(), "\n")
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/thenoetrevino/boardstore/internal/cli/styles"
	"github.com/thenoetrevino/boardstore/internal/models"
)

// RenderTree draws workspaces > boards > lists > cards as a lipgloss tree
func RenderTree(workspaces []WorkspaceView, st *styles.Styles) string {
	if len(workspaces) == 0 {
		return st.Subtle.Render("No workspaces")
	}

	var out strings.Builder
	for i, ws := range workspaces {
		if i > 0 {
			out.WriteString("\n")
		}
		root := tree.Root(st.Workspace.Render(ws.Name) + " " + st.Subtle.Render(keyed(ws.Key, fmt.Sprintf("%d members", len(ws.Members))))).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(st.Enum)
		for _, board := range ws.Boards {
			root.Child(boardTree(board, st))
		}
		out.WriteString(root.String())
		out.WriteString("\n")
	}
	return out.String()
}

func boardTree(board BoardView, st *styles.Styles) *tree.Tree {
	t := tree.Root(st.Board.Render(board.Title) + " " + st.Subtle.Render(keyed(board.Key, "")))
	for _, list := range board.Lists {
		lt := tree.Root(st.List.Render(list.Title) + " " + st.Subtle.Render(keyed(list.Key, fmt.Sprintf("%d cards", len(list.Cards)))))
		for _, card := range list.Cards {
			lt.Child(cardLine(card, st))
		}
		t.Child(lt)
	}
	return t
}

func cardLine(card CardView, st *styles.Styles) string {
	parts := []string{st.Card.Render(card.Title)}
	for _, tag := range card.Tags {
		parts = append(parts, st.TagChip(models.Tag{Name: tag.Name, Color: tag.Color}))
	}
	if len(card.Assignees) > 0 {
		parts = append(parts, st.Subtle.Render("@"+strings.Join(card.Assignees, ", @")))
	}
	if card.Todos > 0 {
		parts = append(parts, st.Checkbox(card.TodosDone == card.Todos)+st.Subtle.Render(fmt.Sprintf(" %d/%d", card.TodosDone, card.Todos)))
	}
	if card.Key != "" {
		parts = append(parts, st.Subtle.Render("("+card.Key+")"))
	}
	return strings.Join(parts, " ")
}

// keyed formats "(key, detail)" omitting empty parts
func keyed(key, detail string) string {
	switch {
	case key != "" && detail != "":
		return "(" + key + ", " + detail + ")"
	case key != "":
		return "(" + key + ")"
	case detail != "":
		return "(" + detail + ")"
	default:
		return ""
	}
}

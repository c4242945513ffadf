package script

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/thenoetrevino/boardstore/internal/app"
	"github.com/thenoetrevino/boardstore/internal/cascade"
	boardservice "github.com/thenoetrevino/boardstore/internal/services/board"
	cardservice "github.com/thenoetrevino/boardstore/internal/services/card"
	commentservice "github.com/thenoetrevino/boardstore/internal/services/comment"
	listservice "github.com/thenoetrevino/boardstore/internal/services/list"
	moveservice "github.com/thenoetrevino/boardstore/internal/services/move"
	tagservice "github.com/thenoetrevino/boardstore/internal/services/tag"
	todoservice "github.com/thenoetrevino/boardstore/internal/services/todo"
	userservice "github.com/thenoetrevino/boardstore/internal/services/user"
	workspaceservice "github.com/thenoetrevino/boardstore/internal/services/workspace"
	"github.com/thenoetrevino/boardstore/internal/seed"
)

// Result describes one executed step
type Result struct {
	Step     int    `json:"step" yaml:"step"`
	Op       string `json:"op" yaml:"op"`
	Detail   string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Sequence int64  `json:"sequence" yaml:"sequence"`
}

type handler func(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error)

// Run executes steps in order and stops at the first error, which is
// returned wrapped with the step number. Results cover the steps that ran.
func Run(ctx context.Context, a *app.App, refs *seed.Refs, steps []Step) ([]Result, error) {
	if refs == nil {
		refs = seed.NewRefs()
	}
	results := make([]Result, 0, len(steps))
	for i, step := range steps {
		h, ok := handlers[step.Op]
		if !ok {
			return results, fmt.Errorf("step %d: unknown op %q", i+1, step.Op)
		}
		detail, err := h(ctx, a, refs, step)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		slog.Debug("script step done", "step", i+1, "op", step.Op, "detail", detail)
		results = append(results, Result{
			Step:     i + 1,
			Op:       step.Op,
			Detail:   detail,
			Sequence: a.Snapshot().Sequence(),
		})
	}
	return results, nil
}

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"register_user":           registerUser,
		"sign_in":                 signIn,
		"create_workspace":        createWorkspace,
		"update_workspace":        updateWorkspace,
		"delete_workspace":        deleteWorkspace,
		"add_workspace_member":    addWorkspaceMember,
		"remove_workspace_member": removeWorkspaceMember,
		"create_board":            createBoard,
		"update_board":            updateBoard,
		"delete_board":            deleteBoard,
		"add_board_member":        addBoardMember,
		"remove_board_member":     removeBoardMember,
		"create_list":             createList,
		"update_list":             updateList,
		"delete_list":             deleteList,
		"move_list":               moveList,
		"create_card":             createCard,
		"update_card":             updateCard,
		"delete_card":             deleteCard,
		"move_card":               moveCard,
		"assign_user":             assignUser,
		"unassign_user":           unassignUser,
		"add_tag":                 addTag,
		"remove_tag":              removeTag,
		"create_tag":              createTag,
		"update_tag":              updateTag,
		"delete_tag":              deleteTag,
		"create_todo":             createTodo,
		"toggle_todo":             toggleTodo,
		"delete_todo":             deleteTodo,
		"add_comment":             addComment,
		"drag":                    drag,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func planDetail(p cascade.Plan) string {
	return fmt.Sprintf("removed %d boards, %d lists, %d cards, %d tags, %d todos, %d comments",
		len(p.Boards), len(p.Lists), len(p.Cards), len(p.Tags), len(p.Todos), len(p.Comments))
}

// Users

func registerUser(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := a.UserService.RegisterUser(ctx, userservice.RegisterUserRequest{Name: s.Name, Email: s.Email})
	if err != nil {
		return "", err
	}
	return string(id), seed.Bind(refs.Users, "user", s.Ref, id)
}

func signIn(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	if s.User == "" {
		a.SignOut()
		return "signed out", nil
	}
	id, err := seed.Lookup(refs.Users, "user", s.User)
	if err != nil {
		return "", err
	}
	return string(id), a.SignIn(ctx, id)
}

// Workspaces

func createWorkspace(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	req := workspaceservice.CreateWorkspaceRequest{Name: s.Name}
	if s.Description != nil {
		req.Description = *s.Description
	}
	id, err := a.WorkspaceService.CreateWorkspace(ctx, req)
	if err != nil {
		return "", err
	}
	return string(id), seed.Bind(refs.Workspaces, "workspace", s.Ref, id)
}

func updateWorkspace(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Workspaces, "workspace", s.Workspace)
	if err != nil {
		return "", err
	}
	return "", a.WorkspaceService.UpdateWorkspace(ctx, workspaceservice.UpdateWorkspaceRequest{
		ID: id, Name: optional(s.Name), Description: s.Description,
	})
}

func deleteWorkspace(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Workspaces, "workspace", s.Workspace)
	if err != nil {
		return "", err
	}
	plan, err := a.WorkspaceService.DeleteWorkspace(ctx, id)
	if err != nil {
		return "", err
	}
	return planDetail(plan), nil
}

func addWorkspaceMember(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Workspaces, "workspace", s.Workspace)
	if err != nil {
		return "", err
	}
	uid, err := seed.Lookup(refs.Users, "user", s.User)
	if err != nil {
		return "", err
	}
	return "", a.WorkspaceService.AddMember(ctx, id, uid)
}

func removeWorkspaceMember(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Workspaces, "workspace", s.Workspace)
	if err != nil {
		return "", err
	}
	uid, err := seed.Lookup(refs.Users, "user", s.User)
	if err != nil {
		return "", err
	}
	return "", a.WorkspaceService.RemoveMember(ctx, id, uid)
}

// Boards

func createBoard(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	ws, err := seed.Lookup(refs.Workspaces, "workspace", s.Workspace)
	if err != nil {
		return "", err
	}
	req := boardservice.CreateBoardRequest{WorkspaceID: ws, Title: s.Title}
	if s.Description != nil {
		req.Description = *s.Description
	}
	id, err := a.BoardService.CreateBoard(ctx, req)
	if err != nil {
		return "", err
	}
	return string(id), seed.Bind(refs.Boards, "board", s.Ref, id)
}

func updateBoard(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Boards, "board", s.Board)
	if err != nil {
		return "", err
	}
	return "", a.BoardService.UpdateBoard(ctx, boardservice.UpdateBoardRequest{
		ID: id, Title: optional(s.Title), Description: s.Description,
	})
}

func deleteBoard(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Boards, "board", s.Board)
	if err != nil {
		return "", err
	}
	plan, err := a.BoardService.DeleteBoard(ctx, id)
	if err != nil {
		return "", err
	}
	return planDetail(plan), nil
}

func addBoardMember(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Boards, "board", s.Board)
	if err != nil {
		return "", err
	}
	uid, err := seed.Lookup(refs.Users, "user", s.User)
	if err != nil {
		return "", err
	}
	return "", a.BoardService.AddMember(ctx, id, uid)
}

func removeBoardMember(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Boards, "board", s.Board)
	if err != nil {
		return "", err
	}
	uid, err := seed.Lookup(refs.Users, "user", s.User)
	if err != nil {
		return "", err
	}
	return "", a.BoardService.RemoveMember(ctx, id, uid)
}

// Lists

func createList(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	board, err := seed.Lookup(refs.Boards, "board", s.Board)
	if err != nil {
		return "", err
	}
	id, err := a.ListService.CreateList(ctx, listservice.CreateListRequest{BoardID: board, Title: s.Title})
	if err != nil {
		return "", err
	}
	return string(id), seed.Bind(refs.Lists, "list", s.Ref, id)
}

func updateList(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Lists, "list", s.List)
	if err != nil {
		return "", err
	}
	return "", a.ListService.UpdateList(ctx, listservice.UpdateListRequest{ID: id, Title: optional(s.Title)})
}

func deleteList(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Lists, "list", s.List)
	if err != nil {
		return "", err
	}
	plan, err := a.ListService.DeleteList(ctx, id)
	if err != nil {
		return "", err
	}
	return planDetail(plan), nil
}

func moveList(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Lists, "list", s.List)
	if err != nil {
		return "", err
	}
	board, err := seed.Lookup(refs.Boards, "board", s.Board)
	if err != nil {
		return "", err
	}
	return "index " + strconv.Itoa(s.Index), a.ListService.MoveList(ctx, listservice.MoveListRequest{ListID: id, BoardID: board, Index: s.Index})
}

// Cards

func createCard(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	list, err := seed.Lookup(refs.Lists, "list", s.List)
	if err != nil {
		return "", err
	}
	req := cardservice.CreateCardRequest{ListID: list, Title: s.Title}
	if s.Description != nil {
		req.Description = *s.Description
	}
	id, err := a.CardService.CreateCard(ctx, req)
	if err != nil {
		return "", err
	}
	return string(id), seed.Bind(refs.Cards, "card", s.Ref, id)
}

func updateCard(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Cards, "card", s.Card)
	if err != nil {
		return "", err
	}
	return "", a.CardService.UpdateCard(ctx, cardservice.UpdateCardRequest{
		ID: id, Title: optional(s.Title), Description: s.Description,
	})
}

func deleteCard(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Cards, "card", s.Card)
	if err != nil {
		return "", err
	}
	plan, err := a.CardService.DeleteCard(ctx, id)
	if err != nil {
		return "", err
	}
	return planDetail(plan), nil
}

func moveCard(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Cards, "card", s.Card)
	if err != nil {
		return "", err
	}
	list, err := seed.Lookup(refs.Lists, "list", s.List)
	if err != nil {
		return "", err
	}
	return "index " + strconv.Itoa(s.Index), a.CardService.MoveCard(ctx, cardservice.MoveCardRequest{CardID: id, ListID: list, Index: s.Index})
}

func assignUser(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Cards, "card", s.Card)
	if err != nil {
		return "", err
	}
	uid, err := seed.Lookup(refs.Users, "user", s.User)
	if err != nil {
		return "", err
	}
	return "", a.CardService.AssignUser(ctx, id, uid)
}

func unassignUser(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Cards, "card", s.Card)
	if err != nil {
		return "", err
	}
	uid, err := seed.Lookup(refs.Users, "user", s.User)
	if err != nil {
		return "", err
	}
	return "", a.CardService.UnassignUser(ctx, id, uid)
}

func addTag(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Cards, "card", s.Card)
	if err != nil {
		return "", err
	}
	tag, err := seed.Lookup(refs.Tags, "tag", s.Tag)
	if err != nil {
		return "", err
	}
	return "", a.CardService.AddTag(ctx, id, tag)
}

func removeTag(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Cards, "card", s.Card)
	if err != nil {
		return "", err
	}
	tag, err := seed.Lookup(refs.Tags, "tag", s.Tag)
	if err != nil {
		return "", err
	}
	return "", a.CardService.RemoveTag(ctx, id, tag)
}

// Tags

func createTag(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	board, err := seed.Lookup(refs.Boards, "board", s.Board)
	if err != nil {
		return "", err
	}
	id, err := a.TagService.CreateTag(ctx, tagservice.CreateTagRequest{BoardID: board, Name: s.Name, Color: s.Color})
	if err != nil {
		return "", err
	}
	return string(id), seed.Bind(refs.Tags, "tag", s.Ref, id)
}

func updateTag(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Tags, "tag", s.Tag)
	if err != nil {
		return "", err
	}
	return "", a.TagService.UpdateTag(ctx, tagservice.UpdateTagRequest{ID: id, Name: optional(s.Name), Color: optional(s.Color)})
}

func deleteTag(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Tags, "tag", s.Tag)
	if err != nil {
		return "", err
	}
	swept, err := a.TagService.DeleteTag(ctx, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("removed from %d cards", swept), nil
}

// Todos and comments

func createTodo(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	card, err := seed.Lookup(refs.Cards, "card", s.Card)
	if err != nil {
		return "", err
	}
	id, err := a.TodoService.CreateTodo(ctx, todoservice.CreateTodoRequest{CardID: card, Text: s.Text})
	if err != nil {
		return "", err
	}
	return string(id), seed.Bind(refs.Todos, "todo", s.Ref, id)
}

func toggleTodo(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Todos, "todo", s.Todo)
	if err != nil {
		return "", err
	}
	done, err := a.TodoService.ToggleTodo(ctx, id)
	if err != nil {
		return "", err
	}
	return "completed=" + strconv.FormatBool(done), nil
}

func deleteTodo(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	id, err := seed.Lookup(refs.Todos, "todo", s.Todo)
	if err != nil {
		return "", err
	}
	return "", a.TodoService.DeleteTodo(ctx, id)
}

func addComment(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	card, err := seed.Lookup(refs.Cards, "card", s.Card)
	if err != nil {
		return "", err
	}
	id, err := a.CommentService.AddComment(ctx, commentservice.AddCommentRequest{CardID: card, Content: s.Content})
	if err != nil {
		return "", err
	}
	return string(id), nil
}

// drag applies a drop from the drag layer; From and To are board keys for
// lists and list keys for cards.
func drag(ctx context.Context, a *app.App, refs *seed.Refs, s Step) (string, error) {
	intent := moveservice.Intent{ItemKind: moveservice.ItemKind(s.Kind), DestinationIndex: s.Index}
	var err error
	switch intent.ItemKind {
	case moveservice.KindList:
		intent.ItemID, err = resolve(refs.Lists, "list", s.List)
		if err == nil {
			intent.SourceParentID, err = resolve(refs.Boards, "board", s.From)
		}
		if err == nil {
			intent.DestinationParentID, err = resolve(refs.Boards, "board", s.To)
		}
	case moveservice.KindCard:
		intent.ItemID, err = resolve(refs.Cards, "card", s.Card)
		if err == nil {
			intent.SourceParentID, err = resolve(refs.Lists, "list", s.From)
		}
		if err == nil {
			intent.DestinationParentID, err = resolve(refs.Lists, "list", s.To)
		}
	}
	if err != nil {
		return "", err
	}
	return s.Kind + " to index " + strconv.Itoa(s.Index), a.MoveService.Apply(ctx, intent)
}

// resolve looks up an optional key as a plain string id
func resolve[ID ~string](m map[string]ID, kind, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	id, err := seed.Lookup(m, kind, key)
	return string(id), err
}

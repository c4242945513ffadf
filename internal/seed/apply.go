package seed

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/boardstore/internal/app"
	boardservice "github.com/thenoetrevino/boardstore/internal/services/board"
	cardservice "github.com/thenoetrevino/boardstore/internal/services/card"
	commentservice "github.com/thenoetrevino/boardstore/internal/services/comment"
	listservice "github.com/thenoetrevino/boardstore/internal/services/list"
	tagservice "github.com/thenoetrevino/boardstore/internal/services/tag"
	todoservice "github.com/thenoetrevino/boardstore/internal/services/todo"
	userservice "github.com/thenoetrevino/boardstore/internal/services/user"
	workspaceservice "github.com/thenoetrevino/boardstore/internal/services/workspace"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// Apply creates every record of f through a's services and returns the
// key-to-id mapping. It stops at the first rejected record; records created
// before it stay in the store.
func Apply(ctx context.Context, a *app.App, f *Fixture) (*Refs, error) {
	refs := NewRefs()

	for _, u := range f.Users {
		id, err := a.UserService.RegisterUser(ctx, userservice.RegisterUserRequest{
			Name:   u.Name,
			Email:  u.Email,
			Avatar: u.Avatar,
		})
		if err != nil {
			return refs, fmt.Errorf("failed to register user %q: %w", u.Key, err)
		}
		if err := Bind(refs.Users, "user", u.Key, id); err != nil {
			return refs, err
		}
	}

	// Memberships come from the fixture, not from whoever happens to be signed in
	a.SignOut()

	for _, w := range f.Workspaces {
		if err := applyWorkspace(ctx, a, refs, w); err != nil {
			return refs, err
		}
	}

	if f.CurrentUser != "" {
		id, err := Lookup(refs.Users, "user", f.CurrentUser)
		if err != nil {
			return refs, err
		}
		if err := a.SignIn(ctx, id); err != nil {
			return refs, err
		}
	}
	return refs, nil
}

func applyWorkspace(ctx context.Context, a *app.App, refs *Refs, w WorkspaceFixture) error {
	wsID, err := a.WorkspaceService.CreateWorkspace(ctx, workspaceservice.CreateWorkspaceRequest{
		Name:        w.Name,
		Description: w.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to create workspace %q: %w", w.Name, err)
	}
	if err := Bind(refs.Workspaces, "workspace", w.Key, wsID); err != nil {
		return err
	}
	for _, key := range w.Members {
		uid, err := Lookup(refs.Users, "user", key)
		if err != nil {
			return err
		}
		if err := a.WorkspaceService.AddMember(ctx, wsID, uid); err != nil {
			return fmt.Errorf("failed to add member %q to workspace %q: %w", key, w.Name, err)
		}
	}

	for _, b := range w.Boards {
		if err := applyBoard(ctx, a, refs, wsID, b); err != nil {
			return err
		}
	}
	return nil
}

func applyBoard(ctx context.Context, a *app.App, refs *Refs, wsID types.WorkspaceID, b BoardFixture) error {
	boardID, err := a.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{
		WorkspaceID: wsID,
		Title:       b.Title,
		Description: b.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to create board %q: %w", b.Title, err)
	}
	if err := Bind(refs.Boards, "board", b.Key, boardID); err != nil {
		return err
	}
	for _, key := range b.Members {
		uid, err := Lookup(refs.Users, "user", key)
		if err != nil {
			return err
		}
		if err := a.BoardService.AddMember(ctx, boardID, uid); err != nil {
			return fmt.Errorf("failed to add member %q to board %q: %w", key, b.Title, err)
		}
	}

	for _, t := range b.Tags {
		tagID, err := a.TagService.CreateTag(ctx, tagservice.CreateTagRequest{BoardID: boardID, Name: t.Name, Color: t.Color})
		if err != nil {
			return fmt.Errorf("failed to create tag %q: %w", t.Name, err)
		}
		if err := Bind(refs.Tags, "tag", t.Key, tagID); err != nil {
			return err
		}
	}

	for _, l := range b.Lists {
		listID, err := a.ListService.CreateList(ctx, listservice.CreateListRequest{BoardID: boardID, Title: l.Title})
		if err != nil {
			return fmt.Errorf("failed to create list %q: %w", l.Title, err)
		}
		if err := Bind(refs.Lists, "list", l.Key, listID); err != nil {
			return err
		}
		for _, c := range l.Cards {
			if err := applyCard(ctx, a, refs, listID, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyCard(ctx context.Context, a *app.App, refs *Refs, listID types.ListID, c CardFixture) error {
	cardID, err := a.CardService.CreateCard(ctx, cardservice.CreateCardRequest{
		ListID:      listID,
		Title:       c.Title,
		Description: c.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to create card %q: %w", c.Title, err)
	}
	if err := Bind(refs.Cards, "card", c.Key, cardID); err != nil {
		return err
	}

	for _, key := range c.Assignees {
		uid, err := Lookup(refs.Users, "user", key)
		if err != nil {
			return err
		}
		if err := a.CardService.AssignUser(ctx, cardID, uid); err != nil {
			return fmt.Errorf("failed to assign %q to card %q: %w", key, c.Title, err)
		}
	}
	for _, key := range c.Tags {
		tagID, err := Lookup(refs.Tags, "tag", key)
		if err != nil {
			return err
		}
		if err := a.CardService.AddTag(ctx, cardID, tagID); err != nil {
			return fmt.Errorf("failed to tag card %q with %q: %w", c.Title, key, err)
		}
	}

	for _, t := range c.Todos {
		todoID, err := a.TodoService.CreateTodo(ctx, todoservice.CreateTodoRequest{CardID: cardID, Text: t.Text})
		if err != nil {
			return fmt.Errorf("failed to create todo on card %q: %w", c.Title, err)
		}
		if err := Bind(refs.Todos, "todo", t.Key, todoID); err != nil {
			return err
		}
		if t.Completed {
			if _, err := a.TodoService.ToggleTodo(ctx, todoID); err != nil {
				return err
			}
		}
	}

	for _, cm := range c.Comments {
		uid, err := Lookup(refs.Users, "user", cm.Author)
		if err != nil {
			return err
		}
		if err := a.SignIn(ctx, uid); err != nil {
			return err
		}
		_, err = a.CommentService.AddComment(ctx, commentservice.AddCommentRequest{CardID: cardID, Content: cm.Content})
		a.SignOut()
		if err != nil {
			return fmt.Errorf("failed to add comment to card %q: %w", c.Title, err)
		}
	}
	return nil
}

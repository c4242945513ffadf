package cli

import (
	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/seed"
	"github.com/thenoetrevino/boardstore/internal/snapshot"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// WorkspaceView is the nested read model printed by the tree commands
type WorkspaceView struct {
	ID      types.WorkspaceID `json:"id"`
	Key     string            `json:"key,omitempty"`
	Name    string            `json:"name"`
	Members []string          `json:"members"`
	Boards  []BoardView       `json:"boards"`
}

// BoardView is one board with its lists in order
type BoardView struct {
	ID      types.BoardID `json:"id"`
	Key     string        `json:"key,omitempty"`
	Title   string        `json:"title"`
	Members []string      `json:"members"`
	Tags    []TagView     `json:"tags"`
	Lists   []ListView    `json:"lists"`
}

// ListView is one list with its cards in order
type ListView struct {
	ID    types.ListID `json:"id"`
	Key   string       `json:"key,omitempty"`
	Title string       `json:"title"`
	Order int          `json:"order"`
	Cards []CardView   `json:"cards"`
}

// CardView summarizes a card
type CardView struct {
	ID        types.CardID `json:"id"`
	Key       string       `json:"key,omitempty"`
	Title     string       `json:"title"`
	Order     int          `json:"order"`
	Assignees []string     `json:"assignees"`
	Tags      []TagView    `json:"tags"`
	TodosDone int          `json:"todos_done"`
	Todos     int          `json:"todos"`
	Comments  int          `json:"comments"`
}

// TagView is a tag as shown on cards
type TagView struct {
	ID    types.TagID `json:"id"`
	Name  string      `json:"name"`
	Color string      `json:"color"`
}

// GetID returns the card id for quiet output
func (c CardView) GetID() string { return string(c.ID) }

func invert[ID ~string](m map[string]ID) map[ID]string {
	out := make(map[ID]string, len(m))
	for key, id := range m {
		out[id] = key
	}
	return out
}

type keyIndex struct {
	workspaces map[types.WorkspaceID]string
	boards     map[types.BoardID]string
	lists      map[types.ListID]string
	cards      map[types.CardID]string
}

func newKeyIndex(refs *seed.Refs) keyIndex {
	if refs == nil {
		refs = seed.NewRefs()
	}
	return keyIndex{
		workspaces: invert(refs.Workspaces),
		boards:     invert(refs.Boards),
		lists:      invert(refs.Lists),
		cards:      invert(refs.Cards),
	}
}

// BuildView reads the whole tree out of snap. Keys are filled from refs
// for records that came from a fixture.
func BuildView(snap *snapshot.Snapshot, refs *seed.Refs) []WorkspaceView {
	keys := newKeyIndex(refs)
	workspaces := snap.Workspaces()
	out := make([]WorkspaceView, 0, len(workspaces))
	for _, ws := range workspaces {
		wv := WorkspaceView{
			ID:      ws.ID,
			Key:     keys.workspaces[ws.ID],
			Name:    ws.Name,
			Members: userNames(snap, ws.Members),
			Boards:  []BoardView{},
		}
		for _, board := range snap.Boards(ws.ID) {
			wv.Boards = append(wv.Boards, buildBoard(snap, keys, board))
		}
		out = append(out, wv)
	}
	return out
}

func buildBoard(snap *snapshot.Snapshot, keys keyIndex, board models.Board) BoardView {
	bv := BoardView{
		ID:      board.ID,
		Key:     keys.boards[board.ID],
		Title:   board.Title,
		Members: userNames(snap, board.Members),
		Tags:    tagViews(snap.Tags(board.ID)),
		Lists:   []ListView{},
	}
	for _, list := range snap.Lists(board.ID) {
		lv := ListView{
			ID:    list.ID,
			Key:   keys.lists[list.ID],
			Title: list.Title,
			Order: list.Order,
			Cards: []CardView{},
		}
		for _, card := range snap.Cards(list.ID) {
			lv.Cards = append(lv.Cards, buildCard(snap, keys, card))
		}
		bv.Lists = append(bv.Lists, lv)
	}
	return bv
}

func buildCard(snap *snapshot.Snapshot, keys keyIndex, card models.Card) CardView {
	cv := CardView{
		ID:        card.ID,
		Key:       keys.cards[card.ID],
		Title:     card.Title,
		Order:     card.Order,
		Assignees: userNames(snap, card.AssignedUsers),
		Tags:      []TagView{},
		Comments:  len(snap.Comments(card.ID)),
	}
	for _, id := range card.TagIDs {
		if tag, ok := snap.Tag(id); ok {
			cv.Tags = append(cv.Tags, TagView{ID: tag.ID, Name: tag.Name, Color: tag.Color})
		}
	}
	for _, todo := range snap.Todos(card.ID) {
		cv.Todos++
		if todo.Completed {
			cv.TodosDone++
		}
	}
	return cv
}

func tagViews(tags []models.Tag) []TagView {
	out := make([]TagView, 0, len(tags))
	for _, tag := range tags {
		out = append(out, TagView{ID: tag.ID, Name: tag.Name, Color: tag.Color})
	}
	return out
}

func userNames(snap *snapshot.Snapshot, ids []types.UserID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if u, ok := snap.User(id); ok {
			names = append(names, u.Name)
		} else {
			names = append(names, string(id))
		}
	}
	return names
}

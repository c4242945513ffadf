// Package seed loads initial data sets into an app through its services, so
// every record it creates passes the same validation as user input.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is a nested description of users and the workspace tree.
// Keys are local names used to cross-reference records inside the fixture.
type Fixture struct {
	CurrentUser string             `yaml:"current_user,omitempty"` // User key to sign in after loading
	Users       []UserFixture      `yaml:"users"`
	Workspaces  []WorkspaceFixture `yaml:"workspaces"`
}

// UserFixture describes a user
type UserFixture struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Avatar string `yaml:"avatar,omitempty"`
}

// WorkspaceFixture describes a workspace and its boards
type WorkspaceFixture struct {
	Key         string         `yaml:"key,omitempty"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Members     []string       `yaml:"members,omitempty"`
	Boards      []BoardFixture `yaml:"boards,omitempty"`
}

// BoardFixture describes a board, its tags and its lists in order
type BoardFixture struct {
	Key         string        `yaml:"key,omitempty"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description,omitempty"`
	Members     []string      `yaml:"members,omitempty"`
	Tags        []TagFixture  `yaml:"tags,omitempty"`
	Lists       []ListFixture `yaml:"lists,omitempty"`
}

// TagFixture describes a board tag
type TagFixture struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// ListFixture describes a list and its cards in order
type ListFixture struct {
	Key   string        `yaml:"key,omitempty"`
	Title string        `yaml:"title"`
	Cards []CardFixture `yaml:"cards,omitempty"`
}

// CardFixture describes a card with its relations and children
type CardFixture struct {
	Key         string           `yaml:"key,omitempty"`
	Title       string           `yaml:"title"`
	Description string           `yaml:"description,omitempty"`
	Assignees   []string         `yaml:"assignees,omitempty"`
	Tags        []string         `yaml:"tags,omitempty"`
	Todos       []TodoFixture    `yaml:"todos,omitempty"`
	Comments    []CommentFixture `yaml:"comments,omitempty"`
}

// TodoFixture describes a checklist item
type TodoFixture struct {
	Key       string `yaml:"key,omitempty"`
	Text      string `yaml:"text"`
	Completed bool   `yaml:"completed,omitempty"`
}

// CommentFixture describes a comment and its author's user key
type CommentFixture struct {
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

// Parse decodes a YAML fixture
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &f, nil
}

// Load reads a YAML fixture from path
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

// Marshal encodes a fixture as YAML
func (f *Fixture) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

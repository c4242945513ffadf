// Package script replays a YAML list of store operations against an app.
package script

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Step is one operation. Entity fields hold fixture keys (or keys bound by
// earlier steps through Ref), never raw ids.
type Step struct {
	Op  string `yaml:"op"`
	Ref string `yaml:"ref,omitempty"` // Key to bind the created record to

	User      string `yaml:"user,omitempty"`
	Workspace string `yaml:"workspace,omitempty"`
	Board     string `yaml:"board,omitempty"`
	List      string `yaml:"list,omitempty"`
	Card      string `yaml:"card,omitempty"`
	Tag       string `yaml:"tag,omitempty"`
	Todo      string `yaml:"todo,omitempty"`

	Name        string  `yaml:"name,omitempty"`
	Title       string  `yaml:"title,omitempty"`
	Description *string `yaml:"description,omitempty"`
	Email       string  `yaml:"email,omitempty"`
	Color       string  `yaml:"color,omitempty"`
	Text        string  `yaml:"text,omitempty"`
	Content     string  `yaml:"content,omitempty"`

	// Drag intents
	Kind  string `yaml:"kind,omitempty"` // list or card
	From  string `yaml:"from,omitempty"` // Source parent key
	To    string `yaml:"to,omitempty"`   // Destination parent key
	Index int    `yaml:"index,omitempty"`
}

// Script is a named list of steps
type Script struct {
	Name  string `yaml:"name,omitempty"`
	Seed  string `yaml:"seed,omitempty"` // Fixture path, relative to the script
	Steps []Step `yaml:"steps"`
}

// Parse decodes a YAML script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range s.Steps {
		if step.Op == "" {
			return nil, fmt.Errorf("step %d: missing op", i+1)
		}
		if _, ok := handlers[step.Op]; !ok {
			return nil, fmt.Errorf("step %d: unknown op %q", i+1, step.Op)
		}
	}
	return &s, nil
}

// Load reads a YAML script from path
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Ops lists every supported step op in sorted order
func Ops() []string {
	return slices.Sorted(maps.Keys(handlers))
}

// Package user provides the acting-user collaborator the services consult
// when a mutation needs to know who performed it.
package user

import (
	"os"
	"os/user"
	"strings"
	"sync"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// CurrentUserProvider resolves the id of the user performing mutations.
type CurrentUserProvider interface {
	// CurrentUserID returns the acting user, or false when nobody is signed in
	CurrentUserID() (types.UserID, bool)
}

// Static is a provider whose user is set explicitly, e.g. after login or seeding.
// The zero value has no current user.
type Static struct {
	mu sync.RWMutex
	id types.UserID
}

// NewStatic returns a provider that reports id ("" = nobody)
func NewStatic(id types.UserID) *Static {
	return &Static{id: id}
}

// CurrentUserID implements CurrentUserProvider
func (s *Static) CurrentUserID() (types.UserID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id, s.id != ""
}

// Set changes the current user ("" signs out)
func (s *Static) Set(id types.UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
}

// LookupFunc finds a registered user by name or email
type LookupFunc func(nameOrEmail string) (types.UserID, bool)

// System maps the operating-system account to a registered user.
type System struct {
	lookup LookupFunc
}

// NewSystem returns a provider that resolves GetCurrentUsername through lookup
func NewSystem(lookup LookupFunc) *System {
	return &System{lookup: lookup}
}

// CurrentUserID implements CurrentUserProvider
func (s *System) CurrentUserID() (types.UserID, bool) {
	if s == nil || s.lookup == nil {
		return "", false
	}
	name := GetCurrentUsername()
	if id, ok := s.lookup(name); ok {
		return id, true
	}
	// Accounts like "DOMAIN\jdoe" resolve by their last segment
	if i := strings.LastIndexAny(name, `\/`); i >= 0 {
		return s.lookup(name[i+1:])
	}
	return "", false
}

// GetCurrentUsername returns the current system username.
// It tries user.Current(), then the USER environment variable, then "unknown".
func GetCurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}

// Chain asks each provider in turn and reports the first signed-in user
type Chain []CurrentUserProvider

// CurrentUserID implements CurrentUserProvider
func (c Chain) CurrentUserID() (types.UserID, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if id, ok := p.CurrentUserID(); ok {
			return id, true
		}
	}
	return "", false
}

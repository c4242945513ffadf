package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/boardstore/internal/types"
)

func TestStatic(t *testing.T) {
	t.Parallel()

	var s Static
	_, ok := s.CurrentUserID()
	assert.False(t, ok, "zero value has no current user")

	s.Set("u-1")
	id, ok := s.CurrentUserID()
	assert.True(t, ok)
	assert.Equal(t, types.UserID("u-1"), id)

	s.Set("")
	_, ok = s.CurrentUserID()
	assert.False(t, ok)
}

func TestSystem_ResolvesOSUsername(t *testing.T) {
	t.Parallel()

	name := GetCurrentUsername()
	p := NewSystem(func(s string) (types.UserID, bool) {
		if s == name {
			return "u-os", true
		}
		return "", false
	})

	id, ok := p.CurrentUserID()
	assert.True(t, ok)
	assert.Equal(t, types.UserID("u-os"), id)
}

func TestSystem_NoMatch(t *testing.T) {
	t.Parallel()

	p := NewSystem(func(string) (types.UserID, bool) { return "", false })
	_, ok := p.CurrentUserID()
	assert.False(t, ok)

	var nilProvider *System
	_, ok = nilProvider.CurrentUserID()
	assert.False(t, ok)
}

func TestGetCurrentUsername_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, GetCurrentUsername())
}

func TestChain_FirstSignedInWins(t *testing.T) {
	t.Parallel()

	session := NewStatic("")
	fallback := NewStatic("u-fallback")
	chain := Chain{session, nil, fallback}

	id, ok := chain.CurrentUserID()
	assert.True(t, ok)
	assert.Equal(t, types.UserID("u-fallback"), id)

	session.Set("u-session")
	id, _ = chain.CurrentUserID()
	assert.Equal(t, types.UserID("u-session"), id)

	_, ok = Chain{}.CurrentUserID()
	assert.False(t, ok)
}

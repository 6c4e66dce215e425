package registry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"deaddrop/internal/domain"
	"deaddrop/internal/services/registry"
)

const userHash = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func TestRegisterUser_Twice_SingleRecord(t *testing.T) {
	s := registry.New(10, "s3cret")

	_, err := s.RegisterUser(userHash)
	require.NoError(t, err)
	first, ok := s.LastActiveAt(userHash)
	require.True(t, ok)

	_, err = s.RegisterUser(userHash)
	require.NoError(t, err)
	second, ok := s.LastActiveAt(userHash)
	require.True(t, ok)

	require.Equal(t, 1, s.Len())
	require.False(t, second.Before(first))
}

func TestRegisterUser_MalformedHash_Rejected(t *testing.T) {
	s := registry.New(10, "")

	cases := []string{
		"",
		"short",
		strings.Repeat("A", 32), // uppercase
		strings.Repeat("g", 32), // not hex
		strings.Repeat("a", 33), // too long
		strings.Repeat("a", 31), // too short
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa ", // trailing space
	}
	for _, c := range cases {
		_, err := s.RegisterUser(c)
		require.ErrorIs(t, err, domain.ErrInvalidInput, "hash %q", c)
	}
	require.Equal(t, 0, s.Len())
}

func TestRegisterUser_AtCapacity_NewHashRejected(t *testing.T) {
	s := registry.New(1, "")

	_, err := s.RegisterUser(userHash)
	require.NoError(t, err)

	_, err = s.RegisterUser("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	// A known hash still refreshes at capacity.
	_, err = s.RegisterUser(userHash)
	require.NoError(t, err)
}

func TestRegisterUser_ReturnsJournalistKey(t *testing.T) {
	s := registry.New(10, "")

	key, err := s.RegisterUser(userHash)
	require.NoError(t, err)
	require.Empty(t, key)

	require.NoError(t, s.RegisterJournalist("PUB1", ""))

	key, err = s.RegisterUser(userHash)
	require.NoError(t, err)
	require.Equal(t, "PUB1", key)
}

func TestRegisterJournalist_FirstClaim_AnySecret(t *testing.T) {
	s := registry.New(10, "s3cret")

	require.NoError(t, s.RegisterJournalist("PUB1", ""))
	key, ok := s.JournalistKey()
	require.True(t, ok)
	require.Equal(t, "PUB1", key)
}

func TestRegisterJournalist_Replace_RequiresSecret(t *testing.T) {
	s := registry.New(10, "s3cret")
	require.NoError(t, s.RegisterJournalist("PUB1", ""))

	err := s.RegisterJournalist("PUB2", "wrong")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	key, _ := s.JournalistKey()
	require.Equal(t, "PUB1", key)

	require.NoError(t, s.RegisterJournalist("PUB2", "s3cret"))
	key, _ = s.JournalistKey()
	require.Equal(t, "PUB2", key)
}

func TestRegisterJournalist_NoConfiguredSecret_ClaimOnce(t *testing.T) {
	s := registry.New(10, "")
	require.NoError(t, s.RegisterJournalist("PUB1", ""))

	// An empty supplied secret must never match an empty configured one.
	err := s.RegisterJournalist("EVIL", "")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	err = s.RegisterJournalist("EVIL", "guess")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	key, _ := s.JournalistKey()
	require.Equal(t, "PUB1", key)
}

func TestRegisterJournalist_EmptyKey_Rejected(t *testing.T) {
	s := registry.New(10, "")
	require.ErrorIs(t, s.RegisterJournalist("", ""), domain.ErrInvalidInput)
	_, ok := s.JournalistKey()
	require.False(t, ok)
}

func TestForget_Idempotent(t *testing.T) {
	s := registry.New(10, "")

	_, err := s.RegisterUser(userHash)
	require.NoError(t, err)

	s.Forget(userHash)
	require.Equal(t, 0, s.Len())

	s.Forget(userHash) // absent: no panic, no error
	require.Equal(t, 0, s.Len())
}

package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"deaddrop/internal/domain"
)

func TestValidHash(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{strings.Repeat("a", 32), true},
		{"0123456789abcdef0123456789abcdef", true},
		{"", false},
		{strings.Repeat("a", 31), false},
		{strings.Repeat("a", 33), false},
		{strings.Repeat("A", 32), false},
		{strings.Repeat("g", 32), false},
		{"0123456789abcdef0123456789abcde/", false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, domain.ValidHash(c.in), "hash %q", c.in)
	}
}

func TestValidFrom_AcceptsJournalistRole(t *testing.T) {
	require.True(t, domain.ValidFrom(domain.JournalistFrom))
	require.True(t, domain.ValidFrom(strings.Repeat("d", 32)))
	require.False(t, domain.ValidFrom("Journalist"))
	require.False(t, domain.ValidFrom(""))
}

package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestPublishedPostRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.PutPublishedPost(101, -100123, "Boil water, add vegetables"))

	post, err := s.GetPublishedPost(101)
	require.NoError(t, err)
	assert.Equal(t, 101, post.MessageID)
	assert.Equal(t, int64(-100123), post.ChatID)
	assert.Equal(t, "Boil water, add vegetables", post.FullText)
}

func TestGetUnknownPostReturnsNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetPublishedPost(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutRefusesDuplicate(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.PutPublishedPost(101, -100123, "first"))
	err := s.PutPublishedPost(101, -100123, "second")
	assert.ErrorIs(t, err, ErrDuplicatePost)

	post, err := s.GetPublishedPost(101)
	require.NoError(t, err)
	assert.Equal(t, "first", post.FullText, "duplicate insert must not overwrite")
}

func TestUserAdminFlag(t *testing.T) {
	s := newTestStorage(t)

	isAdmin, err := s.IsUserAdmin(7)
	require.NoError(t, err)
	assert.False(t, isAdmin, "unknown users are not admins")

	require.NoError(t, s.SetUserAdmin(7, true))
	isAdmin, err = s.IsUserAdmin(7)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	require.NoError(t, s.SetUserAdmin(7, false))
	isAdmin, err = s.IsUserAdmin(7)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

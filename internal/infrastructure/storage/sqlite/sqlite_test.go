package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"ciao/internal/infrastructure/migration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "ciao.db")

	s, err := New(ctx, path, migration.DefaultEngine, slog.Default())
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "addresses")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "addresses", "[]"))
	require.NoError(t, s.Set(ctx, "addresses", `[{"firstName":"A"}]`))

	v, ok, err := s.Get(ctx, "addresses")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"firstName":"A"}]`, v)

	require.NoError(t, s.Remove(ctx, "addresses"))
	require.NoError(t, s.Remove(ctx, "addresses"))
	_, ok, err = s.Get(ctx, "addresses")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Close())
}

func TestStorage_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ciao.db")

	s, err := New(ctx, path, migration.DefaultEngine, slog.Default())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "exported", "true"))
	require.NoError(t, s.Close())

	s, err = New(ctx, path, migration.DefaultEngine, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "exported")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

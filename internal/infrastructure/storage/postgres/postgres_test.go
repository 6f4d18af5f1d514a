package postgres

import (
	"context"
	"os"
	"testing"

	"ciao/internal/infrastructure/migration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestStorage_Integration(t *testing.T) {
	uri := os.Getenv("TEST_DATABASE_URI")
	if uri == "" {
		t.Skip("TEST_DATABASE_URI not set, skipping postgres integration test")
	}

	ctx := context.Background()
	s, err := New(ctx, uri, migration.DefaultEngine, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	const key = "ciao_test_key"
	t.Cleanup(func() { _ = s.Remove(ctx, key) })

	require.NoError(t, s.Set(ctx, key, "one"))
	require.NoError(t, s.Set(ctx, key, "two"))

	v, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	require.NoError(t, s.Remove(ctx, key))
	_, ok, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

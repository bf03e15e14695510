package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContent(t *testing.T, path, name string) {
	t.Helper()
	doc := "profile:\n  name: " + name + "\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
}

func TestStore_ReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeContent(t, path, "First")

	site, err := Load(path)
	require.NoError(t, err)
	store := NewStore(site, path)
	assert.Equal(t, "First", store.Current().Profile.Name)

	writeContent(t, path, "Second")
	require.NoError(t, store.Reload())
	assert.Equal(t, "Second", store.Current().Profile.Name)

	bad := "projects:\n  - id: 1\n    title: A\n  - id: 1\n    title: B\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o600))
	assert.Error(t, store.Reload())
	assert.Equal(t, "Second", store.Current().Profile.Name)
}

func TestStore_WatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeContent(t, path, "Before")

	site, err := Load(path)
	require.NoError(t, err)
	store := NewStore(site, path)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeContent(t, path, "After")

	assert.Eventually(t, func() bool {
		return store.Current().Profile.Name == "After"
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestStore_WatchWithoutFileReturns(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)
	assert.NoError(t, NewStore(site, "").Watch(context.Background()))
}

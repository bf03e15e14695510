package storage

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore_Unit(t *testing.T) {
	// 1. Setup: Create an in-memory filesystem for the test.
	// This is the core benefit of using afero for testing. No disk I/O is performed.
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	// Test data
	filePath := "test/dir/my-file.txt"
	fileContent := "hello world, this is a test"

	// 2. Test Save
	t.Run("Save", func(t *testing.T) {
		contentReader := bytes.NewReader([]byte(fileContent))
		bytesWritten, err := store.Save(ctx, filePath, contentReader)

		require.NoError(t, err)
		assert.Equal(t, int64(len(fileContent)), bytesWritten)

		// Verify the file was actually written using afero's helpers
		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.True(t, exists, "file should exist after saving")

		// Verify content
		readBytes, err := afero.ReadFile(memFs, filePath)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	// 3. Test Open
	t.Run("Open", func(t *testing.T) {
		file, err := store.Open(ctx, filePath)
		require.NoError(t, err)
		defer file.Close()

		readBytes, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	// 4. Test Delete
	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(ctx, filePath)
		require.NoError(t, err)

		// Verify the file was actually deleted
		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.False(t, exists, "file should not exist after deleting")
	})

	// 5. Test edge cases
	t.Run("Open non-existent file", func(t *testing.T) {
		_, err := store.Open(ctx, "path/to/nothing.txt")
		assert.Error(t, err, "opening a non-existent file should return an error")
	})
}

func TestAferoStore_SaveReplaces(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	_, err := store.Save(ctx, "index.html", bytes.NewReader([]byte("first version, longer")))
	require.NoError(t, err)
	_, err = store.Save(ctx, "index.html", bytes.NewReader([]byte("second")))
	require.NoError(t, err)

	got, err := afero.ReadFile(memFs, "index.html")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestAferoStore_CanceledContext(t *testing.T) {
	store := NewAferoStore(afero.NewMemMapFs())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, "index.html", bytes.NewReader(nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDirStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDirStore(dir + "/out")
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "static/css/site.css", bytes.NewReader([]byte("body{}")))
	require.NoError(t, err)

	exists, err := afero.Exists(afero.NewOsFs(), dir+"/out/static/css/site.css")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAferoStore_MissingFiles(t *testing.T) {
	store := NewAferoStore(afero.NewMemMapFs())
	ctx := context.Background()

	_, err := store.Open(ctx, "nothing.txt")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorIs(t, store.Delete(ctx, "nothing.txt"), fs.ErrNotExist)
}

func TestAferoStore_OpenDeleteCanceled(t *testing.T) {
	store := NewAferoStore(afero.NewMemMapFs())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Open(ctx, "index.html")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Delete(ctx, "index.html"), context.Canceled)
}

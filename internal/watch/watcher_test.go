package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWatchedFileOnly(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "config.yaml")
	other := filepath.Join(tempDir, "other.yaml")

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.AddFile(target))
	require.NoError(t, w.Start())
	defer w.Stop()
	assert.True(t, w.IsRunning())
	assert.Error(t, w.Start(), "second start is rejected")

	evChan := w.FileChannel()

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("settings: {}\n"), 0644))

	select {
	case event, ok := <-evChan:
		require.True(t, ok, "Event channel closed unexpectedly")
		assert.Equal(t, target, event.Path)
		assert.True(t, event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write))
		require.NotNil(t, event.Info)
		assert.Equal(t, "config.yaml", event.Info.Name())
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for event")
	}
}

func TestWatcherStopClosesChannel(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.AddFile(filepath.Join(t.TempDir(), "x")))
	require.NoError(t, w.Start())

	evChan := w.FileChannel()
	w.Stop()
	w.Stop()
	assert.False(t, w.IsRunning())

	for range evChan {
	}
	_, ok := <-evChan
	assert.False(t, ok, "Event channel should be closed after stop")
}

func TestAddFileMissingFolder(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.fsWatcher.Close()

	assert.Error(t, w.AddFile(filepath.Join(t.TempDir(), "missing", "config.yaml")))
}

func TestWaitForWrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0644))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Save the way editors do: write a temporary file and rename it over
	mod, err := WaitForWrite(ctx, target, func() error {
		tmp := target + ".tmp"
		if err := os.WriteFile(tmp, []byte("new"), 0644); err != nil {
			return err
		}
		return os.Rename(tmp, target)
	})
	require.NoError(t, err)
	assert.Equal(t, target, mod.Path)
}

func TestWaitForWriteOpenFails(t *testing.T) {
	_, err := WaitForWrite(context.Background(), filepath.Join(t.TempDir(), "config.yaml"), func() error {
		return errors.New("editor missing")
	})
	assert.EqualError(t, err, "editor missing")
}

func TestWaitForWriteCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := WaitForWrite(ctx, filepath.Join(t.TempDir(), "config.yaml"), nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

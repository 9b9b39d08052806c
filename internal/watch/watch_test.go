package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	site := filepath.Join(dir, "site.yaml")
	w, err := New([]string{site}, time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.fs.Close() })

	assert.True(t, w.Relevant(fsnotify.Event{Name: site, Op: fsnotify.Write}))
	assert.True(t, w.Relevant(fsnotify.Event{Name: site, Op: fsnotify.Create}))
	assert.False(t, w.Relevant(fsnotify.Event{Name: site, Op: fsnotify.Chmod}))
	assert.False(t, w.Relevant(fsnotify.Event{Name: filepath.Join(dir, "other.yaml"), Op: fsnotify.Write}))
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "nope", "site.yaml")}, 0)
	require.Error(t, err)
}

func TestRun_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	site := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(site, []byte("title: a\n"), 0o600))

	w, err := New([]string{site}, 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) { calls.Add(1) })
	}()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(site, []byte("title: b\n"), 0o600))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

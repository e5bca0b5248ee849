package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tristendillon/umdgen/core/watcher"
)

func TestConfigWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "umd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: A\n"), 0644))

	var calls atomic.Int32
	cw, err := watcher.NewConfigWatcher(path, func() error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	cw.Debounce = 20 * time.Millisecond
	defer cw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cw.Watch(ctx) }()

	// unrelated files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("name: B\n"), 0644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestConfigWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "umd.yaml")
	cw, err := watcher.NewConfigWatcher(path, func() error { return nil })
	require.NoError(t, err)

	assert.NoError(t, cw.Close())
	assert.NoError(t, cw.Close())
	assert.NoError(t, cw.Watch(context.Background()))
}

func TestConfigWatcherMissingDir(t *testing.T) {
	_, err := watcher.NewConfigWatcher(filepath.Join(t.TempDir(), "nope", "umd.yaml"), nil)
	assert.Error(t, err)
}

func TestConfigWatcherSerializesSlowCallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "umd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: A\n"), 0644))

	var running, maxRunning, calls atomic.Int32
	cw, err := watcher.NewConfigWatcher(path, func() error {
		n := running.Add(1)
		for {
			m := maxRunning.Load()
			if n <= m || maxRunning.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(300 * time.Millisecond)
		running.Add(-1)
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	cw.Debounce = 20 * time.Millisecond
	defer cw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cw.Watch(ctx)

	require.NoError(t, os.WriteFile(path, []byte("name: B\n"), 0644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("name: C\n"), 0644))

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, int32(1), maxRunning.Load())
}

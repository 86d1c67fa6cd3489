package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfigWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: a\n"), 0o644))

	var calls atomic.Int32
	changed := make(chan struct{}, 4)
	w, err := NewConfigWatcher(path, 50*time.Millisecond, func() {
		calls.Add(1)
		changed <- struct{}{}
	}, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("title: b\n"), 0o644))
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called")
	}

	// Other files in the directory are ignored.
	time.Sleep(200 * time.Millisecond)
	before := calls.Load()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.Equal(t, before, calls.Load())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewConfigWatcherMissingDirectory(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "nope", "portfolio.yaml"), 0, func() {}, zap.NewNop())
	require.Error(t, err)
}

package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectSignal(t *testing.T, w *Watcher, want string) {
	t.Helper()
	select {
	case got := <-w.Events():
		assert.Equal(t, want, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no staleness signal")
	}
}

func TestSignalsOnRootChange(t *testing.T) {
	root := t.TempDir()
	w, err := New(20 * time.Millisecond)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(root))

	require.NoError(t, os.WriteFile(filepath.Join(root, "new.txt"), []byte("x"), 0o644))
	expectSignal(t, w, root)
}

func TestSignalsOnSubdirChange(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	w, err := New(20 * time.Millisecond)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(root))

	require.NoError(t, os.WriteFile(filepath.Join(sub, "grew.bin"), []byte("xx"), 0o644))
	expectSignal(t, w, root)
}

func TestWatchReplacesRoot(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, err := New(20 * time.Millisecond)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))

	require.NoError(t, os.WriteFile(filepath.Join(second, "a"), []byte("x"), 0o644))
	expectSignal(t, w, second)
}

func TestWatchMissingRoot(t *testing.T) {
	w, err := New(0)
	require.NoError(t, err)
	defer w.Close()
	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "gone")))
}

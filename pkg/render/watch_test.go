package render

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeShaderFiles(t *testing.T) (dir, vert, frag string) {
	t.Helper()
	dir = t.TempDir()
	vert = filepath.Join(dir, "scene.vert")
	frag = filepath.Join(dir, "scene.frag")
	require.NoError(t, os.WriteFile(vert, []byte(sceneVertexSource), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte(sceneFragmentSource), 0o644))
	return dir, vert, frag
}

func TestShaderWatcherSignalsOnWrite(t *testing.T) {
	_, vert, frag := writeShaderFiles(t)

	sw, err := newShaderWatcher(discardLogger(), vert, frag)
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(frag, []byte(sceneFragmentSource+"\n"), 0o644))

	select {
	case <-sw.Changed():
	case <-time.After(5 * time.Second):
		t.Fatal("no change signal after writing a watched shader")
	}
}

func TestShaderWatcherRelevant(t *testing.T) {
	dir, vert, frag := writeShaderFiles(t)

	sw, err := newShaderWatcher(discardLogger(), vert, frag)
	require.NoError(t, err)
	defer sw.Close()

	assert.True(t, sw.relevant(fsnotify.Event{Name: vert, Op: fsnotify.Write}))
	assert.True(t, sw.relevant(fsnotify.Event{Name: frag, Op: fsnotify.Create}))
	assert.False(t, sw.relevant(fsnotify.Event{Name: frag, Op: fsnotify.Chmod}))
	assert.False(t, sw.relevant(fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write}))
}

func TestShaderWatcherMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "scene.vert")
	_, err := newShaderWatcher(discardLogger(), missing)
	assert.Error(t, err)
}

func TestShaderWatcherClose(t *testing.T) {
	_, vert, frag := writeShaderFiles(t)

	sw, err := newShaderWatcher(discardLogger(), vert, frag)
	require.NoError(t, err)
	assert.NoError(t, sw.Close())
}

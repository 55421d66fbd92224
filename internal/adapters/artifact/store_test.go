package artifact_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scenecache/internal/adapters/artifact"
	"go.trai.ch/scenecache/internal/core/domain"
)

const scenePath = "/project/Assets/main.unity"

func fixedClock(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[i]
		if i < len(ts)-1 {
			i++
		}
		return t
	}
}

func TestStore_PersistAndLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	persistedAt := time.Unix(0, 1_700_000_000_000_000_000)
	store := artifact.NewStore(fsys, artifact.WithClock(fixedClock(persistedAt)))

	cache := sampleCache()
	require.NoError(t, store.Persist(scenePath, cache))

	exists, err := afero.Exists(fsys, scenePath+".cache")
	require.NoError(t, err)
	assert.True(t, exists)

	handle, ok := store.Handle(scenePath)
	require.True(t, ok)
	assert.Same(t, cache, handle.Cache)
	assert.Equal(t, persistedAt, handle.DeserializedAt)

	// A fresh store sees the same cache through the artifact.
	other := artifact.NewStore(fsys)
	_, ok = other.Handle(scenePath)
	assert.False(t, ok)

	loaded, err := other.Load(scenePath)
	require.NoError(t, err)
	assert.Equal(t, cache, loaded.Cache)
	assert.True(t, persistedAt.Equal(loaded.DeserializedAt))

	installed, ok := other.Handle(scenePath)
	require.True(t, ok)
	assert.Equal(t, loaded, installed)
}

func TestStore_PersistReplacesHandle(t *testing.T) {
	t1 := time.Unix(100, 0)
	t2 := time.Unix(200, 0)
	store := artifact.NewStore(afero.NewMemMapFs(), artifact.WithClock(fixedClock(t1, t2)))

	first := &domain.Cache{Documents: 1}
	second := &domain.Cache{Documents: 2}

	require.NoError(t, store.Persist(scenePath, first))
	h, _ := store.Handle(scenePath)
	assert.Equal(t, t1, h.DeserializedAt)

	require.NoError(t, store.Persist(scenePath, second))
	h, _ = store.Handle(scenePath)
	assert.Same(t, second, h.Cache)
	assert.Equal(t, t2, h.DeserializedAt)
}

func TestStore_PersistNilIsNoop(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := artifact.NewStore(fsys)

	require.NoError(t, store.Persist(scenePath, nil))

	exists, err := afero.Exists(fsys, scenePath+".cache")
	require.NoError(t, err)
	assert.False(t, exists)

	_, ok := store.Handle(scenePath)
	assert.False(t, ok)
}

func TestStore_PersistCleansPath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := artifact.NewStore(fsys)

	require.NoError(t, store.Persist("/project/Assets/../Assets/main.unity", &domain.Cache{}))

	_, ok := store.Handle(scenePath)
	assert.True(t, ok)
}

func TestStore_PersistReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll(filepath.Dir(scenePath), domain.DirPerm))

	store := artifact.NewStore(afero.NewReadOnlyFs(base))

	err := store.Persist(scenePath, sampleCache())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArtifactWriteFailed)

	_, ok := store.Handle(scenePath)
	assert.False(t, ok)
}

// renameFailFs fails every rename, simulating a crash between write and commit.
type renameFailFs struct {
	afero.Fs
}

func (renameFailFs) Rename(_, _ string) error {
	return errors.New("rename refused")
}

func TestStore_FailedPersistKeepsPreviousState(t *testing.T) {
	base := afero.NewMemMapFs()
	t1 := time.Unix(100, 0)

	good := artifact.NewStore(base, artifact.WithClock(fixedClock(t1)))
	previous := sampleCache()
	require.NoError(t, good.Persist(scenePath, previous))

	before, err := afero.ReadFile(base, scenePath+".cache")
	require.NoError(t, err)

	// Same handles, broken filesystem.
	failing := artifact.NewStore(renameFailFs{Fs: base}, artifact.WithClock(fixedClock(time.Unix(200, 0))))
	_, err = failing.Load(scenePath)
	require.NoError(t, err)
	handleBefore, _ := failing.Handle(scenePath)

	err = failing.Persist(scenePath, &domain.Cache{Documents: 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArtifactWriteFailed)
	assert.ErrorContains(t, err, "rename refused")

	after, err := afero.ReadFile(base, scenePath+".cache")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	handleAfter, _ := failing.Handle(scenePath)
	assert.Equal(t, handleBefore, handleAfter)

	// No temp files are left behind.
	entries, err := afero.ReadDir(base, filepath.Dir(scenePath))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "main.unity.cache", entries[0].Name())
}

func TestStore_LoadErrors(t *testing.T) {
	t.Run("missing artifact", func(t *testing.T) {
		store := artifact.NewStore(afero.NewMemMapFs())
		_, err := store.Load(scenePath)
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})

	t.Run("corrupt artifact", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, scenePath+".cache", []byte("not an artifact at all"), domain.FilePerm))

		store := artifact.NewStore(fsys)
		_, err := store.Load(scenePath)
		assert.ErrorIs(t, err, domain.ErrArtifactCorrupt)

		_, ok := store.Handle(scenePath)
		assert.False(t, ok)
	})

	t.Run("artifact is a directory", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "scene.unity")
		require.NoError(t, os.Mkdir(src+".cache", domain.DirPerm))

		store := artifact.NewStore(afero.NewOsFs())
		_, err := store.Load(src)
		assert.ErrorIs(t, err, domain.ErrArtifactReadFailed)
	})
}

func TestStore_Remove(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := artifact.NewStore(fsys)

	require.NoError(t, store.Persist(scenePath, sampleCache()))
	require.NoError(t, store.Remove(scenePath))

	exists, err := afero.Exists(fsys, scenePath+".cache")
	require.NoError(t, err)
	assert.False(t, exists)

	_, ok := store.Handle(scenePath)
	assert.False(t, ok)

	// Removing again is not an error.
	require.NoError(t, store.Remove(scenePath))
}

func TestStore_RemoveReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, scenePath+".cache", []byte("x"), domain.FilePerm))

	store := artifact.NewStore(afero.NewReadOnlyFs(base))
	err := store.Remove(scenePath)
	assert.ErrorIs(t, err, domain.ErrArtifactRemoveFailed)
}

func TestStore_OsFsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "nested", "scene.unity")

	store := artifact.NewStore(afero.NewOsFs())
	require.NoError(t, store.Persist(src, sampleCache()))

	info, err := os.Stat(src + ".cache")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())

	loaded, err := artifact.NewStore(afero.NewOsFs()).Load(src)
	require.NoError(t, err)
	assert.Equal(t, sampleCache(), loaded.Cache)
}

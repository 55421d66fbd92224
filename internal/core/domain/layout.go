package domain

import "time"

const (
	// ArtifactSuffix is appended to a source path to form its cache artifact path.
	ArtifactSuffix = ".cache"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = ".scenecache.yaml"

	// DefaultCheckFrequency is the default number of documents between interrupt checks.
	DefaultCheckFrequency = 100

	// DefaultDebounce is the default window for coalescing source change events.
	DefaultDebounce = 200 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// SceneExtensions are the file extensions picked up when a directory is given as a source.
var SceneExtensions = []string{".unity", ".prefab", ".asset"}

// ArtifactPath returns the cache artifact path for the given source path.
func ArtifactPath(sourcePath string) string {
	return sourcePath + ArtifactSuffix
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrFormat is returned when a source does not follow the scene stream grammar.
	ErrFormat = zerr.New("malformed scene stream")

	// ErrSourceOpenFailed is returned when a source file cannot be opened.
	ErrSourceOpenFailed = zerr.New("failed to open source file")

	// ErrSourceNotFound is returned when a source argument matches no scene file.
	ErrSourceNotFound = zerr.New("source not found")

	// ErrSourceReadFailed is returned when reading a source file fails midway.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrCancelled is the cancellation signal raised by interrupt checkers.
	ErrCancelled = zerr.New("build cancelled")

	// ErrInvalidCheckFrequency is returned when the interrupt check frequency is negative.
	ErrInvalidCheckFrequency = zerr.New("check frequency must be a positive number of documents")

	// ErrArtifactWriteFailed is returned when a cache artifact cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write cache artifact")

	// ErrArtifactReadFailed is returned when a cache artifact cannot be read.
	ErrArtifactReadFailed = zerr.New("failed to read cache artifact")

	// ErrArtifactNotFound is returned when no cache artifact exists for a source.
	ErrArtifactNotFound = zerr.New("cache artifact not found")

	// ErrArtifactCorrupt is returned when a cache artifact fails validation.
	ErrArtifactCorrupt = zerr.New("cache artifact is corrupt")

	// ErrArtifactRemoveFailed is returned when a cache artifact cannot be deleted.
	ErrArtifactRemoveFailed = zerr.New("failed to remove cache artifact")

	// ErrNotImplemented is returned by the asset queries that are not supported yet.
	ErrNotImplemented = zerr.New("not implemented")

	// ErrInvalidStalenessMode is returned for an unknown staleness policy name.
	ErrInvalidStalenessMode = zerr.New("invalid staleness mode, expected 'mtime', 'checksum' or 'always'")

	// ErrInvalidJobs is returned when the number of parallel jobs is not positive.
	ErrInvalidJobs = zerr.New("jobs must be at least 1")

	// ErrInvalidDebounce is returned for a negative or unparsable debounce window.
	ErrInvalidDebounce = zerr.New("invalid debounce duration")

	// ErrInvalidLogFormat is returned for an unknown log format.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'text' or 'json'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoSourcesSpecified is returned when a command needs at least one source path.
	ErrNoSourcesSpecified = zerr.New("no source files specified")

	// ErrIndexFailed is returned when indexing one or more sources fails.
	ErrIndexFailed = zerr.New("indexing failed")

	// ErrWatchFailed is returned when the source watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch sources")
)

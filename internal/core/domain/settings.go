package domain

import (
	"runtime"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// StalenessMode names a staleness policy.
type StalenessMode string

const (
	// StalenessModTime compares modification time and size of the source.
	StalenessModTime StalenessMode = "mtime"
	// StalenessChecksum compares a content hash of the source.
	StalenessChecksum StalenessMode = "checksum"
	// StalenessAlways treats every artifact as stale.
	StalenessAlways StalenessMode = "always"
)

// ParseStalenessMode validates a staleness mode name. The empty string selects StalenessModTime.
func ParseStalenessMode(s string) (StalenessMode, error) {
	switch m := StalenessMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return StalenessModTime, nil
	case StalenessModTime, StalenessChecksum, StalenessAlways:
		return m, nil
	default:
		return "", zerr.With(ErrInvalidStalenessMode, "staleness", s)
	}
}

// LogFormat selects the log output encoding.
type LogFormat string

const (
	// LogFormatText is the human-readable log format.
	LogFormatText LogFormat = "text"
	// LogFormatJSON emits one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// ParseLogFormat validates a log format name. The empty string selects LogFormatText.
func ParseLogFormat(s string) (LogFormat, error) {
	switch f := LogFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return LogFormatText, nil
	case LogFormatText, LogFormatJSON:
		return f, nil
	default:
		return "", zerr.With(ErrInvalidLogFormat, "log_format", s)
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a level name to a LogLevel, defaulting to info if unknown.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Settings holds the effective configuration of a run.
type Settings struct {
	CheckFrequency int
	Staleness      StalenessMode
	Jobs           int
	LogFormat      LogFormat
	LogLevel       LogLevel
	Debounce       time.Duration
}

// DefaultSettings returns the settings used when no config file or flag overrides them.
func DefaultSettings() Settings {
	return Settings{
		CheckFrequency: DefaultCheckFrequency,
		Staleness:      StalenessModTime,
		Jobs:           runtime.NumCPU(),
		LogFormat:      LogFormatText,
		LogLevel:       LogLevelInfo,
		Debounce:       DefaultDebounce,
	}
}

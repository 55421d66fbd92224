// Package domain contains the core types of the scene asset cache.
package domain

import (
	"context"
	"errors"
	"time"
)

// BuildStatus records whether a build consumed the whole source.
type BuildStatus uint8

const (
	// StatusCompleted means every document of the source was parsed.
	StatusCompleted BuildStatus = iota
	// StatusCancelled means the interrupt checker stopped the build early.
	// The cache holds the nodes of the documents read up to that point.
	StatusCancelled
)

// String returns the status name.
func (s BuildStatus) String() string {
	if s == StatusCancelled {
		return "cancelled"
	}
	return "completed"
}

// SourceInfo describes the source file a cache was built from.
type SourceInfo struct {
	Path    string
	ModTime time.Time
	Size    int64
	// Checksum is the xxhash64 of the source content. Zero when not computed.
	Checksum uint64
}

// Cache is the ordered collection of node descriptions built from one source.
type Cache struct {
	Nodes     []NodeDescription
	Status    BuildStatus
	Documents int
	Source    SourceInfo
}

// Len returns the number of node descriptions.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Nodes)
}

// Cancelled reports whether the cache is a truncated result.
func (c *Cache) Cancelled() bool {
	return c != nil && c.Status == StatusCancelled
}

// CacheHandle is the in-memory record of the most recently persisted cache for a source.
type CacheHandle struct {
	Cache          *Cache
	DeserializedAt time.Time
}

// InterruptChecker is called periodically during a build.
// Returning an error matching ErrCancelled or context.Canceled stops the build
// and yields the partial cache; any other error fails the build.
type InterruptChecker func() error

// NoInterrupt never interrupts.
func NoInterrupt() error { return nil }

// ContextInterrupt returns an InterruptChecker that cancels once ctx is done.
func ContextInterrupt(ctx context.Context) InterruptChecker {
	return func() error {
		if ctx.Err() != nil {
			return errors.Join(ErrCancelled, ctx.Err())
		}
		return nil
	}
}

// IsCancellation reports whether err is a cancellation signal.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}

// BuildOptions configures a single build.
type BuildOptions struct {
	Interrupt InterruptChecker
	// CheckFrequency is the number of documents between two interrupt checks.
	// Zero selects DefaultCheckFrequency.
	CheckFrequency int
}

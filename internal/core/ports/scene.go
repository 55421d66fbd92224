package ports

import (
	"io"

	"go.trai.ch/scenecache/internal/core/domain"
)

// DocumentStream is a lazy, forward-only sequence of raw documents.
//
//go:generate mockgen -source=scene.go -destination=mocks/mock_scene.go -package=mocks
type DocumentStream interface {
	// Next returns the next document, or io.EOF once the stream is exhausted.
	Next() (*domain.Document, error)
}

// SceneDecoder turns a scene text stream into typed node descriptions.
type SceneDecoder interface {
	// NewStream validates the stream header of r and returns its documents.
	// It fails with domain.ErrFormat when the stream-start marker is missing.
	NewStream(r io.Reader) (DocumentStream, error)

	// Decode resolves and decodes every top-level entry of doc, in document order.
	Decode(doc *domain.Document) ([]domain.NodeDescription, error)
}

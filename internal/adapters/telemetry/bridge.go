package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/scenecache/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

// LogBridge implements sdktrace.SpanProcessor by writing every finished span to the logger
// at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "span %s finished in %s", s.Name(), s.EndTime().Sub(s.StartTime()))
	for _, kv := range s.Attributes() {
		fmt.Fprintf(&sb, " %s=%s", kv.Key, kv.Value.Emit())
	}
	if s.Status().Code == codes.Error {
		fmt.Fprintf(&sb, " error=%q", s.Status().Description)
	}
	b.logger.Debug(sb.String())
}

// Shutdown is called when the SDK shuts down.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush exports all ended spans that have not yet been exported.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// NewProvider creates a tracer provider that reports finished spans through logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(logger)))
}

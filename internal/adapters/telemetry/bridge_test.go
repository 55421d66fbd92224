package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scenecache/internal/adapters/telemetry"
	"go.trai.ch/scenecache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { got = msg })

	tp := telemetry.NewProvider(log)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracerFromProvider(tp, telemetry.InstrumentationName)
	_, span := tracer.Start(context.Background(), "build")
	span.SetAttribute("path", "main.unity")
	span.SetAttribute("documents", 12)
	span.RecordError(errors.New("boom"))
	span.End()

	assert.Contains(t, got, "span build finished in")
	assert.Contains(t, got, "path=main.unity")
	assert.Contains(t, got, "documents=12")
	assert.Contains(t, got, `error="boom"`)
}

func TestLogBridge_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := telemetry.NewLogBridge(mocks.NewMockLogger(ctrl))

	assert.NoError(t, b.ForceFlush(context.Background()))
	assert.NoError(t, b.Shutdown(context.Background()))
}

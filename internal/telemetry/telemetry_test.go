package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/samdwyer/stancewalk/internal/config"
)

func TestSetupInstallsProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ctx := context.Background()
	cfg := config.Config{
		Telemetry:        true,
		OTLPEndpoint:     "http://127.0.0.1:4318",
		HoneycombAPIKey:  "key",
		HoneycombDataset: "test",
		Viewport:         3,
	}

	shutdown, err := Setup(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())

	// Nothing was recorded, so shutdown has nothing to flush to the dead endpoint.
	assert.NoError(t, shutdown(ctx))
}

func TestNoopTracerDoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	assert.False(t, span.IsRecording())
}

func TestGetHostname(t *testing.T) {
	assert.NotEmpty(t, getHostname())
}

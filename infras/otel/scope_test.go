package otel_test

import (
	"context"
	"errors"
	"fmt"
	"staywise/infras/otel"
	"staywise/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newProvider(t *testing.T) (*otel.Provider, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := &otel.Provider{TracerProvider: trace.NewTracerProvider(trace.WithSpanProcessor(recorder))}

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return provider, recorder
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
	}{
		{name: "unexpected error fails the span", err: errors.New("connection refused"), wantStatus: codes.Error},
		{name: "unavailable fails the span", err: failure.Unavailable("onboarding was interrupted"), wantStatus: codes.Error},
		{name: "client error is only recorded", err: fmt.Errorf("get: %w", failure.NotFound("listing not found")), wantStatus: codes.Unset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, recorder := newProvider(t)

			_, scope := provider.NewScope(context.Background(), "service", "service.listing.Get")
			scope.TraceError(tt.err)
			scope.End()

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, "service.listing.Get", spans[0].Name())
			assert.Equal(t, tt.wantStatus, spans[0].Status().Code)
			require.Len(t, spans[0].Events(), 1)
			assert.Equal(t, "exception", spans[0].Events()[0].Name)
		})
	}
}

func TestScope_TraceIfErrorNil(t *testing.T) {
	provider, recorder := newProvider(t)

	_, scope := provider.NewScope(context.Background(), "service", "service.concierge.Send")
	scope.TraceIfError(nil)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Empty(t, spans[0].Events())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestScope_SetAttributes(t *testing.T) {
	provider, recorder := newProvider(t)

	_, scope := provider.NewScope(context.Background(), "repository", "repository.listing.GetAll")
	scope.SetAttribute("query", "SELECT 1")
	scope.SetAttributes(map[string]any{"rows": 3, "cached": false, "ids": []string{"p_1", "p_2"}})
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("query", "SELECT 1"),
		attribute.Int("rows", 3),
		attribute.Bool("cached", false),
		attribute.StringSlice("ids", []string{"p_1", "p_2"}),
	}, spans[0].Attributes())
}

package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/retrograde/internal/config"
	"github.com/rshade/retrograde/internal/retrograde"
	"github.com/rshade/retrograde/internal/tui"
)

type blockingFetcher struct{}

func (blockingFetcher) Fetch(ctx context.Context, _ string) (retrograde.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestResolveOutput(t *testing.T) {
	tests := []struct {
		format   string
		wantMode tui.OutputMode
		wantJSON bool
	}{
		{format: config.FormatJSON, wantMode: tui.OutputModePlain, wantJSON: true},
		{format: config.FormatPlain, wantMode: tui.OutputModePlain},
		{format: config.FormatStyled, wantMode: tui.OutputModeStyled},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			mode, jsonOut := resolveOutput(tt.format)
			assert.Equal(t, tt.wantMode, mode)
			assert.Equal(t, tt.wantJSON, jsonOut)
		})
	}
}

func TestParseTimeout(t *testing.T) {
	d, err := parseTimeout("0")
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = parseTimeout("1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	_, err = parseTimeout("-5s")
	require.Error(t, err)
}

func TestAwaitStatus_CancelledContextInterrupts(t *testing.T) {
	controller := retrograde.NewController(blockingFetcher{})
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := awaitStatus(ctx, controller)
		errCh <- err
	}()
	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, ErrInterrupted)
	case <-time.After(5 * time.Second):
		t.Fatal("awaitStatus did not return after cancellation")
	}
	assert.IsType(t, retrograde.Loading{}, controller.State(), "an interrupted request never settles")
}

func TestRenderJSON_Failed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, "2024-03-01", retrograde.Failed{Message: "boom"}))

	assert.JSONEq(t, `{"date":"2024-03-01","loading":false,"error":"boom","retrograde":null,"meta":null}`, buf.String())
}

func TestStatusExitError(t *testing.T) {
	err := &StatusExitError{ExitCode: ExitCodeStatusUnavailable, Reason: "status unavailable: boom"}
	assert.Equal(t, "status unavailable: boom", err.Error())
}

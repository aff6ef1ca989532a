package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_StopsOnCancel(t *testing.T) {
	chdir(t)
	ctx, cancel := context.WithCancel(context.Background())

	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, RunOptions{Stdout: &out, Stderr: &bytes.Buffer{}, Quiet: true}, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Empty(t, out.String())
}

func TestServe_BadSettings(t *testing.T) {
	chdir(t)

	err := Serve(context.Background(), RunOptions{
		SettingsPath:     "missing.yaml",
		SettingsExplicit: true,
		Stdout:           &bytes.Buffer{},
		Stderr:           &bytes.Buffer{},
	}, "127.0.0.1:0")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}

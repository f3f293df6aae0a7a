package action

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSuccess(t *testing.T) {
	r := NewShellRunner(time.Second)
	assert.True(t, r.Run(context.Background(), "true"))
}

func TestRunNonZeroExit(t *testing.T) {
	r := NewShellRunner(time.Second)
	assert.False(t, r.Run(context.Background(), "false"))
	assert.False(t, r.Run(context.Background(), "exit 3"))
}

func TestRunMissingBinary(t *testing.T) {
	r := NewShellRunner(time.Second)
	assert.False(t, r.Run(context.Background(), "definitely-not-a-real-binary-xyz"))
}

func TestRunEmptyCommand(t *testing.T) {
	r := NewShellRunner(time.Second)
	assert.False(t, r.Run(context.Background(), ""))
}

func TestRunShellFeatures(t *testing.T) {
	// The command string goes through the shell, so pipes and redirects work
	path := filepath.Join(t.TempDir(), "out")
	r := NewShellRunner(time.Second)

	require.True(t, r.Run(context.Background(), "echo restarted > "+path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "restarted\n", string(data))
}

func TestRunTimeout(t *testing.T) {
	r := NewShellRunner(50 * time.Millisecond)

	start := time.Now()
	ok := r.Run(context.Background(), "sleep 5")

	assert.False(t, ok)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewShellRunner(time.Second)
	assert.False(t, r.Run(ctx, "sleep 5"))
}

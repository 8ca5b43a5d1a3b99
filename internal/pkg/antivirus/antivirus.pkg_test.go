package antivirus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopScan(t *testing.T) {
	verdict, err := Noop{}.Scan(context.Background(), "/tmp/whatever")
	require.NoError(t, err)
	assert.Equal(t, Clean, verdict)
}

func TestNoopScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	verdict, err := Noop{}.Scan(ctx, "/tmp/whatever")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, verdict)
}

package logger

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOutputSplitsStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(io.Discard, io.Discard) })

	Info.Println("intake started")
	HTTP.Println("POST /api/v1/assets/images")
	Warning.Println("purge failed")
	Error.Println("transform failed")

	assert.Contains(t, out.String(), "INFO: ")
	assert.Contains(t, out.String(), "intake started")
	assert.Contains(t, out.String(), "HTTP: ")
	assert.NotContains(t, out.String(), "purge failed")

	assert.Contains(t, errOut.String(), "WARNING: ")
	assert.Contains(t, errOut.String(), "ERROR: ")
	assert.Contains(t, errOut.String(), "logger.pkg_test.go")
}

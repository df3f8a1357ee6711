package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cloudcost/internal/config"
)

func engineConfig(binary string) config.EngineConfig {
	return config.EngineConfig{
		Binary:         binary,
		CredentialEnv:  "CLOUDCOST_TEST_API_KEY",
		TimeoutSeconds: 5,
		MaxOutputBytes: 1 << 20,
	}
}

func TestAvailableRequiresCredential(t *testing.T) {
	t.Setenv("CLOUDCOST_TEST_API_KEY", "")

	adapter := NewAdapter(engineConfig("sh"))
	assert.False(t, adapter.Available())
}

func TestAvailableRequiresBinary(t *testing.T) {
	t.Setenv("CLOUDCOST_TEST_API_KEY", "test-key")

	adapter := NewAdapter(engineConfig("cloudcost-no-such-binary"))
	assert.False(t, adapter.Available())
}

func TestRunUnavailableEngineIsNotAnError(t *testing.T) {
	t.Setenv("CLOUDCOST_TEST_API_KEY", "")

	adapter := NewAdapter(engineConfig("cloudcost-no-such-binary"))
	raw, ok := adapter.Run(context.Background(), t.TempDir(), "")
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	t.Setenv("CLOUDCOST_TEST_API_KEY", "test-key")

	// "false" exists on PATH and exits non-zero for any arguments.
	adapter := NewAdapter(engineConfig("false"))
	raw, ok := adapter.Run(context.Background(), t.TempDir(), "")
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestRunMalformedOutputIsNotAnError(t *testing.T) {
	t.Setenv("CLOUDCOST_TEST_API_KEY", "test-key")

	// "true" exits zero with empty output, which is not valid JSON.
	adapter := NewAdapter(engineConfig("true"))
	raw, ok := adapter.Run(context.Background(), t.TempDir(), "")
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestBoundedBuffer(t *testing.T) {
	buf := newBoundedBuffer(8)

	n, err := buf.Write([]byte("12345"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.False(t, buf.Truncated())

	n, err = buf.Write([]byte("67890"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.True(t, buf.Truncated())
	assert.Equal(t, "12345678", string(buf.Bytes()))
}

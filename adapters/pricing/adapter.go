// Package pricing isolates the authoritative external pricing engine
// behind a narrow adapter. Timeout, non-zero exit, malformed output
// and missing credentials are all expected failure modes: the adapter
// reports ok=false and never returns an error for them.
package pricing

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"cloudcost/internal/config"
	"cloudcost/internal/logging"
)

// hardTimeoutCap bounds the engine invocation regardless of config
const hardTimeoutCap = 30 * time.Second

// Adapter invokes the authoritative pricing engine as a subprocess
type Adapter struct {
	cfg config.EngineConfig
	log *zap.Logger
}

// NewAdapter creates an engine adapter
func NewAdapter(cfg config.EngineConfig) *Adapter {
	return &Adapter{
		cfg: cfg,
		log: logging.Named("pricing-engine"),
	}
}

// Available reports whether the engine can be invoked at all. A
// missing API credential is treated identically to a missing binary.
func (a *Adapter) Available() bool {
	if a.cfg.CredentialEnv != "" && os.Getenv(a.cfg.CredentialEnv) == "" {
		return false
	}
	_, err := exec.LookPath(a.cfg.Binary)
	return err == nil
}

// Run invokes `<binary> breakdown --path <dir> --format json
// [--usage-file <file>]` under a hard timeout with a bounded output
// buffer. Any expected failure yields (nil, false).
func (a *Adapter) Run(ctx context.Context, dir, usageFile string) (*RawBreakdown, bool) {
	if !a.Available() {
		a.log.Debug("pricing engine unavailable, skipping invocation",
			zap.String("binary", a.cfg.Binary))
		return nil, false
	}

	timeout := time.Duration(a.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 || timeout > hardTimeoutCap {
		timeout = hardTimeoutCap
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := []string{"breakdown", "--path", dir, "--format", "json"}
	if usageFile != "" {
		args = append(args, "--usage-file", usageFile)
	}

	cmd := exec.CommandContext(ctx, a.cfg.Binary, args...)
	stdout := newBoundedBuffer(a.cfg.MaxOutputBytes)
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		a.log.Warn("pricing engine invocation failed",
			zap.String("dir", dir),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
			zap.String("stderr", stderr.String()))
		return nil, false
	}
	if stdout.Truncated() {
		a.log.Warn("pricing engine output exceeded buffer bound",
			zap.Int64("max_bytes", a.cfg.MaxOutputBytes))
		return nil, false
	}

	var raw RawBreakdown
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		a.log.Warn("pricing engine returned malformed output", zap.Error(err))
		return nil, false
	}
	if len(raw.Projects) == 0 {
		a.log.Warn("pricing engine returned no projects")
		return nil, false
	}

	a.log.Debug("pricing engine invocation succeeded",
		zap.Duration("elapsed", time.Since(start)))
	return &raw, true
}

// boundedBuffer accepts writes up to a byte bound and flags overflow
type boundedBuffer struct {
	buf       bytes.Buffer
	max       int64
	truncated bool
}

func newBoundedBuffer(max int64) *boundedBuffer {
	if max <= 0 {
		max = 4 << 20
	}
	return &boundedBuffer{max: max}
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	remaining := b.max - int64(b.buf.Len())
	if remaining <= 0 {
		b.truncated = true
		return len(p), nil
	}
	if int64(len(p)) > remaining {
		b.truncated = true
		b.buf.Write(p[:remaining])
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *boundedBuffer) Bytes() []byte   { return b.buf.Bytes() }
func (b *boundedBuffer) Truncated() bool { return b.truncated }

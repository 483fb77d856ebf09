package recorder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"satchel/internal/config"
)

// Capture is the product of one recorder run: a temp file holding the audio
// bytes plus the elapsed wall-clock duration. The caller hands both to the
// library, which copies the bytes into the vault and removes the temp file.
type Capture struct {
	Path    string
	Elapsed time.Duration
}

// Recorder shells out to an external capture tool. The container and codec
// are the tool's concern; satchel only tracks the produced file.
type Recorder struct {
	cfg    config.Recorder
	logger *slog.Logger
}

// New returns a recorder bound to the configured capture tool.
func New(cfg config.Recorder, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{cfg: cfg, logger: logger.With("component", "recorder")}
}

// Available reports whether the configured capture binary can be found.
func (r *Recorder) Available() error {
	if _, err := exec.LookPath(r.cfg.Binary); err != nil {
		return fmt.Errorf("capture binary %q not found: %w", r.cfg.Binary, err)
	}
	return nil
}

// Record captures up to seconds of audio into a temp file under dir. A zero
// or negative seconds value means the configured maximum. Cancelling the
// context stops the capture early; the partial file is kept when the tool
// managed to write anything.
func (r *Recorder) Record(ctx context.Context, dir string, seconds int) (Capture, error) {
	if err := r.Available(); err != nil {
		return Capture{}, err
	}
	if seconds <= 0 || seconds > r.cfg.MaxSeconds {
		seconds = r.cfg.MaxSeconds
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Capture{}, fmt.Errorf("create capture directory: %w", err)
	}
	output := filepath.Join(dir, fmt.Sprintf("capture-%d.%s", time.Now().UnixNano(), r.cfg.Format))

	args := r.buildArgs(output, seconds)
	cmd := exec.CommandContext(ctx, r.cfg.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	// An interrupt lets the tool finalize the container instead of leaving a
	// truncated file behind.
	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	cmd.WaitDelay = 5 * time.Second

	r.logger.Info("capture started", "binary", r.cfg.Binary, "device", r.cfg.Device, "max_seconds", seconds)
	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	if runErr != nil && !stoppedEarly(ctx, runErr) {
		_ = os.Remove(output)
		return Capture{}, fmt.Errorf("capture failed: %w (%s)", runErr, strings.TrimSpace(stderr.String()))
	}

	info, err := os.Stat(output)
	if err != nil || info.Size() == 0 {
		_ = os.Remove(output)
		return Capture{}, errors.New("capture produced no audio")
	}

	r.logger.Info("capture finished", "path", output, "bytes", info.Size(), "elapsed", elapsed.Round(time.Second))
	return Capture{Path: output, Elapsed: elapsed}, nil
}

// stoppedEarly distinguishes a user-initiated stop from a tool failure.
func stoppedEarly(ctx context.Context, runErr error) bool {
	return errors.Is(ctx.Err(), context.Canceled) || errors.Is(runErr, context.Canceled)
}

func (r *Recorder) buildArgs(output string, seconds int) []string {
	if strings.Contains(filepath.Base(r.cfg.Binary), "ffmpeg") {
		return []string{
			"-hide_banner",
			"-loglevel", "error",
			"-f", "alsa",
			"-i", r.cfg.Device,
			"-t", strconv.Itoa(seconds),
			"-y", output,
		}
	}
	// Unknown tools get device, limit, and output positionally.
	return []string{r.cfg.Device, strconv.Itoa(seconds), output}
}

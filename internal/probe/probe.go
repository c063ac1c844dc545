package probe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/averill/deckd/internal/logging"
)

// Config controls probe execution and output interpretation.
type Config struct {
	// Timeout bounds the probe; on expiry the child is killed and the
	// result is an execution error.
	Timeout time.Duration

	// EmptyStdoutIsSuccess decides the classification when the probe
	// exits with empty (trimmed) stdout and no indicator matched.
	EmptyStdoutIsSuccess bool

	// SuccessIndicators force a success classification when any of them
	// appears as a substring of stdout.
	SuccessIndicators []string

	// FailureIndicators force a failure classification and take
	// precedence over SuccessIndicators.
	FailureIndicators []string
}

// DefaultConfig returns the probe defaults: 5s timeout, empty output
// counts as success, no custom indicators.
func DefaultConfig() Config {
	return Config{
		Timeout:              5 * time.Second,
		EmptyStdoutIsSuccess: true,
	}
}

// Run executes a probe command and classifies the result by exit status
// alone. stdin is the null device so a probe that expects interactive
// input fails instead of hanging; stdout and stderr are captured in full
// (probes are expected to be short).
func Run(ctx context.Context, command string, args []string, label string) Result {
	logging.Info("Executing probe",
		zap.String("button", label),
		zap.String("command", command),
		zap.Strings("args", args),
	)

	stdout, stderr, exitCode, err := capture(ctx, command, args)
	if err != nil {
		logging.Error("Probe could not be executed",
			zap.String("button", label),
			zap.String("command", command),
			zap.Error(err),
		)
		return ExecutionError(fmt.Sprintf("Command execution failed: %v", err))
	}

	logProbeOutput(label, stdout, stderr, exitCode)

	if exitCode == 0 {
		return Succeeded(exitCode, stdout, stderr)
	}
	return Failed(exitCode, stdout, stderr)
}

// RunWithConfig executes a probe with a timeout and custom indicator
// evaluation. Indicator precedence, applied to stdout only: failure
// indicators, then success indicators, then the empty-stdout rule, then
// the process exit code.
func RunWithConfig(ctx context.Context, command string, args []string, label string, cfg Config) Result {
	logging.Info("Executing probe",
		zap.String("button", label),
		zap.String("command", command),
		zap.Strings("args", args),
		zap.Duration("timeout", cfg.Timeout),
	)

	timeoutCtx := ctx
	var cancel context.CancelFunc
	if cfg.Timeout > 0 {
		timeoutCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	stdout, stderr, exitCode, err := capture(timeoutCtx, command, args)

	// The child is killed on timeout, so err reports the kill; the
	// deadline check has to come first to classify it correctly.
	if timeoutCtx.Err() == context.DeadlineExceeded {
		logging.Warn("Probe timed out",
			zap.String("button", label),
			zap.String("command", command),
			zap.Duration("timeout", cfg.Timeout),
		)
		return ExecutionError(fmt.Sprintf("Command timed out after %s", cfg.Timeout))
	}
	if err != nil {
		logging.Error("Probe could not be executed",
			zap.String("button", label),
			zap.String("command", command),
			zap.Error(err),
		)
		return ExecutionError(fmt.Sprintf("Command execution failed: %v", err))
	}

	logProbeOutput(label, stdout, stderr, exitCode)

	exitSuccess := exitCode == 0
	finalSuccess := exitSuccess
	if forced, ok := evaluateIndicators(stdout, cfg); ok {
		finalSuccess = forced
	}

	logging.Debug("Probe classified",
		zap.String("button", label),
		zap.Int("exit_code", exitCode),
		zap.Bool("exit_success", exitSuccess),
		zap.Bool("final_success", finalSuccess),
	)

	if finalSuccess {
		return Succeeded(exitCode, stdout, stderr)
	}
	return Failed(exitCode, stdout, stderr)
}

// capture runs the command with stdin closed and both streams buffered.
// A nil error means the process ran to completion; exitCode is then its
// exit status (non-zero included).
func capture(ctx context.Context, command string, args []string) (stdout, stderr string, exitCode int, err error) {
	cmd := exec.CommandContext(ctx, command, args...)
	// Stdin left nil: os/exec connects the null device, so the probe can
	// never block waiting for interactive input.

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	runErr := cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return stdout, stderr, exitErr.ExitCode(), nil
		}
		return stdout, stderr, -1, runErr
	}
	return stdout, stderr, 0, nil
}

// evaluateIndicators applies the custom classification rules to stdout.
// ok=false means no rule matched and the exit code decides.
func evaluateIndicators(stdout string, cfg Config) (success, ok bool) {
	for _, indicator := range cfg.FailureIndicators {
		if strings.Contains(stdout, indicator) {
			return false, true
		}
	}
	for _, indicator := range cfg.SuccessIndicators {
		if strings.Contains(stdout, indicator) {
			return true, true
		}
	}
	if strings.TrimSpace(stdout) == "" {
		return cfg.EmptyStdoutIsSuccess, true
	}
	return false, false
}

func logProbeOutput(label, stdout, stderr string, exitCode int) {
	logging.Debug("Probe completed",
		zap.String("button", label),
		zap.Int("exit_code", exitCode),
		zap.Int("stdout_len", len(stdout)),
		zap.Int("stderr_len", len(stderr)),
	)
	if stdout != "" {
		logging.Debug("Probe stdout", zap.String("button", label), zap.String("output", strings.TrimSpace(stdout)))
	}
	if stderr != "" {
		logging.Debug("Probe stderr", zap.String("button", label), zap.String("output", strings.TrimSpace(stderr)))
	}
}

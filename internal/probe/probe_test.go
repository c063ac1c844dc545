package probe

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestResultClassifications(t *testing.T) {
	success := Succeeded(0, "output", "")
	if !success.IsSuccess() || success.IsCommandFailure() || success.IsExecutionError() {
		t.Errorf("Succeeded misclassified: %+v", success)
	}

	failure := Failed(1, "", "error")
	if failure.IsSuccess() || !failure.IsCommandFailure() || failure.IsExecutionError() {
		t.Errorf("Failed misclassified: %+v", failure)
	}

	execErr := ExecutionError("command not found")
	if execErr.IsSuccess() || execErr.IsCommandFailure() || !execErr.IsExecutionError() {
		t.Errorf("ExecutionError misclassified: %+v", execErr)
	}
	if execErr.Stderr != "command not found" {
		t.Errorf("ExecutionError.Stderr = %q", execErr.Stderr)
	}
}

func TestEvaluateIndicators(t *testing.T) {
	cfg := Config{
		EmptyStdoutIsSuccess: true,
		SuccessIndicators:    []string{"enabled", "active"},
		FailureIndicators:    []string{"disabled", "inactive"},
	}

	tests := []struct {
		name        string
		stdout      string
		wantSuccess bool
		wantMatched bool
	}{
		{"success indicator", "Service is enabled", true, true},
		{"second success indicator", "Status: active", true, true},
		{"failure indicator", "Service is disabled", false, true},
		{"second failure indicator", "Status: inactive", false, true},
		{"failure beats success", "Service enabled but disabled", false, true},
		{"no indicator", "unknown status", false, false},
		{"empty stdout", "", true, true},
		{"whitespace stdout", "   \n", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			success, matched := evaluateIndicators(tt.stdout, cfg)
			if matched != tt.wantMatched {
				t.Fatalf("matched = %v, want %v", matched, tt.wantMatched)
			}
			if matched && success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", success, tt.wantSuccess)
			}
		})
	}
}

func TestEvaluateIndicatorsEmptyStdoutIsFailure(t *testing.T) {
	cfg := Config{EmptyStdoutIsSuccess: false}
	success, matched := evaluateIndicators("", cfg)
	if !matched || success {
		t.Errorf("empty stdout with EmptyStdoutIsSuccess=false: success=%v matched=%v", success, matched)
	}
}

func TestRunSuccess(t *testing.T) {
	result := Run(context.Background(), "echo", []string{"probe-ok"}, "test-button")

	if !result.IsSuccess() {
		t.Fatalf("Run(echo) not success: %+v", result)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if !strings.Contains(result.Stdout, "probe-ok") {
		t.Errorf("Stdout = %q, want to contain probe-ok", result.Stdout)
	}
}

func TestRunCommandFailure(t *testing.T) {
	result := Run(context.Background(), "false", nil, "test-button")

	if !result.IsCommandFailure() {
		t.Fatalf("Run(false) not a command failure: %+v", result)
	}
	if result.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", result.ExitCode)
	}
}

func TestRunExecutionError(t *testing.T) {
	result := Run(context.Background(), "deckd-no-such-binary-xyz", nil, "test-button")

	if !result.IsExecutionError() {
		t.Fatalf("missing binary not an execution error: %+v", result)
	}
	if result.Stderr == "" {
		t.Error("execution error should carry the spawn error in Stderr")
	}
}

func TestRunWithConfigTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 50 * time.Millisecond

	start := time.Now()
	result := RunWithConfig(context.Background(), "sleep", []string{"5"}, "test-button", cfg)
	elapsed := time.Since(start)

	if !result.IsExecutionError() {
		t.Fatalf("timed-out probe not an execution error: %+v", result)
	}
	if !strings.Contains(result.Stderr, "timed out") {
		t.Errorf("Stderr = %q, want timeout message", result.Stderr)
	}
	if elapsed > 2*time.Second {
		t.Errorf("timeout did not kill the child promptly (took %s)", elapsed)
	}
}

func TestRunWithConfigFailureIndicatorOverridesExitCode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailureIndicators = []string{"disabled"}

	// echo exits 0, but the failure indicator must win.
	result := RunWithConfig(context.Background(), "echo", []string{"wifi disabled"}, "test-button", cfg)

	if !result.IsCommandFailure() {
		t.Errorf("failure indicator did not override exit 0: %+v", result)
	}
}

func TestRunWithConfigSuccessIndicatorOverridesExitCode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SuccessIndicators = []string{"active"}

	result := RunWithConfig(context.Background(), "sh", []string{"-c", "echo active; exit 3"}, "test-button", cfg)

	if !result.IsSuccess() {
		t.Errorf("success indicator did not override exit 3: %+v", result)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want the real exit code 3", result.ExitCode)
	}
}

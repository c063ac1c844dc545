package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/averill/deckd/internal/logging"
)

// Output is the captured result of one command invocation.
type Output struct {
	// ExitCode is the process exit status, or -1 when the process was
	// killed by a signal.
	ExitCode int
	Stdout   string
	Stderr   string
}

// SpawnError reports that the command could not be started at all.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn command %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Run spawns the command and drains stdout and stderr line-by-line into
// accumulated buffers, logging each line as it arrives so a chatty child
// never stalls on a full pipe. Both drain goroutines are joined before
// the call returns. A non-zero exit is not an error here; only a spawn
// failure is.
func Run(ctx context.Context, command string, args []string, label string) (Output, error) {
	logging.Debug("Executing command",
		zap.String("button", label),
		zap.String("command", command),
		zap.Strings("args", args),
	)

	cmd := exec.CommandContext(ctx, command, args...)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return Output{}, &SpawnError{Command: command, Err: err}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return Output{}, &SpawnError{Command: command, Err: err}
	}

	if err := cmd.Start(); err != nil {
		logging.Error("Failed to spawn command",
			zap.String("button", label),
			zap.String("command", command),
			zap.Error(err),
		)
		return Output{}, &SpawnError{Command: command, Err: err}
	}

	var stdoutBuf, stderrBuf strings.Builder
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		drainLines(stdoutPipe, &stdoutBuf, label, "stdout")
	}()
	go func() {
		defer wg.Done()
		drainLines(stderrPipe, &stderrBuf, label, "stderr")
	}()

	// Pipes must be fully drained before Wait closes them.
	wg.Wait()
	waitErr := cmd.Wait()

	exitCode := 0
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			return Output{}, &SpawnError{Command: command, Err: waitErr}
		}
	}

	logging.LogCommandExit(label, command, exitCode)

	return Output{
		ExitCode: exitCode,
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
	}, nil
}

// drainLines reads r to EOF, accumulating lines and emitting each one to
// the log sink as it arrives.
func drainLines(r io.Reader, buf *strings.Builder, label, stream string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)
		logging.LogCommandLine(label, stream, line)
	}
}

package toggle

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/averill/deckd/internal/button"
	"github.com/averill/deckd/internal/logging"
	"github.com/averill/deckd/internal/probe"
	"github.com/averill/deckd/internal/runner"
	"github.com/averill/deckd/internal/state"
)

// Result is the outcome of pressing a toggle button. On failure NewState
// is the state from before the attempt; the store is never advanced on a
// failed command.
type Result struct {
	Success      bool
	NewState     state.State
	Exited       bool
	ExitCode     int
	Stdout       string
	Stderr       string
	ErrorMessage string
}

func succeeded(newState state.State, exitCode int, stdout, stderr string) Result {
	return Result{
		Success:  true,
		NewState: newState,
		Exited:   true,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

func failed(currentState state.State, exited bool, exitCode int, stdout, stderr, message string) Result {
	return Result{
		Success:      false,
		NewState:     currentState,
		Exited:       exited,
		ExitCode:     exitCode,
		Stdout:       stdout,
		Stderr:       stderr,
		ErrorMessage: message,
	}
}

// action is the pure decision of what a press should do: which command
// to run and which state it is expected to produce.
type action struct {
	command string
	args    []string
	target  state.State
}

// decide selects the action for a press given the mode and current
// state, without spawning anything. Single mode always runs its one
// command with the target inverted from current; an unknown state is
// optimistically treated as about to turn on. Separate mode picks the
// command for the opposite of current, again biased toward on when
// unknown.
func decide(mode button.ToggleMode, current state.State) action {
	switch m := mode.(type) {
	case *button.SingleMode:
		target := current.Toggle()
		if current == state.Unknown {
			target = state.On
		}
		return action{command: m.Command, args: m.Args, target: target}
	case *button.SeparateMode:
		if current == state.On {
			return action{command: m.OffCommand, args: m.OffArgs, target: state.Off}
		}
		return action{command: m.OnCommand, args: m.OnArgs, target: state.On}
	default:
		// The mode set is closed; this is unreachable for decoded config.
		return action{}
	}
}

// Orchestrator answers "press a toggle button": it determines the
// current state (probing if configured), runs the action command, and
// updates or verifies the store.
type Orchestrator struct {
	store    *state.Store
	probeCfg probe.Config

	// Execution seams, replaceable in tests so decision and state logic
	// can be exercised without spawning processes.
	runProbe   func(ctx context.Context, command string, args []string, label string, cfg probe.Config) probe.Result
	runCommand func(ctx context.Context, command string, args []string, label string) (runner.Output, error)
}

// NewOrchestrator creates an orchestrator over the given store. probeCfg
// applies to every probe this orchestrator runs.
func NewOrchestrator(store *state.Store, probeCfg probe.Config) *Orchestrator {
	return &Orchestrator{
		store:      store,
		probeCfg:   probeCfg,
		runProbe:   probe.RunWithConfig,
		runCommand: runner.Run,
	}
}

// Press executes the full toggle protocol for b and returns the result.
func (o *Orchestrator) Press(ctx context.Context, b *button.Toggle) Result {
	logging.Info("Toggle pressed", zap.String("button", b.Name))

	// Step 1: determine current state.
	var current state.State
	if b.HasProbe() {
		pr := o.runProbe(ctx, b.ProbeCommand, b.ProbeArgs, b.Name, o.probeCfg)
		current = stateFromProbe(pr)
		o.store.Set(b.Name, current)
	} else {
		current = o.store.Get(b.Name)
	}

	logging.Debug("Current toggle state",
		zap.String("button", b.Name),
		zap.Stringer("state", current),
	)

	// Step 2: decide, step 3: execute.
	act := decide(b.Mode, current)

	logging.Info("Executing toggle command",
		zap.String("button", b.Name),
		zap.String("command", act.command),
		zap.Strings("args", act.args),
		zap.Stringer("target_state", act.target),
	)

	out, err := o.runCommand(ctx, act.command, act.args, b.Name)
	if err != nil {
		msg := fmt.Sprintf("Failed to execute toggle command: %v", err)
		logging.Error("Toggle command could not be executed",
			zap.String("button", b.Name),
			zap.Error(err),
		)
		return failed(current, false, 0, "", "", msg)
	}

	// Step 4: non-zero exit leaves the store untouched.
	if out.ExitCode != 0 {
		msg := fmt.Sprintf("Toggle command failed with exit code %d", out.ExitCode)
		logging.Warn("Toggle command failed",
			zap.String("button", b.Name),
			zap.Int("exit_code", out.ExitCode),
		)
		return failed(current, true, out.ExitCode, out.Stdout, out.Stderr, msg)
	}

	// Step 5: record the optimistic target, then verify if possible.
	o.store.Set(b.Name, act.target)
	final := act.target

	if b.HasProbe() {
		final = o.verify(ctx, b, act.target)
	}

	logging.Info("Toggle succeeded",
		zap.String("button", b.Name),
		zap.Stringer("state", final),
	)
	return succeeded(final, out.ExitCode, out.Stdout, out.Stderr)
}

// verify re-runs the probe after a successful action command. A probed
// state that disagrees with the optimistic target wins and overwrites
// the store; a probe that could not run leaves the target in place.
func (o *Orchestrator) verify(ctx context.Context, b *button.Toggle, target state.State) state.State {
	pr := o.runProbe(ctx, b.ProbeCommand, b.ProbeArgs, b.Name, o.probeCfg)
	if pr.IsExecutionError() {
		logging.Warn("Could not verify toggle state, keeping expected state",
			zap.String("button", b.Name),
			zap.Stringer("expected", target),
		)
		return target
	}

	verified := stateFromProbe(pr)
	if verified != target {
		logging.Warn("Toggle state verification mismatch",
			zap.String("button", b.Name),
			zap.Stringer("expected", target),
			zap.Stringer("probed", verified),
		)
	}
	o.store.Set(b.Name, verified)
	return verified
}

// stateFromProbe maps a probe classification onto a toggle state.
func stateFromProbe(r probe.Result) state.State {
	switch {
	case r.IsSuccess():
		return state.On
	case r.IsCommandFailure():
		return state.Off
	default:
		return state.Unknown
	}
}

package probe

// Result is the classified outcome of one probe invocation.
type Result struct {
	// Success is the final classification after indicator rules and
	// exit-code interpretation.
	Success bool
	// Exited reports whether the command ran to completion. False means
	// it could not be started or timed out; ExitCode is meaningless then.
	Exited   bool
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded builds a result for a probe classified as success.
func Succeeded(exitCode int, stdout, stderr string) Result {
	return Result{Success: true, Exited: true, ExitCode: exitCode, Stdout: stdout, Stderr: stderr}
}

// Failed builds a result for a probe that ran but classified as failure.
func Failed(exitCode int, stdout, stderr string) Result {
	return Result{Success: false, Exited: true, ExitCode: exitCode, Stdout: stdout, Stderr: stderr}
}

// ExecutionError builds a result for a probe that could not run at all.
// The spawn or timeout error message travels in Stderr.
func ExecutionError(message string) Result {
	return Result{Success: false, Exited: false, Stderr: message}
}

// IsSuccess reports that the probe ran and classified as success.
func (r Result) IsSuccess() bool {
	return r.Success && r.Exited
}

// IsCommandFailure reports that the probe ran but classified as failure.
// Distinct from IsExecutionError: the program itself answered "no".
func (r Result) IsCommandFailure() bool {
	return !r.Success && r.Exited
}

// IsExecutionError reports that the probe could not be executed.
func (r Result) IsExecutionError() bool {
	return !r.Exited
}

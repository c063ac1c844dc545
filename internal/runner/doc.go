// Package runner executes the external commands bound to buttons.
//
// Unlike probes, command output is streamed: each stdout/stderr line is
// log-emitted as it arrives while also being accumulated for the caller.
// The two drain goroutines are always joined before Run returns, so the
// child can never deadlock on a full pipe.
package runner

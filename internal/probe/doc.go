// Package probe runs read-only external commands whose outcome is
// interpreted as the current on/off state of a toggle.
//
// A probe result is one of three classifications: success (ran, counts
// as on), command failure (ran, counts as off), or execution error (did
// not run — spawn failure or timeout — state unknowable). Custom
// substring indicators can override the exit-code interpretation; see
// Config. Timeouts kill the child process.
package probe

// Package toggle implements the press protocol for stateful buttons:
// probe (or read) the current state, pick the action command and its
// expected target state, run the command, and update or verify the
// shared state store. The decision step is pure; process execution is
// the only effect and sits behind replaceable seams.
package toggle

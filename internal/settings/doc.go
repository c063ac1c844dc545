// Package settings loads the daemon's runtime options.
//
// Settings are distinct from the button tree: the tree says what the deck
// shows and does, settings say how the daemon runs (grid size, probe
// timeouts, trigger server, logging). Values merge from built-in defaults,
// the deckd.yaml settings file, DECKD_* environment variables, and
// command-line flags, in that order of precedence.
package settings

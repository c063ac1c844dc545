// Package config loads the declarative button tree from YAML.
//
// A config file declares one top-level menu; each entry in a menu carries a
// type tag (command, menu, back, toggle) selecting its shape, and toggles
// carry a mode tag (single, separate) selecting how they flip. Parsing is
// strict about structure and loose about extras: a missing command is an
// error, an unrecognised field is ignored.
//
// Watcher reloads the tree when the file changes on disk, keeping the
// previous tree when a reload fails to parse.
package config

// Package state holds the shared toggle state table.
//
// The render path reads the table concurrently with orchestrator writes,
// so the store uses a read/write mutex with per-operation lock scope:
// readers proceed in parallel, and no lock is ever held across an
// external command invocation.
package state

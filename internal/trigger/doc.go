// Package trigger exposes the deck to remote clients.
//
// A websocket endpoint at /ws accepts JSON press events addressed by grid
// position and forwards them to the navigator, so a hardware pad or phone
// app can press buttons as if at the keyboard. When enabled, the server
// advertises itself over mDNS as a _deckd._tcp service so clients need no
// configuration to find it.
package trigger

// Package button defines the button taxonomy shared by the config loader,
// the navigator, and the icon/label derivation code.
package button

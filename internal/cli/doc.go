// Package cli implements the nodeboard command-line interface.
//
// Each Cobra command is a thin wrapper: it resolves config into an app
// (config, locale catalog, snapshot source) and hands off to a plain
// function that takes a context, an io.Writer and explicit options.
// The functions are what the tests drive.
//
// # Command Structure
//
//	nodeboard show [uuid|name...]  - Render node cards (--json, --strict)
//	nodeboard list                 - One table row per node
//	nodeboard pick                 - Choose a node interactively
//	nodeboard monitor              - Live dashboard, reloads the snapshot
//	nodeboard version              - Print version info
//	nodeboard completion <shell>   - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --snapshot, --locale, --color) override the
// matching config keys. Commands that depend on the current date take
// --now so output is reproducible in scripts and tests.
//
// # Exit Codes
//
// Errors print to stderr and exit 1. show --strict exits 2 when any
// shown node is overloaded, expired or close to expiry, or nearly out
// of traffic.
package cli

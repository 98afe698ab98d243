// Package node holds the node data model and the pure derivations a status
// card needs: billing-cycle classification, expiry urgency, traffic quota
// consumption, tag parsing and the high-usage flag.
//
// Nothing here reads the clock, touches the terminal or keeps state. Callers
// pass the current time explicitly, and colors are expressed as Tone values
// that the card package maps to a palette.
package node

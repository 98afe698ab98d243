// Package monitor implements the live node dashboard.
//
// The dashboard rereads a snapshot.Source on a fixed interval and renders one
// card per node through the card package, in one or two columns depending on
// terminal width.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: the current snapshot, display order, selection and view mode
//   - Update: processes keystrokes, reload ticks and loaded snapshots
//   - View: renders the dashboard, the detail view or the help overlay
//
// # Message Flow
//
//  1. tickMsg fires at the configured interval (default 2s)
//  2. loadCmd reads the source off the update loop, bounded by a timeout
//  3. snapshotMsg arrives and replaces the snapshot; a failed load keeps the
//     previous one on screen and shows the error above the cards
//  4. View re-renders every card with the current clock
//
// # Navigation
//
// Enter on a card asks the card presenter to open it. The presenter emits a
// "/instance/<uuid>" route to a Navigator owned by the model, and the model
// switches to the detail view for whatever uuid the route names. Esc returns
// to the card list.
//
// # History
//
// History keeps a short ring buffer of CPU and memory percentages per node
// for the sparkline in the detail view. Nodes that leave the snapshot are
// dropped from it.
package monitor

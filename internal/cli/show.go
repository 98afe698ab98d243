package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rileyhilliard/nodeboard/internal/card"
	"github.com/rileyhilliard/nodeboard/internal/errors"
	"github.com/rileyhilliard/nodeboard/internal/node"
	"github.com/rileyhilliard/nodeboard/internal/snapshot"
)

// strictExitCode is returned by show --strict when a node needs attention.
const strictExitCode = 2

// showOptions are the flags of the show command.
type showOptions struct {
	Refs   []string
	Width  int
	JSON   bool
	Now    string
	Strict bool
}

// nodeReport is one node in show --json output.
type nodeReport struct {
	node.Summary
	Online bool `json:"online"`
}

// showCommand renders cards (or JSON summaries) for the selected nodes.
func showCommand(ctx context.Context, out io.Writer, a *app, opts showOptions) error {
	fixed, err := ParseNow(opts.Now)
	if err != nil {
		return err
	}
	now := clockFor(fixed)()

	snap, err := a.source.Load(ctx)
	if err != nil {
		return err
	}

	nodes, err := selectNodes(snap, opts.Refs)
	if err != nil {
		return err
	}

	reports := make([]nodeReport, 0, len(nodes))
	for _, meta := range nodes {
		reports = append(reports, nodeReport{
			Summary: node.Summarize(meta, snap.Telemetry(meta.UUID), now),
			Online:  snap.IsOnline(meta.UUID),
		})
	}

	if opts.JSON {
		if err := WriteJSONSuccess(out, reports); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Couldn't write JSON output", "")
		}
	} else if err := writeCards(out, a, nodes, reports, opts.Width, now); err != nil {
		return err
	}

	if opts.Strict && anyNeedsAttention(reports) {
		return errors.NewExitError(strictExitCode)
	}
	return nil
}

func writeCards(out io.Writer, a *app, nodes []node.Metadata, reports []nodeReport, width int, now time.Time) error {
	if len(nodes) == 0 {
		_, err := fmt.Fprintln(out, card.MutedStyle.Render(a.loc.T("monitor.no_nodes", nil)))
		return err
	}

	presenter := card.NewPresenter(a.loc, nil)
	opts := card.Options{Width: width, Now: now}

	cards := make([]string, len(nodes))
	for i, meta := range nodes {
		cards[i] = presenter.RenderSummary(meta, reports[i].Summary, reports[i].Online, opts)
	}

	if _, err := fmt.Fprintln(out, strings.Join(cards, "\n")); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender, "Couldn't write cards", "")
	}
	return nil
}

// selectNodes returns the nodes named by refs (uuid or name), in the order
// given. No refs selects every node in snapshot order.
func selectNodes(snap *snapshot.Snapshot, refs []string) ([]node.Metadata, error) {
	if len(refs) == 0 {
		return snap.Nodes, nil
	}

	nodes := make([]node.Metadata, 0, len(refs))
	for _, ref := range refs {
		meta, ok := snap.Find(ref)
		if !ok {
			return nil, errors.New(errors.ErrSnapshot,
				fmt.Sprintf("No node matches '%s'", ref),
				"Run 'nodeboard list' to see node names and uuids.")
		}
		nodes = append(nodes, meta)
	}
	return nodes, nil
}

// needsAttention reports nodes that are overloaded, about to expire or
// about to run out of traffic.
func needsAttention(s node.Summary) bool {
	if s.HighUsage {
		return true
	}
	if s.Expiry != nil && (s.Expiry.Tier == node.UrgencyExpired || s.Expiry.Tier == node.UrgencyCritical) {
		return true
	}
	return s.Traffic.Limited && s.Traffic.Tone == node.ToneCritical
}

func anyNeedsAttention(reports []nodeReport) bool {
	for _, r := range reports {
		if needsAttention(r.Summary) {
			return true
		}
	}
	return false
}

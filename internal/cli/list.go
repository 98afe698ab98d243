package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/nodeboard/internal/card"
	"github.com/rileyhilliard/nodeboard/internal/i18n"
	"github.com/rileyhilliard/nodeboard/internal/node"
	"github.com/rileyhilliard/nodeboard/internal/snapshot"
	"github.com/rileyhilliard/nodeboard/internal/ui"
)

// listCommand prints one table row per node.
func listCommand(ctx context.Context, out io.Writer, a *app, now time.Time) error {
	snap, err := a.source.Load(ctx)
	if err != nil {
		return err
	}

	headers := ui.NodeTableHeaders{
		Status:  a.loc.T("list.status", nil),
		Name:    a.loc.T("list.name", nil),
		Region:  a.loc.T("list.region", nil),
		Price:   a.loc.T("list.price", nil),
		Expiry:  a.loc.T("list.expiry", nil),
		Traffic: a.loc.T("list.traffic", nil),
	}

	_, err = fmt.Fprintln(out, ui.RenderNodeTable(headers, nodeRows(a.loc, snap, now), a.loc.T("monitor.no_nodes", nil)))
	return err
}

// nodeRows derives the list table rows in snapshot order.
func nodeRows(loc i18n.Localizer, snap *snapshot.Snapshot, now time.Time) []ui.NodeTableRow {
	rows := make([]ui.NodeTableRow, 0, len(snap.Nodes))
	for _, meta := range snap.Nodes {
		s := node.Summarize(meta, snap.Telemetry(meta.UUID), now)

		row := ui.NodeTableRow{
			Online:  snap.IsOnline(meta.UUID),
			Name:    meta.Name,
			Region:  meta.Region,
			Price:   card.PriceText(loc, s.Price),
			Expiry:  "-",
			Traffic: "-",
		}
		if row.Price == "" {
			row.Price = "-"
		}
		if s.Expiry != nil {
			row.Expiry = card.ExpiryText(loc, *s.Expiry)
		}
		if s.Traffic.Limited {
			row.Traffic = fmt.Sprintf("%s %s/%s",
				card.FormatPercent(s.Traffic.Percent),
				card.FormatBytes(s.Traffic.UsedBytes),
				card.FormatBytes(s.Traffic.Limit))
		}
		rows = append(rows, row)
	}
	return rows
}

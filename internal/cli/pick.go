package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/nodeboard/internal/card"
	"github.com/rileyhilliard/nodeboard/internal/errors"
	"github.com/rileyhilliard/nodeboard/internal/snapshot"
	"golang.org/x/term"
)

// pickCommand asks which node to show, then prints its wide card followed
// by the route the card opens.
func pickCommand(ctx context.Context, out io.Writer, a *app, width int, now time.Time) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New(errors.ErrConfig,
			"pick needs an interactive terminal",
			"Use 'nodeboard show <uuid>' in scripts.")
	}

	snap, err := a.source.Load(ctx)
	if err != nil {
		return err
	}
	if len(snap.Nodes) == 0 {
		return errors.New(errors.ErrSnapshot,
			"No nodes in snapshot",
			"Check that the agent writing "+a.cfg.Snapshot+" is running.")
	}

	var uuid string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(a.loc.T("pick.title", nil)).
				Options(pickOptions(snap)...).
				Value(&uuid),
		),
	)
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrRender,
			"Node picker failed",
			"Try again, or use 'nodeboard show <uuid>' directly.")
	}

	return writePicked(out, a, snap, uuid, width, now)
}

// pickOptions labels each node with its name, region and online state.
func pickOptions(snap *snapshot.Snapshot) []huh.Option[string] {
	options := make([]huh.Option[string], len(snap.Nodes))
	for i, meta := range snap.Nodes {
		glyph := card.StatusOffline
		if snap.IsOnline(meta.UUID) {
			glyph = card.StatusOnline
		}
		label := fmt.Sprintf("%s %s", glyph, meta.Name)
		if meta.Region != "" {
			label += fmt.Sprintf(" (%s)", meta.Region)
		}
		options[i] = huh.NewOption(label, meta.UUID)
	}
	return options
}

// writePicked renders the chosen node at wide layout and opens it, which
// prints the details route.
func writePicked(out io.Writer, a *app, snap *snapshot.Snapshot, uuid string, width int, now time.Time) error {
	meta, ok := snap.Find(uuid)
	if !ok {
		return errors.New(errors.ErrSnapshot,
			fmt.Sprintf("No node matches '%s'", uuid),
			"The snapshot may have changed while picking; try again.")
	}
	if width < card.WideMinWidth {
		width = card.WideMinWidth
	}

	nav := card.NavigatorFunc(func(route string) {
		fmt.Fprintln(out, card.MutedStyle.Render("→ "+route))
	})
	presenter := card.NewPresenter(a.loc, nav)

	fmt.Fprintln(out, presenter.Render(card.Node{
		Meta:   meta,
		Live:   snap.Telemetry(meta.UUID),
		Online: snap.IsOnline(meta.UUID),
	}, card.Options{Width: width, Now: now}))

	presenter.Open(meta.UUID)
	return nil
}

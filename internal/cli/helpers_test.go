package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/nodeboard/internal/config"
	"github.com/rileyhilliard/nodeboard/internal/i18n"
	"github.com/rileyhilliard/nodeboard/internal/logger"
	"github.com/rileyhilliard/nodeboard/internal/snapshot"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// testNow is the fixed clock the fixture expiries are relative to.
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const testNowFlag = "2026-03-10T12:00:00Z"

// fleetYAML has one busy paid node that expires in 10 days, one free
// offline node and one node that is not for sale and never reported.
const fleetYAML = `nodes:
  - uuid: 8f1c2d
    name: tokyo-1
    region: JP
    price: 12
    currency: "$"
    billing_cycle: 30
    expired_at: "2026-03-20T12:00:00Z"
    tags: "cn2<green>;ipv6"
    mem_total: 2000
    disk_total: 4000
    traffic_limit: 1000
    traffic_limit_type: sum
  - uuid: 3a9b7e
    name: fra-edge
    region: DE
    price: -1
    mem_total: 1000
    disk_total: 1000
  - uuid: c0ffee
    name: lab-box
    price: 0
live:
  8f1c2d:
    cpu: {usage: 91.5}
    ram: {used: 1000}
    disk: {used: 1000}
    network: {up: 10, down: 20, totalUp: 200, totalDown: 400}
  3a9b7e:
    cpu: {usage: 3}
    ram: {used: 100}
    disk: {used: 100}
online:
  - 8f1c2d
`

// calmYAML has a single node with nothing to report.
const calmYAML = `nodes:
  - uuid: calm01
    name: quiet
    price: 5
    currency: "$"
    billing_cycle: 30
    expired_at: "2026-09-01T00:00:00Z"
    mem_total: 1000
    disk_total: 1000
live:
  calm01:
    cpu: {usage: 10}
    ram: {used: 100}
    disk: {used: 100}
online:
  - calm01
`

// newTestApp writes content to a temporary snapshot file and wires an app
// around it.
func newTestApp(t *testing.T, content string) *app {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nodes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := config.DefaultConfig()
	cfg.Snapshot = path

	source := snapshot.NewFileSource(path)
	source.Logger = logger.NewBufferLogger()
	source.Now = func() time.Time { return testNow }

	return &app{
		cfg:    cfg,
		loc:    i18n.MustLoad("en"),
		source: source,
		log:    logger.Noop(),
	}
}

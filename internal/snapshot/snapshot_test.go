package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/nodeboard/internal/errors"
	"github.com/rileyhilliard/nodeboard/internal/logger"
	"github.com/rileyhilliard/nodeboard/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestSource(path string) (*FileSource, *logger.BufferLogger) {
	buf := logger.NewBufferLogger()
	return &FileSource{
		Path:   path,
		Logger: buf,
		Now:    func() time.Time { return fixedNow },
	}, buf
}

func TestFileSource_LoadYAML(t *testing.T) {
	src, logs := newTestSource(filepath.Join("testdata", "nodes.yaml"))

	snap, err := src.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Nodes, 3)
	assert.Equal(t, fixedNow, snap.LoadedAt)

	tokyo := snap.Nodes[0]
	assert.Equal(t, "tokyo-1", tokyo.Name)
	assert.Equal(t, node.TrafficLimitSum, tokyo.TrafficLimitType, "policy should be normalized")
	assert.Equal(t, int64(1099511627776), tokyo.TrafficLimit)

	live := snap.Telemetry("8f1c2d")
	require.NotNil(t, live)
	assert.Equal(t, 91.5, live.CPU.Usage)
	require.NotNil(t, live.Load)
	assert.Equal(t, 1.25, live.Load.Load1)
	assert.Equal(t, int64(322122547200), live.Network.TotalUp)

	fra := snap.Telemetry("3a9b7e")
	require.NotNil(t, fra)
	assert.Nil(t, fra.Load)
	assert.Equal(t, "disk smart warning", fra.Message)

	assert.Nil(t, snap.Telemetry("c0ffee"))
	assert.True(t, snap.IsOnline("8f1c2d"))
	assert.False(t, snap.IsOnline("3a9b7e"))
	assert.Equal(t, 1, snap.OnlineCount())

	assert.True(t, logs.Contains("warn", "whenever"), "bad expiry should be logged")
	assert.True(t, logs.Contains("debug", "ghost"), "unknown telemetry should be logged")
}

func TestFileSource_LoadJSON(t *testing.T) {
	src, _ := newTestSource(filepath.Join("testdata", "nodes.json"))

	snap, err := src.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Nodes, 1)
	assert.Equal(t, node.TrafficLimitUp, snap.Nodes[0].TrafficLimitType)
	assert.Equal(t, int64(800), snap.Telemetry("a1").Network.TotalUp)
	assert.True(t, snap.IsOnline("a1"))
}

func TestFileSource_DefaultCurrency(t *testing.T) {
	src, _ := newTestSource(filepath.Join("testdata", "nodes.yaml"))
	src.DefaultCurrency = "€"

	snap, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "$", snap.Nodes[0].Currency, "explicit currency wins")
	assert.Equal(t, "€", snap.Nodes[1].Currency)
}

func TestFileSource_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		src, _ := newTestSource(filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrSnapshot))
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("cancelled context", func(t *testing.T) {
		src, _ := newTestSource(filepath.Join("testdata", "nodes.yaml"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := src.Load(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("nodes: [uuid: {"), 0644))

		src, _ := newTestSource(path)
		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrSnapshot))
	})
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "missing uuid",
			data:    "nodes:\n  - name: nameless\n",
			wantErr: "has no uuid",
		},
		{
			name:    "duplicate uuid",
			data:    "nodes:\n  - uuid: a\n  - uuid: a\n",
			wantErr: "Duplicate node uuid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatYAML)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	snap, err := Parse([]byte(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, snap.Nodes)
	assert.Nil(t, snap.Telemetry("anything"))
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, formatFor("a.JSON", nil))
	assert.Equal(t, FormatJSON, formatFor("a.snapshot", []byte("  {\"nodes\": []}")))
	assert.Equal(t, FormatYAML, formatFor("a.yaml", []byte("nodes: []")))
}

func TestSnapshot_Find(t *testing.T) {
	snap := &Snapshot{Nodes: []node.Metadata{
		{UUID: "tokyo", Name: "first"},
		{UUID: "b", Name: "Tokyo"},
	}}

	n, ok := snap.Find("tokyo")
	require.True(t, ok)
	assert.Equal(t, "first", n.Name, "uuid match wins over name match")

	n, ok = snap.Find("TOKYO")
	require.True(t, ok)
	assert.Equal(t, "b", n.UUID)

	_, ok = snap.Find("missing")
	assert.False(t, ok)
}

func TestSnapshot_IsOnlineWithoutIndex(t *testing.T) {
	snap := &Snapshot{Online: []string{"x"}}
	assert.True(t, snap.IsOnline("x"))
	assert.False(t, snap.IsOnline("y"))

	var nilSnap *Snapshot
	assert.False(t, nilSnap.IsOnline("x"))
	assert.Nil(t, nilSnap.Telemetry("x"))
}

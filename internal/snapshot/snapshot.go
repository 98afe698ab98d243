// Package snapshot reads the node inventory and latest telemetry that some
// external agent writes to disk. nodeboard never talks to nodes itself.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rileyhilliard/nodeboard/internal/errors"
	"github.com/rileyhilliard/nodeboard/internal/logger"
	"github.com/rileyhilliard/nodeboard/internal/node"
	"gopkg.in/yaml.v3"
)

// Snapshot is an immutable view of all nodes at one point in time.
type Snapshot struct {
	Nodes  []node.Metadata            `yaml:"nodes" json:"nodes"`
	Live   map[string]*node.Telemetry `yaml:"live" json:"live"`
	Online []string                   `yaml:"online" json:"online"`

	// LoadedAt is when the snapshot was read, not when the agent wrote it.
	LoadedAt time.Time `yaml:"-" json:"-"`

	online map[string]bool
}

// Telemetry returns the live record for uuid, or nil if it never reported.
func (s *Snapshot) Telemetry(uuid string) *node.Telemetry {
	if s == nil || s.Live == nil {
		return nil
	}
	return s.Live[uuid]
}

// IsOnline reports whether uuid is listed as online.
func (s *Snapshot) IsOnline(uuid string) bool {
	if s == nil {
		return false
	}
	if s.online == nil {
		for _, id := range s.Online {
			if id == uuid {
				return true
			}
		}
		return false
	}
	return s.online[uuid]
}

// OnlineCount returns how many nodes in Nodes are online.
func (s *Snapshot) OnlineCount() int {
	count := 0
	for _, n := range s.Nodes {
		if s.IsOnline(n.UUID) {
			count++
		}
	}
	return count
}

// Find returns the node whose uuid or name matches ref. UUIDs win over names.
func (s *Snapshot) Find(ref string) (node.Metadata, bool) {
	for _, n := range s.Nodes {
		if n.UUID == ref {
			return n, true
		}
	}
	for _, n := range s.Nodes {
		if strings.EqualFold(n.Name, ref) {
			return n, true
		}
	}
	return node.Metadata{}, false
}

func (s *Snapshot) indexOnline() {
	s.online = make(map[string]bool, len(s.Online))
	for _, id := range s.Online {
		s.online[id] = true
	}
}

// Source produces snapshots.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// FileSource reads a snapshot from a YAML or JSON file on every Load.
type FileSource struct {
	Path string

	// DefaultCurrency fills in nodes that have no currency of their own.
	DefaultCurrency string

	Logger logger.Logger
	Now    func() time.Time
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{
		Path:   path,
		Logger: logger.NewEnvLogger("[snapshot]"),
		Now:    time.Now,
	}
}

// Load reads and validates the snapshot file.
func (f *FileSource) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSnapshot,
			"Snapshot load cancelled", "")
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrSnapshot,
				"Snapshot file not found: "+f.Path,
				"Point 'snapshot' in .nodeboard.yaml (or --snapshot) at the file your agent writes")
		}
		return nil, errors.WrapWithCode(err, errors.ErrSnapshot,
			"Cannot read snapshot file: "+f.Path,
			"Check file permissions")
	}

	snap, err := Parse(data, formatFor(f.Path, data))
	if err != nil {
		return nil, err
	}

	f.normalize(snap)

	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	snap.LoadedAt = now()

	f.log().Debug("loaded %d nodes (%d online) from %s", len(snap.Nodes), snap.OnlineCount(), f.Path)
	return snap, nil
}

func (f *FileSource) log() logger.Logger {
	if f.Logger == nil {
		return logger.Noop()
	}
	return f.Logger
}

// normalize fixes up fields that are tolerated in the file but not in the
// model, logging anything that will render differently than written.
func (f *FileSource) normalize(snap *Snapshot) {
	known := make(map[string]bool, len(snap.Nodes))
	for i := range snap.Nodes {
		n := &snap.Nodes[i]
		known[n.UUID] = true

		n.TrafficLimitType = node.ParseTrafficLimitType(string(n.TrafficLimitType))
		if n.Currency == "" && f.DefaultCurrency != "" {
			n.Currency = f.DefaultCurrency
		}
		if n.HasExpiryString() {
			if _, ok := n.Expiry(); !ok {
				f.log().Warn("node %s: ignoring unparseable expired_at %q", n.UUID, n.ExpiredAt)
			}
		}
	}

	for id := range snap.Live {
		if !known[id] {
			f.log().Debug("telemetry for unknown node %s ignored", id)
		}
	}
}

// Format is the encoding of a snapshot file.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// formatFor picks JSON for .json files or content that opens with '{',
// YAML otherwise.
func formatFor(path string, data []byte) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes and validates a snapshot.
func Parse(data []byte, format Format) (*Snapshot, error) {
	var snap Snapshot

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &snap)
	default:
		err = yaml.Unmarshal(data, &snap)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSnapshot,
			"Snapshot file is malformed",
			"Check the file against the documented nodes/live/online layout")
	}

	if err := validate(&snap); err != nil {
		return nil, err
	}
	snap.indexOnline()
	return &snap, nil
}

func validate(snap *Snapshot) error {
	seen := make(map[string]bool, len(snap.Nodes))
	for i, n := range snap.Nodes {
		if strings.TrimSpace(n.UUID) == "" {
			return errors.New(errors.ErrSnapshot,
				fmt.Sprintf("Node #%d (%q) has no uuid", i+1, n.Name),
				"Every node needs a unique uuid")
		}
		if seen[n.UUID] {
			return errors.New(errors.ErrSnapshot,
				fmt.Sprintf("Duplicate node uuid %q", n.UUID),
				"Every node needs a unique uuid")
		}
		seen[n.UUID] = true
	}
	return nil
}

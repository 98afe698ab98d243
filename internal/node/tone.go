package node

// Tone is a severity token. Renderers map it to a concrete color; nothing in
// this package knows about colors.
type Tone int

const (
	ToneNormal Tone = iota
	ToneElevated
	ToneWarning
	ToneCritical
	ToneMuted
)

// String returns the token name.
func (t Tone) String() string {
	switch t {
	case ToneNormal:
		return "normal"
	case ToneElevated:
		return "elevated"
	case ToneWarning:
		return "warning"
	case ToneCritical:
		return "critical"
	case ToneMuted:
		return "muted"
	default:
		return "unknown"
	}
}

// MarshalText encodes the tone as its name so JSON output stays readable.
func (t Tone) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

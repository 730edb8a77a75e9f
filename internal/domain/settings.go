package domain

import "encoding/json"

// GlidingMode controls how gliding sites appear in the output.
type GlidingMode string

const (
	GlidingExclude GlidingMode = "exclude"
	GlidingInclude GlidingMode = "include"
)

// Overlay selects a pre-rendered supplementary text block appended to
// the output.
type Overlay string

const (
	OverlayNone  Overlay = ""
	OverlayFL195 Overlay = "fl195"
	OverlayFL105 Overlay = "fl105"
	OverlayAtzDz Overlay = "atzdz"
)

// Settings is the user's export selection. It is persisted by the host
// between sessions, so unknown or absent fields must decode to defaults
// rather than fail.
type Settings struct {
	// Named extras, each matched against the dataset by exact name.
	// Stale names are silently ignored.
	Rat  []string `json:"rat,omitempty"`
	Loa  []string `json:"loa,omitempty"`
	Wave []string `json:"wave,omitempty"`

	Gliding GlidingMode `json:"gliding,omitempty" validate:"omitempty,oneof=exclude include"`
	Overlay Overlay     `json:"overlay,omitempty" validate:"omitempty,oneof=fl195 fl105 atzdz"`

	// ExcludeNotam drops features whose rule set is exactly {NOTAM}.
	ExcludeNotam bool `json:"exclude_notam,omitempty"`

	// AppendFrequencies adds an AF record per volume, taken from the
	// volume itself or the controlling radio service.
	AppendFrequencies bool `json:"append_frequencies,omitempty"`
}

// DefaultSettings is the selection used when the host supplies nothing:
// base airspace only, no extras, no overlay.
func DefaultSettings() Settings {
	return Settings{Gliding: GlidingExclude}
}

// DecodeSettings parses a stored settings document, tolerating legacy
// or partial records.
func DecodeSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	if s.Gliding == "" {
		s.Gliding = GlidingExclude
	}
	return s, nil
}

// SelectedRat reports whether the named RAT was chosen.
func (s Settings) SelectedRat(name string) bool { return contains(s.Rat, name) }

// SelectedLoa reports whether the named local agreement was chosen.
func (s Settings) SelectedLoa(name string) bool { return contains(s.Loa, name) }

// SelectedWave reports whether the named wave box was chosen.
func (s Settings) SelectedWave(name string) bool { return contains(s.Wave, name) }

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

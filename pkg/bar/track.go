package bar

import (
	"strings"

	"github.com/arthur-debert/ansiprint/pkg/errors"
)

// Track is the glyph drawn in the unfilled part of a bar.
type Track int

const (
	TrackBlank Track = iota
	TrackLight
	TrackMedium
	TrackHeavy
	TrackDot
	TrackLine
)

var tracks = [...]struct {
	name  string
	glyph string
}{
	TrackBlank:  {"blank", " "},
	TrackLight:  {"light", "░"},
	TrackMedium: {"medium", "▒"},
	TrackHeavy:  {"heavy", "▓"},
	TrackDot:    {"dot", "·"},
	TrackLine:   {"line", "─"},
}

// Glyph returns the track character. Out of range tracks draw blank.
func (t Track) Glyph() string {
	if t < 0 || int(t) >= len(tracks) {
		return tracks[TrackBlank].glyph
	}
	return tracks[t].glyph
}

func (t Track) String() string {
	if t < 0 || int(t) >= len(tracks) {
		return tracks[TrackBlank].name
	}
	return tracks[t].name
}

func (t Track) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Track) UnmarshalText(text []byte) error {
	v, err := ParseTrack(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Tracks lists every track in declaration order.
func Tracks() []Track {
	out := make([]Track, len(tracks))
	for i := range tracks {
		out[i] = Track(i)
	}
	return out
}

// ParseTrack accepts a track name, case-insensitively. "med" is accepted
// for medium.
func ParseTrack(s string) (Track, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "med" {
		return TrackMedium, nil
	}
	for i, t := range tracks {
		if t.name == name {
			return Track(i), nil
		}
	}
	return TrackBlank, errors.Newf(errors.ErrUnknownTrack, "unknown bar track %q", s).
		WithDetail("track", s)
}

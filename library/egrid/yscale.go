package egrid

import "github.com/goki/ki/kit"

// YScale is the scale of a subplot's y axis
type YScale int32

//go:generate stringer -type=YScale

var KiT_YScale = kit.Enums.AddEnum(YScaleN, kit.NotBitFlag, nil)

func (ev YScale) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *YScale) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// MarshalText and UnmarshalText allow lower-case names in config files
func (ev YScale) MarshalText() ([]byte, error) { return []byte(ev.String()), nil }
func (ev *YScale) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

// The y axis scales
const (
	// Linear is a linear y axis
	Linear YScale = iota

	// Log is a base-10 logarithmic y axis; non-positive values are not drawn
	Log

	YScaleN
)

package config

import "github.com/yourusername/winpos/internal/types"

// Config is the root configuration structure
type Config struct {
	Settings Settings        `yaml:"settings" json:"settings"`
	Profiles []ProfileConfig `yaml:"profiles,omitempty" json:"profiles,omitempty"`
}

// Settings contains global application settings
type Settings struct {
	LogLevel string `yaml:"logLevel,omitempty" json:"logLevel,omitempty"` // debug, info, warn, error
}

// ProfileConfig is a named geometry preset. Absent fields keep the
// window's current value, so a profile may fix only the position, only
// the size, or any mix.
type ProfileConfig struct {
	ID     string `yaml:"id" json:"id"`
	X      *int32 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      *int32 `yaml:"y,omitempty" json:"y,omitempty"`
	Width  *int32 `yaml:"width,omitempty" json:"width,omitempty"`
	Height *int32 `yaml:"height,omitempty" json:"height,omitempty"`
}

// Geometry converts the profile to the engine's override type
func (p ProfileConfig) Geometry() types.Geometry {
	return types.Geometry{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

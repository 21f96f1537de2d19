package config

// LineConfig customizes line naming and status classification
type LineConfig struct {
	// Colors adds to or overrides the built-in code -> color table.
	Colors        map[string]string `json:"colors,omitempty" yaml:"colors,omitempty"`
	HealthyMarker string            `json:"healthy_marker,omitempty" yaml:"healthy_marker,omitempty" validate:"required"`
}

// NewDefaultLineConfig creates default line configuration
func NewDefaultLineConfig() LineConfig {
	return LineConfig{
		Colors:        map[string]string{},
		HealthyMarker: DefaultHealthyMarker,
	}
}

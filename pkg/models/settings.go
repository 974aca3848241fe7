package models

// Settings represents the application configuration
type Settings struct {
	Output OutputSettings `yaml:"output"`
	Render RenderSettings `yaml:"render"`
}

// OutputSettings controls CLI output behavior
type OutputSettings struct {
	DefaultFormat string `yaml:"default_format"` // "text", "json" or "yaml"
	MarkupWidth   int    `yaml:"markup_width"`   // wrap width for markup display, 0 = no wrap
}

// RenderSettings controls preview rendering behavior
type RenderSettings struct {
	ErrorTolerant bool `yaml:"error_tolerant"`
	DisplayMode   bool `yaml:"display_mode"`
	Trusted       bool `yaml:"trusted"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			DefaultFormat: "text",
			MarkupWidth:   80,
		},
		Render: RenderSettings{
			ErrorTolerant: false,
			DisplayMode:   false,
			Trusted:       false,
		},
	}
}

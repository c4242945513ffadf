package config

// Theme defines the colors used when rendering the board tree
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent    string `yaml:"accent"` // Workspace headings
	Board     string `yaml:"board"`
	List      string `yaml:"list"`
	Card      string `yaml:"card"`
	Subtle    string `yaml:"subtle"` // Ids, counts, placeholders
	Error     string `yaml:"error"`
	TagBorder string `yaml:"tag_border"`
}

// DefaultTheme returns the default color scheme (purple accent)
func DefaultTheme() Theme {
	return Theme{
		Preset:    "default",
		Accent:    "#7D56F4",
		Board:     "#5A9FD4",
		List:      "#04B575",
		Card:      "#E0E0E0",
		Subtle:    "#626262",
		Error:     "#FF5F87",
		TagBorder: "#444444",
	}
}

// MonochromeTheme returns a black and white color scheme
func MonochromeTheme() Theme {
	return Theme{
		Preset:    "monochrome",
		Accent:    "#FFFFFF",
		Board:     "#E0E0E0",
		List:      "#C0C0C0",
		Card:      "#A0A0A0",
		Subtle:    "#808080",
		Error:     "#FFFFFF",
		TagBorder: "#606060",
	}
}

// GetPreset returns a preset theme by name, falling back to the default
func GetPreset(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// ApplyDefaults fills in missing color values using the preset as base
func (t *Theme) ApplyDefaults() {
	preset := GetPreset(t.Preset)

	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	if t.Accent == "" {
		t.Accent = preset.Accent
	}
	if t.Board == "" {
		t.Board = preset.Board
	}
	if t.List == "" {
		t.List = preset.List
	}
	if t.Card == "" {
		t.Card = preset.Card
	}
	if t.Subtle == "" {
		t.Subtle = preset.Subtle
	}
	if t.Error == "" {
		t.Error = preset.Error
	}
	if t.TagBorder == "" {
		t.TagBorder = preset.TagBorder
	}
}

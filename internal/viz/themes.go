package viz

// Theme is a color scheme: one color per body slot plus UI accents.
// Body colors are pushed onto the bodies each frame, so a theme switch
// takes effect immediately and survives resets.
type Theme struct {
	Name   string
	Bodies []string
	Accent string
	Muted  string
}

var themes = []Theme{
	{
		Name:   "classic",
		Bodies: []string{"#ffbf00", "#00ffff", "#ffffff"}, // amber, cyan, white
		Accent: "#ffbf00",
		Muted:  "#666666",
	},
	{
		Name:   "neon",
		Bodies: []string{"#ff00ff", "#00ffff", "#ffff00"},
		Accent: "#ff00ff",
		Muted:  "#555577",
	},
	{
		Name:   "retro",
		Bodies: []string{"#00ff00", "#00cc00", "#88ff88"},
		Accent: "#00ff00",
		Muted:  "#005500",
	},
}

// ThemeByName returns the named theme, falling back to the first.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// nextTheme cycles to the theme after t, wrapping around.
func nextTheme(t Theme) Theme {
	for i, candidate := range themes {
		if candidate.Name == t.Name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

package components

import "github.com/charmbracelet/lipgloss"

// ColourSet groups the colours of one semantic slot.
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes semantic colour slots shared by every view.
type Palette struct {
	Name    string
	Surface ColourSet
	Primary ColourSet
	Success ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// DarkPalette is the default palette.
func DarkPalette() Palette {
	return Palette{
		Name: "dark",
		Surface: ColourSet{
			Base:     "#0b1120",
			OnBase:   "#e5e7eb",
			Muted:    "#1f2937",
			Contrast: "#60a5fa",
		},
		Primary: ColourSet{
			Base:     "#8b5cf6",
			OnBase:   "#f5f3ff",
			Muted:    "#4c1d95",
			Contrast: "#c4b5fd",
		},
		Success: ColourSet{
			Base:     "#22c55e",
			OnBase:   "#052e16",
			Muted:    "#14532d",
			Contrast: "#86efac",
		},
		Danger: ColourSet{
			Base:     "#ef4444",
			OnBase:   "#fef2f2",
			Muted:    "#7f1d1d",
			Contrast: "#fca5a5",
		},
		Neutral: ColourSet{
			Base:     "#334155",
			OnBase:   "#cbd5e1",
			Muted:    "#64748b",
			Contrast: "#f8fafc",
		},
	}
}

// LightPalette is the light variant.
func LightPalette() Palette {
	return Palette{
		Name: "light",
		Surface: ColourSet{
			Base:     "#f9fafb",
			OnBase:   "#111827",
			Muted:    "#e5e7eb",
			Contrast: "#2563eb",
		},
		Primary: ColourSet{
			Base:     "#7c3aed",
			OnBase:   "#ffffff",
			Muted:    "#ddd6fe",
			Contrast: "#5b21b6",
		},
		Success: ColourSet{
			Base:     "#16a34a",
			OnBase:   "#ffffff",
			Muted:    "#bbf7d0",
			Contrast: "#166534",
		},
		Danger: ColourSet{
			Base:     "#dc2626",
			OnBase:   "#ffffff",
			Muted:    "#fecaca",
			Contrast: "#991b1b",
		},
		Neutral: ColourSet{
			Base:     "#cbd5e1",
			OnBase:   "#1f2937",
			Muted:    "#6b7280",
			Contrast: "#0f172a",
		},
	}
}

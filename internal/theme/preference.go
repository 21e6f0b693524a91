// Package theme persists the light/dark preference and applies it to a single
// UI binding.
package theme

import (
	"fmt"
	"strings"
)

// Preference is the colour scheme the UI renders with.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// Default is used when nothing valid has been persisted.
const Default = Dark

// Valid reports whether p is a known preference.
func (p Preference) Valid() bool {
	return p == Light || p == Dark
}

// Toggled returns the opposite preference. Unknown values toggle to Light,
// the opposite of Default.
func (p Preference) Toggled() Preference {
	if p == Light {
		return Dark
	}
	return Light
}

func (p Preference) String() string {
	return string(p)
}

// ParsePreference parses a case-insensitive preference name.
func ParsePreference(s string) (Preference, error) {
	p := Preference(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown theme %q (want %q or %q)", s, Light, Dark)
	}
	return p, nil
}

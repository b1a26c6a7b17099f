// Package styles holds the lipgloss styles of the console preview.
//
// Styles are declared in the embedded styles.yaml under semantic names and
// use adaptive colours that follow the terminal theme.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Border       string `yaml:"border,omitempty"`
	BorderColor  string `yaml:"borderColor,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

var defaultRegistry = mustLoad(embeddedStyles)

func mustLoad(data []byte) Registry {
	reg, err := Load(data)
	if err != nil {
		return Registry{}
	}
	return reg
}

// Load parses a styles document.
func Load(data []byte) (Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := make(Registry, len(config.Styles))
	for name, def := range config.Styles {
		reg[name] = buildStyle(def, colors)
	}
	return reg, nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}

	switch def.Border {
	case "rounded":
		style = style.Border(lipgloss.RoundedBorder())
	case "normal":
		style = style.Border(lipgloss.NormalBorder())
	case "double":
		style = style.Border(lipgloss.DoubleBorder())
	}
	if color, ok := colors[def.BorderColor]; ok {
		style = style.BorderForeground(color)
	}

	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}
	return style
}

// Get returns the named style, or an empty style when it is not defined.
func (r Registry) Get(name string) lipgloss.Style {
	if style, ok := r[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Get returns the named style from the embedded registry.
func Get(name string) lipgloss.Style {
	return defaultRegistry.Get(name)
}

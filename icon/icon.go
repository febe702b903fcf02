// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/clipdrop/clipdrop/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Variant is a family of glyphs.
type Variant string

const (
	Emoji   Variant = "emoji"
	Nerd    Variant = "nerd"
	Plain   Variant = "plain"
	Kaomoji Variant = "kaomoji"
	Squares Variant = "squares"
)

var variants = []Variant{Emoji, Nerd, Plain, Kaomoji, Squares}

// AvailableVariants lists variant names for completion and validation.
func AvailableVariants() []string {
	return lo.Map(variants, func(v Variant, _ int) string { return string(v) })
}

// Valid reports whether name is a known variant.
func Valid(name string) bool {
	return lo.Contains(variants, Variant(name))
}

// Current is the configured variant. Unknown values render as Plain.
func Current() Variant {
	v := Variant(viper.GetString(key.IconsVariant))
	if !lo.Contains(variants, v) {
		return Plain
	}
	return v
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) in(v Variant) string {
	switch v {
	case Emoji:
		return d.emoji
	case Nerd:
		return d.nerd
	case Kaomoji:
		return d.kaomoji
	case Squares:
		return d.squares
	default:
		return d.plain
	}
}

// Get renders i in the current variant.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.in(Current())
}

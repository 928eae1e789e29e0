package core

import "strings"

// BadgeColor is the semantic color tag a UI may attach to an option.
type BadgeColor string

const (
	Green  BadgeColor = "green"
	Red    BadgeColor = "red"
	Amber  BadgeColor = "amber"
	Blue   BadgeColor = "blue"
	Slate  BadgeColor = "slate"
	Purple BadgeColor = "purple"
)

// Option is one member of a closed, compile-time enumeration used for
// categorical cells. Value is the exact string stored in the sheet.
type Option struct {
	Value string     `json:"value"`
	Label string     `json:"label"`
	Glyph string     `json:"emoji,omitempty"`
	Color BadgeColor `json:"color,omitempty"`
}

// Categories enumerates the expense categories. Canonical values are
// unique within the set; declaration order is the matching tie-break.
var Categories = []Option{
	{Value: "🅿️ Parking", Label: "Parking", Glyph: "🅿️", Color: Blue},
	{Value: "⛽️ Essence", Label: "Essence", Glyph: "⛽️", Color: Red},
	{Value: "⚙️ Software", Label: "Software", Glyph: "⚙️", Color: Amber},
	{Value: "🍽️ Repas", Label: "Repas", Glyph: "🍽️", Color: Amber},
	{Value: "📦 Autre", Label: "Autre", Glyph: "📦", Color: Slate},
	{Value: "🗃️ Assets", Label: "Assets", Glyph: "🗃️", Color: Slate},
	{Value: "🤝🏼 Commission", Label: "Commission", Glyph: "🤝🏼", Color: Blue},
	{Value: "🏛️ URSSAF", Label: "URSSAF", Glyph: "🏛️", Color: Green},
	{Value: "🧰 Matériel", Label: "Matériel", Glyph: "🧰", Color: Slate},
	{Value: "🚗 Transport", Label: "Transport", Glyph: "🚗", Color: Red},
	{Value: "🛡️ Assurance", Label: "Assurance", Glyph: "🛡️", Color: Purple},
}

// Types enumerates the expense types.
var Types = []Option{
	{Value: "📌 Type", Label: "Type", Glyph: "📌"},
	{Value: "⏳ Amortissement", Label: "Amortissement", Glyph: "⏳"},
	{Value: "🔁 Abonnement", Label: "Abonnement", Glyph: "🔁"},
}

// MatchOption resolves a raw categorical cell value against an option set.
// Tiers, first match wins:
//  1. exact canonical value,
//  2. exact "glyph space label" composite,
//  3. case-insensitive plain label.
//
// Sheet cells may hold the canonical form, a composite a client wrote
// back, or a hand-retyped label; all three must land on the same Option.
// Returns nil when no tier matches.
func MatchOption(raw string, options []Option) *Option {
	n := canonical(raw)
	if n == "" {
		return nil
	}
	for i := range options {
		if canonical(options[i].Value) == n {
			return &options[i]
		}
	}
	for i := range options {
		composite := strings.TrimSpace(options[i].Glyph + " " + options[i].Label)
		if canonical(composite) == n {
			return &options[i]
		}
	}
	lower := strings.ToLower(n)
	for i := range options {
		if strings.ToLower(canonical(options[i].Label)) == lower {
			return &options[i]
		}
	}
	return nil
}

// MatchCategory resolves raw against the category set.
func MatchCategory(raw string) *Option { return MatchOption(raw, Categories) }

// MatchType resolves raw against the type set.
func MatchType(raw string) *Option { return MatchOption(raw, Types) }

// canonical evens out the formatting drift seen in manually edited cells:
// emoji variation selectors, NBSP, doubled spaces.
func canonical(s string) string {
	s = strings.ReplaceAll(s, "\uFE0F", "")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	return strings.Join(strings.Fields(s), " ")
}

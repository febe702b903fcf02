// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Warn
	Link
	Download
	External
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "\uf00c",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "\uf00d",
		plain:   "✗",
		kaomoji: "(╯°□°)╯",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf110",
		plain:   "…",
		kaomoji: "(・_・;)",
		squares: "🟦",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "\uf071",
		plain:   "!",
		kaomoji: "(°ロ°)",
		squares: "🟨",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "\uf0c1",
		plain:   "~",
		kaomoji: "(¬‿¬)",
		squares: "🟫",
	},
	Download: {
		emoji:   "📥",
		nerd:    "\uf019",
		plain:   "↓",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "⬇️",
	},
	External: {
		emoji:   "🌐",
		nerd:    "\uf08e",
		plain:   "⇗",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "↗️",
	},
}

// Package theme maps theme and font selections to the concrete visual
// tokens shared by every renderer.
package theme

// Mode is the ambient color scheme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Tokens is the resolved visual vocabulary for one theme+font+mode
// selection. All renderers consume the same tokens so color semantics
// agree across surfaces.
type Tokens struct {
	Primary          string
	HeaderBackground string
	Border           string
	Text             string
	MutedText        string
	Background       string
	FontFamily       string
}

type palette struct {
	light Tokens
	dark  Tokens
}

const (
	ThemeDefault      = "default"
	ThemeClassicBlue  = "classic-blue"
	ThemeEmeraldGreen = "emerald-green"
	ThemeCrimsonRed   = "crimson-red"
	ThemeSlateGray    = "slate-gray"
	ThemeDeepPurple   = "deep-purple"
	ThemeMonochrome   = "monochrome"
)

const (
	FontDefault = "default"
	FontSerif   = "serif"
	FontMono    = "mono"
)

var palettes = map[string]palette{
	ThemeDefault:      buildPalette("#4f46e5", "#eef2ff"),
	ThemeClassicBlue:  buildPalette("#1d4ed8", "#eff6ff"),
	ThemeEmeraldGreen: buildPalette("#047857", "#ecfdf5"),
	ThemeCrimsonRed:   buildPalette("#b91c1c", "#fef2f2"),
	ThemeSlateGray:    buildPalette("#475569", "#f8fafc"),
	ThemeDeepPurple:   buildPalette("#6d28d9", "#f5f3ff"),
	ThemeMonochrome:   buildPalette("#111827", "#f3f4f6"),
}

var fontStacks = map[string]string{
	FontDefault: `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`,
	FontSerif:   `Georgia, "Times New Roman", Times, serif`,
	FontMono:    `"SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace`,
}

func buildPalette(primary, headerBG string) palette {
	return palette{
		light: Tokens{
			Primary:          primary,
			HeaderBackground: headerBG,
			Border:           "#e3e8ee",
			Text:             "#1a1f36",
			MutedText:        "#697386",
			Background:       "#ffffff",
		},
		dark: Tokens{
			Primary:          primary,
			HeaderBackground: "#1f2937",
			Border:           "#374151",
			Text:             "#f9fafb",
			MutedText:        "#9ca3af",
			Background:       "#111827",
		},
	}
}

// KnownTheme reports whether name is part of the closed theme enumeration.
func KnownTheme(name string) bool {
	_, ok := palettes[name]
	return ok
}

// KnownFont reports whether name is part of the closed font enumeration.
func KnownFont(name string) bool {
	_, ok := fontStacks[name]
	return ok
}

// Resolve is a pure function from a theme selection to concrete tokens.
// Unknown theme or font names fall back to the defaults; callers that care
// about typos should check KnownTheme/KnownFont and log.
func Resolve(themeName, fontName string, mode Mode) Tokens {
	p, ok := palettes[themeName]
	if !ok {
		p = palettes[ThemeDefault]
	}

	tokens := p.light
	if mode == ModeDark {
		tokens = p.dark
	}

	stack, ok := fontStacks[fontName]
	if !ok {
		stack = fontStacks[FontDefault]
	}
	tokens.FontFamily = stack
	return tokens
}

// ResolveForExport resolves tokens for exported documents, which always
// render on a light background regardless of the ambient UI mode.
func ResolveForExport(themeName, fontName string) Tokens {
	return Resolve(themeName, fontName, ModeLight)
}

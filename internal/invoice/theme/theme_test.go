package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_IsPure(t *testing.T) {
	a := Resolve(ThemeEmeraldGreen, FontSerif, ModeDark)
	b := Resolve(ThemeEmeraldGreen, FontSerif, ModeDark)

	assert.Equal(t, a, b)
}

func TestResolve_UnknownKeysFallBackToDefault(t *testing.T) {
	got := Resolve("neon-zebra", "wingdings", ModeLight)
	want := Resolve(ThemeDefault, FontDefault, ModeLight)

	assert.Equal(t, want, got)
	assert.False(t, KnownTheme("neon-zebra"))
	assert.False(t, KnownFont("wingdings"))
}

func TestResolve_DarkModeChangesSurfaceTokens(t *testing.T) {
	light := Resolve(ThemeClassicBlue, FontDefault, ModeLight)
	dark := Resolve(ThemeClassicBlue, FontDefault, ModeDark)

	assert.Equal(t, light.Primary, dark.Primary)
	assert.NotEqual(t, light.Background, dark.Background)
	assert.NotEqual(t, light.Text, dark.Text)
}

func TestResolveForExport_AlwaysLight(t *testing.T) {
	got := ResolveForExport(ThemeCrimsonRed, FontMono)

	assert.Equal(t, Resolve(ThemeCrimsonRed, FontMono, ModeLight), got)
	assert.Equal(t, "#ffffff", got.Background)
}

func TestResolve_EveryThemeHasBothModes(t *testing.T) {
	names := []string{
		ThemeDefault, ThemeClassicBlue, ThemeEmeraldGreen, ThemeCrimsonRed,
		ThemeSlateGray, ThemeDeepPurple, ThemeMonochrome,
	}
	for _, name := range names {
		assert.True(t, KnownTheme(name), name)
		assert.NotEmpty(t, Resolve(name, FontDefault, ModeLight).Primary, name)
		assert.NotEmpty(t, Resolve(name, FontDefault, ModeDark).Background, name)
	}
}

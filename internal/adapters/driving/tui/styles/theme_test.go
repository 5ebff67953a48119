package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Warning))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
	assert.NotEmpty(t, string(theme.Surface))
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	accents := []lipgloss.Color{theme.Primary, theme.Secondary, theme.Warning, theme.Error}

	seen := make(map[string]bool)
	for _, c := range accents {
		s := string(c)
		assert.False(t, seen[s], "duplicate accent: %s", s)
		seen[s] = true
	}
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_HeadingRendersText(t *testing.T) {
	out := DefaultStyles().Heading.Render("Calculating User Stats...")

	assert.Contains(t, out, "Calculating User Stats...")
	assert.Greater(t, lipgloss.Height(out), 1, "heading should be framed")
}

func TestStyles_TableStyles(t *testing.T) {
	ts := DefaultStyles().TableStyles()

	assert.Contains(t, ts.Header.Render("City"), "City")
	assert.Contains(t, ts.Selected.Render("row"), "row")
}

func TestStyles_TableStylesUseSelected(t *testing.T) {
	s := DefaultStyles()
	ts := s.TableStyles()

	assert.Equal(t, s.Selected.GetBackground(), ts.Selected.GetBackground())
	assert.Equal(t, s.Selected.GetForeground(), ts.Selected.GetForeground())
	assert.Equal(t, s.Selected.GetBold(), ts.Selected.GetBold())
}

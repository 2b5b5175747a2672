package ui

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termchess/config"
)

func listKey(cc *ColorConfigUI, k tcell.Key) {
	cc.colorList.InputHandler()(tcell.NewEventKey(k, 0, tcell.ModNone), func(tview.Primitive) {})
}

func TestColorConfigPicksAndSaves(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	xdg.Reload()

	cfg := config.DefaultConfig
	var done bool
	var saveErr error
	cc := NewColorConfig(&cfg, func(err error) {
		done = true
		saveErr = err
	})

	listKey(cc, tcell.KeyDown)
	light := lightColors[cc.colorList.GetCurrentItem()].code
	assert.Equal(t, light, cc.selectedLight)
	assert.Equal(t, config.DefaultConfig.Theme.Colors.LightSquare, cfg.Theme.Colors.LightSquare, "nothing is stored before confirming")

	listKey(cc, tcell.KeyEnter)
	assert.Equal(t, light, cfg.Theme.Colors.LightSquare)
	assert.True(t, cc.editingDark)
	assert.False(t, done)

	listKey(cc, tcell.KeyDown)
	dark := darkColors[cc.colorList.GetCurrentItem()].code
	listKey(cc, tcell.KeyEnter)
	assert.Equal(t, dark, cfg.Theme.Colors.DarkSquare)
	assert.False(t, cc.editingDark)
	require.True(t, done)
	require.NoError(t, saveErr)

	saved, err := config.InitConfig()
	require.NoError(t, err)
	assert.Equal(t, light, saved.Theme.Colors.LightSquare)
	assert.Equal(t, dark, saved.Theme.Colors.DarkSquare)
}

func TestColorConfigPreview(t *testing.T) {
	cfg := config.DefaultConfig
	cc := NewColorConfig(&cfg, func(error) {})
	screen := newScreen(t)

	listKey(cc, tcell.KeyDown)
	cc.Flex().SetRect(0, 0, 80, 24)
	cc.Flex().Draw(screen)

	// the preview box starts right of the 30 column list
	_, _, style, _ := screen.GetContent(30+2+1, 1)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(cc.selectedLight), bg)
	_, _, style, _ = screen.GetContent(30+2+cellWidth+1, 1)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.PaletteColor(cc.selectedDark), bg)

	cc.ToggleMode()
	assert.True(t, cc.editingDark)
	assert.Equal(t, len(darkColors), cc.colorList.GetItemCount())
}

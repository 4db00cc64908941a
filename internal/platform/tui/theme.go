package tui

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Theme contains all visual styles for the board and its chrome.
type Theme struct {
	tiles config.ThemeConfig

	// HUD styles
	HUDTitle core.Style
	HUDLabel core.Style
	HUDValue core.Style
	HUDWon   core.Style

	// Overlay styles
	OverlayBorder core.Style
	OverlayTitle  core.Style
	OverlayText   core.Style

	// Toast styles
	ToastSuccess core.Style
	ToastError   core.Style
	ToastInfo    core.Style

	// Marker on the tile spawned by the last move
	SpawnMarker rune
}

// NewTheme returns the default chrome with tile colors from cfg.
func NewTheme(cfg config.ThemeConfig) Theme {
	return Theme{
		tiles: cfg,

		HUDTitle: core.Style{Fg: "#a855f7", Bold: true},
		HUDLabel: core.Style{Fg: "245"},
		HUDValue: core.Style{Fg: "255", Bold: true},
		HUDWon:   core.Style{Fg: "226", Bold: true},

		OverlayBorder: core.Style{Fg: "255", Bg: "236"},
		OverlayTitle:  core.Style{Fg: "226", Bg: "236", Bold: true},
		OverlayText:   core.Style{Fg: "255", Bg: "236"},

		ToastSuccess: core.Style{Fg: "#052e16", Bg: "#4ade80", Bold: true},
		ToastError:   core.Style{Fg: "#fafafa", Bg: "#dc2626", Bold: true},
		ToastInfo:    core.Style{Fg: "#171717", Bg: "#e5e7eb"},

		SpawnMarker: '•',
	}
}

// Tile returns the style for a tile. Tiles created by a merge on the last
// move are bold.
func (t Theme) Tile(tile grid.Tile) core.Style {
	c := t.tiles.TileColor(tile.Value)
	return core.Style{Fg: c.Fg, Bg: c.Bg, Bold: tile.Merged()}
}

// Toast returns the style for a toast kind.
func (t Theme) Toast(kind toastKind) core.Style {
	switch kind {
	case toastSuccess:
		return t.ToastSuccess
	case toastError:
		return t.ToastError
	default:
		return t.ToastInfo
	}
}

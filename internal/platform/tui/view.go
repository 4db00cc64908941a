package tui

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
)

const (
	tileWidth  = 8 // Width of each tile
	tileHeight = 3 // Height of each tile
	tileGap    = 1 // Space between tiles
	hudHeight  = 3

	boardWidth  = grid.Size*tileWidth + (grid.Size+1)*tileGap
	boardHeight = grid.Size*tileHeight + (grid.Size+1)*tileGap

	// Smallest screen that fits the HUD, board and one toast line.
	minScreenWidth  = boardWidth
	minScreenHeight = hudHeight + 1 + boardHeight + 2
)

// boardRect returns where the board sits on a screen of the given size.
func boardRect(w int) core.Rect {
	return core.NewRect((w-boardWidth)/2, hudHeight+1, boardWidth, boardHeight)
}

// drawGame draws the whole game state to the screen. anim may be nil.
func drawGame(dst *core.Screen, snap session.Snapshot, theme Theme, notes []toast, anim *animation) {
	dst.Clear()

	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		drawTooSmall(dst)
		return
	}

	board := boardRect(dst.Width())

	drawHUD(dst, snap, theme, board)
	drawBoard(dst, snap, theme, board, anim)
	drawToasts(dst, theme, notes, board)

	if snap.GameOver {
		maxStr := fmt.Sprintf("Max tile: %d", snap.MaxTile)
		hint := "R: new game"
		if snap.CanUndo {
			hint = "U: undo  R: new game"
		}
		drawOverlay(dst, theme, board, "GAME OVER", maxStr, hint)
	}
}

// drawTooSmall shows a "window too small" message.
func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.Style{})
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenWidth, minScreenHeight), core.Style{})
}

// drawHUD draws the title, score and best score above the board.
func drawHUD(dst *core.Screen, snap session.Snapshot, theme Theme, board core.Rect) {
	title := "2048"
	dst.DrawStyledText(board.X+(board.W-len(title))/2, 0, title, theme.HUDTitle)

	x := board.X
	x = drawLabelValue(dst, theme, x, 1, "Score ", strconv.Itoa(snap.Score))
	drawLabelValue(dst, theme, x+3, 1, "Best ", strconv.Itoa(snap.Best))

	maxStr := "Max " + strconv.Itoa(snap.MaxTile)
	dst.DrawStyledText(board.Right()-len(maxStr), 1, maxStr, theme.HUDLabel)

	if snap.Won {
		won := "★ 2048 reached ★"
		dst.DrawStyledText(board.X+(board.W-utf8.RuneCountInString(won))/2, 2, won, theme.HUDWon)
	}
}

func drawLabelValue(dst *core.Screen, theme Theme, x, y int, label, value string) int {
	dst.DrawStyledText(x, y, label, theme.HUDLabel)
	x += len(label)
	dst.DrawStyledText(x, y, value, theme.HUDValue)
	return x + len(value)
}

// tileRect returns the screen area of the tile at p.
func tileRect(board core.Rect, p grid.Pos) core.Rect {
	return core.NewRect(
		board.X+tileGap+p.Col*(tileWidth+tileGap),
		board.Y+tileGap+p.Row*(tileHeight+tileGap),
		tileWidth,
		tileHeight,
	)
}

// drawBoard draws the 4x4 grid with tiles. While tiles slide only the
// empty cells and the travelling tiles are drawn.
func drawBoard(dst *core.Screen, snap session.Snapshot, theme Theme, board core.Rect, anim *animation) {
	empty := theme.Tile(grid.Tile{})
	sliding := anim.sliding()

	for row := range grid.Size {
		for col := range grid.Size {
			p := grid.Pos{Row: row, Col: col}
			tile, _ := snap.Grid.At(p)
			r := tileRect(board, p)

			if sliding || tile.Empty() {
				dst.FillRect(r, ' ', empty)
				continue
			}

			st := theme.Tile(tile)
			if anim.popping(p) {
				dst.FillRect(r, ' ', empty)
				r = core.NewRect(r.X+1, r.Y+1, r.W-2, 1)
			}
			drawTile(dst, r, tile.Value, st)

			if snap.Spawned != nil && *snap.Spawned == p {
				dst.SetStyled(r.X, r.Y, theme.SpawnMarker, st)
			}
		}
	}

	if !sliding {
		return
	}
	// Tiles consumed by a merge are drawn last so they land on top.
	t := anim.progress()
	for _, merged := range []bool{false, true} {
		for _, s := range anim.slides {
			if s.merged != merged {
				continue
			}
			from, to := tileRect(board, s.from), tileRect(board, s.to)
			r := core.NewRect(lerp(from.X, to.X, t), lerp(from.Y, to.Y, t), tileWidth, tileHeight)
			drawTile(dst, r, s.value, theme.Tile(grid.Tile{Value: s.value}))
		}
	}
}

// drawTile fills r and centers the value in it.
func drawTile(dst *core.Screen, r core.Rect, value int, st core.Style) {
	dst.FillRect(r, ' ', st)
	valStr := strconv.Itoa(value)
	padLeft := core.Max((r.W-len(valStr))/2, 0)
	dst.DrawStyledText(r.X+padLeft, r.Y+r.H/2, valStr, st)
}

// drawToasts draws notifications under the board, newest first.
func drawToasts(dst *core.Screen, theme Theme, notes []toast, board core.Rect) {
	y := board.Bottom() + 1
	for i := len(notes) - 1; i >= 0 && y < dst.Height(); i-- {
		text := " " + notes[i].text + " "
		dst.DrawTextCentered(y, text, theme.Toast(notes[i].kind))
		y++
	}
}

// drawOverlay draws a centered box with text over the board.
func drawOverlay(dst *core.Screen, theme Theme, board core.Rect, title string, lines ...string) {
	all := append([]string{title}, lines...)
	maxLen := 0
	for _, line := range all {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := board.Centered(maxLen+4, len(all)+2)
	dst.FillRect(box, ' ', theme.OverlayText)
	dst.DrawBox(box, theme.OverlayBorder)

	cx, _ := box.Center()
	for i, line := range all {
		st := theme.OverlayText
		if i == 0 {
			st = theme.OverlayTitle
		}
		dst.DrawStyledText(cx-utf8.RuneCountInString(line)/2, box.Y+1+i, line, st)
	}
}

package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// boardSize returns the rendered board dimensions in characters.
func (g *Game) boardSize() (w, h int) {
	rules := g.model.Rules()
	return rules.Cols*cellWidth + 1, rules.Rows*cellHeight + 1
}

// minScreenSize returns the smallest screen that fits HUD and board.
func (g *Game) minScreenSize() (w, h int) {
	boardW, boardH := g.boardSize()
	return core.Max(boardW, 30), boardH + hudHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.model == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	board := core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score, undo budget and mode.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := strconv.Itoa(g.model.Rules().WinTile)
	dst.DrawColoredText(board.X+(board.W-len(title))/2, 0, title, core.TileColor(g.model.Rules().WinTile))

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.model.Score()))

	undoStr := fmt.Sprintf("Undos: %d", g.model.UndosRemaining())
	dst.DrawText(core.Max(board.Right()-len(undoStr), board.X), 1, undoStr)

	info := fmt.Sprintf("Classic  Moves: %d", g.moves)
	if g.mode == ModeEndless {
		info = fmt.Sprintf("Endless  Max: %d", g.model.MaxTile())
	}
	dst.DrawText(board.X+(board.W-len(info))/2, 2, info)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	rules := g.model.Rules()
	rows, cols := rules.Rows, rules.Cols

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	tiles := g.model.Tiles()
	for r, row := range tiles {
		for c, val := range row {
			if val == Empty {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)
			color := core.TileColor(val)
			if g.lastSpawn != nil && g.lastSpawn.Pos == (Pos{Row: r, Col: c}) {
				color = core.ColorGray
			}

			dst.DrawColoredText(board.X+c*cellWidth+1+padLeft, board.Y+r*cellHeight+1, valStr, color)
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.won && g.mode == ModeClassic:
		g.drawOverlay(dst, board, "YOU WIN!", fmt.Sprintf("Score: %d", g.model.Score()), "Press R to restart")
	case g.gameOver:
		g.drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Max tile: %d", g.model.MaxTile()), "Press R to restart")
	case g.bannerLeft > 0:
		g.drawOverlay(dst, board, fmt.Sprintf("%d reached!", g.model.Rules().WinTile), "Keep going")
	}
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := board.CenteredIn(maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | U: Undo | N: New | P: Pause | Q: Quit"
}

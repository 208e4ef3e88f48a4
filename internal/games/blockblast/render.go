package blockblast

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-blockblast/internal/core"
	bb "github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
)

const (
	cellWidth = 2 // characters per board cell
	slotWidth = 12
	minWidth  = 44
	minHeight = 22
)

// palette maps engine block colors to screen colors.
var palette = map[bb.Color]core.Color{
	bb.ColorRed:     core.ColorRed,
	bb.ColorOrange:  core.ColorOrange,
	bb.ColorYellow:  core.ColorYellow,
	bb.ColorGreen:   core.ColorGreen,
	bb.ColorMint:    core.ColorMint,
	bb.ColorCyan:    core.ColorCyan,
	bb.ColorBlue:    core.ColorBlue,
	bb.ColorPurple:  core.ColorPurple,
	bb.ColorViolet:  core.ColorViolet,
	bb.ColorMagenta: core.ColorMagenta,
	bb.ColorPink:    core.ColorPink,
	bb.ColorStone:   core.ColorStone,
}

// screenColor returns the display color for a cell tag.
func screenColor(tag bb.Tag) core.Color {
	if tag.Gold {
		return core.ColorGold
	}
	if c, ok := palette[tag.Color]; ok {
		return c
	}
	return core.ColorText
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	frame := g.boardFrame()
	g.renderHUD(dst, frame)
	g.renderBoard(dst, frame)
	g.renderBatch(dst, frame.Bottom()+1)
	g.renderFooter(dst)
	g.renderOverlays(dst, frame)
}

// boardFrame is the bordered board area, centered under the HUD.
func (g *Game) boardFrame() core.Rect {
	cfg := g.session.Config()
	w := cfg.Cols*cellWidth + 2
	return core.NewRect((g.screenW-w)/2, 3, w, cfg.Rows+2)
}

func (g *Game) renderError(dst *core.Screen) {
	msg := "Configuration error"
	if g.loadErr != nil {
		msg = g.loadErr.Error()
	}
	dst.DrawTextCentered(dst.Height()/2, msg)
	dst.DrawTextCentered(dst.Height()/2+1, "Press Q to quit")
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score line and inventory.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	dst.DrawTextCentered(0, g.Title())

	sc := g.session.Score()
	dst.DrawText(frame.X, 1, fmt.Sprintf("Score: %d", sc.Score))
	best := fmt.Sprintf("Best: %d", max(g.highScore, sc.HighScore))
	dst.DrawText(frame.Right()-len(best), 1, best)

	info := fmt.Sprintf("Tier: %s", g.session.Tier().Name)
	if g.mode == bb.ModeStage {
		info = fmt.Sprintf("Stage %d  %s", g.session.Stage(), info)
	}
	if sc.Combo > 1 {
		info += fmt.Sprintf("  Combo x%d", sc.Combo)
	}
	dst.DrawTextCentered(2, info)

	// Items to the right of the board.
	x := frame.Right() + 2
	dst.DrawTextColored(x, frame.Y+1, "Items", core.ColorText)
	inv := g.session.Inventory()
	for i, kind := range bb.AllItemKinds() {
		color := core.ColorText
		if !g.session.ItemReady(kind) {
			color = core.ColorMuted
		}
		if g.arming && g.armed == kind {
			color = core.ColorWarning
		}
		dst.DrawTextColored(x, frame.Y+2+i, fmt.Sprintf("%-9s %d", kind, inv[kind]), color)
	}
}

// renderBoard draws the bordered grid, the ghost piece and item targets.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	board := g.session.Board()
	dst.DrawBox(frame, core.ColorMuted)
	inner := frame.Inner()

	ghost, ghostOK := g.ghostCells(board)
	marks := g.targetCells(board)
	lineCells := make(map[bb.Coord]bool)
	if ghostOK {
		if pv, err := g.session.Preview(g.slot, g.cursor.Row, g.cursor.Col); err == nil && pv.Valid {
			for _, c := range board.LineCells(pv.Lines) {
				lineCells[c] = true
			}
		}
	}

	for r := range board.Rows {
		for c := range board.Cols {
			x := inner.X + c*cellWidth
			y := inner.Y + r
			pos := bb.At(r, c)
			cell := board.Get(r, c)

			switch {
			case marks[pos]:
				dst.DrawTextColored(x, y, "><", core.ColorWarning)
			case ghost[pos] != nil:
				if ghostOK {
					dst.DrawTextColored(x, y, "▒▒", screenColor(*ghost[pos]))
				} else {
					dst.DrawTextColored(x, y, "░░", core.ColorMuted)
				}
			case cell.Filled && lineCells[pos]:
				dst.DrawTextColored(x, y, "▓▓", core.ColorHighlight)
			case cell.Filled:
				dst.DrawTextColored(x, y, "██", screenColor(cell.Tag))
			case lineCells[pos]:
				dst.DrawTextColored(x, y, "··", core.ColorHighlight)
			default:
				dst.DrawTextColored(x, y, "· ", core.ColorMuted)
			}
		}
	}
}

// ghostCells returns the board cells covered by the selected block at the
// cursor and whether it fits there.
func (g *Game) ghostCells(board *bb.Board) (map[bb.Coord]*bb.Tag, bool) {
	cells := make(map[bb.Coord]*bb.Tag)
	if g.arming {
		return cells, false
	}
	blk, ok := g.session.Batch().Block(g.slot)
	if !ok {
		return cells, false
	}
	tag := blk.Tag()
	for _, off := range blk.Piece.Cells() {
		pos := g.cursor.Add(off.Row, off.Col)
		if board.InBounds(pos.Row, pos.Col) {
			cells[pos] = &tag
		}
	}
	return cells, bb.CanPlace(board, blk.Piece, g.cursor.Row, g.cursor.Col)
}

// targetCells returns the cells the armed item would hit.
func (g *Game) targetCells(board *bb.Board) map[bb.Coord]bool {
	marks := make(map[bb.Coord]bool)
	if !g.arming {
		return marks
	}
	var cells []bb.Coord
	switch g.armed {
	case bb.ItemBomb:
		cells = board.AreaCells(g.cursor.Row, g.cursor.Col, bb.BombRadius)
	case bb.ItemLaser:
		cells = board.CrossCells(g.cursor.Row, g.cursor.Col)
	}
	for _, c := range cells {
		marks[c] = true
	}
	return marks
}

// renderBatch draws the three slots side by side.
func (g *Game) renderBatch(dst *core.Screen, y int) {
	batch := g.session.Batch()
	totalW := bb.BatchSize * slotWidth
	startX := (g.screenW - totalW) / 2

	for slot := range bb.BatchSize {
		x := startX + slot*slotWidth
		label := fmt.Sprintf("[%d]", slot+1)
		color := core.ColorMuted
		if slot == g.slot && !g.arming {
			label = fmt.Sprintf(">%d<", slot+1)
			color = core.ColorAccent
		}
		dst.DrawTextColored(x, y, label, color)

		blk, ok := batch.Block(slot)
		if !ok {
			continue
		}
		tag := blk.Tag()
		for _, off := range blk.Piece.Cells() {
			dst.DrawTextColored(x+off.Col*cellWidth, y+1+off.Row, "██", screenColor(tag))
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	if g.message != "" {
		dst.DrawTextCentered(g.screenH-2, g.message)
	}
	help := "arrows move  1-3/tab pick  enter place  x bomb  l laser  h hourglass"
	if g.screenW < len(help) {
		help = "move/pick/place  x l h items"
	}
	dst.DrawTextColored((g.screenW-len(help))/2, g.screenH-1, help, core.ColorMuted)
}

// renderOverlays draws round-end overlays.
func (g *Game) renderOverlays(dst *core.Screen, frame core.Rect) {
	centerX, centerY := frame.Center()

	if g.stageCleared {
		g.drawOverlay(dst, centerX, centerY,
			fmt.Sprintf("STAGE %d CLEARED", g.session.Stage()),
			fmt.Sprintf("Score: %d", g.session.Score().Score),
			"Enter for next stage")
		return
	}
	if g.session.IsGameOver() {
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.session.Score().Score),
			"Press R to restart")
	}
}

// drawOverlay draws a boxed, centered block of text.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}
	box := core.CenteredRect(centerX, centerY, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAccent)
	for i, line := range lines {
		pad := strings.Repeat(" ", (maxLen-len(line))/2)
		dst.DrawTextColored(box.X+2, box.Y+1+i, pad+line, core.ColorText)
	}
}

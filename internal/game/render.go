package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Board layout. Each cell is two columns wide so the board looks square.
const (
	cellW     = 2
	hudHeight = 1
	boardW    = snake.BoardSize*cellW + 1 + 2 // cells, trailing gap, frame
	boardH    = snake.BoardSize + 2

	// MinWidth and MinHeight are the smallest screen the board fits on.
	MinWidth  = boardW
	MinHeight = boardH + hudHeight
)

type playerStyle struct {
	body, head core.Color
}

// styles returns the colors of player i.
func (g *Game) styles(i int) playerStyle {
	var p config.PlayerConfig
	switch {
	case g.mode == ModeSolo:
		p = g.settings.Config.Solo
	case len(g.settings.Config.Versus) > 0:
		p = g.settings.Config.Versus[i%len(g.settings.Config.Versus)]
	}
	body, head := p.Colors()
	return playerStyle{body: body, head: head}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	switch {
	case g.err != nil:
		renderOverlay(dst, "Cannot start "+g.Title(), g.err.Error())
		return
	case g.arena == nil:
		return
	case g.tooSmall:
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
		return
	}

	theme := g.settings.Config.Theme
	border, ok := core.ParseColor(theme.BorderColor)
	if !ok {
		border = core.ColorGray
	}
	frame := core.NewRect((dst.Width()-boardW)/2, hudHeight, boardW, boardH)
	dst.DrawBox(frame, border)

	cell := func(p snake.Point) (int, int) {
		return frame.X + 1 + cellW*p.X + 1, frame.Y + 1 + p.Y
	}

	food := g.arena.Food()
	if snake.InBounds(food) {
		fc, ok := core.ParseColor(theme.FoodColor)
		if !ok {
			fc = core.ColorRed
		}
		x, y := cell(food)
		dst.SetWithColor(x, y, config.Glyph(theme.FoodGlyph, '*'), fc)
	}

	headGlyph := config.Glyph(theme.HeadGlyph, '@')
	bodyGlyph := config.Glyph(theme.BodyGlyph, 'o')
	deadGlyph := config.Glyph(theme.DeadGlyph, 'x')

	for i, s := range g.arena.Snakes() {
		st := g.styles(i)
		segs := s.Segments()
		// Draw tail first so the head stays visible on overlaps.
		for j := len(segs) - 1; j >= 0; j-- {
			x, y := cell(segs[j])
			switch {
			case !s.Alive() && j == 0:
				dst.SetWithColor(x, y, deadGlyph, core.ColorGray)
			case !s.Alive():
				dst.SetWithColor(x, y, bodyGlyph, core.ColorGray)
			case j == 0:
				dst.SetWithColor(x, y, headGlyph, st.head)
			default:
				dst.SetWithColor(x, y, bodyGlyph, st.body)
			}
		}
	}

	switch {
	case g.State().GameOver:
		renderOverlay(dst, g.resultLine(), "Press R to restart")
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	var b strings.Builder
	b.WriteString(" " + g.Title())

	switch {
	case g.arena == nil:
	case g.show != nil:
		b.WriteString(" - " + g.show.Scenario().Name)
	case g.mode == ModeSolo:
		s := g.arena.Snake(0)
		fmt.Fprintf(&b, "  Score: %d  Length: %d", s.Score(), s.Len())
	default:
		for i, s := range g.arena.Snakes() {
			status := ""
			if !s.Alive() {
				status = " (dead)"
			}
			fmt.Fprintf(&b, "  P%d: %d%s", i+1, s.Score(), status)
		}
	}

	dst.DrawText(0, 0, b.String())
	if g.arena != nil && g.show == nil {
		for i := 0; i < g.arena.Players(); i++ {
			g.markHUD(dst, b.String(), i)
		}
	}
}

// markHUD colors the "Pn" label of player i in the player's color.
func (g *Game) markHUD(dst *core.Screen, hud string, i int) {
	label := fmt.Sprintf("P%d:", i+1)
	if g.mode == ModeSolo {
		label = "Score:"
	}
	idx := strings.Index(hud, label)
	if idx < 0 {
		return
	}
	dst.DrawTextColor(idx, 0, label, g.styles(i).head)
}

// resultLine describes how the game ended.
func (g *Game) resultLine() string {
	if g.mode == ModeSolo {
		return fmt.Sprintf("Game Over - Score: %d", g.arena.Snake(0).Score())
	}
	if w := g.arena.Winner(); w >= 0 {
		return fmt.Sprintf("Player %d wins!", w+1)
	}
	return "Draw!"
}

// renderOverlay draws a centered two-line message box, no wider than the
// screen.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	box := core.CenteredRect(dst.Width(), dst.Height(), w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	drawCentered(dst, box, box.Y+1, line1)
	drawCentered(dst, box, box.Y+3, line2)
}

// drawCentered writes text on row y, centered on the box and never left of it.
func drawCentered(dst *core.Screen, box core.Rect, y int, text string) {
	cx, _ := box.Center()
	x := core.Clamp(cx-len([]rune(text))/2, box.X, box.Right())
	dst.DrawText(x, y, text)
}

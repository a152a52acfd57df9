package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/rollball/internal/core"
	"github.com/vovakirdan/rollball/internal/games/rollball"
)

// Glyphs for the top-down view. Every tile is two cells wide.
const (
	ballGlyph        = '●'
	collectibleGlyph = '◆'
	specialGlyph     = '★'
	obstacleGlyph    = '▲'
	platformGlyph    = '='
	teleporterGlyph  = '◎'
	boostGlyph       = '»'
	slowGlyph        = '«'
	timeGlyph        = '⌛'
	lifeGlyph        = '♥'
	multiplierGlyph  = '×'
	shieldGlyph      = '◊'
)

var (
	colorText      = core.RGB(230, 230, 230)
	colorDim       = core.RGB(140, 140, 140)
	colorBall      = core.RGB(255, 255, 255)
	colorShielded  = core.RGB(80, 220, 255)
	colorDanger    = core.RGB(255, 70, 70)
	colorGold      = core.RGB(255, 215, 0)
	colorObstacle  = core.RGB(200, 40, 40)
	colorPlatform  = core.RGB(170, 170, 190)
	colorTeleport  = core.RGB(220, 90, 255)
	colorBoost     = core.RGB(60, 230, 90)
	colorSlow      = core.RGB(255, 150, 40)
	colorLife      = core.RGB(255, 90, 120)
	colorMultiply  = core.RGB(255, 240, 90)
	colorHUDBanner = core.RGB(255, 255, 180)
)

// hudRows is the number of status lines above the field.
const hudRows = 2

// followRadius and firstPersonRadius bound the viewport, in tiles from the ball.
const (
	followRadius      = 10
	firstPersonRadius = 4
)

// viewport is the window of grid cells drawn on screen.
type viewport struct {
	i0, j0     int // lowest visible cell
	cols, rows int
}

// computeViewport fits the grid into the screen, centering on the ball when
// the whole grid does not fit or the camera is zoomed in.
func computeViewport(snap rollball.Snapshot, w, h int) viewport {
	cols := min(snap.Grid.SizeX, (w-2)/2)
	rows := min(snap.Grid.SizeY, h-hudRows-2)

	switch snap.Camera {
	case rollball.CameraFollow:
		cols = min(cols, 2*followRadius+1)
		rows = min(rows, 2*followRadius+1)
	case rollball.CameraFirstPerson:
		cols = min(cols, 2*firstPersonRadius+1)
		rows = min(rows, 2*firstPersonRadius+1)
	}
	cols, rows = max(cols, 0), max(rows, 0)

	center := snap.CellAt(snap.Ball.Pos)
	return viewport{
		i0:   core.Clamp(center.I-cols/2, 0, max(snap.Grid.SizeX-cols, 0)),
		j0:   core.Clamp(center.J-rows/2, 0, max(snap.Grid.SizeY-rows, 0)),
		cols: cols,
		rows: rows,
	}
}

// screenPos maps a cell to the screen column/row of its left half,
// relative to the field origin. North is up.
func (v viewport) screenPos(c rollball.Cell) (int, int, bool) {
	di, dj := c.I-v.i0, c.J-v.j0
	if di < 0 || di >= v.cols || dj < 0 || dj >= v.rows {
		return 0, 0, false
	}
	return di * 2, v.rows - 1 - dj, true
}

// DrawSnapshot renders a session snapshot into the screen buffer.
func DrawSnapshot(s *core.Screen, snap rollball.Snapshot, message string) {
	s.Clear()
	w, h := s.Width(), s.Height()

	v := computeViewport(snap, w, h)
	if v.cols < 3 || v.rows < 3 {
		s.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	drawHUD(s, snap, message)

	fieldW, fieldH := v.cols*2+2, v.rows+2
	ox := (w - fieldW) / 2
	oy := hudRows
	drawField(s, snap, v, ox+1, oy+1)

	pal := snap.Theme.Palette()
	box := core.NewRect(ox, oy, fieldW, fieldH)
	s.DrawBox(box)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			if y == box.Y || y == box.Bottom()-1 || x == box.X || x == box.Right()-1 {
				c := s.GetCell(x, y)
				c.FG = pal.Wall
				s.SetCell(x, y, c)
			}
		}
	}

	drawOverlay(s, snap)
}

func drawHUD(s *core.Screen, snap rollball.Snapshot, message string) {
	lives := strings.Repeat(string(lifeGlyph), min(snap.Lives, 10))
	line := fmt.Sprintf(" ROLLBALL  Score %d  Hi %d  Lives %s  Level %d/%d  Speed x%.2f  [%s|%s]",
		snap.Score, snap.HighScore, lives, snap.Level, snap.MaxLevel, snap.SpeedMultiplier,
		snap.Theme, snap.Camera)
	drawText(s, 0, 0, line, colorHUDBanner)

	var parts []string
	if e := snap.Effect(rollball.EffectSpeedBoost); e.Active {
		parts = append(parts, fmt.Sprintf("BOOST %.1fs", e.Remaining))
	}
	if e := snap.Effect(rollball.EffectSlowTrap); e.Active {
		parts = append(parts, fmt.Sprintf("SLOW %.1fs", e.Remaining))
	}
	if e := snap.Effect(rollball.EffectMultiplier); e.Active {
		parts = append(parts, fmt.Sprintf("x%d %.1fs", snap.ScoreFactor, e.Remaining))
	}
	if e := snap.Effect(rollball.EffectShield); e.Active {
		parts = append(parts, fmt.Sprintf("SHIELD %.1fs", e.Remaining))
	}
	left := snap.Entities.SpecialsLeft()
	parts = append(parts, fmt.Sprintf("items %d  specials %d", len(snap.Entities.Collectibles), left))

	status := " " + strings.Join(parts, "  ")
	color := colorDim
	if snap.Dwell.ShowTimer {
		status += fmt.Sprintf("  dwell %.1f/%.0fs", snap.Dwell.Elapsed, snap.Dwell.Limit)
		if snap.Dwell.Elapsed > snap.Dwell.Limit*0.6 {
			color = colorDanger
		}
	}
	if message != "" {
		status += "  " + message
	}
	drawText(s, 0, 1, status, color)
}

func drawField(s *core.Screen, snap rollball.Snapshot, v viewport, fx, fy int) {
	pal := snap.Theme.Palette()

	for dj := range v.rows {
		for di := range v.cols {
			c := rollball.Cell{I: v.i0 + di, J: v.j0 + dj}
			x, y, _ := v.screenPos(c)
			bg := pal.Floor1
			if (c.I+c.J)%2 == 1 {
				bg = pal.Floor2
			}
			if snap.IsHazard(c) {
				bg = pal.Hole
			}
			s.SetCell(fx+x, fy+y, core.Cell{Rune: ' ', BG: bg})
			s.SetCell(fx+x+1, fy+y, core.Cell{Rune: ' ', BG: bg})
		}
	}

	put := func(pos core.Vec3, glyph rune, fg core.Color) {
		x, y, ok := v.screenPos(snap.CellAt(pos))
		if ok {
			s.SetColored(fx+x, fy+y, glyph, fg)
		}
	}

	e := snap.Entities
	for _, c := range e.Collectibles {
		put(c.Pos, collectibleGlyph, c.Tint)
	}
	for _, sp := range e.Specials {
		if !sp.Collected {
			put(sp.Pos, specialGlyph, colorGold)
		}
	}
	for _, p := range e.SpeedBoosts {
		if p.Active {
			put(p.Pos, boostGlyph, colorBoost)
		}
	}
	for _, p := range e.SlowTraps {
		if p.Active {
			put(p.Pos, slowGlyph, colorSlow)
		}
	}
	for _, p := range e.TimeBonuses {
		if p.Active {
			put(p.Pos, timeGlyph, colorText)
		}
	}
	for _, p := range e.Lives {
		if p.Active {
			put(p.Pos, lifeGlyph, colorLife)
		}
	}
	for _, p := range e.Multipliers {
		if p.Active {
			put(p.Pos, multiplierGlyph, colorMultiply)
		}
	}
	for _, p := range e.Shields {
		if !p.Collected {
			put(p.Pos, shieldGlyph, colorShielded)
		}
	}
	for _, t := range e.Teleporters {
		put(t.Pos, teleporterGlyph, colorTeleport)
	}
	for _, p := range e.Platforms {
		drawPlatform(s, snap, v, p, fx, fy)
	}
	for _, o := range e.Obstacles {
		put(o.Pos, obstacleGlyph, colorObstacle)
	}

	ballColor := colorBall
	if snap.Effect(rollball.EffectShield).Active {
		ballColor = colorShielded
	}
	if snap.Dwell.ShowTimer && snap.Dwell.Elapsed > snap.Dwell.Limit*0.6 {
		ballColor = colorDanger
	}
	put(snap.Ball.Pos, ballGlyph, ballColor)
}

// drawPlatform marks every cell the platform's footprint covers.
func drawPlatform(s *core.Screen, snap rollball.Snapshot, v viewport, p rollball.Platform, fx, fy int) {
	lo := snap.CellAt(p.Pos.Sub(p.HalfSize))
	hi := snap.CellAt(p.Pos.Add(p.HalfSize))
	for i := lo.I; i <= hi.I; i++ {
		for j := lo.J; j <= hi.J; j++ {
			x, y, ok := v.screenPos(rollball.Cell{I: i, J: j})
			if !ok {
				continue
			}
			s.SetColored(fx+x, fy+y, platformGlyph, colorPlatform)
			s.SetColored(fx+x+1, fy+y, platformGlyph, colorPlatform)
		}
	}
}

func drawOverlay(s *core.Screen, snap rollball.Snapshot) {
	var lines []string
	switch snap.Phase {
	case rollball.PhaseMenu:
		lines = []string{
			"R O L L B A L L",
			"",
			"Collect every item, grab the stars,",
			"avoid holes and never stand still.",
			"",
			fmt.Sprintf("High score: %d", snap.HighScore),
			"",
			"enter start   h help   q quit",
		}
	case rollball.PhasePaused:
		lines = []string{"PAUSED", "", "p resume   r restart   m menu"}
	case rollball.PhaseGameOver:
		lines = []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score %d   Level %d", snap.Score, snap.Level),
			"",
			"r restart   m menu   q quit",
		}
	case rollball.PhaseWin:
		lines = []string{
			"YOU WIN!",
			"",
			fmt.Sprintf("Final score %d", snap.Score),
			"",
			"r play again   m menu   q quit",
		}
	default:
		return
	}
	drawPanel(s, lines)
}

// drawPanel draws a boxed, centered block of text on top of the field.
func drawPanel(s *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW, boxH := width+4, len(lines)+2
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2

	s.DrawRect(core.NewRect(x, y, boxW, boxH), ' ')
	s.DrawBox(core.NewRect(x, y, boxW, boxH))
	for i, l := range lines {
		lx := x + (boxW-len([]rune(l)))/2
		drawText(s, lx, y+1+i, l, colorText)
	}
}

func drawText(s *core.Screen, x, y int, text string, fg core.Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, fg)
		i++
	}
}

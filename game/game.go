package game

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/flickcap/assets"
	"github.com/meghashyamc/flickcap/bottlecap"
	"github.com/meghashyamc/flickcap/config"
	"github.com/meghashyamc/flickcap/geometry"
	"github.com/meghashyamc/flickcap/logger"
)

const bannerDuration = 2 * time.Second

var (
	backgroundColor = color.RGBA{20, 20, 24, 255}
	tableColor      = color.RGBA{25, 95, 60, 255}
	bannerColor     = color.RGBA{255, 210, 60, 255}
)

type Game struct {
	cfg         *config.Config
	table       *Table
	caps        []*capEntity
	picker      *picker
	input       *pointerInput
	grabbed     *capEntity
	grabSource  pointerSource
	records     *RecordKeeper
	flicks      int
	lastFlick   bottlecap.FlickStats
	bannerTimer *Timer
	showBanner  bool
	debug       bool
	logger      logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	assets.Load()
	log := logger.NewWithLevel(cfg.GetLogLevel())

	store, err := openRecordStore(cfg.GetAppName())
	if err != nil {
		log.Warn("best flick will not be saved", "err", err)
	}
	records := NewRecordKeeper(store, log)
	records.Load()

	g, err := newGame(
		cfg.GetWindowWidth(),
		cfg.GetWindowHeight(),
		cfg.GetCapCount(),
		cfg.GetCapSize(),
		capConfig(cfg),
		records,
		log,
	)
	if err != nil {
		log.Error("failed to create game", "err", err)
		return nil, err
	}
	g.cfg = cfg

	g.logger.Info("game initialized", "caps", len(g.caps), "best_flick", records.Best().Distance)
	return g, nil
}

func newGame(width, height, capCount int, capSize float64, capCfg bottlecap.Config, records *RecordKeeper, log logger.Logger) (*Game, error) {
	table := NewTable(width, height)
	g := &Game{
		table:       table,
		picker:      newPicker(width, height),
		input:       &pointerInput{},
		records:     records,
		bannerTimer: NewTimer(bannerDuration),
		logger:      log,
	}

	for i := 0; i < capCount; i++ {
		c, err := bottlecap.New(uuid.NewString(), capCfg, table, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create cap %d: %w", i, err)
		}
		c.SetSize(geometry.Vector{X: capSize, Y: capSize})
		c.SetSettleHandler(g.onSettle)

		e := newCapEntity(c, spawnPoint(i, capCount, capSize, float64(height)))
		g.caps = append(g.caps, e)
		g.picker.Add(e)
	}

	return g, nil
}

// capConfig reads the cap tunables, falling back to the stock tuning
func capConfig(cfg *config.Config) bottlecap.Config {
	defaults := bottlecap.DefaultConfig()
	return bottlecap.Config{
		GlideFactor:     cfg.GetGlideFactor(defaults.GlideFactor),
		MinVelocity:     cfg.GetMinVelocity(defaults.MinVelocity),
		FlickPower:      cfg.GetFlickPower(defaults.FlickPower),
		MaxDragDistance: cfg.GetMaxDragDistance(defaults.MaxDragDistance),
		BounceDamping:   cfg.GetBounceDamping(defaults.BounceDamping),
		ArrowDistance:   cfg.GetArrowDistance(defaults.ArrowDistance),
	}
}

// spawnPoint lines caps up across the lower half of the table, in local coordinates
func spawnPoint(i, count int, size, height float64) geometry.Vector {
	return geometry.Vector{
		X: (float64(i) - float64(count-1)/2) * size * 2,
		Y: height / 4,
	}
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())

	g.handleKeys()
	for _, sample := range g.input.Poll() {
		g.handlePointer(sample)
	}
	g.step(dt)

	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
		g.logger.Debug("debug overlay toggled", "enabled", g.debug)
	}
}

func (g *Game) handlePointer(sample pointerSample) {
	ev := bottlecap.PointerEvent{Position: sample.position}

	switch sample.phase {
	case pointerDown:
		if g.grabbed != nil {
			return
		}
		hit := g.picker.Pick(sample.position)
		if hit == nil {
			return
		}
		ev.Hit = hit.cap
		if hit.Grab(ev) {
			g.grabbed = hit
			g.grabSource = sample.source
			g.picker.Raise(hit)
		}

	case pointerMove:
		if g.grabbed != nil && g.grabSource == sample.source {
			g.grabbed.cap.PointerMove(ev)
		}

	case pointerUp:
		if g.grabbed != nil && g.grabSource == sample.source {
			g.grabbed.cap.PointerUp(ev)
			g.grabbed = nil
		}
	}
}

// step advances every cap by dt seconds
func (g *Game) step(dt float64) {
	for _, e := range g.caps {
		e.Update(dt)
	}
	g.picker.Sync()

	if g.showBanner {
		g.bannerTimer.Update(dt)
		if g.bannerTimer.IsReady() {
			g.showBanner = false
		}
	}
}

func (g *Game) onSettle(stats bottlecap.FlickStats) {
	g.flicks++
	g.lastFlick = stats

	best, err := g.records.Submit(stats)
	if err != nil {
		g.logger.Warn("failed to save best flick", "err", err)
	}
	if best {
		g.logger.Info("new best flick", "distance", stats.Distance, "bounces", stats.Bounces)
		g.bannerTimer.Reset()
		g.showBanner = true
	}
}

func (g *Game) Reset() {
	g.logger.Debug("resetting caps")
	for _, e := range g.caps {
		e.Reset()
	}
	g.grabbed = nil
	g.picker.Sync()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	frame, ok := g.table.Frame()
	if !ok {
		return
	}

	r := frame.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()), tableColor, false)

	for _, e := range g.drawOrder() {
		e.Draw(screen, frame)
	}

	if g.debug {
		g.drawCollisionRectangles(screen, frame)
	}

	g.drawHUD(screen, frame)
}

// drawOrder lists caps bottom to top
func (g *Game) drawOrder() []*capEntity {
	order := slices.Clone(g.caps)
	slices.SortFunc(order, func(a, b *capEntity) int {
		return cmp.Compare(g.picker.Layer(a), g.picker.Layer(b))
	})
	return order
}

func (g *Game) drawHUD(screen *ebiten.Image, frame bottlecap.Frame) {
	x, y := frame.Rect.Min.X+20, frame.Rect.Min.Y+30

	lines := []string{
		fmt.Sprintf("Flicks: %d", g.flicks),
		g.lastFlickText(),
		g.records.BestText(),
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*30)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, assets.HUDFont, op)
	}

	// Draw instructions
	instructionText := "Drag a cap back and let go to flick it. R resets, D shows bounds"
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, frame.Rect.Max.Y-30)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, instructionText, assets.HUDFont, op)

	if g.showBanner {
		center := frame.Rect.Center()
		bannerOp := &text.DrawOptions{}
		bannerOp.GeoM.Translate(center.X, center.Y-120)
		bannerOp.PrimaryAlign = text.AlignCenter
		bannerOp.ColorScale.ScaleWithColor(bannerColor)
		text.Draw(screen, "NEW BEST!", assets.BannerFont, bannerOp)
	}
}

func (g *Game) lastFlickText() string {
	if g.flicks == 0 {
		return "Last Flick: -"
	}
	return fmt.Sprintf("Last Flick: %.0f px (%s)", g.lastFlick.Distance, bouncesText(g.lastFlick.Bounces))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if g.table.Resize(outsideWidth, outsideHeight) {
		g.picker.Resize(outsideWidth, outsideHeight)
		g.logger.Debug("layout changed", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) drawCollisionRectangles(screen *ebiten.Image, frame bottlecap.Frame) {
	// Draw table bounds in blue
	drawRectangleOutline(screen, frame.Rect, color.RGBA{0, 0, 255, 255})

	// Draw cap extents in green, red while grabbed
	for _, e := range g.caps {
		ext, ok := e.cap.WorldExtent()
		if !ok || !e.cap.Active() {
			continue
		}
		col := color.RGBA{0, 255, 0, 255}
		if e.cap.Dragging() {
			col = color.RGBA{255, 0, 0, 255}
		}
		drawRectangleOutline(screen, ext, col)
	}
}

func drawRectangleOutline(screen *ebiten.Image, rect geometry.Rect, col color.Color) {
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Width()), float32(rect.Height()), 1, col, false)
}

package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pancam/common"
	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
	"github.com/milk9111/pancam/ecs/entity"
	"github.com/milk9111/pancam/ecs/system"
	"github.com/milk9111/pancam/input"
	"github.com/milk9111/pancam/prefabs"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

type GameOptions struct {
	CameraPrefab string
	InputPrefab  string
	Debug        bool
}

type Game struct {
	opts GameOptions

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     ecs.Entity
	camera    ecs.Entity
	spawn     prefabs.CameraSpec

	focus     *system.FocusScript
	focusName string
	watcher   *prefabs.Watcher

	hud         *HUD
	ui          *ebitenui.UI
	clipboardOK bool

	width, height int
}

func NewGame(opts GameOptions) (*Game, error) {
	spec, err := prefabs.LoadCameraSpec(opts.CameraPrefab)
	if err != nil {
		return nil, err
	}
	inputSpec, err := prefabs.LoadInputSpec(opts.InputPrefab)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:   opts,
		world:  ecs.NewWorld(),
		spawn:  spec,
		width:  int(inputSpec.Viewport.Width),
		height: int(inputSpec.Viewport.Height),
	}

	if g.input, err = entity.NewInput(g.world, inputSpec.Viewport.Width, inputSpec.Viewport.Height); err != nil {
		return nil, err
	}
	if g.camera, err = entity.NewCamera(g.world, spec); err != nil {
		return nil, err
	}

	var suppressor system.InputSuppressor
	if name := inputSpec.Focus.Script; name != "" {
		g.focus, err = system.LoadFocusScript(name)
		if err != nil {
			return nil, err
		}
		g.focusName = filepath.Base(name)
		suppressor = g.focus
	}

	systems := append([]ecs.System{input.NewSource()}, system.NewPanCamSystems(suppressor)...)
	g.scheduler = ecs.NewScheduler(systems...)

	if info, err := os.Stat(prefabs.DiskDir); err == nil && info.IsDir() {
		dirs := []string{prefabs.DiskDir}
		if scripts := filepath.Join(prefabs.DiskDir, "scripts"); isDir(scripts) {
			dirs = append(dirs, scripts)
		}
		if g.watcher, err = prefabs.NewWatcher(dirs...); err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	g.hud = NewHUD(g)
	g.ui = g.hud.UI()
	return g, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.applyReloads()

	x, y := ebiten.CursorPosition()
	if focus, ok := ecs.Get(g.world, g.input, component.FocusComponent); ok {
		focus.UIHovered = g.hud.Hovered(x, y)
	}
	g.ui.Update()

	g.scheduler.Update(g.world)

	for _, ev := range g.world.Events().Drain() {
		if !g.opts.Debug {
			continue
		}
		if data, ok := ev.Data.(ecs.CameraEvent); ok {
			log.Printf("pancam: entity=%s %s scale=%.5f target=%.5f", data.Entity, ev.Type, data.Scale, data.Target)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyPose()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetZoom()
	}

	g.hud.Refresh()
	return nil
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for _, err := range g.watcher.PollErrors() {
		log.Printf("prefabs: watcher: %v", err)
	}
	for _, name := range g.watcher.Poll() {
		base := filepath.Base(name)
		switch {
		case prefabs.IsSpecFile(name) && base == filepath.Base(g.opts.CameraPrefab):
			spec, err := prefabs.LoadCameraSpec(g.opts.CameraPrefab)
			if err != nil {
				log.Printf("prefabs: reload %s: %v", base, err)
				continue
			}
			n, err := entity.ApplyCameraSpec(g.world, spec)
			if err != nil {
				log.Printf("prefabs: reload %s: %v", base, err)
				continue
			}
			g.spawn = spec
			if g.opts.Debug {
				log.Printf("prefabs: reloaded %s into %d camera(s)", base, n)
			}
		case prefabs.IsScriptFile(name) && g.focus != nil && base == g.focusName:
			src, err := prefabs.LoadScript(base)
			if err == nil {
				err = g.focus.Reload(src)
			}
			if err != nil {
				log.Printf("prefabs: reload %s: %v", base, err)
				continue
			}
			if g.opts.Debug {
				log.Printf("prefabs: reloaded %s", base)
			}
		}
	}
}

// cameraView returns the live camera components, or false once the camera
// entity is gone.
func (g *Game) cameraView() (*component.PanCamState, *component.OrthographicProjection, *component.Transform, bool) {
	st, okS := ecs.Get(g.world, g.camera, component.PanCamStateComponent)
	proj, okP := ecs.Get(g.world, g.camera, component.OrthographicProjectionComponent)
	tr, okT := ecs.Get(g.world, g.camera, component.TransformComponent)
	return st, proj, tr, okS && okP && okT
}

func (g *Game) poseString() (string, error) {
	_, proj, tr, ok := g.cameraView()
	if !ok {
		return "", errors.New("no camera")
	}
	return fmt.Sprintf("x=%.3f y=%.3f scale=%.5f", tr.Translation.X, tr.Translation.Y, proj.Scale), nil
}

func (g *Game) copyPose() {
	pose, err := g.poseString()
	if err != nil {
		log.Printf("clipboard: %v", err)
		return
	}
	if !g.clipboardOK {
		log.Printf("clipboard: unavailable, pose %s", pose)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(pose))
	if g.opts.Debug {
		log.Printf("clipboard: copied %s", pose)
	}
}

// resetZoom re-runs the spawn animation from the current scale to the
// prefab's target zoom.
func (g *Game) resetZoom() {
	st, proj, _, ok := g.cameraView()
	if !ok {
		return
	}
	target := g.spawn.State.TargetZoom
	if target <= 0 {
		target = proj.Scale
	}
	*st = component.NewPanCamState(proj.Scale, target)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x12, G: 0x14, B: 0x18, A: 0xff})

	cfg, okC := ecs.Get(g.world, g.camera, component.PanCamConfigComponent)
	_, proj, tr, ok := g.cameraView()
	if ok && okC {
		vp := component.Viewport{Width: float64(screen.Bounds().Dx()), Height: float64(screen.Bounds().Dy())}
		g.drawGrid(screen, proj, tr, vp)
		g.drawBounds(screen, cfg, proj, tr, vp)
	}

	g.ui.Draw(screen)
}

// worldToScreen maps a world point to window pixels for the camera pose.
func worldToScreen(p cp.Vector, proj *component.OrthographicProjection, tr *component.Transform, vp component.Viewport) (float32, float32) {
	ppu := proj.PixelsPerUnit
	if ppu <= 0 {
		ppu = 1
	}
	k := ppu / proj.Scale
	x := (p.X-tr.Translation.X)*k + vp.Width/2
	y := vp.Height/2 - (p.Y-tr.Translation.Y)*k
	return float32(x), float32(y)
}

const minGridPixels = 24.0

func (g *Game) drawGrid(screen *ebiten.Image, proj *component.OrthographicProjection, tr *component.Transform, vp component.Viewport) {
	if vp.Empty() || proj.Scale <= 0 {
		return
	}
	rect := proj.VisibleRect(tr.Translation, vp)
	pixelsPerWorld := vp.Width / (rect.R - rect.L)

	// Smallest power of ten that keeps lines minGridPixels apart.
	step := math.Pow(10, math.Ceil(math.Log10(minGridPixels/pixelsPerWorld)))
	// Fade minor lines in as they spread out.
	fade := common.Clamp01((step*pixelsPerWorld - minGridPixels) / (minGridPixels * 4))
	minor := color.NRGBA{R: 0x40, G: 0x44, B: 0x4c, A: uint8(common.Lerp(40, 200, fade))}
	major := colornames.Slategray

	for x := math.Floor(rect.L/step) * step; x <= rect.R; x += step {
		clr := color.Color(minor)
		if math.Mod(math.Abs(x), step*10) < step/2 {
			clr = major
		}
		x0, y0 := worldToScreen(cp.Vector{X: x, Y: rect.B}, proj, tr, vp)
		x1, y1 := worldToScreen(cp.Vector{X: x, Y: rect.T}, proj, tr, vp)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)
	}
	for y := math.Floor(rect.B/step) * step; y <= rect.T; y += step {
		clr := color.Color(minor)
		if math.Mod(math.Abs(y), step*10) < step/2 {
			clr = major
		}
		x0, y0 := worldToScreen(cp.Vector{X: rect.L, Y: y}, proj, tr, vp)
		x1, y1 := worldToScreen(cp.Vector{X: rect.R, Y: y}, proj, tr, vp)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)
	}

	ox, oy := worldToScreen(cp.Vector{}, proj, tr, vp)
	vector.StrokeLine(screen, ox, 0, ox, float32(vp.Height), 2, colornames.Seagreen, false)
	vector.StrokeLine(screen, 0, oy, float32(vp.Width), oy, 2, colornames.Indianred, false)
}

func (g *Game) drawBounds(screen *ebiten.Image, cfg *component.PanCamConfig, proj *component.OrthographicProjection, tr *component.Transform, vp component.Viewport) {
	b := cfg.Bounds()
	if math.IsInf(b.L, 0) && math.IsInf(b.R, 0) && math.IsInf(b.B, 0) && math.IsInf(b.T, 0) {
		return
	}
	// Unset sides are drawn at the viewport edge.
	view := proj.VisibleRect(tr.Translation, vp)
	clipped := cp.BB{
		L: max(b.L, view.L),
		B: max(b.B, view.B),
		R: min(b.R, view.R),
		T: min(b.T, view.T),
	}
	if clipped.L > clipped.R || clipped.B > clipped.T {
		return
	}
	x0, y0 := worldToScreen(cp.Vector{X: clipped.L, Y: clipped.T}, proj, tr, vp)
	x1, y1 := worldToScreen(cp.Vector{X: clipped.R, Y: clipped.B}, proj, tr, vp)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 3, colornames.Orange, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	if vp, ok := ecs.Get(g.world, g.input, component.ViewportComponent); ok {
		vp.Width = float64(outsideWidth)
		vp.Height = float64(outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Package game wires the terrain viewer together and runs the frame loop.
package game

import (
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/SettlerNVG/go-terrain/internal/config"
	"github.com/SettlerNVG/go-terrain/internal/engine/audio"
	"github.com/SettlerNVG/go-terrain/internal/engine/camera"
	"github.com/SettlerNVG/go-terrain/internal/engine/cull"
	"github.com/SettlerNVG/go-terrain/internal/engine/debug"
	"github.com/SettlerNVG/go-terrain/internal/engine/frames"
	"github.com/SettlerNVG/go-terrain/internal/engine/input"
	"github.com/SettlerNVG/go-terrain/internal/engine/lighting"
	"github.com/SettlerNVG/go-terrain/internal/engine/lod"
	"github.com/SettlerNVG/go-terrain/internal/engine/picking"
	"github.com/SettlerNVG/go-terrain/internal/engine/renderer"
	"github.com/SettlerNVG/go-terrain/internal/engine/scene"
	"github.com/SettlerNVG/go-terrain/internal/engine/terrain"
	"github.com/SettlerNVG/go-terrain/internal/engine/window"
	"github.com/SettlerNVG/go-terrain/internal/logger"
	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// statsInterval is how often the LOD stats line is logged.
const statsInterval = 500 * time.Millisecond

// Game is the viewer instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	audio    *audio.Manager
	shots    *debug.ScreenshotCapture

	cam  *camera.FlyCamera
	terr *terrain.Terrain

	ring      *frames.Ring
	assembler *lod.Assembler

	// Exactly one policy is active.
	tree *lod.QuadTree
	flat *lod.Flat

	cullingEnabled bool
	mouseLook      bool

	wireframeKey *input.Toggle
	tintKey      *input.Toggle
	boundsKey    *input.Toggle
	cullKey      *input.Toggle

	lastDraws []lod.DrawDescriptor

	statTimer  time.Time
	statFrames int
}

// New creates a viewer instance from the loaded configuration.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:            cfg,
		cullingEnabled: cfg.LOD.CullingEnabled,
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Terrain LOD Viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window: it needs the GL context.
	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	if err := g.setupTerrain(); err != nil {
		g.Close()
		return nil, err
	}

	g.setupAudio()

	half := cfg.Terrain.Size / 2
	g.cam = camera.NewFlyCamera(
		math.Vec3{Y: cfg.Terrain.MaxHeight + 50, Z: -half - 100},
		math.Vec3{Y: cfg.Terrain.MaxHeight / 3},
	)

	g.wireframeKey = input.NewToggle(false)
	g.tintKey = input.NewToggle(cfg.Debug.TintLevels)
	g.boundsKey = input.NewToggle(cfg.Debug.ShowTileBounds)
	g.cullKey = input.NewToggle(g.cullingEnabled)

	g.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "terrain")

	logger.Info("viewer initialized",
		zap.String("policy", cfg.LOD.Policy),
		zap.Float32("terrain_size", cfg.Terrain.Size),
		zap.Bool("culling", g.cullingEnabled),
	)
	return g, nil
}

// setupTerrain builds the terrain, the active LOD policy, and the scene.
func (g *Game) setupTerrain() error {
	cfg := g.cfg

	terr, err := terrain.New(terrain.Config{
		Size:       cfg.Terrain.Size,
		MinHeight:  cfg.Terrain.MinHeight,
		MaxHeight:  cfg.Terrain.MaxHeight,
		Resolution: cfg.Terrain.Resolution,
		Seed:       cfg.Terrain.Seed,
		Frequency:  cfg.Terrain.Frequency,
		Octaves:    cfg.Terrain.Octaves,
	})
	if err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	g.terr = terr

	var capacity, levels int
	switch cfg.LOD.Policy {
	case "quadtree":
		tree, err := lod.NewQuadTree(lod.TreeConfig{
			Size:               cfg.Terrain.Size,
			MinTileSize:        cfg.LOD.MinTileSize,
			MaxLevels:          cfg.LOD.MaxLevels,
			MinHeight:          cfg.Terrain.MinHeight,
			MaxHeight:          cfg.Terrain.MaxHeight,
			SubdivideDistances: cfg.LOD.SubdivideDistances,
		})
		if err != nil {
			return fmt.Errorf("quadtree policy: %w", err)
		}
		g.tree = tree
		capacity = tree.NodeCount()
		levels = tree.Levels()
	case "flat":
		bands, err := lod.NewBands(cfg.LOD.Distances)
		if err != nil {
			return fmt.Errorf("flat policy: %w", err)
		}
		g.flat = &lod.Flat{
			Bands:      bands,
			Bounds:     terr.Bounds(),
			AlwaysDraw: cfg.LOD.AlwaysDraw,
		}
		capacity = 1
		levels = bands.Levels()
	default:
		return fmt.Errorf("unknown LOD policy %q", cfg.LOD.Policy)
	}

	g.ring, err = frames.NewRing(capacity)
	if err != nil {
		return err
	}
	g.assembler = lod.NewAssembler(capacity)

	mesh := terrain.BuildGridMesh(levels, cfg.LOD.GridResolution)
	g.scene, err = scene.New(terr, mesh, scene.Config{
		WaterEnabled: cfg.Terrain.WaterEnabled,
		WaterLevel:   cfg.Terrain.WaterLevel,
		TintLevels:   cfg.Debug.TintLevels,
		LightDir:     lighting.SunDirection(cfg.Terrain.SunAzimuth, cfg.Terrain.SunElevation),
	})
	if err != nil {
		return err
	}
	g.scene.ShowTileBounds = cfg.Debug.ShowTileBounds

	return nil
}

// setupAudio starts the ambient loop when configured. Audio failures are
// logged and ignored: the viewer works fine silent.
func (g *Game) setupAudio() {
	cfg := g.cfg.Audio
	if !cfg.Enabled || cfg.Muted || cfg.AmbientPath == "" {
		return
	}

	g.audio = audio.New()
	if err := g.audio.Init(); err != nil {
		logger.Warn("audio init failed", zap.Error(err))
		g.audio = nil
		return
	}
	g.audio.SetMasterVolume(cfg.MasterVolume)
	g.audio.SetAmbientVolume(cfg.AmbientVolume)

	data, err := os.ReadFile(cfg.AmbientPath)
	if err != nil {
		logger.Warn("reading ambient track failed", zap.Error(err))
		return
	}
	if err := g.audio.PlayAmbient(data, true); err != nil {
		logger.Warn("playing ambient track failed", zap.Error(err))
	}
}

// Run starts the main loop and blocks until the viewer quits.
func (g *Game) Run() error {
	g.running = true
	lastTime := time.Now()
	g.statTimer = time.Now()

	logger.Info("starting frame loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()
		g.handleToggles()
		g.moveCamera(dt)
		g.scene.Update(dt)

		if err := g.renderFrame(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		g.window.SwapBuffers()
		g.logStats(now)
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.renderer.Resize(event.Width, event.Height)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_F12:
				g.captureScreenshot()
			}
		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_RIGHT {
				g.mouseLook = true
				g.window.SetRelativeMouseMode(true)
			} else if event.Button == sdl.BUTTON_LEFT && !g.mouseLook {
				g.pickTerrain(event.MouseX, event.MouseY)
			}
		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_RIGHT {
				g.mouseLook = false
				g.window.SetRelativeMouseMode(false)
			}
		case input.EventMouseMove:
			if g.mouseLook {
				g.cam.HandleLook(float32(event.RelX), float32(event.RelY))
			}
		}
	}
}

// handleToggles feeds the held-key state through edge-detecting toggles so a
// held key flips once, not every frame.
func (g *Game) handleToggles() {
	if g.wireframeKey.Feed(g.input.IsKeyHeld(sdl.SCANCODE_1)) {
		g.renderer.SetWireframe(g.wireframeKey.On())
		logger.Info("wireframe", zap.Bool("on", g.wireframeKey.On()))
	}
	if g.tintKey.Feed(g.input.IsKeyHeld(sdl.SCANCODE_2)) {
		g.scene.SetTintLevels(g.tintKey.On())
		logger.Info("level tint", zap.Bool("on", g.tintKey.On()))
	}
	if g.boundsKey.Feed(g.input.IsKeyHeld(sdl.SCANCODE_3)) {
		g.scene.ShowTileBounds = g.boundsKey.On()
		logger.Info("tile bounds", zap.Bool("on", g.boundsKey.On()))
	}
	if g.cullKey.Feed(g.input.IsKeyHeld(sdl.SCANCODE_C)) {
		g.cullingEnabled = g.cullKey.On()
		logger.Info("frustum culling", zap.Bool("on", g.cullingEnabled))
	}
}

func (g *Game) moveCamera(dt float32) {
	speed := g.cam.MoveSpeed * dt
	if g.input.IsKeyHeld(sdl.SCANCODE_LSHIFT) {
		speed *= g.cam.SprintFactor
	}

	if g.input.IsKeyHeld(sdl.SCANCODE_W) {
		g.cam.Walk(speed)
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_S) {
		g.cam.Walk(-speed)
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_D) {
		g.cam.Strafe(speed)
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_A) {
		g.cam.Strafe(-speed)
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_E) {
		g.cam.Rise(speed)
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_Q) {
		g.cam.Rise(-speed)
	}
}

// renderFrame runs one select-upload-draw cycle against the next frame slot.
func (g *Game) renderFrame() error {
	proj := math.Perspective(g.cfg.Graphics.FOV, g.renderer.AspectRatio(),
		g.cfg.Graphics.Near, g.cfg.Graphics.Far)
	viewProj := proj.Mul(g.cam.ViewMatrix())

	var fr *cull.Frustum
	if g.cullingEnabled {
		f := cull.ExtractFrustum(viewProj)
		fr = &f
	}

	// The GPU may still be reading this slot's tiles from SlotCount frames
	// ago; wait before overwriting them.
	slot := g.ring.Advance()
	g.renderer.WaitFence(slot)

	var draws []lod.DrawDescriptor
	var err error
	if g.tree != nil {
		visible := g.tree.Update(g.cam.Pos, fr)
		draws, err = g.assembler.Assemble(g.tree, visible, slot.Tiles)
	} else {
		visible, level := g.flat.Evaluate(g.cam.Pos, fr)
		if visible {
			draws, err = g.assembler.AssembleSingle(g.terr.Size(), level, slot.Tiles)
		}
	}
	if err != nil {
		return err
	}

	if len(draws) > 0 {
		if err := g.scene.UploadTiles(slot); err != nil {
			return err
		}
	}

	g.renderer.Begin()
	g.scene.Render(viewProj, draws, slot.Index)
	g.renderer.End()
	g.renderer.SignalFence(slot)

	g.lastDraws = draws
	return nil
}

// pickTerrain casts a ray through the clicked pixel and logs what it hits.
func (g *Game) pickTerrain(screenX, screenY int) {
	w, h := g.renderer.Size()
	forward := g.cam.Forward()
	right := g.cam.Right()
	up := right.Cross(forward)

	ray := picking.ScreenToRay(float32(screenX), float32(screenY),
		float32(w), float32(h), g.cfg.Graphics.FOV,
		g.cam.Pos, forward, right, up)

	hit, ok := ray.MarchHeight(g.terr.HeightAt, g.cfg.Graphics.Far, 4)
	if !ok {
		logger.Debug("pick missed terrain")
		return
	}

	fields := []zap.Field{
		zap.Float32("x", hit.X),
		zap.Float32("z", hit.Z),
		zap.Float32("height", hit.Y),
	}
	for _, d := range g.lastDraws {
		if hit.X >= d.OriginX && hit.X < d.OriginX+d.Size &&
			hit.Z >= d.OriginZ && hit.Z < d.OriginZ+d.Size {
			fields = append(fields,
				zap.Int("tile_level", d.Level),
				zap.Float32("tile_size", d.Size))
			break
		}
	}
	logger.Info("terrain picked", fields...)
}

func (g *Game) captureScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	filename, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", filename))
}

// logStats logs the selection outcome at a fixed interval.
func (g *Game) logStats(now time.Time) {
	g.statFrames++
	if !g.cfg.Debug.ShowStats || now.Sub(g.statTimer) < statsInterval {
		return
	}

	elapsed := now.Sub(g.statTimer).Seconds()
	fps := float64(g.statFrames) / elapsed
	g.statFrames = 0
	g.statTimer = now

	var histogram [8]int
	for _, d := range g.lastDraws {
		if d.Level >= 0 && d.Level < len(histogram) {
			histogram[d.Level]++
		}
	}

	fields := []zap.Field{
		zap.Float64("fps", fps),
		zap.Int("draws", len(g.lastDraws)),
		zap.Ints("levels", histogram[:]),
	}
	if g.tree != nil {
		fields = append(fields, zap.Int("culled", g.tree.CulledCount()))
	}
	logger.Debug("lod stats", fields...)
}

// Close cleans up viewer resources.
func (g *Game) Close() {
	logger.Info("closing viewer")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.renderer != nil {
		if g.ring != nil {
			g.renderer.ReleaseFences(g.ring)
		}
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"lumicube-renderer/internal/camera"
	"lumicube-renderer/internal/field"
	"lumicube-renderer/internal/preset"
	"lumicube-renderer/internal/scene"
	"lumicube-renderer/internal/settings"
	"lumicube-renderer/internal/source"
	"lumicube-renderer/internal/ui"
	"lumicube-renderer/internal/wire"
)

const screenSize = 640

var background = [3]uint8{10, 10, 16}

// Game drives the interactive viewer: drop an image onto the window,
// orbit with the left mouse button, zoom with the wheel, tune
// parameters on the panel. R resets parameters, F re-frames the
// camera.
type Game struct {
	store  *settings.Manager
	params scene.Params
	saved  scene.Params

	field *field.Field
	anim  *scene.Animator
	cam   camera.Orbit
	panel *ui.Panel

	frame  *ebiten.Image
	status string

	dragging     bool
	lastX, lastY int
}

func newGame(store *settings.Manager, params scene.Params) *Game {
	g := &Game{
		store:  store,
		params: params,
		saved:  params,
		anim:   scene.NewAnimator(nil),
		cam:    camera.NewOrbit(10),
		panel:  &ui.Panel{X: 8, Y: 8},
		frame:  ebiten.NewImage(screenSize, screenSize),
		status: "drop an image onto the window",
	}
	return g
}

// setSource replaces the luminance field wholesale and rebuilds the
// scene around it.
func (g *Game) setSource(f *field.Field, name string) {
	g.field = f
	g.rebuild()
	g.cam.Distance = camera.AutoFrame(g.anim.Cubes(), g.cam.FOV)
	g.status = fmt.Sprintf("%s  %dx%d  %d cubes", name, f.Width, f.Height, len(g.anim.Cubes()))
}

// rebuild re-derives the instance set from the current field and
// build-time parameters. Animation state other than elapsed time is
// discarded by design: the set is a pure function of its inputs.
func (g *Game) rebuild() {
	if g.field.Empty() {
		g.anim.Reset(nil)
		return
	}
	g.anim.Reset(scene.Build(g.field, g.params))
}

func (g *Game) loadPath(path string) {
	img, err := source.Load(path)
	if err != nil {
		log.Printf("view: %v", err)
		g.status = fmt.Sprintf("load failed: %s", filepath.Base(path))
		return
	}
	g.setSource(field.FromImage(img), filepath.Base(path))
}

// loadDropped picks the first image file out of a drop.
func (g *Game) loadDropped(files fs.FS) {
	err := fs.WalkDir(files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !source.IsImagePath(path) {
			return err
		}
		f, err := files.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		img, err := source.Decode(f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		g.setSource(field.FromImage(img), filepath.Base(path))
		return fs.SkipAll
	})
	if err != nil {
		log.Printf("view: dropped file: %v", err)
		g.status = "could not read dropped file"
	}
}

func (g *Game) Update() error {
	if files := ebiten.DroppedFiles(); files != nil {
		g.loadDropped(files)
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if g.panel.Handle(&g.params, mx, my, pressed) {
		g.params.Clamp()
		g.rebuild()
	}

	// Orbit drag outside the panel
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.panel.Contains(&g.params, mx, my) {
		g.dragging = true
		g.lastX, g.lastY = mx, my
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		g.persist()
	}
	if g.dragging {
		g.cam.Drag(float64(mx-g.lastX), float64(my-g.lastY))
		g.lastX, g.lastY = mx, my
	}

	if _, wy := ebiten.Wheel(); wy != 0 && !g.panel.Contains(&g.params, mx, my) {
		g.cam.Zoom(wy)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.params = scene.DefaultParams()
		g.rebuild()
		g.persist()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.cam.Distance = camera.AutoFrame(g.anim.Cubes(), g.cam.FOV)
	}

	g.anim.Advance(g.params, 1.0/float64(ebiten.TPS()))
	return nil
}

// persist saves parameters when they changed since the last save.
func (g *Game) persist() {
	if g.params == g.saved {
		return
	}
	if err := g.store.Save(g.params); err != nil {
		log.Printf("view: %v", err)
		return
	}
	g.saved = g.params
}

func (g *Game) Draw(screen *ebiten.Image) {
	img := wire.Render(g.anim.Cubes(), g.cam, g.anim.Pulse(g.params), g.params, wire.Options{
		Size:        screenSize,
		Supersample: 1,
		Background:  background,
	})
	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)

	g.panel.Draw(screen, &g.params)
	ebitenutil.DebugPrintAt(screen, g.status, 8, screenSize-18)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	input := flag.String("input", "", "Image to load at startup")
	presetFile := flag.String("presets", "", "Path to a YAML preset file")
	presetName := flag.String("preset", "", "Start from this preset instead of saved settings")
	flag.Parse()

	store, err := gdata.Open(gdata.Config{AppName: "lumicube"})
	if err != nil {
		log.Printf("view: settings store unavailable: %v", err)
		store = nil
	}
	mgr := settings.NewManager(store)

	params := mgr.Params()
	if *presetName != "" {
		params, err = preset.Resolve(*presetFile, *presetName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	game := newGame(mgr, params)
	if *input != "" {
		game.loadPath(*input)
	}

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("lumicube")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

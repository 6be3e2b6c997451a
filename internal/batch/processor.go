// Package batch renders input images to WebP files with a worker
// pool: one animated clip (or still frame) per input.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"lumicube-renderer/internal/camera"
	"lumicube-renderer/internal/field"
	"lumicube-renderer/internal/scene"
	"lumicube-renderer/internal/source"
	"lumicube-renderer/internal/wire"
)

// orbitRate is the auto-orbit yaw speed in rad/s for clips.
const orbitRate = 0.35

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Params      scene.Params
	RenderSize  int
	Supersample int
	Frames      int // 1 = still frame, >1 = animated WebP
	FPS         int
	Orbit       bool // slow auto-orbit across the clip
	Workers     int
	Background  [3]uint8
}

// Result holds the outcome of processing one input image.
type Result struct {
	Input   string
	Output  string
	Frames  int
	Cubes   int
	Success bool
	Error   string
}

// Run processes all inputs using a worker pool.
func Run(cfg Config, inputs []string) []Result {
	total := len(inputs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f clips/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	inputChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range inputChan {
				results[idx] = processInput(cfg, inputs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range inputs {
		inputChan <- i
	}
	close(inputChan)

	wg.Wait()
	close(done)

	return results
}

func processInput(cfg Config, input string) Result {
	res := Result{Input: input}

	img, err := source.Load(input)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	f := field.FromImage(img)
	if f.Empty() {
		res.Error = "image has zero dimensions"
		return res
	}

	cubes := scene.Build(f, cfg.Params)
	res.Cubes = len(cubes)

	frames := renderClip(cfg, cubes)
	res.Frames = len(frames)

	outPath := outputPath(cfg.OutputDir, input)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := writeWebP(outPath, frames, cfg.FPS); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Output = outPath
	res.Success = true
	return res
}

// renderClip advances the animation at the clip frame rate and
// renders every frame.
func renderClip(cfg Config, cubes []scene.Cube) []*image.NRGBA {
	frames := cfg.Frames
	if frames < 1 {
		frames = 1
	}
	fps := cfg.FPS
	if fps < 1 {
		fps = 24
	}
	dt := 1.0 / float64(fps)

	anim := scene.NewAnimator(cubes)
	cam := camera.NewOrbit(camera.AutoFrame(cubes, camera.DefaultFOV))

	out := make([]*image.NRGBA, frames)
	for i := 0; i < frames; i++ {
		out[i] = wire.Render(anim.Cubes(), cam, anim.Pulse(cfg.Params), cfg.Params, wire.Options{
			Size:        cfg.RenderSize,
			Supersample: cfg.Supersample,
			Background:  cfg.Background,
		})
		anim.Advance(cfg.Params, dt)
		if cfg.Orbit {
			cam.Yaw += orbitRate * dt
		}
	}
	return out
}

// writeWebP encodes one frame as a still WebP, several as an
// animated WebP looping forever.
func writeWebP(path string, frames []*image.NRGBA, fps int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if len(frames) == 1 {
		if err := nativewebp.Encode(f, frames[0], nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
		return nil
	}

	if fps < 1 {
		fps = 24
	}
	frameMS := uint(1000 / fps)

	ani := nativewebp.Animation{
		Images:    make([]image.Image, len(frames)),
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
		LoopCount: 0,
	}
	for i, fr := range frames {
		ani.Images[i] = fr
		ani.Durations[i] = frameMS
	}

	if err := nativewebp.EncodeAll(f, &ani, nil); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}

// outputPath maps input.jpg → OutputDir/input.webp.
func outputPath(outDir, input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+".webp")
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lumicube-renderer/internal/batch"
	"lumicube-renderer/internal/config"
	"lumicube-renderer/internal/preset"
	"lumicube-renderer/internal/scene"
	"lumicube-renderer/internal/source"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	input := flag.String("input", "", "Input image file or directory of images")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	presetFile := flag.String("presets", "", "Path to a YAML preset file")
	presetName := flag.String("preset", "", "Preset name (default: default)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 512)")
	frames := flag.Int("frames", 0, "Frames per clip, 1 = still (default: 48)")
	fps := flag.Int("fps", 0, "Clip frame rate (default: 24)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	orbit := flag.Bool("orbit", false, "Slowly orbit the camera across the clip")
	still := flag.Bool("still", false, "Shorthand for -frames 1")

	// Parameter overrides on top of the chosen preset
	density := flag.Float64("density", -1, "Grid density 0-1")
	threshold := flag.Float64("threshold", -1, "Contrast threshold 0-1")
	depth := flag.Float64("depth", -1, "Depth multiplier 0-2")
	cubeSize := flag.Float64("cube", -1, "Cube size 0.1-2")
	rotSpeed := flag.Float64("rot", -1, "Rotation speed 0-2")
	pulse := flag.Float64("pulse", -1, "Pulse strength 0-1")
	mode := flag.String("mode", "", "Color mode: monochrome, sampled or custom")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Input:      *input,
		OutputDir:  *outputDir,
		PresetFile: *presetFile,
		Preset:     *presetName,
		Size:       *size,
		Frames:     *frames,
		FPS:        *fps,
		Workers:    *workers,
		Orbit:      *orbit,
	})
	if *still {
		cfg.Frames = 1
	}

	if cfg.Input == "" {
		fmt.Fprintln(os.Stderr, "Error: no input image. Use -input or config.json.")
		os.Exit(1)
	}

	// Resolve parameters
	params, err := preset.Resolve(cfg.PresetFile, cfg.Preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyOverrides(&params, *density, *threshold, *depth, *cubeSize, *rotSpeed, *pulse, *mode)
	params.Clamp()

	// Collect inputs
	inputs, err := collectInputs(cfg.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		fmt.Println("No images to render.")
		os.Exit(0)
	}

	clip := "still"
	if cfg.Frames > 1 {
		clip = fmt.Sprintf("%d frames @ %d fps", cfg.Frames, cfg.FPS)
	}
	fmt.Printf("Luminance Cube Grid → WebP (%s)\n", clip)
	fmt.Printf("Images: %d, Workers: %d, Preset: %s\n", len(inputs), cfg.Workers, cfg.Preset)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Params:      params,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		FPS:         cfg.FPS,
		Orbit:       cfg.Orbit,
		Workers:     cfg.Workers,
	}, inputs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(inputs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Input, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// collectInputs expands a directory into its image files, sorted by
// the directory listing; a plain file passes through.
func collectInputs(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", input, err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", input, err)
	}
	var inputs []string
	for _, e := range entries {
		if e.IsDir() || !source.IsImagePath(e.Name()) {
			continue
		}
		inputs = append(inputs, filepath.Join(input, e.Name()))
	}
	return inputs, nil
}

func applyOverrides(p *scene.Params, density, threshold, depth, cubeSize, rotSpeed, pulse float64, mode string) {
	if density >= 0 {
		p.Density = density
	}
	if threshold >= 0 {
		p.Threshold = threshold
	}
	if depth >= 0 {
		p.DepthScale = depth
	}
	if cubeSize >= 0 {
		p.CubeSize = cubeSize
	}
	if rotSpeed >= 0 {
		p.RotationSpeed = rotSpeed
	}
	if pulse >= 0 {
		p.PulseStrength = pulse
	}
	if mode != "" {
		m, err := scene.ParseColorMode(mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		p.ColorMode = m
	}
}

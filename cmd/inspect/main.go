// Command inspect prints luminance-field statistics and the instance
// counts an image would produce at a range of densities. Useful for
// picking a threshold before rendering.
package main

import (
	"flag"
	"fmt"
	"os"

	"lumicube-renderer/internal/field"
	"lumicube-renderer/internal/scene"
	"lumicube-renderer/internal/source"
)

func main() {
	threshold := flag.Float64("threshold", 0.1, "Contrast threshold 0-1")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-threshold t] <image>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	img, err := source.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f := field.FromImage(img)
	if f.Empty() {
		fmt.Fprintln(os.Stderr, "Error: image has zero dimensions")
		os.Exit(1)
	}

	min, max, mean := 1.0, 0.0, 0.0
	for _, v := range f.Values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		mean += v
	}
	mean /= float64(len(f.Values))

	fmt.Printf("%s\n", path)
	fmt.Printf("  field:     %dx%d (%d px)\n", f.Width, f.Height, len(f.Values))
	fmt.Printf("  luminance: min %.3f  max %.3f  mean %.3f\n", min, max, mean)
	fmt.Printf("  threshold: %.2f\n", *threshold)
	fmt.Println()

	p := scene.DefaultParams()
	p.Threshold = *threshold

	fmt.Println("  density  grid  cubes  fill")
	for _, d := range []float64{0.25, 0.5, 0.75, 1.0} {
		p.Density = d
		edge := scene.GridEdge(d)
		n := len(scene.Build(f, p))
		fill := 0.0
		if edge > 0 {
			fill = float64(n) / float64(edge*edge) * 100
		}
		fmt.Printf("  %.2f     %2dx%-2d %5d  %5.1f%%\n", d, edge, edge, n, fill)
	}
}

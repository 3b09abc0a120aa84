// Command preview applies the image-space stages of a level's policy to a
// PNG and writes the augmented samples out, for eyeballing what a level
// actually does to data.
package main

// #region imports
import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/augtune-dev/augtune/internal/augment"
	"github.com/augtune-dev/augtune/internal/policy"
)

// #endregion

// #region main

func main() {
	inPath := flag.String("in", "", "input PNG")
	outDir := flag.String("out", ".", "output directory")
	level := flag.Int("level", 15, "augmentation level")
	count := flag.Int("count", 8, "number of samples to render")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	mode := flag.String("mode", "train", "pipeline mode: train or all")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: preview --in image.png [--out dir] [--level N] [--count N]")
		os.Exit(2)
	}
	if err := run(*inPath, *outDir, *level, *count, *seed, *mode); err != nil {
		log.Fatalf("preview failed: %v", err)
	}
}

func run(inPath, outDir string, level, count int, seed int64, mode string) error {
	img, err := loadPNG(inPath)
	if err != nil {
		return err
	}
	pol, err := policy.Build(level)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < count; i++ {
		out := pol.ApplyImage(img, augment.Mode(mode), rng)
		name := filepath.Join(outDir, fmt.Sprintf("level%02d_%02d.png", level, i))
		if err := savePNG(name, out); err != nil {
			return err
		}
		log.Printf("[PREVIEW] wrote %s", name)
	}
	return nil
}

// #endregion main

// #region io

func loadPNG(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img, nil
}

func savePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// #endregion io

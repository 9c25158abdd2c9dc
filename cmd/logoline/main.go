package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivlev/logoline/internal/analyzer"
	"github.com/ivlev/logoline/internal/config"
	"github.com/ivlev/logoline/internal/pipeline"
	"github.com/ivlev/logoline/internal/plan"
	"github.com/ivlev/logoline/internal/preview"
	"github.com/ivlev/logoline/internal/raster"
)

func main() {
	inputPtr := flag.String("input", "", "Logo file or directory with logo images (positional arguments also accepted)")
	outPtr := flag.String("out", "output", "Output directory for the layout plan, crops and preview")
	configPtr := flag.String("config", "", "Optional YAML config file")
	gapPtr := flag.Float64("gap", 28, "Inter-logo spacing in pixels")
	basePtr := flag.Float64("base", 48, "Base size in pixels")
	scalePtr := flag.Float64("scale", 0.5, "Shape normalization: 0 = equal width, 1 = equal height")
	densityAwarePtr := flag.Bool("density-aware", true, "Compensate sizes for ink density")
	densityFactorPtr := flag.Float64("density-factor", 0.5, "Density compensation strength [0,1]")
	alignPtr := flag.String("align", config.AlignBounds, "Alignment: bounds, visual-center, visual-center-x, visual-center-y")
	cropPtr := flag.Bool("crop", false, "Write content-box crops of each logo")
	previewPtr := flag.Bool("preview", false, "Render a composed preview strip (preview.png)")
	workersPtr := flag.Int("workers", 0, "Concurrent measurement tasks (0 = auto)")
	dpiPtr := flag.Int("dpi", 300, "Rasterization DPI for PDF sources")
	backgroundPtr := flag.String("background", analyzer.ModeAuto, "Background estimation: auto, alpha, corners")

	flag.Parse()

	cfg := config.Default()
	if *configPtr != "" {
		loaded, err := config.Load(*configPtr)
		if err != nil {
			log.Fatalf("[-] Config error: %v", err)
		}
		cfg = loaded
		fmt.Printf("[*] Config loaded: %s\n", *configPtr)
	}

	// Explicitly set flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "gap":
			cfg.Gap = *gapPtr
		case "base":
			cfg.BaseSize = *basePtr
		case "scale":
			cfg.ScaleFactor = *scalePtr
		case "density-aware":
			cfg.DensityAware = *densityAwarePtr
		case "density-factor":
			cfg.DensityFactor = *densityFactorPtr
		case "align":
			cfg.AlignBy = *alignPtr
		case "crop":
			cfg.CropToContent = *cropPtr
		case "workers":
			cfg.Workers = *workersPtr
		case "dpi":
			cfg.DPI = *dpiPtr
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Invalid configuration: %v", err)
	}

	sources, err := gatherSources(*inputPtr, flag.Args())
	if err != nil {
		log.Fatalf("[-] Input error: %v", err)
	}
	if len(sources) == 0 {
		log.Fatalf("[-] No logo sources found. Pass files or a directory via -input")
	}

	detector, err := analyzer.NewDetector(*backgroundPtr)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	fmt.Printf("[*] Logos: %d | Base size: %g | Scale factor: %g | Align: %s\n",
		len(sources), cfg.BaseSize, cfg.ScaleFactor, cfg.AlignBy)

	dec := raster.NewDecoder(cfg.DPI)
	p := pipeline.New(cfg, dec)
	p.Detector = detector

	ctx := context.Background()
	logos, err := p.Run(ctx, sources)
	if err != nil {
		log.Fatalf("[-] Pipeline error: %v", err)
	}

	if err := os.MkdirAll(*outPtr, 0755); err != nil {
		log.Fatalf("[-] Output error: %v", err)
	}

	layout := plan.FromLogos(logos, cfg)

	if cfg.CropToContent {
		cropDir := filepath.Join(*outPtr, "crops")
		if err := os.MkdirAll(cropDir, 0755); err != nil {
			log.Fatalf("[-] Output error: %v", err)
		}
		for i, l := range logos {
			cropPath := filepath.Join(cropDir, fmt.Sprintf("%s.png", l.Alt))
			if err := os.WriteFile(cropPath, l.CroppedData, 0644); err != nil {
				log.Fatalf("[-] Failed to write crop: %v", err)
			}
			layout.Logos[i].Cropped = cropPath
		}
		fmt.Printf("[*] Crops written to %s\n", cropDir)
	}

	planPath := filepath.Join(*outPtr, "plan.yaml")
	if err := plan.Write(layout, planPath); err != nil {
		log.Fatalf("[-] Failed to write plan: %v", err)
	}

	if *previewPtr {
		strip, err := preview.RenderStrip(ctx, logos, dec, cfg)
		if err != nil {
			log.Fatalf("[-] Preview error: %v", err)
		}
		previewPath := filepath.Join(*outPtr, "preview.png")
		f, err := os.Create(previewPath)
		if err != nil {
			log.Fatalf("[-] Preview error: %v", err)
		}
		if err := png.Encode(f, strip); err != nil {
			f.Close()
			log.Fatalf("[-] Preview error: %v", err)
		}
		f.Close()
		fmt.Printf("[*] Preview written: %s\n", previewPath)
	}

	fmt.Printf("[+++] Done! Layout plan: %s\n", planPath)
}

// gatherSources expands the -input path and positional arguments into the
// ordered logo list. Alt text defaults to the file name without extension.
func gatherSources(input string, args []string) ([]pipeline.LogoSource, error) {
	var paths []string

	if input != "" {
		fi, err := os.Stat(input)
		if err != nil {
			return nil, err
		}
		if fi.IsDir() {
			listed, err := raster.ListSources(input)
			if err != nil {
				return nil, err
			}
			paths = append(paths, listed...)
		} else {
			paths = append(paths, input)
		}
	}
	paths = append(paths, args...)

	sources := make([]pipeline.LogoSource, len(paths))
	for i, p := range paths {
		base := filepath.Base(p)
		sources[i] = pipeline.LogoSource{
			Ref: p,
			Alt: strings.TrimSuffix(base, filepath.Ext(base)),
		}
	}

	return sources, nil
}

// Command drafter drafts a trouser pattern from body measurements and
// writes it as a PDF, SVG or PNG document.
//
//	drafter -config fit.json
//	drafter -waist 100.33 -seat 107.95 -rise 29.21 -inseam 86.36 \
//	        -bottom 22.6 -band 4 -format svg -o pattern.svg
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/seamly/drafter/draft"
	"github.com/seamly/drafter/export"
	"github.com/seamly/drafter/internal/config"
	"github.com/seamly/drafter/render"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	waist := flag.Float64("waist", 0, "Waist circumference in cm")
	seat := flag.Float64("seat", 0, "Seat circumference in cm")
	rise := flag.Float64("rise", 0, "Body rise in cm")
	inseam := flag.Float64("inseam", 0, "Inseam length in cm")
	bottom := flag.Float64("bottom", 0, "Trouser bottom width in cm")
	band := flag.Float64("band", 0, "Waistband depth in cm")
	title := flag.String("title", "", "Document title")
	output := flag.String("o", "", "Output file (default: derived from title)")
	format := flag.String("format", "", "Output format: pdf, svg or png (default: pdf)")
	labels := flag.Bool("labels", false, "Print drafting point labels onto the pattern")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Waist:          *waist,
		Seat:           *seat,
		BodyRise:       *rise,
		Inseam:         *inseam,
		BottomWidth:    *bottom,
		WaistbandDepth: *band,
		Title:          *title,
		Output:         *output,
		Format:         *format,
		DebugLabels:    *labels,
	})

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Measurements.Validate(); err != nil {
		return err
	}

	front, err := draft.Front(cfg.Measurements)
	if err != nil {
		return err
	}
	back, err := draft.Back(cfg.Measurements, front)
	if err != nil {
		return err
	}
	panels := []render.Panel{render.FrontPanel(front), render.BackPanel(back)}

	doc := export.Document{
		Title:       cfg.Title,
		Units:       "cm",
		GeneratedAt: time.Now(),
	}
	opts := export.Options{
		DebugLabels:     cfg.DebugLabels,
		SamplesPerCurve: cfg.SamplesPerCurve,
	}

	var buf bytes.Buffer
	switch cfg.Format {
	case "pdf":
		err = export.PDF(&buf, doc, panels, opts)
	case "svg":
		err = export.SVG(&buf, doc, panels, opts)
	case "png":
		err = export.PNG(&buf, doc, panels, opts)
	default:
		return fmt.Errorf("unknown format %q (want pdf, svg or png)", cfg.Format)
	}
	if err != nil {
		return err
	}

	out := cfg.Output
	if out == "" {
		out = export.SuggestedName(doc, cfg.Format)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/tileshuffle"
	intImage "github.com/gogpu/tileshuffle/internal/image"
)

// CLI is the command-line grammar.
type CLI struct {
	Globals

	Encode EncodeCmd `cmd:"" help:"Shuffle the tiles of an image."`
	Decode DecodeCmd `cmd:"" help:"Reassemble a shuffled image."`
	Splits SplitsCmd `cmd:"" help:"List the split factors an image supports."`

	Version kong.VersionFlag `help:"Print version and exit."`
}

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool `short:"v" help:"Log debug details to stderr."`
	Workers int  `env:"TILESHUFFLE_WORKERS" default:"0" help:"Decode goroutines (0 uses every CPU)."`
}

// GridArgs are the arguments of encode and decode.
type GridArgs struct {
	Input  string `arg:"" type:"existingfile" help:"Input image (PNG, JPEG, GIF, BMP, TIFF, WebP or QOI)."`
	XSplit int    `arg:"" name:"x-split" help:"Number of tile columns."`
	YSplit int    `arg:"" name:"y-split" help:"Number of tile rows."`

	Output string `short:"o" type:"path" help:"Output PNG file or existing directory."`
	Crop   bool   `help:"Crop the input to a size divisible by the splits instead of failing."`
}

// EncodeCmd shuffles an image.
type EncodeCmd struct {
	GridArgs

	Seed *uint64 `env:"TILESHUFFLE_SEED" help:"Fixed seed for a reproducible shuffle."`
}

// Run executes the encode command.
func (c *EncodeCmd) Run(g *Globals) error {
	opts := []tileshuffle.Option{
		tileshuffle.WithWorkers(g.Workers),
		tileshuffle.WithCrop(c.Crop),
	}
	if c.Seed != nil {
		opts = append(opts, tileshuffle.WithSeed(*c.Seed))
	}

	s, err := tileshuffle.New(c.XSplit, c.YSplit, opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := outputPath(c.Input, c.Output, "encoded")
	if err != nil {
		return err
	}
	if err := s.EncodeFile(c.Input, out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

// DecodeCmd reassembles an image.
type DecodeCmd struct {
	GridArgs

	Report bool `help:"Print search statistics."`
}

// Run executes the decode command.
func (c *DecodeCmd) Run(g *Globals) error {
	s, err := tileshuffle.New(c.XSplit, c.YSplit,
		tileshuffle.WithWorkers(g.Workers),
		tileshuffle.WithCrop(c.Crop),
	)
	if err != nil {
		return err
	}
	defer s.Close()

	out, err := outputPath(c.Input, c.Output, "decoded")
	if err != nil {
		return err
	}

	if !c.Report {
		if err := s.DecodeFile(c.Input, out); err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}

	report, err := s.DecodeReportFile(c.Input, out)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	_, err = p.Fprintf(stdout, "%s\ncost %d (mean %.1f, stddev %.1f) over %d candidates, start tile %d\n",
		out, report.Cost, report.MeanCost, report.StdDevCost, report.Candidates, report.Start)
	return err
}

// SplitsCmd lists valid split factors.
type SplitsCmd struct {
	Input string `arg:"" type:"existingfile" help:"Input image."`
}

// Run executes the splits command.
func (c *SplitsCmd) Run(_ *Globals) error {
	img, err := intImage.Load(c.Input)
	if err != nil {
		return err
	}
	b := img.Bounds()
	_, err = fmt.Fprintf(stdout, "%dx%d\nx-split: %v\ny-split: %v\n",
		b.Dx(), b.Dy(), tileshuffle.Splits(b.Dx()), tileshuffle.Splits(b.Dy()))
	return err
}

// Command tileshuffle scrambles images by shuffling their tiles and
// reconstructs scrambled images from their tile seams.
//
// Usage:
//
//	tileshuffle encode photo.jpg 8 6            # writes photo_encoded.png
//	tileshuffle decode photo_encoded.png 8 6    # writes photo_encoded_decoded.png
//	tileshuffle splits photo.jpg                # lists valid split factors
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogpu/tileshuffle"
)

const description = `Split an image into a grid of equal tiles and shuffle them, or
reassemble a shuffled image by matching tile borders.`

// stdout receives command output.
var stdout io.Writer = os.Stdout

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tileshuffle"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{"version": tileshuffle.Version},
	)

	setupLogging(os.Stderr, cli.Verbose)

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setupLogging routes library logs to w at info level, or debug if verbose.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	tileshuffle.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

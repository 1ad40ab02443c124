package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// outputPath picks where a command writes its result.
//
// Without an explicit output the result goes next to the input as
// "<stem>_<suffix>.png". An output naming an existing directory receives that
// default file name; any other output is used as given.
func outputPath(input, output, suffix string) (string, error) {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + "_" + suffix + ".png"

	if output == "" {
		return filepath.Join(filepath.Dir(input), name), nil
	}

	info, err := os.Stat(output)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(output, name), nil
	case err == nil || os.IsNotExist(err):
		return output, nil
	default:
		return "", fmt.Errorf("tileshuffle: output %s: %w", output, err)
	}
}

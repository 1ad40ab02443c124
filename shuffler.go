package tileshuffle

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/tileshuffle/internal/arrange"
	"github.com/gogpu/tileshuffle/internal/grid"
	intImage "github.com/gogpu/tileshuffle/internal/image"
	"github.com/gogpu/tileshuffle/internal/parallel"
	"github.com/gogpu/tileshuffle/internal/random"
	"github.com/gogpu/tileshuffle/internal/solve"
)

// Shuffler encodes and decodes images for one pair of split factors.
//
// Thread safety: Shuffler is safe for concurrent use. Without WithSeed,
// concurrent encodes draw from independent sources, each seeded from the
// entropy reader when first created. With WithSeed, encodes take turns on a
// single source so the sequence of shuffles stays reproducible. Decodes share
// the worker pool.
type Shuffler struct {
	xSplit, ySplit int
	crop           bool

	// seeded mode
	mu     sync.Mutex
	src    *random.Source
	seed   uint64
	seeded bool

	// entropy mode; seedMu serializes reads of entropy
	sources sync.Pool
	seedMu  sync.Mutex
	entropy io.Reader

	pool   *parallel.WorkerPool
	solver *solve.Solver
}

// New creates a Shuffler that splits images into xSplit columns and ySplit
// rows. Both factors must be positive.
//
// The Shuffler owns a worker pool; call Close when done with it.
func New(xSplit, ySplit int, opts ...Option) (*Shuffler, error) {
	if xSplit <= 0 || ySplit <= 0 {
		return nil, &InvalidSplitError{XSplit: xSplit, YSplit: ySplit}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pool := parallel.NewWorkerPool(o.workers)
	return &Shuffler{
		xSplit:  xSplit,
		ySplit:  ySplit,
		crop:    o.crop,
		seed:    o.seed,
		seeded:  o.seeded,
		entropy: o.entropy,
		pool:    pool,
		solver:  solve.NewSolver(pool),
	}, nil
}

// Splits returns the split factors.
func (s *Shuffler) Splits() (xSplit, ySplit int) {
	return s.xSplit, s.ySplit
}

// Close stops the worker pool. Decoding after Close still works but runs
// on the calling goroutine.
func (s *Shuffler) Close() {
	s.pool.Close()
}

// Encode returns img with its tiles in a uniformly random order.
func (s *Shuffler) Encode(img image.Image) (*image.NRGBA, error) {
	out, err := s.encode(img)
	if err != nil {
		return nil, err
	}
	return out.ToStdImage(), nil
}

// Decode returns the arrangement of img's tiles with the least visible seams.
// Decoding never fails once the geometry is valid, but exact recovery of the
// original image is not guaranteed.
func (s *Shuffler) Decode(img image.Image) (*image.NRGBA, error) {
	out, _, err := s.decode(img)
	if err != nil {
		return nil, err
	}
	return out.ToStdImage(), nil
}

// DecodeReport is like Decode and also describes the search.
func (s *Shuffler) DecodeReport(img image.Image) (*image.NRGBA, *Report, error) {
	out, res, err := s.decode(img)
	if err != nil {
		return nil, nil, err
	}
	return out.ToStdImage(), newReport(res), nil
}

// EncodeBytes decodes data in any registered format, encodes it and returns
// the result as PNG.
func (s *Shuffler) EncodeBytes(data []byte) ([]byte, error) {
	img, err := intImage.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	out, err := s.encode(img)
	if err != nil {
		return nil, err
	}
	return out.EncodeToBytes()
}

// DecodeBytes decodes data in any registered format, reconstructs it and
// returns the result as PNG.
func (s *Shuffler) DecodeBytes(data []byte) ([]byte, error) {
	img, err := intImage.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	out, _, err := s.decode(img)
	if err != nil {
		return nil, err
	}
	return out.EncodeToBytes()
}

// EncodeFile encodes the image at in and writes it to out as PNG.
// Nothing is written if any step fails.
func (s *Shuffler) EncodeFile(in, out string) error {
	img, err := intImage.Load(in)
	if err != nil {
		return err
	}
	buf, err := s.encode(img)
	if err != nil {
		return err
	}
	if err := buf.SavePNG(out); err != nil {
		return err
	}
	Logger().Info("encoded", "input", in, "output", out)
	return nil
}

// DecodeFile reconstructs the image at in and writes it to out as PNG.
// Nothing is written if any step fails.
func (s *Shuffler) DecodeFile(in, out string) error {
	_, err := s.DecodeReportFile(in, out)
	return err
}

// DecodeReportFile is like DecodeFile and also describes the search.
func (s *Shuffler) DecodeReportFile(in, out string) (*Report, error) {
	img, err := intImage.Load(in)
	if err != nil {
		return nil, err
	}
	buf, res, err := s.decode(img)
	if err != nil {
		return nil, err
	}
	if err := buf.SavePNG(out); err != nil {
		return nil, err
	}
	Logger().Info("decoded", "input", in, "output", out)
	return newReport(res), nil
}

// prepare converts img to a buffer and checks it against the splits.
func (s *Shuffler) prepare(img image.Image) (*intImage.ImageBuf, grid.Geometry, error) {
	if s.crop {
		img = intImage.CropToGrid(img, s.xSplit, s.ySplit)
	}

	b := img.Bounds()
	g, err := grid.Compute(b.Dx(), b.Dy(), s.xSplit, s.ySplit)
	if err != nil {
		return nil, grid.Geometry{}, err
	}

	buf, err := intImage.FromStdImage(img)
	if err != nil {
		return nil, grid.Geometry{}, fmt.Errorf("tileshuffle: convert input: %w", err)
	}
	return buf, g, nil
}

func (s *Shuffler) encode(img image.Image) (*intImage.ImageBuf, error) {
	buf, g, err := s.prepare(img)
	if err != nil {
		return nil, err
	}

	p, err := s.permutation(g.Total())
	if err != nil {
		return nil, err
	}

	out, err := arrange.Arrange(buf, g, p)
	if err != nil {
		return nil, err
	}
	Logger().Debug("tileshuffle: encode",
		"width", g.Width, "height", g.Height,
		"xSplit", g.XSplit, "ySplit", g.YSplit)
	return out, nil
}

func (s *Shuffler) decode(img image.Image) (*intImage.ImageBuf, solve.Result, error) {
	buf, g, err := s.prepare(img)
	if err != nil {
		return nil, solve.Result{}, err
	}

	res, err := s.solver.Reconstruct(buf, g)
	if err != nil {
		return nil, solve.Result{}, err
	}

	out, err := arrange.Arrange(buf, g, res.Permutation)
	if err != nil {
		return nil, solve.Result{}, err
	}
	Logger().Debug("tileshuffle: decode",
		"width", g.Width, "height", g.Height,
		"xSplit", g.XSplit, "ySplit", g.YSplit,
		"candidates", len(res.Costs), "start", res.Start, "cost", res.Cost)
	return out, res, nil
}

// permutation draws the next shuffle.
func (s *Shuffler) permutation(n int) (grid.Permutation, error) {
	if s.seeded {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.src == nil {
			s.src = random.NewSeeded(s.seed)
		}
		return s.src.Permutation(n), nil
	}

	src, ok := s.sources.Get().(*random.Source)
	if !ok {
		var err error
		if src, err = s.newSource(); err != nil {
			return nil, err
		}
	}
	p := src.Permutation(n)
	s.sources.Put(src)
	return p, nil
}

// newSource seeds a source from the entropy reader.
func (s *Shuffler) newSource() (*random.Source, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	src, err := random.NewSourceFrom(s.entropy)
	if err != nil {
		return nil, fmt.Errorf("tileshuffle: seed permutation source: %w", err)
	}
	return src, nil
}

// Encode shuffles img into an xSplit by ySplit grid using a fresh Shuffler
// seeded from the operating system.
func Encode(img image.Image, xSplit, ySplit int) (*image.NRGBA, error) {
	s, err := New(xSplit, ySplit)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Encode(img)
}

// Decode reconstructs an image shuffled into an xSplit by ySplit grid.
func Decode(img image.Image, xSplit, ySplit int) (*image.NRGBA, error) {
	s, err := New(xSplit, ySplit)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Decode(img)
}

// Splits returns every split factor that divides a dimension of n pixels,
// in ascending order.
func Splits(n int) []int {
	return grid.Divisors(n)
}

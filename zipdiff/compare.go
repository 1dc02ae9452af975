package zipdiff

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/taigrr/colorhash"
	"golang.org/x/sync/errgroup"

	"github.com/Srijan619/ziffy/util"
)

// Comparer compares pairs of ZIP archives. It holds no per-comparison state
// and is safe for concurrent use.
type Comparer struct {
	workers int
	logger  *slog.Logger
	extract extractFunc
}

// Option configures a Comparer.
type Option func(*Comparer)

// WithWorkers sets the number of goroutines classifying entries.
// Values < 1 force serial processing.
func WithWorkers(n int) Option {
	return func(c *Comparer) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithLogger sets the logger for comparison diagnostics.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Comparer) {
		c.logger = logger
	}
}

// New creates a Comparer. By default it uses one worker per CPU.
func New(opts ...Option) *Comparer {
	c := &Comparer{
		workers: runtime.NumCPU(),
		extract: util.ExtractEntry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// log returns the logger, falling back to a discard logger if nil.
func (c *Comparer) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// Compare compares the archives at path1 and path2 using a default Comparer
// that logs through slog.Default.
func Compare(ctx context.Context, path1, path2 string) ([]FileDifference, error) {
	return New(WithLogger(slog.Default())).Compare(ctx, path1, path2)
}

// Compare returns one FileDifference per entry that differs between the
// archive at path1 (the old side) and the archive at path2 (the new side).
// The order of the result is unspecified.
//
// Failures to open either archive or to read any entry while cataloguing are
// returned as errors. Entries that cannot be extracted for diffing are left
// out of the result and only logged; use CompareReport to see them.
func (c *Comparer) Compare(ctx context.Context, path1, path2 string) ([]FileDifference, error) {
	r, err := c.CompareReport(ctx, path1, path2)
	if err != nil {
		return nil, err
	}
	return r.Differences, nil
}

// CompareReport is like Compare but also returns the per-entry error log and
// timing information.
func (c *Comparer) CompareReport(ctx context.Context, path1, path2 string) (*Report, error) {
	start := time.Now()
	r := &Report{ID: uuid.NewString(), Differences: []FileDifference{}}
	log := c.log().With("comparison", r.ID)

	hash1, err := util.GetFileHash(path1)
	if err != nil {
		return nil, err
	}
	hash2, err := util.GetFileHash(path2)
	if err != nil {
		return nil, err
	}
	log.Debug("archive digests computed", "zip1", hash1, "zip2", hash2, "elapsed", time.Since(start))
	if hash1 == hash2 {
		r.Identical = true
		r.Duration = time.Since(start)
		log.Info("archives are identical, skipping diff", "elapsed", r.Duration)
		return r, nil
	}

	c1, c2, err := buildCatalogs(path1, path2)
	if err != nil {
		return nil, err
	}
	names := Universe(c1, c2)
	log.Debug("catalogs built", "zip1_entries", c1.Len(), "zip2_entries", c2.Len(), "universe", len(names))

	shards := c.partition(names)
	g, gctx := errgroup.WithContext(ctx)
	for i := range shards {
		s := &shards[i]
		g.Go(func() error {
			return c.runShard(gctx, log, s, path1, path2, c1, c2)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.Differences, r.Errors = merge(shards)
	r.Duration = time.Since(start)
	if len(r.Errors) > 0 {
		log.Warn("encountered errors", "count", len(r.Errors), "errors", joinErrors(r.Errors))
	}
	log.Info("comparison complete", "differences", len(r.Differences), "elapsed", r.Duration)
	return r, nil
}

// buildCatalogs catalogs both archives concurrently.
func buildCatalogs(path1, path2 string) (util.Catalog, util.Catalog, error) {
	var c1, c2 util.Catalog
	var g errgroup.Group
	g.Go(func() (err error) {
		c1, err = util.BuildCatalog(path1)
		return err
	})
	g.Go(func() (err error) {
		c2, err = util.BuildCatalog(path2)
		return err
	})
	if err := g.Wait(); err != nil {
		return util.Catalog{}, util.Catalog{}, err
	}
	return c1, c2, nil
}

// partition spreads names over at most c.workers shards by name hash.
func (c *Comparer) partition(names []string) []shard {
	n := min(c.workers, len(names))
	if n < 1 {
		return nil
	}
	shards := make([]shard, n)
	for _, name := range names {
		i := int(colorhash.HashString(name)) % n
		if i < 0 {
			i = -i
		}
		shards[i].names = append(shards[i].names, name)
	}
	return shards
}

func (c *Comparer) runShard(ctx context.Context, log *slog.Logger, s *shard, path1, path2 string, c1, c2 util.Catalog) error {
	for _, name := range s.names {
		if err := ctx.Err(); err != nil {
			return err
		}
		diff, next := classify(name, c1, c2)
		c.settle(log, s, path1, path2, diff, next)
	}
	return nil
}

// settle records the outcome of one classified name in s.
func (c *Comparer) settle(log *slog.Logger, s *shard, path1, path2 string, diff FileDifference, next decision) {
	switch next {
	case decideUnchanged:
	case decideReport:
		if diff.Status == StatusModifiedImage {
			log.Debug("skipping image file", "name", diff.Filename)
		}
		s.diffs = append(s.diffs, diff)
	case decideDiff:
		diff, err := diffEntry(c.extract, path1, path2, diff.Filename)
		if err != nil {
			s.errors = append(s.errors, err)
			return
		}
		s.diffs = append(s.diffs, diff)
	default:
		s.diffs = append(s.diffs, FileDifference{Filename: diff.Filename, Status: StatusUnknown})
	}
}

package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yokitheyo/filegen/internal/generator"
	"github.com/yokitheyo/filegen/internal/model"
	"golang.org/x/sync/semaphore"
)

const DefaultMaxParallel = 20

type Options struct {
	MaxParallel int
	Sink        generator.Sink
	Logger      *zerolog.Logger // nil disables logging
	// Now is used for file names and report timestamps.
	Now func() time.Time
}

// Engine generates the files of a job with at most MaxParallel units
// writing at any time.
type Engine struct {
	maxParallel int64
	sink        generator.Sink
	log         zerolog.Logger
	now         func() time.Time
}

func New(opts Options) *Engine {
	e := &Engine{
		maxParallel: int64(opts.MaxParallel),
		sink:        opts.Sink,
		log:         zerolog.Nop(),
		now:         opts.Now,
	}
	if opts.Logger != nil {
		e.log = *opts.Logger
	}
	if e.maxParallel < 1 {
		e.maxParallel = DefaultMaxParallel
	}
	if e.sink == nil {
		e.sink = generator.NewFileSink()
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Run launches job.Count units and waits for all of them. Unit failures are
// collected in the report; the returned error is non-nil only for an invalid
// job. If ctx is cancelled, units that have not started are recorded as
// failed and running units stop at the next block.
func (e *Engine) Run(ctx context.Context, job model.Job) (*model.Report, error) {
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}

	started := e.now()
	report := &model.Report{
		ID:        uuid.New().String(),
		Requested: job.Count,
		StartedAt: started,
	}
	log := e.log.With().Str("batch", report.ID).Logger()
	log.Debug().
		Int("count", job.Count).
		Int("min_mb", job.MinSizeMB).
		Int("max_mb", job.MaxSizeMB).
		Int64("max_parallel", e.maxParallel).
		Msg("batch started")

	sem := semaphore.NewWeighted(e.maxParallel)
	col := &collector{report: report}
	var wg sync.WaitGroup

	for i := 0; i < job.Count; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			for ; i < job.Count; i++ {
				col.add(model.Result{
					Success: false,
					Reason:  fmt.Sprintf("unit %d (not started: %v)", i, err),
					Err:     err,
				})
			}
			break
		}
		wg.Add(1)
		go func(unit int) {
			defer wg.Done()
			defer sem.Release(1) // release slot
			res := e.runUnit(ctx, job)
			if !res.Success {
				log.Warn().Err(res.Err).Int("unit", unit).Str("path", res.Path).Msg("file generation failed")
			}
			col.add(res)
		}(i)
	}
	wg.Wait()

	report.Duration = e.now().Sub(started)
	log.Debug().
		Int("succeeded", report.Succeeded).
		Int("failed", report.FailureCount()).
		Dur("duration", report.Duration).
		Msg("batch finished")
	return report, nil
}

// runUnit produces exactly one file and never returns without a result.
func (e *Engine) runUnit(ctx context.Context, job model.Job) model.Result {
	src := generator.NewSource()
	sizeMB := generator.PickSizeMB(rand.New(src), job.MinSizeMB, job.MaxSizeMB)

	w, path, err := e.sink.Create(job.Dir, generator.FileStem(e.now()), job.Extension)
	if err != nil {
		return failure(path, sizeMB, "create", err)
	}
	_, err = generator.WriteRandom(ctx, w, sizeMB, src)
	if cerr := w.Close(); err == nil && cerr != nil {
		return failure(path, sizeMB, "close", cerr)
	}
	if err != nil {
		return failure(path, sizeMB, "write", err)
	}
	return model.Result{Path: path, SizeMB: sizeMB, Success: true}
}

func failure(path string, sizeMB int, stage string, err error) model.Result {
	return model.Result{
		Path:   path,
		SizeMB: sizeMB,
		Reason: fmt.Sprintf("%s (%s error: %v)", path, stage, err),
		Err:    err,
	}
}

type collector struct {
	mu     sync.Mutex
	report *model.Report
}

func (c *collector) add(res model.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if res.Success {
		c.report.Succeeded++
		c.report.BytesWritten += int64(res.SizeMB) * generator.BytesPerMB
		return
	}
	c.report.Failures = append(c.report.Failures, res)
}

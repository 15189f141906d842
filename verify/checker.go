package verify

import (
	"context"
	"fmt"
	"iter"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/bittersweet/bitline"
	"github.com/hupe1980/bittersweet/testutil"
)

// checkEvery is the number of words between context checks.
const checkEvery = 4096

// Checker evaluates the laws of package bitline.
// It is safe to call Run concurrently.
type Checker struct {
	opts Options
}

// New creates a Checker.
func New(optFns ...Option) *Checker {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Checker{opts: opts}
}

// Options returns a copy of the checker's configuration.
func (c *Checker) Options() Options {
	return c.opts
}

// Run checks every law at every configured width.
//
// The report lists all tasks in configuration order, including the ones
// cancelled after the first violation. The returned error wraps the first
// violation, a cancellation of ctx or a WidthError.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	tasks, err := c.tasks()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]Result, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.opts.Concurrency, 1))

	for i, t := range tasks {
		g.Go(func() error {
			begin := time.Now()
			checked, err := t.run(gctx, c.progress(t))
			elapsed := time.Since(begin)

			results[i] = Result{
				Width:      t.width,
				Law:        t.law,
				Bijection:  t.bijection,
				Exhaustive: t.exhaustive,
				Checked:    checked,
				Elapsed:    elapsed,
				Err:        err,
			}
			c.opts.Logger.LogLaw(gctx, t.width, t.law, checked, elapsed, err)
			c.opts.Metrics.RecordLaw(t.width, t.law, checked, elapsed, err)
			return err
		})
	}

	err = g.Wait()
	report := &Report{Results: results, Elapsed: time.Since(start)}
	c.opts.Logger.LogRun(ctx, len(results), report.Failed(), report.Elapsed)
	c.opts.Metrics.RecordRun(len(results), report.Failed(), report.Elapsed)

	if err != nil {
		return report, fmt.Errorf("verify: %w", err)
	}
	return report, nil
}

// task checks one law at one width.
type task struct {
	width      int
	law        string
	bijection  bool
	exhaustive bool
	total      uint64
	run        func(ctx context.Context, progress func(checked uint64)) (uint64, error)
}

func (c *Checker) tasks() ([]task, error) {
	var tasks []task
	for _, w := range c.opts.Widths {
		switch w {
		case 8:
			tasks = append(tasks, widthTasks(exhaustive[bitline.Line8, uint8]())...)
		case 16:
			tasks = append(tasks, widthTasks(exhaustive[bitline.Line16, uint16]())...)
		case 32:
			if c.opts.Exhaustive32 {
				tasks = append(tasks, widthTasks(exhaustive[bitline.Line32, uint32]())...)
			} else {
				tasks = append(tasks, widthTasks(sampled[bitline.Line32](c.opts.Seed, c.opts.Samples))...)
			}
		case 64:
			tasks = append(tasks, widthTasks(sampled[bitline.Line64](c.opts.Seed, c.opts.Samples))...)
		case 128:
			tasks = append(tasks, widthTasks(sampled[bitline.Line128](c.opts.Seed, c.opts.Samples))...)
		default:
			return nil, &WidthError{Width: w}
		}
	}
	return tasks, nil
}

// progress returns a throttled progress logger for t, or a no-op when
// progress logging is disabled.
func (c *Checker) progress(t task) func(checked uint64) {
	if c.opts.ProgressInterval <= 0 {
		return func(uint64) {}
	}

	logger := c.opts.Logger.WithWidth(t.width).WithLaw(t.law)
	every := &rate.Sometimes{Interval: c.opts.ProgressInterval}

	return func(checked uint64) {
		every.Do(func() {
			logger.Debug("law check progress",
				"checked", checked,
				"total", t.total,
			)
		})
	}
}

// domain is the set of words a width is checked on.
type domain[T bitline.Word[T]] struct {
	values     iter.Seq[T]
	size       uint64
	exhaustive bool
}

func exhaustive[T bitline.Word[T], U constraints.Unsigned]() domain[T] {
	return domain[T]{
		values:     testutil.ExhaustiveLines[T, U](),
		size:       1 << bitline.Len[T](),
		exhaustive: true,
	}
}

// sampled yields the edge words of T followed by n seeded random words.
// Every iteration restarts the generator, so all laws see the same words.
func sampled[T bitline.Word[T]](seed int64, n int) domain[T] {
	edges := testutil.Edges[T]()
	return domain[T]{
		values: func(yield func(T) bool) {
			for _, v := range edges {
				if !yield(v) {
					return
				}
			}
			r := testutil.NewRNG(seed)
			for i := range n {
				v := testutil.Line[T](r)
				if i%2 == 1 {
					v = testutil.Sparse[T](r)
				}
				if !yield(v) {
					return
				}
			}
		},
		size: uint64(len(edges) + n),
	}
}

func widthTasks[T bitline.Word[T]](d domain[T]) []task {
	width := bitline.Len[T]()

	var tasks []task
	for _, law := range Laws[T]() {
		tasks = append(tasks, task{
			width:      width,
			law:        law.Name,
			exhaustive: d.exhaustive,
			total:      d.size,
			run: func(ctx context.Context, progress func(uint64)) (uint64, error) {
				return each(ctx, d.values, progress, func(v T) error {
					if !law.Holds(v) {
						return &LawError{Law: law.Name, Width: width, Input: bitline.Repr(v)}
					}
					return nil
				})
			},
		})
	}

	for _, b := range Bijections[T]() {
		tasks = append(tasks, task{
			width:      width,
			law:        b.Name,
			bijection:  true,
			exhaustive: d.exhaustive,
			total:      d.size,
			run: func(ctx context.Context, progress func(uint64)) (uint64, error) {
				return checkBijection(ctx, d, b, progress)
			},
		})
	}
	return tasks
}

// checkBijection fails on the first word whose image was already produced by
// a different word. Repeated sample inputs are skipped.
func checkBijection[T bitline.Word[T]](ctx context.Context, d domain[T], b Bijection[T], progress func(uint64)) (uint64, error) {
	width := bitline.Len[T]()
	images := newWordSet[T](width)

	var inputs wordSet[T]
	if !d.exhaustive {
		inputs = newWordSet[T](width)
	}

	checked, err := each(ctx, d.values, progress, func(v T) error {
		if inputs != nil && !inputs.insert(v) {
			return nil
		}
		if out := b.Map(v); !images.insert(out) {
			return &LawError{
				Law:    b.Name,
				Width:  width,
				Input:  bitline.Repr(v),
				Detail: "image " + bitline.Repr(out) + " already produced by another word",
			}
		}
		return nil
	})
	if err != nil {
		return checked, err
	}

	if d.exhaustive && images.len() != d.size {
		return checked, &LawError{
			Law:    b.Name,
			Width:  width,
			Detail: fmt.Sprintf("%d distinct images for %d words", images.len(), d.size),
		}
	}
	return checked, nil
}

// each applies fn to every value, checking ctx and reporting progress every
// checkEvery values.
func each[T any](ctx context.Context, values iter.Seq[T], progress func(uint64), fn func(T) error) (uint64, error) {
	var checked uint64
	for v := range values {
		if checked%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return checked, err
			}
			progress(checked)
		}
		if err := fn(v); err != nil {
			return checked + 1, err
		}
		checked++
	}
	return checked, nil
}

package main

import (
	"context"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hupe1980/bittersweet"
	"github.com/hupe1980/bittersweet/verify"
)

type verifyParams struct {
	widths           []int
	samples          int
	exhaustive32     bool
	seed             int64
	concurrency      int
	progressInterval time.Duration
}

func addVerifyParams(cmd *kingpin.CmdClause) *verifyParams {
	p := &verifyParams{}
	cmd.Flag("width", "Word width to check; repeatable. Defaults to all widths.").Short('w').IntsVar(&p.widths)
	cmd.Flag("samples", "Random words per sampled width.").Default("100000").Envar(envPrefix + "SAMPLES").IntVar(&p.samples)
	cmd.Flag("exhaustive-32", "Enumerate all 2^32 words of width 32 instead of sampling.").Default("false").BoolVar(&p.exhaustive32)
	cmd.Flag("seed", "Seed of the sample generator.").Default("4711").Envar(envPrefix + "SEED").Int64Var(&p.seed)
	cmd.Flag("concurrency", "Laws checked in parallel (0 = GOMAXPROCS).").Default("0").IntVar(&p.concurrency)
	cmd.Flag("progress-interval", "Minimum time between progress log lines of a law (0 disables).").Default("5s").DurationVar(&p.progressInterval)
	return p
}

func runVerify(ctx context.Context, p *verifyParams) error {
	metrics := &bittersweet.BasicMetricsCollector{}
	opts := []verify.Option{
		verify.WithMetrics(metrics),
		verify.WithSamples(p.samples),
		verify.WithExhaustive32(p.exhaustive32),
		verify.WithSeed(p.seed),
		verify.WithConcurrency(p.concurrency),
		verify.WithProgressInterval(p.progressInterval),
		verify.WithLogger(loggerFrom(ctx)),
	}
	if len(p.widths) > 0 {
		opts = append(opts, verify.WithWidths(p.widths...))
	}

	report, err := verify.New(opts...).Run(ctx)

	stats := metrics.GetStats()
	loggerFrom(ctx).DebugContext(ctx, "verification metrics",
		"laws", stats.LawCount,
		"violated", stats.LawErrors,
		"words", stats.WordsChecked,
		"avg_law", time.Duration(stats.LawAvgNanos),
	)

	if report != nil {
		if _, werr := report.WriteTo(output(ctx)); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

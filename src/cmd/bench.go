package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"sortdemo/src/sort"
)

func CmdBench() *cli.Command {
	return &cli.Command{
		Name:     "bench",
		Action:   bench,
		Category: "SORT",
		Usage:    "compare strategies on random sequences",
		Description: `
Sorts the same random sequences with each strategy and reports the total
comparisons, swaps and time, and how many results came out sorted.

Examples:
$ sortdemo bench --size 200 --rounds 50
$ sortdemo bench -s bubble -s selection --seed 7`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "size",
				Value: 100,
				Usage: "length of each sequence",
			},
			&cli.IntFlag{
				Name:  "rounds",
				Value: 20,
				Usage: "number of sequences",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "random seed",
			},
			&cli.StringSliceFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Usage:   "strategy to run, repeatable (default: all)",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "do not draw progress bars",
			},
		},
	}
}

type benchResult struct {
	strategy    sort.Strategy
	comparisons int64
	swaps       int64
	sorted      int
	elapsed     time.Duration
}

func selectStrategies(names []string) ([]sort.Strategy, error) {
	if len(names) == 0 {
		return sort.Strategies(), nil
	}
	selected := make([]sort.Strategy, 0, len(names))
	for _, name := range names {
		s, err := sort.Lookup(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, s)
	}
	return selected, nil
}

func randomInputs(seed int64, size, rounds int) []sort.Sequence {
	r := rand.New(rand.NewSource(seed))
	inputs := make([]sort.Sequence, rounds)
	for i := range inputs {
		seq := make(sort.Sequence, size)
		for j := range seq {
			seq[j] = r.Int63n(1<<32) - 1<<31
		}
		inputs[i] = seq
	}
	return inputs
}

func bench(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	strategies, err := selectStrategies(ctx.StringSlice("strategy"))
	if err != nil {
		return err
	}
	size, rounds := ctx.Int("size"), ctx.Int("rounds")
	if size < 0 || rounds <= 0 {
		return errors.Errorf("invalid size %d or rounds %d", size, rounds)
	}
	inputs := randomInputs(ctx.Int64("seed"), size, rounds)

	var progress *mpb.Progress
	if !ctx.Bool("no-progress") {
		progress = mpb.New(mpb.WithOutput(ctx.App.ErrWriter), mpb.WithWidth(48))
	}

	results := make([]benchResult, 0, len(strategies))
	for _, s := range strategies {
		var bar *mpb.Bar
		if progress != nil {
			bar = progress.AddBar(int64(rounds),
				mpb.PrependDecorators(decor.Name(s.Name()+" ")),
				mpb.AppendDecorators(decor.CountersNoUnit("%d / %d")),
			)
		}
		res := benchResult{strategy: s}
		for _, in := range inputs {
			seq := sort.NewSequence(in...)
			counter := sort.Count(seq)
			start := time.Now()
			s.Sort(counter)
			used := time.Since(start)

			sortMetrics.Observe(s.Name(), counter, used)
			res.comparisons += counter.Comparisons
			res.swaps += counter.Swaps
			res.elapsed += used
			if sort.IsSorted(seq) {
				res.sorted++
			}
			if bar != nil {
				bar.Increment()
			}
		}
		logger.Debugf("%s finished %d rounds in %s", s.Name(), rounds, res.elapsed)
		results = append(results, res)
	}
	if progress != nil {
		progress.Wait()
	}

	w := ctx.App.Writer
	for _, res := range results {
		fmt.Fprintf(w, "%-14s comparisons: %s, swaps: %s, sorted: %d/%d, time: %s\n",
			res.strategy.Name(), humanize.Comma(res.comparisons), humanize.Comma(res.swaps),
			res.sorted, rounds, res.elapsed.Round(time.Microsecond))
	}
	return nil
}

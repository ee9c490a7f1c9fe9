package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	"sortdemo/src/sort"
	"sortdemo/src/store"
	"sortdemo/src/utils"
)

func CmdSort() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML file to load the other flags from",
		},
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "strategy",
			Aliases: []string{"s"},
			Value:   sort.Selection.Name(),
			EnvVars: []string{"SORT_STRATEGY"},
			Usage:   "one of bubble, adjacent-swap, selection",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "meta-url",
			Aliases: []string{"m"},
			EnvVars: []string{"SORT_META_URL"},
			Usage:   "record the run in this database (mysql://DSN or sqlite3://PATH)",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  "stats",
			Usage: "print comparison and swap counts",
		}),
	}
	return &cli.Command{
		Name:      "sort",
		Action:    sortSequence,
		Category:  "SORT",
		Usage:     "sort integers in place and print them",
		ArgsUsage: "[INT...]",
		Description: `
Sorts the given integers with one strategy and prints the result on one line.
Without arguments the built-in sample of ten values is used.

Examples:
$ sortdemo sort
$ sortdemo sort -s bubble --stats 5 3 9 1
# negative values go after --
$ sortdemo sort -s adjacent-swap -- 3 -2 1
$ sortdemo sort -m "sqlite3:///tmp/runs.db" 4 2 8`,
		Flags:  flags,
		Before: altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config")),
	}
}

func parseSequence(args []string) (sort.Sequence, error) {
	if len(args) == 0 {
		return sort.Sample(), nil
	}
	seq := make(sort.Sequence, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		seq[i] = v
	}
	return seq, nil
}

func sortSequence(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	strategy, err := sort.Lookup(ctx.String("strategy"))
	if err != nil {
		return err
	}
	input, err := parseSequence(ctx.Args().Slice())
	if err != nil {
		return err
	}

	seq := sort.NewSequence(input...)
	counter := sort.Count(seq)
	start := time.Now()
	strategy.Sort(counter)
	sortMetrics.Observe(strategy.Name(), counter, time.Since(start))
	logger.Debugf("%s: %d comparisons, %d swaps", strategy.Name(), counter.Comparisons, counter.Swaps)

	w := ctx.App.Writer
	fmt.Fprint(w, "Sorted array: ")
	if err = utils.PrintArr(w, seq); err != nil {
		return err
	}
	if ctx.Bool("stats") {
		fmt.Fprintf(w, "comparisons: %s, swaps: %s\n", humanize.Comma(counter.Comparisons), humanize.Comma(counter.Swaps))
	}
	if !strategy.Total() && !sort.IsSorted(seq) {
		logger.Warnf("%s only repairs neighbouring inversions; result is not fully sorted", strategy.Name())
	}

	metaURL := ctx.String("meta-url")
	if metaURL == "" {
		return nil
	}
	st, err := store.Open(metaURL)
	if err != nil {
		return err
	}
	defer st.Close()
	run := store.NewRun(strategy.Name(), input, seq, counter)
	if err = st.Save(run); err != nil {
		return err
	}
	logger.Infof("saved run %s", run.RunId)
	return nil
}

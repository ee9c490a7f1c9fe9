package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sortdemo/src/store"
	"sortdemo/src/utils"
)

func CmdShow() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Action:    show,
		Category:  "TOOL",
		Usage:     "display one recorded sort run",
		ArgsUsage: "RUN-ID",
		Description: `
Prints the input, output and counters of a run saved by "sort --meta-url".

Examples:
$ sortdemo show -m "sqlite3:///tmp/runs.db" 5f0c7a3e-6f61-4b53-9d3c-0f1e2b7c9a11`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "meta-url",
				Aliases:  []string{"m"},
				EnvVars:  []string{"SORT_META_URL"},
				Required: true,
				Usage:    "database the run was recorded in",
			},
		},
	}
}

func show(ctx *cli.Context) error {
	if err := setup(ctx, 1); err != nil {
		return err
	}
	st, err := store.Open(ctx.String("meta-url"))
	if err != nil {
		return err
	}
	defer st.Close()

	runID := ctx.Args().Get(0)
	r, ok, err := st.Get(runID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Errorf("run %s not found", runID)
	}

	state := "sorted"
	if !r.Sorted {
		state = "partial"
	}
	w := ctx.App.Writer
	fmt.Fprintf(w, "run:         %s\n", r.RunId)
	fmt.Fprintf(w, "strategy:    %s (%s)\n", r.Strategy, state)
	fmt.Fprintf(w, "created:     %s\n", r.Created.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "input:       %s\n", utils.FormatLine(r.Input))
	fmt.Fprintf(w, "output:      %s\n", utils.FormatLine(r.Output))
	fmt.Fprintf(w, "comparisons: %s\n", humanize.Comma(r.Comparisons))
	fmt.Fprintf(w, "swaps:       %s\n", humanize.Comma(r.Swaps))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"sortdemo/src/store"
	"sortdemo/src/utils"
)

func CmdHistory() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Action:    history,
		Category:  "TOOL",
		Usage:     "displays recorded sort runs",
		ArgsUsage: "",
		Description: `It is used to display the runs saved by "sort --meta-url".

Examples:
$ sortdemo history -m "sqlite3:///tmp/runs.db"
$ sortdemo history -m "mysql://root:pw@tcp(127.0.0.1:3306)/sorts" --tree
# A safer alternative
$ export SORT_META_URL="mysql://root:pw@tcp(127.0.0.1:3306)/sorts"
$ sortdemo history -s bubble`,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "meta-url",
				Aliases:  []string{"m"},
				EnvVars:  []string{"SORT_META_URL"},
				Required: true,
				Usage:    "database the runs were recorded in",
			},
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Usage:   "only show runs of this strategy",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   20,
				Usage:   "show at most this many runs (0 for all)",
			},
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "group runs by strategy in a tree",
			},
		},
	}
}

func history(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	st, err := store.Open(ctx.String("meta-url"))
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List(ctx.String("strategy"), ctx.Int("limit"))
	if err != nil {
		return err
	}
	logger.Debugf("found %d runs", len(runs))

	w := ctx.App.Writer
	if ctx.Bool("tree") {
		paths := make([]string, 0, len(runs))
		for _, r := range runs {
			paths = append(paths, r.Strategy+"/"+r.RunId)
		}
		node := &utils.Node{}
		node.LTree(paths)
		node.ShowTree(w, "")
		return nil
	}

	for _, r := range runs {
		state := "sorted"
		if !r.Sorted {
			state = "partial"
		}
		fmt.Fprintf(w, "%s %s %s %s: %s\n",
			r.Created.Format("2006-01-02 15:04:05"), r.RunId, r.Strategy, state, utils.FormatLine(r.Output))
	}
	return nil
}

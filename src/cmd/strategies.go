package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
)

func CmdStrategies() *cli.Command {
	return &cli.Command{
		Name:     "strategies",
		Action:   listStrategies,
		Category: "SORT",
		Usage:    "list the available strategies",
	}
}

func listStrategies(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	for _, s := range sort.Strategies() {
		kind := "total"
		if !s.Total() {
			kind = "partial"
		}
		fmt.Fprintf(ctx.App.Writer, "%-14s %s\n", s.Name(), kind)
	}
	return nil
}

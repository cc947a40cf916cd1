package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/fixture"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

type solveOpts struct {
	file        string
	origin      string
	destination string
}

var exampleForSolve = `
solve a fixture:
  gridpath solve -f maze.yaml

override the endpoints:
  gridpath solve -f maze.yaml --origin 0,0 --destination 4,1
`

func newSolveCmd(a *app) *cobra.Command {
	opts := &solveOpts{}
	solveCmd := &cobra.Command{
		Use:     "solve",
		Short:   "Compute shortest hop distances and one shortest path for a fixture",
		Args:    cobra.NoArgs,
		Example: exampleForSolve,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, opts)
		},
	}
	solveCmd.Flags().StringVarP(&opts.file, "file", "f", "", "fixture file to solve")
	solveCmd.Flags().StringVar(&opts.origin, "origin", "", "origin cell as row,col (overrides the fixture)")
	solveCmd.Flags().StringVar(&opts.destination, "destination", "", "destination cell as row,col (overrides the fixture)")
	solveCmd.Flags().Int("max-depth", 0, "stop exploring beyond this many hops (0 means no limit)")
	if err := solveCmd.MarkFlagRequired("file"); err != nil {
		panic(err)
	}
	a.bind("solve.max-depth", solveCmd.Flags(), "max-depth")

	return solveCmd
}

func (a *app) runSolve(cmd *cobra.Command, opts *solveOpts) error {
	fix, err := fixture.Load(opts.file)
	if err != nil {
		return err
	}
	g, origin, dest, err := fix.Build()
	if err != nil {
		return err
	}
	if opts.origin != "" {
		if origin, err = gridgraph.ParseCell(opts.origin); err != nil {
			return errors.Wrap(err, "invalid --origin")
		}
	}
	if opts.destination != "" {
		if dest, err = gridgraph.ParseCell(opts.destination); err != nil {
			return errors.Wrap(err, "invalid --destination")
		}
	}
	logrus.Infof("solving %dx%d grid from %v to %v", g.Rows, g.Cols, origin, dest)

	res, err := gridsearch.Search(g, origin, dest,
		gridsearch.WithMaxDepth(a.v.GetInt("solve.max-depth")),
		gridsearch.WithOnEnqueue(func(c gridgraph.Cell, depth int) {
			logrus.Debugf("enqueue %v at depth %d", c, depth)
		}),
		gridsearch.WithOnVisit(func(c gridgraph.Cell, depth int) error {
			logrus.Debugf("visit %v at depth %d", c, depth)
			return nil
		}),
	)
	if err != nil {
		return errors.Wrapf(err, "search from %v to %v failed", origin, dest)
	}
	logrus.Debugf("reached %d of %d open cells", res.Distances.Reachable(), g.OpenCount())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "grid:\n%s", g)
	fmt.Fprintf(out, "distances:\n%s", res.Distances)
	if !res.Distance.Reachable() {
		fmt.Fprintln(out, "distance: Unreachable")
		return nil
	}
	fmt.Fprintf(out, "distance: %s\n", res.Distance)
	fmt.Fprintf(out, "path: %s\n", gridsearch.FormatPath(res.Path))
	return nil
}

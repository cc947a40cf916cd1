package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/fixture"
	"github.com/katalvlaran/gridpath/gridgraph"
)

type generateOpts struct {
	output string
	name   string
}

var exampleForGenerate = `
print a random 5x5 fixture:
  gridpath generate

write a reproducible 20x40 fixture with fewer obstacles:
  gridpath generate --rows 20 --cols 40 --obstacle-probability 0.2 --seed 7 -o maze.yaml
`

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOpts{}
	generateCmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate a random grid fixture",
		Long:    "Generate a random grid fixture. The origin is the top-left cell and the destination the bottom-right cell; both are always open.",
		Args:    cobra.NoArgs,
		Example: exampleForGenerate,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, opts)
		},
	}
	flags := generateCmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write the fixture to this file instead of stdout")
	flags.StringVar(&opts.name, "name", "random", "fixture name")
	flags.Int("rows", 5, "number of grid rows")
	flags.Int("cols", 5, "number of grid columns")
	flags.Float64("obstacle-probability", gridgraph.DefaultObstacleProbability, "probability that a cell is blocked, within [0,1]")
	flags.Int64("seed", 0, "random seed (0 picks one from the clock)")

	a.bind("generate.rows", flags, "rows")
	a.bind("generate.cols", flags, "cols")
	a.bind("generate.obstacle-probability", flags, "obstacle-probability")
	a.bind("generate.seed", flags, "seed")

	return generateCmd
}

func (a *app) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	rows, cols := a.v.GetInt("generate.rows"), a.v.GetInt("generate.cols")
	prob := a.v.GetFloat64("generate.obstacle-probability")
	seed := a.v.GetInt64("generate.seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := gridgraph.Random(rows, cols, prob, rand.New(rand.NewSource(seed)))
	if err != nil {
		return errors.Wrapf(err, "failed to generate %dx%d grid", rows, cols)
	}
	origin, dest := gridgraph.Cell{}, gridgraph.Cell{Row: rows - 1, Col: cols - 1}
	if g, err = g.WithOpen(origin, dest); err != nil {
		return err
	}
	logrus.Infof("generated %dx%d grid with seed %d (%d open cells)", rows, cols, seed, g.OpenCount())

	fix := fixture.FromGrid(opts.name, g, origin, dest)
	if opts.output != "" {
		if err := fixture.Save(opts.output, fix); err != nil {
			return err
		}
		logrus.Infof("fixture written to %s", opts.output)
		return nil
	}

	data, err := fixture.Marshal(fix)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}

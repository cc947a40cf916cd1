// Package cmd implements the gridpath command line: solving grid fixtures
// and generating random ones.
package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GRIDPATH"

type rootOpts struct {
	cfgFile  string
	debug    bool
	hideTime bool
}

// app carries state shared by the root command and its subcommands.
type app struct {
	opts rootOpts
	v    *viper.Viper
}

var longRootCmdDescription = `gridpath finds shortest hop paths on grids of open and blocked cells.

Grids are described by YAML fixtures: text rows where '_' is open and 'X' is
blocked, plus an origin and a destination. Use "generate" to create a random
fixture and "solve" to compute distances and one shortest path.
`

// NewRootCmd builds the gridpath command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "Shortest paths over grids with obstacles",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.opts.cfgFile, "config", "", "config file (YAML) with defaults for command flags")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.debug, "debug", "d", false, "turn on debug logging, including every search step")
	rootCmd.PersistentFlags().BoolVar(&a.opts.hideTime, "hide-time", false, "hide the log time")
	rootCmd.DisableAutoGenTag = true

	rootCmd.AddCommand(newSolveCmd(a), newGenerateCmd(a))
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("gridpath: %v", err)
		os.Exit(1)
	}
}

// init configures logging and reads the config file and environment.
func (a *app) init(cmd *cobra.Command) error {
	initLogger(a.opts.debug, a.opts.hideTime)
	logrus.SetOutput(cmd.ErrOrStderr())

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if a.opts.cfgFile == "" {
		return nil
	}
	a.v.SetConfigFile(a.opts.cfgFile)
	if err := a.v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config %s", a.opts.cfgFile)
	}
	logrus.Debugf("using config file %s", a.v.ConfigFileUsed())
	return nil
}

// bind registers flag name of fs under the config key.
func (a *app) bind(key string, fs *pflag.FlagSet, name string) {
	if err := a.v.BindPFlag(key, fs.Lookup(name)); err != nil {
		panic(errors.Wrapf(err, "failed to bind flag %s", name))
	}
}

func initLogger(debug, hideTime bool) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: hideTime,
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02 15:04:05",
	})
}

package commands

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/vasily-kirichenko/blog/bench"
	"github.com/vasily-kirichenko/blog/cmd/config"
)

func Execute() {
	var rootCmd = createRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func createRootCmd() *cobra.Command {
	k := koanf.New(".")
	var cfgPath string

	rollCmd := &cobra.Command{
		Use:   "rollbench [flags]",
		Short: "rollbench compares rolling-buffer strategies: growable slice, linked list and circular buffer",
		Long: `rollbench keeps a fixed-size rolling window of integers with several
container strategies, measures each one in isolation and prints a
table of ns/op, B/op and allocs/op per strategy.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	reg := config.NewRegistry(k, rollCmd.Flags())
	size := reg.IntP("size", "n", bench.DefaultSize, "number of values kept in the rolling window")
	factor := reg.Int("factor", bench.DefaultFactor, "timed slides per benchmark op, as a multiple of size")
	routines := reg.StringsP("routines", "r", nil, "routines to run (default all: slice, list, ring, queue)")
	noColor := reg.Bool("no-color", false, "disable colored output")
	rollCmd.Flags().StringVar(
		&cfgPath,
		"config",
		"",
		"YAML file with default parameter values; explicit flags take precedence")

	rollCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if cfgPath != "" {
			if err := k.Load(file.Provider(cfgPath), yaml.Parser()); err != nil {
				return fmt.Errorf("load config %s: %w", cfgPath, err)
			}
		}
		if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
			return fmt.Errorf("read flags: %w", err)
		}

		results, err := bench.Run(bench.Spec{
			Size:   size(),
			Factor: factor(),
			Names:  routines(),
		})
		if err != nil {
			return err
		}
		bench.WriteTable(cmd.OutOrStdout(), results, !noColor())
		return nil
	}

	return rollCmd
}

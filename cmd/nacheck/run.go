// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runOptions holds the raw flag values of `nacheck run`.
type runOptions struct {
	config  string
	seed    uint64
	samples int
	eps     float64
}

func bindRunFlags(fs *pflag.FlagSet, o *runOptions) {
	def := DefaultConfig()
	fs.StringVar(&o.config, "config", "", "YAML file with seed, samples, epsilon and properties")
	fs.Uint64Var(&o.seed, "seed", def.Seed, "seed of the pseudo-random samples")
	fs.IntVar(&o.samples, "samples", def.Samples, "samples per property")
	fs.Float64Var(&o.eps, "eps", def.Epsilon, "absolute comparison tolerance")
}

// resolve layers the flags that were set explicitly over the config file,
// which itself is layered over the defaults.
func (o *runOptions) resolve(fs *pflag.FlagSet) (Config, error) {
	cfg := DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = LoadConfig(o.config); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("seed") {
		cfg.Seed = o.seed
	}
	if fs.Changed("samples") {
		cfg.Samples = o.samples
	}
	if fs.Changed("eps") {
		cfg.Epsilon = o.eps
	}

	return cfg, cfg.Validate()
}

func runCmd(level *string) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [property...]",
		Short: "Check the properties over random samples",
		Long: "Check the properties over random samples and stop at the first violation.\n" +
			"Positional arguments restrict the run to the named properties.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), *level)
			if err != nil {
				return err
			}
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Properties = args
			}
			props, err := selectProperties(registry, cfg.Properties)
			if err != nil {
				return err
			}

			log.Info().Uint64("seed", cfg.Seed).Int("samples", cfg.Samples).Float64("eps", cfg.Epsilon).
				Int("properties", len(props)).Msg("nacheck starting")
			results, err := runSuite(cmd.Context(), props, cfg, log)
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %-34s %d samples\n", r.Property, r.Samples)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PASS %d properties\n", len(results))

			return nil
		},
	}
	bindRunFlags(cmd.Flags(), &opts)

	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pcmatrix/config"
	"github.com/katalvlaran/pcmatrix/matrix"
	"github.com/katalvlaran/pcmatrix/prodcons"
)

// errUnbalanced is returned when a run finished without a worker error but
// its produced and consumed totals differ.
var errUnbalanced = errors.New("pcmatrix: produced and consumed totals differ")

// positionalKeys are the configuration keys filled by positional arguments,
// in order.
var positionalKeys = []string{
	config.KeyWorkers,
	config.KeyBufferSize,
	config.KeyMatrices,
	config.KeyMode,
}

// app carries the per-invocation state shared by the commands.
type app struct {
	v          *viper.Viper
	configPath string
	stdout     io.Writer
	stderr     io.Writer
	now        func() time.Time
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(&app{v: viper.New(), stdout: stdout, stderr: stderr, now: time.Now})
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "pcmatrix: %v\n", err)
		return 1
	}

	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pcmatrix [workers [buffer_size [matrices [mode]]]]",
		Short: "Bounded-buffer matrix producer/consumer",
		Long: `pcmatrix starts N producer and N consumer goroutines around one bounded buffer.
Producers generate random matrices; consumers pair them up, multiply the
compatible pairs and display each product. At the end the element sums and
matrix counts of both sides are compared.`,
		Args:          cobra.MaximumNArgs(len(positionalKeys)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			return a.runEngine(cfg, len(args) == 0)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "config [workers [buffer_size [matrices [mode]]]]",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.MaximumNArgs(len(positionalKeys)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			return config.Dump(a.stdout, cfg)
		},
	})

	return root
}

// load merges every configuration source. Positional arguments are set
// verbatim and converted by the decoder, so "abc" fails like a bad file value.
func (a *app) load(cmd *cobra.Command, args []string) (config.Config, error) {
	if err := config.Bind(a.v, cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	for i, arg := range args {
		a.v.Set(positionalKeys[i], arg)
	}

	return config.Load(a.v, a.configPath)
}

func (a *app) runEngine(cfg config.Config, defaults bool) error {
	log, err := config.NewLogger(cfg.Log, a.stderr)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = a.now().UnixNano()
		log.WithField("seed", cfg.Seed).Info("seed chosen from clock")
	}

	p := cfg.Params()
	a.printBanner(p, defaults)

	base := matrix.NewGenerator(cfg.GeneratorOptions()...)
	factories := func(worker int) prodcons.MatrixFactory {
		return base.Derive(uint64(worker))
	}
	opts := []prodcons.Option{prodcons.WithLogger(log)}
	if !cfg.Quiet {
		opts = append(opts, prodcons.WithSink(a.stdout))
	}

	o, err := prodcons.New(p, factories, matrix.Ops{}, opts...)
	if err != nil {
		return err
	}
	tot, err := o.Run()
	a.printSummary(tot)
	if err != nil {
		return err
	}
	if !tot.Balanced() {
		return errUnbalanced
	}

	return nil
}

func (a *app) printBanner(p prodcons.Params, defaults bool) {
	label := "USING"
	if defaults {
		label = "USING DEFAULTS"
	}
	fmt.Fprintf(a.stdout, "%s: worker_threads=%d bounded_buffer_size=%d matrices=%d matrix_mode=%d\n",
		label, p.Workers, p.BufferSize, p.Matrices, p.Mode)
	fmt.Fprintf(a.stdout, "Loops per worker: %d\n\n", p.Iterations())
	fmt.Fprintf(a.stdout, "Producing %d matrices in mode %d\n", p.Iterations()*p.Workers, p.Mode)
	fmt.Fprintf(a.stdout, "Using a shared buffer of size=%d\n", p.BufferSize)
	fmt.Fprintf(a.stdout, "With %d producer and consumer goroutines\n\n", p.Workers)
}

func (a *app) printSummary(t prodcons.Totals) {
	fmt.Fprintf(a.stdout, "Sum of Matrix elements --> Produced=%d = Consumed=%d\n", t.ProducedSum, t.ConsumedSum)
	fmt.Fprintf(a.stdout, "Matrices produced=%d consumed=%d multiplied=%d\n", t.Produced, t.Consumed, t.Multiplied)
	if !t.Reliable {
		fmt.Fprintln(a.stdout, "WARNING: a worker failed; totals are partial")
	}
}


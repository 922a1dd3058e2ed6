package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"chanlog/internal/logging"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	var workers int
	var iterations int
	var capture bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a concurrent workload through nested scopes and timers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = cfg.Demo.Workers
			}
			if iterations <= 0 {
				iterations = cfg.Demo.Iterations
			}

			settings := cfg.Settings(nil)
			var sink *logging.Capture
			if capture {
				sink = logging.NewCapture(0)
				settings.Output = sink
			} else {
				output, closer, err := cfg.OpenOutput()
				if err != nil {
					return err
				}
				if closer != nil {
					defer closer.Close()
				}
				settings.Output = output
			}

			if err := logging.Configure(settings); err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			runDemoWorkload(workers, iterations)

			if capture {
				out := cmd.OutOrStdout()
				for _, line := range sink.Lines() {
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent workers (0 uses the configured value)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Nested passes per worker (0 uses the configured value)")
	cmd.Flags().BoolVar(&capture, "capture", false, "Collect output in memory and replay it on stdout")
	return cmd
}

// runDemoWorkload drives the scope machinery the way a real service would:
// each worker carries its own correlation id and walks nested marker and
// timer scopes, so the rendered stream shows per-goroutine indentation.
func runDemoWorkload(workers, iterations int) {
	main := logging.UseChannel("MAIN")
	work := logging.UseChannel("WORK")

	main.Infof("<DEM80349002I>", "demo starting with %d workers", workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			reqCtx := logging.WithCorrelationID(context.Background(), "")
			fields := logging.ContextFields(reqCtx)
			fields[logging.FieldMessage] = fmt.Sprintf("worker %d online", worker)
			work.InfoFields(fields)

			logging.Scoped(work.Infof, fmt.Sprintf("worker %d", worker), func() {
				for pass := 0; pass < iterations; pass++ {
					logging.Timed(work.Debugf, fmt.Sprintf("pass %d took ", pass), func() {
						work.Debugf("crunching pass %d", pass)
						time.Sleep(time.Millisecond)
					})
				}
			})
		}(i)
	}
	wg.Wait()

	main.Infof("<DEM80349003I>", "demo finished")
}

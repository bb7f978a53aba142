package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mahmoudKheyrati/cpu-scheduler/api"
	"github.com/mahmoudKheyrati/cpu-scheduler/config"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/report"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/requests"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/schedulers"
)

type runOpts struct {
	jobsPath  string
	algorithm string
	// quantum set on the command line wins over the jobs file, which wins
	// over the configured default.
	quantum        int
	defaultQuantum int
}

func main() {
	var configPath string

	root := &cobra.Command{
		Use:          "scheduler",
		Short:        "CPU scheduling simulator (FCFS, SJF, Round Robin)",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.yaml)")

	root.AddCommand(newServeCommand(&configPath), newRunCommand(&configPath))

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.SchedulerConfig) error {
	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, logger))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		_ = app.Shutdown()
	}()

	slog.Info("listening", "port", cfg.Port)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}

func newRunCommand(configPath *string) *cobra.Command {
	var o runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate the jobs of a file and print the schedules",
		Example: `  scheduler run --jobs examples/jobs.yaml
  scheduler run --jobs jobs.json --algorithm rr --quantum 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			slog.SetDefault(cfg.Logger(os.Stderr))
			o.defaultQuantum = cfg.RoundRobinTimeQuantum
			return run(cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().StringVarP(&o.jobsPath, "jobs", "j", "", "jobs file (yaml, json or toml)")
	cmd.Flags().StringVarP(&o.algorithm, "algorithm", "a", "all", "fcfs, sjf, rr or all")
	cmd.Flags().IntVarP(&o.quantum, "quantum", "q", 0, "round robin time quantum (0 = jobs file, then config)")
	_ = cmd.MarkFlagRequired("jobs")
	return cmd
}

func run(w io.Writer, o runOpts) error {
	request, err := requests.LoadJobs(o.jobsPath)
	if err != nil {
		return err
	}
	processes, err := request.Processes()
	if err != nil {
		return err
	}
	quantum := request.Quantum(o.defaultQuantum)
	if o.quantum != 0 {
		quantum = o.quantum
	}

	var results []schedulers.Result
	if o.algorithm == "all" {
		results, err = schedulers.RunAll(processes, quantum)
	} else {
		var r schedulers.Result
		r, err = schedulers.Run(o.algorithm, processes, quantum)
		results = []schedulers.Result{r}
	}
	if err != nil {
		return err
	}

	for _, r := range results {
		report.WriteResult(w, r)
		_, _ = fmt.Fprintln(w)
	}
	if len(results) > 1 {
		report.WriteComparison(w, results)
	}
	return nil
}

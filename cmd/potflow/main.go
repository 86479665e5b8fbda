// Command potflow solves min-cost-flow and max-flow instances stored as JSON
// or YAML documents.
//
//	potflow [-config solver.yaml] [-log-level info] [-watch] [-metrics-addr :9090] instance...
//
// Every instance is solved once and its cost (or max-flow value) and flow are
// printed. With -watch, files are re-solved whenever they change until the
// process is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/potflow/config"
	"github.com/katalvlaran/potflow/loader"
	"github.com/katalvlaran/potflow/metrics"
	"github.com/katalvlaran/potflow/solver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "potflow:", err)
		os.Exit(1)
	}
}

// run is main without the process plumbing.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("potflow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "Path to solver YAML config")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error); overrides the config")
	watch := fs.Bool("watch", false, "Re-solve instances whenever their files change")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return errors.New("no instance files given")
	}

	// ── Config & logging ─────────────────────────────────────────────────────
	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	opts := append(cfg.Options(), solver.WithLogger(logger))

	// ── Metrics ──────────────────────────────────────────────────────────────
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, solver.WithObserver(metrics.New(reg)))

		mux := http.NewServeMux()
		mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: *metricsAddr, Handler: mux, ReadTimeout: 10 * time.Second}
		go func() {
			logger.Info("metrics server starting", "addr", *metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "err", err)
			}
		}()
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()
	}

	// ── Solve ────────────────────────────────────────────────────────────────
	failed := 0
	for _, path := range paths {
		p, err := loader.LoadFile(path)
		if err == nil {
			err = solve(ctx, p, stdout, opts)
		}
		if err != nil {
			logger.Error("solve failed", "path", path, "err", err)
			failed++
		}
	}
	if !*watch {
		if failed > 0 {
			return fmt.Errorf("%d of %d instances failed", failed, len(paths))
		}
		return nil
	}

	// ── Watch ────────────────────────────────────────────────────────────────
	stopWatch, err := loader.Watch(paths, logger, func(p *loader.Problem, err error) {
		if err != nil {
			logger.Warn("reload skipped: instance invalid", "err", err)
			return
		}
		if err := solve(ctx, p, stdout, opts); err != nil {
			logger.Error("solve failed", "path", p.Path, "err", err)
		}
	})
	if err != nil {
		return err
	}
	defer stopWatch()

	logger.Info("watching instances", "files", len(paths))
	<-ctx.Done()

	return nil
}

func solve(ctx context.Context, p *loader.Problem, w io.Writer, opts []solver.Option) error {
	if p.MaxFlow != nil {
		res, err := solver.MaxFlow(ctx, p.MaxFlow, opts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s: max-flow value=%d flow=%v guesses=%d iterations=%d\n",
			p.Path, res.Value, res.Flow, res.Solve.Guesses, res.Solve.Iterations)
		return err
	}

	res, err := solver.MinCostFlow(ctx, p.MinCost, opts...)
	if err != nil {
		return err
	}
	status := "feasible"
	if cerr := p.MinCost.CheckFlow(res.Flow); cerr != nil {
		status = cerr.Error()
	}
	_, err = fmt.Fprintf(w, "%s: min-cost cost=%d flow=%v guesses=%d iterations=%d check=%q\n",
		p.Path, res.Cost, res.Flow, res.Guesses, res.Iterations, status)

	return err
}

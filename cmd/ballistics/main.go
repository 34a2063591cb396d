package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	solver "github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/config"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/metrics"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/monitoring"
)

var (
	configPath  = flag.String("config", "", "JSON shot file (default: .308 175gr reference shot)")
	step        = flag.Float64("step", 100, "Trajectory table step, m")
	method      = flag.String("method", "", "Integration method: rk4 or euler (overrides the config)")
	dt          = flag.Duration("dt", 0, "Integration time step (overrides the config)")
	metricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address and keep running")
	verbose     = flag.Bool("v", false, "Log solver diagnostics")
)

func loadConfig() (*config.ShotConfig, error) {
	cfg := config.DefaultShotConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadShotConfig(*configPath); err != nil {
			return nil, err
		}
	}
	if *method != "" {
		cfg.IntegrationMethod = method
	}
	if *dt > 0 {
		s := dt.String()
		cfg.TimeStep = &s
	}
	return cfg, cfg.Validate()
}

func printSolution(w io.Writer, r solver.SolutionResult) {
	s := r.Sample()
	fmt.Fprintf(w, "Distance:\t%s\n", s.Distance())
	fmt.Fprintf(w, "Elevation:\t%s\n", r.Elevation())
	fmt.Fprintf(w, "Windage:\t%s\n", r.Windage())
	fmt.Fprintf(w, "Velocity:\t%s (Mach %.2f)\n", s.Velocity(), s.MachVelocity())
	fmt.Fprintf(w, "Energy:\t%s\n", s.Energy())
	fmt.Fprintf(w, "Time:\t%.3fs\n", s.Time().TotalSeconds())
	fmt.Fprintf(w, "Zero angle:\t%s\n", r.ZeroAngle())
	fmt.Fprintf(w, "Stability:\t%.2f (%s)\n", r.StabilityFactor(), r.Stability())
}

func printTable(w io.Writer, samples []solver.TrajectorySample) {
	fmt.Fprintln(w, "Distance\tDrop\tElevation\tWindage\tWindage adj.\tVelocity\tMach\tEnergy\tTime")
	for _, s := range samples {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.2f\t%s\t%.3fs\n",
			s.Distance(),
			s.Drop().Convert(unit.DistanceCentimeter),
			s.Elevation(),
			s.Windage().Convert(unit.DistanceCentimeter),
			s.WindageAdjustment(),
			s.Velocity(),
			s.MachVelocity(),
			s.Energy(),
			s.Time().TotalSeconds())
	}
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load shot configuration: %v", err)
	}
	params, err := cfg.ShotParameters()
	if err != nil {
		log.Fatalf("Invalid shot: %v", err)
	}
	calc, err := cfg.Calculator()
	if err != nil {
		log.Fatalf("Invalid calculator settings: %v", err)
	}
	if *verbose {
		calc.SetLogger(monitoring.Prefixed("solver: ", monitoring.Std))
	}

	collector := metrics.NewCollector()
	table := params.Ammunition().Bullet().BallisticCoefficient().Table()

	start := time.Now()
	result, err := calc.Solve(params)
	collector.RecordSolve("solve", table, time.Since(start), err)
	if err != nil {
		log.Fatalf("Failed to solve: %v", err)
	}

	start = time.Now()
	samples, err := calc.Trajectory(params, unit.MustCreateDistance(*step, unit.DistanceMeter))
	collector.RecordSolve("trajectory", table, time.Since(start), err)
	if err != nil {
		log.Fatalf("Failed to build trajectory table: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	printSolution(w, result)
	fmt.Fprintln(w)
	printTable(w, samples)
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if *metricsAddr == "" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	server := &http.Server{Addr: *metricsAddr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Metrics server shutdown: %v", err)
		}
	}()

	log.Printf("Serving metrics on %s/metrics", *metricsAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Metrics server failed: %v", err)
	}
}

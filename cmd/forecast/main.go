// Command forecast runs the full model ensemble for one asset and prints
// the resulting report as Markdown. With database DSNs configured it loads
// the asset's historical return series from ClickHouse and persists one
// forecast record per horizon to PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"valuation-lab/internal/domain"
	"valuation-lab/internal/forecast"
	"valuation-lab/internal/observability"
	"valuation-lab/internal/reporting"
	chstore "valuation-lab/internal/storage/clickhouse"
	"valuation-lab/internal/storage/migrations"
	pgstore "valuation-lab/internal/storage/postgres"
)

func main() {
	// Asset profile
	assetID := flag.String("asset-id", "", "Asset identifier (required)")
	assetName := flag.String("asset-name", "", "Human-readable asset name (defaults to asset-id)")
	currentValue := flag.Float64("value", 0, "Current market value (required, > 0)")
	ageYears := flag.Float64("age", 0, "Asset age in years")
	licensed := flag.Bool("licensed", false, "Asset carries an active license")
	growth := flag.Float64("growth", 0, "Observed historical annual growth rate (e.g. 0.05)")

	// Simulation parameters
	paths := flag.Int("paths", domain.DefaultConfig.Paths, "Simulated paths per model")
	horizon := flag.Int("horizon", domain.DefaultConfig.HorizonYears, "Forecast horizon in years")
	seed := flag.Int64("seed", 0, "Random seed (0 = non-deterministic)")

	// Infrastructure
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string for forecast persistence (optional)")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "ClickHouse connection string for historical return series (optional)")
	metricsAddr := flag.String("metrics-addr", "", "Address for the Prometheus /metrics endpoint (optional, e.g. :9091)")

	output := flag.String("output", "", "Write the Markdown report to this file instead of stdout")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	if *assetID == "" || *currentValue <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --asset-id and a positive --value are required")
		flag.Usage()
		os.Exit(1)
	}
	name := *assetName
	if name == "" {
		name = *assetID
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr)
	}

	opts := forecast.Options{
		Seed:    *seed,
		Verbose: *verbose,
	}

	cfg := domain.DefaultConfig
	cfg.Paths = *paths
	cfg.HorizonYears = *horizon
	opts.Config = &cfg

	if *postgresDSN != "" {
		pool, err := pgstore.NewPool(ctx, *postgresDSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to postgres: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "Error applying postgres migrations: %v\n", err)
			os.Exit(1)
		}
		opts.ForecastStore = pgstore.NewForecastStore(pool)
	}

	if *clickhouseDSN != "" {
		conn, err := migrations.RunClickhouseMigrations(ctx, *clickhouseDSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to clickhouse: %v\n", err)
			os.Exit(1)
		}
		defer conn.Close()
		opts.ReturnSeriesStore = chstore.NewReturnSeriesStore(conn)
	}

	asset := &domain.AssetProfile{
		AssetID:          *assetID,
		Name:             name,
		CurrentValue:     *currentValue,
		AgeYears:         *ageYears,
		Licensed:         *licensed,
		HistoricalGrowth: *growth,
	}

	report, err := forecast.New(opts).Run(ctx, asset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running forecast: %v\n", err)
		os.Exit(1)
	}

	md := reporting.RenderForecastMarkdown(report)
	if *output != "" {
		if err := os.WriteFile(*output, []byte(md), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Forecast report written to %s\n", *output)
		return
	}
	fmt.Print(md)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		fmt.Fprintf(os.Stderr, "Metrics endpoint failed: %v\n", err)
	}
}

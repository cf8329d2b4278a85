// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	talentbridge "github.com/poiesic/talentbridge"
	"github.com/poiesic/talentbridge/ai"
	"github.com/poiesic/talentbridge/config"
	"github.com/poiesic/talentbridge/index"
	"github.com/poiesic/talentbridge/metrics"
	"github.com/poiesic/talentbridge/search"
	"github.com/poiesic/talentbridge/server"
	"github.com/urfave/cli/v2"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "talentbridge",
		Usage: "AI-assisted talent marketplace and event planner",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the marketplace HTTP API",
				Action: serveCommand,
			},
			{
				Name:      "search",
				Usage:     "Search the provider catalog from the command line",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "catalog",
						Aliases: []string{"c"},
						Usage:   "Path to the provider catalog JSON file",
						Value:   "data/artists.json",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of results to return",
						Value:   6,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.StringFlag{
						Name:  "index-backend",
						Usage: "Similarity index backend (flat, brute, auto)",
						Value: index.BackendAuto,
					},
				},
			},
			{
				Name:      "plan",
				Usage:     "Generate an event plan with budget allocation",
				ArgsUsage: "<description>",
				Action:    planCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "catalog",
						Aliases: []string{"c"},
						Usage:   "Path to the provider catalog JSON file",
						Value:   "data/artists.json",
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Event name",
						Value: "My Event",
					},
					&cli.IntFlag{
						Name:     "budget",
						Aliases:  []string{"b"},
						Usage:    "Total event budget in dollars",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// The config file can raise verbosity when the flag is left at default
	if !c.IsSet("log-level") && cfg.LogLevel != "" {
		if err := applyLogLevel(cfg.LogLevel); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	mp, err := talentbridge.NewMarketplace(ctx, cfg.CatalogPath, cfg.AccountsDir,
		talentbridge.WithAIConfig(ai.NewConfig(
			ai.WithEmbeddingHost(cfg.EmbeddingHost),
			ai.WithEmbeddingModel(cfg.EmbeddingModel),
		)),
		talentbridge.WithIndexBackend(cfg.IndexBackend),
		talentbridge.WithChatTopK(cfg.TopK),
		talentbridge.WithSearchMonitor(func(backend string) search.SearchMonitor {
			return server.NewSearchMonitor(m, backend)
		}),
	)
	if err != nil {
		return fmt.Errorf("building marketplace: %w", err)
	}
	defer mp.Close()

	srv, err := server.New(mp.Assistant(), mp.Catalog(), mp.Bookings(), mp.Auth(),
		server.WithMetrics(m))
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	return srv.ListenAndServe(ctx, cfg.Addr)
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("search requires a query argument")
	}

	mp, err := talentbridge.NewMarketplace(c.Context, c.String("catalog"), "",
		talentbridge.WithAIConfig(ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)),
		talentbridge.WithIndexBackend(c.String("index-backend")),
	)
	if err != nil {
		return fmt.Errorf("building marketplace: %w", err)
	}
	defer mp.Close()

	results, filters := mp.Searcher().Search(c.Context, query, c.Int("top-k"))
	if len(results) == 0 {
		fmt.Println("No matching providers found.")
		return nil
	}

	for i, r := range results {
		fmt.Printf("%d. %s (%s, %s)\n", i+1, r.Provider.Name, r.Provider.Category, r.Provider.Location)
		fmt.Printf("   rating %.1f | from $%d | score %.3f\n", r.Provider.Rating, r.Provider.PriceMin, r.Score)
	}
	if !filters.IsEmpty() {
		fmt.Fprintf(os.Stderr, "\nFilters applied: budget=%d city=%q category=%q\n",
			filters.MaxBudget, filters.City, filters.Category)
	}
	return nil
}

func planCommand(c *cli.Context) error {
	description := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))

	mp, err := talentbridge.NewMarketplace(c.Context, c.String("catalog"), "",
		talentbridge.WithAIConfig(ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)),
		talentbridge.WithIndexBackend(index.BackendBrute),
	)
	if err != nil {
		return fmt.Errorf("building marketplace: %w", err)
	}
	defer mp.Close()

	result, err := mp.Planner().GeneratePlan(c.Context, c.String("name"), c.Int("budget"), description)
	if err != nil {
		return fmt.Errorf("generating plan: %w", err)
	}

	fmt.Printf("%s (%s) - total budget $%d\n\n", result.EventName, result.EventType, result.TotalBudget)
	for _, line := range result.Breakdown {
		fmt.Printf("  %-40s $%d\n", line.Label, line.Amount)
	}
	fmt.Println("\nTimeline:")
	for _, step := range result.Timeline {
		fmt.Printf("  %s: %s\n", step.Phase, step.Action)
	}
	fmt.Println("\nTips:")
	for _, tip := range result.Tips {
		fmt.Printf("  - %s\n", tip)
	}
	if len(result.Providers) > 0 {
		fmt.Printf("\nSuggested entertainment (budget $%d):\n", result.EntertainmentBudget)
		for _, p := range result.Providers {
			fmt.Printf("  %s (%s) - rating %.1f, from $%d\n", p.Name, p.Category, p.Rating, p.PriceMin)
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	return applyLogLevel(c.String("log-level"))
}

func applyLogLevel(levelStr string) error {
	// Normalize to lowercase before mapping to slog.Level
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

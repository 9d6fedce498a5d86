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
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/eventmatch"
	"github.com/poiesic/eventmatch/ai"
	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/ingestion"
	"github.com/poiesic/eventmatch/recommend"
	"github.com/poiesic/eventmatch/taxonomy"
)

func main() {
	app := &cli.App{
		Name:  "eventmatch",
		Usage: "Tag-driven event relevance engine",
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
				Name:      "recommend",
				Usage:     "Recommend events for a free-text query",
				ArgsUsage: "<query>",
				Action:    recommendCommand,
				Flags: append(engineFlags(),
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of results to return",
						Value:   recommend.DefaultTopK,
					},
					&cli.BoolFlag{
						Name:  "ai",
						Usage: "Use the AI services for intent extraction and ranking",
					},
				),
			},
			{
				Name:      "ingest",
				Usage:     "Ingest events from a CSV export",
				ArgsUsage: "<csv-file>",
				Action:    ingestCommand,
				Flags: append(engineFlags(),
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Tagging worker pool size",
						Value: 4,
					},
					&cli.BoolFlag{
						Name:  "ai",
						Usage: "Tag untagged events with the AI tagger",
					},
				),
			},
			{
				Name:   "events",
				Usage:  "List recent catalog events",
				Action: eventsCommand,
				Flags: append(engineFlags(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum events to list",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "women-focused",
						Usage: "List only women-focused events",
					},
				),
			},
			{
				Name:   "audit",
				Usage:  "Show recent query audit records",
				Action: auditCommand,
				Flags: append(engineFlags(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum records to show",
						Value: 20,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "ai-host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "classifier-model",
			Usage: "Model for intent extraction and tagging",
		},
		&cli.StringFlag{
			Name:  "reasoner-model",
			Usage: "Model for candidate ranking",
		},
		&cli.StringFlag{
			Name:  "taxonomy",
			Usage: "Path to a YAML taxonomy override file",
		},
	}
}

// openEngine builds an Engine from the shared flags. The AI provider is
// only attached when withAI is set, so deterministic commands never
// touch the service config.
func openEngine(c *cli.Context, withAI bool) (*eventmatch.Engine, error) {
	opts := []eventmatch.EngineOption{}

	if taxPath := c.String("taxonomy"); taxPath != "" {
		tax, err := taxonomy.LoadFile(taxPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
		opts = append(opts, eventmatch.WithTaxonomy(tax))
	}

	if withAI {
		configOpts := []ai.ConfigOption{ai.WithHost(c.String("ai-host"))}
		if model := c.String("classifier-model"); model != "" {
			configOpts = append(configOpts, ai.WithClassifierModel(model))
		}
		if model := c.String("reasoner-model"); model != "" {
			configOpts = append(configOpts, ai.WithReasonerModel(model))
		}
		aiConfig := ai.NewConfig(configOpts...)
		if err := aiConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid AI configuration: %w", err)
		}
		opts = append(opts, eventmatch.WithAIConfig(aiConfig))
	}

	engine, err := eventmatch.NewEngine(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return engine, nil
}

func recommendCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query is required")
	}

	useAI := c.Bool("ai")
	engine, err := openEngine(c, useAI)
	if err != nil {
		return err
	}
	defer engine.Close()

	recommender, err := engine.NewRecommender()
	if err != nil {
		return err
	}

	rec, err := recommender.Recommend(context.Background(), &recommend.Request{
		Query: query,
		TopK:  c.Int("top-k"),
		UseAI: useAI,
	})
	if err != nil {
		return err
	}

	if rec.Count == 0 {
		fmt.Println(rec.Message)
		return nil
	}

	for i, result := range rec.Results {
		fmt.Printf("%d. %s [%s, score %d]\n", i+1, result.Event.Name, result.Category, result.Score)
		if result.Event.DateTime != "" {
			fmt.Printf("   When:  %s\n", result.Event.DateTime)
		}
		if result.Event.Location != "" {
			fmt.Printf("   Where: %s\n", result.Event.Location)
		}
		fmt.Printf("   Why:   %s\n", result.Justification)
	}
	if rec.Rationale != "" {
		fmt.Printf("\n%s\n", rec.Rationale)
	}
	return nil
}

func ingestCommand(c *cli.Context) error {
	csvPath := c.Args().First()
	if csvPath == "" {
		return fmt.Errorf("a csv file is required")
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	engine, err := openEngine(c, c.Bool("ai"))
	if err != nil {
		return err
	}
	defer engine.Close()

	pipeline, err := engine.NewIngestionPipeline(
		ingestion.WithPoolSize(c.Int("pool-size")),
	)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	report, err := pipeline.IngestCSV(context.Background(), f)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Ingested %d events (%d tagged, %d tagging failures, %d skipped)\n",
		report.Total, report.Tagged, report.TagFailures, report.Skipped)
	return nil
}

func eventsCommand(c *cli.Context) error {
	engine, err := openEngine(c, false)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()
	limit := c.Int("limit")

	var events []*core.Event
	if c.Bool("women-focused") {
		events, err = engine.EventRepository().GetRecentEventsByDemographic(ctx, true, limit)
	} else {
		events, err = engine.EventRepository().GetRecentEvents(ctx, limit)
	}
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No events in the catalog.")
		return nil
	}
	for _, event := range events {
		fmt.Printf("%016x  %s\n", uint64(event.Id), event.Name)
		if event.DateTime != "" || event.Location != "" {
			fmt.Printf("   %s  %s\n", event.DateTime, event.Location)
		}
		if len(event.UsageTags) > 0 || len(event.IndustryTags) > 0 {
			fmt.Printf("   usage=%s industry=%s\n",
				strings.Join(event.UsageTags, ","), strings.Join(event.IndustryTags, ","))
		}
	}
	return nil
}

func auditCommand(c *cli.Context) error {
	engine, err := openEngine(c, false)
	if err != nil {
		return err
	}
	defer engine.Close()

	records, err := engine.AuditRepository().GetRecentQueryRecords(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No audit records.")
		return nil
	}
	for _, record := range records {
		fmt.Printf("%s  %q\n", record.Timestamp.Format("2006-01-02 15:04:05"), record.Query)
		fmt.Printf("   goals=%s industries=%s results=%d\n",
			strings.Join(record.Goals, ","), strings.Join(record.Industries, ","), record.ResultCount)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

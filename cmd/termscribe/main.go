package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/user/termscribe/internal/config"
	"github.com/user/termscribe/internal/emit"
	"github.com/user/termscribe/internal/index"
	"github.com/user/termscribe/internal/profile"
	"github.com/user/termscribe/internal/transcript"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	prof := profile.Default()
	if cfg.ProfilePath != "" {
		p, err := profile.Load(cfg.ProfilePath)
		if err != nil {
			return err
		}
		prof = p
	}

	raw, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file %q not found", cfg.InputPath)
		}
		return fmt.Errorf("read input file: %w", err)
	}

	records := transcript.New(prof).Parse(raw)

	if err := emit.WriteFile(cfg.OutputPath, records); err != nil {
		return err
	}

	if cfg.IndexPath != "" {
		if err := archive(cfg.IndexPath, cfg.InputPath, records); err != nil {
			return err
		}
	}

	if cfg.Verbose {
		printSummary(cfg, records)
	}
	return nil
}

func archive(dbPath, sourcePath string, records []transcript.Record) error {
	ctx := context.Background()
	db, err := index.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	runID, err := db.ArchiveRun(ctx, sourcePath, records)
	if err != nil {
		return err
	}
	slog.Info("archived run", "db", dbPath, "run_id", runID, "records", len(records))
	return nil
}

func printSummary(cfg *config.Config, records []transcript.Record) {
	fmt.Printf("Converted %d commands from %s to %s\n", len(records), cfg.InputPath, cfg.OutputPath)
	if len(records) == 0 {
		return
	}
	fmt.Println("\nFirst few commands:")
	for i, rec := range records {
		if i == 3 {
			break
		}
		fmt.Printf("  %s: %s -> %s\n", rec.ID, rec.Command, preview(rec.Output, 50))
	}
}

func preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

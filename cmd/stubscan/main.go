package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/extract"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/repository"
)

// stubscan parses ticket stub transcripts offline, without the service or
// its database. Results print as JSON and, when -archive is set, accumulate
// in a local SQLite file.
func main() {
	archivePath := flag.String("archive", "", "SQLite file to record results in")
	list := flag.Int("list", 0, "list the N most recent archived scans and exit")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	var store *repository.ArchiveStore
	if *archivePath != "" {
		var err error
		store, err = repository.OpenArchive(*archivePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open archive:", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	if *list > 0 {
		if store == nil {
			fmt.Fprintln(os.Stderr, "-list requires -archive")
			os.Exit(2)
		}
		scans, err := store.ListScans(ctx, *list)
		if err != nil {
			fmt.Fprintln(os.Stderr, "list scans:", err)
			os.Exit(1)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		for _, sc := range scans {
			_ = enc.Encode(map[string]any{
				"source_path": sc.SourcePath,
				"scanned_at":  sc.ScannedAt,
				"fields":      sc.Fields,
			})
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: stubscan [-archive file.db] transcript.txt [...]")
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	exitCode := 0
	for _, path := range flag.Args() {
		b, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read:", err)
			exitCode = 1
			continue
		}
		transcript := string(b)
		fields := extract.Build(transcript, nil)

		if err := enc.Encode(map[string]any{"source_path": path, "fields": fields}); err != nil {
			fmt.Fprintln(os.Stderr, "encode:", err)
			exitCode = 1
		}

		if store != nil {
			if _, err := store.SaveScan(ctx, path, transcript, fields); err != nil {
				fmt.Fprintln(os.Stderr, "archive:", err)
				exitCode = 1
			}
		}
	}
	os.Exit(exitCode)
}

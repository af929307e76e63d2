// Command profile builds dataset descriptors for one or more CSV/Excel
// files and prints them as JSON documents, one per file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"tabprof/adapters/ingest"
	"tabprof/domain/schema"
	"tabprof/internal"
	"tabprof/internal/analysis"
)

func main() {
	// Load environment variables from .env if present
	_ = godotenv.Load()

	targetsFlag := flag.String("targets", "", "comma-separated target column names")
	withSummary := flag.Bool("summary", false, "include extended numeric distribution summaries")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: profile [-targets a,b] [-summary] file.csv [file2.xlsx ...]")
		os.Exit(2)
	}

	var targets []string
	if *targetsFlag != "" {
		targets = strings.Split(*targetsFlag, ",")
		for i := range targets {
			targets[i] = strings.TrimSpace(targets[i])
		}
	}

	log := internal.DefaultLogger

	type result struct {
		Source     string                              `json:"source"`
		Descriptor schema.DatasetDescriptor            `json:"descriptor"`
		Summaries  map[string]*analysis.NumericSummary `json:"summaries,omitempty"`
	}

	// Files are profiled concurrently; each file gets its own frame and
	// builder, so every descriptor build stays single-caller.
	results := make([]*result, len(files))
	var g errgroup.Group
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			df, err := ingest.NewReader(path).Read()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			descriptor, err := schema.BuildDatasetDescriptor(df, targets)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			r := &result{Source: path, Descriptor: descriptor}
			if *withSummary {
				r.Summaries = analysis.SummarizeFrame(df)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("profiling failed: %v", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			log.Error("failed to encode output: %v", err)
			os.Exit(1)
		}
	}
}

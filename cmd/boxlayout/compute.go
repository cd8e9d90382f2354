package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/boxlayout/internal/debug"
	"github.com/grindlemire/boxlayout/internal/fixture"
	"github.com/grindlemire/boxlayout/internal/layout"
)

// documentResult is the computed layout of one document.
type documentResult struct {
	Name  string               `yaml:"name"`
	Path  string               `yaml:"path"`
	Nodes []fixture.NodeResult `yaml:"nodes"`
}

// runCompute implements the compute subcommand.
// Documents are computed in parallel, each in its own tree, and printed in
// the order they were given.
func runCompute(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("compute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "", "Output format: text or yaml")
	noRound := fs.Bool("no-round", false, "Report unrounded layouts")
	configPath := fs.String("config", "", "Path to boxlayout.toml")
	debugPath := fs.String("debug", "", "Path to debug log file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *format == "" {
		*format = cfg.Format
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	if *noRound {
		cfg.Rounding = false
	}

	if *debugPath != "" {
		if err := debug.Init(*debugPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectDocuments(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no layout documents found")
	}

	results, err := computeAll(context.Background(), files, cfg)
	if err != nil {
		return err
	}

	if *format == "yaml" {
		return writeYAML(stdout, results)
	}
	return writeText(stdout, results)
}

// computeAll computes every file with at most cfg.Workers in flight. The
// first failure cancels documents that have not started yet.
func computeAll(ctx context.Context, files []string, cfg Config) ([]documentResult, error) {
	results := make([]documentResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := computeFile(path, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func computeFile(path string, cfg Config) (documentResult, error) {
	doc, err := fixture.Load(path)
	if err != nil {
		return documentResult{}, err
	}
	scene, err := fixture.Build(doc,
		layout.WithCacheSize(cfg.CacheSize),
		layout.WithRounding(cfg.Rounding),
	)
	if err != nil {
		return documentResult{}, err
	}
	if !cfg.Rounding {
		// The command line wins over the document.
		scene.Tree.DisableRounding()
	}
	if err := scene.Compute(); err != nil {
		return documentResult{}, err
	}
	if debug.Enabled() {
		stats := scene.Tree.CacheStats()
		debug.Log("document %s nodes=%d cache hits=%d misses=%d", path, scene.Len(), stats.Hits, stats.Misses)
	}

	nodes, err := scene.Results()
	if err != nil {
		return documentResult{}, err
	}
	return documentResult{Name: scene.Name, Path: path, Nodes: nodes}, nil
}

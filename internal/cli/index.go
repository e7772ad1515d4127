package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bojanb98/code-context/internal/config"
	"github.com/bojanb98/code-context/internal/watcher"
	"github.com/spf13/cobra"
)

var (
	forceReindexFlag bool
	watchFlag        bool
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Index a codebase for semantic and lexical search",
	Long: `Index splits source files into syntax-aware chunks, embeds them,
builds a cross-chunk reference graph, and upserts everything into the
configured vector and graph stores.

Examples:
  # Index the current directory
  codectx index

  # Force a full reindex, dropping any existing collection first
  codectx index --force

  # Watch for file changes and reindex incrementally
  codectx index --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().BoolVar(&forceReindexFlag, "force", false, "Drop and rebuild the collection from scratch")
	indexCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch for file changes and reindex incrementally")
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\ninterrupted, cancelling...")
		cancel()
	}()

	rootDir := "."
	if len(args) == 1 {
		rootDir = args[0]
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger()

	orch, err := newOrchestrators(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer orch.close(ctx)

	if err := orch.indexing.Index(ctx, rootDir, forceReindexFlag); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("indexing cancelled")
		}
		return fmt.Errorf("indexing failed: %w", err)
	}
	fmt.Println("✓ indexing complete")

	if !watchFlag {
		return nil
	}

	fw, err := watcher.NewFileWatcher([]string{rootDir}, extensionsFromGlobs(cfg.Paths.Code))
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	coord := watcher.NewWatchCoordinator(fw, orch.indexing, rootDir, logger)
	fmt.Println("watching for changes, press Ctrl+C to stop...")
	if err := coord.Start(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watcher failed: %w", err)
	}
	return nil
}

// extensionsFromGlobs derives the file extensions fsnotify should filter
// on (e.g. ".go") from the configured "**/*.go"-style code glob patterns.
func extensionsFromGlobs(globs []string) []string {
	seen := make(map[string]bool, len(globs))
	exts := make([]string, 0, len(globs))
	for _, g := range globs {
		ext := filepath.Ext(g)
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		exts = append(exts, ext)
	}
	return exts
}

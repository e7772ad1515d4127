package cli

import (
	"context"
	"fmt"

	"github.com/bojanb98/code-context/internal/config"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [path]",
	Short: "Remove a codebase's collection, graph, and snapshot",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	if err := orch.indexing.Delete(ctx, rootDir); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	fmt.Println("✓ deleted")
	return nil
}

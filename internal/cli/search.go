package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bojanb98/code-context/internal/config"
	"github.com/bojanb98/code-context/internal/search"
	"github.com/spf13/cobra"
)

var (
	searchPathFlag      string
	searchTopKFlag      int
	searchThresholdFlag float64
	searchHopsFlag      int
	searchJSONFlag      bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a hybrid semantic + lexical search over an indexed codebase",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchPathFlag, "path", ".", "Codebase path to search (must already be indexed)")
	searchCmd.Flags().IntVar(&searchTopKFlag, "top-k", 10, "Number of results to return (1-50)")
	searchCmd.Flags().Float64Var(&searchThresholdFlag, "threshold", 0.0, "Minimum score threshold (0-1)")
	searchCmd.Flags().IntVar(&searchHopsFlag, "graph-hops", 0, "Expand results through the reference graph this many hops (0 disables expansion)")
	searchCmd.Flags().BoolVar(&searchJSONFlag, "json", false, "Print results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfigFromDir(searchPathFlag)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger()
	orch, err := newOrchestrators(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer orch.close(ctx)

	req := search.Request{
		CodebasePath: searchPathFlag,
		Query:        args[0],
		TopK:         searchTopKFlag,
		Threshold:    searchThresholdFlag,
	}
	if searchHopsFlag > 0 {
		req.MaxGraphHops = &searchHopsFlag
	}

	results, err := orch.search.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSONFlag {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		path, _ := r.Payload["relative_path"].(string)
		fmt.Printf("%.3f  %s\n", r.Score, path)
		if content, ok := r.Payload["content"].(string); ok {
			fmt.Printf("      %.120s\n", content)
		}
	}
	return nil
}

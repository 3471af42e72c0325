// Package cmd implements the ytagent command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ytagent/internal/config"
	"ytagent/youtube"
)

// Operation selects what the CLI does. The set is closed: unknown values
// are rejected up front rather than dispatched dynamically.
type Operation int

const (
	// OperationSearch searches videos and prints the records.
	OperationSearch Operation = iota
	// OperationAnalyze is reserved; prints a placeholder.
	OperationAnalyze
	// OperationProcess is reserved; prints a placeholder.
	OperationProcess
)

// ParseOperation maps an operation name to its Operation value.
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "search":
		return OperationSearch, nil
	case "analyze":
		return OperationAnalyze, nil
	case "process":
		return OperationProcess, nil
	}
	return 0, fmt.Errorf("unknown operation %q (valid: search, analyze, process)", s)
}

var (
	operation  string
	queryText  string
	maxResults int64
	audience   string
)

var rootCmd = &cobra.Command{
	Use:   "ytagent",
	Short: "Search YouTube videos from the command line",
	Long: `ytagent searches YouTube videos through the Data API and prints
normalized records.

Examples:
  ytagent --operation search --query "python tutorial"
  ytagent --operation search --query "restaking on ethereum" --audience beginner
  ytagent serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := ParseOperation(operation)
		if err != nil {
			return err
		}

		switch op {
		case OperationSearch:
			return runSearch(cmd.Context())
		case OperationAnalyze:
			fmt.Println("analyze: not implemented")
			return nil
		case OperationProcess:
			fmt.Println("process: not implemented")
			return nil
		}
		return nil
	},
}

// runSearch performs one search call and prints one record per line.
func runSearch(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	searcher, err := youtube.NewAPISearcher(ctx, cfg.APIKey)
	if err != nil {
		return err
	}

	max := maxResults
	if max == 0 {
		max = cfg.MaxResults
	}
	aud := audience
	if aud == "" {
		aud = cfg.DefaultAudience
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	videos, err := searcher.Search(ctx, youtube.Query{
		Text:       queryText,
		MaxResults: max,
		Audience:   youtube.Audience(aud),
	})
	if err != nil {
		return err
	}

	for _, v := range videos {
		fmt.Printf("%s\t%s\t%s\t%s\n", v.ID, v.Title, v.Channel, v.URL)
	}
	return nil
}

// Execute runs the root command. Errors print to stderr and exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&operation, "operation", "search", "Operation to run (search, analyze, process)")
	rootCmd.Flags().StringVarP(&queryText, "query", "q", "", "Search text")
	rootCmd.Flags().Int64VarP(&maxResults, "max", "m", 0, "Maximum number of results (1-50, default from config)")
	rootCmd.Flags().StringVarP(&audience, "audience", "a", "", "Audience tier (beginner, intermediate, advanced)")
}

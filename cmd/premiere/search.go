package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/premiere/internal/browse"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies by title",
	Long: `Search movies by title and replace the current result set.

Results are shown newest first. Use 'premiere more' to load the next page.

Examples:
  premiere search batman
  premiere search "the matrix"
  premiere search --refresh alien`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

var moreCmd = &cobra.Command{
	Use:   "more",
	Short: "Load the next page of results",
	Args:  cobra.NoArgs,
	RunE:  runMoreCmd,
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show the current result set",
	Args:  cobra.NoArgs,
	RunE:  runResultsCmd,
}

func init() {
	searchCmd.Flags().Bool("refresh", false, "Bypass cached results for this query")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(moreCmd)
	rootCmd.AddCommand(resultsCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	refresh, _ := cmd.Flags().GetBool("refresh")

	client := NewClient(serverURL)
	snap, err := client.Search(query, refresh)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return showSnapshot(cmd.OutOrStdout(), snap)
}

func runMoreCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	snap, err := client.More()
	if err != nil {
		return fmt.Errorf("load more failed: %w", err)
	}
	return showSnapshot(cmd.OutOrStdout(), snap)
}

func runResultsCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	snap, err := client.Results()
	if err != nil {
		return fmt.Errorf("failed to fetch results: %w", err)
	}
	return showSnapshot(cmd.OutOrStdout(), snap)
}

func showSnapshot(w io.Writer, snap *browse.Snapshot) error {
	if jsonOutput {
		return printJSON(w, snap)
	}
	printSnapshot(w, snap)
	return nil
}

func printSnapshot(w io.Writer, s *browse.Snapshot) {
	switch s.Phase {
	case browse.PhaseLoading:
		_, _ = fmt.Fprintln(w, "Loading...")
		return
	case browse.PhaseFailure:
		_, _ = fmt.Fprintln(w, s.Message)
		return
	case browse.PhaseIdle:
		_, _ = fmt.Fprintln(w, "No search yet. Try 'premiere search <title>'.")
		return
	}

	if s.Degraded {
		_, _ = fmt.Fprintln(w, s.Message)
		_, _ = fmt.Fprintln(w)
	}

	if len(s.Items) == 0 {
		_, _ = fmt.Fprintf(w, "No results for %q\n", s.Query)
		return
	}

	_, _ = fmt.Fprintf(w, "Results for %q (%d of %d):\n\n", s.Query, len(s.Items), s.Total)
	_, _ = fmt.Fprintf(w, "  %-4s %-11s %-44s %-6s %s\n", "#", "IMDB", "TITLE", "YEAR", "TYPE")
	_, _ = fmt.Fprintln(w, "  "+strings.Repeat("-", 76))

	for i, item := range s.Items {
		_, _ = fmt.Fprintf(w, "  %-4d %-11s %-44s %-6s %s\n",
			i+1, item.IMDbID, truncate(item.Title, 44), item.Year, item.MediaType())
	}

	switch {
	case s.FetchingMore:
		_, _ = fmt.Fprintln(w, "\nLoading more...")
	case s.HasMore:
		_, _ = fmt.Fprintln(w, "\nMore results available: premiere more")
	}
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	v1 "github.com/vmunix/premiere/internal/api/v1"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent events",
	Long: `Show recent search and detail events, newest first.

With --entity, show the full history of one search or detail view instead.

Examples:
  premiere events -n 50
  premiere events --entity details/4`,
	Args: cobra.NoArgs,
	RunE: runEventsCmd,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	eventsCmd.Flags().Int("offset", 0, "Number of events to skip")
	eventsCmd.Flags().String("entity", "", "Show one entity's history, as type/id")
}

func runEventsCmd(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")
	entity, _ := cmd.Flags().GetString("entity")

	client := NewClient(serverURL)

	var (
		resp *v1.ListEventsResponse
		err  error
	)
	if entity != "" {
		kind, id, perr := parseEntity(entity)
		if perr != nil {
			return perr
		}
		resp, err = client.EntityEvents(kind, id)
	} else {
		resp, err = client.Events(limit, offset)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, resp)
	}
	printEvents(w, resp)
	return nil
}

func parseEntity(s string) (string, int64, error) {
	kind, rawID, ok := strings.Cut(s, "/")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if !ok || kind == "" || err != nil {
		return "", 0, fmt.Errorf("invalid entity %q, want type/id (e.g. details/4)", s)
	}
	return kind, id, nil
}

func printEvents(w io.Writer, resp *v1.ListEventsResponse) {
	if len(resp.Items) == 0 {
		_, _ = fmt.Fprintln(w, "No events")
		return
	}

	_, _ = fmt.Fprintf(w, "Events (%d):\n\n", resp.Total)
	_, _ = fmt.Fprintf(w, "  %-6s %-10s %-20s %s\n", "ID", "WHEN", "TYPE", "ENTITY")
	_, _ = fmt.Fprintln(w, "  "+strings.Repeat("-", 52))

	for _, e := range resp.Items {
		t, _ := time.Parse(time.RFC3339, e.OccurredAt)
		_, _ = fmt.Fprintf(w, "  %-6d %-10s %-20s %s/%d\n", e.ID, formatTimeAgo(t), e.EventType, e.EntityType, e.EntityID)
	}
}

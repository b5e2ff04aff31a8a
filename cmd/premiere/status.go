package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	v1 "github.com/vmunix/premiere/internal/api/v1"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, status)
	}
	printStatus(w, serverURL, status)
	return nil
}

func printStatus(w io.Writer, server string, s *v1.StatusResponse) {
	_, _ = fmt.Fprintf(w, "premiere v%s | Server: %s | %s\n\n", s.Version, server, s.Status)

	names := make([]string, 0, len(s.Services))
	for name := range s.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	_, _ = fmt.Fprintln(w, "Services")
	for _, name := range names {
		state := "disabled"
		if s.Services[name] {
			state = "enabled"
		}
		_, _ = fmt.Fprintf(w, "  %-10s %s\n", name+":", state)
	}
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/premiere/internal/details"
)

var detailsCmd = &cobra.Command{
	Use:   "details [imdb-id]",
	Short: "Open or show the detail view",
	Long: `Open the detail view for a title, or show the current one.

With an IMDb id, the title is opened and its soundtrack and cast photos are
fetched in the background. Run 'premiere details' again to see them.

Examples:
  premiere details tt1375666   # Open Inception
  premiere details             # Show the open view`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetailsCmd,
}

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the detail view",
	Args:  cobra.NoArgs,
	RunE:  runCloseCmd,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(closeCmd)
}

func runDetailsCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	var (
		view *details.View
		err  error
	)
	if len(args) > 0 {
		view, err = client.OpenDetails(args[0])
	} else {
		view, err = client.Details()
	}
	if err != nil {
		return fmt.Errorf("details failed: %w", err)
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, view)
	}
	printView(w, view)
	return nil
}

func runCloseCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	if err := client.CloseDetails(); err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	if !jsonOutput {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Detail view closed")
	}
	return nil
}

func printView(w io.Writer, v *details.View) {
	if !v.Open {
		_, _ = fmt.Fprintln(w, "No title open. Try 'premiere details <imdb-id>'.")
		return
	}
	if v.Loading {
		_, _ = fmt.Fprintf(w, "Loading %s...\n", v.Item.Title)
		return
	}
	if v.Error != "" {
		_, _ = fmt.Fprintln(w, v.Error)
		return
	}
	if v.Title == nil {
		return
	}

	t := v.Title
	_, _ = fmt.Fprintf(w, "%s (%s)\n", t.Title, t.Year)
	if t.Genre != "" {
		_, _ = fmt.Fprintf(w, "  %s | %s | %s\n", t.Genre, t.Runtime, t.Rated)
	}
	if t.Director != "" {
		_, _ = fmt.Fprintf(w, "  Director: %s\n", t.Director)
	}
	if t.IMDbRating != "" {
		_, _ = fmt.Fprintf(w, "  Rating:   %s\n", t.IMDbRating)
	}
	_, _ = fmt.Fprintf(w, "  Poster:   %s\n", v.Poster)
	if t.Plot != "" {
		_, _ = fmt.Fprintf(w, "\n  %s\n", t.Plot)
	}

	_, _ = fmt.Fprintln(w, "\nSoundtrack")
	switch {
	case v.SongsLoading:
		_, _ = fmt.Fprintln(w, "  Loading songs...")
	case v.SongsError != "":
		_, _ = fmt.Fprintf(w, "  %s\n", v.SongsError)
	default:
		for _, s := range v.Songs {
			_, _ = fmt.Fprintf(w, "  %s - %s\n", s.Name, s.Artist)
			_, _ = fmt.Fprintf(w, "    Spotify: %s\n", s.Links.Spotify)
			_, _ = fmt.Fprintf(w, "    Apple:   %s\n", s.Links.Apple)
		}
	}

	_, _ = fmt.Fprintln(w, "\nCast")
	if v.PhotosLoading {
		_, _ = fmt.Fprintln(w, "  (loading photos)")
	}
	for _, a := range v.Actors {
		_, _ = fmt.Fprintf(w, "  %-28s %s\n", truncate(a.Name, 28), a.Role)
	}
	if len(v.Actors) == 0 {
		_, _ = fmt.Fprintln(w, "  No cast listed")
	}
}

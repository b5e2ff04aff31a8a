package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/vmunix/premiere/internal/api/v1"
	"github.com/vmunix/premiere/internal/browse"
	"github.com/vmunix/premiere/internal/details"
	"github.com/vmunix/premiere/pkg/omdb"
)

func TestSearchCmd_PrintsResults(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/search").
		RespondJSON(browse.Snapshot{
			Phase:   browse.PhaseSuccess,
			Query:   "2024",
			Page:    1,
			Total:   15,
			HasMore: true,
			Items: []browse.ResultItem{
				{Key: "tt1", Title: "Dune: Part Two", Year: "2024", IMDbID: "tt1"},
				{Key: "tt2", Title: "Civil War", Year: "2024", IMDbID: "tt2", Type: "movie"},
			},
		}).
		Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	require.NoError(t, runSearchCmd(newTestCommand(&out), []string{"2024"}))

	got := out.String()
	assert.Contains(t, got, `Results for "2024" (2 of 15)`)
	assert.Contains(t, got, "Dune: Part Two")
	assert.Contains(t, got, "More results available")
}

func TestSearchCmd_JoinsArgs(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "the matrix", body["query"])
			respondJSON(t, w, browse.Snapshot{Phase: browse.PhaseSuccess, Query: body["query"]})
		}).
		Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	require.NoError(t, runSearchCmd(newTestCommand(&out), []string{"the", "matrix"}))
	assert.Contains(t, out.String(), `No results for "the matrix"`)
}

func TestSearchCmd_Refresh(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "alien", body["query"])
			assert.Equal(t, true, body["refresh"])
			respondJSON(t, w, browse.Snapshot{Phase: browse.PhaseSuccess, Query: "alien"})
		}).
		Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	cmd := newTestCommand(&out)
	cmd.Flags().Bool("refresh", false, "")
	require.NoError(t, cmd.Flags().Set("refresh", "true"))
	require.NoError(t, runSearchCmd(cmd, []string{"alien"}))
}

func TestSearchCmd_JSON(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(browse.Snapshot{Phase: browse.PhaseSuccess, Query: "x", Total: 3}).
		Build()
	withServerURL(t, srv.URL)
	withJSONOutput(t)

	var out bytes.Buffer
	require.NoError(t, runSearchCmd(newTestCommand(&out), []string{"x"}))

	var snap browse.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Equal(t, 3, snap.Total)
	assert.Equal(t, browse.PhaseSuccess, snap.Phase)
}

func TestSearchCmd_ServerError(t *testing.T) {
	srv := newMockServer(t).
		RespondAPIError(http.StatusBadRequest, "EMPTY_QUERY", "Enter a movie title to search.").
		Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	err := runSearchCmd(newTestCommand(&out), []string{" "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Enter a movie title to search.")
}

func TestPrintSnapshot_Phases(t *testing.T) {
	tests := []struct {
		name string
		snap browse.Snapshot
		want string
	}{
		{"idle", browse.Snapshot{Phase: browse.PhaseIdle}, "No search yet"},
		{"loading", browse.Snapshot{Phase: browse.PhaseLoading}, "Loading..."},
		{"failure", browse.Snapshot{Phase: browse.PhaseFailure, Message: "Movie not found!"}, "Movie not found!"},
		{
			"degraded",
			browse.Snapshot{
				Phase:    browse.PhaseSuccess,
				Degraded: true,
				Message:  browse.MsgDegraded,
				Items:    browse.FallbackItems(),
				Total:    5,
			},
			browse.MsgDegraded,
		},
		{
			"fetching more",
			browse.Snapshot{
				Phase:        browse.PhaseSuccess,
				FetchingMore: true,
				Items:        []browse.ResultItem{{Title: "A"}},
			},
			"Loading more...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printSnapshot(&out, &tt.snap)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestDetailsCmd_Open(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/details").
		ExpectPOST().
		RespondJSON(details.View{
			Open:   true,
			Title:  &omdb.Title{Title: "Inception", Year: "2010", Director: "Christopher Nolan"},
			Poster: "https://example.com/inception.jpg",
			Songs: []details.Song{
				{
					Name:     "Time",
					Artist:   "Hans Zimmer",
					AppleURL: "https://music.apple.com/time",
					Links:    details.SongLinks("Time", "Hans Zimmer", "https://music.apple.com/time"),
				},
			},
			Actors: []details.Actor{{Name: "Leonardo DiCaprio", Role: details.RoleUnknown}},
		}).
		Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	require.NoError(t, runDetailsCmd(newTestCommand(&out), []string{"tt1375666"}))

	got := out.String()
	assert.Contains(t, got, "Inception (2010)")
	assert.Contains(t, got, "Christopher Nolan")
	assert.Contains(t, got, "Time - Hans Zimmer")
	assert.Contains(t, got, "open.spotify.com")
	assert.Contains(t, got, "Leonardo DiCaprio")
}

func TestDetailsCmd_Show(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/details").
		ExpectGET().
		RespondJSON(details.View{}).
		Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	require.NoError(t, runDetailsCmd(newTestCommand(&out), nil))
	assert.Contains(t, out.String(), "No title open")
}

func TestPrintView_States(t *testing.T) {
	title := &omdb.Title{Title: "Inception", Year: "2010"}

	tests := []struct {
		name string
		view details.View
		want string
	}{
		{"loading", details.View{Open: true, Loading: true, Item: browse.ResultItem{Title: "Inception"}}, "Loading Inception..."},
		{"error", details.View{Open: true, Error: details.MsgNoDetails}, details.MsgNoDetails},
		{"songs loading", details.View{Open: true, Title: title, SongsLoading: true}, "Loading songs..."},
		{"no songs", details.View{Open: true, Title: title, SongsError: details.MsgNoSongs}, details.MsgNoSongs},
		{"photos loading", details.View{Open: true, Title: title, PhotosLoading: true}, "(loading photos)"},
		{"no cast", details.View{Open: true, Title: title}, "No cast listed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printView(&out, &tt.view)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestCloseCmd(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/details").
		ExpectDELETE().
		RespondStatus(http.StatusNoContent).
		Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	require.NoError(t, runCloseCmd(newTestCommand(&out), nil))
	assert.Contains(t, out.String(), "Detail view closed")
}

func TestEventsCmd(t *testing.T) {
	occurred := time.Now().Add(-5 * time.Minute).UTC().Format(time.RFC3339)
	srv := newMockServer(t).
		ExpectPath("/api/v1/events").
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "3", r.URL.Query().Get("limit"))
			respondJSON(t, w, v1.ListEventsResponse{
				Items: []v1.EventResponse{
					{ID: 2, EventType: "search.completed", EntityType: "search", EntityID: 1, OccurredAt: occurred},
				},
				Total: 1,
				Limit: 3,
			})
		}).
		Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	cmd := newTestCommand(&out)
	addEventsFlags(cmd)
	require.NoError(t, cmd.Flags().Set("limit", "3"))

	require.NoError(t, runEventsCmd(cmd, nil))

	got := out.String()
	assert.Contains(t, got, "Events (1)")
	assert.Contains(t, got, "search.completed")
	assert.Contains(t, got, "search/1")
	assert.Contains(t, got, "5m ago")
}

func TestEventsCmd_Empty(t *testing.T) {
	srv := newMockServer(t).RespondJSON(v1.ListEventsResponse{}).Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	cmd := newTestCommand(&out)
	addEventsFlags(cmd)

	require.NoError(t, runEventsCmd(cmd, nil))
	assert.Equal(t, "No events\n", out.String())
}

func addEventsFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "n", 20, "")
	cmd.Flags().Int("offset", 0, "")
	cmd.Flags().String("entity", "", "")
}

func TestEventsCmd_Entity(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/events").
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "details", r.URL.Query().Get("entity_type"))
			assert.Equal(t, "4", r.URL.Query().Get("entity_id"))
			respondJSON(t, w, v1.ListEventsResponse{
				Items: []v1.EventResponse{{ID: 9, EventType: "details.loaded", EntityType: "details", EntityID: 4}},
				Total: 1,
			})
		}).
		Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	cmd := newTestCommand(&out)
	addEventsFlags(cmd)
	require.NoError(t, cmd.Flags().Set("entity", "details/4"))

	require.NoError(t, runEventsCmd(cmd, nil))
	assert.Contains(t, out.String(), "details/4")
}

func TestParseEntity(t *testing.T) {
	kind, id, err := parseEntity("search/12")
	require.NoError(t, err)
	assert.Equal(t, "search", kind)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"search", "/3", "details/x", ""} {
		_, _, err := parseEntity(bad)
		assert.Error(t, err, bad)
	}
}

func TestStatusCmd(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(v1.StatusResponse{
			Status:   "ok",
			Version:  "0.3.0",
			Services: map[string]bool{"tmdb": false, "omdb": true, "itunes": true},
		}).
		Build()
	withServerURL(t, srv.URL)

	var out bytes.Buffer
	require.NoError(t, runStatusCmd(newTestCommand(&out), nil))

	got := out.String()
	assert.Contains(t, got, "premiere v0.3.0")
	assert.Regexp(t, `itunes:\s+enabled`, got)
	assert.Regexp(t, `tmdb:\s+disabled`, got)
	assert.Less(t, bytes.Index(out.Bytes(), []byte("itunes")), bytes.Index(out.Bytes(), []byte("omdb")))
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "premiere", "config.toml")

	newInit := func(out *bytes.Buffer, force bool) *cobra.Command {
		cmd := newTestCommand(out)
		cmd.Flags().String("path", path, "")
		cmd.Flags().Bool("force", force, "")
		return cmd
	}

	var out bytes.Buffer
	require.NoError(t, runInitCmd(newInit(&out, false), nil))
	assert.Contains(t, out.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "OMDB_API_KEY")

	err = runInitCmd(newInit(&out, false), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, runInitCmd(newInit(&out, true), nil))
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "never", formatTimeAgo(time.Time{}))
	assert.Equal(t, "just now", formatTimeAgo(now.Add(-10*time.Second)))
	assert.Equal(t, "15m ago", formatTimeAgo(now.Add(-15*time.Minute)))
	assert.Equal(t, "3h ago", formatTimeAgo(now.Add(-3*time.Hour)))
	assert.Equal(t, "2d ago", formatTimeAgo(now.Add(-49*time.Hour)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Harry P...", truncate("Harry Potter and the Goblet of Fire", 10))
	assert.Equal(t, "Amé", truncate("Amélie", 3))
}

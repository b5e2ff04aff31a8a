package details_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/premiere/internal/browse"
	"github.com/vmunix/premiere/internal/details"
	"github.com/vmunix/premiere/internal/details/mocks"
	"github.com/vmunix/premiere/internal/events"
	"github.com/vmunix/premiere/internal/tmdb"
	"github.com/vmunix/premiere/pkg/itunes"
	"github.com/vmunix/premiere/pkg/omdb"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() details.Config {
	cfg := details.DefaultConfig()
	cfg.PhotoRate = 0
	return cfg
}

type fixture struct {
	titles *mocks.MockTitleSource
	songs  *mocks.MockSoundtrackSource
	people *mocks.MockPersonSource
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		titles: mocks.NewMockTitleSource(ctrl),
		songs:  mocks.NewMockSoundtrackSource(ctrl),
		people: mocks.NewMockPersonSource(ctrl),
	}
}

func (f *fixture) aggregator(withPeople bool) *details.Aggregator {
	var people details.PersonSource
	if withPeople {
		people = f.people
	}
	return details.NewAggregator(f.titles, f.songs, people, testConfig(), nil, testLogger())
}

var item1 = browse.ResultItem{Key: "id1", Title: "Heat", Year: "1995", IMDbID: "id1", Poster: omdb.NotAvailable}

func TestAggregator_Load(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.titles.EXPECT().Title(gomock.Any(), "id1").Return(&omdb.Title{
		Title:  "Heat",
		Year:   "1995",
		Actors: "Al Pacino, Robert De Niro",
		Poster: "https://img/heat.jpg",
	}, nil)
	f.songs.EXPECT().SearchSongs(gomock.Any(), "Heat soundtrack", 6).Return([]itunes.Track{
		{TrackID: 1, TrackName: "Heat", ArtistName: "Elliot Goldenthal", TrackViewURL: "https://music.apple.com/t/1"},
		{TrackID: 2, TrackName: "Force Marker", ArtistName: "Brian Eno"},
	}, nil)
	f.people.EXPECT().SearchPerson(gomock.Any(), "Al Pacino").Return([]tmdb.Person{{ID: 1158, Name: "Al Pacino", ProfilePath: "/al.jpg"}}, nil)
	f.people.EXPECT().SearchPerson(gomock.Any(), "Robert De Niro").Return(nil, nil)

	agg := f.aggregator(true)
	require.NoError(t, agg.Load(ctx, item1))
	agg.Wait()

	v := agg.View()
	assert.True(t, v.Open)
	assert.False(t, v.Loading)
	assert.Empty(t, v.Error)
	require.NotNil(t, v.Title)
	assert.Equal(t, "Heat", v.Title.Title)
	assert.Equal(t, "https://img/heat.jpg", v.Poster)

	assert.False(t, v.SongsLoading)
	assert.Empty(t, v.SongsError)
	require.Len(t, v.Songs, 2)
	assert.Equal(t, "https://music.apple.com/t/1", v.Songs[0].Links.Apple)
	assert.Equal(t, "https://music.apple.com/us/search?term=Force%20Marker%20Brian%20Eno", v.Songs[1].Links.Apple)

	assert.False(t, v.PhotosLoading)
	require.Len(t, v.Actors, 2)
	assert.Equal(t, details.Actor{
		Name:  "Al Pacino",
		Role:  details.RoleUnknown,
		Photo: "https://image.tmdb.org/t/p/w185/al.jpg",
	}, v.Actors[0])
	assert.Equal(t, details.AvatarURL("Robert De Niro"), v.Actors[1].Photo)
}

func TestAggregator_FailedLookupsFallBack(t *testing.T) {
	f := newFixture(t)

	f.titles.EXPECT().Title(gomock.Any(), "id1").Return(&omdb.Title{Title: "Heat", Actors: "A, B, C"}, nil)
	f.songs.EXPECT().SearchSongs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.people.EXPECT().SearchPerson(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(3)

	agg := f.aggregator(true)
	require.NoError(t, agg.Load(context.Background(), item1))
	agg.Wait()

	v := agg.View()
	require.Len(t, v.Actors, 3)
	for _, a := range v.Actors {
		assert.Equal(t, details.AvatarURL(a.Name), a.Photo)
	}
}

func TestAggregator_NoCredentialUsesPlaceholders(t *testing.T) {
	f := newFixture(t)

	f.titles.EXPECT().Title(gomock.Any(), "id1").Return(&omdb.Title{Title: "Heat", Actors: "Val Kilmer,  ,Jon Voight"}, nil)
	f.songs.EXPECT().SearchSongs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	agg := f.aggregator(false)
	require.NoError(t, agg.Load(context.Background(), item1))
	agg.Wait()

	v := agg.View()
	require.Len(t, v.Actors, 2)
	assert.Equal(t, "Val Kilmer", v.Actors[0].Name)
	assert.Equal(t, details.AvatarURL("Val Kilmer"), v.Actors[0].Photo)
	assert.Equal(t, details.AvatarURL("Jon Voight"), v.Actors[1].Photo)
}

func TestAggregator_MissingID(t *testing.T) {
	f := newFixture(t)
	agg := f.aggregator(true)

	err := agg.Load(context.Background(), browse.ResultItem{Title: "Unknown"})

	require.ErrorIs(t, err, details.ErrNoDetails)
	v := agg.View()
	assert.True(t, v.Open)
	assert.Equal(t, details.MsgNoDetails, v.Error)
	assert.Nil(t, v.Title)
	assert.Equal(t, browse.DefaultPosterURL, v.Poster)
}

func TestAggregator_DetailFailure(t *testing.T) {
	f := newFixture(t)
	f.titles.EXPECT().Title(gomock.Any(), "id1").Return(nil, &omdb.APIError{Message: "Incorrect IMDb ID."})

	agg := f.aggregator(true)
	require.NoError(t, agg.Load(context.Background(), item1))
	agg.Wait()

	v := agg.View()
	assert.Equal(t, "Incorrect IMDb ID.", v.Error)
	assert.False(t, v.Loading)
	assert.Nil(t, v.Title)
	assert.Empty(t, v.Songs)
	assert.Empty(t, v.Actors)
}

func TestAggregator_NoSongs(t *testing.T) {
	f := newFixture(t)
	f.titles.EXPECT().Title(gomock.Any(), "id1").Return(&omdb.Title{Title: "Heat"}, nil)
	f.songs.EXPECT().SearchSongs(gomock.Any(), "Heat soundtrack", 6).Return([]itunes.Track{}, nil)

	agg := f.aggregator(false)
	require.NoError(t, agg.Load(context.Background(), item1))
	agg.Wait()

	v := agg.View()
	assert.Empty(t, v.Songs)
	assert.Equal(t, details.MsgNoSongs, v.SongsError)
	assert.ErrorIs(t, v.SongsErr, details.ErrNoSongs)
	assert.Empty(t, v.Actors)
	assert.False(t, v.PhotosLoading)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"songs":[]`)
	assert.Contains(t, string(data), `"actors":[]`)
}

func TestAggregator_ClosedViewHasEmptyLists(t *testing.T) {
	agg := newFixture(t).aggregator(false)

	data, err := json.Marshal(agg.View())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"songs":[]`)
	assert.Contains(t, string(data), `"actors":[]`)
}

func TestAggregator_SoundtrackServiceError(t *testing.T) {
	f := newFixture(t)
	f.titles.EXPECT().Title(gomock.Any(), "id1").Return(&omdb.Title{Title: "Heat"}, nil)
	f.songs.EXPECT().SearchSongs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, itunes.ErrUnavailable)

	agg := f.aggregator(false)
	require.NoError(t, agg.Load(context.Background(), item1))
	agg.Wait()

	v := agg.View()
	assert.Empty(t, v.Songs)
	assert.Contains(t, v.SongsError, "soundtrack service error")
	assert.ErrorIs(t, v.SongsErr, itunes.ErrUnavailable)
}

func TestAggregator_SongTermFallsBackToItemTitle(t *testing.T) {
	f := newFixture(t)
	f.titles.EXPECT().Title(gomock.Any(), "id1").Return(&omdb.Title{}, nil)
	f.songs.EXPECT().SearchSongs(gomock.Any(), "Heat soundtrack", 6).Return(nil, nil)

	agg := f.aggregator(false)
	require.NoError(t, agg.Load(context.Background(), item1))
	agg.Wait()
}

func TestAggregator_CloseCancelsBackgroundWork(t *testing.T) {
	f := newFixture(t)

	started := make(chan struct{})
	cancelled := make(chan struct{})
	f.titles.EXPECT().Title(gomock.Any(), "id1").Return(&omdb.Title{Title: "Heat"}, nil)
	f.songs.EXPECT().SearchSongs(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ int) ([]itunes.Track, error) {
			close(started)
			<-ctx.Done()
			close(cancelled)
			return []itunes.Track{{TrackID: 9, TrackName: "late"}}, nil
		})

	agg := f.aggregator(false)
	require.NoError(t, agg.Load(context.Background(), item1))
	<-started

	agg.Close()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("background soundtrack fetch was not cancelled")
	}
	agg.Wait()

	v := agg.View()
	assert.False(t, v.Open)
	assert.Empty(t, v.Error)
	assert.Nil(t, v.Title)
	assert.Empty(t, v.Songs)
}

func TestAggregator_NewLoadSupersedes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	started := make(chan struct{})
	finished := make(chan struct{})
	f.titles.EXPECT().Title(gomock.Any(), "id1").Return(&omdb.Title{Title: "Heat"}, nil)
	f.titles.EXPECT().Title(gomock.Any(), "id2").Return(&omdb.Title{Title: "Ronin"}, nil)
	f.songs.EXPECT().SearchSongs(gomock.Any(), "Heat soundtrack", 6).DoAndReturn(
		func(ctx context.Context, _ string, _ int) ([]itunes.Track, error) {
			close(started)
			<-ctx.Done()
			defer close(finished)
			return []itunes.Track{{TrackID: 1, TrackName: "stale"}}, nil
		})
	f.songs.EXPECT().SearchSongs(gomock.Any(), "Ronin soundtrack", 6).Return([]itunes.Track{{TrackID: 2, TrackName: "fresh"}}, nil)

	agg := f.aggregator(false)
	require.NoError(t, agg.Load(ctx, item1))
	<-started

	require.NoError(t, agg.Load(ctx, browse.ResultItem{Title: "Ronin", IMDbID: "id2"}))
	agg.Wait()
	<-finished

	v := agg.View()
	assert.Equal(t, "id2", v.Item.IMDbID)
	require.Len(t, v.Songs, 1)
	assert.Equal(t, "fresh", v.Songs[0].Name)
}

func TestAggregator_CloseDuringDetailFetch(t *testing.T) {
	f := newFixture(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.titles.EXPECT().Title(gomock.Any(), "id1").DoAndReturn(
		func(context.Context, string) (*omdb.Title, error) {
			close(entered)
			<-release
			return &omdb.Title{Title: "Heat"}, nil
		})

	agg := f.aggregator(false)
	done := make(chan error, 1)
	go func() { done <- agg.Load(context.Background(), item1) }()
	<-entered

	agg.Close()
	close(release)
	require.NoError(t, <-done)

	v := agg.View()
	assert.False(t, v.Open)
	assert.Nil(t, v.Title)
}

func TestAggregator_PublishesEvents(t *testing.T) {
	f := newFixture(t)
	bus := events.NewBus(nil, testLogger())
	defer bus.Close()
	sub := bus.SubscribeAll(16)

	f.titles.EXPECT().Title(gomock.Any(), "id1").Return(&omdb.Title{Title: "Heat", Actors: "A"}, nil)
	f.songs.EXPECT().SearchSongs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	agg := details.NewAggregator(f.titles, f.songs, nil, testConfig(), bus, testLogger())
	require.NoError(t, agg.Load(context.Background(), item1))
	agg.Wait()
	agg.Close()

	var got []string
	for len(got) < 5 {
		select {
		case e := <-sub:
			got = append(got, e.EventType())
		case <-time.After(time.Second):
			t.Fatalf("timed out, got %v", got)
		}
	}
	assert.Equal(t, events.EventDetailsRequested, got[0])
	assert.Equal(t, events.EventDetailsLoaded, got[1])
	assert.ElementsMatch(t, []string{events.EventSoundtrackLoaded, events.EventPhotosResolved}, got[2:4])
	assert.Equal(t, events.EventDetailsClosed, got[4])
}

// Package details assembles the detail view for a selected title: the full
// record, a soundtrack sample and actor portraits.
package details

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/vmunix/premiere/internal/browse"
	"github.com/vmunix/premiere/internal/events"
	"github.com/vmunix/premiere/internal/tmdb"
	"github.com/vmunix/premiere/pkg/itunes"
	"github.com/vmunix/premiere/pkg/omdb"
)

// TitleSource fetches a full title record.
type TitleSource interface {
	Title(ctx context.Context, imdbID string) (*omdb.Title, error)
}

// SoundtrackSource searches songs.
type SoundtrackSource interface {
	SearchSongs(ctx context.Context, term string, limit int) ([]itunes.Track, error)
}

// PersonSource searches people by name.
type PersonSource interface {
	SearchPerson(ctx context.Context, name string) ([]tmdb.Person, error)
}

// Publisher receives aggregator events. *events.Bus satisfies it.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// Config tunes the background lookups.
type Config struct {
	SongLimit    int        // soundtrack entries requested
	PhotoSize    string     // TMDB image size, e.g. "w185"
	PhotoWorkers int        // concurrent person lookups
	PhotoRate    rate.Limit // person lookups per second; 0 means unlimited
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		SongLimit:    6,
		PhotoSize:    "w185",
		PhotoWorkers: 4,
		PhotoRate:    10,
	}
}

// Actor is a cast entry in the detail view.
type Actor struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Photo string `json:"photo"`
}

// View is a snapshot of the detail view.
type View struct {
	Open          bool              `json:"open"`
	Item          browse.ResultItem `json:"item"`
	Loading       bool              `json:"loading"`
	Error         string            `json:"error,omitempty"`
	Title         *omdb.Title       `json:"title,omitempty"`
	Poster        string            `json:"poster,omitempty"`
	SongsLoading  bool              `json:"songs_loading"`
	Songs         []Song            `json:"songs"`
	SongsError    string            `json:"songs_error,omitempty"`
	SongsErr      error             `json:"-"`
	PhotosLoading bool              `json:"photos_loading"`
	Actors        []Actor           `json:"actors"`
}

// Aggregator holds at most one open detail view. Loading a new item or
// closing the view cancels the previous background work and drops its results.
type Aggregator struct {
	titles  TitleSource
	songs   SoundtrackSource
	people  PersonSource // nil: placeholder portraits only
	cfg     Config
	bus     Publisher
	log     *slog.Logger
	limiter *rate.Limiter

	mu            sync.Mutex
	gen           int64 // bumped by Load and Close
	cancel        context.CancelFunc
	done          chan struct{}
	open          bool
	item          browse.ResultItem
	loading       bool
	errMsg        string
	title         *omdb.Title
	songsLoading  bool
	songList      []Song
	songsErr      error
	photosLoading bool
	photos        map[string]string
}

// NewAggregator creates an aggregator. people and bus may be nil.
func NewAggregator(titles TitleSource, songs SoundtrackSource, people PersonSource, cfg Config, bus Publisher, log *slog.Logger) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	def := DefaultConfig()
	if cfg.SongLimit <= 0 {
		cfg.SongLimit = def.SongLimit
	}
	if cfg.PhotoSize == "" {
		cfg.PhotoSize = def.PhotoSize
	}
	if cfg.PhotoWorkers <= 0 {
		cfg.PhotoWorkers = def.PhotoWorkers
	}
	limit := cfg.PhotoRate
	if limit <= 0 {
		limit = rate.Inf
	}
	return &Aggregator{
		titles:  titles,
		songs:   songs,
		people:  people,
		cfg:     cfg,
		bus:     bus,
		log:     log.With("component", "details"),
		limiter: rate.NewLimiter(limit, cfg.PhotoWorkers),
	}
}

// Load opens the detail view for item and fetches its full record.
// Once the record is stored, the soundtrack and portraits are fetched in the
// background; use Wait to block until they settle.
//
// An item without an IMDb id fails with ErrNoDetails. A failed record fetch
// is reported through View, not returned.
func (a *Aggregator) Load(ctx context.Context, item browse.ResultItem) error {
	a.mu.Lock()
	a.stopLocked()
	a.gen++
	gen := a.gen
	a.resetLocked()
	a.open = true
	a.item = item
	if item.IMDbID == "" {
		a.errMsg = MsgNoDetails
		a.mu.Unlock()
		a.publish(ctx, &events.DetailsFailed{
			BaseEvent: events.NewBaseEvent(events.EventDetailsFailed, events.EntityDetails, gen),
			Message:   MsgNoDetails,
		})
		return ErrNoDetails
	}
	a.loading = true
	a.mu.Unlock()

	a.publish(ctx, &events.DetailsRequested{
		BaseEvent: events.NewBaseEvent(events.EventDetailsRequested, events.EntityDetails, gen),
		IMDbID:    item.IMDbID,
	})

	title, err := a.titles.Title(ctx, item.IMDbID)

	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		return nil
	}
	a.loading = false
	if err != nil {
		msg := failureMessage(err)
		a.errMsg = msg
		a.mu.Unlock()
		a.log.Info("details failed", "imdb_id", item.IMDbID, "message", msg)
		a.publish(ctx, &events.DetailsFailed{
			BaseEvent: events.NewBaseEvent(events.EventDetailsFailed, events.EntityDetails, gen),
			IMDbID:    item.IMDbID,
			Message:   msg,
		})
		return nil
	}

	a.title = title
	term := title.Title
	if term == "" {
		term = item.Title
	}
	names := ParseActors(title.Actors)
	a.songsLoading = term != ""
	a.photosLoading = len(names) > 0

	bg, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	a.cancel = cancel
	a.done = done
	a.mu.Unlock()

	a.log.Debug("details loaded", "imdb_id", item.IMDbID, "title", title.Title, "actors", len(names))
	a.publish(ctx, &events.DetailsLoaded{
		BaseEvent: events.NewBaseEvent(events.EventDetailsLoaded, events.EntityDetails, gen),
		IMDbID:    item.IMDbID,
		Title:     title.Title,
	})

	var g errgroup.Group
	if term != "" {
		g.Go(func() error {
			a.loadSongs(bg, gen, item.IMDbID, term)
			return nil
		})
	}
	if len(names) > 0 {
		g.Go(func() error {
			a.resolvePhotos(bg, gen, item.IMDbID, names)
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		cancel()
		close(done)
	}()
	return nil
}

// Close discards the detail view and cancels its background work.
func (a *Aggregator) Close() {
	a.mu.Lock()
	wasOpen := a.open
	a.stopLocked()
	a.gen++
	gen := a.gen
	a.resetLocked()
	a.mu.Unlock()

	if wasOpen {
		a.publish(context.Background(), &events.DetailsClosed{
			BaseEvent: events.NewBaseEvent(events.EventDetailsClosed, events.EntityDetails, gen),
		})
	}
}

// Wait blocks until the background work started by the latest Load ends.
func (a *Aggregator) Wait() {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()
	if done != nil {
		<-done
	}
}

// View returns a snapshot of the detail view.
func (a *Aggregator) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := View{
		Open:          a.open,
		Item:          a.item,
		Loading:       a.loading,
		Error:         a.errMsg,
		Title:         a.title,
		SongsLoading:  a.songsLoading,
		Songs:         append(make([]Song, 0, len(a.songList)), a.songList...),
		SongsError:    songsMessage(a.songsErr),
		SongsErr:      a.songsErr,
		PhotosLoading: a.photosLoading,
		Actors:        []Actor{},
	}
	if !a.open {
		return v
	}
	v.Poster = a.item.PosterURL()
	if a.title != nil {
		v.Poster = browse.ResultItem{Poster: a.title.Poster}.PosterURL()
		for _, name := range ParseActors(a.title.Actors) {
			photo, ok := a.photos[name]
			if !ok {
				photo = AvatarURL(name)
			}
			v.Actors = append(v.Actors, Actor{Name: name, Role: RoleUnknown, Photo: photo})
		}
	}
	return v
}

// ParseActors splits a comma-delimited cast string, trimming names and
// dropping empty entries.
func ParseActors(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (a *Aggregator) loadSongs(ctx context.Context, gen int64, imdbID, title string) {
	tracks, err := a.songs.SearchSongs(ctx, title+" soundtrack", a.cfg.SongLimit)
	if ctx.Err() != nil {
		return
	}

	var songs []Song
	var songsErr error
	switch {
	case err != nil:
		songsErr = fmt.Errorf("soundtrack service error: %w", err)
		a.log.Warn("soundtrack lookup failed", "imdb_id", imdbID, "error", err)
	case len(tracks) == 0:
		songsErr = ErrNoSongs
	default:
		songs = make([]Song, 0, len(tracks))
		for _, t := range tracks {
			songs = append(songs, Song{
				ID:       t.TrackID,
				Name:     t.TrackName,
				Artist:   t.ArtistName,
				AppleURL: t.TrackViewURL,
				Links:    SongLinks(t.TrackName, t.ArtistName, t.TrackViewURL),
			})
		}
	}

	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		return
	}
	a.songsLoading = false
	a.songList = songs
	a.songsErr = songsErr
	a.mu.Unlock()

	a.publish(ctx, &events.SoundtrackLoaded{
		BaseEvent: events.NewBaseEvent(events.EventSoundtrackLoaded, events.EntityDetails, gen),
		IMDbID:    imdbID,
		Songs:     len(songs),
		Error:     songsMessage(songsErr),
	})
}

// resolvePhotos looks up every name and publishes the whole map at once.
func (a *Aggregator) resolvePhotos(ctx context.Context, gen int64, imdbID string, names []string) {
	photos := make(map[string]string, len(names))
	placeholders := 0

	if a.people == nil {
		for _, name := range names {
			photos[name] = AvatarURL(name)
		}
		placeholders = len(photos)
	} else {
		var mu sync.Mutex
		var g errgroup.Group
		g.SetLimit(a.cfg.PhotoWorkers)
		for _, name := range unique(names) {
			g.Go(func() error {
				photo, found := a.lookupPhoto(ctx, name)
				mu.Lock()
				photos[name] = photo
				if !found {
					placeholders++
				}
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	}
	if ctx.Err() != nil {
		return
	}

	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		return
	}
	a.photosLoading = false
	a.photos = photos
	a.mu.Unlock()

	a.publish(ctx, &events.PhotosResolved{
		BaseEvent:    events.NewBaseEvent(events.EventPhotosResolved, events.EntityDetails, gen),
		IMDbID:       imdbID,
		Actors:       len(photos),
		Placeholders: placeholders,
	})
}

func unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// lookupPhoto returns the first match's portrait, or the avatar when the
// lookup fails or finds none.
func (a *Aggregator) lookupPhoto(ctx context.Context, name string) (string, bool) {
	if err := a.limiter.Wait(ctx); err != nil {
		return AvatarURL(name), false
	}
	people, err := a.people.SearchPerson(ctx, name)
	if err != nil {
		a.log.Debug("person lookup failed", "name", name, "error", err)
		return AvatarURL(name), false
	}
	if len(people) == 0 || people[0].ProfilePath == "" {
		return AvatarURL(name), false
	}
	return people[0].ProfileURL(a.cfg.PhotoSize), true
}

// stopLocked cancels background work. Caller holds a.mu.
func (a *Aggregator) stopLocked() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.done = nil
}

// resetLocked clears the view. Caller holds a.mu.
func (a *Aggregator) resetLocked() {
	a.open = false
	a.item = browse.ResultItem{}
	a.loading = false
	a.errMsg = ""
	a.title = nil
	a.songsLoading = false
	a.songList = nil
	a.songsErr = nil
	a.photosLoading = false
	a.photos = nil
}

func (a *Aggregator) publish(ctx context.Context, e events.Event) {
	if a.bus == nil {
		return
	}
	if err := a.bus.Publish(ctx, e); err != nil {
		a.log.Warn("failed to publish event", "type", e.EventType(), "error", err)
	}
}

// songsMessage is the visible form of a soundtrack error.
func songsMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoSongs):
		return MsgNoSongs
	default:
		return err.Error()
	}
}

func failureMessage(err error) string {
	var apiErr *omdb.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

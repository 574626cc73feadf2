package repositories

import (
	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/store"
)

// SongRepository manages [models.Song] records in the playlist collection.
//
// Songs are read-only over HTTP; creation happens through the realtime
// add_song message, which lands here.
type SongRepository struct {
	coll   *store.Collection
	events Publisher
	logger *log.Logger
}

// NewSongRepository creates a new [SongRepository] over the given collection.
// A nil events publisher disables broadcasting.
func NewSongRepository(coll *store.Collection, events Publisher, logger *log.Logger) *SongRepository {
	if events == nil {
		events = NopPublisher{}
	}
	return &SongRepository{coll: coll, events: events, logger: logger}
}

// Create inserts a new song and broadcasts new_song to every connected
// client, including the one that submitted it.
func (r *SongRepository) Create(song models.Song) (*models.Song, error) {
	if err := song.Validate(); err != nil {
		return nil, err
	}

	id, err := r.coll.InsertOne(song.Fields())
	if err != nil {
		return nil, storeErr("insert song", err)
	}
	song.ID = id

	r.events.Publish(EventNewSong, song)
	r.logger.Info("song added", "id", id, "title", song.Title)

	return &song, nil
}

// List returns every song in insertion order. The slice is empty, never nil,
// when the playlist holds no records.
func (r *SongRepository) List() ([]models.Song, error) {
	docs, err := r.coll.Find()
	if err != nil {
		return nil, storeErr("list songs", err)
	}

	songs := []models.Song{}
	for _, doc := range docs {
		songs = append(songs, models.Song{
			ID:     doc.ID,
			Title:  doc.Fields["title"],
			Artist: doc.Fields["artist"],
		})
	}
	return songs, nil
}

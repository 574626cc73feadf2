package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/repositories"
)

// PlaylistHandler serves the read-only playlist endpoints. Songs are added
// through the realtime add_song message, not over HTTP.
type PlaylistHandler struct {
	songs  *repositories.SongRepository
	logger *log.Logger
}

// NewPlaylistHandler creates the handler over a song repository.
func NewPlaylistHandler(songs *repositories.SongRepository, logger *log.Logger) *PlaylistHandler {
	return &PlaylistHandler{songs: songs, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *PlaylistHandler) Routes() []string {
	return []string{"GET /playlist/songs"}
}

// ServeHTTP handles GET /playlist/songs.
func (h *PlaylistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songs.List()
	if err != nil {
		respondError(w, err, "")
		return
	}
	respondJSON(w, http.StatusOK, songs)
}

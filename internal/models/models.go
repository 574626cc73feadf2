// package models defines the record types persisted by the realtime CRUD service
package models

import (
	"fmt"

	"github.com/desertthunder/jukebox/internal/shared"
)

// User is a record in the "users" collection. The ID is assigned by the
// document store at creation and never changes.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks that both required fields are present. There is no
// uniqueness constraint on email and no format validation.
func (u User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("%w: name", shared.ErrMissingField)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: email", shared.ErrMissingField)
	}
	return nil
}

// Fields returns the user's stored fields, excluding the id.
func (u User) Fields() map[string]string {
	return map[string]string{"name": u.Name, "email": u.Email}
}

// Song is a record in the "playlist" collection.
type Song struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Validate checks that both required fields are present.
func (s Song) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("%w: title", shared.ErrMissingField)
	}
	if s.Artist == "" {
		return fmt.Errorf("%w: artist", shared.ErrMissingField)
	}
	return nil
}

// Fields returns the song's stored fields, excluding the id.
func (s Song) Fields() map[string]string {
	return map[string]string{"title": s.Title, "artist": s.Artist}
}

// package repositories provides the record gateway between HTTP/WS handlers
// and the document store.
//
// Each repository exposes CRUD over one collection, validates identifier
// format before any store call, maps store outcomes to the shared sentinel
// errors, and hands an event to its [Publisher] after every successful
// mutation. Failure paths never publish.
package repositories

import (
	"fmt"

	"github.com/desertthunder/jukebox/internal/shared"
)

// Broadcast event names, one per successful mutation kind.
const (
	EventNewUser     = "new_user"
	EventUpdatedUser = "updated_user"
	EventDeletedUser = "deleted_user"
	EventNewSong     = "new_song"
)

// Publisher delivers an event to all connected realtime clients. Delivery is
// best-effort: implementations must not block and must not return errors to
// the mutating call path.
type Publisher interface {
	Publish(event string, payload any)
}

// NopPublisher discards events. Useful when no realtime channel is attached.
type NopPublisher struct{}

func (NopPublisher) Publish(event string, payload any) {}

// storeErr classifies a failed store call so the request boundary can map it
// to a transport-level failure.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", shared.ErrStoreUnavailable, op, err)
}

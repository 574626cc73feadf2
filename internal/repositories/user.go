package repositories

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/desertthunder/jukebox/internal/store"
)

// UserRepository implements CRUD for [models.User] records in the users
// collection and broadcasts every successful mutation.
type UserRepository struct {
	coll   *store.Collection
	events Publisher
	logger *log.Logger
}

// NewUserRepository creates a new [UserRepository] over the given collection.
// A nil events publisher disables broadcasting.
func NewUserRepository(coll *store.Collection, events Publisher, logger *log.Logger) *UserRepository {
	if events == nil {
		events = NopPublisher{}
	}
	return &UserRepository{coll: coll, events: events, logger: logger}
}

// Create inserts a new user and broadcasts new_user with the assigned id.
// No duplicate check is performed; two users may share an email.
func (r *UserRepository) Create(user models.User) (*models.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	id, err := r.coll.InsertOne(user.Fields())
	if err != nil {
		return nil, storeErr("insert user", err)
	}
	user.ID = id

	r.events.Publish(EventNewUser, user)
	r.logger.Info("user created", "id", id)

	return &user, nil
}

// List returns every user in insertion order. The slice is empty, never nil,
// when the collection holds no records.
func (r *UserRepository) List() ([]models.User, error) {
	docs, err := r.coll.Find()
	if err != nil {
		return nil, storeErr("list users", err)
	}

	users := []models.User{}
	for _, doc := range docs {
		users = append(users, userFromDocument(doc))
	}
	return users, nil
}

// Get returns the user with the given id. A malformed id fails with
// [shared.ErrInvalidID] before the store is consulted; an unmatched id fails
// with [shared.ErrUserNotFound].
func (r *UserRepository) Get(id string) (*models.User, error) {
	if !store.IsValidObjectID(id) {
		return nil, fmt.Errorf("%w: %q", shared.ErrInvalidID, id)
	}

	doc, err := r.coll.FindByID(id)
	if errors.Is(err, store.ErrNoDocument) {
		return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, id)
	}
	if err != nil {
		return nil, storeErr("get user", err)
	}

	user := userFromDocument(*doc)
	return &user, nil
}

// Update replaces the name and email of the user with the given id entirely
// and broadcasts updated_user.
//
// Existence is checked before the update, so an absent record yields
// [shared.ErrUserNotFound] while submitting fields identical to the current
// values is a successful no-op that still broadcasts.
func (r *UserRepository) Update(id string, user models.User) (*models.User, error) {
	if !store.IsValidObjectID(id) {
		return nil, fmt.Errorf("%w: %q", shared.ErrInvalidID, id)
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if _, err := r.coll.FindByID(id); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, id)
		}
		return nil, storeErr("get user", err)
	}

	if _, err := r.coll.UpdateByID(id, user.Fields()); err != nil {
		return nil, storeErr("update user", err)
	}
	user.ID = id

	r.events.Publish(EventUpdatedUser, user)
	r.logger.Info("user updated", "id", id)

	return &user, nil
}

// Delete removes the user with the given id permanently and broadcasts
// deleted_user. Deleting an already-deleted id fails with
// [shared.ErrUserNotFound] on every call.
func (r *UserRepository) Delete(id string) error {
	if !store.IsValidObjectID(id) {
		return fmt.Errorf("%w: %q", shared.ErrInvalidID, id)
	}

	deleted, err := r.coll.DeleteByID(id)
	if err != nil {
		return storeErr("delete user", err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: %s", shared.ErrUserNotFound, id)
	}

	r.events.Publish(EventDeletedUser, map[string]string{"id": id})
	r.logger.Info("user deleted", "id", id)

	return nil
}

func userFromDocument(doc store.Document) models.User {
	return models.User{
		ID:    doc.ID,
		Name:  doc.Fields["name"],
		Email: doc.Fields["email"],
	}
}

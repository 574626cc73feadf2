package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/repositories"
)

// UserHandler serves the /users CRUD endpoints. Implements the [Handler]
// interface; dispatch happens on the ServeMux method patterns from Routes.
type UserHandler struct {
	users  *repositories.UserRepository
	logger *log.Logger
}

// NewUserHandler creates the handler over a user repository.
func NewUserHandler(users *repositories.UserRepository, logger *log.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *UserHandler) Routes() []string {
	return []string{
		"POST /users",
		"GET /users",
		"GET /users/{id}",
		"PUT /users/{id}",
		"DELETE /users/{id}",
	}
}

// ServeHTTP dispatches to the operation matching the method and path shape.
func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch {
	case r.Method == http.MethodPost:
		h.create(w, r)
	case r.Method == http.MethodGet && id == "":
		h.list(w)
	case r.Method == http.MethodGet:
		h.get(w, id)
	case r.Method == http.MethodPut:
		h.update(w, r, id)
	case r.Method == http.MethodDelete:
		h.delete(w, id)
	default:
		respondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// create handles POST /users. The response status and broadcast happen
// before any client observes the record; delivery itself is fire-and-forget.
func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeBody(r, &user); err != nil {
		respondError(w, err, "")
		return
	}

	created, err := h.users.Create(user)
	if err != nil {
		respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusCreated, messageBody{
		Message: "User created successfully!",
		ID:      created.ID,
	})
}

// list handles GET /users.
func (h *UserHandler) list(w http.ResponseWriter) {
	users, err := h.users.List()
	if err != nil {
		respondError(w, err, "")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// get handles GET /users/{id}.
func (h *UserHandler) get(w http.ResponseWriter, id string) {
	user, err := h.users.Get(id)
	if err != nil {
		respondError(w, err, "User not found!")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// update handles PUT /users/{id}. The submitted fields replace name and
// email entirely; there is no partial merge.
func (h *UserHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var user models.User
	if err := decodeBody(r, &user); err != nil {
		respondError(w, err, "")
		return
	}

	if _, err := h.users.Update(id, user); err != nil {
		respondError(w, err, "User not found!")
		return
	}

	respondMessage(w, http.StatusOK, "User updated successfully!")
}

// delete handles DELETE /users/{id}.
func (h *UserHandler) delete(w http.ResponseWriter, id string) {
	if err := h.users.Delete(id); err != nil {
		respondError(w, err, "User not found!")
		return
	}
	respondMessage(w, http.StatusOK, "User deleted successfully!")
}

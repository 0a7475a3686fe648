package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/devconnect/api/internal/api/shared"
	"github.com/devconnect/api/internal/domain"
	"github.com/devconnect/api/internal/platform/logger"
	"github.com/devconnect/api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PostHandler handles post-related HTTP requests: listing, creation,
// deletion, the like toggle, and comments.
type PostHandler struct {
	postStore store.PostStore
	logger    *slog.Logger
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postStore store.PostStore, log *slog.Logger) *PostHandler {
	if log == nil {
		log = slog.Default()
	}

	return &PostHandler{
		postStore: postStore,
		logger:    log.With(slog.String("component", "post_handler")),
	}
}

// parseIDParam extracts and parses a UUID path parameter. On failure it
// writes the 400 response itself and reports false.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing "+name+" parameter")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid identifier format")
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /api/post.
// Posts come back newest first. An empty feed is a 404, preserving the
// original external contract.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postStore.GetAll(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list posts", err)
		return
	}

	if len(posts) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "No posts available")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// GetByID handles GET /api/post/{id}.
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// Create handles POST /api/post.
// The author is the authenticated requester; the author's display name is
// denormalized onto the post.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if fieldErrors := ValidateRequest(req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	post, err := domain.NewPost(user.ID, user.Name, req.Text)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.postStore.Create(r.Context(), post); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to create post", err)
		return
	}

	log.Info("post created", "post_id", post.ID, "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// Delete handles DELETE /api/post/{id}.
// Only the post's author may delete it.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if post.UserID != user.ID {
		shared.RespondWithError(w, r,
			http.StatusForbidden, GetSafeErrorMessage(ErrNotResourceOwner))
		return
	}

	if err := h.postStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("post deleted", "post_id", id, "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, DeletedResponse{Deleted: true})
}

// ToggleLike handles POST /api/post/like/{id}.
// Liking a post the requester already likes removes the like; otherwise one
// like is added. A user never holds more than one like on a post.
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	liked := post.ToggleLike(user.ID)

	if err := h.postStore.Update(r.Context(), post); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to update post", err)
		return
	}

	log.Debug("like toggled",
		"post_id", id, "user_id", user.ID, "liked", liked)
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// AddComment handles POST /api/post/comment/{id}.
// New comments are prepended to the post's comment sequence.
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if fieldErrors := ValidateRequest(req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	comment, err := domain.NewComment(user.ID, user.Name, req.Text)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	post.AddComment(comment)

	if err := h.postStore.Update(r.Context(), post); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to update post", err)
		return
	}

	log.Info("comment added",
		"post_id", id, "comment_id", comment.ID, "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// DeleteComment handles DELETE /api/post/comment/{id}/{comment_id}.
// Only the post's author may remove comments. An unknown comment ID leaves
// the sequence unchanged and reports not found.
func (h *PostHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	commentID, ok := parseIDParam(w, r, "comment_id")
	if !ok {
		return
	}

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if post.UserID != user.ID {
		shared.RespondWithError(w, r,
			http.StatusForbidden, GetSafeErrorMessage(ErrNotResourceOwner))
		return
	}

	if err := post.RemoveComment(commentID); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.postStore.Update(r.Context(), post); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to update post", err)
		return
	}

	log.Info("comment deleted",
		"post_id", id, "comment_id", commentID, "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

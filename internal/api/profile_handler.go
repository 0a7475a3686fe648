package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/devconnect/api/internal/api/shared"
	"github.com/devconnect/api/internal/domain"
	"github.com/devconnect/api/internal/platform/logger"
	"github.com/devconnect/api/internal/store"
	"github.com/go-chi/chi/v5"
)

// ProfileHandler handles profile-related HTTP requests: lookups, the
// create-or-update upsert, experience/education entries, and deletion.
type ProfileHandler struct {
	profileStore store.ProfileStore
	logger       *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(profileStore store.ProfileStore, log *slog.Logger) *ProfileHandler {
	if log == nil {
		log = slog.Default()
	}

	return &ProfileHandler{
		profileStore: profileStore,
		logger:       log.With(slog.String("component", "profile_handler")),
	}
}

// splitSkills turns the delimited skills string into an ordered sequence,
// dropping empty segments.
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	result := []string{}
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// GetOwn handles GET /api/profile.
func (h *ProfileHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	profile, err := h.profileStore.GetByUserID(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "There is no profile for this user")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to get profile", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// ListAll handles GET /api/profile/all.
// An empty result is a 404, preserving the original external contract.
func (h *ProfileHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileStore.GetAll(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list profiles", err)
		return
	}

	if len(profiles) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "There are no profiles")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profiles)
}

// GetByHandle handles GET /api/profile/handle/{handle}.
func (h *ProfileHandler) GetByHandle(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	if handle == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing handle parameter")
		return
	}

	profile, err := h.profileStore.GetByHandle(r.Context(), handle)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "There is no profile for this handle")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to get profile", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// GetByUserID handles GET /api/profile/user/{user_id}.
func (h *ProfileHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "user_id")
	if !ok {
		return
	}

	profile, err := h.profileStore.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "There is no profile for this user")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to get profile", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Upsert handles POST /api/profile.
// It creates the requester's profile if absent, otherwise updates its
// scalar fields, skills, and social links; experience and education
// sequences survive updates untouched. Handle uniqueness is enforced by the
// store against all other owners' profiles.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	var req ProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if fieldErrors := ValidateRequest(req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	profile, err := domain.NewProfile(user.ID, req.Handle, req.Status)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	profile.Company = req.Company
	profile.Website = req.Website
	profile.Location = req.Location
	profile.Skills = splitSkills(req.Skills)
	profile.Bio = req.Bio
	profile.GithubUsername = req.GithubUsername
	profile.Social = domain.SocialLinks{
		Youtube:   req.Social.Youtube,
		Twitter:   req.Social.Twitter,
		Linkedin:  req.Social.Linkedin,
		Instagram: req.Social.Instagram,
		Facebook:  req.Social.Facebook,
	}

	updated, err := h.profileStore.Upsert(r.Context(), profile)
	if err != nil {
		if errors.Is(err, store.ErrHandleExists) {
			shared.RespondWithError(w, r, http.StatusConflict, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to save profile", err)
		return
	}

	log.Info("profile saved",
		"profile_id", updated.ID, "user_id", user.ID, "handle", updated.Handle)
	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// AddExperience handles POST /api/profile/experience.
func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	var req ExperienceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if fieldErrors := ValidateRequest(req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	profile, err := h.profileStore.GetByUserID(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	exp := domain.NewExperience(
		req.Title, req.Company, req.Location,
		req.From, req.To, req.Current, req.Description,
	)
	profile.AddExperience(exp)

	if err := h.profileStore.Update(r.Context(), profile); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to save profile", err)
		return
	}

	log.Info("experience added",
		"profile_id", profile.ID, "entry_id", exp.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// RemoveExperience handles DELETE /api/profile/experience/{exp_id}.
func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	expID, ok := parseIDParam(w, r, "exp_id")
	if !ok {
		return
	}

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	profile, err := h.profileStore.GetByUserID(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := profile.RemoveExperience(expID); err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
		return
	}

	if err := h.profileStore.Update(r.Context(), profile); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to save profile", err)
		return
	}

	log.Info("experience removed",
		"profile_id", profile.ID, "entry_id", expID)
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// AddEducation handles POST /api/profile/education.
func (h *ProfileHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	var req EducationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if fieldErrors := ValidateRequest(req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	profile, err := h.profileStore.GetByUserID(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	edu := domain.NewEducation(
		req.School, req.Degree, req.FieldOfStudy,
		req.From, req.To, req.Current, req.Description,
	)
	profile.AddEducation(edu)

	if err := h.profileStore.Update(r.Context(), profile); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to save profile", err)
		return
	}

	log.Info("education added",
		"profile_id", profile.ID, "entry_id", edu.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// RemoveEducation handles DELETE /api/profile/education/{edu_id}.
func (h *ProfileHandler) RemoveEducation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	eduID, ok := parseIDParam(w, r, "edu_id")
	if !ok {
		return
	}

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	profile, err := h.profileStore.GetByUserID(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := profile.RemoveEducation(eduID); err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
		return
	}

	if err := h.profileStore.Update(r.Context(), profile); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to save profile", err)
		return
	}

	log.Info("education removed",
		"profile_id", profile.ID, "entry_id", eduID)
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Delete handles DELETE /api/profile.
// It removes the requester's profile document only; the user record stays.
// Deleting an absent profile still succeeds.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	if err := h.profileStore.Delete(r.Context(), user.ID); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to delete profile", err)
		return
	}

	log.Info("profile deleted", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, DeletedResponse{Deleted: true})
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// me returns the profile of the authenticated user.
//
// The record was already resolved by the auth middleware, so the handler only
// reads it back from the request context.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetAuthUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: ErrNoTokenProvided.Error()}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

// updateUser rewrites the profile of the authenticated user. The target
// record is always the one bound to the session token; identifiers in the
// request body are never consulted.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: ErrNoTokenProvided.Error()}, http.StatusUnauthorized)
		return
	}

	var request models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, models.User{
		UserID:   userID,
		Username: request.Username,
		Name:     request.Name,
		Email:    request.Email,
	})
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update failed")
		utils.WriteJSON(w, models.MessageResponse{Message: rootCause(err).Error()}, statusFromError(err))
		return
	}

	log.Debug().Int64("id", userID).Msg("user successfully updated")

	utils.WriteJSON(w, models.UpdateUserResponse{
		Message: app.MsgUserUpdated,
		User:    updatedUser.Sanitized(),
	}, http.StatusOK)
}

// deleteUser removes the account of the authenticated user.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: ErrNoTokenProvided.Error()}, http.StatusUnauthorized)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		utils.WriteJSON(w, models.MessageResponse{Message: rootCause(err).Error()}, statusFromError(err))
		return
	}

	log.Debug().Int64("id", userID).Msg("user successfully deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserDeleted}, http.StatusOK)
}

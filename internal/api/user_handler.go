package api

import (
	"net/http"

	"github.com/coursekit/course-api/internal/api/shared"
	"github.com/coursekit/course-api/internal/domain"
	"github.com/coursekit/course-api/internal/schema"
	"github.com/coursekit/course-api/internal/service"
)

type createUserBody struct {
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	LastName   *string `json:"lastName"`
	FirstName  *string `json:"firstName"`
	MiddleName *string `json:"middleName"`
}

// UserHandler serves the /users endpoints.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body createUserBody
	if !decodeBody(w, r, &body) {
		return
	}

	ve := &domain.ValidationError{}
	in := service.CreateUserInput{
		Email:      shared.RequireString(ve, body.Email, "body", "email"),
		Password:   shared.RequireString(ve, body.Password, "body", "password"),
		LastName:   shared.RequireString(ve, body.LastName, "body", "lastName"),
		FirstName:  shared.RequireString(ve, body.FirstName, "body", "firstName"),
		MiddleName: shared.RequireString(ve, body.MiddleName, "body", "middleName"),
	}
	if err := ve.OrNil(); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.users.CreateUser(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.CreateUserResponse{User: userView(user)})
}

// GetUserMe handles GET /users/me.
func (h *UserHandler) GetUserMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.GetUserResponse{User: userView(user)})
}

// GetUser handles GET /users/{user_id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.GetUserResponse{User: userView(user)})
}

// UpdateUser handles PATCH /users/{user_id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	var body schema.UpdateUserRequest
	if !decodeBody(w, r, &body) {
		return
	}

	user, err := h.users.UpdateUser(r.Context(), userID, domain.UserPatch{
		Email:      body.Email,
		LastName:   body.LastName,
		FirstName:  body.FirstName,
		MiddleName: body.MiddleName,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, schema.UpdateUserResponse{User: userView(user)})
}

// DeleteUser handles DELETE /users/{user_id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}
	if err := h.users.DeleteUser(r.Context(), userID); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	respondOK(w)
}

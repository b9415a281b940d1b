package handler

import (
	"taskhub/internal/delivery/api/response"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type updateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Email *string `json:"email" validate:"omitempty,max=254"`
}

// ProfileHandler serves the caller's own account.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile handles GET /api/profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), caller.UserID)
	if err != nil {
		return response.Operation(err, "An error occurred while fetching profile")
	}

	return ok(c, userResponse{User: user.SafeView()})
}

// UpdateProfile handles PUT /api/profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	body, err := bindRequest(c, &req)
	if err != nil {
		return err
	}

	// An explicit null name is a blank name, not an omitted one.
	if _, present := body["name"]; present && req.Name == nil {
		blank := ""
		req.Name = &blank
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), caller.UserID, &usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.Operation(err, "An error occurred while updating profile")
	}

	return ok(c, userResponse{User: user.SafeView()})
}

package handler

import (
	"net/http"

	"taskhub/internal/delivery/api/response"
	"taskhub/internal/domain/entity"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"max=254"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string           `json:"token"`
	User  *entity.UserView `json:"user"`
}

type userResponse struct {
	User *entity.UserView `json:"user"`
}

// AuthHandler serves registration, login and the current-user lookup.
type AuthHandler struct {
	uc usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if _, err := bindRequest(c, &req, "name", "email", "password"); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.Operation(err, "An error occurred during registration")
	}

	return response.Success(c, http.StatusCreated, authResponse{Token: output.Token, User: output.User.SafeView()})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if _, err := bindRequest(c, &req, "email", "password"); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.Operation(err, "An error occurred during login")
	}

	return ok(c, authResponse{Token: output.Token, User: output.User.SafeView()})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), caller.UserID)
	if err != nil {
		return response.Operation(err, "An error occurred")
	}

	return ok(c, userResponse{User: user.SafeView()})
}

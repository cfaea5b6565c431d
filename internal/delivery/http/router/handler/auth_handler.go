package handler

import (
	"net/http"

	"fleetcheck/internal/delivery/http/middleware"
	"fleetcheck/internal/delivery/http/response"
	"fleetcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication and credential handlers.
type AuthHandler struct {
	authUsecase       usecase.AuthUsecase
	credentialUsecase usecase.CredentialUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUsecase usecase.AuthUsecase, credentialUsecase usecase.CredentialUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase:       authUsecase,
		credentialUsecase: credentialUsecase,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string         `json:"accessToken"`
	Account     accountPayload `json:"account"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUsecase.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken: output.AccessToken,
		Account:     toAccountPayload(output.Account),
	}, "Login successful")
}

// Me returns the account resolved from the bearer token.
func (h *AuthHandler) Me(c echo.Context) error {
	account := middleware.GetAccount(c)

	return response.Success(c, http.StatusOK, toAccountPayload(account), "")
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestEmailVerification handles a verification re-send request. The
// response is identical whether or not the email is registered.
func (h *AuthHandler) RequestEmailVerification(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.credentialUsecase.RequestEmailVerification(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Verification email queued")
}

// CompleteEmailVerification handles the link clicked from the verification mail.
func (h *AuthHandler) CompleteEmailVerification(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Verification token is required")
	}

	if err := h.credentialUsecase.CompleteEmailVerification(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified")
}

// RequestPasswordReset handles a reset request. The response is identical
// whether or not the email is registered.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.credentialUsecase.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Reset email queued")
}

type completeResetRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// CompletePasswordReset handles the reset completion with the mailed token.
func (h *AuthHandler) CompletePasswordReset(c echo.Context) error {
	var req completeResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset completion input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.credentialUsecase.CompletePasswordReset(c.Request().Context(), &usecase.CompletePasswordResetInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}
